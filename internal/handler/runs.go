// 분석 실행 이력 조회 엔드포인트
// Postgres 미설정이면 503 - 파이프라인 자체는 이력 없이도 동작한다

package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mule-triage/backend/internal/db"
	"github.com/mule-triage/backend/internal/model"
)

type RunsHandler struct {
	store *db.Postgres
}

func NewRunsHandler(store *db.Postgres) *RunsHandler {
	return &RunsHandler{store: store}
}

// List godoc
// @Summary List analysis runs
// @Tags runs
// @Produce json
// @Param limit query int false "Max rows (default 20, max 100)"
// @Success 200 {object} model.RunListEnvelope
// @Failure 503 {object} model.ErrorResponse
// @Router /api/v1/runs [get]
func (h *RunsHandler) List(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "run history requires a database"})
		return
	}

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		if parsed > 100 {
			parsed = 100
		}
		limit = parsed
	}

	runs, err := h.store.GetRunList(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list runs"})
		return
	}

	c.JSON(http.StatusOK, model.RunListEnvelope{Status: "ok", Data: runs})
}

// Detail godoc
// @Summary Get one analysis run with its incidents
// @Tags runs
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} model.RunDetailEnvelope
// @Failure 404 {object} model.ErrorResponse
// @Failure 503 {object} model.ErrorResponse
// @Router /api/v1/runs/{id} [get]
func (h *RunsHandler) Detail(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "run history requires a database"})
		return
	}

	detail, err := h.store.GetRunDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		if db.IsNoRows(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load run"})
		return
	}

	c.JSON(http.StatusOK, model.RunDetailEnvelope{Status: "ok", Data: detail})
}
