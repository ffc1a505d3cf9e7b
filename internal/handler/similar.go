// 유사 incident 검색 엔드포인트

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mule-triage/backend/internal/model"
	"github.com/mule-triage/backend/internal/service"
)

type SimilarHandler struct {
	svc *service.EmbeddingService
}

func NewSimilarHandler(svc *service.EmbeddingService) *SimilarHandler {
	return &SimilarHandler{svc: svc}
}

// Search godoc
// @Summary Search similar past incidents
// @Description Embeds the given summary and returns the nearest incident summaries from run history.
// @Tags incidents
// @Accept json
// @Produce json
// @Param request body model.SimilarIncidentRequest true "Summary text and optional limit"
// @Success 200 {object} model.SimilarIncidentResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 503 {object} model.ErrorResponse
// @Router /api/v1/incidents/similar [post]
func (h *SimilarHandler) Search(c *gin.Context) {
	if h.svc == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "similarity search requires a database and AI credentials"})
		return
	}

	var req model.SimilarIncidentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Summary == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "summary is required"})
		return
	}

	results, embModel, err := h.svc.SearchSimilar(c.Request.Context(), req.Summary, req.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "similarity search failed"})
		return
	}

	c.JSON(http.StatusOK, model.SimilarIncidentResponse{
		Status: "ok",
		Model:  embModel,
		Data:   results,
	})
}
