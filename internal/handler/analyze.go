// 분석 실행 엔드포인트

package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mule-triage/backend/internal/client"
	"github.com/mule-triage/backend/internal/model"
	"github.com/mule-triage/backend/internal/service"
)

type AnalyzeHandler struct {
	svc *service.AnalyzeService
}

func NewAnalyzeHandler(svc *service.AnalyzeService) *AnalyzeHandler {
	return &AnalyzeHandler{svc: svc}
}

// Analyze godoc
// @Summary Run an alert analysis
// @Description Fetches alert emails, classifies them, enriches per-app observability and assembles incidents with a runbook.
// @Tags analyze
// @Accept json
// @Produce json
// @Param request body model.AnalyzeRequest false "Fetch window (count, or from+to)"
// @Success 200 {object} model.IncidentAnalysisResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 502 {object} model.ErrorResponse
// @Failure 503 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/analyze [post]
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var req model.AnalyzeRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}

	if req.Count < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "count must be positive"})
		return
	}
	if req.From != "" && req.To == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from requires to"})
		return
	}

	res, err := h.svc.Analyze(c.Request.Context(), req)
	if err != nil {
		writeAnalyzeError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// writeAnalyzeError - 파이프라인 실패를 원인별 상태코드/힌트로 변환
func writeAnalyzeError(c *gin.Context, err error) {
	log.Printf("Analysis failed: %v", err)

	if client.IsTransportError(err) {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Could not reach the alerts API. If calling from a browser this is typically a CORS block - route the request through the edge function proxy (USE_EDGE_FUNCTION=true) or this server's /api/v1/proxy endpoint.",
		})
		return
	}

	var statusErr *client.HTTPStatusError
	if errors.As(err, &statusErr) {
		c.JSON(http.StatusBadGateway, gin.H{"error": upstreamHint(statusErr)})
		return
	}

	if errors.Is(err, service.ErrClassificationUnavailable) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI classification is unavailable. Check AI_API_KEY and model quota."})
		return
	}

	var malformed *service.MalformedResponseError
	if errors.As(err, &malformed) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Alerts API returned an unrecognized payload: " + malformed.Shape})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
}

func upstreamHint(statusErr *client.HTTPStatusError) string {
	switch {
	case statusErr.StatusCode == http.StatusNotFound:
		return "Alerts API endpoint not found (404). Check MULE_API_BASE_URL."
	case statusErr.StatusCode == http.StatusUnauthorized || statusErr.StatusCode == http.StatusForbidden:
		return "Alerts API rejected the request (auth). Check upstream credentials."
	case statusErr.StatusCode >= 500:
		return "Alerts API is failing upstream. Retry later."
	default:
		return statusErr.Error()
	}
}
