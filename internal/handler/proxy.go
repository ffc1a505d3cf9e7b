// CORS 우회 프록시 엔드포인트
//
// 브라우저가 알림/옵저버빌리티 API를 직접 못 부를 때 이 서버가 대신
// 조회해서 envelope으로 감싸 돌려준다. 업스트림 실패도 HTTP 200 +
// success=false로 전달 - 호출한 쪽은 envelope만 보면 된다.
// 400은 envelope 자체가 잘못된 경우에만 쓴다.

package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mule-triage/backend/internal/client"
	"github.com/mule-triage/backend/internal/model"
)

type ProxyHandler struct {
	alerts *client.AlertsClient
	obs    *client.ObservabilityClient
}

func NewProxyHandler(alerts *client.AlertsClient, obs *client.ObservabilityClient) *ProxyHandler {
	return &ProxyHandler{alerts: alerts, obs: obs}
}

// Forward godoc
// @Summary Proxy an upstream API call
// @Description Server-side CORS bypass. Forwards to the alerts or observability API and wraps the result in a success envelope.
// @Tags proxy
// @Accept json
// @Produce json
// @Param request body model.ProxyRequest true "endpoint (alerts|observability) plus endpoint-specific params"
// @Success 200 {object} model.ProxyResponse
// @Failure 400 {object} model.ErrorResponse
// @Router /api/v1/proxy [post]
func (h *ProxyHandler) Forward(c *gin.Context) {
	var req model.ProxyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	switch req.Endpoint {
	case "alerts":
		data, err := h.alerts.FetchDirect(c.Request.Context(), model.AnalyzeRequest{
			Count: req.Count,
			From:  req.From,
			To:    req.To,
		})
		h.writeEnvelope(c, data, err)

	case "observability":
		if req.Action == "" || req.Service == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "observability requires action and service"})
			return
		}
		data, err := h.obs.LookupDirect(c.Request.Context(), req.Action, req.Service)
		h.writeEnvelope(c, data, err)

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown endpoint: " + req.Endpoint})
	}
}

func (h *ProxyHandler) writeEnvelope(c *gin.Context, data json.RawMessage, err error) {
	if err != nil {
		log.Printf("Proxy forward failed: %v", err)
		resp := model.ProxyResponse{Success: false, Error: err.Error()}
		if statusErr, ok := err.(*client.HTTPStatusError); ok {
			resp.Status = statusErr.StatusCode
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	c.JSON(http.StatusOK, model.ProxyResponse{
		Success: true,
		Status:  http.StatusOK,
		Data:    data,
	})
}
