package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mule-triage/backend/docs"
)

// OpenAPIDoc - 생성된 OpenAPI 문서를 JSON으로 반환
// swag init 산출물(docs 패키지)을 그대로 서빙한다
func OpenAPIDoc(c *gin.Context) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(docs.SwaggerInfo.ReadDoc()))
}
