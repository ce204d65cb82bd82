package handler

import (
	"net/http"

	"leavehub/internal/service"
	"leavehub/pkg/pagination"
	"leavehub/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	auditService service.AuditService
}

func NewAuditHandler(auditService service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

func (h *AuditHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/audit-logs", h.ListAuditLogs)
}

// ListAuditLogs returns a page of permission-change audit entries
// @Summary      List audit logs
// @Tags         audit
// @Produce      json
// @Param        page   query     int  false  "Zero-based page number"  default(0)
// @Param        limit  query     int  false  "Page size, capped at 100"  default(10)
// @Success      200    {object}  map[string]interface{}
// @Failure      400    {object}  response.Envelope
// @Failure      500    {object}  response.Envelope
// @Router       /audit-logs [get]
func (h *AuditHandler) ListAuditLogs(c *gin.Context) {
	params, err := pagination.Parse(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Message("Page must not be negative"))
		return
	}

	logs, total, err := h.auditService.GetAuditLogs(c.Request.Context(), params.Page+1, params.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Message("Failed to fetch audit logs"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": logs,
		"meta":  pagination.NewMeta(total, len(logs), params.Limit, params.Page+1),
	})
}
