package handlers

import (
	"math"

	"ces/internal/audit"
	"ces/internal/models"
	"ces/pkg/pagination"
	"ces/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type OperationLogHandler struct {
	recorder audit.Recorder
	log      *logrus.Logger
}

func NewOperationLogHandler(recorder audit.Recorder, log *logrus.Logger) *OperationLogHandler {
	return &OperationLogHandler{recorder: recorder, log: log}
}

// GetAll 分页查询操作日志，可按 entity 过滤
func (h *OperationLogHandler) GetAll(c *gin.Context) {
	pageParams := pagination.ParsePageParams(c)

	entity := c.Query("entity")
	if entity != "" && entity != models.EntityCompany && entity != models.EntityGrid {
		response.BadRequest(c, "entity只能是company或grid")
		return
	}

	logs, total, err := h.recorder.List(c.Request.Context(), entity, pageParams.Page, pageParams.PageSize)
	if err != nil {
		h.log.WithError(err).Error("查询操作日志失败")
		response.ServerError(c, "查询失败")
		return
	}

	response.Success(c, pagination.Page[*models.OperationLog]{
		Records: logs,
		Total:   total,
		Size:    pageParams.PageSize,
		Current: pageParams.Page,
		Pages:   int(math.Ceil(float64(total) / float64(pageParams.PageSize))),
	})
}
