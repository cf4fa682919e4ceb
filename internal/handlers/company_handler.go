package handlers

import (
	"errors"
	"io"

	"ces/internal/api"
	"ces/internal/audit"
	"ces/internal/models"
	"ces/pkg/pagination"
	"ces/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// CompanyHandler 局点接口。请求体按部分字段原样转发，校验交给CES
type CompanyHandler struct {
	api        *api.CompanyAPI
	log        *logrus.Logger
	operations operationLogger
}

func NewCompanyHandler(companies *api.CompanyAPI, recorder audit.Recorder, log *logrus.Logger) *CompanyHandler {
	return &CompanyHandler{
		api:        companies,
		log:        log,
		operations: operationLogger{recorder: recorder, log: log},
	}
}

// GetAll 分页查询局点
func (h *CompanyHandler) GetAll(c *gin.Context) {
	pageParams := pagination.ParsePageParams(c)
	tenantID, ok := parseIDQuery(c, "tenantId")
	if !ok {
		return
	}

	resp, err := h.api.List(c.Request.Context(), models.CompanyQuery{
		CompanyName: c.Query("companyName"),
		TenantID:    tenantID,
		PageNo:      pageParams.Page,
		PageSize:    pageParams.PageSize,
	})
	relay(c, h.log, resp, err)
}

// Create 新增局点
func (h *CompanyHandler) Create(c *gin.Context) {
	payload, ok := bindCompanyPayload(c)
	if !ok {
		return
	}
	if payload.OperatorName == "" {
		payload.OperatorName = c.GetString("username")
	}

	resp, err := h.api.Create(c.Request.Context(), payload)
	if relay(c, h.log, resp, err) {
		h.operations.record(c, models.EntityCompany, models.ActionCreate, resp.Data.ID, payload, resp.Code, resp.Msg)
	}
}

// Update 修改局点，ID取自路径
func (h *CompanyHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	payload, ok := bindCompanyPayload(c)
	if !ok {
		return
	}
	payload.ID = id

	resp, err := h.api.Update(c.Request.Context(), payload)
	if relay(c, h.log, resp, err) {
		h.operations.record(c, models.EntityCompany, models.ActionUpdate, id, payload, resp.Code, resp.Msg)
	}
}

// Delete 删除局点
func (h *CompanyHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.api.Delete(c.Request.Context(), id)
	if relay(c, h.log, resp, err) {
		h.operations.record(c, models.EntityCompany, models.ActionDelete, id, nil, resp.Code, resp.Msg)
	}
}

// bindCompanyPayload 空请求体按 {} 处理
func bindCompanyPayload(c *gin.Context) (models.CompanyPayload, bool) {
	var payload models.CompanyPayload
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(c, "参数错误")
		return payload, false
	}
	return payload, true
}
