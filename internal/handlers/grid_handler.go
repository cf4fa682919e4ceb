package handlers

import (
	"errors"
	"fmt"

	"ces/internal/api"
	"ces/internal/audit"
	"ces/internal/models"
	"ces/pkg/pagination"
	"ces/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// CreateGridRequest 创建网格请求，creator 缺省为当前登录用户
type CreateGridRequest struct {
	TenantID  models.ID `json:"tenantId" binding:"required"`
	CompanyID models.ID `json:"companyId" binding:"required"`
	GridName  string    `json:"gridName" binding:"required,max=100"`
	Creator   string    `json:"creator" binding:"max=50"`
}

type UpdateGridRequest struct {
	TenantID  models.ID `json:"tenantId" binding:"required"`
	CompanyID models.ID `json:"companyId" binding:"required"`
	GridName  string    `json:"gridName" binding:"required,max=100"`
}

type GridHandler struct {
	api        *api.GridAPI
	log        *logrus.Logger
	operations operationLogger
}

func NewGridHandler(grids *api.GridAPI, recorder audit.Recorder, log *logrus.Logger) *GridHandler {
	return &GridHandler{
		api:        grids,
		log:        log,
		operations: operationLogger{recorder: recorder, log: log},
	}
}

// GetAll 分页查询网格
func (h *GridHandler) GetAll(c *gin.Context) {
	pageParams := pagination.ParsePageParams(c)
	tenantID, ok := parseIDQuery(c, "tenantId")
	if !ok {
		return
	}
	companyID, ok := parseIDQuery(c, "companyId")
	if !ok {
		return
	}

	resp, err := h.api.List(c.Request.Context(), models.GridQuery{
		TenantID:  tenantID,
		CompanyID: companyID,
		GridName:  c.Query("gridName"),
		PageNo:    pageParams.Page,
		PageSize:  pageParams.PageSize,
	})
	relay(c, h.log, resp, err)
}

// Create 创建网格
func (h *GridHandler) Create(c *gin.Context) {
	var req CreateGridRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, gridBindingMessage(err))
		return
	}

	data := models.GridCreate{
		TenantID:  req.TenantID,
		CompanyID: req.CompanyID,
		GridName:  req.GridName,
		Creator:   req.Creator,
	}
	if data.Creator == "" {
		data.Creator = c.GetString("username")
	}

	resp, err := h.api.Create(c.Request.Context(), data)
	if relay(c, h.log, resp, err) {
		h.operations.record(c, models.EntityGrid, models.ActionCreate, resp.Data.ID, data, resp.Code, resp.Msg)
	}
}

// Update 更新网格，ID取自路径
func (h *GridHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateGridRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, gridBindingMessage(err))
		return
	}

	data := models.GridUpdate{
		ID:        id,
		TenantID:  req.TenantID,
		CompanyID: req.CompanyID,
		GridName:  req.GridName,
	}

	resp, err := h.api.Update(c.Request.Context(), data)
	if relay(c, h.log, resp, err) {
		h.operations.record(c, models.EntityGrid, models.ActionUpdate, id, data, resp.Code, resp.Msg)
	}
}

// Delete 删除网格
func (h *GridHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.api.Delete(c.Request.Context(), id)
	if relay(c, h.log, resp, err) {
		h.operations.record(c, models.EntityGrid, models.ActionDelete, id, nil, resp.Code, resp.Msg)
	}
}

// gridBindingMessage 只返回第一个校验错误
func gridBindingMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return "请求参数格式错误"
	}

	fieldErr := validationErrs[0]
	switch fieldErr.Field() {
	case "TenantID":
		return "运营商不能为空"
	case "CompanyID":
		return "局点不能为空"
	case "GridName":
		return "网格名称不能为空，且长度不超过100个字符"
	case "Creator":
		return "创建人长度不能超过50个字符"
	default:
		return fmt.Sprintf("字段 %s 验证失败", fieldErr.Field())
	}
}
