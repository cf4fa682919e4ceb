package handlers

import (
	"ces/internal/api"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type TenantHandler struct {
	api *api.TenantAPI
	log *logrus.Logger
}

func NewTenantHandler(tenants *api.TenantAPI, log *logrus.Logger) *TenantHandler {
	return &TenantHandler{api: tenants, log: log}
}

// GetAll 运营商列表，用于下拉选择
func (h *TenantHandler) GetAll(c *gin.Context) {
	resp, err := h.api.List(c.Request.Context())
	relay(c, h.log, resp, err)
}
