package api

import (
	"context"
	"net/http"

	"ces/internal/models"
	"ces/pkg/response"
	"ces/pkg/transport"
)

// TenantAPI 运营商接口，只提供查询
type TenantAPI struct {
	transport transport.Transport
}

func NewTenantAPI(t transport.Transport) *TenantAPI {
	return &TenantAPI{transport: t}
}

// List 获取全部运营商（不分页）
func (a *TenantAPI) List(ctx context.Context) (*response.Response[[]models.Tenant], error) {
	return call[[]models.Tenant](ctx, a.transport, transport.Request{
		URL:    pathTenantList,
		Method: http.MethodPost,
	})
}
