package api

import (
	"context"
	"fmt"
	"net/http"

	"ces/internal/models"
	"ces/pkg/pagination"
	"ces/pkg/response"
	"ces/pkg/transport"
)

// CompanyAPI 局点接口
type CompanyAPI struct {
	transport transport.Transport
}

func NewCompanyAPI(t transport.Transport) *CompanyAPI {
	return &CompanyAPI{transport: t}
}

// List 分页查询局点，过滤与分页由服务端完成
func (a *CompanyAPI) List(ctx context.Context, query models.CompanyQuery) (*response.Response[pagination.Page[models.Company]], error) {
	return call[pagination.Page[models.Company]](ctx, a.transport, transport.Request{
		URL:    pathCompanyPage,
		Method: http.MethodPost,
		Data:   query,
	})
}

// Create 新增局点，ID与时间由服务端生成
func (a *CompanyAPI) Create(ctx context.Context, data models.CompanyPayload) (*response.Response[models.Company], error) {
	return call[models.Company](ctx, a.transport, transport.Request{
		URL:    pathCompanyAdd,
		Method: http.MethodPost,
		Data:   data,
	})
}

// Update 修改局点，data 需带上ID
func (a *CompanyAPI) Update(ctx context.Context, data models.CompanyPayload) (*response.Response[models.Company], error) {
	return call[models.Company](ctx, a.transport, transport.Request{
		URL:    pathCompanyModify,
		Method: http.MethodPost,
		Data:   data,
	})
}

// Delete 删除局点
func (a *CompanyAPI) Delete(ctx context.Context, id models.ID) (*response.Response[any], error) {
	return call[any](ctx, a.transport, transport.Request{
		URL:    fmt.Sprintf(pathCompanyDelete, id),
		Method: http.MethodDelete,
	})
}
