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

// GridAPI 网格接口
type GridAPI struct {
	transport transport.Transport
}

func NewGridAPI(t transport.Transport) *GridAPI {
	return &GridAPI{transport: t}
}

// List 按运营商、局点、网格名称分页查询
func (a *GridAPI) List(ctx context.Context, query models.GridQuery) (*response.Response[pagination.Page[models.Grid]], error) {
	return call[pagination.Page[models.Grid]](ctx, a.transport, transport.Request{
		URL:    pathGridPage,
		Method: http.MethodPost,
		Data:   query,
	})
}

func (a *GridAPI) Create(ctx context.Context, data models.GridCreate) (*response.Response[models.Grid], error) {
	return call[models.Grid](ctx, a.transport, transport.Request{
		URL:    pathGridAdd,
		Method: http.MethodPost,
		Data:   data,
	})
}

func (a *GridAPI) Update(ctx context.Context, data models.GridUpdate) (*response.Response[models.Grid], error) {
	return call[models.Grid](ctx, a.transport, transport.Request{
		URL:    pathGridModify,
		Method: http.MethodPost,
		Data:   data,
	})
}

func (a *GridAPI) Delete(ctx context.Context, id models.ID) (*response.Response[any], error) {
	return call[any](ctx, a.transport, transport.Request{
		URL:    fmt.Sprintf(pathGridDelete, id),
		Method: http.MethodDelete,
	})
}
