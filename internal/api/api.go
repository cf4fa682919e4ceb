// Package api 封装CES后端的运营商、局点、网格接口。
//
// 每个访问器只负责拼装请求描述并交给共享的 transport.Transport，
// 返回值是CES的原始信封：不做参数校验、不解释 code、不重试、不缓存。
// 访问器没有可变状态，可以并发使用。
package api

import (
	"context"

	"ces/pkg/response"
	"ces/pkg/transport"
)

// CES接口路径
const (
	pathTenantList = "/ces/tenant/list"

	pathCompanyPage   = "/ces/company/list/page"
	pathCompanyAdd    = "/ces/company/add"
	pathCompanyModify = "/ces/company/modify"
	pathCompanyDelete = "/ces/company/delete/%d"

	pathGridPage   = "/ces/grid/list/page"
	pathGridAdd    = "/ces/grid/add"
	pathGridModify = "/ces/grid/modify"
	pathGridDelete = "/ces/grid/delete/%d"
)

// call 发出一次请求，把响应解码为 Response[T]；传输层错误原样返回
func call[T any](ctx context.Context, t transport.Transport, req transport.Request) (*response.Response[T], error) {
	var resp response.Response[T]
	if err := t.Do(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
