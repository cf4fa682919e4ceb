package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"ces/internal/api"
	"ces/internal/models"
	"ces/pkg/pagination"
	"ces/pkg/response"
	"ces/pkg/transport"
	"ces/pkg/transport/transportfake"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bodyJSON(t *testing.T, req transport.Request) string {
	t.Helper()
	out, err := json.Marshal(req.Data)
	require.NoError(t, err)
	return string(out)
}

func TestTenantAPI_List(t *testing.T) {
	fake := transportfake.NewTransport().
		Respond("/ces/tenant/list", `{"code":"200","msg":"success","data":[{"id":1,"name":"中国移动"},{"id":2,"name":"中国电信"}]}`)

	resp, err := api.NewTenantAPI(fake).List(context.Background())
	require.NoError(t, err)

	calls := fake.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, http.MethodPost, calls[0].Method)
	assert.Equal(t, "/ces/tenant/list", calls[0].URL)
	assert.Nil(t, calls[0].Data)

	assert.Equal(t, &response.Response[[]models.Tenant]{
		Code: 200,
		Msg:  "success",
		Data: []models.Tenant{{ID: 1, Name: "中国移动"}, {ID: 2, Name: "中国电信"}},
	}, resp)
}

func TestCompanyAPI_List(t *testing.T) {
	fake := transportfake.NewTransport().
		Respond("/ces/company/list/page", `{"code":"200","msg":"success","data":{"records":[{"id":3,"tenantId":1,"name":"北京局点"}],"total":1,"size":10,"current":1,"pages":1}}`)
	query := models.CompanyQuery{CompanyName: "北京", TenantID: 1, PageNo: 1, PageSize: 10}

	resp, err := api.NewCompanyAPI(fake).List(context.Background(), query)
	require.NoError(t, err)

	calls := fake.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, http.MethodPost, calls[0].Method)
	assert.Equal(t, "/ces/company/list/page", calls[0].URL)
	assert.Equal(t, query, calls[0].Data)

	assert.Equal(t, &response.Response[pagination.Page[models.Company]]{
		Code: 200,
		Msg:  "success",
		Data: pagination.Page[models.Company]{
			Records: []models.Company{{ID: 3, TenantID: 1, Name: "北京局点"}},
			Total:   1, Size: 10, Current: 1, Pages: 1,
		},
	}, resp)
}

func TestCompanyAPI_List_OmitsOptionalFilters(t *testing.T) {
	fake := transportfake.NewTransport()

	_, err := api.NewCompanyAPI(fake).List(context.Background(), models.CompanyQuery{PageNo: 2, PageSize: 20})
	require.NoError(t, err)

	assert.JSONEq(t, `{"pageNo":2,"pageSize":20}`, bodyJSON(t, fake.Calls()[0]))
}

func TestCompanyAPI_CreateAndUpdateAcceptEmptyPayload(t *testing.T) {
	fake := transportfake.NewTransport()
	companies := api.NewCompanyAPI(fake)

	_, err := companies.Create(context.Background(), models.CompanyPayload{})
	require.NoError(t, err)
	_, err = companies.Update(context.Background(), models.CompanyPayload{})
	require.NoError(t, err)

	calls := fake.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, "/ces/company/add", calls[0].URL)
	assert.Equal(t, "/ces/company/modify", calls[1].URL)
	for _, call := range calls {
		assert.Equal(t, http.MethodPost, call.Method)
		assert.JSONEq(t, `{}`, bodyJSON(t, call))
	}
}

func TestCompanyAPI_Update(t *testing.T) {
	fake := transportfake.NewTransport().
		Respond("/ces/company/modify", `{"code":"200","msg":"success","data":{"id":3,"tenantId":1,"name":"北京二局","updateTime":"2024-05-01 10:00:00"}}`)

	resp, err := api.NewCompanyAPI(fake).Update(context.Background(), models.CompanyPayload{ID: 3, Name: "北京二局"})
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":3,"name":"北京二局"}`, bodyJSON(t, fake.Calls()[0]))
	assert.Equal(t, models.ID(3), resp.Data.ID)
	assert.Equal(t, "2024-05-01 10:00:00", resp.Data.UpdateTime)
}

func TestCompanyAPI_Delete(t *testing.T) {
	fake := transportfake.NewTransport().
		Respond("/ces/company/delete/42", `{"code":"200","msg":"success","data":null}`)

	resp, err := api.NewCompanyAPI(fake).Delete(context.Background(), 42)
	require.NoError(t, err)

	calls := fake.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, http.MethodDelete, calls[0].Method)
	assert.Equal(t, "/ces/company/delete/42", calls[0].URL)
	assert.Nil(t, calls[0].Data)
	assert.Nil(t, resp.Data)
	assert.True(t, resp.OK())
}

func TestGridAPI_List(t *testing.T) {
	fake := transportfake.NewTransport().
		Respond("/ces/grid/list/page", `{"code":200,"msg":"success","data":{"list":[{"id":8,"tenantId":"1","companyId":"3","gridName":"G8","creator":"admin"}],"total":1,"size":10,"current":1,"pages":1}}`)
	query := models.GridQuery{TenantID: 1, CompanyID: 3}

	resp, err := api.NewGridAPI(fake).List(context.Background(), query)
	require.NoError(t, err)

	calls := fake.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "/ces/grid/list/page", calls[0].URL)
	assert.Equal(t, query, calls[0].Data)
	assert.JSONEq(t, `{"tenantId":1,"companyId":3}`, bodyJSON(t, calls[0]))

	require.Len(t, resp.Data.Records, 1)
	assert.Equal(t, models.Grid{ID: 8, TenantID: 1, CompanyID: 3, GridName: "G8", Creator: "admin"}, resp.Data.Records[0])
}

func TestGridAPI_Create(t *testing.T) {
	fake := transportfake.NewTransport()
	data := models.GridCreate{TenantID: 1, CompanyID: 2, GridName: "G1", Creator: "admin"}

	_, err := api.NewGridAPI(fake).Create(context.Background(), data)
	require.NoError(t, err)

	calls := fake.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, http.MethodPost, calls[0].Method)
	assert.Equal(t, "/ces/grid/add", calls[0].URL)
	assert.Equal(t, data, calls[0].Data)
}

func TestGridAPI_CreateForwardsIncompletePayload(t *testing.T) {
	fake := transportfake.NewTransport()

	_, err := api.NewGridAPI(fake).Create(context.Background(), models.GridCreate{TenantID: 1, CompanyID: 2, GridName: "G1"})
	require.NoError(t, err)

	require.Len(t, fake.Calls(), 1)
	assert.JSONEq(t, `{"tenantId":1,"companyId":2,"gridName":"G1","creator":""}`, bodyJSON(t, fake.Calls()[0]))
}

func TestGridAPI_Update(t *testing.T) {
	fake := transportfake.NewTransport()

	_, err := api.NewGridAPI(fake).Update(context.Background(), models.GridUpdate{ID: 5, TenantID: 1, CompanyID: 2, GridName: "G1"})
	require.NoError(t, err)

	calls := fake.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, http.MethodPost, calls[0].Method)
	assert.Equal(t, "/ces/grid/modify", calls[0].URL)
	assert.JSONEq(t, `{"id":5,"tenantId":1,"companyId":2,"gridName":"G1"}`, bodyJSON(t, calls[0]))
}

func TestGridAPI_Delete(t *testing.T) {
	fake := transportfake.NewTransport()

	_, err := api.NewGridAPI(fake).Delete(context.Background(), 7)
	require.NoError(t, err)

	calls := fake.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, http.MethodDelete, calls[0].Method)
	assert.Equal(t, "/ces/grid/delete/7", calls[0].URL)
	assert.Nil(t, calls[0].Data)
}

func TestAccessors_PropagateTransportErrorUnmodified(t *testing.T) {
	boom := errors.New("connection refused")
	fake := transportfake.NewTransport().
		Fail("/ces/tenant/list", boom).
		Fail("/ces/grid/delete/1", boom)

	tenants, err := api.NewTenantAPI(fake).List(context.Background())
	assert.Nil(t, tenants)
	assert.Same(t, boom, err)

	grid, err := api.NewGridAPI(fake).Delete(context.Background(), 1)
	assert.Nil(t, grid)
	assert.Same(t, boom, err)
}

func TestAccessors_DoNotInterpretFailureCode(t *testing.T) {
	fake := transportfake.NewTransport().
		Respond("/ces/company/add", `{"code":"500","msg":"局点名称已存在","data":null}`)

	resp, err := api.NewCompanyAPI(fake).Create(context.Background(), models.CompanyPayload{Name: "重复"})
	require.NoError(t, err)

	assert.False(t, resp.OK())
	assert.Equal(t, "局点名称已存在", resp.Msg)
	assert.Len(t, fake.Calls(), 1)
}
