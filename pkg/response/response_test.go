package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tenant struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func TestResponse_StringAndNumericCodeDecodeAlike(t *testing.T) {
	var fromString, fromNumber Response[[]tenant]

	require.NoError(t, json.Unmarshal([]byte(`{"code":"200","msg":"ok","data":[{"id":1,"name":"CMCC"}]}`), &fromString))
	require.NoError(t, json.Unmarshal([]byte(`{"code":200,"msg":"ok","data":[{"id":1,"name":"CMCC"}]}`), &fromNumber))

	assert.Equal(t, fromNumber, fromString)
	assert.Equal(t, Code(200), fromString.Code)
	assert.True(t, fromString.OK())
}

func TestResponse_NonSuccessCodeIsNotOK(t *testing.T) {
	var resp Response[any]
	require.NoError(t, json.Unmarshal([]byte(`{"code":"500","msg":"局点名称重复","data":null}`), &resp))

	assert.False(t, resp.OK())
	assert.Equal(t, "局点名称重复", resp.Msg)
	assert.Nil(t, resp.Data)
}

func TestResponse_NonNumericCodeFails(t *testing.T) {
	var resp Response[any]
	err := json.Unmarshal([]byte(`{"code":"SUCCESS","msg":"","data":null}`), &resp)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidCode))
}

func TestResponse_NilIsNotOK(t *testing.T) {
	var resp *Response[tenant]
	assert.False(t, resp.OK())
}

func TestResponse_CodeEncodesAsNumber(t *testing.T) {
	out, err := json.Marshal(Response[any]{Code: 200, Msg: "ok"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":200,"msg":"ok","data":null}`, string(out))
}

func TestGinHelpers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		fn   func(c *gin.Context)
		want string
	}{
		{"success", func(c *gin.Context) { Success(c, gin.H{"a": 1}) }, `{"code":200,"msg":"success","data":{"a":1}}`},
		{"bad request", func(c *gin.Context) { BadRequest(c, "参数错误") }, `{"code":400,"msg":"参数错误","data":null}`},
		{"bad gateway", func(c *gin.Context) { BadGateway(c, "上游失败") }, `{"code":502,"msg":"上游失败","data":null}`},
		{"relay", func(c *gin.Context) { Relay(c, &Response[[]tenant]{Code: 200, Msg: "ok", Data: []tenant{{ID: 2, Name: "CT"}}}) }, `{"code":200,"msg":"ok","data":[{"id":2,"name":"CT"}]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			tc.fn(c)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, tc.want, w.Body.String())
		})
	}
}
