package response

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"ces/pkg/errors"

	"github.com/gin-gonic/gin"
)

// ErrInvalidCode 响应码既不是数字也不是数字字符串
var ErrInvalidCode = stderrors.New("invalid response code")

// Code 响应码。CES部分接口返回 "200"，部分返回 200，解码时统一为整数
type Code int

// UnmarshalJSON 同时接受数字与数字字符串
func (c *Code) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		*c = 0
		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*c = 0
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidCode, s)
		}
		*c = Code(n)
		return nil
	}

	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidCode, raw)
	}
	*c = Code(n)
	return nil
}

// Response 统一返回格式 {code, msg, data}
type Response[T any] struct {
	Code Code   `json:"code"`
	Msg  string `json:"msg"`
	Data T      `json:"data"`
}

// OK 是否为成功码，由调用方按需判断
func (r *Response[T]) OK() bool {
	return r != nil && int(r.Code) == errors.CodeSuccess
}

// ========== 基础返回方法 ==========

// Success 成功返回
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response[interface{}]{
		Code: errors.CodeSuccess,
		Msg:  "success",
		Data: data,
	})
}

// SuccessWithMessage 成功返回（自定义消息）
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response[interface{}]{
		Code: errors.CodeSuccess,
		Msg:  message,
		Data: data,
	})
}

// Relay 原样转发CES返回的信封
func Relay[T any](c *gin.Context, resp *Response[T]) {
	c.JSON(http.StatusOK, resp)
}

// Error 通用错误返回
func Error(c *gin.Context, code int, message string) {
	c.JSON(http.StatusOK, Response[interface{}]{
		Code: Code(code),
		Msg:  message,
	})
}

// ========== HTTP错误快捷方法 ==========

func BadRequest(c *gin.Context, message string) {
	Error(c, errors.CodeInvalidParam, message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, errors.CodeUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	Error(c, errors.CodeForbidden, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, errors.CodeNotFound, message)
}

func ServerError(c *gin.Context, message string) {
	Error(c, errors.CodeServerError, message)
}

func BadGateway(c *gin.Context, message string) {
	Error(c, errors.CodeBadGateway, message)
}
