package handlers

import (
	"encoding/json"
	"net/http"

	"ces/internal/audit"
	"ces/internal/models"
	"ces/pkg/response"
	"ces/pkg/transport"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

// relay 原样返回CES信封，传输层错误转换为控制台错误码。返回值表示CES是否成功
func relay[T any](c *gin.Context, log *logrus.Logger, resp *response.Response[T], err error) bool {
	if err != nil {
		writeTransportError(c, log, err)
		return false
	}
	response.Relay(c, resp)
	return resp.OK()
}

func writeTransportError(c *gin.Context, log *logrus.Logger, err error) {
	log.WithError(err).WithField("request_id", c.GetString("request_id")).Warn("CES调用失败")

	if httpErr, ok := transport.AsHTTPError(err); ok {
		switch httpErr.StatusCode {
		case http.StatusUnauthorized:
			response.Unauthorized(c, "CES认证失败")
			return
		case http.StatusForbidden:
			response.Forbidden(c, "无权访问CES资源")
			return
		case http.StatusNotFound:
			response.NotFound(c, "CES资源不存在")
			return
		}
	}
	response.BadGateway(c, "CES服务请求失败")
}

// parseIDParam 解析路径中的 :id
func parseIDParam(c *gin.Context) (models.ID, bool) {
	id, err := models.ParseID(c.Param("id"))
	if err != nil || id <= 0 {
		response.BadRequest(c, "ID格式错误")
		return 0, false
	}
	return id, true
}

// parseIDQuery 解析可选的ID查询参数，缺省为0
func parseIDQuery(c *gin.Context, key string) (models.ID, bool) {
	raw := c.Query(key)
	if raw == "" {
		return 0, true
	}
	id, err := models.ParseID(raw)
	if err != nil || id < 0 {
		response.BadRequest(c, key+"格式错误")
		return 0, false
	}
	return id, true
}

// operationLogger 记录成功的变更操作，写入失败只打日志
type operationLogger struct {
	recorder audit.Recorder
	log      *logrus.Logger
}

func (o operationLogger) record(c *gin.Context, entity, action string, targetID models.ID, payload interface{}, code response.Code, msg string) {
	entry := &models.OperationLog{
		RequestID: c.GetString("request_id"),
		UserID:    c.GetUint("user_id"),
		Username:  c.GetString("username"),
		Entity:    entity,
		Action:    action,
		TargetID:  int64(targetID),
		Code:      int(code),
		Msg:       msg,
	}
	if payload != nil {
		if raw, err := json.Marshal(payload); err == nil {
			entry.Payload = datatypes.JSON(raw)
		}
	}

	if err := o.recorder.Record(c.Request.Context(), entry); err != nil {
		o.log.WithError(err).WithFields(logrus.Fields{
			"entity": entity,
			"action": action,
		}).Error("记录操作日志失败")
	}
}
