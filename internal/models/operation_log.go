package models

import "gorm.io/datatypes"

// OperationLog 控制台变更操作日志
type OperationLog struct {
	BaseModel
	RequestID string         `json:"request_id" gorm:"size:64;index"`
	UserID    uint           `json:"user_id" gorm:"index"`
	Username  string         `json:"username" gorm:"size:100"`
	Entity    string         `json:"entity" gorm:"size:20;not null;index"` // company / grid
	Action    string         `json:"action" gorm:"size:20;not null"`       // create / update / delete
	TargetID  int64          `json:"target_id" gorm:"index"`
	Payload   datatypes.JSON `json:"payload" gorm:"type:json"`
	Code      int            `json:"code"`
	Msg       string         `json:"msg" gorm:"size:500"`
}

// TableName 表名
func (l *OperationLog) TableName() string {
	return "operation_logs"
}

// 操作日志实体与动作
const (
	EntityCompany = "company"
	EntityGrid    = "grid"

	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)
