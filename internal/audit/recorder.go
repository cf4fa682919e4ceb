package audit

import (
	"context"
	"fmt"

	"ces/internal/models"

	"gorm.io/gorm"
)

// Recorder 记录并查询控制台的变更操作
type Recorder interface {
	Record(ctx context.Context, entry *models.OperationLog) error
	List(ctx context.Context, entity string, page, pageSize int) ([]*models.OperationLog, int64, error)
}

// GormRecorder 把操作日志写入数据库
type GormRecorder struct {
	db *gorm.DB
}

func NewGormRecorder(db *gorm.DB) *GormRecorder {
	return &GormRecorder{db: db}
}

func (r *GormRecorder) Record(ctx context.Context, entry *models.OperationLog) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("写入操作日志失败: %w", err)
	}
	return nil
}

// List 按实体分页查询操作日志，entity 为空时不过滤
func (r *GormRecorder) List(ctx context.Context, entity string, page, pageSize int) ([]*models.OperationLog, int64, error) {
	var logs []*models.OperationLog
	var total int64

	query := r.db.WithContext(ctx).Model(&models.OperationLog{})
	if entity != "" {
		query = query.Where("entity = ?", entity)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

// NopRecorder 未启用数据库时使用
type NopRecorder struct{}

func (NopRecorder) Record(context.Context, *models.OperationLog) error { return nil }

func (NopRecorder) List(context.Context, string, int, int) ([]*models.OperationLog, int64, error) {
	return []*models.OperationLog{}, 0, nil
}
