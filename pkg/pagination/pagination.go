package pagination

import (
	"encoding/json"
	"strconv"

	"github.com/gin-gonic/gin"
)

// PageParams 分页参数
type PageParams struct {
	Page     int `json:"page" form:"page"`
	PageSize int `json:"page_size" form:"page_size"`
}

// 分页配置
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ParsePageParams 从请求中解析分页参数
func ParsePageParams(c *gin.Context) *PageParams {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("page_size", "10")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = DefaultPage
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	return &PageParams{
		Page:     page,
		PageSize: pageSize,
	}
}

// Page CES分页数据。局点接口用 records，网格接口用 list，解码时两者都接受
type Page[T any] struct {
	Records []T   `json:"records"` // 记录列表
	Total   int64 `json:"total"`   // 总记录数
	Size    int   `json:"size"`    // 每页大小
	Current int   `json:"current"` // 当前页码
	Pages   int   `json:"pages"`   // 总页数
}

// UnmarshalJSON 兼容 records / list 两种字段名
func (p *Page[T]) UnmarshalJSON(b []byte) error {
	var raw struct {
		Records []T   `json:"records"`
		List    []T   `json:"list"`
		Total   int64 `json:"total"`
		Size    int   `json:"size"`
		Current int   `json:"current"`
		Pages   int   `json:"pages"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	p.Records = raw.Records
	if p.Records == nil {
		p.Records = raw.List
	}
	if p.Records == nil {
		p.Records = []T{}
	}
	p.Total = raw.Total
	p.Size = raw.Size
	p.Current = raw.Current
	p.Pages = raw.Pages
	return nil
}
