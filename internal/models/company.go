package models

// Company 局点
type Company struct {
	ID           ID     `json:"id"`
	TenantID     ID     `json:"tenantId"`     // 运营商id
	TenantName   string `json:"tenantName"`   // 运营商名称
	Name         string `json:"name"`         // 局点名称
	Description  string `json:"description"`  // 局点描述
	CreateTime   string `json:"createTime"`   // 创建时间
	UpdateTime   string `json:"updateTime"`   // 更新时间
	OperatorName string `json:"operatorName"` // 创建人
}

// CompanyQuery 局点分页查询参数
type CompanyQuery struct {
	CompanyName string `json:"companyName,omitempty"`
	TenantID    ID     `json:"tenantId,omitempty"`
	PageNo      int    `json:"pageNo"`
	PageSize    int    `json:"pageSize"`
}

// CompanyPayload 局点新增/修改参数，字段均可缺省，由服务端校验
type CompanyPayload struct {
	ID           ID     `json:"id,omitempty"`
	TenantID     ID     `json:"tenantId,omitempty"`
	TenantName   string `json:"tenantName,omitempty"`
	Name         string `json:"name,omitempty"`
	Description  string `json:"description,omitempty"`
	CreateTime   string `json:"createTime,omitempty"`
	UpdateTime   string `json:"updateTime,omitempty"`
	OperatorName string `json:"operatorName,omitempty"`
}
