package models

// Grid 网格
type Grid struct {
	ID          ID     `json:"id"`
	TenantID    ID     `json:"tenantId"`
	TenantName  string `json:"tenantName,omitempty"`
	CompanyID   ID     `json:"companyId"`
	CompanyName string `json:"companyName,omitempty"`
	GridName    string `json:"gridName"`
	Creator     string `json:"creator"`
	CreateTime  string `json:"createTime"`
	UpdateTime  string `json:"updateTime"`
}

// GridQuery 网格查询参数，全部可选
type GridQuery struct {
	TenantID  ID     `json:"tenantId,omitempty"`
	CompanyID ID     `json:"companyId,omitempty"`
	GridName  string `json:"gridName,omitempty"`
	PageNo    int    `json:"pageNo,omitempty"`
	PageSize  int    `json:"pageSize,omitempty"`
}

// GridCreate 网格创建参数
type GridCreate struct {
	TenantID  ID     `json:"tenantId"`
	CompanyID ID     `json:"companyId"`
	GridName  string `json:"gridName"`
	Creator   string `json:"creator"`
}

// GridUpdate 网格更新参数
type GridUpdate struct {
	ID        ID     `json:"id"`
	TenantID  ID     `json:"tenantId"`
	CompanyID ID     `json:"companyId"`
	GridName  string `json:"gridName"`
}
