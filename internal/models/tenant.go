package models

// Tenant 运营商，本层只读
type Tenant struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}
