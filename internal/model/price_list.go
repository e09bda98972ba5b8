package model

// PriceList 价目表 — 对应 price_lists
// cost_type 全局唯一，如 "electricity" / "water"
type PriceList struct {
	PriceListID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"price_list_id"`
	CostType    string `gorm:"type:varchar(50);not null;uniqueIndex"          json:"cost_type"`
	Price       int64  `gorm:"not null"                                       json:"price"`
	Unit        string `gorm:"type:varchar(20)"                               json:"unit"`
	BaseModel
}

// TableName 指定表名
func (PriceList) TableName() string { return "price_lists" }
