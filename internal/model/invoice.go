package model

import "time"

// Invoice 账单表 — 对应 invoices
//
// 三个关联字段各自可空（水电价目可被独立移除），但 Schema 约束
// electricity_price_id / water_price_id 至少其一非空。
type Invoice struct {
	InvoiceID          string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"invoice_id"`
	RoomID             string    `gorm:"type:uuid;not null"                             json:"room_id"`
	UtilitiesID        *string   `gorm:"type:uuid"                                      json:"utilities_id,omitempty"`
	ElectricityPriceID *string   `gorm:"type:uuid"                                      json:"electricity_price_id,omitempty"`
	WaterPriceID       *string   `gorm:"type:uuid"                                      json:"water_price_id,omitempty"`
	InvoiceDate        time.Time `gorm:"type:date;not null"                             json:"invoice_date"`
	Status             string    `gorm:"type:varchar(20);not null;default:'unpaid'"     json:"status"`
	BaseModel

	// 关联
	Room             *Room      `gorm:"foreignKey:RoomID;references:RoomID"                    json:"room,omitempty"`
	Utilities        *Utilities `gorm:"foreignKey:UtilitiesID;references:UtilitiesID"          json:"utilities,omitempty"`
	ElectricityPrice *PriceList `gorm:"foreignKey:ElectricityPriceID;references:PriceListID"   json:"electricity_price,omitempty"`
	WaterPrice       *PriceList `gorm:"foreignKey:WaterPriceID;references:PriceListID"         json:"water_price,omitempty"`
}

// TableName 指定表名
func (Invoice) TableName() string { return "invoices" }
