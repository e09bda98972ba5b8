package model

import "time"

// Utilities 水电抄表表 — 对应 utilities
// 每条记录为一个计费周期内某房间的电表/水表快照
type Utilities struct {
	UtilitiesID              string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"utilities_id"`
	RoomID                   string    `gorm:"type:uuid;not null"                             json:"room_id"`
	StartDate                time.Time `gorm:"type:date;not null"                             json:"start_date"`
	EndDate                  time.Time `gorm:"type:date;not null"                             json:"end_date"`
	PreviousElectricityMeter int64     `gorm:"not null;default:0"                             json:"previous_electricity_meter"`
	CurrentElectricityMeter  int64     `gorm:"not null;default:0"                             json:"current_electricity_meter"`
	PreviousWaterMeter       int64     `gorm:"not null;default:0"                             json:"previous_water_meter"`
	CurrentWaterMeter        int64     `gorm:"not null;default:0"                             json:"current_water_meter"`
	BaseModel

	// 关联
	Room *Room `gorm:"foreignKey:RoomID;references:RoomID" json:"room,omitempty"`
}

// TableName 指定表名
func (Utilities) TableName() string { return "utilities" }

// ElectricityUsage 周期内电表用量
func (u *Utilities) ElectricityUsage() int64 {
	return u.CurrentElectricityMeter - u.PreviousElectricityMeter
}

// WaterUsage 周期内水表用量
func (u *Utilities) WaterUsage() int64 {
	return u.CurrentWaterMeter - u.PreviousWaterMeter
}
