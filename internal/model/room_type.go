package model

// RoomType 房型表 — 对应 room_types
// Gender 为 Mixed 时男女生均可入住
type RoomType struct {
	RoomTypeID  string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"room_type_id"`
	Name        string `gorm:"type:varchar(100);not null"                     json:"name"`
	Price       int64  `gorm:"not null"                                       json:"price"`
	Gender      string `gorm:"type:varchar(10);not null"                      json:"gender"`
	Description string `gorm:"type:varchar(255)"                              json:"description"`
	BaseModel
}

// TableName 指定表名
func (RoomType) TableName() string { return "room_types" }
