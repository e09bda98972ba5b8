package model

// Room 房间表 — 对应 rooms
// (building_id, name) 唯一
type Room struct {
	RoomID     string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"      json:"room_id"`
	Name       string `gorm:"type:varchar(50);not null;uniqueIndex:uq_room_building_name" json:"name"`
	BuildingID string `gorm:"type:uuid;not null;uniqueIndex:uq_room_building_name" json:"building_id"`
	RoomTypeID string `gorm:"type:uuid;not null"                                  json:"room_type_id"`
	BedCount   int    `gorm:"not null"                                            json:"bed_count"`
	Status     string `gorm:"type:varchar(20);not null;default:'available'"       json:"status"`
	BaseModel

	// 关联
	Building *Building `gorm:"foreignKey:BuildingID;references:BuildingID" json:"building,omitempty"`
	RoomType *RoomType `gorm:"foreignKey:RoomTypeID;references:RoomTypeID" json:"room_type,omitempty"`
}

// TableName 指定表名
func (Room) TableName() string { return "rooms" }
