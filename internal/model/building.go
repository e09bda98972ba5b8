package model

// Building 楼栋表 — 对应 buildings
type Building struct {
	BuildingID  string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"building_id"`
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex"         json:"name"`
	Description string `gorm:"type:varchar(255)"                              json:"description"`
	BaseModel
}

// TableName 指定表名
func (Building) TableName() string { return "buildings" }
