package model

// RoomRegistration 住宿登记表 — 对应 room_registrations
//
// 不变量：同一 (student_id, semester_id) 至多一条 status ∈ {pending, approved} 的登记，
// 由数据库部分唯一索引 uq_registration_student_semester_active 兜底。
type RoomRegistration struct {
	RegistrationID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"registration_id"`
	StudentID      string `gorm:"type:uuid;not null"                             json:"student_id"`
	RoomID         string `gorm:"type:uuid;not null"                             json:"room_id"`
	SemesterID     string `gorm:"type:uuid;not null"                             json:"semester_id"`
	Status         string `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"`
	BaseModel

	// 关联
	Student  *Student  `gorm:"foreignKey:StudentID;references:StudentID"    json:"student,omitempty"`
	Room     *Room     `gorm:"foreignKey:RoomID;references:RoomID"          json:"room,omitempty"`
	Semester *Semester `gorm:"foreignKey:SemesterID;references:SemesterID"  json:"semester,omitempty"`
}

// TableName 指定表名
func (RoomRegistration) TableName() string { return "room_registrations" }

// IsActive 登记是否占用名额（pending/approved 计入唯一性与床位占用）
func (r *RoomRegistration) IsActive() bool {
	return r.Status == RegistrationStatusPending || r.Status == RegistrationStatusApproved
}
