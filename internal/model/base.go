package model

import "time"

// BaseModel 通用审计字段（所有业务模型嵌入）
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// ── 枚举常量 ──

// 性别
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderMixed  = "Mixed" // 仅用于房型
)

// 学生审核状态
const (
	StudentStatusPending  = "pending"
	StudentStatusApproved = "approved"
	StudentStatusRejected = "rejected"
)

// 房间状态
const (
	RoomStatusAvailable   = "available"
	RoomStatusOccupied    = "occupied"
	RoomStatusMaintenance = "maintenance"
)

// 住宿登记状态
const (
	RegistrationStatusPending    = "pending"
	RegistrationStatusApproved   = "approved"
	RegistrationStatusRejected   = "rejected"
	RegistrationStatusCheckedOut = "checkedout"
)

// 账单状态
const (
	InvoiceStatusUnpaid = "unpaid"
	InvoiceStatusPaid   = "paid"
)
