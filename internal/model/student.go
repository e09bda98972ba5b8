package model

import "time"

// Student 学生档案表 — 对应 students
// 主键即 Account 主键，保证 1:1 归属
type Student struct {
	StudentID   string    `gorm:"type:uuid;primaryKey"                       json:"student_id"`
	FullName    string    `gorm:"type:varchar(100);not null"                 json:"full_name"`
	StudentCode string    `gorm:"type:varchar(20);not null;uniqueIndex"      json:"student_code"`
	Gender      string    `gorm:"type:varchar(10);not null"                  json:"gender"`
	DateOfBirth time.Time `gorm:"type:date;not null"                         json:"date_of_birth"`
	Email       string    `gorm:"type:varchar(255);not null;uniqueIndex"     json:"email"`
	Phone       string    `gorm:"type:varchar(10);not null;uniqueIndex"      json:"phone"`
	IDCard      string    `gorm:"type:varchar(20);not null"                  json:"id_card"`
	Address     string    `gorm:"type:varchar(255)"                          json:"address"`
	Status      string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	BaseModel

	// 关联
	Account *Account `gorm:"foreignKey:StudentID;references:AccountID" json:"account,omitempty"`
}

// TableName 指定表名
func (Student) TableName() string { return "students" }
