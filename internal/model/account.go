package model

// Role 角色表 — 对应 roles
type Role struct {
	RoleID      string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"role_id"`
	Name        string `gorm:"type:varchar(50);not null;uniqueIndex"          json:"name"`
	Description string `gorm:"type:varchar(255)"                              json:"description"`
	BaseModel
}

// TableName 指定表名
func (Role) TableName() string { return "roles" }

// Account 登录账号表 — 对应 accounts
// PasswordHash 只存 bcrypt 单向哈希，序列化时永不输出
type Account struct {
	AccountID    string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"account_id"`
	Username     string  `gorm:"type:varchar(50);not null;uniqueIndex"          json:"username"`
	PasswordHash string  `gorm:"type:varchar(255);not null"                     json:"-"`
	RoleID       *string `gorm:"type:uuid"                                      json:"role_id,omitempty"`
	BaseModel

	// 关联
	Role *Role `gorm:"foreignKey:RoleID;references:RoleID" json:"role,omitempty"`
}

// TableName 指定表名
func (Account) TableName() string { return "accounts" }
