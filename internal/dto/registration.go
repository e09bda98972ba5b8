package dto

// ── 住宿登记模块 DTO ──

// CreateRegistrationRequest 创建住宿登记请求
// Status 缺省为 pending；自助合并注册流程直接传 approved
type CreateRegistrationRequest struct {
	StudentID  string `json:"student_id"  binding:"required,uuid"`
	RoomID     string `json:"room_id"     binding:"required,uuid"`
	SemesterID string `json:"semester_id" binding:"required,uuid"`
	Status     string `json:"status"      binding:"omitempty,oneof=pending approved"`
}

// UpdateRegistrationRequest 更新住宿登记请求（仅更新非 nil 字段）
type UpdateRegistrationRequest struct {
	StudentID  *string `json:"student_id"  binding:"omitempty,uuid"`
	RoomID     *string `json:"room_id"     binding:"omitempty,uuid"`
	SemesterID *string `json:"semester_id" binding:"omitempty,uuid"`
	Status     *string `json:"status"      binding:"omitempty,oneof=pending approved rejected checkedout"`
}

// RegistrationListRequest 登记列表查询参数
type RegistrationListRequest struct {
	PaginationRequest
	StudentID  string `form:"student_id"  binding:"omitempty,uuid"`
	RoomID     string `form:"room_id"     binding:"omitempty,uuid"`
	SemesterID string `form:"semester_id" binding:"omitempty,uuid"`
	Status     string `form:"status"      binding:"omitempty,oneof=pending approved rejected checkedout"`
}

// RegistrationResponse 住宿登记响应
type RegistrationResponse struct {
	ID        string            `json:"id"`
	Status    string            `json:"status"`
	Student   *StudentResponse  `json:"student,omitempty"`
	Room      *RoomResponse     `json:"room,omitempty"`
	Semester  *SemesterResponse `json:"semester,omitempty"`
	CreatedAt string            `json:"created_at"`
}

// ── 合并注册（账号 + 档案 + 登记）DTO ──

// RegisterWithStudentRequest 自助注册请求
// 账号用户名取学号，三步在同一事务内完成
type RegisterWithStudentRequest struct {
	Password    string `json:"password"      binding:"required,min=8,max=64"`
	FullName    string `json:"full_name"     binding:"required,min=2,max=100"`
	StudentCode string `json:"student_code"  binding:"required,max=20"`
	Gender      string `json:"gender"        binding:"required,oneof=Male Female"`
	DateOfBirth string `json:"date_of_birth" binding:"required"`
	Email       string `json:"email"         binding:"required,email"`
	Phone       string `json:"phone"         binding:"required,len=10,numeric"`
	IDCard      string `json:"id_card"       binding:"required,max=20"`
	Address     string `json:"address"       binding:"omitempty,max=255"`
	RoomID      string `json:"room_id"       binding:"required,uuid"`
	SemesterID  string `json:"semester_id"   binding:"required,uuid"`
}

// RegisterWithStudentResponse 自助注册响应
type RegisterWithStudentResponse struct {
	Account      AccountResponse      `json:"account"`
	Student      StudentResponse      `json:"student"`
	Registration RegistrationResponse `json:"registration"`
}
