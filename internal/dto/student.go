package dto

// ── 学生模块 DTO ──

// CreateStudentRequest 创建学生档案请求
// AccountID 必须指向已存在账号（档案不自带开户）
type CreateStudentRequest struct {
	AccountID   string `json:"account_id"    binding:"required,uuid"`
	FullName    string `json:"full_name"     binding:"required,min=2,max=100"`
	StudentCode string `json:"student_code"  binding:"required,max=20"`
	Gender      string `json:"gender"        binding:"required,oneof=Male Female"`
	DateOfBirth string `json:"date_of_birth" binding:"required"` // "2004-09-15"
	Email       string `json:"email"         binding:"required,email"`
	Phone       string `json:"phone"         binding:"required,len=10,numeric"`
	IDCard      string `json:"id_card"       binding:"required,max=20"`
	Address     string `json:"address"       binding:"omitempty,max=255"`
}

// UpdateStudentRequest 更新学生档案请求（仅更新非 nil 字段）
type UpdateStudentRequest struct {
	FullName    *string `json:"full_name"     binding:"omitempty,min=2,max=100"`
	Gender      *string `json:"gender"        binding:"omitempty,oneof=Male Female"`
	DateOfBirth *string `json:"date_of_birth"`
	Email       *string `json:"email"         binding:"omitempty,email"`
	Phone       *string `json:"phone"         binding:"omitempty,len=10,numeric"`
	IDCard      *string `json:"id_card"       binding:"omitempty,max=20"`
	Address     *string `json:"address"       binding:"omitempty,max=255"`
}

// UpdateStudentStatusRequest 审核学生档案请求
// 审核为管理动作，状态可直接设置，不做状态机限制
type UpdateStudentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected"`
}

// StudentListRequest 学生列表查询参数
type StudentListRequest struct {
	PaginationRequest
	Status  string `form:"status"  binding:"omitempty,oneof=pending approved rejected"`
	Gender  string `form:"gender"  binding:"omitempty,oneof=Male Female"`
	Keyword string `form:"keyword" binding:"omitempty,max=50"`
}

// StudentResponse 学生档案响应
type StudentResponse struct {
	ID          string           `json:"id"`
	FullName    string           `json:"full_name"`
	StudentCode string           `json:"student_code"`
	Gender      string           `json:"gender"`
	DateOfBirth string           `json:"date_of_birth"`
	Email       string           `json:"email"`
	Phone       string           `json:"phone"`
	IDCard      string           `json:"id_card"`
	Address     string           `json:"address"`
	Status      string           `json:"status"`
	Account     *AccountResponse `json:"account,omitempty"`
	CreatedAt   string           `json:"created_at"`
}

// ImportStudentResponse 批量导入学生响应
type ImportStudentResponse struct {
	Total   int                  `json:"total"`
	Success int                  `json:"success"`
	Failed  int                  `json:"failed"`
	Errors  []ImportStudentError `json:"errors,omitempty"`
}

// ImportStudentError 导入错误详情
type ImportStudentError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}
