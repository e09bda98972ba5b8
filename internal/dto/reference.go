package dto

// ── 基础资料模块 DTO（楼栋 / 房型 / 房间 / 学期 / 价目）──

// CreateBuildingRequest 创建楼栋请求
type CreateBuildingRequest struct {
	Name        string `json:"name"        binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"omitempty,max=255"`
}

// UpdateBuildingRequest 更新楼栋请求
type UpdateBuildingRequest struct {
	Name        *string `json:"name"        binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=255"`
}

// BuildingResponse 楼栋响应
type BuildingResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateRoomTypeRequest 创建房型请求
type CreateRoomTypeRequest struct {
	Name        string `json:"name"        binding:"required,min=1,max=100"`
	Price       int64  `json:"price"       binding:"min=0"`
	Gender      string `json:"gender"      binding:"required,oneof=Male Female Mixed"`
	Description string `json:"description" binding:"omitempty,max=255"`
}

// UpdateRoomTypeRequest 更新房型请求
type UpdateRoomTypeRequest struct {
	Name        *string `json:"name"        binding:"omitempty,min=1,max=100"`
	Price       *int64  `json:"price"       binding:"omitempty,min=0"`
	Gender      *string `json:"gender"      binding:"omitempty,oneof=Male Female Mixed"`
	Description *string `json:"description" binding:"omitempty,max=255"`
}

// RoomTypeResponse 房型响应
type RoomTypeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Gender      string `json:"gender"`
	Description string `json:"description"`
}

// CreateRoomRequest 创建房间请求
type CreateRoomRequest struct {
	Name       string `json:"name"         binding:"required,min=1,max=50"`
	BuildingID string `json:"building_id"  binding:"required,uuid"`
	RoomTypeID string `json:"room_type_id" binding:"required,uuid"`
	BedCount   int    `json:"bed_count"    binding:"required,min=1"`
}

// UpdateRoomRequest 更新房间请求
type UpdateRoomRequest struct {
	Name       *string `json:"name"         binding:"omitempty,min=1,max=50"`
	BuildingID *string `json:"building_id"  binding:"omitempty,uuid"`
	RoomTypeID *string `json:"room_type_id" binding:"omitempty,uuid"`
	BedCount   *int    `json:"bed_count"    binding:"omitempty,min=1"`
	Status     *string `json:"status"       binding:"omitempty,oneof=available occupied maintenance"`
}

// RoomListRequest 房间列表查询参数
type RoomListRequest struct {
	PaginationRequest
	BuildingID string `form:"building_id" binding:"omitempty,uuid"`
	Status     string `form:"status"      binding:"omitempty,oneof=available occupied maintenance"`
}

// RoomResponse 房间响应
type RoomResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	BedCount  int               `json:"bed_count"`
	Status    string            `json:"status"`
	Occupied  int64             `json:"occupied"` // 当前占用床位数（pending/approved 登记数）
	Building  *BuildingResponse `json:"building,omitempty"`
	RoomType  *RoomTypeResponse `json:"room_type,omitempty"`
	CreatedAt string            `json:"created_at"`
}

// CreateSemesterRequest 创建学期请求
type CreateSemesterRequest struct {
	Name      string `json:"name"       binding:"required,min=2,max=100"`
	StartDate string `json:"start_date" binding:"required"` // "2025-09-01"
	EndDate   string `json:"end_date"   binding:"required"` // "2026-01-15"
}

// UpdateSemesterRequest 更新学期请求
type UpdateSemesterRequest struct {
	Name      *string `json:"name"       binding:"omitempty,min=2,max=100"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

// SemesterResponse 学期响应
type SemesterResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// CreatePriceListRequest 创建价目请求
type CreatePriceListRequest struct {
	CostType string `json:"cost_type" binding:"required,min=1,max=50"`
	Price    int64  `json:"price"     binding:"min=0"`
	Unit     string `json:"unit"      binding:"omitempty,max=20"`
}

// UpdatePriceListRequest 更新价目请求
type UpdatePriceListRequest struct {
	CostType *string `json:"cost_type" binding:"omitempty,min=1,max=50"`
	Price    *int64  `json:"price"     binding:"omitempty,min=0"`
	Unit     *string `json:"unit"      binding:"omitempty,max=20"`
}

// PriceListResponse 价目响应
type PriceListResponse struct {
	ID       string `json:"id"`
	CostType string `json:"cost_type"`
	Price    int64  `json:"price"`
	Unit     string `json:"unit"`
}
