package dto

// ── 水电抄表模块 DTO ──

// CreateUtilitiesRequest 录入抄表请求
type CreateUtilitiesRequest struct {
	RoomID                   string `json:"room_id"                    binding:"required,uuid"`
	StartDate                string `json:"start_date"                 binding:"required"`
	EndDate                  string `json:"end_date"                   binding:"required"`
	PreviousElectricityMeter int64  `json:"previous_electricity_meter" binding:"min=0"`
	CurrentElectricityMeter  int64  `json:"current_electricity_meter"  binding:"min=0"`
	PreviousWaterMeter       int64  `json:"previous_water_meter"       binding:"min=0"`
	CurrentWaterMeter        int64  `json:"current_water_meter"        binding:"min=0"`
}

// UpdateUtilitiesRequest 更新抄表请求（仅更新非 nil 字段）
type UpdateUtilitiesRequest struct {
	StartDate                *string `json:"start_date"`
	EndDate                  *string `json:"end_date"`
	PreviousElectricityMeter *int64  `json:"previous_electricity_meter" binding:"omitempty,min=0"`
	CurrentElectricityMeter  *int64  `json:"current_electricity_meter"  binding:"omitempty,min=0"`
	PreviousWaterMeter       *int64  `json:"previous_water_meter"       binding:"omitempty,min=0"`
	CurrentWaterMeter        *int64  `json:"current_water_meter"        binding:"omitempty,min=0"`
}

// UtilitiesListRequest 抄表列表查询参数
type UtilitiesListRequest struct {
	PaginationRequest
	RoomID   string `form:"room_id"   binding:"omitempty,uuid"`
	DateFrom string `form:"date_from"`
	DateTo   string `form:"date_to"`
}

// UtilitiesResponse 抄表记录响应
type UtilitiesResponse struct {
	ID                       string        `json:"id"`
	RoomID                   string        `json:"room_id"`
	Room                     *RoomResponse `json:"room,omitempty"`
	StartDate                string        `json:"start_date"`
	EndDate                  string        `json:"end_date"`
	PreviousElectricityMeter int64         `json:"previous_electricity_meter"`
	CurrentElectricityMeter  int64         `json:"current_electricity_meter"`
	PreviousWaterMeter       int64         `json:"previous_water_meter"`
	CurrentWaterMeter        int64         `json:"current_water_meter"`
}

// UsageResponse 周期用量响应
type UsageResponse struct {
	ElectricityUsage int64 `json:"electricity_usage"`
	WaterUsage       int64 `json:"water_usage"`
}
