package dto

import "encoding/json"

// NullableID 三态可空关联 ID：
// 字段缺省（不更新）/ 显式 null（清空关联）/ 给定值（重设关联）。
// 普通指针字段无法区分"缺省"与"null"，清空关联的更新必须依赖该类型。
type NullableID struct {
	Present bool   `json:"-"` // 字段是否出现在请求体中
	Valid   bool   `json:"-"` // Present 且值非 null
	Value   string `json:"-"`
}

// UnmarshalJSON 实现三态解析；字段缺省时 UnmarshalJSON 不会被调用，Present 保持 false
func (n *NullableID) UnmarshalJSON(data []byte) error {
	n.Present = true
	if string(data) == "null" {
		n.Valid = false
		n.Value = ""
		return nil
	}
	if err := json.Unmarshal(data, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// MarshalJSON 对称序列化（主要用于测试）
func (n NullableID) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// IsClear 字段显式传 null，请求清空该关联
func (n NullableID) IsClear() bool { return n.Present && !n.Valid }

// IsSet 字段携带具体值
func (n NullableID) IsSet() bool { return n.Present && n.Valid }

// ── 账单模块 DTO ──

// CreateInvoiceRequest 创建账单请求
// 电价/水价至少其一必填（与 Schema CHECK 一致）
type CreateInvoiceRequest struct {
	RoomID             string  `json:"room_id"              binding:"required,uuid"`
	InvoiceDate        string  `json:"invoice_date"         binding:"required"`
	Status             string  `json:"status"               binding:"omitempty,oneof=unpaid paid"`
	UtilitiesID        *string `json:"utilities_id"         binding:"omitempty,uuid"`
	ElectricityPriceID *string `json:"electricity_price_id" binding:"omitempty,uuid"`
	WaterPriceID       *string `json:"water_price_id"       binding:"omitempty,uuid"`
}

// UpdateInvoiceRequest 更新账单请求
// 关联字段为三态：缺省=不动，null=清空，值=重设
type UpdateInvoiceRequest struct {
	InvoiceDate        *string    `json:"invoice_date"`
	Status             *string    `json:"status" binding:"omitempty,oneof=unpaid paid"`
	UtilitiesID        NullableID `json:"utilities_id"`
	ElectricityPriceID NullableID `json:"electricity_price_id"`
	WaterPriceID       NullableID `json:"water_price_id"`
}

// InvoiceListRequest 账单列表查询参数
type InvoiceListRequest struct {
	PaginationRequest
	RoomID   string `form:"room_id"  binding:"omitempty,uuid"`
	Status   string `form:"status"   binding:"omitempty,oneof=unpaid paid"`
	DateFrom string `form:"date_from"`
	DateTo   string `form:"date_to"`
}

// InvoiceResponse 账单响应
type InvoiceResponse struct {
	ID                 string             `json:"id"`
	RoomID             string             `json:"room_id"`
	Room               *RoomResponse      `json:"room,omitempty"`
	UtilitiesID        *string            `json:"utilities_id,omitempty"`
	ElectricityPriceID *string            `json:"electricity_price_id,omitempty"`
	WaterPriceID       *string            `json:"water_price_id,omitempty"`
	Utilities          *UtilitiesResponse `json:"utilities,omitempty"`
	ElectricityPrice   *PriceListResponse `json:"electricity_price,omitempty"`
	WaterPrice         *PriceListResponse `json:"water_price,omitempty"`
	InvoiceDate        string             `json:"invoice_date"`
	Status             string             `json:"status"`
}

// InvoiceTotalResponse 账单合计响应
type InvoiceTotalResponse struct {
	ElectricityUsage int64 `json:"electricity_usage"`
	TotalElectricity int64 `json:"total_electricity"`
	WaterUsage       int64 `json:"water_usage"`
	TotalWater       int64 `json:"total_water"`
	Total            int64 `json:"total"`
}
