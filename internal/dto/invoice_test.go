package dto

import (
	"encoding/json"
	"testing"
)

// 三态字段的行为由 JSON 请求体驱动：缺省 / null / 值 必须可区分
func TestNullableID_Unmarshal(t *testing.T) {
	t.Run("字段缺省", func(t *testing.T) {
		var req UpdateInvoiceRequest
		if err := json.Unmarshal([]byte(`{"status":"paid"}`), &req); err != nil {
			t.Fatalf("解析失败: %v", err)
		}
		if req.UtilitiesID.Present {
			t.Error("缺省字段 Present 应为 false")
		}
		if req.UtilitiesID.IsClear() || req.UtilitiesID.IsSet() {
			t.Error("缺省字段既非清空也非重设")
		}
	})

	t.Run("显式null", func(t *testing.T) {
		var req UpdateInvoiceRequest
		if err := json.Unmarshal([]byte(`{"utilities_id":null}`), &req); err != nil {
			t.Fatalf("解析失败: %v", err)
		}
		if !req.UtilitiesID.IsClear() {
			t.Error("显式 null 应判定为清空")
		}
		if req.UtilitiesID.IsSet() {
			t.Error("显式 null 不应判定为重设")
		}
	})

	t.Run("携带值", func(t *testing.T) {
		var req UpdateInvoiceRequest
		if err := json.Unmarshal([]byte(`{"water_price_id":"price-water"}`), &req); err != nil {
			t.Fatalf("解析失败: %v", err)
		}
		if !req.WaterPriceID.IsSet() {
			t.Error("携带值应判定为重设")
		}
		if req.WaterPriceID.Value != "price-water" {
			t.Errorf("期望Value=price-water，实际=%s", req.WaterPriceID.Value)
		}
		// 其余字段不受影响
		if req.UtilitiesID.Present || req.ElectricityPriceID.Present {
			t.Error("未出现的字段 Present 应为 false")
		}
	})

	t.Run("非法类型", func(t *testing.T) {
		var req UpdateInvoiceRequest
		if err := json.Unmarshal([]byte(`{"utilities_id":123}`), &req); err == nil {
			t.Error("数字值应解析失败")
		}
	})
}

func TestNullableID_Marshal(t *testing.T) {
	null, _ := json.Marshal(NullableID{Present: true, Valid: false})
	if string(null) != "null" {
		t.Errorf("无效值应序列化为 null，实际=%s", null)
	}

	val, _ := json.Marshal(NullableID{Present: true, Valid: true, Value: "util-001"})
	if string(val) != `"util-001"` {
		t.Errorf("有效值应序列化为字符串，实际=%s", val)
	}
}
