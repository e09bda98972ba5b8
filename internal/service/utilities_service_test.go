package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/internal/dto"
	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/internal/model"
)

// ── 测试辅助 ──

func setupTestUtilitiesService() (UtilitiesService, *testRepos) {
	repos := newTestRepos()
	repos.room.rooms["room-101"] = &model.Room{
		RoomID:     "room-101",
		Name:       "101",
		BuildingID: "bld-A",
		RoomTypeID: "rt-001",
		BedCount:   4,
		Status:     model.RoomStatusAvailable,
	}
	svc := NewUtilitiesService(repos.repo, zap.NewNop())
	return svc, repos
}

func seedUtilities(repos *testRepos, id string) {
	repos.utilities.records[id] = &model.Utilities{
		UtilitiesID:              id,
		RoomID:                   "room-101",
		StartDate:                time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:                  time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
		PreviousElectricityMeter: 1000,
		CurrentElectricityMeter:  1200,
		PreviousWaterMeter:       500,
		CurrentWaterMeter:        550,
	}
}

// ── Create 测试 ──

func TestUtilitiesService_Create_Success(t *testing.T) {
	svc, _ := setupTestUtilitiesService()

	req := &dto.CreateUtilitiesRequest{
		RoomID:                   "room-101",
		StartDate:                "2025-09-01",
		EndDate:                  "2025-10-01",
		PreviousElectricityMeter: 1000,
		CurrentElectricityMeter:  1200,
		PreviousWaterMeter:       500,
		CurrentWaterMeter:        550,
	}

	result, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.CurrentElectricityMeter != 1200 {
		t.Errorf("期望本期电表读数=1200，实际=%d", result.CurrentElectricityMeter)
	}
}

func TestUtilitiesService_Create_ElectricityNotMonotonic(t *testing.T) {
	svc, _ := setupTestUtilitiesService()

	req := &dto.CreateUtilitiesRequest{
		RoomID:                   "room-101",
		StartDate:                "2025-09-01",
		EndDate:                  "2025-10-01",
		PreviousElectricityMeter: 1200,
		CurrentElectricityMeter:  1000,
		PreviousWaterMeter:       500,
		CurrentWaterMeter:        550,
	}

	_, err := svc.Create(context.Background(), req)
	if !errors.Is(err, ErrMeterNotMonotonic) {
		t.Errorf("期望 ErrMeterNotMonotonic，实际: %v", err)
	}
}

func TestUtilitiesService_Create_WaterNotMonotonic(t *testing.T) {
	svc, _ := setupTestUtilitiesService()

	req := &dto.CreateUtilitiesRequest{
		RoomID:                   "room-101",
		StartDate:                "2025-09-01",
		EndDate:                  "2025-10-01",
		PreviousElectricityMeter: 1000,
		CurrentElectricityMeter:  1200,
		PreviousWaterMeter:       550,
		CurrentWaterMeter:        500,
	}

	_, err := svc.Create(context.Background(), req)
	if !errors.Is(err, ErrMeterNotMonotonic) {
		t.Errorf("期望 ErrMeterNotMonotonic，实际: %v", err)
	}
}

func TestUtilitiesService_Create_EqualMetersAllowed(t *testing.T) {
	svc, _ := setupTestUtilitiesService()

	// 读数持平（零用量）是合法的
	req := &dto.CreateUtilitiesRequest{
		RoomID:                   "room-101",
		StartDate:                "2025-09-01",
		EndDate:                  "2025-10-01",
		PreviousElectricityMeter: 1000,
		CurrentElectricityMeter:  1000,
		PreviousWaterMeter:       500,
		CurrentWaterMeter:        500,
	}

	if _, err := svc.Create(context.Background(), req); err != nil {
		t.Fatalf("零用量抄表应合法: %v", err)
	}
}

func TestUtilitiesService_Create_DateOrderInvalid(t *testing.T) {
	svc, _ := setupTestUtilitiesService()

	req := &dto.CreateUtilitiesRequest{
		RoomID:                   "room-101",
		StartDate:                "2025-10-01",
		EndDate:                  "2025-09-01",
		PreviousElectricityMeter: 1000,
		CurrentElectricityMeter:  1200,
	}

	_, err := svc.Create(context.Background(), req)
	if !errors.Is(err, ErrUtilitiesDateOrder) {
		t.Errorf("期望 ErrUtilitiesDateOrder，实际: %v", err)
	}
}

func TestUtilitiesService_Create_RoomNotFound(t *testing.T) {
	svc, _ := setupTestUtilitiesService()

	req := &dto.CreateUtilitiesRequest{
		RoomID:    "nonexistent",
		StartDate: "2025-09-01",
		EndDate:   "2025-10-01",
	}

	_, err := svc.Create(context.Background(), req)
	if !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("期望 ErrRoomNotFound，实际: %v", err)
	}
}

// ── Update 测试 ──

func TestUtilitiesService_Update_MergedStateNotMonotonic(t *testing.T) {
	svc, repos := setupTestUtilitiesService()
	seedUtilities(repos, "util-001")

	// 仅下调本期读数，合并后低于上期 → 拒绝
	lower := int64(900)
	_, err := svc.Update(context.Background(), "util-001", &dto.UpdateUtilitiesRequest{
		CurrentElectricityMeter: &lower,
	})
	if !errors.Is(err, ErrMeterNotMonotonic) {
		t.Errorf("期望 ErrMeterNotMonotonic，实际: %v", err)
	}
}

func TestUtilitiesService_Update_DateOrderInvalid(t *testing.T) {
	svc, repos := setupTestUtilitiesService()
	seedUtilities(repos, "util-001")

	badEnd := "2025-08-01"
	_, err := svc.Update(context.Background(), "util-001", &dto.UpdateUtilitiesRequest{
		EndDate: &badEnd,
	})
	if !errors.Is(err, ErrUtilitiesDateOrder) {
		t.Errorf("期望 ErrUtilitiesDateOrder，实际: %v", err)
	}
}

func TestUtilitiesService_Update_Success(t *testing.T) {
	svc, repos := setupTestUtilitiesService()
	seedUtilities(repos, "util-001")

	higher := int64(1300)
	result, err := svc.Update(context.Background(), "util-001", &dto.UpdateUtilitiesRequest{
		CurrentElectricityMeter: &higher,
	})
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if result.CurrentElectricityMeter != 1300 {
		t.Errorf("期望本期电表读数=1300，实际=%d", result.CurrentElectricityMeter)
	}
}

// ── Delete 测试 ──

func TestUtilitiesService_Delete_ReferencedByInvoice(t *testing.T) {
	svc, repos := setupTestUtilitiesService()
	seedUtilities(repos, "util-001")
	utilitiesID := "util-001"
	repos.invoice.invoices["inv-001"] = &model.Invoice{
		InvoiceID:   "inv-001",
		RoomID:      "room-101",
		UtilitiesID: &utilitiesID,
		Status:      model.InvoiceStatusUnpaid,
	}

	err := svc.Delete(context.Background(), "util-001")
	if !errors.Is(err, ErrUtilitiesInUse) {
		t.Errorf("期望 ErrUtilitiesInUse，实际: %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), "1 条引用") {
		t.Errorf("冲突错误应携带引用条数，实际: %v", err)
	}
}

func TestUtilitiesService_Delete_Success(t *testing.T) {
	svc, repos := setupTestUtilitiesService()
	seedUtilities(repos, "util-001")

	if err := svc.Delete(context.Background(), "util-001"); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}
	if _, ok := repos.utilities.records["util-001"]; ok {
		t.Error("记录应已被删除")
	}
}

// ── CalculateUsage 测试 ──

func TestUtilitiesService_CalculateUsage(t *testing.T) {
	svc, repos := setupTestUtilitiesService()
	seedUtilities(repos, "util-001")

	usage, err := svc.CalculateUsage(context.Background(), "util-001")
	if err != nil {
		t.Fatalf("CalculateUsage 应成功: %v", err)
	}
	if usage.ElectricityUsage != 200 {
		t.Errorf("期望用电量=200，实际=%d", usage.ElectricityUsage)
	}
	if usage.WaterUsage != 50 {
		t.Errorf("期望用水量=50，实际=%d", usage.WaterUsage)
	}
}

func TestUtilitiesService_CalculateUsage_NotFound(t *testing.T) {
	svc, _ := setupTestUtilitiesService()

	_, err := svc.CalculateUsage(context.Background(), "nonexistent")
	if !errors.Is(err, ErrUtilitiesNotFound) {
		t.Errorf("期望 ErrUtilitiesNotFound，实际: %v", err)
	}
}
