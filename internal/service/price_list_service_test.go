package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/internal/dto"
	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/internal/model"
)

// ── 测试辅助 ──

func setupTestPriceListService() (PriceListService, *testRepos) {
	repos := newTestRepos()
	svc := NewPriceListService(repos.repo, zap.NewNop())
	return svc, repos
}

// ── Create 测试 ──

func TestPriceListService_Create_Success(t *testing.T) {
	svc, _ := setupTestPriceListService()

	result, err := svc.Create(context.Background(), &dto.CreatePriceListRequest{
		CostType: "electricity",
		Price:    3500,
		Unit:     "kWh",
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.Price != 3500 {
		t.Errorf("期望Price=3500，实际=%d", result.Price)
	}
}

func TestPriceListService_Create_NegativePrice(t *testing.T) {
	svc, _ := setupTestPriceListService()

	_, err := svc.Create(context.Background(), &dto.CreatePriceListRequest{
		CostType: "electricity",
		Price:    -1,
		Unit:     "kWh",
	})
	if !errors.Is(err, ErrPriceListNegative) {
		t.Errorf("期望 ErrPriceListNegative，实际: %v", err)
	}
}

func TestPriceListService_Create_CostTypeTaken(t *testing.T) {
	svc, repos := setupTestPriceListService()
	repos.priceList.prices["price-elec"] = &model.PriceList{
		PriceListID: "price-elec",
		CostType:    "electricity",
		Price:       3500,
		Unit:        "kWh",
	}

	_, err := svc.Create(context.Background(), &dto.CreatePriceListRequest{
		CostType: "electricity",
		Price:    4000,
		Unit:     "kWh",
	})
	if !errors.Is(err, ErrCostTypeTaken) {
		t.Errorf("期望 ErrCostTypeTaken，实际: %v", err)
	}
}

// ── Update 测试 ──

func TestPriceListService_Update_NegativePrice(t *testing.T) {
	svc, repos := setupTestPriceListService()
	repos.priceList.prices["price-elec"] = &model.PriceList{
		PriceListID: "price-elec",
		CostType:    "electricity",
		Price:       3500,
		Unit:        "kWh",
	}

	negative := int64(-100)
	_, err := svc.Update(context.Background(), "price-elec", &dto.UpdatePriceListRequest{
		Price: &negative,
	})
	if !errors.Is(err, ErrPriceListNegative) {
		t.Errorf("期望 ErrPriceListNegative，实际: %v", err)
	}
}

func TestPriceListService_Update_KeepOwnCostType(t *testing.T) {
	svc, repos := setupTestPriceListService()
	repos.priceList.prices["price-elec"] = &model.PriceList{
		PriceListID: "price-elec",
		CostType:    "electricity",
		Price:       3500,
		Unit:        "kWh",
	}

	// 提交与自身相同的费用类型不应触发冲突
	costType := "electricity"
	newPrice := int64(3800)
	result, err := svc.Update(context.Background(), "price-elec", &dto.UpdatePriceListRequest{
		CostType: &costType,
		Price:    &newPrice,
	})
	if err != nil {
		t.Fatalf("沿用自身费用类型的更新应成功: %v", err)
	}
	if result.Price != 3800 {
		t.Errorf("期望Price=3800，实际=%d", result.Price)
	}
}

// ── Delete 测试 ──

func TestPriceListService_Delete_ReferencedByInvoice(t *testing.T) {
	svc, repos := setupTestPriceListService()
	repos.priceList.prices["price-water"] = &model.PriceList{
		PriceListID: "price-water",
		CostType:    "water",
		Price:       15000,
		Unit:        "m3",
	}
	waterID := "price-water"
	repos.invoice.invoices["inv-001"] = &model.Invoice{
		InvoiceID:    "inv-001",
		RoomID:       "room-101",
		WaterPriceID: &waterID,
		Status:       model.InvoiceStatusUnpaid,
	}

	err := svc.Delete(context.Background(), "price-water")
	if !errors.Is(err, ErrPriceListInUse) {
		t.Errorf("期望 ErrPriceListInUse，实际: %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), "1 条引用") {
		t.Errorf("冲突错误应携带引用条数，实际: %v", err)
	}
}

func TestPriceListService_Delete_Success(t *testing.T) {
	svc, repos := setupTestPriceListService()
	repos.priceList.prices["price-elec"] = &model.PriceList{
		PriceListID: "price-elec",
		CostType:    "electricity",
		Price:       3500,
		Unit:        "kWh",
	}

	if err := svc.Delete(context.Background(), "price-elec"); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}
}
