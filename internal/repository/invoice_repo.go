package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/internal/model"
)

// InvoiceListFilters 账单列表过滤条件
type InvoiceListFilters struct {
	RoomID   string
	Status   string
	DateFrom *time.Time // 匹配 invoice_date >= DateFrom
	DateTo   *time.Time // 匹配 invoice_date <= DateTo
}

// InvoiceRepository 账单数据访问接口
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *model.Invoice) error
	GetByID(ctx context.Context, id string) (*model.Invoice, error)
	List(ctx context.Context, filters *InvoiceListFilters, offset, limit int) ([]model.Invoice, int64, error)
	Update(ctx context.Context, invoice *model.Invoice) error
	// UpdateColumns 按列更新；值为 nil 的列写入 NULL（关联置空场景）
	UpdateColumns(ctx context.Context, id string, columns map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	CountByUtilities(ctx context.Context, utilitiesID string) (int64, error)
	CountByPriceList(ctx context.Context, priceListID string) (int64, error)
}

// invoiceRepo InvoiceRepository 的 GORM 实现
type invoiceRepo struct {
	db *gorm.DB
}

// NewInvoiceRepo 创建 InvoiceRepository 实例
func NewInvoiceRepo(db *gorm.DB) InvoiceRepository {
	return &invoiceRepo{db: db}
}

func (r *invoiceRepo) Create(ctx context.Context, invoice *model.Invoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

func (r *invoiceRepo) GetByID(ctx context.Context, id string) (*model.Invoice, error) {
	var invoice model.Invoice
	err := r.db.WithContext(ctx).
		Preload("Room").
		Preload("Utilities").
		Preload("ElectricityPrice").
		Preload("WaterPrice").
		Where("invoice_id = ?", id).
		First(&invoice).Error
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepo) List(ctx context.Context, filters *InvoiceListFilters, offset, limit int) ([]model.Invoice, int64, error) {
	var invoices []model.Invoice
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Invoice{})

	if filters != nil {
		if filters.RoomID != "" {
			db = db.Where("room_id = ?", filters.RoomID)
		}
		if filters.Status != "" {
			db = db.Where("status = ?", filters.Status)
		}
		if filters.DateFrom != nil {
			db = db.Where("invoice_date >= ?", *filters.DateFrom)
		}
		if filters.DateTo != nil {
			db = db.Where("invoice_date <= ?", *filters.DateTo)
		}
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Preload("Room").
		Preload("Utilities").
		Offset(offset).Limit(limit).
		Order("invoice_date DESC").
		Find(&invoices).Error; err != nil {
		return nil, 0, err
	}

	return invoices, total, nil
}

func (r *invoiceRepo) Update(ctx context.Context, invoice *model.Invoice) error {
	return r.db.WithContext(ctx).Save(invoice).Error
}

func (r *invoiceRepo) UpdateColumns(ctx context.Context, id string, columns map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&model.Invoice{}).
		Where("invoice_id = ?", id).
		Updates(columns).Error
}

func (r *invoiceRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("invoice_id = ?", id).
		Delete(&model.Invoice{}).Error
}

func (r *invoiceRepo) CountByUtilities(ctx context.Context, utilitiesID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Invoice{}).
		Where("utilities_id = ?", utilitiesID).
		Count(&count).Error
	return count, err
}

func (r *invoiceRepo) CountByPriceList(ctx context.Context, priceListID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Invoice{}).
		Where("electricity_price_id = ? OR water_price_id = ?", priceListID, priceListID).
		Count(&count).Error
	return count, err
}
