package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/internal/model"
)

// UtilitiesListFilters 抄表列表过滤条件
type UtilitiesListFilters struct {
	RoomID   string
	DateFrom *time.Time // 匹配 start_date >= DateFrom
	DateTo   *time.Time // 匹配 end_date <= DateTo
}

// UtilitiesRepository 水电抄表数据访问接口
type UtilitiesRepository interface {
	Create(ctx context.Context, utilities *model.Utilities) error
	GetByID(ctx context.Context, id string) (*model.Utilities, error)
	// GetLatestByRoom 取房间最近一期抄表（按 end_date 倒序）
	GetLatestByRoom(ctx context.Context, roomID string) (*model.Utilities, error)
	List(ctx context.Context, filters *UtilitiesListFilters, offset, limit int) ([]model.Utilities, int64, error)
	Update(ctx context.Context, utilities *model.Utilities) error
	Delete(ctx context.Context, id string) error
}

// utilitiesRepo UtilitiesRepository 的 GORM 实现
type utilitiesRepo struct {
	db *gorm.DB
}

// NewUtilitiesRepo 创建 UtilitiesRepository 实例
func NewUtilitiesRepo(db *gorm.DB) UtilitiesRepository {
	return &utilitiesRepo{db: db}
}

func (r *utilitiesRepo) Create(ctx context.Context, utilities *model.Utilities) error {
	return r.db.WithContext(ctx).Create(utilities).Error
}

func (r *utilitiesRepo) GetByID(ctx context.Context, id string) (*model.Utilities, error) {
	var utilities model.Utilities
	err := r.db.WithContext(ctx).
		Preload("Room").
		Where("utilities_id = ?", id).
		First(&utilities).Error
	if err != nil {
		return nil, err
	}
	return &utilities, nil
}

func (r *utilitiesRepo) GetLatestByRoom(ctx context.Context, roomID string) (*model.Utilities, error) {
	var utilities model.Utilities
	err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("end_date DESC").
		First(&utilities).Error
	if err != nil {
		return nil, err
	}
	return &utilities, nil
}

func (r *utilitiesRepo) List(ctx context.Context, filters *UtilitiesListFilters, offset, limit int) ([]model.Utilities, int64, error) {
	var records []model.Utilities
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Utilities{})

	if filters != nil {
		if filters.RoomID != "" {
			db = db.Where("room_id = ?", filters.RoomID)
		}
		if filters.DateFrom != nil {
			db = db.Where("start_date >= ?", *filters.DateFrom)
		}
		if filters.DateTo != nil {
			db = db.Where("end_date <= ?", *filters.DateTo)
		}
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Preload("Room").
		Offset(offset).Limit(limit).
		Order("end_date DESC").
		Find(&records).Error; err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

func (r *utilitiesRepo) Update(ctx context.Context, utilities *model.Utilities) error {
	return r.db.WithContext(ctx).Save(utilities).Error
}

func (r *utilitiesRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("utilities_id = ?", id).
		Delete(&model.Utilities{}).Error
}
