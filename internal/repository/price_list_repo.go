package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/internal/model"
)

// PriceListRepository 价目数据访问接口
type PriceListRepository interface {
	Create(ctx context.Context, price *model.PriceList) error
	GetByID(ctx context.Context, id string) (*model.PriceList, error)
	GetByCostType(ctx context.Context, costType string) (*model.PriceList, error)
	List(ctx context.Context) ([]model.PriceList, error)
	Update(ctx context.Context, price *model.PriceList) error
	Delete(ctx context.Context, id string) error
}

type priceListRepo struct {
	db *gorm.DB
}

// NewPriceListRepo 创建 PriceListRepository 实例
func NewPriceListRepo(db *gorm.DB) PriceListRepository {
	return &priceListRepo{db: db}
}

func (r *priceListRepo) Create(ctx context.Context, price *model.PriceList) error {
	return r.db.WithContext(ctx).Create(price).Error
}

func (r *priceListRepo) GetByID(ctx context.Context, id string) (*model.PriceList, error) {
	var price model.PriceList
	err := r.db.WithContext(ctx).
		Where("price_list_id = ?", id).
		First(&price).Error
	if err != nil {
		return nil, err
	}
	return &price, nil
}

func (r *priceListRepo) GetByCostType(ctx context.Context, costType string) (*model.PriceList, error) {
	var price model.PriceList
	err := r.db.WithContext(ctx).
		Where("cost_type = ?", costType).
		First(&price).Error
	if err != nil {
		return nil, err
	}
	return &price, nil
}

func (r *priceListRepo) List(ctx context.Context) ([]model.PriceList, error) {
	var prices []model.PriceList
	err := r.db.WithContext(ctx).
		Order("cost_type").
		Find(&prices).Error
	return prices, err
}

func (r *priceListRepo) Update(ctx context.Context, price *model.PriceList) error {
	return r.db.WithContext(ctx).Save(price).Error
}

func (r *priceListRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("price_list_id = ?", id).
		Delete(&model.PriceList{}).Error
}
