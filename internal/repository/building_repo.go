package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/internal/model"
)

// BuildingRepository 楼栋数据访问接口
type BuildingRepository interface {
	Create(ctx context.Context, building *model.Building) error
	GetByID(ctx context.Context, id string) (*model.Building, error)
	GetByName(ctx context.Context, name string) (*model.Building, error)
	List(ctx context.Context) ([]model.Building, error)
	Update(ctx context.Context, building *model.Building) error
	Delete(ctx context.Context, id string) error
}

type buildingRepo struct {
	db *gorm.DB
}

// NewBuildingRepo 创建 BuildingRepository 实例
func NewBuildingRepo(db *gorm.DB) BuildingRepository {
	return &buildingRepo{db: db}
}

func (r *buildingRepo) Create(ctx context.Context, building *model.Building) error {
	return r.db.WithContext(ctx).Create(building).Error
}

func (r *buildingRepo) GetByID(ctx context.Context, id string) (*model.Building, error) {
	var building model.Building
	err := r.db.WithContext(ctx).
		Where("building_id = ?", id).
		First(&building).Error
	if err != nil {
		return nil, err
	}
	return &building, nil
}

func (r *buildingRepo) GetByName(ctx context.Context, name string) (*model.Building, error) {
	var building model.Building
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&building).Error
	if err != nil {
		return nil, err
	}
	return &building, nil
}

func (r *buildingRepo) List(ctx context.Context) ([]model.Building, error) {
	var buildings []model.Building
	err := r.db.WithContext(ctx).
		Order("name").
		Find(&buildings).Error
	return buildings, err
}

func (r *buildingRepo) Update(ctx context.Context, building *model.Building) error {
	return r.db.WithContext(ctx).Save(building).Error
}

func (r *buildingRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("building_id = ?", id).
		Delete(&model.Building{}).Error
}
