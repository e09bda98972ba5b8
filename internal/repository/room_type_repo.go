package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/internal/model"
)

// RoomTypeRepository 房型数据访问接口
type RoomTypeRepository interface {
	Create(ctx context.Context, roomType *model.RoomType) error
	GetByID(ctx context.Context, id string) (*model.RoomType, error)
	List(ctx context.Context) ([]model.RoomType, error)
	Update(ctx context.Context, roomType *model.RoomType) error
	Delete(ctx context.Context, id string) error
}

type roomTypeRepo struct {
	db *gorm.DB
}

// NewRoomTypeRepo 创建 RoomTypeRepository 实例
func NewRoomTypeRepo(db *gorm.DB) RoomTypeRepository {
	return &roomTypeRepo{db: db}
}

func (r *roomTypeRepo) Create(ctx context.Context, roomType *model.RoomType) error {
	return r.db.WithContext(ctx).Create(roomType).Error
}

func (r *roomTypeRepo) GetByID(ctx context.Context, id string) (*model.RoomType, error) {
	var roomType model.RoomType
	err := r.db.WithContext(ctx).
		Where("room_type_id = ?", id).
		First(&roomType).Error
	if err != nil {
		return nil, err
	}
	return &roomType, nil
}

func (r *roomTypeRepo) List(ctx context.Context) ([]model.RoomType, error) {
	var roomTypes []model.RoomType
	err := r.db.WithContext(ctx).
		Order("name").
		Find(&roomTypes).Error
	return roomTypes, err
}

func (r *roomTypeRepo) Update(ctx context.Context, roomType *model.RoomType) error {
	return r.db.WithContext(ctx).Save(roomType).Error
}

func (r *roomTypeRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("room_type_id = ?", id).
		Delete(&model.RoomType{}).Error
}
