package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/internal/model"
)

// RoomListFilters 房间列表过滤条件
type RoomListFilters struct {
	BuildingID string
	Status     string
}

// RoomRepository 房间数据访问接口
type RoomRepository interface {
	Create(ctx context.Context, room *model.Room) error
	GetByID(ctx context.Context, id string) (*model.Room, error)
	List(ctx context.Context, filters *RoomListFilters, offset, limit int) ([]model.Room, int64, error)
	// ListEligible 列出指定性别可入住的房间（房型性别匹配或 Mixed，状态 available）
	ListEligible(ctx context.Context, gender string) ([]model.Room, error)
	Update(ctx context.Context, room *model.Room) error
	Delete(ctx context.Context, id string) error
	CountByBuilding(ctx context.Context, buildingID string) (int64, error)
	CountByRoomType(ctx context.Context, roomTypeID string) (int64, error)
}

// roomRepo RoomRepository 的 GORM 实现
type roomRepo struct {
	db *gorm.DB
}

// NewRoomRepo 创建 RoomRepository 实例
func NewRoomRepo(db *gorm.DB) RoomRepository {
	return &roomRepo{db: db}
}

func (r *roomRepo) Create(ctx context.Context, room *model.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *roomRepo) GetByID(ctx context.Context, id string) (*model.Room, error) {
	var room model.Room
	err := r.db.WithContext(ctx).
		Preload("Building").
		Preload("RoomType").
		Where("room_id = ?", id).
		First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepo) List(ctx context.Context, filters *RoomListFilters, offset, limit int) ([]model.Room, int64, error) {
	var rooms []model.Room
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Room{})

	if filters != nil {
		if filters.BuildingID != "" {
			db = db.Where("building_id = ?", filters.BuildingID)
		}
		if filters.Status != "" {
			db = db.Where("status = ?", filters.Status)
		}
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Preload("Building").
		Preload("RoomType").
		Offset(offset).Limit(limit).
		Order("name").
		Find(&rooms).Error; err != nil {
		return nil, 0, err
	}

	return rooms, total, nil
}

func (r *roomRepo) ListEligible(ctx context.Context, gender string) ([]model.Room, error) {
	var rooms []model.Room
	err := r.db.WithContext(ctx).
		Joins("JOIN room_types ON room_types.room_type_id = rooms.room_type_id").
		Where("rooms.status = ?", model.RoomStatusAvailable).
		Where("room_types.gender IN ?", []string{gender, model.GenderMixed}).
		Preload("Building").
		Preload("RoomType").
		Order("rooms.name").
		Find(&rooms).Error
	return rooms, err
}

func (r *roomRepo) Update(ctx context.Context, room *model.Room) error {
	return r.db.WithContext(ctx).Save(room).Error
}

func (r *roomRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("room_id = ?", id).
		Delete(&model.Room{}).Error
}

func (r *roomRepo) CountByBuilding(ctx context.Context, buildingID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Room{}).
		Where("building_id = ?", buildingID).
		Count(&count).Error
	return count, err
}

func (r *roomRepo) CountByRoomType(ctx context.Context, roomTypeID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Room{}).
		Where("room_type_id = ?", roomTypeID).
		Count(&count).Error
	return count, err
}
