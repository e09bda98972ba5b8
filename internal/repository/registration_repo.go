package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/internal/model"
)

// 活动登记状态集合（占用名额的状态）
var activeStatuses = []string{
	model.RegistrationStatusPending,
	model.RegistrationStatusApproved,
}

// RegistrationListFilters 登记列表过滤条件
type RegistrationListFilters struct {
	StudentID  string
	RoomID     string
	SemesterID string
	Status     string
}

// RegistrationRepository 住宿登记数据访问接口
type RegistrationRepository interface {
	Create(ctx context.Context, reg *model.RoomRegistration) error
	GetByID(ctx context.Context, id string) (*model.RoomRegistration, error)
	// FindActive 查找 (student, semester) 的活动登记；excludeID 非空时排除该行（更新场景）
	FindActive(ctx context.Context, studentID, semesterID, excludeID string) (*model.RoomRegistration, error)
	// CountActiveByRoom 统计房间当前占用床位数（pending/approved 登记数）
	CountActiveByRoom(ctx context.Context, roomID string) (int64, error)
	CountBySemester(ctx context.Context, semesterID string) (int64, error)
	CountByRoom(ctx context.Context, roomID string) (int64, error)
	List(ctx context.Context, filters *RegistrationListFilters, offset, limit int) ([]model.RoomRegistration, int64, error)
	Update(ctx context.Context, reg *model.RoomRegistration) error
	Delete(ctx context.Context, id string) error
}

// registrationRepo RegistrationRepository 的 GORM 实现
type registrationRepo struct {
	db *gorm.DB
}

// NewRegistrationRepo 创建 RegistrationRepository 实例
func NewRegistrationRepo(db *gorm.DB) RegistrationRepository {
	return &registrationRepo{db: db}
}

func (r *registrationRepo) Create(ctx context.Context, reg *model.RoomRegistration) error {
	return r.db.WithContext(ctx).Create(reg).Error
}

func (r *registrationRepo) GetByID(ctx context.Context, id string) (*model.RoomRegistration, error) {
	var reg model.RoomRegistration
	err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Room").
		Preload("Room.Building").
		Preload("Room.RoomType").
		Preload("Semester").
		Where("registration_id = ?", id).
		First(&reg).Error
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *registrationRepo) FindActive(ctx context.Context, studentID, semesterID, excludeID string) (*model.RoomRegistration, error) {
	db := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Where("semester_id = ?", semesterID).
		Where("status IN ?", activeStatuses)
	if excludeID != "" {
		db = db.Where("registration_id <> ?", excludeID)
	}

	var reg model.RoomRegistration
	if err := db.First(&reg).Error; err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *registrationRepo) CountActiveByRoom(ctx context.Context, roomID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.RoomRegistration{}).
		Where("room_id = ?", roomID).
		Where("status IN ?", activeStatuses).
		Count(&count).Error
	return count, err
}

func (r *registrationRepo) CountBySemester(ctx context.Context, semesterID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.RoomRegistration{}).
		Where("semester_id = ?", semesterID).
		Count(&count).Error
	return count, err
}

func (r *registrationRepo) CountByRoom(ctx context.Context, roomID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.RoomRegistration{}).
		Where("room_id = ?", roomID).
		Count(&count).Error
	return count, err
}

func (r *registrationRepo) List(ctx context.Context, filters *RegistrationListFilters, offset, limit int) ([]model.RoomRegistration, int64, error) {
	var regs []model.RoomRegistration
	var total int64

	db := r.db.WithContext(ctx).Model(&model.RoomRegistration{})

	if filters != nil {
		if filters.StudentID != "" {
			db = db.Where("student_id = ?", filters.StudentID)
		}
		if filters.RoomID != "" {
			db = db.Where("room_id = ?", filters.RoomID)
		}
		if filters.SemesterID != "" {
			db = db.Where("semester_id = ?", filters.SemesterID)
		}
		if filters.Status != "" {
			db = db.Where("status = ?", filters.Status)
		}
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Preload("Student").
		Preload("Room").
		Preload("Semester").
		Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&regs).Error; err != nil {
		return nil, 0, err
	}

	return regs, total, nil
}

func (r *registrationRepo) Update(ctx context.Context, reg *model.RoomRegistration) error {
	return r.db.WithContext(ctx).Save(reg).Error
}

func (r *registrationRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("registration_id = ?", id).
		Delete(&model.RoomRegistration{}).Error
}
