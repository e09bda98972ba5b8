package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	db *gorm.DB

	Account      AccountRepository
	Role         RoleRepository
	Student      StudentRepository
	Building     BuildingRepository
	RoomType     RoomTypeRepository
	Room         RoomRepository
	Semester     SemesterRepository
	Registration RegistrationRepository
	Utilities    UtilitiesRepository
	PriceList    PriceListRepository
	Invoice      InvoiceRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:           db,
		Account:      NewAccountRepo(db),
		Role:         NewRoleRepo(db),
		Student:      NewStudentRepo(db),
		Building:     NewBuildingRepo(db),
		RoomType:     NewRoomTypeRepo(db),
		Room:         NewRoomRepo(db),
		Semester:     NewSemesterRepo(db),
		Registration: NewRegistrationRepo(db),
		Utilities:    NewUtilitiesRepo(db),
		PriceList:    NewPriceListRepo(db),
		Invoice:      NewInvoiceRepo(db),
	}
}

// BeginTx 开启数据库事务
// 返回的 *gorm.DB 需配合 WithTx 使用，并由调用方负责 Commit/Rollback
func (r *Repository) BeginTx(ctx context.Context) (*gorm.DB, error) {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return tx, nil
}

// WithTx 返回绑定到指定事务的 Repository 聚合
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	if tx == nil {
		return r
	}
	return NewRepository(tx)
}
