package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/internal/dto"
	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/internal/model"
)

// ── 测试辅助 ──

func setupTestProvisioningService() (ProvisioningService, *testRepos) {
	repos := newTestRepos()
	svc := NewProvisioningService(repos.repo, zap.NewNop())
	return svc, repos
}

func validRegisterWithStudentRequest() *dto.RegisterWithStudentRequest {
	return &dto.RegisterWithStudentRequest{
		Password:    "Secret123!",
		FullName:    "阮文安",
		StudentCode: "SV2024001",
		Gender:      model.GenderMale,
		DateOfBirth: "2004-09-15",
		Email:       "an@example.com",
		Phone:       "0912345678",
		IDCard:      "079204001234",
		Address:     "胡志明市第一郡",
		RoomID:      "room-101",
		SemesterID:  "sem-001",
	}
}

// ── 登记构造测试 ──

func TestProvisioningService_RegistrationApproved(t *testing.T) {
	req := validRegisterWithStudentRequest()

	reg := provisionedRegistration("acc-001", req)
	if reg.Status != model.RegistrationStatusApproved {
		t.Errorf("合并注册的登记应直接落位 approved，实际=%s", reg.Status)
	}
	if reg.StudentID != "acc-001" || reg.RoomID != req.RoomID || reg.SemesterID != req.SemesterID {
		t.Error("登记应携带学生/房间/学期三元组")
	}
}

// ── 事务前预检测试 ──

func TestProvisioningService_UsernameTaken(t *testing.T) {
	svc, repos := setupTestProvisioningService()
	// 用户名取学号，已有同名账号即拒绝
	repos.account.accounts["acc-001"] = &model.Account{
		AccountID: "acc-001",
		Username:  "SV2024001",
	}

	_, err := svc.RegisterWithStudent(context.Background(), validRegisterWithStudentRequest())
	if !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("期望 ErrUsernameTaken，实际: %v", err)
	}
}

func TestProvisioningService_StudentCodeTaken(t *testing.T) {
	svc, repos := setupTestProvisioningService()
	repos.student.students["stu-001"] = &model.Student{
		StudentID:   "stu-001",
		StudentCode: "SV2024001",
		Email:       "other@example.com",
		Phone:       "0999999999",
	}

	_, err := svc.RegisterWithStudent(context.Background(), validRegisterWithStudentRequest())
	if !errors.Is(err, ErrStudentCodeTaken) {
		t.Errorf("期望 ErrStudentCodeTaken，实际: %v", err)
	}
}

func TestProvisioningService_BadBirthDate(t *testing.T) {
	svc, _ := setupTestProvisioningService()

	req := validRegisterWithStudentRequest()
	req.DateOfBirth = "15/09/2004"

	_, err := svc.RegisterWithStudent(context.Background(), req)
	if !errors.Is(err, ErrStudentDateInvalid) {
		t.Errorf("期望 ErrStudentDateInvalid，实际: %v", err)
	}
}
