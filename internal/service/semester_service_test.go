package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/internal/dto"
	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/internal/model"
)

// ── 测试辅助 ──

func setupTestSemesterService() (SemesterService, *testRepos) {
	repos := newTestRepos()
	svc := NewSemesterService(repos.repo, zap.NewNop())
	return svc, repos
}

// ── Create 测试 ──

func TestSemesterService_Create_Success(t *testing.T) {
	svc, _ := setupTestSemesterService()

	result, err := svc.Create(context.Background(), &dto.CreateSemesterRequest{
		Name:      "2025-2026学年第一学期",
		StartDate: "2025-09-01",
		EndDate:   "2026-01-15",
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.Name != "2025-2026学年第一学期" {
		t.Errorf("期望Name=2025-2026学年第一学期，实际=%s", result.Name)
	}
}

func TestSemesterService_Create_EndBeforeStart(t *testing.T) {
	svc, _ := setupTestSemesterService()

	_, err := svc.Create(context.Background(), &dto.CreateSemesterRequest{
		Name:      "倒序学期",
		StartDate: "2026-01-15",
		EndDate:   "2025-09-01",
	})
	if !errors.Is(err, ErrSemesterDateInvalid) {
		t.Errorf("期望 ErrSemesterDateInvalid，实际: %v", err)
	}
}

func TestSemesterService_Create_BadDateFormat(t *testing.T) {
	svc, _ := setupTestSemesterService()

	_, err := svc.Create(context.Background(), &dto.CreateSemesterRequest{
		Name:      "日期格式错误",
		StartDate: "01/09/2025",
		EndDate:   "2026-01-15",
	})
	if !errors.Is(err, ErrSemesterDateInvalid) {
		t.Errorf("期望 ErrSemesterDateInvalid，实际: %v", err)
	}
}

func TestSemesterService_Create_NameTaken(t *testing.T) {
	svc, repos := setupTestSemesterService()
	repos.semester.semesters["sem-001"] = &model.Semester{
		SemesterID: "sem-001",
		Name:       "2025-2026学年第一学期",
		StartDate:  time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
	}

	_, err := svc.Create(context.Background(), &dto.CreateSemesterRequest{
		Name:      "2025-2026学年第一学期",
		StartDate: "2025-09-01",
		EndDate:   "2026-01-15",
	})
	if !errors.Is(err, ErrSemesterNameTaken) {
		t.Errorf("期望 ErrSemesterNameTaken，实际: %v", err)
	}
}

// ── Update 测试 ──

func TestSemesterService_Update_MergedDatesInvalid(t *testing.T) {
	svc, repos := setupTestSemesterService()
	repos.semester.semesters["sem-001"] = &model.Semester{
		SemesterID: "sem-001",
		Name:       "2025-2026学年第一学期",
		StartDate:  time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
	}

	// 仅提前结束日期，合并后早于开始日期 → 拒绝
	badEnd := "2025-08-01"
	_, err := svc.Update(context.Background(), "sem-001", &dto.UpdateSemesterRequest{
		EndDate: &badEnd,
	})
	if !errors.Is(err, ErrSemesterDateInvalid) {
		t.Errorf("期望 ErrSemesterDateInvalid，实际: %v", err)
	}
}

func TestSemesterService_Update_NotFound(t *testing.T) {
	svc, _ := setupTestSemesterService()

	name := "改名"
	_, err := svc.Update(context.Background(), "nonexistent", &dto.UpdateSemesterRequest{Name: &name})
	if !errors.Is(err, ErrSemesterNotFound) {
		t.Errorf("期望 ErrSemesterNotFound，实际: %v", err)
	}
}

// ── Delete 测试 ──

func TestSemesterService_Delete_BlockedByRegistration(t *testing.T) {
	svc, repos := setupTestSemesterService()
	repos.semester.semesters["sem-001"] = &model.Semester{
		SemesterID: "sem-001",
		Name:       "2025-2026学年第一学期",
	}
	repos.registration.registrations["reg-001"] = &model.RoomRegistration{
		RegistrationID: "reg-001",
		StudentID:      "stu-001",
		RoomID:         "room-101",
		SemesterID:     "sem-001",
		Status:         model.RegistrationStatusApproved,
	}

	err := svc.Delete(context.Background(), "sem-001")
	if !errors.Is(err, ErrSemesterHasRegistration) {
		t.Errorf("期望 ErrSemesterHasRegistration，实际: %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), "1 条引用") {
		t.Errorf("冲突错误应携带引用条数，实际: %v", err)
	}
}

func TestSemesterService_Delete_Success(t *testing.T) {
	svc, repos := setupTestSemesterService()
	repos.semester.semesters["sem-001"] = &model.Semester{
		SemesterID: "sem-001",
		Name:       "2025-2026学年第一学期",
	}

	if err := svc.Delete(context.Background(), "sem-001"); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}
	if _, ok := repos.semester.semesters["sem-001"]; ok {
		t.Error("学期应已被删除")
	}
}
