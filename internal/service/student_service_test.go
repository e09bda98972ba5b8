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

func setupTestStudentService() (StudentService, *testRepos) {
	repos := newTestRepos()
	repos.account.accounts["acc-001"] = &model.Account{
		AccountID: "acc-001",
		Username:  "SV2024001",
	}
	svc := NewStudentService(repos.repo, zap.NewNop())
	return svc, repos
}

func validCreateStudentRequest() *dto.CreateStudentRequest {
	return &dto.CreateStudentRequest{
		AccountID:   "acc-001",
		FullName:    "阮文安",
		StudentCode: "SV2024001",
		Gender:      model.GenderMale,
		DateOfBirth: "2004-09-15",
		Email:       "an@example.com",
		Phone:       "0912345678",
		IDCard:      "079204001234",
		Address:     "胡志明市第一郡",
	}
}

// ── Create 测试 ──

func TestStudentService_Create_Success(t *testing.T) {
	svc, _ := setupTestStudentService()

	result, err := svc.Create(context.Background(), validCreateStudentRequest())
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.ID != "acc-001" {
		t.Errorf("档案主键应共享账号主键，期望=acc-001，实际=%s", result.ID)
	}
	if result.Status != model.StudentStatusPending {
		t.Errorf("初始状态应为 pending，实际=%s", result.Status)
	}
}

func TestStudentService_Create_AccountNotFound(t *testing.T) {
	svc, _ := setupTestStudentService()

	req := validCreateStudentRequest()
	req.AccountID = "nonexistent"

	_, err := svc.Create(context.Background(), req)
	if !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("期望 ErrAccountNotFound，实际: %v", err)
	}
}

func TestStudentService_Create_AccountAlreadyBound(t *testing.T) {
	svc, repos := setupTestStudentService()
	repos.student.students["acc-001"] = &model.Student{
		StudentID:   "acc-001",
		StudentCode: "SV2024001",
		Email:       "an@example.com",
		Phone:       "0912345678",
	}

	_, err := svc.Create(context.Background(), validCreateStudentRequest())
	if !errors.Is(err, ErrStudentHasAccount) {
		t.Errorf("期望 ErrStudentHasAccount，实际: %v", err)
	}
}

func TestStudentService_Create_EmailTaken(t *testing.T) {
	svc, repos := setupTestStudentService()
	repos.student.students["stu-other"] = &model.Student{
		StudentID:   "stu-other",
		StudentCode: "SV2024999",
		Email:       "an@example.com",
		Phone:       "0999999999",
	}

	_, err := svc.Create(context.Background(), validCreateStudentRequest())
	if !errors.Is(err, ErrStudentEmailTaken) {
		t.Errorf("期望 ErrStudentEmailTaken，实际: %v", err)
	}
}

func TestStudentService_Create_FutureBirthDate(t *testing.T) {
	svc, _ := setupTestStudentService()

	req := validCreateStudentRequest()
	req.DateOfBirth = time.Now().AddDate(1, 0, 0).Format("2006-01-02")

	_, err := svc.Create(context.Background(), req)
	if !errors.Is(err, ErrStudentDateInvalid) {
		t.Errorf("期望 ErrStudentDateInvalid，实际: %v", err)
	}
}

// ── Update 测试 ──

func TestStudentService_Update_KeepOwnEmail(t *testing.T) {
	svc, repos := setupTestStudentService()
	repos.student.students["acc-001"] = &model.Student{
		StudentID:   "acc-001",
		FullName:    "阮文安",
		StudentCode: "SV2024001",
		Gender:      model.GenderMale,
		Email:       "an@example.com",
		Phone:       "0912345678",
	}

	// 提交与自身相同的邮箱不应触发唯一性冲突
	email := "an@example.com"
	name := "阮文平"
	_, err := svc.Update(context.Background(), "acc-001", &dto.UpdateStudentRequest{
		FullName: &name,
		Email:    &email,
	})
	if err != nil {
		t.Fatalf("沿用自身邮箱的更新应成功: %v", err)
	}
}

func TestStudentService_Update_PhoneTakenByOther(t *testing.T) {
	svc, repos := setupTestStudentService()
	repos.student.students["acc-001"] = &model.Student{
		StudentID:   "acc-001",
		StudentCode: "SV2024001",
		Email:       "an@example.com",
		Phone:       "0912345678",
	}
	repos.student.students["stu-other"] = &model.Student{
		StudentID:   "stu-other",
		StudentCode: "SV2024999",
		Email:       "other@example.com",
		Phone:       "0987654321",
	}

	phone := "0987654321"
	_, err := svc.Update(context.Background(), "acc-001", &dto.UpdateStudentRequest{Phone: &phone})
	if !errors.Is(err, ErrStudentPhoneTaken) {
		t.Errorf("期望 ErrStudentPhoneTaken，实际: %v", err)
	}
}

// ── UpdateStatus 测试 ──

func TestStudentService_UpdateStatus(t *testing.T) {
	svc, repos := setupTestStudentService()
	repos.student.students["acc-001"] = &model.Student{
		StudentID: "acc-001",
		Status:    model.StudentStatusPending,
	}

	result, err := svc.UpdateStatus(context.Background(), "acc-001", &dto.UpdateStudentStatusRequest{
		Status: model.StudentStatusApproved,
	})
	if err != nil {
		t.Fatalf("UpdateStatus 应成功: %v", err)
	}
	if result.Status != model.StudentStatusApproved {
		t.Errorf("期望Status=approved，实际=%s", result.Status)
	}
}

// ── Delete 测试 ──

func TestStudentService_Delete_BlockedByRegistration(t *testing.T) {
	svc, repos := setupTestStudentService()
	repos.student.students["acc-001"] = &model.Student{StudentID: "acc-001"}
	// 任意状态的历史登记都保留，档案不可删
	repos.registration.registrations["reg-001"] = &model.RoomRegistration{
		RegistrationID: "reg-001",
		StudentID:      "acc-001",
		RoomID:         "room-101",
		SemesterID:     "sem-001",
		Status:         model.RegistrationStatusCheckedOut,
	}

	err := svc.Delete(context.Background(), "acc-001")
	if !errors.Is(err, ErrStudentHasActiveReg) {
		t.Errorf("期望 ErrStudentHasActiveReg，实际: %v", err)
	}
}

func TestStudentService_Delete_Success(t *testing.T) {
	svc, repos := setupTestStudentService()
	repos.student.students["acc-001"] = &model.Student{StudentID: "acc-001"}

	if err := svc.Delete(context.Background(), "acc-001"); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}
}

// ── ImportStudents 测试 ──

func TestStudentService_ImportStudents_ValidationErrors(t *testing.T) {
	svc, repos := setupTestStudentService()
	repos.student.students["stu-dup"] = &model.Student{
		StudentID:   "stu-dup",
		StudentCode: "SV2024100",
		Email:       "dup@example.com",
		Phone:       "0911111111",
	}

	rows := []ImportStudentRow{
		{Row: 2, FullName: "", StudentCode: "SV2024101", Gender: model.GenderMale,
			DateOfBirth: "2004-01-01", Email: "a@example.com", Phone: "0912000001", IDCard: "X1"},
		{Row: 3, FullName: "李四", StudentCode: "SV2024102", Gender: "Other",
			DateOfBirth: "2004-01-01", Email: "b@example.com", Phone: "0912000002", IDCard: "X2"},
		{Row: 4, FullName: "王五", StudentCode: "SV2024103", Gender: model.GenderFemale,
			DateOfBirth: "01/01/2004", Email: "c@example.com", Phone: "0912000003", IDCard: "X3"},
		{Row: 5, FullName: "赵六", StudentCode: "SV2024100", Gender: model.GenderMale,
			DateOfBirth: "2004-01-01", Email: "d@example.com", Phone: "0912000004", IDCard: "X4"},
	}

	resp, err := svc.ImportStudents(context.Background(), rows)
	if err != nil {
		t.Fatalf("ImportStudents 应返回逐行错误而非整体失败: %v", err)
	}
	if resp.Total != 4 {
		t.Errorf("期望Total=4，实际=%d", resp.Total)
	}
	if resp.Failed != 4 {
		t.Errorf("全部行均应校验失败，期望Failed=4，实际=%d", resp.Failed)
	}
	if resp.Success != 0 {
		t.Errorf("期望Success=0，实际=%d", resp.Success)
	}
	if len(resp.Errors) != 4 {
		t.Errorf("期望 4 条错误详情，实际=%d", len(resp.Errors))
	}
}

func TestStudentService_ImportStudents_DuplicateInFile(t *testing.T) {
	svc, _ := setupTestStudentService()
	s := svc.(*studentService)

	// 同一文件内：第 3 行学号与第 2 行重复，第 4 行邮箱与第 2 行重复
	rows := []ImportStudentRow{
		{Row: 2, FullName: "张三", StudentCode: "SV2024200", Gender: model.GenderMale,
			DateOfBirth: "2004-01-01", Email: "e1@example.com", Phone: "0913000001", IDCard: "Y1"},
		{Row: 3, FullName: "张四", StudentCode: "SV2024200", Gender: model.GenderMale,
			DateOfBirth: "2004-01-01", Email: "e2@example.com", Phone: "0913000002", IDCard: "Y2"},
		{Row: 4, FullName: "张五", StudentCode: "SV2024201", Gender: model.GenderFemale,
			DateOfBirth: "2004-01-01", Email: "e1@example.com", Phone: "0913000003", IDCard: "Y3"},
	}

	resp := &dto.ImportStudentResponse{Total: len(rows)}
	validRows := s.validateImportRows(context.Background(), rows, resp)

	if len(validRows) != 1 {
		t.Fatalf("仅首行应通过校验，期望 1 行，实际=%d", len(validRows))
	}
	if validRows[0].row.StudentCode != "SV2024200" {
		t.Errorf("通过行应为首行，实际学号=%s", validRows[0].row.StudentCode)
	}
	if resp.Failed != 2 {
		t.Errorf("期望Failed=2，实际=%d", resp.Failed)
	}
	for _, e := range resp.Errors {
		if !strings.Contains(e.Reason, "重复") {
			t.Errorf("行 %d 的失败原因应标注文件内重复，实际: %s", e.Row, e.Reason)
		}
	}
}
