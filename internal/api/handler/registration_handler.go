package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/internal/dto"
	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/internal/service"
	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/pkg/response"
)

// RegistrationHandler 住宿登记模块 HTTP 处理器
type RegistrationHandler struct {
	registrationSvc service.RegistrationService
}

// NewRegistrationHandler 创建 RegistrationHandler
func NewRegistrationHandler(registrationSvc service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registrationSvc: registrationSvc}
}

// ListRegistrations 获取住宿登记列表
// GET /api/v1/registrations
func (h *RegistrationHandler) ListRegistrations(c *gin.Context) {
	var req dto.RegistrationListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	regs, total, err := h.registrationSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, regs, total, req.GetPage(), req.GetPageSize())
}

// GetRegistration 获取住宿登记详情
// GET /api/v1/registrations/:id
func (h *RegistrationHandler) GetRegistration(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "登记ID不能为空")
		return
	}

	reg, err := h.registrationSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleRegistrationError(c, err)
		return
	}

	response.OK(c, reg)
}

// CreateRegistration 创建住宿登记
// POST /api/v1/registrations
func (h *RegistrationHandler) CreateRegistration(c *gin.Context) {
	var req dto.CreateRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	reg, err := h.registrationSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleRegistrationError(c, err)
		return
	}

	response.Created(c, reg)
}

// UpdateRegistration 更新住宿登记（含状态流转）
// PUT /api/v1/registrations/:id
func (h *RegistrationHandler) UpdateRegistration(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "登记ID不能为空")
		return
	}

	var req dto.UpdateRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	reg, err := h.registrationSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleRegistrationError(c, err)
		return
	}

	response.OK(c, reg)
}

// DeleteRegistration 删除住宿登记
// DELETE /api/v1/registrations/:id
func (h *RegistrationHandler) DeleteRegistration(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "登记ID不能为空")
		return
	}

	if err := h.registrationSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleRegistrationError(c, err)
		return
	}

	response.OK(c, nil)
}

// ListEligibleRooms 按学生性别列出可入住房间
// GET /api/v1/registrations/eligible-rooms?student_id=xxx
func (h *RegistrationHandler) ListEligibleRooms(c *gin.Context) {
	studentID := c.Query("student_id")
	if studentID == "" {
		response.BadRequest(c, 10001, "student_id 不能为空")
		return
	}

	rooms, err := h.registrationSvc.ListEligibleRooms(c.Request.Context(), studentID)
	if err != nil {
		h.handleRegistrationError(c, err)
		return
	}

	response.OK(c, gin.H{"list": rooms})
}

// handleRegistrationError 统一处理住宿登记模块业务错误
func (h *RegistrationHandler) handleRegistrationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRegistrationNotFound):
		response.NotFound(c, 15004, "住宿登记不存在")
	case errors.Is(err, service.ErrRegistrationExists):
		response.Conflict(c, 15001, "该学生本学期已有有效登记")
	case errors.Is(err, service.ErrRoomGenderMismatch):
		response.BadRequest(c, 15002, "房型性别与学生性别不符")
	case errors.Is(err, service.ErrRoomFull):
		response.Conflict(c, 15003, "房间床位已满")
	case errors.Is(err, service.ErrSemesterRequired):
		response.BadRequest(c, 15005, "登记必须关联学期")
	case errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, 12001, "学生档案不存在")
	case errors.Is(err, service.ErrRoomNotFound):
		response.NotFound(c, 13101, "房间不存在")
	case errors.Is(err, service.ErrSemesterNotFound):
		response.NotFound(c, 14001, "学期不存在")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/registration_handler.go
