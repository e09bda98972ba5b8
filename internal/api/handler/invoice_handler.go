package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/internal/dto"
	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/internal/service"
	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/pkg/response"
)

// InvoiceHandler 账单模块 HTTP 处理器
type InvoiceHandler struct {
	invoiceSvc service.InvoiceService
}

// NewInvoiceHandler 创建 InvoiceHandler
func NewInvoiceHandler(invoiceSvc service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceSvc: invoiceSvc}
}

// ListInvoices 获取账单列表
// GET /api/v1/invoices
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	var req dto.InvoiceListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	invoices, total, err := h.invoiceSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, invoices, total, req.GetPage(), req.GetPageSize())
}

// GetInvoice 获取账单详情
// GET /api/v1/invoices/:id
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "账单ID不能为空")
		return
	}

	invoice, err := h.invoiceSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleInvoiceError(c, err)
		return
	}

	response.OK(c, invoice)
}

// CreateInvoice 创建账单
// POST /api/v1/invoices
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	invoice, err := h.invoiceSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleInvoiceError(c, err)
		return
	}

	response.Created(c, invoice)
}

// UpdateInvoice 更新账单（关联字段三态：缺省/null/值）
// PUT /api/v1/invoices/:id
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "账单ID不能为空")
		return
	}

	var req dto.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	invoice, err := h.invoiceSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleInvoiceError(c, err)
		return
	}

	response.OK(c, invoice)
}

// DeleteInvoice 删除账单
// DELETE /api/v1/invoices/:id
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "账单ID不能为空")
		return
	}

	if err := h.invoiceSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleInvoiceError(c, err)
		return
	}

	response.OK(c, nil)
}

// MarkInvoicePaid 标记账单已付
// PUT /api/v1/invoices/:id/pay
func (h *InvoiceHandler) MarkInvoicePaid(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "账单ID不能为空")
		return
	}

	invoice, err := h.invoiceSvc.MarkPaid(c.Request.Context(), id)
	if err != nil {
		h.handleInvoiceError(c, err)
		return
	}

	response.OK(c, invoice)
}

// GetInvoiceTotal 计算账单合计
// GET /api/v1/invoices/:id/total
func (h *InvoiceHandler) GetInvoiceTotal(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "账单ID不能为空")
		return
	}

	total, err := h.invoiceSvc.CalculateTotal(c.Request.Context(), id)
	if err != nil {
		h.handleInvoiceError(c, err)
		return
	}

	response.OK(c, total)
}

// handleInvoiceError 统一处理账单模块业务错误
func (h *InvoiceHandler) handleInvoiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvoiceNotFound):
		response.NotFound(c, 17001, "账单不存在")
	case errors.Is(err, service.ErrInvoiceDateInvalid):
		response.BadRequest(c, 17002, "账单日期无效")
	case errors.Is(err, service.ErrInvoiceNoPrice):
		response.BadRequest(c, 17003, "电价与水价不能同时为空")
	case errors.Is(err, service.ErrInvoiceIncomplete):
		response.NotFound(c, 17004, "账单缺少抄表记录或价目，无法计算合计")
	case errors.Is(err, service.ErrRoomNotFound):
		response.NotFound(c, 13101, "房间不存在")
	case errors.Is(err, service.ErrUtilitiesNotFound):
		response.NotFound(c, 16001, "抄表记录不存在")
	case errors.Is(err, service.ErrPriceListNotFound):
		response.NotFound(c, 14101, "价目不存在")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/invoice_handler.go
