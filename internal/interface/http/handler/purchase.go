package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/backoffice/internal/domain/purchase"
	"github.com/xiebiao/backoffice/internal/interface/http/dto"
	"github.com/xiebiao/backoffice/pkg/response"
)

// PurchaseHandler 购买HTTP处理器
type PurchaseHandler struct {
	purchases purchase.Service
}

// NewPurchaseHandler 创建购买处理器
func NewPurchaseHandler(purchases purchase.Service) *PurchaseHandler {
	return &PurchaseHandler{purchases: purchases}
}

// Register 登记购买：库存减1并写入购买记录（同一事务）
// @Summary      登记购买
// @Tags         购买
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.RegisterPurchaseRequest true "客户与图书"
// @Success      201 {object} response.Response{data=dto.PurchaseResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      409 {object} response.Response "库存不足或图书不存在"
// @Router       /api/v1/purchases [post]
func (h *PurchaseHandler) Register(c *gin.Context) {
	var req dto.RegisterPurchaseRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.purchases.RegisterPurchase(c.Request.Context(), req.CustomerID, req.BookID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.NewPurchaseResponse(p))
}

// Get 购买记录详情
// @Summary      购买记录详情
// @Tags         购买
// @Produce      json
// @Param        id path int true "购买记录ID"
// @Success      200 {object} response.Response{data=dto.PurchaseResponse}
// @Failure      404 {object} response.Response "购买记录不存在"
// @Router       /api/v1/purchases/{id} [get]
func (h *PurchaseHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	p, err := h.purchases.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewPurchaseResponse(p))
}

// List 全部购买记录（按时间倒序）
// @Summary      购买记录列表
// @Tags         购买
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.PurchaseResponse}
// @Router       /api/v1/purchases [get]
func (h *PurchaseHandler) List(c *gin.Context) {
	purchases, err := h.purchases.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewPurchaseList(purchases))
}
