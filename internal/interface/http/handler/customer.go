package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/backoffice/internal/domain/customer"
	"github.com/xiebiao/backoffice/internal/domain/purchase"
	"github.com/xiebiao/backoffice/internal/interface/http/dto"
	"github.com/xiebiao/backoffice/pkg/response"
)

// CustomerHandler 客户HTTP处理器
type CustomerHandler struct {
	customers customer.Service
	purchases purchase.Service
}

// NewCustomerHandler 创建客户处理器
func NewCustomerHandler(customers customer.Service, purchases purchase.Service) *CustomerHandler {
	return &CustomerHandler{customers: customers, purchases: purchases}
}

// Create 新增客户
// @Summary      新增客户
// @Tags         客户
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CustomerRequest true "客户信息"
// @Success      201 {object} response.Response{data=dto.CustomerResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "未登录"
// @Router       /api/v1/customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CustomerRequest
	if !bindJSON(c, &req) {
		return
	}

	entity := req.ToEntity(0)
	if err := h.customers.Create(c.Request.Context(), entity); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.NewCustomerResponse(entity))
}

// Get 客户详情
// @Summary      客户详情
// @Tags         客户
// @Produce      json
// @Param        id path int true "客户ID"
// @Success      200 {object} response.Response{data=dto.CustomerResponse}
// @Failure      404 {object} response.Response "客户不存在"
// @Router       /api/v1/customers/{id} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	entity, err := h.customers.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewCustomerResponse(entity))
}

// List 客户列表（不含已删除）
// @Summary      客户列表
// @Tags         客户
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.CustomerResponse}
// @Router       /api/v1/customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.customers.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewCustomerList(customers))
}

// Update 修改客户
// @Summary      修改客户
// @Tags         客户
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "客户ID"
// @Param        request body dto.CustomerRequest true "客户信息"
// @Success      200 {object} response.Response{data=dto.CustomerResponse}
// @Failure      404 {object} response.Response "客户不存在"
// @Router       /api/v1/customers/{id} [put]
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.CustomerRequest
	if !bindJSON(c, &req) {
		return
	}

	entity := req.ToEntity(id)
	if err := h.customers.Update(c.Request.Context(), entity); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewCustomerResponse(entity))
}

// Delete 删除客户（软删除，历史购买记录保留）
// @Summary      删除客户
// @Tags         客户
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "客户ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "客户不存在"
// @Router       /api/v1/customers/{id} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.customers.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// ListPurchases 某客户的购买记录
// @Summary      客户购买记录
// @Tags         客户
// @Produce      json
// @Param        id path int true "客户ID"
// @Success      200 {object} response.Response{data=[]dto.PurchaseResponse}
// @Router       /api/v1/customers/{id}/purchases [get]
func (h *CustomerHandler) ListPurchases(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	purchases, err := h.purchases.ListByCustomer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewPurchaseList(purchases))
}
