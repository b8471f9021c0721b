package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/backoffice/internal/domain/publisher"
	"github.com/xiebiao/backoffice/internal/interface/http/dto"
	"github.com/xiebiao/backoffice/pkg/response"
)

// PublisherHandler 出版社HTTP处理器
type PublisherHandler struct {
	publishers publisher.Service
}

// NewPublisherHandler 创建出版社处理器
func NewPublisherHandler(publishers publisher.Service) *PublisherHandler {
	return &PublisherHandler{publishers: publishers}
}

// Create 新增出版社
// @Summary      新增出版社
// @Tags         出版社
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.PublisherRequest true "出版社信息"
// @Success      201 {object} response.Response{data=dto.PublisherResponse}
// @Router       /api/v1/publishers [post]
func (h *PublisherHandler) Create(c *gin.Context) {
	var req dto.PublisherRequest
	if !bindJSON(c, &req) {
		return
	}

	entity := req.ToEntity(0)
	if err := h.publishers.Create(c.Request.Context(), entity); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.NewPublisherResponse(entity))
}

// Get 出版社详情
// @Summary      出版社详情
// @Tags         出版社
// @Produce      json
// @Param        id path int true "出版社ID"
// @Success      200 {object} response.Response{data=dto.PublisherResponse}
// @Failure      404 {object} response.Response "出版社不存在"
// @Router       /api/v1/publishers/{id} [get]
func (h *PublisherHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	entity, err := h.publishers.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewPublisherResponse(entity))
}

// List 出版社列表；带name参数时按名称精确查找
// @Summary      出版社列表
// @Tags         出版社
// @Produce      json
// @Param        name query string false "出版社名称（精确匹配）"
// @Success      200 {object} response.Response{data=[]dto.PublisherResponse}
// @Failure      404 {object} response.Response "按名称未找到"
// @Router       /api/v1/publishers [get]
func (h *PublisherHandler) List(c *gin.Context) {
	if name, ok := c.GetQuery("name"); ok {
		entity, err := h.publishers.GetByName(c.Request.Context(), name)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, []*dto.PublisherResponse{dto.NewPublisherResponse(entity)})
		return
	}

	publishers, err := h.publishers.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewPublisherList(publishers))
}

// Update 修改出版社
// @Summary      修改出版社
// @Tags         出版社
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "出版社ID"
// @Param        request body dto.PublisherRequest true "出版社信息"
// @Success      200 {object} response.Response{data=dto.PublisherResponse}
// @Router       /api/v1/publishers/{id} [put]
func (h *PublisherHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.PublisherRequest
	if !bindJSON(c, &req) {
		return
	}

	entity := req.ToEntity(id)
	if err := h.publishers.Update(c.Request.Context(), entity); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewPublisherResponse(entity))
}

// Delete 删除出版社（仍有图书时返回409）
// @Summary      删除出版社
// @Tags         出版社
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "出版社ID"
// @Success      200 {object} response.Response
// @Failure      409 {object} response.Response "出版社下仍有图书"
// @Router       /api/v1/publishers/{id} [delete]
func (h *PublisherHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.publishers.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
