package handler

import (
	"github.com/gin-gonic/gin"

	appoperator "github.com/xiebiao/backoffice/internal/application/operator"
	"github.com/xiebiao/backoffice/internal/interface/http/dto"
	"github.com/xiebiao/backoffice/internal/interface/http/middleware"
	"github.com/xiebiao/backoffice/pkg/response"
)

// OperatorHandler 操作员账号HTTP处理器
type OperatorHandler struct {
	registerUseCase *appoperator.RegisterUseCase
	loginUseCase    *appoperator.LoginUseCase
	logoutUseCase   *appoperator.LogoutUseCase
	refreshUseCase  *appoperator.RefreshUseCase
}

// NewOperatorHandler 创建操作员处理器
func NewOperatorHandler(
	registerUseCase *appoperator.RegisterUseCase,
	loginUseCase *appoperator.LoginUseCase,
	logoutUseCase *appoperator.LogoutUseCase,
	refreshUseCase *appoperator.RefreshUseCase,
) *OperatorHandler {
	return &OperatorHandler{
		registerUseCase: registerUseCase,
		loginUseCase:    loginUseCase,
		logoutUseCase:   logoutUseCase,
		refreshUseCase:  refreshUseCase,
	}
}

// Register 操作员注册
// @Summary      操作员注册
// @Tags         操作员
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "注册信息"
// @Success      201 {object} response.Response{data=dto.OperatorInfo}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      409 {object} response.Response "邮箱已存在"
// @Router       /api/v1/operators/register [post]
func (h *OperatorHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.registerUseCase.Execute(c.Request.Context(), appoperator.RegisterRequest{
		Email:    req.Email,
		Password: req.Password,
		Nickname: req.Nickname,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, &dto.OperatorInfo{
		ID:       result.ID,
		Email:    result.Email,
		Nickname: result.Nickname,
	})
}

// Login 操作员登录
// @Summary      操作员登录
// @Tags         操作员
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "登录信息"
// @Success      200 {object} response.Response{data=dto.LoginResponse}
// @Failure      401 {object} response.Response "邮箱或密码错误"
// @Router       /api/v1/operators/login [post]
func (h *OperatorHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), appoperator.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
		ClientIP: c.ClientIP(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.LoginResponse{
		Operator: dto.OperatorInfo{
			ID:       result.Operator.ID,
			Email:    result.Operator.Email,
			Nickname: result.Operator.Nickname,
		},
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		ExpiresIn:    result.ExpiresIn,
	})
}

// Logout 操作员登出，当前Access Token立即失效
// @Summary      操作员登出
// @Tags         操作员
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response
// @Router       /api/v1/operators/logout [post]
func (h *OperatorHandler) Logout(c *gin.Context) {
	err := h.logoutUseCase.Execute(
		c.Request.Context(),
		middleware.MustGetOperatorID(c),
		middleware.GetAccessToken(c),
		middleware.GetTokenExpiresAt(c),
	)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// Refresh 用Refresh Token换取新的Access Token
// @Summary      刷新Token
// @Tags         操作员
// @Accept       json
// @Produce      json
// @Param        request body dto.RefreshRequest true "Refresh Token"
// @Success      200 {object} response.Response{data=dto.RefreshResponse}
// @Failure      401 {object} response.Response "Token无效或已过期"
// @Router       /api/v1/operators/refresh [post]
func (h *OperatorHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.refreshUseCase.Execute(req.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, &dto.RefreshResponse{
		AccessToken: result.AccessToken,
		ExpiresIn:   result.ExpiresIn,
	})
}
