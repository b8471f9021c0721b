package operator

import (
	"context"

	"github.com/xiebiao/backoffice/internal/domain/operator"
)

// RegisterUseCase 操作员注册
type RegisterUseCase struct {
	operatorService operator.Service
}

// NewRegisterUseCase 创建注册用例
func NewRegisterUseCase(operatorService operator.Service) *RegisterUseCase {
	return &RegisterUseCase{operatorService: operatorService}
}

// Execute 执行注册，返回值不含密码
func (uc *RegisterUseCase) Execute(ctx context.Context, req RegisterRequest) (*OperatorInfo, error) {
	op, err := uc.operatorService.Register(ctx, req.Email, req.Password, req.Nickname)
	if err != nil {
		return nil, err
	}
	return toInfo(op), nil
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Email    string
	Password string
	Nickname string
}

// OperatorInfo 操作员信息
type OperatorInfo struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
}

func toInfo(op *operator.Operator) *OperatorInfo {
	return &OperatorInfo{
		ID:       op.ID,
		Email:    op.Email,
		Nickname: op.Nickname,
	}
}
