package dto

// RegisterRequest 操作员注册
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"op@example.com"`
	Password string `json:"password" binding:"required,min=8,max=20" example:"senha1234"`
	Nickname string `json:"nickname" binding:"required,min=2,max=50" example:"小王"`
}

// LoginRequest 操作员登录
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"op@example.com"`
	Password string `json:"password" binding:"required" example:"senha1234"`
}

// RefreshRequest 刷新Access Token
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// OperatorInfo 操作员信息（不含密码）
type OperatorInfo struct {
	ID       uint   `json:"id" example:"1"`
	Email    string `json:"email" example:"op@example.com"`
	Nickname string `json:"nickname" example:"小王"`
}

// LoginResponse 登录结果
type LoginResponse struct {
	Operator     OperatorInfo `json:"operator"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int64        `json:"expires_in" example:"7200"`
}

// RefreshResponse 刷新结果
type RefreshResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in" example:"7200"`
}
