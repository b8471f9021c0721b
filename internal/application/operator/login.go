package operator

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/xiebiao/backoffice/internal/domain/operator"
	"github.com/xiebiao/backoffice/pkg/jwt"
)

// SessionStore 会话存储（Redis实现见persistence/redis）
type SessionStore interface {
	SaveSession(ctx context.Context, operatorID uint, sessionData map[string]interface{}, ttl time.Duration) error
	DeleteSession(ctx context.Context, operatorID uint) error
	AddToBlacklist(ctx context.Context, token string, ttl time.Duration) error
}

// LoginUseCase 操作员登录
//  1. 校验邮箱密码
//  2. 生成JWT Token对
//  3. 保存会话到Redis（失败只记日志，不影响登录）
type LoginUseCase struct {
	operatorService operator.Service
	jwtManager      *jwt.Manager
	sessionStore    SessionStore
	sessionTTL      time.Duration
}

// NewLoginUseCase sessionTTL应与Refresh Token有效期一致
func NewLoginUseCase(
	operatorService operator.Service,
	jwtManager *jwt.Manager,
	sessionStore SessionStore,
	sessionTTL time.Duration,
) *LoginUseCase {
	return &LoginUseCase{
		operatorService: operatorService,
		jwtManager:      jwtManager,
		sessionStore:    sessionStore,
		sessionTTL:      sessionTTL,
	}
}

// Execute 执行登录
func (uc *LoginUseCase) Execute(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	op, err := uc.operatorService.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	tokenPair, err := uc.jwtManager.GenerateToken(op.ID, op.Email, op.Nickname)
	if err != nil {
		return nil, err
	}

	sessionData := map[string]interface{}{
		"operator_id": op.ID,
		"email":       op.Email,
		"nickname":    op.Nickname,
		"login_at":    time.Now().Unix(),
		"ip":          req.ClientIP,
	}
	if err := uc.sessionStore.SaveSession(ctx, op.ID, sessionData, uc.sessionTTL); err != nil {
		log.Warn().Err(err).Uint("operator_id", op.ID).Msg("保存会话失败")
	}

	return &LoginResponse{
		Operator:     *toInfo(op),
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresIn:    tokenPair.ExpiresIn,
	}, nil
}

// LogoutUseCase 操作员登出
type LogoutUseCase struct {
	sessionStore SessionStore
	now          func() time.Time
}

// NewLogoutUseCase 创建登出用例
func NewLogoutUseCase(sessionStore SessionStore) *LogoutUseCase {
	return &LogoutUseCase{sessionStore: sessionStore, now: time.Now}
}

// Execute 删除会话并把Access Token拉黑到其过期时间
func (uc *LogoutUseCase) Execute(ctx context.Context, operatorID uint, accessToken string, expiresAt time.Time) error {
	if err := uc.sessionStore.DeleteSession(ctx, operatorID); err != nil {
		return err
	}
	return uc.sessionStore.AddToBlacklist(ctx, accessToken, expiresAt.Sub(uc.now()))
}

// RefreshUseCase 用Refresh Token换取新的Access Token
type RefreshUseCase struct {
	jwtManager *jwt.Manager
}

// NewRefreshUseCase 创建刷新用例
func NewRefreshUseCase(jwtManager *jwt.Manager) *RefreshUseCase {
	return &RefreshUseCase{jwtManager: jwtManager}
}

// Execute 返回新的Access Token
func (uc *RefreshUseCase) Execute(refreshToken string) (*RefreshResponse, error) {
	token, err := uc.jwtManager.RefreshAccessToken(refreshToken)
	if err != nil {
		return nil, err
	}
	return &RefreshResponse{
		AccessToken: token,
		ExpiresIn:   int64(uc.jwtManager.AccessTokenTTL().Seconds()),
	}, nil
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string
	Password string
	ClientIP string
}

// LoginResponse 登录响应
type LoginResponse struct {
	Operator     OperatorInfo `json:"operator"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int64        `json:"expires_in"` // Access Token过期时间（秒）
}

// RefreshResponse 刷新响应
type RefreshResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}
