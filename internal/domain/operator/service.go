package operator

import (
	"context"
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/xiebiao/backoffice/pkg/errors"
)

var (
	letterPattern = regexp.MustCompile(`[a-zA-Z]`)
	digitPattern  = regexp.MustCompile(`[0-9]`)
)

// Service 操作员领域服务
type Service interface {
	Register(ctx context.Context, email, password, nickname string) (*Operator, error)
	Login(ctx context.Context, email, password string) (*Operator, error)
	ValidatePassword(hashedPassword, plainPassword string) error
}

type service struct {
	repo       Repository
	bcryptCost int
}

// NewService 创建操作员服务
func NewService(repo Repository) Service {
	return &service{repo: repo, bcryptCost: 12}
}

// NewServiceWithCost 测试中使用较低的bcrypt cost
func NewServiceWithCost(repo Repository, cost int) Service {
	return &service{repo: repo, bcryptCost: cost}
}

// Register 注册操作员
// 1. 邮箱格式、昵称长度校验
// 2. 密码强度校验（8-20位，包含字母和数字）
// 3. 邮箱唯一性由数据库UNIQUE索引保证
func (s *service) Register(ctx context.Context, email, password, nickname string) (*Operator, error) {
	err := validation.Errors{
		"email":    validation.Validate(email, validation.Required, is.EmailFormat),
		"nickname": validation.Validate(nickname, validation.Required, validation.Length(2, 50)),
	}.Filter()
	if err != nil {
		return nil, apperrors.InvalidParams(err)
	}

	if err := validatePasswordStrength(password); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, apperrors.Wrap(err, "密码加密失败")
	}

	op := NewOperator(email, string(hashedPassword), nickname)
	if err := s.repo.Create(ctx, op); err != nil {
		return nil, err
	}

	return op, nil
}

// Login 邮箱不存在和密码错误返回同一个错误，避免探测账号
func (s *service) Login(ctx context.Context, email, password string) (*Operator, error) {
	op, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrOperatorNotFound) {
			return nil, apperrors.ErrInvalidPassword
		}
		return nil, err
	}

	if err := s.ValidatePassword(op.Password, password); err != nil {
		return nil, err
	}

	return op, nil
}

func (s *service) ValidatePassword(hashedPassword, plainPassword string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return apperrors.ErrInvalidPassword
		}
		return apperrors.Wrap(err, "密码验证失败")
	}
	return nil
}

// validatePasswordStrength 8-20位，必须包含字母和数字
func validatePasswordStrength(password string) error {
	if len(password) < 8 || len(password) > 20 {
		return apperrors.ErrWeakPassword
	}
	if !letterPattern.MatchString(password) || !digitPattern.MatchString(password) {
		return apperrors.ErrWeakPassword
	}
	return nil
}
