package operator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/xiebiao/backoffice/pkg/errors"
)

type fakeRepo struct {
	byEmail map[string]*Operator
}

func (f *fakeRepo) Create(_ context.Context, op *Operator) error {
	if _, ok := f.byEmail[op.Email]; ok {
		return apperrors.ErrEmailDuplicate
	}
	op.ID = uint(len(f.byEmail) + 1)
	f.byEmail[op.Email] = op
	return nil
}

func (f *fakeRepo) FindByID(context.Context, uint) (*Operator, error) {
	return nil, ErrOperatorNotFound
}

func (f *fakeRepo) FindByEmail(_ context.Context, email string) (*Operator, error) {
	if op, ok := f.byEmail[email]; ok {
		return op, nil
	}
	return nil, ErrOperatorNotFound
}

func newTestService() Service {
	return NewServiceWithCost(&fakeRepo{byEmail: map[string]*Operator{}}, bcrypt.MinCost)
}

func TestService_Register(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		nickname string
		wantCode int
	}{
		{"邮箱格式错误", "not-an-email", "senha1234", "小王", apperrors.ErrCodeInvalidParams},
		{"昵称过短", "op@example.com", "senha1234", "a", apperrors.ErrCodeInvalidParams},
		{"密码过短", "op@example.com", "a1", "小王", apperrors.ErrCodeWeakPassword},
		{"密码没有数字", "op@example.com", "senhasenha", "小王", apperrors.ErrCodeWeakPassword},
		{"密码没有字母", "op@example.com", "12345678", "小王", apperrors.ErrCodeWeakPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestService().Register(context.Background(), tt.email, tt.password, tt.nickname)
			assert.True(t, apperrors.HasCode(err, tt.wantCode), "err=%v", err)
		})
	}
}

func TestService_RegisterAndLogin(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	op, err := svc.Register(ctx, "op@example.com", "senha1234", "小王")
	require.NoError(t, err)
	assert.NotEqual(t, "senha1234", op.Password)

	_, err = svc.Register(ctx, "op@example.com", "outra1234", "小李")
	assert.ErrorIs(t, err, apperrors.ErrEmailDuplicate)

	got, err := svc.Login(ctx, "op@example.com", "senha1234")
	require.NoError(t, err)
	assert.Equal(t, op.ID, got.ID)

	_, err = svc.Login(ctx, "op@example.com", "errada123")
	assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)

	_, err = svc.Login(ctx, "ghost@example.com", "senha1234")
	assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
}
