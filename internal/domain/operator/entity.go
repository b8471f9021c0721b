package operator

import (
	"time"
)

// Operator 后台操作员
// Password保存bcrypt哈希，不提供读取明文的方法
type Operator struct {
	ID        uint
	Email     string
	Password  string
	Nickname  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewOperator hashedPassword必须是bcrypt加密后的密码
func NewOperator(email, hashedPassword, nickname string) *Operator {
	now := time.Now()
	return &Operator{
		Email:     email,
		Password:  hashedPassword,
		Nickname:  nickname,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
