package database

import (
	"context"
	"sync"

	"gorm.io/gorm"

	"github.com/xiebiao/backoffice/internal/infrastructure/config"
	apperrors "github.com/xiebiao/backoffice/pkg/errors"
)

// Provider 持有进程内唯一的连接池
// Acquire首次调用或Release之后会重新打开连接池，
// 每个操作从池中取出各自的连接，不共享单一连接
type Provider struct {
	cfg config.DatabaseConfig

	mu sync.Mutex
	db *gorm.DB
}

// NewProvider 创建Provider，不会立即连接数据库
func NewProvider(cfg config.DatabaseConfig) *Provider {
	return &Provider{cfg: cfg}
}

// Acquire 返回可用的连接池
func (p *Provider) Acquire(ctx context.Context) (*gorm.DB, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.db != nil {
		return p.db, nil
	}

	db, err := NewDB(p.cfg)
	if err != nil {
		return nil, apperrors.WrapDB(err, "数据库连接失败")
	}
	p.db = db
	return db, nil
}

// Release 关闭连接池；未打开时什么都不做
func (p *Provider) Release() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.db == nil {
		return nil
	}

	sqlDB, err := p.db.DB()
	p.db = nil
	if err != nil {
		return apperrors.WrapDB(err, "获取SQL DB失败")
	}
	if err := sqlDB.Close(); err != nil {
		return apperrors.WrapDB(err, "关闭数据库连接失败")
	}
	return nil
}
