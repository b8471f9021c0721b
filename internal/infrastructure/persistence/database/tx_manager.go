package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/xiebiao/backoffice/internal/infrastructure/config"
	apperrors "github.com/xiebiao/backoffice/pkg/errors"
)

type txKey struct{}

// TxManager 事务管理器
// 通过context传递事务DB，fn内的Repository调用都在同一事务中执行
type TxManager struct {
	db   *gorm.DB
	opts *sql.TxOptions
}

// NewTxManager 创建事务管理器，隔离级别来自配置
func NewTxManager(db *gorm.DB, cfg config.DatabaseConfig) *TxManager {
	m := &TxManager{db: db}
	if level, ok := isolationLevel(cfg.TxIsolation); ok {
		m.opts = &sql.TxOptions{Isolation: level}
	}
	return m
}

// Transaction 执行事务
// fn返回error时ROLLBACK并原样返回该error；回滚本身失败只记日志。
// fn返回nil时COMMIT
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	var tx *gorm.DB
	if m.opts != nil {
		tx = m.db.WithContext(ctx).Begin(m.opts)
	} else {
		tx = m.db.WithContext(ctx).Begin()
	}
	if tx.Error != nil {
		return apperrors.WrapDB(tx.Error, "开启事务失败")
	}

	defer func() {
		if p := recover(); p != nil {
			rollback(tx, nil)
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		rollback(tx, err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return apperrors.WrapDB(err, "提交事务失败")
	}
	return nil
}

func rollback(tx *gorm.DB, cause error) {
	err := tx.Rollback().Error
	// context取消时database/sql已自动回滚
	if err == nil || errors.Is(err, sql.ErrTxDone) {
		return
	}
	log.Error().Err(err).AnErr("cause", cause).Msg("事务回滚失败")
}

// dbFrom 优先使用context中的事务DB
func dbFrom(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}

func isolationLevel(name string) (sql.IsolationLevel, bool) {
	switch name {
	case "read_committed":
		return sql.LevelReadCommitted, true
	case "repeatable_read":
		return sql.LevelRepeatableRead, true
	case "serializable":
		return sql.LevelSerializable, true
	default:
		return sql.LevelDefault, false
	}
}
