package purchase

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/backoffice/internal/domain/book"
	"github.com/xiebiao/backoffice/internal/domain/customer"
	"github.com/xiebiao/backoffice/internal/domain/purchase"
	apperrors "github.com/xiebiao/backoffice/pkg/errors"
	"github.com/xiebiao/backoffice/pkg/metrics"
	"github.com/xiebiao/backoffice/pkg/tracing"
)

const tracerName = "purchase"

// Transactor 在同一事务中执行fn，fn返回error时回滚并原样返回
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// RegisterPurchaseUseCase 登记购买
//
// 整个流程在一个事务内完成：
//  1. 查询有效客户，不存在或已软删除 → customer.ErrCustomerNotFound
//  2. UPDATE book SET stock = stock - 1 WHERE id = ? AND stock > 0
//     未命中 → book.ErrOutOfStock，不写购买记录
//  3. INSERT purchase，购买时间取事务内的当前时间
//     未影响任何行 → purchase.ErrInsertFailed，库存扣减一并回滚
//  4. COMMIT
//
// 检查与扣减是同一条语句，并发购买最后一本时只有一个事务能命中
type RegisterPurchaseUseCase struct {
	tx        Transactor
	customers customer.Repository
	books     book.Repository
	purchases purchase.Repository
	timeout   time.Duration
	now       func() time.Time
}

// NewRegisterPurchaseUseCase timeout<=0表示不额外限制
func NewRegisterPurchaseUseCase(
	tx Transactor,
	customers customer.Repository,
	books book.Repository,
	purchases purchase.Repository,
	timeout time.Duration,
) *RegisterPurchaseUseCase {
	metrics.InitMetrics()
	return &RegisterPurchaseUseCase{
		tx:        tx,
		customers: customers,
		books:     books,
		purchases: purchases,
		timeout:   timeout,
		now:       time.Now,
	}
}

// Execute 实现purchase.Workflow
func (uc *RegisterPurchaseUseCase) Execute(ctx context.Context, customerID, bookID uint) (*purchase.Purchase, error) {
	if uc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	ctx, span := tracing.StartSpan(ctx, tracerName, "RegisterPurchase")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("customer_id", int64(customerID)),
		attribute.Int64("book_id", int64(bookID)),
	)

	metrics.IncGauge(metrics.PurchasesInProgress)
	defer metrics.DecGauge(metrics.PurchasesInProgress)
	start := time.Now()

	p := &purchase.Purchase{
		CustomerID: customerID,
		BookID:     bookID,
	}

	err := uc.tx.Transaction(ctx, func(txCtx context.Context) error {
		if _, err := uc.customers.FindByID(txCtx, customerID); err != nil {
			return err
		}
		if err := uc.books.DecrementStock(txCtx, bookID); err != nil {
			return err
		}
		p.PurchasedAt = uc.now()
		return uc.purchases.Create(txCtx, p)
	})
	if err != nil {
		err = timeoutAware(ctx, err)
		metrics.RecordPurchase(resultOf(err), time.Since(start).Seconds())
		tracing.RecordError(span, err)

		event := log.Warn()
		if !isRejection(err) {
			event = log.Error()
		}
		event.Err(err).
			Uint("customer_id", customerID).
			Uint("book_id", bookID).
			Str("trace_id", tracing.ExtractTraceID(ctx)).
			Msg("购买登记失败")
		return nil, err
	}

	metrics.RecordPurchase(metrics.PurchaseResultRegistered, time.Since(start).Seconds())
	span.SetAttributes(attribute.Int64("purchase_id", int64(p.ID)))
	log.Info().
		Uint("purchase_id", p.ID).
		Uint("customer_id", customerID).
		Uint("book_id", bookID).
		Msg("购买登记成功")

	// 已提交；重新读取以带上客户与图书
	full, err := uc.purchases.FindByID(context.WithoutCancel(ctx), p.ID)
	if err != nil {
		log.Warn().Err(err).Uint("purchase_id", p.ID).Msg("读取已登记的购买记录失败")
		return p, nil
	}
	return full, nil
}

// timeoutAware 整体超时统一报告为ErrCodeTimeout
func timeoutAware(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) && !isRejection(err) {
		return &apperrors.AppError{Code: apperrors.ErrCodeTimeout, Message: "购买登记超时", Err: err}
	}
	return err
}

// isRejection 业务规则拒绝，不是系统故障
func isRejection(err error) bool {
	return errors.Is(err, book.ErrOutOfStock) || errors.Is(err, customer.ErrCustomerNotFound)
}

func resultOf(err error) string {
	switch {
	case errors.Is(err, book.ErrOutOfStock):
		return metrics.PurchaseResultOutOfStock
	case errors.Is(err, customer.ErrCustomerNotFound):
		return metrics.PurchaseResultRejected
	default:
		return metrics.PurchaseResultFailed
	}
}
