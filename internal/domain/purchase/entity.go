package purchase

import (
	"fmt"
	"time"

	"github.com/xiebiao/backoffice/internal/domain/book"
	"github.com/xiebiao/backoffice/internal/domain/customer"
	"github.com/xiebiao/backoffice/internal/domain/deletion"
)

// DeletePolicy 购买记录只追加，不允许修改或删除
const DeletePolicy = deletion.Forbidden

const displayDateLayout = "02/01/2006"

// Purchase 购买记录
// 只能由购买流程创建。Customer和Book在读取时按ID重新加载，
// 客户已软删除时Customer为nil，CustomerID保留
type Purchase struct {
	ID          uint
	CustomerID  uint
	BookID      uint
	Customer    *customer.Customer
	Book        *book.Book
	PurchasedAt time.Time
}

// Date 购买日期（PurchasedAt当天零点，保留时区）
func (p *Purchase) Date() time.Time {
	y, m, d := p.PurchasedAt.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, p.PurchasedAt.Location())
}

func (p *Purchase) String() string {
	customerName, bookTitle, date := "N/A", "N/A", "N/A"
	if p.Customer != nil {
		customerName = p.Customer.Name
	}
	if p.Book != nil {
		bookTitle = p.Book.Title
	}
	if !p.PurchasedAt.IsZero() {
		date = p.PurchasedAt.Format(displayDateLayout)
	}
	return fmt.Sprintf("Purchase[id=%d customer=%s book=%s date=%s]", p.ID, customerName, bookTitle, date)
}
