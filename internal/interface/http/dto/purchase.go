package dto

import (
	"github.com/xiebiao/backoffice/internal/domain/purchase"
)

// RegisterPurchaseRequest 登记购买（一本）
type RegisterPurchaseRequest struct {
	CustomerID uint `json:"customer_id" binding:"required,min=1" example:"1"`
	BookID     uint `json:"book_id" binding:"required,min=1" example:"1"`
}

// PurchaseResponse 购买记录
// customer/book在引用已删除时为null
type PurchaseResponse struct {
	ID          uint              `json:"id" example:"1"`
	CustomerID  uint              `json:"customer_id" example:"1"`
	BookID      uint              `json:"book_id" example:"1"`
	Customer    *CustomerResponse `json:"customer"`
	Book        *BookResponse     `json:"book"`
	PurchasedAt string            `json:"purchased_at" example:"2024-03-15 10:30:00"`
	Date        string            `json:"date" example:"2024-03-15"`
	Summary     string            `json:"summary" example:"Purchase[id=1 customer=João Silva book=Go na Prática date=15/03/2024]"`
}

func NewPurchaseResponse(p *purchase.Purchase) *PurchaseResponse {
	if p == nil {
		return nil
	}
	resp := &PurchaseResponse{
		ID:          p.ID,
		CustomerID:  p.CustomerID,
		BookID:      p.BookID,
		Customer:    NewCustomerResponse(p.Customer),
		Book:        NewBookResponse(p.Book),
		PurchasedAt: formatTime(p.PurchasedAt),
		Summary:     p.String(),
	}
	if !p.PurchasedAt.IsZero() {
		resp.Date = p.Date().Format("2006-01-02")
	}
	return resp
}

func NewPurchaseList(purchases []*purchase.Purchase) []*PurchaseResponse {
	list := make([]*PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		list = append(list, NewPurchaseResponse(p))
	}
	return list
}
