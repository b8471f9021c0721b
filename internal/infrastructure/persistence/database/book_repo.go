package database

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/xiebiao/backoffice/internal/domain/book"
	"github.com/xiebiao/backoffice/internal/domain/publisher"
	apperrors "github.com/xiebiao/backoffice/pkg/errors"
)

// bookRepository 图书仓储实现
// 读取时通过publisher.Repository按ID加载出版社
type bookRepository struct {
	db         *gorm.DB
	publishers publisher.Repository
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB, publishers publisher.Repository) book.Repository {
	return &bookRepository{db: db, publishers: publishers}
}

// Create 插入图书，出版社引用必须存在
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	pub, err := r.publishers.FindByID(ctx, b.PublisherRef())
	if err != nil {
		return err
	}

	model := toBookModel(b)
	model.ID = 0
	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return book.ErrISBNDuplicate
		}
		log.Error().Err(err).Str("isbn", b.ISBN).Msg("创建图书失败")
		return apperrors.WrapDB(err, "创建图书失败")
	}

	b.ID = model.ID
	b.SetPublisher(pub)
	return nil
}

func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := dbFrom(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		log.Error().Err(err).Uint("id", id).Msg("查询图书失败")
		return nil, apperrors.WrapDB(err, "查询图书失败")
	}

	b := toBookEntity(&model)
	if err := r.resolvePublisher(ctx, b, nil); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookRepository) List(ctx context.Context) ([]*book.Book, error) {
	var models []BookModel
	if err := dbFrom(ctx, r.db).Order("title").Order("id").Find(&models).Error; err != nil {
		log.Error().Err(err).Msg("查询图书列表失败")
		return nil, apperrors.WrapDB(err, "查询图书列表失败")
	}

	// 同一次列表查询内缓存出版社，避免同一出版社重复查询
	cache := make(map[uint]*publisher.Publisher)
	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
		if err := r.resolvePublisher(ctx, books[i], cache); err != nil {
			return nil, err
		}
	}
	return books, nil
}

// Update 更新全部字段，出版社引用必须存在
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	pub, err := r.publishers.FindByID(ctx, b.PublisherRef())
	if err != nil {
		return err
	}

	result := dbFrom(ctx, r.db).Model(&BookModel{}).
		Where("id = ?", b.ID).
		Updates(map[string]interface{}{
			"publisher_id": pub.ID,
			"title":        b.Title,
			"author":       b.Author,
			"price":        b.Price,
			"category":     b.Category,
			"isbn":         b.ISBN,
			"stock":        b.Stock,
		})
	if result.Error != nil {
		if isDuplicateError(result.Error) {
			return book.ErrISBNDuplicate
		}
		log.Error().Err(result.Error).Uint("id", b.ID).Msg("更新图书失败")
		return apperrors.WrapDB(result.Error, "更新图书失败")
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := dbFrom(ctx, r.db).Model(&BookModel{}).Where("id = ?", b.ID).Count(&count).Error; err != nil {
			return apperrors.WrapDB(err, "查询图书失败")
		}
		if count == 0 {
			return book.ErrBookNotFound
		}
	}

	b.SetPublisher(pub)
	return nil
}

// Delete 物理删除；购买记录只追加，被引用的图书不能删除
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	err := dbFrom(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		var purchases int64
		if err := tx.Model(&PurchaseModel{}).Where("book_id = ?", id).Count(&purchases).Error; err != nil {
			return apperrors.WrapDB(err, "查询图书购买记录失败")
		}
		if purchases > 0 {
			return book.ErrBookInUse
		}

		result := tx.Delete(&BookModel{}, id)
		if result.Error != nil {
			return apperrors.WrapDB(result.Error, "删除图书失败")
		}
		if result.RowsAffected == 0 {
			return book.ErrBookNotFound
		}
		return nil
	})
	if err != nil && apperrors.HasCode(err, apperrors.ErrCodeDatabaseError) {
		log.Error().Err(err).Uint("id", id).Msg("删除图书失败")
	}
	return err
}

// DecrementStock 检查与扣减是同一条语句：
// UPDATE book SET stock = stock - 1 WHERE id = ? AND stock > 0
// 并发购买最后一本时只有一个事务能命中
func (r *bookRepository) DecrementStock(ctx context.Context, id uint) error {
	result := dbFrom(ctx, r.db).Model(&BookModel{}).
		Where("id = ? AND stock > 0", id).
		UpdateColumn("stock", gorm.Expr("stock - 1"))
	if result.Error != nil {
		log.Error().Err(result.Error).Uint("book_id", id).Msg("扣减库存失败")
		return apperrors.WrapDB(result.Error, "扣减库存失败")
	}

	if result.RowsAffected == 0 {
		return book.ErrOutOfStock
	}
	return nil
}

// resolvePublisher 出版社已被删除时只保留PublisherID
func (r *bookRepository) resolvePublisher(ctx context.Context, b *book.Book, cache map[uint]*publisher.Publisher) error {
	if p, ok := cache[b.PublisherID]; ok {
		if p != nil {
			b.SetPublisher(p)
		}
		return nil
	}

	p, err := r.publishers.FindByID(ctx, b.PublisherID)
	if err != nil && !errors.Is(err, publisher.ErrPublisherNotFound) {
		return err
	}
	if cache != nil {
		cache[b.PublisherID] = p
	}
	if p != nil {
		b.SetPublisher(p)
	}
	return nil
}

func toBookModel(b *book.Book) *BookModel {
	return &BookModel{
		ID:          b.ID,
		PublisherID: b.PublisherRef(),
		Title:       b.Title,
		Author:      b.Author,
		Price:       b.Price,
		Category:    b.Category,
		ISBN:        b.ISBN,
		Stock:       b.Stock,
	}
}

func toBookEntity(model *BookModel) *book.Book {
	return &book.Book{
		ID:          model.ID,
		Title:       model.Title,
		Author:      model.Author,
		ISBN:        model.ISBN,
		PublisherID: model.PublisherID,
		Stock:       model.Stock,
		Price:       model.Price,
		Category:    model.Category,
	}
}
