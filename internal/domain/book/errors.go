package book

import (
	apperrors "github.com/xiebiao/backoffice/pkg/errors"
)

var (
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在")

	ErrISBNDuplicate = apperrors.New(apperrors.ErrCodeISBNDuplicate, "ISBN号已存在")

	ErrInvalidID = apperrors.New(apperrors.ErrCodeInvalidParams, "图书ID必须大于0")

	// ErrOutOfStock 条件扣减未命中任何行：库存为0或图书不存在
	ErrOutOfStock = apperrors.New(apperrors.ErrCodeInsufficientStock, "库存不足或图书不存在")

	// ErrBookInUse 图书已有购买记录
	ErrBookInUse = apperrors.New(apperrors.ErrCodeResourceInUse, "图书已有购买记录，无法删除")
)
