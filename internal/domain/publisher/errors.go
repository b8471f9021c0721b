package publisher

import (
	apperrors "github.com/xiebiao/backoffice/pkg/errors"
)

var (
	ErrPublisherNotFound = apperrors.New(apperrors.ErrCodePublisherNotFound, "出版社不存在")

	// ErrPublisherInUse 仍有图书引用该出版社
	ErrPublisherInUse = apperrors.New(apperrors.ErrCodeResourceInUse, "出版社下仍有图书，无法删除")

	ErrInvalidID = apperrors.New(apperrors.ErrCodeInvalidParams, "出版社ID必须大于0")
)
