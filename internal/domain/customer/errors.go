package customer

import (
	apperrors "github.com/xiebiao/backoffice/pkg/errors"
)

var (
	// ErrCustomerNotFound 客户不存在或已被软删除
	ErrCustomerNotFound = apperrors.New(apperrors.ErrCodeCustomerNotFound, "客户不存在")

	ErrInvalidID = apperrors.New(apperrors.ErrCodeInvalidParams, "客户ID必须大于0")
)
