package purchase

import (
	apperrors "github.com/xiebiao/backoffice/pkg/errors"
)

var (
	ErrPurchaseNotFound = apperrors.New(apperrors.ErrCodePurchaseNotFound, "购买记录不存在")

	// ErrInsertFailed 插入购买记录未影响任何行
	ErrInsertFailed = apperrors.New(apperrors.ErrCodeInternal, "购买记录写入失败")

	ErrInvalidID         = apperrors.New(apperrors.ErrCodeInvalidParams, "购买记录ID必须大于0")
	ErrInvalidCustomerID = apperrors.New(apperrors.ErrCodeInvalidParams, "客户ID必须大于0")
	ErrInvalidBookID     = apperrors.New(apperrors.ErrCodeInvalidParams, "图书ID必须大于0")
)
