package operator

import (
	apperrors "github.com/xiebiao/backoffice/pkg/errors"
)

var (
	ErrOperatorNotFound = apperrors.New(apperrors.ErrCodeOperatorNotFound, "操作员不存在")
)
