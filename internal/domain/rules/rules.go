// Package rules 各领域门面共用的ozzo-validation规则
package rules

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// NotBlank 必填且去掉首尾空白后不能为空
// validation.Required只拒绝零长度字符串，"   "会被放行
func NotBlank(message string) validation.Rule {
	return validation.By(func(value interface{}) error {
		s, ok := value.(string)
		if !ok {
			return validation.NewError("validation_is_string", "必须为字符串")
		}
		if strings.TrimSpace(s) == "" {
			return validation.NewError("validation_required", message)
		}
		return nil
	})
}
