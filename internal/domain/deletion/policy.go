// Package deletion 描述各实体的删除语义
package deletion

// Policy 删除策略
type Policy int

const (
	// Soft 软删除：记录保留，标记为不可见
	Soft Policy = iota + 1
	// Hard 物理删除
	Hard
	// Forbidden 不允许删除（只追加的历史记录）
	Forbidden
)

func (p Policy) String() string {
	switch p {
	case Soft:
		return "soft"
	case Hard:
		return "hard"
	case Forbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}
