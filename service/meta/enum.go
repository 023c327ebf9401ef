/*
 * @module service/meta/enum
 * @description 枚举词表基础设施：标签与序列化字符串的双向映射
 * @architecture 常量层 - 元数据定义
 * @stateFlow 标签 -> 序列化字符串 -> 标签
 * @rules 序列化字符串为小写下划线格式，在同一枚举内唯一，声明顺序固定；0 不是合法标签
 * @dependencies 无外部依赖
 * @refs service/meta/business.go, service/meta/inventory.go, service/meta/notification.go, service/meta/user.go
 */

package meta

import (
	"database/sql/driver"
	"errors"
	"fmt"
)

// ErrUnknownVariant 未知的枚举值
var ErrUnknownVariant = errors.New("未知的枚举值")

// Variant 枚举项，用于元数据接口输出
type Variant struct {
	Value       string `json:"value" example:"restaurant"`
	DisplayName string `json:"display_name" example:"餐厅"`
}

// entry 枚举项定义
type entry struct {
	wire    string
	display string
}

// vocabulary 枚举词表，标签从1开始按声明顺序编号
type vocabulary[T ~int] struct {
	name    string
	entries []entry
	index   map[string]T
}

func newVocabulary[T ~int](name string, entries ...entry) *vocabulary[T] {
	v := &vocabulary[T]{
		name:    name,
		entries: entries,
		index:   make(map[string]T, len(entries)),
	}
	for i, e := range entries {
		if _, dup := v.index[e.wire]; dup {
			panic(fmt.Sprintf("枚举 %s 重复的值: %s", name, e.wire))
		}
		v.index[e.wire] = T(i + 1)
	}
	return v
}

func (v *vocabulary[T]) valid(t T) bool {
	return t >= 1 && int(t) <= len(v.entries)
}

func (v *vocabulary[T]) wire(t T) string {
	if !v.valid(t) {
		return ""
	}
	return v.entries[t-1].wire
}

func (v *vocabulary[T]) display(t T) string {
	if !v.valid(t) {
		return "未知"
	}
	return v.entries[t-1].display
}

func (v *vocabulary[T]) parse(s string) (T, error) {
	if t, ok := v.index[s]; ok {
		return t, nil
	}
	return 0, fmt.Errorf("%w: %s %q", ErrUnknownVariant, v.name, s)
}

func (v *vocabulary[T]) all() []T {
	out := make([]T, len(v.entries))
	for i := range v.entries {
		out[i] = T(i + 1)
	}
	return out
}

func (v *vocabulary[T]) variants() []Variant {
	out := make([]Variant, len(v.entries))
	for i, e := range v.entries {
		out[i] = Variant{Value: e.wire, DisplayName: e.display}
	}
	return out
}

func (v *vocabulary[T]) marshalText(t T) ([]byte, error) {
	if !v.valid(t) {
		return nil, fmt.Errorf("%w: %s(%d)", ErrUnknownVariant, v.name, int(t))
	}
	return []byte(v.wire(t)), nil
}

func (v *vocabulary[T]) value(t T) (driver.Value, error) {
	if !v.valid(t) {
		return nil, fmt.Errorf("%w: %s(%d)", ErrUnknownVariant, v.name, int(t))
	}
	return v.wire(t), nil
}

func (v *vocabulary[T]) scan(src interface{}) (T, error) {
	switch s := src.(type) {
	case string:
		return v.parse(s)
	case []byte:
		return v.parse(string(s))
	default:
		return 0, fmt.Errorf("类型断言失败: %s 不支持 %T", v.name, src)
	}
}

// 所有词表，键为接口中使用的枚举名
var vocabularies = map[string]func() []Variant{
	"business_type":        businessTypes.variants,
	"business_status":      businessStatuses.variants,
	"stock_status":         stockStatuses.variants,
	"cart_status":          cartStatuses.variants,
	"notification_type":    notificationTypes.variants,
	"notification_channel": notificationChannels.variants,
	"user_role":            userRoles.variants,
	"user_status":          userStatuses.variants,
}

// Vocabularies 获取全部枚举词表
func Vocabularies() map[string][]Variant {
	result := make(map[string][]Variant, len(vocabularies))
	for name, fn := range vocabularies {
		result[name] = fn()
	}
	return result
}

// Vocabulary 按名称获取枚举词表
func Vocabulary(name string) ([]Variant, bool) {
	fn, ok := vocabularies[name]
	if !ok {
		return nil, false
	}
	return fn(), true
}
