/*
 * @module service/meta/inventory
 * @description 库存与购物车相关枚举：库存状态、购物车状态
 * @architecture 常量层 - 元数据定义
 * @rules 序列化字符串是持久化与接口的兼容契约，不得修改
 * @dependencies 无外部依赖
 * @refs service/meta/enum.go
 */

package meta

import "database/sql/driver"

// StockStatus 库存状态
type StockStatus int

// 库存状态
const (
	StockStatusInStock StockStatus = iota + 1
	StockStatusLowStock
	StockStatusOutOfStock
	StockStatusDiscontinued
)

var stockStatuses = newVocabulary[StockStatus]("stock_status",
	entry{"in_stock", "有货"},
	entry{"low_stock", "库存不足"},
	entry{"out_of_stock", "缺货"},
	entry{"discontinued", "已停售"},
)

// ParseStockStatus 解析库存状态
func ParseStockStatus(s string) (StockStatus, error) {
	return stockStatuses.parse(s)
}

// GetAllStockStatuses 按声明顺序返回全部库存状态
func GetAllStockStatuses() []StockStatus {
	return stockStatuses.all()
}

func (s StockStatus) String() string {
	return stockStatuses.wire(s)
}

// DisplayName 显示名称
func (s StockStatus) DisplayName() string {
	return stockStatuses.display(s)
}

// IsValid 是否为已声明的库存状态
func (s StockStatus) IsValid() bool {
	return stockStatuses.valid(s)
}

func (s StockStatus) MarshalText() ([]byte, error) {
	return stockStatuses.marshalText(s)
}

func (s *StockStatus) UnmarshalText(text []byte) error {
	v, err := stockStatuses.parse(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Value 实现 driver.Valuer
func (s StockStatus) Value() (driver.Value, error) {
	return stockStatuses.value(s)
}

// Scan 实现 sql.Scanner
func (s *StockStatus) Scan(src interface{}) error {
	v, err := stockStatuses.scan(src)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// CartStatus 购物车状态
type CartStatus int

// 购物车状态
const (
	CartStatusActive CartStatus = iota + 1
	CartStatusCheckedOut
	CartStatusAbandoned
	CartStatusExpired
)

var cartStatuses = newVocabulary[CartStatus]("cart_status",
	entry{"active", "进行中"},
	entry{"checked_out", "已结算"},
	entry{"abandoned", "已放弃"},
	entry{"expired", "已过期"},
)

// ParseCartStatus 解析购物车状态
func ParseCartStatus(s string) (CartStatus, error) {
	return cartStatuses.parse(s)
}

// GetAllCartStatuses 按声明顺序返回全部购物车状态
func GetAllCartStatuses() []CartStatus {
	return cartStatuses.all()
}

func (c CartStatus) String() string {
	return cartStatuses.wire(c)
}

// DisplayName 显示名称
func (c CartStatus) DisplayName() string {
	return cartStatuses.display(c)
}

// IsValid 是否为已声明的购物车状态
func (c CartStatus) IsValid() bool {
	return cartStatuses.valid(c)
}

func (c CartStatus) MarshalText() ([]byte, error) {
	return cartStatuses.marshalText(c)
}

func (c *CartStatus) UnmarshalText(text []byte) error {
	v, err := cartStatuses.parse(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Value 实现 driver.Valuer
func (c CartStatus) Value() (driver.Value, error) {
	return cartStatuses.value(c)
}

// Scan 实现 sql.Scanner
func (c *CartStatus) Scan(src interface{}) error {
	v, err := cartStatuses.scan(src)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// GormDataType 以字符串列持久化
func (StockStatus) GormDataType() string {
	return "varchar(32)"
}

// GormDataType 以字符串列持久化
func (CartStatus) GormDataType() string {
	return "varchar(32)"
}
