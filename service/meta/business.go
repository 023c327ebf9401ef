/*
 * @module service/meta/business
 * @description 商户相关枚举：商户类型、商户状态
 * @architecture 常量层 - 元数据定义
 * @rules 序列化字符串是持久化与接口的兼容契约，不得修改
 * @dependencies 无外部依赖
 * @refs service/meta/enum.go
 */

package meta

import "database/sql/driver"

// BusinessType 商户类型
type BusinessType int

// 商户类型
const (
	BusinessTypeRestaurant BusinessType = iota + 1
	BusinessTypeRetail
	BusinessTypeCafe
	BusinessTypeBar
	BusinessTypeFoodTruck
	BusinessTypeGrocery
	BusinessTypeOther
)

var businessTypes = newVocabulary[BusinessType]("business_type",
	entry{"restaurant", "餐厅"},
	entry{"retail", "零售店"},
	entry{"cafe", "咖啡馆"},
	entry{"bar", "酒吧"},
	entry{"food_truck", "餐车"},
	entry{"grocery", "杂货店"},
	entry{"other", "其他"},
)

// ParseBusinessType 解析商户类型
func ParseBusinessType(s string) (BusinessType, error) {
	return businessTypes.parse(s)
}

// GetAllBusinessTypes 按声明顺序返回全部商户类型
func GetAllBusinessTypes() []BusinessType {
	return businessTypes.all()
}

func (b BusinessType) String() string {
	return businessTypes.wire(b)
}

// DisplayName 显示名称
func (b BusinessType) DisplayName() string {
	return businessTypes.display(b)
}

// IsValid 是否为已声明的商户类型
func (b BusinessType) IsValid() bool {
	return businessTypes.valid(b)
}

func (b BusinessType) MarshalText() ([]byte, error) {
	return businessTypes.marshalText(b)
}

func (b *BusinessType) UnmarshalText(text []byte) error {
	v, err := businessTypes.parse(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// Value 实现 driver.Valuer
func (b BusinessType) Value() (driver.Value, error) {
	return businessTypes.value(b)
}

// Scan 实现 sql.Scanner
func (b *BusinessType) Scan(src interface{}) error {
	v, err := businessTypes.scan(src)
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// BusinessStatus 商户状态
type BusinessStatus int

// 商户状态
const (
	BusinessStatusActive BusinessStatus = iota + 1
	BusinessStatusInactive
	BusinessStatusSuspended
	BusinessStatusPendingApproval
)

var businessStatuses = newVocabulary[BusinessStatus]("business_status",
	entry{"active", "营业中"},
	entry{"inactive", "已停业"},
	entry{"suspended", "已暂停"},
	entry{"pending_approval", "待审核"},
)

// ParseBusinessStatus 解析商户状态
func ParseBusinessStatus(s string) (BusinessStatus, error) {
	return businessStatuses.parse(s)
}

// GetAllBusinessStatuses 按声明顺序返回全部商户状态
func GetAllBusinessStatuses() []BusinessStatus {
	return businessStatuses.all()
}

func (b BusinessStatus) String() string {
	return businessStatuses.wire(b)
}

// DisplayName 显示名称
func (b BusinessStatus) DisplayName() string {
	return businessStatuses.display(b)
}

// IsValid 是否为已声明的商户状态
func (b BusinessStatus) IsValid() bool {
	return businessStatuses.valid(b)
}

func (b BusinessStatus) MarshalText() ([]byte, error) {
	return businessStatuses.marshalText(b)
}

func (b *BusinessStatus) UnmarshalText(text []byte) error {
	v, err := businessStatuses.parse(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// Value 实现 driver.Valuer
func (b BusinessStatus) Value() (driver.Value, error) {
	return businessStatuses.value(b)
}

// Scan 实现 sql.Scanner
func (b *BusinessStatus) Scan(src interface{}) error {
	v, err := businessStatuses.scan(src)
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// GormDataType 以字符串列持久化
func (BusinessType) GormDataType() string {
	return "varchar(32)"
}

// GormDataType 以字符串列持久化
func (BusinessStatus) GormDataType() string {
	return "varchar(32)"
}
