/*
 * @module service/meta/user
 * @description 用户相关枚举：用户角色、用户状态
 * @architecture 常量层 - 元数据定义
 * @rules 序列化字符串是持久化与接口的兼容契约，不得修改
 * @dependencies 无外部依赖
 * @refs service/meta/enum.go
 */

package meta

import "database/sql/driver"

// UserRole 用户角色
type UserRole int

// 用户角色
const (
	UserRoleSuperAdmin UserRole = iota + 1
	UserRoleBusinessOwner
	UserRoleManager
	UserRoleStaff
	UserRoleCustomer
)

var userRoles = newVocabulary[UserRole]("user_role",
	entry{"super_admin", "超级管理员"},
	entry{"business_owner", "商户所有者"},
	entry{"manager", "店长"},
	entry{"staff", "店员"},
	entry{"customer", "顾客"},
)

// ParseUserRole 解析用户角色
func ParseUserRole(s string) (UserRole, error) {
	return userRoles.parse(s)
}

// GetAllUserRoles 按声明顺序返回全部用户角色
func GetAllUserRoles() []UserRole {
	return userRoles.all()
}

func (u UserRole) String() string {
	return userRoles.wire(u)
}

// DisplayName 显示名称
func (u UserRole) DisplayName() string {
	return userRoles.display(u)
}

// IsValid 是否为已声明的用户角色
func (u UserRole) IsValid() bool {
	return userRoles.valid(u)
}

func (u UserRole) MarshalText() ([]byte, error) {
	return userRoles.marshalText(u)
}

func (u *UserRole) UnmarshalText(text []byte) error {
	v, err := userRoles.parse(string(text))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// Value 实现 driver.Valuer
func (u UserRole) Value() (driver.Value, error) {
	return userRoles.value(u)
}

// Scan 实现 sql.Scanner
func (u *UserRole) Scan(src interface{}) error {
	v, err := userRoles.scan(src)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// UserStatus 用户状态
type UserStatus int

// 用户状态
const (
	UserStatusActive UserStatus = iota + 1
	UserStatusInactive
	UserStatusSuspended
	UserStatusPendingVerification
)

var userStatuses = newVocabulary[UserStatus]("user_status",
	entry{"active", "正常"},
	entry{"inactive", "未激活"},
	entry{"suspended", "已冻结"},
	entry{"pending_verification", "待验证"},
)

// ParseUserStatus 解析用户状态
func ParseUserStatus(s string) (UserStatus, error) {
	return userStatuses.parse(s)
}

// GetAllUserStatuses 按声明顺序返回全部用户状态
func GetAllUserStatuses() []UserStatus {
	return userStatuses.all()
}

func (u UserStatus) String() string {
	return userStatuses.wire(u)
}

// DisplayName 显示名称
func (u UserStatus) DisplayName() string {
	return userStatuses.display(u)
}

// IsValid 是否为已声明的用户状态
func (u UserStatus) IsValid() bool {
	return userStatuses.valid(u)
}

func (u UserStatus) MarshalText() ([]byte, error) {
	return userStatuses.marshalText(u)
}

func (u *UserStatus) UnmarshalText(text []byte) error {
	v, err := userStatuses.parse(string(text))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// Value 实现 driver.Valuer
func (u UserStatus) Value() (driver.Value, error) {
	return userStatuses.value(u)
}

// Scan 实现 sql.Scanner
func (u *UserStatus) Scan(src interface{}) error {
	v, err := userStatuses.scan(src)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// GormDataType 以字符串列持久化
func (UserRole) GormDataType() string {
	return "varchar(32)"
}

// GormDataType 以字符串列持久化
func (UserStatus) GormDataType() string {
	return "varchar(32)"
}
