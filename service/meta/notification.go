/*
 * @module service/meta/notification
 * @description 通知相关枚举：通知类型、通知渠道
 * @architecture 常量层 - 元数据定义
 * @rules 序列化字符串是持久化与接口的兼容契约，不得修改
 * @dependencies 无外部依赖
 * @refs service/meta/enum.go
 */

package meta

import "database/sql/driver"

// NotificationType 通知类型
type NotificationType int

// 通知类型
const (
	NotificationTypeLowStock NotificationType = iota + 1
	NotificationTypeOrderPlaced
	NotificationTypeOrderCompleted
	NotificationTypePaymentReceived
	NotificationTypeSystemAlert
	NotificationTypePromotion
)

var notificationTypes = newVocabulary[NotificationType]("notification_type",
	entry{"low_stock", "库存预警"},
	entry{"order_placed", "新订单"},
	entry{"order_completed", "订单完成"},
	entry{"payment_received", "收款通知"},
	entry{"system_alert", "系统告警"},
	entry{"promotion", "促销活动"},
)

// ParseNotificationType 解析通知类型
func ParseNotificationType(s string) (NotificationType, error) {
	return notificationTypes.parse(s)
}

// GetAllNotificationTypes 按声明顺序返回全部通知类型
func GetAllNotificationTypes() []NotificationType {
	return notificationTypes.all()
}

func (n NotificationType) String() string {
	return notificationTypes.wire(n)
}

// DisplayName 显示名称
func (n NotificationType) DisplayName() string {
	return notificationTypes.display(n)
}

// IsValid 是否为已声明的通知类型
func (n NotificationType) IsValid() bool {
	return notificationTypes.valid(n)
}

func (n NotificationType) MarshalText() ([]byte, error) {
	return notificationTypes.marshalText(n)
}

func (n *NotificationType) UnmarshalText(text []byte) error {
	v, err := notificationTypes.parse(string(text))
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// Value 实现 driver.Valuer
func (n NotificationType) Value() (driver.Value, error) {
	return notificationTypes.value(n)
}

// Scan 实现 sql.Scanner
func (n *NotificationType) Scan(src interface{}) error {
	v, err := notificationTypes.scan(src)
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// NotificationChannel 通知渠道
type NotificationChannel int

// 通知渠道
const (
	NotificationChannelEmail NotificationChannel = iota + 1
	NotificationChannelSMS
	NotificationChannelPush
	NotificationChannelInApp
)

var notificationChannels = newVocabulary[NotificationChannel]("notification_channel",
	entry{"email", "邮件"},
	entry{"sms", "短信"},
	entry{"push", "推送"},
	entry{"in_app", "站内信"},
)

// ParseNotificationChannel 解析通知渠道
func ParseNotificationChannel(s string) (NotificationChannel, error) {
	return notificationChannels.parse(s)
}

// GetAllNotificationChannels 按声明顺序返回全部通知渠道
func GetAllNotificationChannels() []NotificationChannel {
	return notificationChannels.all()
}

func (n NotificationChannel) String() string {
	return notificationChannels.wire(n)
}

// DisplayName 显示名称
func (n NotificationChannel) DisplayName() string {
	return notificationChannels.display(n)
}

// IsValid 是否为已声明的通知渠道
func (n NotificationChannel) IsValid() bool {
	return notificationChannels.valid(n)
}

func (n NotificationChannel) MarshalText() ([]byte, error) {
	return notificationChannels.marshalText(n)
}

func (n *NotificationChannel) UnmarshalText(text []byte) error {
	v, err := notificationChannels.parse(string(text))
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// Value 实现 driver.Valuer
func (n NotificationChannel) Value() (driver.Value, error) {
	return notificationChannels.value(n)
}

// Scan 实现 sql.Scanner
func (n *NotificationChannel) Scan(src interface{}) error {
	v, err := notificationChannels.scan(src)
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// GormDataType 以字符串列持久化
func (NotificationType) GormDataType() string {
	return "varchar(32)"
}

// GormDataType 以字符串列持久化
func (NotificationChannel) GormDataType() string {
	return "varchar(32)"
}
