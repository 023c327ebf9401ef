/*
 * @module service/models/client
 * @description 客户与上传文件模型定义
 * @architecture 数据模型层
 * @stateFlow 创建 -> 查询；上传文件 -> 过期清理
 * @rules 客户邮箱唯一；ID 由创建钩子生成 UUID
 * @dependencies gorm.io/gorm, github.com/google/uuid
 * @refs service/meta/user.go
 */

package models

import (
	"retail-service/service/meta"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client 客户模型
type Client struct {
	ID        string          `json:"id" gorm:"primaryKey;type:varchar(36)" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name      string          `json:"name" gorm:"not null;size:255" example:"Acme Corporation"`
	Email     string          `json:"email" gorm:"not null;uniqueIndex;size:255" example:"contact@acme.com"`
	Status    meta.UserStatus `json:"status" gorm:"not null" swaggertype:"string" example:"active"`
	CreatedAt time.Time       `json:"created_at"`
	CreatedBy string          `json:"created_by" gorm:"not null;default:'system';size:100"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// TableName 指定表名
func (Client) TableName() string {
	return "clients"
}

// BeforeCreate GORM钩子，创建前生成UUID并设置默认状态
func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.CreatedBy == "" {
		c.CreatedBy = "system"
	}
	if !c.Status.IsValid() {
		c.Status = meta.UserStatusActive
	}
	return nil
}

// UploadedFile 上传文件记录
type UploadedFile struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OriginalName string    `json:"original_name" gorm:"not null;size:255"`
	StoredName   string    `json:"stored_name" gorm:"not null;uniqueIndex;size:255"`
	Path         string    `json:"-" gorm:"not null;size:1000"`
	ContentType  string    `json:"content_type" gorm:"size:100"`
	Size         int64     `json:"size" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"index"`
}

// TableName 指定表名
func (UploadedFile) TableName() string {
	return "uploaded_files"
}

// BeforeCreate GORM钩子，创建前生成UUID
func (f *UploadedFile) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return nil
}

// AllModels 需要自动迁移的模型
func AllModels() []interface{} {
	return []interface{}{
		&Client{},
		&UploadedFile{},
	}
}
