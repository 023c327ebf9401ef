/*
 * @module service/clients/client_service
 * @description 客户服务，提供客户创建与查询的业务逻辑
 * @architecture 分层架构 - 业务服务层
 * @stateFlow 请求校验 -> 唯一性检查 -> 持久化
 * @rules 入参必须先通过 CreateClientDto 校验；邮箱按小写唯一
 * @dependencies retail-service/service/models, gorm.io/gorm
 * @refs api/dto/client_dto.go
 */

package clients

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"retail-service/api/dto"
	"retail-service/service/models"

	"gorm.io/gorm"
)

var (
	// ErrClientExists 邮箱已被使用
	ErrClientExists = errors.New("客户邮箱已存在")
	// ErrClientNotFound 客户不存在
	ErrClientNotFound = errors.New("客户不存在")
)

// Service 客户服务
type Service struct {
	db *gorm.DB
}

// NewService 创建客户服务实例
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// CreateClient 创建客户。req 不合法时返回 dto.ValidationErrors
func (s *Service) CreateClient(ctx context.Context, req dto.CreateClientDto) (*models.Client, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, errs
	}
	req = req.Normalized()

	client := &models.Client{
		Name:  req.Name,
		Email: req.Email,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Client{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
			return fmt.Errorf("查询客户失败: %w", err)
		}
		if count > 0 {
			return ErrClientExists
		}
		return insertClient(tx, client)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("客户创建成功", "client_id", client.ID, "email", client.Email)
	return client, nil
}

// insertClient 写入客户；并发创建时计数检查可能同时通过，由唯一索引兜底
func insertClient(tx *gorm.DB, client *models.Client) error {
	err := tx.Create(client).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrClientExists
	}
	if err != nil {
		return fmt.Errorf("创建客户失败: %w", err)
	}
	return nil
}

// GetClient 根据ID获取客户
func (s *Service) GetClient(ctx context.Context, id string) (*models.Client, error) {
	var client models.Client
	err := s.db.WithContext(ctx).First(&client, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("查询客户失败: %w", err)
	}
	return &client, nil
}

// ListClients 分页获取客户列表，按创建时间倒序
func (s *Service) ListClients(ctx context.Context, page, size int) ([]models.Client, int64, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 10
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Client{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("统计客户数量失败: %w", err)
	}

	var clients []models.Client
	err := s.db.WithContext(ctx).Order("created_at DESC").Offset((page - 1) * size).Limit(size).Find(&clients).Error
	if err != nil {
		return nil, 0, fmt.Errorf("查询客户列表失败: %w", err)
	}

	return clients, total, nil
}
