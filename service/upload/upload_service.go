/*
 * @module service/upload/upload_service
 * @description 文件上传服务，负责按配置的大小上限与存储目录保存上传文件
 * @architecture 分层架构 - 业务服务层
 * @stateFlow 读取上传流 -> 大小检查 -> 写入存储目录 -> 记录元数据
 * @rules 文件大小不得超过 MaxFileSize；存储目录在使用时创建，不在配置解析时校验
 * @dependencies retail-service/service/models, gorm.io/gorm, github.com/google/uuid
 * @refs config/app_config.go, service/cleanup/upload_cleanup_service.go
 */

package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"retail-service/service/models"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrFileTooLarge 文件超过大小上限
var ErrFileTooLarge = errors.New("文件大小超过限制")

// Service 文件上传服务
type Service struct {
	db      *gorm.DB
	dest    string
	maxSize int64
}

// NewService 创建文件上传服务实例
func NewService(db *gorm.DB, dest string, maxSize int64) *Service {
	return &Service{
		db:      db,
		dest:    dest,
		maxSize: maxSize,
	}
}

// MaxSize 单个文件大小上限（字节）
func (s *Service) MaxSize() int64 {
	return s.maxSize
}

// Save 保存上传文件
func (s *Service) Save(ctx context.Context, originalName, contentType string, r io.Reader) (*models.UploadedFile, error) {
	if err := os.MkdirAll(s.dest, 0o755); err != nil {
		return nil, fmt.Errorf("创建上传目录失败: %w", err)
	}

	storedName := uuid.New().String() + sanitizeExt(originalName)
	path := filepath.Join(s.dest, storedName)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("创建文件失败: %w", err)
	}

	written, copyErr := io.Copy(f, io.LimitReader(r, s.maxSize+1))
	closeErr := f.Close()
	if copyErr != nil || closeErr != nil || written > s.maxSize {
		os.Remove(path)
		switch {
		case copyErr != nil:
			return nil, fmt.Errorf("写入文件失败: %w", copyErr)
		case closeErr != nil:
			return nil, fmt.Errorf("写入文件失败: %w", closeErr)
		default:
			return nil, fmt.Errorf("%w: 上限 %d 字节", ErrFileTooLarge, s.maxSize)
		}
	}

	record := &models.UploadedFile{
		OriginalName: filepath.Base(originalName),
		StoredName:   storedName,
		Path:         path,
		ContentType:  contentType,
		Size:         written,
	}
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("保存文件记录失败: %w", err)
	}

	slog.Info("文件上传成功", "file_id", record.ID, "stored_name", storedName, "size", written)
	return record, nil
}

// DeleteOlderThan 删除早于 cutoff 的上传文件及其记录，返回删除数量
func (s *Service) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	var files []models.UploadedFile
	if err := s.db.WithContext(ctx).Where("created_at < ?", cutoff).Find(&files).Error; err != nil {
		return 0, fmt.Errorf("查询过期文件失败: %w", err)
	}

	var deleted int64
	for _, file := range files {
		if err := os.Remove(file.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
			slog.Warn("删除过期文件失败", "path", file.Path, "error", err)
			continue
		}
		if err := s.db.WithContext(ctx).Delete(&models.UploadedFile{}, "id = ?", file.ID).Error; err != nil {
			return deleted, fmt.Errorf("删除文件记录失败: %w", err)
		}
		deleted++
	}

	return deleted, nil
}

// sanitizeExt 返回安全的小写扩展名
func sanitizeExt(name string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(name)))
	if len(ext) > 10 {
		return ""
	}
	for _, r := range ext[min(1, len(ext)):] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
