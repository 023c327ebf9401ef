/*
 * @module service/cleanup/upload_cleanup_service
 * @description 上传文件清理服务，负责定期删除超过保留天数的上传文件
 * @architecture 分层架构 - 业务服务层
 * @stateFlow 定时触发 -> 计算截止时间 -> 删除文件与记录 -> 记录结果
 * @rules 清理失败只记录日志，不影响服务运行
 * @dependencies retail-service/service/upload, github.com/robfig/cron/v3
 * @refs config/infra_config.go
 */

package cleanup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// FileRemover 按截止时间删除上传文件
type FileRemover interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// UploadCleanupService 上传文件清理服务
type UploadCleanupService struct {
	remover       FileRemover
	retentionDays int
	spec          string
	cron          *cron.Cron
	ctx           context.Context
	cancel        context.CancelFunc
	started       bool
	now           func() time.Time
}

// NewUploadCleanupService 创建上传文件清理服务实例
// spec 为带秒字段的Cron表达式：秒 分 时 日 月 周
func NewUploadCleanupService(remover FileRemover, retentionDays int, spec string) *UploadCleanupService {
	ctx, cancel := context.WithCancel(context.Background())

	return &UploadCleanupService{
		remover:       remover,
		retentionDays: retentionDays,
		spec:          spec,
		cron:          cron.New(cron.WithSeconds()),
		ctx:           ctx,
		cancel:        cancel,
		now:           time.Now,
	}
}

// CleanupExpiredUploads 清理过期上传文件
// retentionDays 非正数时跳过清理
func (s *UploadCleanupService) CleanupExpiredUploads(ctx context.Context) (int64, error) {
	if s.retentionDays <= 0 {
		slog.Warn("保留天数无效，跳过上传文件清理", "retention_days", s.retentionDays)
		return 0, nil
	}

	startTime := s.now()
	cutoff := startTime.AddDate(0, 0, -s.retentionDays)

	slog.Debug("清理过期上传文件", "cutoff_date", cutoff.Format("2006-01-02 15:04:05"), "retention_days", s.retentionDays)

	deleted, err := s.remover.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return deleted, fmt.Errorf("清理过期上传文件失败: %w", err)
	}

	slog.Info("上传文件清理完成",
		"deleted_count", deleted,
		"retention_days", s.retentionDays,
		"duration_ms", s.now().Sub(startTime).Milliseconds())

	return deleted, nil
}

// StartScheduledCleanup 启动定时清理任务
func (s *UploadCleanupService) StartScheduledCleanup() error {
	if s.started {
		return fmt.Errorf("上传文件清理调度器已经启动")
	}

	_, err := s.cron.AddFunc(s.spec, func() {
		slog.Info("开始执行定时上传文件清理任务")
		if _, err := s.CleanupExpiredUploads(s.ctx); err != nil {
			slog.Error("定时上传文件清理任务失败", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("添加定时任务失败: %w", err)
	}

	s.cron.Start()
	s.started = true

	slog.Info("上传文件清理调度器启动成功", "cron", s.spec)
	return nil
}

// StopScheduledCleanup 停止定时清理任务
func (s *UploadCleanupService) StopScheduledCleanup() {
	if !s.started {
		return
	}

	s.cancel()
	<-s.cron.Stop().Done()
	s.started = false

	slog.Info("上传文件清理调度器已停止")
}
