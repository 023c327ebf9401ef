/*
 * @module api/controllers/upload_controller
 * @description 文件上传控制器
 * @architecture MVC架构 - 控制器层
 * @stateFlow multipart请求 -> 读取file字段 -> 上传服务 -> 存储目录
 * @rules 请求体按 MAX_FILE_SIZE 限制，超限返回 413
 * @dependencies github.com/go-chi/render
 * @refs service/upload
 */

package controllers

import (
	"errors"
	"io"
	"net/http"
	"retail-service/service/metrics"
	"retail-service/service/upload"

	"github.com/go-chi/render"
)

// multipart 头部与边界的额外开销
const multipartOverhead = 1 << 20

// UploadController 文件上传控制器
type UploadController struct {
	service *upload.Service
	metrics *metrics.Metrics
}

// NewUploadController 创建文件上传控制器实例
func NewUploadController(service *upload.Service, m *metrics.Metrics) *UploadController {
	return &UploadController{service: service, metrics: m}
}

// Upload 上传文件
// @Summary 上传文件
// @Description 以 multipart/form-data 上传单个文件，字段名为 file
// @Tags 文件
// @Accept mpfd
// @Produce json
// @Param file formData file true "文件"
// @Success 201 {object} APIResponse{data=models.UploadedFile}
// @Failure 400 {object} APIResponse
// @Failure 413 {object} APIResponse
// @Router /uploads [post]
func (c *UploadController) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, c.service.MaxSize()+multipartOverhead)

	reader, err := r.MultipartReader()
	if err != nil {
		renderError(w, r, http.StatusBadRequest, "请求必须为 multipart/form-data", err)
		return
	}

	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			renderError(w, r, http.StatusBadRequest, "缺少 file 字段", nil)
			return
		}
		if err != nil {
			c.renderReadError(w, r, err)
			return
		}
		if part.FormName() != "file" || part.FileName() == "" {
			part.Close()
			continue
		}

		record, err := c.service.Save(r.Context(), part.FileName(), part.Header.Get("Content-Type"), part)
		part.Close()
		if err != nil {
			c.renderReadError(w, r, err)
			return
		}

		if c.metrics != nil {
			c.metrics.UploadedBytes.Add(float64(record.Size))
		}
		render.Status(r, http.StatusCreated)
		render.JSON(w, r, SuccessResponse("上传成功", record))
		return
	}
}

func (c *UploadController) renderReadError(w http.ResponseWriter, r *http.Request, err error) {
	var maxErr *http.MaxBytesError
	if errors.Is(err, upload.ErrFileTooLarge) || errors.As(err, &maxErr) {
		renderError(w, r, http.StatusRequestEntityTooLarge, "文件大小超过限制", err)
		return
	}
	renderError(w, r, http.StatusInternalServerError, "上传失败", err)
}
