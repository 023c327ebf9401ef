package controllers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

// APIResponse 统一API响应结构
type APIResponse struct {
	Status int         `json:"status" example:"0"`
	Msg    string      `json:"msg" example:"操作成功"`
	Data   interface{} `json:"data,omitempty"`
}

// PaginatedResponse 分页响应结构
type PaginatedResponse struct {
	Status int         `json:"status" example:"0"`
	Msg    string      `json:"msg" example:"操作成功"`
	Data   interface{} `json:"data"`
	Total  int64       `json:"total" example:"100"`
	Page   int         `json:"page" example:"1"`
	Size   int         `json:"size" example:"10"`
}

// SuccessResponse 成功响应，status 固定为 0
func SuccessResponse(msg string, data interface{}) APIResponse {
	return APIResponse{
		Status: 0,
		Msg:    msg,
		Data:   data,
	}
}

// ErrorResponse 错误响应，err 只记录日志不返回给调用方
func ErrorResponse(status int, msg string, err error) APIResponse {
	if err != nil {
		slog.Warn(msg, "status", status, "error", err)
	}
	return APIResponse{
		Status: status,
		Msg:    msg,
	}
}

// renderError 设置HTTP状态码并输出错误响应
func renderError(w http.ResponseWriter, r *http.Request, status int, msg string, err error) {
	render.Status(r, status)
	render.JSON(w, r, ErrorResponse(status, msg, err))
}
