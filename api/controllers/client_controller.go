/*
 * @module api/controllers/client_controller
 * @description 客户管理控制器，提供客户创建与查询接口
 * @architecture MVC架构 - 控制器层
 * @stateFlow HTTP请求 -> 参数校验 -> 客户服务 -> 数据库
 * @rules 参数校验失败时一次返回全部违规字段，不进入业务逻辑
 * @dependencies github.com/go-chi/chi/v5, github.com/go-chi/render
 * @refs api/dto/client_dto.go, service/clients
 */

package controllers

import (
	"errors"
	"net/http"
	"retail-service/api/dto"
	"retail-service/service/clients"
	"retail-service/service/metrics"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// ClientController 客户控制器
type ClientController struct {
	service *clients.Service
	metrics *metrics.Metrics
}

// NewClientController 创建客户控制器实例
func NewClientController(service *clients.Service, m *metrics.Metrics) *ClientController {
	return &ClientController{service: service, metrics: m}
}

// CreateClient 创建客户
// @Summary 创建客户
// @Description 校验名称与邮箱后创建客户，邮箱不区分大小写唯一
// @Tags 客户管理
// @Accept json
// @Produce json
// @Param request body dto.CreateClientDto true "创建客户请求"
// @Success 201 {object} APIResponse{data=models.Client}
// @Failure 400 {object} APIResponse{data=[]dto.ValidationError}
// @Failure 409 {object} APIResponse
// @Failure 500 {object} APIResponse
// @Router /clients [post]
func (c *ClientController) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateClientDto
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		renderError(w, r, http.StatusBadRequest, "请求参数格式错误", err)
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		c.renderValidationErrors(w, r, errs)
		return
	}

	client, err := c.service.CreateClient(r.Context(), req)
	if err != nil {
		var errs dto.ValidationErrors
		switch {
		case errors.As(err, &errs):
			c.renderValidationErrors(w, r, errs)
		case errors.Is(err, clients.ErrClientExists):
			renderError(w, r, http.StatusConflict, "客户邮箱已存在", err)
		default:
			renderError(w, r, http.StatusInternalServerError, "创建客户失败", err)
		}
		return
	}

	if c.metrics != nil {
		c.metrics.ClientsCreated.Inc()
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, SuccessResponse("创建客户成功", client))
}

// GetClient 获取客户详情
// @Summary 获取客户详情
// @Tags 客户管理
// @Produce json
// @Param id path string true "客户ID"
// @Success 200 {object} APIResponse{data=models.Client}
// @Failure 404 {object} APIResponse
// @Router /clients/{id} [get]
func (c *ClientController) GetClient(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	client, err := c.service.GetClient(r.Context(), id)
	if err != nil {
		if errors.Is(err, clients.ErrClientNotFound) {
			renderError(w, r, http.StatusNotFound, "客户不存在", nil)
			return
		}
		renderError(w, r, http.StatusInternalServerError, "获取客户失败", err)
		return
	}

	render.JSON(w, r, SuccessResponse("获取客户成功", client))
}

// ListClients 获取客户列表
// @Summary 获取客户列表
// @Tags 客户管理
// @Produce json
// @Param page query int false "页码" default(1)
// @Param size query int false "每页数量" default(10)
// @Success 200 {object} PaginatedResponse{data=[]models.Client}
// @Router /clients [get]
func (c *ClientController) ListClients(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	size, _ := strconv.Atoi(r.URL.Query().Get("size"))
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 10
	}

	list, total, err := c.service.ListClients(r.Context(), page, size)
	if err != nil {
		renderError(w, r, http.StatusInternalServerError, "获取客户列表失败", err)
		return
	}

	render.JSON(w, r, PaginatedResponse{
		Status: 0,
		Msg:    "获取客户列表成功",
		Data:   list,
		Total:  total,
		Page:   page,
		Size:   size,
	})
}

func (c *ClientController) renderValidationErrors(w http.ResponseWriter, r *http.Request, errs dto.ValidationErrors) {
	if c.metrics != nil {
		for _, e := range errs {
			c.metrics.ValidationFailures.WithLabelValues(e.Field, e.Constraint).Inc()
		}
	}
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, APIResponse{
		Status: http.StatusBadRequest,
		Msg:    "参数校验失败",
		Data:   errs,
	})
}
