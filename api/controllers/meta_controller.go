package controllers

import (
	"net/http"
	"retail-service/service/meta"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type MetaController struct {
}

func NewMetaController() *MetaController {
	return &MetaController{}
}

// @Summary 获取所有枚举词表
// @Description 获取商户、库存、购物车、通知、用户相关的全部枚举值
// @Tags 元数据
// @Produce json
// @Success 200 {object} APIResponse{data=map[string][]meta.Variant}
// @Router /meta/enums [get]
func (c *MetaController) GetEnums(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, SuccessResponse("获取枚举元数据成功", meta.Vocabularies()))
}

// @Summary 获取指定枚举词表
// @Tags 元数据
// @Produce json
// @Param name path string true "枚举名，如 business_type"
// @Success 200 {object} APIResponse{data=[]meta.Variant}
// @Failure 404 {object} APIResponse
// @Router /meta/enums/{name} [get]
func (c *MetaController) GetEnum(w http.ResponseWriter, r *http.Request) {
	variants, ok := meta.Vocabulary(chi.URLParam(r, "name"))
	if !ok {
		renderError(w, r, http.StatusNotFound, "枚举不存在", nil)
		return
	}
	render.JSON(w, r, SuccessResponse("获取枚举元数据成功", variants))
}
