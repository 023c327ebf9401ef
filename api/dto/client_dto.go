package dto

import "strings"

// 客户字段长度上限
const (
	MaxClientNameLength  = 255
	MaxClientEmailLength = 255
)

// CreateClientDto 创建客户请求
type CreateClientDto struct {
	Name  string `json:"name" example:"Acme Corporation"`
	Email string `json:"email" example:"contact@acme.com"`
}

// Validate 校验请求，返回全部违规项
func (d CreateClientDto) Validate() ValidationErrors {
	return Validate(
		FieldRules{Field: "name", Value: d.Name, Rules: []Rule{MaxLength(MaxClientNameLength)}},
		FieldRules{Field: "email", Value: d.Email, Rules: []Rule{MaxLength(MaxClientEmailLength), Email()}},
	)
}

// Normalized 返回去除首尾空白、邮箱小写的副本
func (d CreateClientDto) Normalized() CreateClientDto {
	return CreateClientDto{
		Name:  strings.TrimSpace(d.Name),
		Email: strings.ToLower(strings.TrimSpace(d.Email)),
	}
}
