/*
 * @module api/dto/validation
 * @description 请求参数校验基础设施：显式组合的字段规则，一次返回全部违规项
 * @architecture 接口层 - 请求边界校验
 * @stateFlow 请求体 -> 字段规则逐项检查 -> 违规列表
 * @rules 空字段只报告 required；非空字段的长度与格式规则全部检查
 * @dependencies github.com/go-playground/validator/v10, golang.org/x/text/unicode/norm
 * @refs api/dto/client_dto.go
 */

package dto

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"
)

// 约束名称
const (
	ConstraintRequired  = "required"
	ConstraintMaxLength = "max_length"
	ConstraintEmail     = "email"
)

// ValidationError 单个字段的校验失败
type ValidationError struct {
	Field      string `json:"field" example:"email"`
	Constraint string `json:"constraint" example:"email"`
	Message    string `json:"message" example:"email 必须是合法的邮箱地址"`
}

func (e ValidationError) Error() string {
	return e.Message
}

// ValidationErrors 全部校验失败项
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Message
	}
	return "参数校验失败: " + strings.Join(msgs, "; ")
}

// Fields 返回违规字段名（去重，保持顺序）
func (e ValidationErrors) Fields() []string {
	seen := make(map[string]bool)
	fields := make([]string, 0, len(e))
	for _, v := range e {
		if !seen[v.Field] {
			seen[v.Field] = true
			fields = append(fields, v.Field)
		}
	}
	return fields
}

// Rule 字段规则，通过时返回 nil
type Rule func(field, value string) *ValidationError

// FieldRules 单个字段及其规则
type FieldRules struct {
	Field string
	Value string
	Rules []Rule
}

// Validate 按顺序检查所有字段，返回全部违规项；全部通过时返回 nil
func Validate(fields ...FieldRules) ValidationErrors {
	var errs ValidationErrors
	for _, f := range fields {
		if strings.TrimSpace(f.Value) == "" {
			errs = append(errs, ValidationError{
				Field:      f.Field,
				Constraint: ConstraintRequired,
				Message:    fmt.Sprintf("%s 不能为空", f.Field),
			})
			continue
		}
		for _, rule := range f.Rules {
			if err := rule(f.Field, f.Value); err != nil {
				errs = append(errs, *err)
			}
		}
	}
	return errs
}

// MaxLength 最大字符数（按 NFC 规范化后的字符计数）
func MaxLength(max int) Rule {
	return func(field, value string) *ValidationError {
		if utf8.RuneCountInString(norm.NFC.String(value)) <= max {
			return nil
		}
		return &ValidationError{
			Field:      field,
			Constraint: ConstraintMaxLength,
			Message:    fmt.Sprintf("%s 长度不能超过 %d 个字符", field, max),
		}
	}
}

var validate = validator.New()

// Email 邮箱地址格式
func Email() Rule {
	return func(field, value string) *ValidationError {
		if validate.Var(value, "email") == nil {
			return nil
		}
		return &ValidationError{
			Field:      field,
			Constraint: ConstraintEmail,
			Message:    fmt.Sprintf("%s 必须是合法的邮箱地址", field),
		}
	}
}
