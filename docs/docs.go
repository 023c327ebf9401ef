// Package docs 由 swag 生成的接口文档
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/clients": {
            "get": {
                "produces": ["application/json"],
                "tags": ["客户管理"],
                "summary": "获取客户列表",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "页码", "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "description": "每页数量", "name": "size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.PaginatedResponse"}}
                }
            },
            "post": {
                "description": "校验名称与邮箱后创建客户，邮箱不区分大小写唯一",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["客户管理"],
                "summary": "创建客户",
                "parameters": [
                    {"description": "创建客户请求", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateClientDto"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/controllers.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/controllers.APIResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/controllers.APIResponse"}}
                }
            }
        },
        "/clients/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["客户管理"],
                "summary": "获取客户详情",
                "parameters": [
                    {"type": "string", "description": "客户ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/controllers.APIResponse"}}
                }
            }
        },
        "/uploads": {
            "post": {
                "description": "以 multipart/form-data 上传单个文件，字段名为 file",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["文件"],
                "summary": "上传文件",
                "parameters": [
                    {"type": "file", "description": "文件", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/controllers.APIResponse"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/controllers.APIResponse"}}
                }
            }
        },
        "/meta/enums": {
            "get": {
                "produces": ["application/json"],
                "tags": ["元数据"],
                "summary": "获取所有枚举词表",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.APIResponse"}}
                }
            }
        },
        "/meta/enums/{name}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["元数据"],
                "summary": "获取指定枚举词表",
                "parameters": [
                    {"type": "string", "description": "枚举名，如 business_type", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/controllers.APIResponse"}}
                }
            }
        },
        "/config": {
            "get": {
                "produces": ["application/json"],
                "tags": ["系统配置"],
                "summary": "获取应用配置",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.APIResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["系统"],
                "summary": "健康检查",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.HealthResponse"}}
                }
            }
        },
        "/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["系统"],
                "summary": "就绪检查",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/controllers.HealthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "controllers.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "msg": {"type": "string", "example": "操作成功"},
                "status": {"type": "integer", "example": 0}
            }
        },
        "controllers.PaginatedResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "msg": {"type": "string", "example": "操作成功"},
                "page": {"type": "integer", "example": 1},
                "size": {"type": "integer", "example": 10},
                "status": {"type": "integer", "example": 0},
                "total": {"type": "integer", "example": 100}
            }
        },
        "controllers.HealthResponse": {
            "type": "object",
            "properties": {
                "service": {"type": "string", "example": "retail-service"},
                "status": {"type": "string", "example": "ok"},
                "timestamp": {"type": "string", "example": "2024-01-01T00:00:00Z"},
                "version": {"type": "string", "example": "1.0.0"}
            }
        },
        "dto.CreateClientDto": {
            "type": "object",
            "properties": {
                "email": {"type": "string", "example": "contact@acme.com"},
                "name": {"type": "string", "example": "Acme Corporation"}
            }
        },
        "dto.ValidationError": {
            "type": "object",
            "properties": {
                "constraint": {"type": "string", "example": "email"},
                "field": {"type": "string", "example": "email"},
                "message": {"type": "string", "example": "email 必须是合法的邮箱地址"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "零售餐饮管理服务 API",
	Description:      "多租户零售/餐饮管理后台服务，提供客户管理、文件上传、枚举元数据与配置查询",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
