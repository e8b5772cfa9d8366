// Package docs holds the registered OpenAPI document served under /swagger.
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
        "/api/user/register": {
            "post": {
                "description": "Create an account. The username must be unused.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["user"],
                "summary": "用户注册接口",
                "parameters": [
                    {"description": "register request body", "name": "req", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RegisterReq"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.RegisterResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.CommonResp"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/dto.CommonResp"}}
                }
            }
        },
        "/api/user/login": {
            "post": {
                "description": "Exchange credentials for a bearer token.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["user"],
                "summary": "用户登录接口",
                "parameters": [
                    {"description": "login request body", "name": "req", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LoginReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.LoginResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.CommonResp"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.CommonResp"}}
                }
            }
        },
        "/api/user/logout": {
            "post": {
                "description": "Revoke the presented token.",
                "produces": ["application/json"],
                "tags": ["user"],
                "summary": "用户登出接口",
                "parameters": [
                    {"type": "string", "description": "Bearer token", "name": "Authorization", "in": "header", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.CommonResp"}}
                }
            }
        },
        "/api/user/info": {
            "get": {
                "produces": ["application/json"],
                "tags": ["user"],
                "summary": "获取用户信息接口",
                "parameters": [
                    {"type": "string", "description": "Bearer token", "name": "Authorization", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.GetUserInfoResp"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.CommonResp"}}
                }
            }
        },
        "/api/user/contacts": {
            "get": {
                "produces": ["application/json"],
                "tags": ["contact"],
                "summary": "联系人列表",
                "parameters": [
                    {"type": "string", "description": "Bearer token", "name": "Authorization", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.ContactResp"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.CommonResp"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contact"],
                "summary": "新建联系人",
                "parameters": [
                    {"type": "string", "description": "Bearer token", "name": "Authorization", "in": "header", "required": true},
                    {"description": "contact", "name": "req", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateContactReq"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.ContactResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.CommonResp"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.CommonResp"}}
                }
            }
        },
        "/api/user/contacts/{id}": {
            "put": {
                "description": "Only the submitted fields change.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contact"],
                "summary": "更新联系人",
                "parameters": [
                    {"type": "string", "description": "Bearer token", "name": "Authorization", "in": "header", "required": true},
                    {"type": "string", "description": "contact id", "name": "id", "in": "path", "required": true},
                    {"description": "fields to change", "name": "req", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateContactReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ContactResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.CommonResp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.CommonResp"}}
                }
            },
            "delete": {
                "tags": ["contact"],
                "summary": "删除联系人",
                "parameters": [
                    {"type": "string", "description": "Bearer token", "name": "Authorization", "in": "header", "required": true},
                    {"type": "string", "description": "contact id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.CommonResp"}}
                }
            }
        }
    },
    "definitions": {
        "dto.CommonResp": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "message": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "dto.RegisterReq": {
            "type": "object",
            "required": ["organizationName", "password", "username"],
            "properties": {
                "organizationName": {"type": "string", "maxLength": 128},
                "password": {"type": "string", "maxLength": 72},
                "username": {"type": "string", "maxLength": 64}
            }
        },
        "dto.RegisterResp": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "userId": {"type": "string"}
            }
        },
        "dto.LoginReq": {
            "type": "object",
            "properties": {
                "password": {"type": "string", "maxLength": 72},
                "username": {"type": "string", "maxLength": 64}
            }
        },
        "dto.LoginResp": {
            "type": "object",
            "properties": {
                "expiresAt": {"type": "integer"},
                "token": {"type": "string"}
            }
        },
        "dto.GetUserInfoResp": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "integer"},
                "id": {"type": "string"},
                "organizationName": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "dto.CreateContactReq": {
            "type": "object",
            "required": ["email", "meansOfContact", "name", "phone"],
            "properties": {
                "email": {"type": "string", "maxLength": 256},
                "lastContactedOn": {"type": "string"},
                "meansOfContact": {"type": "string", "enum": ["email", "call", "in-person"]},
                "name": {"type": "string", "maxLength": 128},
                "note": {"type": "string", "maxLength": 1024},
                "phone": {"type": "string", "maxLength": 64}
            }
        },
        "dto.UpdateContactReq": {
            "type": "object",
            "properties": {
                "email": {"type": "string", "maxLength": 256},
                "lastContactedOn": {"type": "string"},
                "meansOfContact": {"type": "string", "enum": ["email", "call", "in-person"]},
                "name": {"type": "string", "maxLength": 128},
                "note": {"type": "string", "maxLength": 1024},
                "phone": {"type": "string", "maxLength": 64}
            }
        },
        "dto.ContactResp": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "id": {"type": "string"},
                "lastContactedOn": {"type": "string"},
                "meansOfContact": {"type": "string"},
                "name": {"type": "string"},
                "note": {"type": "string"},
                "phone": {"type": "string"}
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
	Title:            "contact book API",
	Description:      "Account registration, bearer-token login and per-owner contact management.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
