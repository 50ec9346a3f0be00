// Package docs registers the OpenAPI description served under /swagger.
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
        "/api/auth/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a buyer account",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/registerReq"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/userResp"}},
                    "400": {"description": "Validation failed or email taken", "schema": {"$ref": "#/definitions/validationResponse"}},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/errorResp"}}
                }
            }
        },
        "/api/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Sign in and receive a session token",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/loginReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/loginResp"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/errorResp"}}
                }
            }
        },
        "/api/auth/logout": {
            "post": {
                "tags": ["auth"],
                "summary": "Revoke the current session",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "204": {"description": "No Content"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorResp"}}
                }
            }
        },
        "/api/auth/me": {
            "get": {
                "tags": ["auth"],
                "summary": "Current user profile",
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/userResp"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorResp"}}
                }
            }
        },
        "/api/orders/{id}": {
            "get": {
                "tags": ["orders"],
                "summary": "Fetch one of the caller's orders",
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "id", "type": "string", "required": true, "description": "Order ID"}
                ],
                "responses": {
                    "200": {"description": "Order with items, products, categories, sellers, payment and shipping"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorResp"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errorResp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorResp"}}
                }
            }
        },
        "/api/payments/provider/return": {
            "get": {
                "tags": ["payments"],
                "summary": "Browser return from the payment provider",
                "parameters": [
                    {"in": "query", "name": "ref", "type": "string", "required": false, "description": "Payment reference number"}
                ],
                "responses": {
                    "307": {"description": "Redirect to the receipt or back to checkout"}
                }
            }
        },
        "/api/test/s3": {
            "get": {
                "tags": ["diagnostics"],
                "summary": "Check object storage connectivity",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK"},
                    "500": {"description": "Bucket unreachable"}
                }
            }
        },
        "/api/upload/presign": {
            "post": {
                "tags": ["uploads"],
                "summary": "Presign a direct image upload",
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/presignReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/presignResp"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/validationResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorResp"}}
                }
            }
        },
        "/api/items": {
            "get": {
                "tags": ["deprecated"],
                "summary": "Retired, use /api/products",
                "deprecated": true,
                "produces": ["application/json"],
                "responses": {
                    "410": {"description": "Gone", "schema": {"$ref": "#/definitions/goneResp"}}
                }
            },
            "post": {
                "tags": ["deprecated"],
                "summary": "Retired, use /api/products",
                "deprecated": true,
                "produces": ["application/json"],
                "responses": {
                    "410": {"description": "Gone", "schema": {"$ref": "#/definitions/goneResp"}}
                }
            }
        },
        "/api/items/{id}": {
            "parameters": [
                {"in": "path", "name": "id", "type": "string", "required": true, "description": "Item ID"}
            ],
            "get": {
                "tags": ["deprecated"],
                "summary": "Retired, use /api/products",
                "deprecated": true,
                "produces": ["application/json"],
                "responses": {
                    "410": {"description": "Gone", "schema": {"$ref": "#/definitions/goneResp"}}
                }
            },
            "patch": {
                "tags": ["deprecated"],
                "summary": "Retired, use /api/products",
                "deprecated": true,
                "produces": ["application/json"],
                "responses": {
                    "410": {"description": "Gone", "schema": {"$ref": "#/definitions/goneResp"}}
                }
            },
            "delete": {
                "tags": ["deprecated"],
                "summary": "Retired, use /api/products",
                "deprecated": true,
                "produces": ["application/json"],
                "responses": {
                    "410": {"description": "Gone", "schema": {"$ref": "#/definitions/goneResp"}}
                }
            }
        },
        "/health": {
            "get": {
                "tags": ["health"],
                "summary": "Health check",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Database unreachable"}
                }
            }
        }
    },
    "definitions": {
        "errorResp": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "violation": {
            "type": "object",
            "properties": {"field": {"type": "string"}, "message": {"type": "string"}}
        },
        "validationResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "details": {"type": "array", "items": {"$ref": "#/definitions/violation"}}
            }
        },
        "goneResp": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "message": {"type": "string"},
                "replacement": {"type": "string"}
            }
        },
        "registerReq": {
            "type": "object",
            "required": ["name", "email", "password"],
            "properties": {
                "name": {"type": "string", "minLength": 2, "maxLength": 100, "description": "Surrounding whitespace is trimmed before validation"},
                "email": {"type": "string", "format": "email", "maxLength": 254, "description": "Trimmed and lower-cased before validation"},
                "password": {"type": "string", "minLength": 6, "maxLength": 72, "description": "At least 6 characters and at most 72 bytes once UTF-8 encoded"}
            }
        },
        "loginReq": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string", "format": "email"},
                "password": {"type": "string"}
            }
        },
        "userResp": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "email": {"type": "string"},
                "name": {"type": "string"},
                "role": {"type": "string", "enum": ["BUYER", "SELLER"]}
            }
        },
        "loginResp": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "expiresAt": {"type": "string", "format": "date-time"},
                "user": {"$ref": "#/definitions/userResp"}
            }
        },
        "presignReq": {
            "type": "object",
            "required": ["filename", "contentType"],
            "properties": {
                "filename": {"type": "string", "maxLength": 255},
                "contentType": {"type": "string", "pattern": "^image/", "maxLength": 100}
            }
        },
        "presignResp": {
            "type": "object",
            "properties": {
                "uploadUrl": {"type": "string"},
                "key": {"type": "string"},
                "publicUrl": {"type": "string"},
                "expiresIn": {"type": "integer"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Marketplace API",
	Description:      "Registration, sessions, orders and image uploads for the marketplace.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
