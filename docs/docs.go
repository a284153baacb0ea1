// Package docs registers the OpenAPI description served under /swagger.
// Regenerate with: swag init -g cmd/emsp/main.go -o docs
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
        "/api/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {
                        "description": "Login credentials",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.loginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/result.Result"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/result.Result"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/result.Result"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/result.Result"}}
                }
            }
        },
        "/api/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [
                    {
                        "description": "User registration details",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.registerRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/result.Result"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/result.Result"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/result.Result"}}
                }
            }
        },
        "/api/auth/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Logout",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/result.Result"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/result.Result"}}
                }
            }
        },
        "/api/auth/verify": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Verify a token",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/result.Result"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/result.Result"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/result.Result"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/result.Result"}}
                }
            }
        },
        "/api/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/result.Result"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/result.Result"}}
                }
            }
        },
        "/api/users/profile": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/result.Result"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/result.Result"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Update own profile",
                "parameters": [{"description": "Changed fields", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.updateProfileRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/result.Result"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/result.Result"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/result.Result"}}
                }
            }
        },
        "/api/products": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "List products",
                "parameters": [
                    {"type": "integer", "description": "Page number (default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size (default 10, max 100)", "name": "size", "in": "query"},
                    {"type": "string", "description": "Match on name or description", "name": "keyword", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/result.Result"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Create a product",
                "parameters": [
                    {"description": "Product", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.productRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/result.Result"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/result.Result"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/result.Result"}}
                }
            }
        },
        "/api/products/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Get a product",
                "parameters": [{"type": "integer", "description": "Product id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/result.Result"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/result.Result"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Update a product",
                "parameters": [
                    {"type": "integer", "description": "Product id", "name": "id", "in": "path", "required": true},
                    {"description": "Product", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.productRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/result.Result"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/result.Result"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/result.Result"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Delete a product",
                "parameters": [{"type": "integer", "description": "Product id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/result.Result"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/result.Result"}}
                }
            }
        },
        "/api/orders": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "List my orders",
                "parameters": [
                    {"type": "integer", "description": "Page number (default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size (default 10, max 100)", "name": "size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/result.Result"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Place an order",
                "parameters": [
                    {"description": "Order", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createOrderRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/result.Result"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/result.Result"}}
                }
            }
        },
        "/api/orders/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Get an order",
                "parameters": [{"type": "integer", "description": "Order id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/result.Result"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/result.Result"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/result.Result"}}
                }
            }
        },
        "/api/orders/{id}/cancel": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Cancel an order",
                "parameters": [{"type": "integer", "description": "Order id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/result.Result"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/result.Result"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/result.Result"}}
                }
            }
        },
        "/api/moments": {
            "get": {
                "produces": ["application/json"],
                "tags": ["moments"],
                "summary": "List moments",
                "parameters": [
                    {"type": "integer", "description": "Page number (default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size (default 10, max 100)", "name": "size", "in": "query"},
                    {"type": "integer", "description": "Only moments of this author", "name": "userId", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/result.Result"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["moments"],
                "summary": "Publish a moment",
                "parameters": [
                    {"description": "Moment", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createMomentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/result.Result"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/result.Result"}}
                }
            }
        },
        "/api/moments/admin": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["moments"],
                "summary": "List moments for moderation",
                "parameters": [
                    {"type": "string", "description": "Content contains (case-insensitive)", "name": "keyword", "in": "query"},
                    {"type": "integer", "description": "Page number (default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size (default 10, max 100)", "name": "size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/result.Result"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/result.Result"}}
                }
            }
        },
        "/api/moments/admin/{id}/status": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["moments"],
                "summary": "Hide or show a moment",
                "parameters": [
                    {"type": "integer", "description": "Moment id", "name": "id", "in": "path", "required": true},
                    {"description": "0 hides, 1 shows", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.momentStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/result.Result"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/result.Result"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/result.Result"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/result.Result"}}
                }
            }
        },
        "/api/moments/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["moments"],
                "summary": "Get a moment",
                "parameters": [{"type": "integer", "description": "Moment id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/result.Result"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/result.Result"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["moments"],
                "summary": "Delete a moment",
                "parameters": [{"type": "integer", "description": "Moment id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/result.Result"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/result.Result"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/result.Result"}}
                }
            }
        },
        "/api/moments/{id}/like": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["moments"],
                "summary": "Like a moment",
                "parameters": [{"type": "integer", "description": "Moment id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/result.Result"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/result.Result"}}
                }
            }
        }
    },
    "definitions": {
        "handler.loginRequest": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "password": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "handler.registerRequest": {
            "type": "object",
            "required": ["email", "password", "username"],
            "properties": {
                "email": {"type": "string"},
                "nickname": {"type": "string", "maxLength": 50},
                "password": {"type": "string", "minLength": 6},
                "phone": {"type": "string", "maxLength": 20},
                "username": {"type": "string", "maxLength": 50, "minLength": 3}
            }
        },
        "handler.productRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "categoryId": {"type": "integer"},
                "description": {"type": "string"},
                "imageUrl": {"type": "string"},
                "name": {"type": "string"},
                "price": {"type": "number"},
                "status": {"type": "integer", "enum": [0, 1]},
                "stock": {"type": "integer"},
                "version": {"type": "integer"}
            }
        },
        "handler.createOrderRequest": {
            "type": "object",
            "required": ["deliveryAddress"],
            "properties": {
                "deliveryAddress": {"type": "string"},
                "paymentMethod": {"type": "string"},
                "remark": {"type": "string"},
                "totalAmount": {"type": "number"}
            }
        },
        "handler.createMomentRequest": {
            "type": "object",
            "required": ["content"],
            "properties": {
                "content": {"type": "string", "maxLength": 1000},
                "imageUrls": {"type": "array", "maxItems": 9, "items": {"type": "string"}}
            }
        },
        "handler.updateProfileRequest": {
            "type": "object",
            "properties": {
                "avatar": {"type": "string", "maxLength": 500},
                "confirmPassword": {"type": "string"},
                "currentPassword": {"type": "string"},
                "email": {"type": "string"},
                "newPassword": {"type": "string", "minLength": 6},
                "nickname": {"type": "string", "maxLength": 50},
                "phone": {"type": "string", "maxLength": 20}
            }
        },
        "handler.momentStatusRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {
                "status": {"type": "integer", "enum": [0, 1]}
            }
        },
        "result.Result": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "data": {},
                "message": {"type": "string"},
                "success": {"type": "boolean"},
                "timestamp": {"type": "integer"}
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
	Title:            "emsp platform API",
	Description:      "Authentication, product catalogue, orders and moments.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
