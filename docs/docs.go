// Package docs holds the OpenAPI document served under /swagger/.
// Regenerate with `swag init -g cmd/ecommerce-cart-service/main.go` after
// changing handler annotations.
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
        "/cart": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns a page of the lines in the authenticated user's active cart together with the cart total.",
                "produces": ["application/json"],
                "tags": ["Cart"],
                "summary": "Get the active cart",
                "parameters": [
                    {"minimum": 0, "type": "integer", "description": "Lines to skip", "name": "offset", "in": "query"},
                    {"minimum": 1, "type": "integer", "description": "Lines per page", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Active cart", "schema": {"$ref": "#/definitions/models.CartView"}},
                    "401": {"description": "Authentication required", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "404": {"description": "User or active cart not found", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Adds a product to the active cart, creating the cart when there is none. Adding a product that is already in the cart replaces its amount.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Cart"],
                "summary": "Add a product to the cart",
                "parameters": [
                    {"description": "Product and amount", "name": "item", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.AddItemRequest"}}
                ],
                "responses": {
                    "201": {"description": "Stored cart line", "schema": {"$ref": "#/definitions/models.CartLine"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "401": {"description": "Authentication required", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "429": {"description": "Too many requests", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/cart/line/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns one line of the active cart with its product title, price and line total.",
                "produces": ["application/json"],
                "tags": ["Cart"],
                "summary": "Get a cart line",
                "parameters": [
                    {"type": "integer", "description": "Cart line ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Cart line", "schema": {"$ref": "#/definitions/models.CartLineDetail"}},
                    "401": {"description": "Authentication required", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "404": {"description": "Line not found in the active cart", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["Cart"],
                "summary": "Remove a cart line",
                "parameters": [
                    {"type": "integer", "description": "Cart line ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "Line removed"},
                    "401": {"description": "Authentication required", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "404": {"description": "Line not found in the active cart", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "429": {"description": "Too many requests", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Cart"],
                "summary": "Change the amount of a cart line",
                "parameters": [
                    {"type": "integer", "description": "Cart line ID", "name": "id", "in": "path", "required": true},
                    {"description": "New amount", "name": "item", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.UpdateItemRequest"}}
                ],
                "responses": {
                    "200": {"description": "Updated cart line", "schema": {"$ref": "#/definitions/models.CartLine"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "401": {"description": "Authentication required", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "404": {"description": "Line not found in the active cart", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "429": {"description": "Too many requests", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/orders": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Lists the user's orders newest first. Admins see every order.",
                "produces": ["application/json"],
                "tags": ["Orders"],
                "summary": "List orders",
                "parameters": [
                    {"minimum": 0, "type": "integer", "description": "Orders to skip", "name": "offset", "in": "query"},
                    {"minimum": 1, "type": "integer", "description": "Orders per page", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "Page of orders",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/models.PaginatedResponse"},
                                {"type": "object", "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/models.Order"}}}}
                            ]
                        }
                    },
                    "401": {"description": "Authentication required", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "404": {"description": "User not found or no orders", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Turns the active cart into an order with the given shipping name and address. The next item added starts a new cart.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Orders"],
                "summary": "Place an order",
                "parameters": [
                    {"description": "Shipping details", "name": "order", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.CheckoutRequest"}}
                ],
                "responses": {
                    "201": {"description": "Placed order", "schema": {"$ref": "#/definitions/models.Order"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "401": {"description": "Authentication required", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "404": {"description": "User not found, no active cart or empty cart", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "429": {"description": "Too many requests", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/orders/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns one of the user's orders with a page of its lines and the order total.",
                "produces": ["application/json"],
                "tags": ["Orders"],
                "summary": "Get an order",
                "parameters": [
                    {"type": "integer", "description": "Order ID", "name": "id", "in": "path", "required": true},
                    {"minimum": 0, "type": "integer", "description": "Lines to skip", "name": "offset", "in": "query"},
                    {"minimum": 1, "type": "integer", "description": "Lines per page", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Order with lines", "schema": {"$ref": "#/definitions/models.OrderDetail"}},
                    "401": {"description": "Authentication required", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "404": {"description": "Order not found", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "errors.FieldError": {
            "type": "object",
            "properties": {"field": {"type": "string"}, "message": {"type": "string"}}
        },
        "models.AddItemRequest": {
            "type": "object",
            "required": ["amount", "productid"],
            "properties": {"amount": {"type": "integer"}, "productid": {"type": "integer"}}
        },
        "models.CartLine": {
            "type": "object",
            "properties": {
                "amount": {"type": "integer"},
                "cart_id": {"type": "integer"},
                "id": {"type": "integer"},
                "product_id": {"type": "integer"}
            }
        },
        "models.CartLineDetail": {
            "type": "object",
            "properties": {
                "amount": {"type": "integer"},
                "cart_id": {"type": "integer"},
                "id": {"type": "integer"},
                "line_total": {"type": "integer"},
                "price": {"type": "integer"},
                "product_id": {"type": "integer"},
                "title": {"type": "string"}
            }
        },
        "models.CartView": {
            "type": "object",
            "properties": {
                "_links": {"$ref": "#/definitions/models.PageLinks"},
                "cart_id": {"type": "integer"},
                "count": {"type": "integer"},
                "lines": {"type": "array", "items": {"$ref": "#/definitions/models.CartLineDetail"}},
                "total": {"type": "integer"}
            }
        },
        "models.CheckoutRequest": {
            "type": "object",
            "required": ["address", "name"],
            "properties": {
                "address": {"type": "string", "maxLength": 128, "minLength": 1},
                "name": {"type": "string", "maxLength": 128, "minLength": 1}
            }
        },
        "models.Link": {
            "type": "object",
            "properties": {"href": {"type": "string"}}
        },
        "models.Order": {
            "type": "object",
            "properties": {
                "address": {"type": "string"},
                "created_at": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "ordered_at": {"type": "string"},
                "total": {"type": "integer"},
                "user_id": {"type": "integer"}
            }
        },
        "models.OrderDetail": {
            "type": "object",
            "properties": {
                "_links": {"$ref": "#/definitions/models.PageLinks"},
                "count": {"type": "integer"},
                "lines": {"type": "array", "items": {"$ref": "#/definitions/models.CartLineDetail"}},
                "order": {"$ref": "#/definitions/models.Order"},
                "total": {"type": "integer"}
            }
        },
        "models.PageLinks": {
            "type": "object",
            "properties": {
                "next": {"$ref": "#/definitions/models.Link"},
                "prev": {"$ref": "#/definitions/models.Link"},
                "self": {"$ref": "#/definitions/models.Link"}
            }
        },
        "models.PaginatedResponse": {
            "type": "object",
            "properties": {
                "_links": {"$ref": "#/definitions/models.PageLinks"},
                "data": {},
                "limit": {"type": "integer"},
                "offset": {"type": "integer"},
                "total": {"type": "integer"}
            }
        },
        "models.UpdateItemRequest": {
            "type": "object",
            "required": ["amount"],
            "properties": {"amount": {"type": "integer"}}
        },
        "response.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "detail": {"type": "string"},
                "details": {"type": "array", "items": {"$ref": "#/definitions/errors.FieldError"}},
                "message": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the JWT.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Ecommerce Cart Service API",
	Description:      "Shopping cart and checkout for the e-commerce platform.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
