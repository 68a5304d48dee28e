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
        "/api/add": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["compare"],
                "summary": "Add a product to the visitor's compare list",
                "parameters": [
                    {"description": "product and visitor", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CompareRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/api/check": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["compare"],
                "summary": "Report whether a product is in the visitor's compare list",
                "parameters": [
                    {"description": "product and visitor", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CompareRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/api/remove": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["compare"],
                "summary": "Remove a product from the visitor's compare list",
                "parameters": [
                    {"description": "product and visitor", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CompareRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/api/list": {
            "get": {
                "produces": ["application/json"],
                "tags": ["compare"],
                "summary": "Hydrated products of the visitor's compare list",
                "parameters": [
                    {"type": "string", "description": "shop domain", "name": "shop", "in": "query", "required": true},
                    {"type": "string", "description": "guest session", "name": "sessionId", "in": "query"},
                    {"type": "string", "description": "customer id", "name": "customerId", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/api/save": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["saved"],
                "summary": "Save a named comparison",
                "parameters": [
                    {"description": "comparison", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.SaveComparisonRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/api/saved": {
            "get": {
                "produces": ["application/json"],
                "tags": ["saved"],
                "summary": "List the visitor's saved comparisons, newest first",
                "parameters": [
                    {"type": "string", "description": "shop domain", "name": "shop", "in": "query", "required": true},
                    {"type": "string", "description": "guest session", "name": "sessionId", "in": "query"},
                    {"type": "string", "description": "customer id", "name": "customerId", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/api/saved/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["saved"],
                "summary": "Fetch one saved comparison owned by the visitor",
                "parameters": [
                    {"type": "string", "description": "comparison id", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "shop domain", "name": "shop", "in": "query", "required": true},
                    {"type": "string", "description": "guest session", "name": "sessionId", "in": "query"},
                    {"type": "string", "description": "customer id", "name": "customerId", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": true}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": true}}
                }
            },
            "delete": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["saved"],
                "summary": "Delete a saved comparison owned by the visitor",
                "parameters": [
                    {"type": "string", "description": "comparison id", "name": "id", "in": "path", "required": true},
                    {"description": "owner", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.OwnerRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/api/comparison-config": {
            "get": {
                "produces": ["application/json"],
                "tags": ["config"],
                "summary": "Enabled comparison attributes for a shop, in display order",
                "parameters": [
                    {"type": "string", "description": "shop domain", "name": "shop", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/admin/api/comparisons": {
            "get": {
                "security": [{"SessionToken": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "All saved comparisons of the shop and its full attribute configuration",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}
                }
            },
            "post": {
                "security": [{"SessionToken": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Create a comparison or replace the attribute configuration",
                "parameters": [
                    {"description": "saveComparison or updateConfig", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.AdminComparisonRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "405": {"description": "Method Not Allowed", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        }
    },
    "definitions": {
        "entity.ComparisonAttribute": {
            "type": "object",
            "properties": {
                "enabled": {"type": "boolean"},
                "key": {"type": "string"},
                "label": {"type": "string"},
                "order": {"type": "integer"}
            }
        },
        "handler.AdminComparisonRequest": {
            "type": "object",
            "properties": {
                "attributes": {"type": "array", "items": {"$ref": "#/definitions/entity.ComparisonAttribute"}},
                "name": {"type": "string"},
                "products": {"type": "array", "items": {"type": "object"}},
                "type": {"type": "string"}
            }
        },
        "handler.CompareRequest": {
            "type": "object",
            "required": ["productId", "shop"],
            "properties": {
                "customerId": {"type": "string"},
                "productId": {"type": "string"},
                "sessionId": {"type": "string"},
                "shop": {"type": "string"}
            }
        },
        "handler.OwnerRequest": {
            "type": "object",
            "properties": {
                "customerId": {"type": "string"},
                "sessionId": {"type": "string"},
                "shop": {"type": "string"}
            }
        },
        "handler.SaveComparisonRequest": {
            "type": "object",
            "properties": {
                "customerId": {"type": "string"},
                "name": {"type": "string"},
                "products": {"type": "array", "items": {"type": "object"}},
                "sessionId": {"type": "string"},
                "shop": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "SessionToken": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Product Compare API",
	Description:      "Storefront compare lists, saved comparisons and comparison attribute settings for Shopify shops.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
