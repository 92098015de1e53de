// Package docs holds the swagger specification served at /swagger. The
// template is maintained by hand alongside the handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "Type \"Bearer\" followed by a space and the session token."
        }
    },
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "User login",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "login", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/medicines": {
            "get": {
                "tags": ["medicines"],
                "summary": "List all medicines (admin)",
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}
            },
            "post": {
                "tags": ["medicines"],
                "summary": "Submit a donation listing (donor)",
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "medicine", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateMedicineRequest"}}
                ],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Validation failed"}, "403": {"description": "Forbidden"}}
            }
        },
        "/medicines/pending": {
            "get": {
                "tags": ["medicines"],
                "summary": "List pending approvals (admin)",
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}
            }
        },
        "/medicines/available": {
            "get": {
                "tags": ["medicines"],
                "summary": "Find approved medicines",
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "category", "in": "query", "type": "string"},
                    {"name": "location", "in": "query", "type": "string"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/medicines/mine": {
            "get": {
                "tags": ["medicines"],
                "summary": "List own donations (donor)",
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}
            }
        },
        "/medicines/{id}": {
            "get": {
                "tags": ["medicines"],
                "summary": "Get a medicine by id",
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/medicines/{id}/approve": {
            "post": {
                "tags": ["medicines"],
                "summary": "Approve a pending listing (admin)",
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}, "409": {"description": "No longer pending"}}
            }
        },
        "/medicines/{id}/reject": {
            "post": {
                "tags": ["medicines"],
                "summary": "Reject a pending listing (admin)",
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}, "409": {"description": "No longer pending"}}
            }
        },
        "/medicines/{id}/contact": {
            "get": {
                "tags": ["medicines"],
                "summary": "Build the donor contact link",
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}, "409": {"description": "Not approved"}}
            }
        },
        "/impact": {
            "get": {
                "tags": ["impact"],
                "summary": "Impact dashboard snapshot",
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/analytics": {
            "get": {
                "tags": ["impact"],
                "summary": "Listing analytics (admin)",
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}
            }
        }
    },
    "definitions": {
        "dto.LoginRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "dto.CreateMedicineRequest": {
            "type": "object",
            "required": ["name", "quantity", "unitValue", "expiry", "location"],
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"},
                "category": {"type": "string"},
                "quantity": {"type": "integer"},
                "unitValue": {"type": "number"},
                "expiry": {"type": "string", "example": "2026-12-31"},
                "location": {"type": "string"},
                "requiresPrescription": {"type": "boolean"},
                "imageData": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "ArogyaMitram Backend API",
	Description:      "College medicine redistribution platform backend.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
