// Package docs registers the OpenAPI document served under /swagger/.
// Regenerate with: swag init -g internal/platform/httpserver/server.go -o internal/platform/httpserver/docs
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
        "/users/signup": {
            "post": {
                "description": "Creates a founder or adopter account and sets the session cookie.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Sign up",
                "parameters": [
                    {"description": "Signup request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/accounts.SignupRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/accounts.AuthResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/users/login": {
            "post": {
                "description": "Verifies credentials and sets the session cookie.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Log in",
                "parameters": [
                    {"description": "Login request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/accounts.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/accounts.AuthResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/users/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Log out",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/accounts.MessageResponse"}}
                }
            }
        },
        "/users/profile": {
            "get": {
                "security": [{"CookieAuth": []}],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Current user profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/accounts.ProfileResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/users/interests": {
            "put": {
                "security": [{"CookieAuth": []}],
                "description": "Replaces the interest list used to match the startup feed.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Replace adopter interests",
                "parameters": [
                    {"description": "Interests", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/accounts.UpdateInterestsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/accounts.ProfileResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/startups": {
            "get": {
                "security": [{"CookieAuth": []}],
                "description": "Startups sharing at least one category with the adopter's interests.",
                "produces": ["application/json"],
                "tags": ["startups"],
                "summary": "Personalized feed",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/startups.FeedItemResponse"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "504": {"description": "Gateway Timeout", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"CookieAuth": []}],
                "description": "Creates a startup owned by the signed-in founder.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["startups"],
                "summary": "Publish a startup",
                "parameters": [
                    {"description": "Startup", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/startups.CreateStartupRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/startups.CreateStartupResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/startups/{startup_id}/feedback": {
            "get": {
                "security": [{"CookieAuth": []}],
                "description": "Feedback on a startup, visible to its founder only.",
                "produces": ["application/json"],
                "tags": ["startups"],
                "summary": "Startup feedback",
                "parameters": [
                    {"type": "string", "description": "Startup id", "name": "startup_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/startups.FeedbackResponse"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"CookieAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["startups"],
                "summary": "Submit feedback",
                "parameters": [
                    {"type": "string", "description": "Startup id", "name": "startup_id", "in": "path", "required": true},
                    {"description": "Feedback", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/startups.SubmitFeedbackRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/startups.FeedbackResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "ErrorResponse": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "message": {"type": "string"}}
        },
        "accounts.SignupRequest": {
            "type": "object",
            "properties": {
                "fullName": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "role": {"type": "string", "enum": ["founder", "adopter"]},
                "interests": {"type": "array", "items": {"type": "string"}}
            }
        },
        "accounts.LoginRequest": {
            "type": "object",
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "accounts.AuthResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "userId": {"type": "string"},
                "fullName": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "accounts.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "accounts.ProfileResponse": {
            "type": "object",
            "properties": {
                "userId": {"type": "string"},
                "fullName": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string"},
                "interests": {"type": "array", "items": {"type": "string"}},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "accounts.UpdateInterestsRequest": {
            "type": "object",
            "properties": {"interests": {"type": "array", "items": {"type": "string"}}}
        },
        "startups.CreateStartupRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "tagline": {"type": "string"},
                "description": {"type": "string"},
                "industry": {"type": "string"},
                "categories": {"type": "array", "items": {"type": "string"}},
                "businessType": {"type": "string", "enum": ["B2B", "B2C"]},
                "targetAudience": {"type": "string"},
                "website": {"type": "string"}
            }
        },
        "startups.StartupResponse": {
            "type": "object",
            "properties": {
                "startupId": {"type": "string"},
                "founderId": {"type": "string"},
                "name": {"type": "string"},
                "tagline": {"type": "string"},
                "description": {"type": "string"},
                "industry": {"type": "string"},
                "categories": {"type": "array", "items": {"type": "string"}},
                "businessType": {"type": "string"},
                "targetAudience": {"type": "string"},
                "website": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "startups.CreateStartupResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "startup": {"$ref": "#/definitions/startups.StartupResponse"}
            }
        },
        "startups.UserSummary": {
            "type": "object",
            "properties": {"userId": {"type": "string"}, "fullName": {"type": "string"}}
        },
        "startups.FeedItemResponse": {
            "allOf": [
                {"$ref": "#/definitions/startups.StartupResponse"},
                {"type": "object", "properties": {"founder": {"$ref": "#/definitions/startups.UserSummary"}}}
            ]
        },
        "startups.SubmitFeedbackRequest": {
            "type": "object",
            "properties": {"rating": {"type": "integer", "minimum": 1, "maximum": 5}, "comment": {"type": "string"}}
        },
        "startups.FeedbackResponse": {
            "type": "object",
            "properties": {
                "feedbackId": {"type": "string"},
                "startupId": {"type": "string"},
                "rating": {"type": "integer"},
                "comment": {"type": "string"},
                "user": {"$ref": "#/definitions/startups.UserSummary"},
                "createdAt": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "CookieAuth": {"type": "apiKey", "name": "token", "in": "cookie"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "launchpad API",
	Description:      "Founder and adopter marketplace with cookie sessions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
