// Package docs holds the swagger document served at /swagger.
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
        "/api/learn": {
            "post": {
                "description": "Compiles the task prompt for the given text and returns the model answer.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["learn"],
                "summary": "Run a learning task",
                "parameters": [
                    {
                        "description": "Task and text",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/learn.LearnRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/learn.LearnResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/config.ErrorResponse"}},
                    "401": {"description": "only when JWT auth is enabled", "schema": {"$ref": "#/definitions/config.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/config.ErrorResponse"}}
                }
            }
        },
        "/api/tasks": {
            "get": {
                "produces": ["application/json"],
                "tags": ["learn"],
                "summary": "List supported learning tasks",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/learn.TaskInfo"}}
                    },
                    "401": {"description": "only when JWT auth is enabled", "schema": {"$ref": "#/definitions/config.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "config.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "learn.LearnRequest": {
            "type": "object",
            "properties": {
                "task": {
                    "type": "string",
                    "enum": ["grammar-correction", "fluent-rephrase", "concept-explanation", "translate-to-bengali", "vocabulary-definition", "sentence-improvement"]
                },
                "text": {"type": "string"}
            }
        },
        "learn.LearnResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "learn.TaskInfo": {
            "type": "object",
            "properties": {
                "aliases": {"type": "array", "items": {"type": "string"}},
                "description": {"type": "string"},
                "task": {"type": "string"}
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
	Title:            "LearnAI API",
	Description:      "Task based English learning assistant backed by Gemini.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
