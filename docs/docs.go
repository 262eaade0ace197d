// Package docs holds the OpenAPI description served under /swagger.
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
        "/routines/{date}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["routines"],
                "summary": "Routine of one day",
                "parameters": [
                    {"type": "string", "description": "ISO date (YYYY-MM-DD)", "name": "date", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/routine"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/routines/{date}/items": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["routines"],
                "summary": "Append a task to a day",
                "parameters": [
                    {"type": "string", "description": "ISO date (YYYY-MM-DD)", "name": "date", "in": "path", "required": true},
                    {"description": "Task", "name": "item", "in": "body", "required": true, "schema": {"$ref": "#/definitions/addItemRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/routine"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/error"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/routines/{date}/items/{task}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["routines"],
                "summary": "Mark a task complete or not complete",
                "parameters": [
                    {"type": "string", "description": "ISO date (YYYY-MM-DD)", "name": "date", "in": "path", "required": true},
                    {"type": "string", "description": "Task name", "name": "task", "in": "path", "required": true},
                    {"description": "Completion", "name": "status", "in": "body", "required": true, "schema": {"$ref": "#/definitions/setItemStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/routine"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/error"}}
                }
            },
            "delete": {
                "tags": ["routines"],
                "summary": "Remove a task from a day",
                "parameters": [
                    {"type": "string", "description": "ISO date (YYYY-MM-DD)", "name": "date", "in": "path", "required": true},
                    {"type": "string", "description": "Task name", "name": "task", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/reports/monthly": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Monthly routine report",
                "parameters": [
                    {"type": "integer", "description": "Year, defaults to the current one", "name": "year", "in": "query"},
                    {"type": "integer", "description": "Month 1-12, defaults to the current one", "name": "month", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/monthlyReport"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/stats/weekly": {
            "get": {
                "produces": ["application/json"],
                "tags": ["stats"],
                "summary": "Per-task completion over a date range",
                "parameters": [
                    {"type": "string", "description": "YYYY-MM-DD, defaults to six days before end_date", "name": "start_date", "in": "query"},
                    {"type": "string", "description": "YYYY-MM-DD, defaults to today", "name": "end_date", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/rangeStats"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/stats/streak": {
            "get": {
                "produces": ["application/json"],
                "tags": ["stats"],
                "summary": "Current and longest run of fully completed days",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/streak"}}
                }
            }
        },
        "/journal": {
            "get": {
                "produces": ["application/json"],
                "tags": ["journal"],
                "summary": "Journal entries, newest day first",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/journalEntry"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["journal"],
                "summary": "Append a private journal entry for today",
                "parameters": [
                    {"description": "Entry", "name": "entry", "in": "body", "required": true, "schema": {"type": "object", "properties": {"text": {"type": "string"}}}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "object", "properties": {"message": {"type": "string"}}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/attractions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["attractions"],
                "summary": "Nearby wellness places",
                "parameters": [
                    {"type": "string", "description": "Category filter, case-insensitive", "name": "category", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/attraction"}}}
                }
            }
        },
        "/attractions/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["attractions"],
                "summary": "Known attraction categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}}
                }
            }
        },
        "/attractions/nearest": {
            "get": {
                "produces": ["application/json"],
                "tags": ["attractions"],
                "summary": "Places closest to a point",
                "parameters": [
                    {"type": "number", "description": "Latitude", "name": "lat", "in": "query", "required": true},
                    {"type": "number", "description": "Longitude", "name": "lon", "in": "query", "required": true},
                    {"type": "integer", "description": "Maximum results, default 5", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/attraction"}}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/chatbot/messages": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["chatbot"],
                "summary": "Talk to the mood companion",
                "parameters": [
                    {"description": "Message", "name": "message", "in": "body", "required": true, "schema": {"type": "object", "properties": {"message": {"type": "string"}}}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "properties": {"reply": {"type": "string"}, "farewell": {"type": "boolean"}}}}
                }
            }
        },
        "/wellness/assessment": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["wellness"],
                "summary": "Keyword-based wellness hints",
                "parameters": [
                    {"description": "Health history", "name": "history", "in": "body", "required": true, "schema": {"$ref": "#/definitions/health_history"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "properties": {"history": {"$ref": "#/definitions/health_history"}, "advice": {"type": "array", "items": {"type": "string"}}, "note": {"type": "string"}}}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/wellness/history": {
            "get": {
                "produces": ["application/json"],
                "tags": ["wellness"],
                "summary": "Last submitted health history",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/health_history"}}
                }
            }
        }
    },
    "definitions": {
        "health_history": {
            "type": "object",
            "properties": {
                "past_issues": {"type": "string"},
                "current_symptoms": {"type": "string"}
            }
        },
        "streak": {
            "type": "object",
            "properties": {
                "current": {"type": "integer"},
                "longest": {"type": "integer"},
                "updated_at": {"type": "string"}
            }
        },
        "rangeStats": {
            "type": "object",
            "properties": {
                "start_date": {"type": "string"},
                "end_date": {"type": "string"},
                "total_days": {"type": "integer"},
                "recorded_days": {"type": "integer"},
                "total_tasks": {"type": "integer"},
                "overall_completion_rate": {"type": "number"},
                "tasks": {"type": "array", "items": {"$ref": "#/definitions/taskStat"}}
            }
        },
        "taskStat": {
            "type": "object",
            "properties": {
                "task": {"type": "string"},
                "days_scheduled": {"type": "integer"},
                "days_completed": {"type": "integer"},
                "completion_rate": {"type": "number"},
                "daily_progress": {"type": "array", "description": "-1 absent, 0 pending, 1 done", "items": {"type": "integer"}}
            }
        },
        "error": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "routineItem": {
            "type": "object",
            "properties": {
                "task": {"type": "string"},
                "completed": {"type": "boolean"},
                "time": {"type": "string"}
            }
        },
        "routine": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/routineItem"}},
                "completed_count": {"type": "integer"},
                "completion": {"type": "number"},
                "fully_completed": {"type": "boolean"}
            }
        },
        "addItemRequest": {
            "type": "object",
            "required": ["task"],
            "properties": {
                "task": {"type": "string"},
                "time": {"type": "string"}
            }
        },
        "setItemStatusRequest": {
            "type": "object",
            "required": ["completed"],
            "properties": {"completed": {"type": "boolean"}}
        },
        "dayDetail": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "recorded": {"type": "boolean"},
                "items": {"type": "array", "items": {"type": "string"}},
                "completion": {"type": "number"},
                "completion_label": {"type": "string"}
            }
        },
        "monthlyReport": {
            "type": "object",
            "properties": {
                "year": {"type": "integer"},
                "month": {"type": "integer"},
                "month_year": {"type": "string"},
                "average_completion": {"type": "number"},
                "average_completion_label": {"type": "string"},
                "fully_completed_days": {"type": "integer"},
                "recorded_days": {"type": "integer"},
                "fully_completed_label": {"type": "string"},
                "total_days_in_month": {"type": "integer"},
                "longest_streak": {"type": "integer"},
                "daily_details": {"type": "array", "items": {"$ref": "#/definitions/dayDetail"}},
                "analysis": {"type": "array", "items": {"type": "string"}},
                "recommendations": {"type": "array", "items": {"type": "string"}}
            }
        },
        "journalEntry": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "content": {"type": "string"}
            }
        },
        "attraction": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "latitude": {"type": "number"},
                "longitude": {"type": "number"},
                "description": {"type": "string"},
                "category": {"type": "string"},
                "address": {"type": "string"},
                "phone": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "LifeSync API",
	Description:      "Daily routines, monthly reports and wellness companions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
