package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Event Planner API",
        "description": "CRUD and criteria-driven listing for scheduled events",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Events", "description": "Event management and criteria queries"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/events": {
            "get": {
                "tags": ["Events"],
                "summary": "List events by criteria",
                "parameters": [
                    {"name": "filter_field", "in": "query", "type": "array", "items": {"type": "string", "enum": ["SUBJECT", "PLANNER", "DATE", "TIME"]}, "collectionFormat": "multi", "description": "Filter fields, paired with filter_value"},
                    {"name": "filter_value", "in": "query", "type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "description": "Filter values, paired with filter_field; dates as dd.MM.yyyy, times as HH:mm"},
                    {"name": "sort_field", "in": "query", "type": "array", "items": {"type": "string", "enum": ["SUBJECT", "PLANNER", "DATE", "TIME"]}, "collectionFormat": "multi", "description": "Sort fields, paired with sort_direction"},
                    {"name": "sort_direction", "in": "query", "type": "array", "items": {"type": "string", "enum": ["ASC", "DESC"]}, "collectionFormat": "multi", "description": "Sort directions, paired with sort_field"},
                    {"name": "page", "in": "query", "type": "integer", "minimum": 1, "description": "1-based page number"},
                    {"name": "size", "in": "query", "type": "integer", "minimum": 1, "description": "Page size"}
                ],
                "responses": {
                    "200": {"description": "Matching events", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid criteria", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Events"],
                "summary": "Register a new event",
                "parameters": [
                    {"name": "event", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EventRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created event", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "422": {"description": "Date before the current date", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/events/{id}": {
            "get": {
                "tags": ["Events"],
                "summary": "Get an event by id",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "The event", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown event id", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Events"],
                "summary": "Replace an existing event",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "event", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EventRequest"}}
                ],
                "responses": {
                    "200": {"description": "Updated event", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown event id", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Events"],
                "summary": "Delete an event by id",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Unknown event id", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "EventRequest": {
            "type": "object",
            "required": ["subject", "planner_full_name", "date", "time", "venue"],
            "properties": {
                "subject": {"type": "string", "minLength": 3, "maxLength": 150},
                "description": {"type": "string", "minLength": 10, "maxLength": 500},
                "planner_full_name": {"type": "string", "minLength": 5, "maxLength": 150},
                "date": {"type": "string", "example": "24.05.2030"},
                "time": {"type": "string", "example": "09:30"},
                "venue": {"type": "string", "minLength": 3, "maxLength": 130}
            }
        },
        "EventResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "subject": {"type": "string"},
                "description": {"type": "string"},
                "planner_full_name": {"type": "string"},
                "date": {"type": "string"},
                "time": {"type": "string"},
                "venue": {"type": "string"}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
