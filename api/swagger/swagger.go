package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "AIDT Teacher Dashboard API",
        "description": "Render-ready teacher dashboard view-models for the AI digital textbook",
        "version": "0.1.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Dashboard", "description": "Teacher dashboard view-model, activity feed and exports"},
        {"name": "Notifications", "description": "Dashboard reminder time"},
        {"name": "Observability", "description": "Service metrics"}
    ],
    "paths": {
        "/teachers/{teacherId}/dashboard": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Teacher dashboard view-model",
                "parameters": [
                    {"name": "teacherId", "in": "path", "required": true, "type": "string"},
                    {"name": "refresh", "in": "query", "type": "boolean"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/DashboardEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Teacher not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "422": {"description": "Unit status tag missing or unknown", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/teachers/{teacherId}/activities": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Paginated classified activity feed",
                "parameters": [
                    {"name": "teacherId", "in": "path", "required": true, "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "pageSize", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/teachers/{teacherId}/dashboard/export": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Download a dashboard table",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "teacherId", "in": "path", "required": true, "type": "string"},
                    {"name": "table", "in": "query", "required": true, "type": "string", "enum": ["units", "activities"]},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File", "schema": {"type": "file"}},
                    "400": {"description": "Unsupported table or format", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/teachers/{teacherId}/notification-time": {
            "get": {
                "tags": ["Notifications"],
                "summary": "Get the reminder time",
                "parameters": [
                    {"name": "teacherId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Notifications"],
                "summary": "Save the reminder time",
                "parameters": [
                    {"name": "teacherId", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/NotificationTimeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/metrics/summary": {
            "get": {
                "tags": ["Observability"],
                "summary": "Aggregated service metrics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "NotificationTimeRequest": {
            "type": "object",
            "required": ["notifyAt"],
            "properties": {
                "notifyAt": {"type": "string", "example": "14:00"}
            }
        },
        "UnitView": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "status": {"type": "string", "enum": ["completed", "pending", "missing"]},
                "statusLabel": {"type": "string"},
                "styleKey": {"type": "string"},
                "diagnosticDone": {"type": "boolean"},
                "formativeDone": {"type": "boolean"},
                "summativeDone": {"type": "boolean"},
                "lastAssessmentDate": {"type": "string"}
            }
        },
        "TimeSlot": {
            "type": "object",
            "properties": {
                "icon": {"type": "string"},
                "label": {"type": "string"},
                "count": {"type": "integer"},
                "isPeak": {"type": "boolean"}
            }
        },
        "ActivityView": {
            "type": "object",
            "properties": {
                "timestamp": {"type": "string"},
                "content": {
                    "type": "object",
                    "properties": {
                        "text": {"type": "string"},
                        "emphasizedSpans": {
                            "type": "array",
                            "items": {
                                "type": "object",
                                "properties": {
                                    "start": {"type": "integer"},
                                    "end": {"type": "integer"}
                                }
                            }
                        }
                    }
                },
                "quickLink": {
                    "type": "object",
                    "properties": {
                        "category": {"type": "string", "enum": ["manage", "edit", "results", "deploy", "add", "details"]},
                        "text": {"type": "string"},
                        "icon": {"type": "string"}
                    }
                }
            }
        },
        "RecommendedAction": {
            "type": "object",
            "properties": {
                "icon": {"type": "string"},
                "text": {"type": "string"},
                "targetRef": {"type": "string"},
                "accentColor": {"type": "string"}
            }
        },
        "DashboardViewModel": {
            "type": "object",
            "properties": {
                "teacherName": {"type": "string"},
                "progressGuide": {"type": "object"},
                "metrics": {"type": "array", "items": {"type": "object"}},
                "units": {"type": "array", "items": {"$ref": "#/definitions/UnitView"}},
                "timeSlots": {"type": "array", "items": {"$ref": "#/definitions/TimeSlot"}},
                "peakSlotLabels": {"type": "array", "items": {"type": "string"}},
                "weekdayCount": {"type": "integer"},
                "weekendCount": {"type": "integer"},
                "activities": {"type": "array", "items": {"$ref": "#/definitions/ActivityView"}},
                "recommendedActions": {"type": "array", "items": {"$ref": "#/definitions/RecommendedAction"}},
                "monthlySeries": {
                    "type": "object",
                    "properties": {
                        "label": {"type": "string"},
                        "labels": {"type": "array", "items": {"type": "string"}},
                        "series": {"type": "array", "items": {"type": "integer"}}
                    }
                }
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
        "DashboardEnvelope": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/DashboardViewModel"},
                "meta": {"type": "object"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
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
