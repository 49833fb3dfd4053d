// Package docs holds the OpenAPI document served under /swagger.
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
		"/dashboard": {
			"get": {
				"tags": [
					"dashboard"
				],
				"summary": "Get dashboard",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dashboard.View"
						}
					}
				}
			}
		},
		"/filters/{name}": {
			"put": {
				"tags": [
					"filters"
				],
				"summary": "Set filter",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dashboard.View"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Filter name",
						"name": "name",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "New value",
						"name": "value",
						"in": "query",
						"required": false
					}
				]
			}
		},
		"/filters/reset": {
			"post": {
				"tags": [
					"filters"
				],
				"summary": "Reset filters",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dashboard.View"
						}
					}
				}
			}
		},
		"/filters/options": {
			"get": {
				"tags": [
					"filters"
				],
				"summary": "Get filter options",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/model.FilterOptions"
						}
					}
				}
			}
		},
		"/dropdowns/{name}/toggle": {
			"post": {
				"tags": [
					"filters"
				],
				"summary": "Toggle dropdown",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.DropdownState"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Dropdown name",
						"name": "name",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/pointer-down": {
			"post": {
				"tags": [
					"filters"
				],
				"summary": "Pointer down",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dashboard.DropdownView"
							}
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Dropdown the pointer landed in",
						"name": "target",
						"in": "query",
						"required": false
					}
				]
			}
		},
		"/sidebar/toggle": {
			"post": {
				"tags": [
					"dashboard"
				],
				"summary": "Toggle sidebar",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.SidebarState"
						}
					}
				}
			}
		},
		"/scroll": {
			"post": {
				"tags": [
					"dashboard"
				],
				"summary": "Scroll",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.ScrollState"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"description": "Vertical scroll offset",
						"name": "y",
						"in": "query",
						"required": true
					}
				]
			}
		},
		"/table": {
			"get": {
				"tags": [
					"table"
				],
				"summary": "Get table page",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dashboard.TablePage"
						}
					}
				}
			}
		},
		"/table/next": {
			"post": {
				"tags": [
					"table"
				],
				"summary": "Next table page",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dashboard.TablePage"
						}
					}
				}
			}
		},
		"/table/prev": {
			"post": {
				"tags": [
					"table"
				],
				"summary": "Previous table page",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dashboard.TablePage"
						}
					}
				}
			}
		},
		"/table/page-size": {
			"put": {
				"tags": [
					"table"
				],
				"summary": "Set page size",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dashboard.TablePage"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"description": "Rows per page",
						"name": "value",
						"in": "query",
						"required": true
					}
				]
			}
		},
		"/charts": {
			"get": {
				"tags": [
					"charts"
				],
				"summary": "Get charts",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dashboard.Charts"
						}
					}
				}
			}
		},
		"/export": {
			"get": {
				"tags": [
					"export"
				],
				"summary": "Export records",
				"produces": [
					"text/csv"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"204": {
						"description": "Nothing to export"
					}
				}
			}
		},
		"/theme": {
			"get": {
				"tags": [
					"theme"
				],
				"summary": "Get theme",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.ThemeState"
						}
					}
				}
			}
		},
		"/theme/toggle": {
			"post": {
				"tags": [
					"theme"
				],
				"summary": "Toggle theme",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.ThemeState"
						}
					}
				}
			}
		},
		"/fetches": {
			"get": {
				"tags": [
					"diagnostics"
				],
				"summary": "List fetches",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/model.FetchLog"
							}
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"description": "Maximum entries",
						"name": "limit",
						"in": "query",
						"required": false
					}
				]
			}
		}
	},
	"definitions": {
		"handler.ErrorResponse": {
			"type": "object",
			"properties": {
				"error": {
					"type": "string"
				}
			}
		},
		"handler.DropdownState": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"open": {
					"type": "boolean"
				}
			}
		},
		"handler.SidebarState": {
			"type": "object",
			"properties": {
				"open": {
					"type": "boolean"
				}
			}
		},
		"handler.ScrollState": {
			"type": "object",
			"properties": {
				"showBackToTop": {
					"type": "boolean"
				}
			}
		},
		"handler.ThemeState": {
			"type": "object",
			"properties": {
				"theme": {
					"type": "string"
				}
			}
		},
		"model.FilterState": {
			"type": "object",
			"properties": {
				"search": {
					"type": "string"
				},
				"end_year": {
					"type": "string"
				},
				"topic": {
					"type": "string"
				},
				"sector": {
					"type": "string"
				},
				"region": {
					"type": "string"
				},
				"country": {
					"type": "string"
				},
				"pestle": {
					"type": "string"
				},
				"source": {
					"type": "string"
				}
			}
		},
		"model.FilterOptions": {
			"type": "object",
			"additionalProperties": {
				"type": "array",
				"items": {
					"type": "string"
				}
			}
		},
		"model.FetchLog": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"session_id": {
					"type": "string"
				},
				"token": {
					"type": "integer"
				},
				"query": {
					"type": "string"
				},
				"record_count": {
					"type": "integer"
				},
				"stale": {
					"type": "boolean"
				},
				"error": {
					"type": "string"
				},
				"created_at": {
					"type": "string"
				}
			}
		},
		"dashboard.DropdownView": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"label": {
					"type": "string"
				},
				"value": {
					"type": "string"
				},
				"open": {
					"type": "boolean"
				},
				"options": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"dashboard.Row": {
			"type": "object",
			"properties": {
				"title": {
					"type": "string"
				},
				"topic": {
					"type": "string"
				},
				"country": {
					"type": "string"
				},
				"year": {
					"type": "string"
				}
			}
		},
		"dashboard.TablePage": {
			"type": "object",
			"properties": {
				"rows": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dashboard.Row"
					}
				},
				"page": {
					"type": "integer"
				},
				"pageSize": {
					"type": "integer"
				},
				"pageSizes": {
					"type": "array",
					"items": {
						"type": "integer"
					}
				},
				"totalPages": {
					"type": "integer"
				},
				"total": {
					"type": "integer"
				},
				"from": {
					"type": "integer"
				},
				"to": {
					"type": "integer"
				},
				"empty": {
					"type": "boolean"
				},
				"hasPrev": {
					"type": "boolean"
				},
				"hasNext": {
					"type": "boolean"
				}
			}
		},
		"dashboard.Dataset": {
			"type": "object",
			"properties": {
				"label": {
					"type": "string"
				},
				"data": {
					"type": "array",
					"items": {
						"type": "number"
					}
				},
				"backgroundColor": {},
				"borderColor": {
					"type": "string"
				},
				"tension": {
					"type": "number"
				},
				"fill": {
					"type": "boolean"
				},
				"pointRadius": {
					"type": "integer"
				}
			}
		},
		"dashboard.ChartConfig": {
			"type": "object",
			"properties": {
				"type": {
					"type": "string"
				},
				"title": {
					"type": "string"
				},
				"labels": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"datasets": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dashboard.Dataset"
					}
				}
			}
		},
		"dashboard.Charts": {
			"type": "object",
			"properties": {
				"intensity": {
					"$ref": "#/definitions/dashboard.ChartConfig"
				},
				"likelihood": {
					"$ref": "#/definitions/dashboard.ChartConfig"
				},
				"topics": {
					"$ref": "#/definitions/dashboard.ChartConfig"
				}
			}
		},
		"dashboard.View": {
			"type": "object",
			"properties": {
				"filters": {
					"$ref": "#/definitions/model.FilterState"
				},
				"options": {
					"$ref": "#/definitions/model.FilterOptions"
				},
				"dropdowns": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dashboard.DropdownView"
					}
				},
				"loading": {
					"type": "boolean"
				},
				"sidebarOpen": {
					"type": "boolean"
				},
				"showBackToTop": {
					"type": "boolean"
				},
				"recordCount": {
					"type": "integer"
				},
				"charts": {
					"$ref": "#/definitions/dashboard.Charts"
				},
				"table": {
					"$ref": "#/definitions/dashboard.TablePage"
				},
				"theme": {
					"type": "string"
				}
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
	Title:            "Records Dashboard API",
	Description:      "Session-scoped records dashboard: filters, charts, paginated table, CSV export and theme.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
