// Package docs registers the OpenAPI document served under /api/swagger.
// Keep it in step with the routes in internal/server.
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
		"/": {
			"get": {
				"tags": [
					"health"
				],
				"summary": "Service status",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					}
				}
			}
		},
		"/auth/register": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Register a new account",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/server.registerRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/models.AuthResponse"
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"429": {
						"description": "Too many requests",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/auth/login": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Log in",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/server.loginRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.AuthResponse"
						}
					},
					"401": {
						"description": "Invalid credentials",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"429": {
						"description": "Too many requests",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/auth/me": {
			"get": {
				"tags": [
					"auth"
				],
				"summary": "Current user",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.User"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/auth/logout": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Revoke the presented token",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.DeleteConfirmation"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/couplets": {
			"get": {
				"tags": [
					"couplets"
				],
				"summary": "Public couplets, newest first",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.Couplet"
							}
						}
					}
				}
			},
			"post": {
				"tags": [
					"couplets"
				],
				"summary": "Create a couplet",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/server.createCoupletRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/models.Couplet"
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/couplets/mine": {
			"get": {
				"tags": [
					"couplets"
				],
				"summary": "Caller's couplets",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.Couplet"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/couplets/{id}": {
			"delete": {
				"tags": [
					"couplets"
				],
				"summary": "Delete a couplet",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Document ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.DeleteConfirmation"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/couplets/{id}/visibility": {
			"patch": {
				"tags": [
					"couplets"
				],
				"summary": "Toggle couplet visibility",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Document ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Couplet"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/couplets/{id}/like": {
			"post": {
				"tags": [
					"couplets"
				],
				"summary": "Toggle a like on a couplet",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Document ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Couplet"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/blogs": {
			"get": {
				"tags": [
					"blogs"
				],
				"summary": "Public blogs, newest first",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.Blog"
							}
						}
					}
				}
			},
			"post": {
				"tags": [
					"blogs"
				],
				"summary": "Create a blog",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/server.createBlogRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/models.Blog"
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/blogs/mine": {
			"get": {
				"tags": [
					"blogs"
				],
				"summary": "Caller's blogs",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.Blog"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/blogs/refine": {
			"post": {
				"tags": [
					"blogs"
				],
				"summary": "Polish draft text",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/server.refineRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/server.refineResponse"
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/blogs/{id}": {
			"delete": {
				"tags": [
					"blogs"
				],
				"summary": "Delete a blog",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Document ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.DeleteConfirmation"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/blogs/{id}/visibility": {
			"patch": {
				"tags": [
					"blogs"
				],
				"summary": "Toggle blog visibility",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Document ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Blog"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/blogs/{id}/like": {
			"post": {
				"tags": [
					"blogs"
				],
				"summary": "Toggle a like on a blog",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Document ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Blog"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/problems": {
			"get": {
				"tags": [
					"problems"
				],
				"summary": "All problems, newest first",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.Problem"
							}
						}
					}
				}
			},
			"post": {
				"tags": [
					"problems"
				],
				"summary": "Share a problem",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/server.createProblemRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/models.Problem"
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/problems/{id}": {
			"delete": {
				"tags": [
					"problems"
				],
				"summary": "Delete a problem",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Document ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.DeleteConfirmation"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/problems/{id}/solace": {
			"post": {
				"tags": [
					"problems"
				],
				"summary": "Answer a problem",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Document ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/server.solaceRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Problem"
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/problems/{id}/solace/{answerId}": {
			"delete": {
				"tags": [
					"problems"
				],
				"summary": "Delete an answer",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Document ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Answer ID",
						"name": "answerId",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Problem"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/bouquets": {
			"post": {
				"tags": [
					"bouquets"
				],
				"summary": "Compose a bouquet",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/server.createBouquetRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/models.Bouquet"
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/bouquets/public": {
			"get": {
				"tags": [
					"bouquets"
				],
				"summary": "Latest public bouquets",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.Bouquet"
							}
						}
					}
				}
			}
		},
		"/bouquets/mine": {
			"get": {
				"tags": [
					"bouquets"
				],
				"summary": "Caller's bouquets",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.Bouquet"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/bouquets/{id}": {
			"get": {
				"tags": [
					"bouquets"
				],
				"summary": "Read a bouquet with its couplet expanded",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Document ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Bouquet"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			},
			"delete": {
				"tags": [
					"bouquets"
				],
				"summary": "Delete a bouquet",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Document ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.DeleteConfirmation"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/flowers": {
			"get": {
				"tags": [
					"flowers"
				],
				"summary": "The garden feed",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.Flower"
							}
						}
					}
				}
			},
			"post": {
				"tags": [
					"flowers"
				],
				"summary": "Plant a flower",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/server.createFlowerRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/models.Flower"
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/flowers/{id}": {
			"delete": {
				"tags": [
					"flowers"
				],
				"summary": "Remove a flower",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Document ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.DeleteConfirmation"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/music/search": {
			"get": {
				"tags": [
					"music"
				],
				"summary": "Search songs",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "q",
						"in": "query",
						"required": true,
						"description": "Search term"
					},
					{
						"type": "integer",
						"description": "Maximum results",
						"name": "limit",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.MusicData"
							}
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"502": {
						"description": "Upstream unavailable",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"models.ErrorResponse": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string"
				},
				"code": {
					"type": "string"
				},
				"details": {
					"type": "string"
				}
			}
		},
		"models.DeleteConfirmation": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string"
				}
			}
		},
		"models.AuthResponse": {
			"type": "object",
			"properties": {
				"_id": {
					"type": "string"
				},
				"username": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"createdAt": {
					"type": "string",
					"format": "date-time"
				},
				"token": {
					"type": "string"
				}
			}
		},
		"models.User": {
			"type": "object",
			"properties": {
				"_id": {
					"type": "string"
				},
				"username": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"createdAt": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"models.Couplet": {
			"type": "object",
			"properties": {
				"_id": {
					"type": "string"
				},
				"content": {
					"type": "string"
				},
				"author": {
					"type": "string"
				},
				"authorName": {
					"type": "string"
				},
				"isPublic": {
					"type": "boolean"
				},
				"likes": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"createdAt": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"models.Blog": {
			"type": "object",
			"properties": {
				"_id": {
					"type": "string"
				},
				"title": {
					"type": "string"
				},
				"content": {
					"type": "string"
				},
				"author": {
					"type": "string"
				},
				"authorName": {
					"type": "string"
				},
				"isPublic": {
					"type": "boolean"
				},
				"likes": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"createdAt": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"models.Answer": {
			"type": "object",
			"properties": {
				"_id": {
					"type": "string"
				},
				"content": {
					"type": "string"
				},
				"author": {
					"type": "string"
				},
				"authorName": {
					"type": "string"
				},
				"createdAt": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"models.Problem": {
			"type": "object",
			"properties": {
				"_id": {
					"type": "string"
				},
				"title": {
					"type": "string"
				},
				"content": {
					"type": "string"
				},
				"author": {
					"type": "string"
				},
				"authorName": {
					"type": "string"
				},
				"answers": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.Answer"
					}
				},
				"createdAt": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"models.MusicData": {
			"type": "object",
			"properties": {
				"title": {
					"type": "string"
				},
				"artist": {
					"type": "string"
				},
				"artworkUrl": {
					"type": "string"
				},
				"previewUrl": {
					"type": "string"
				}
			}
		},
		"models.Bouquet": {
			"type": "object",
			"properties": {
				"_id": {
					"type": "string"
				},
				"flowers": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"message": {
					"type": "string"
				},
				"attachedShayari": {
					"$ref": "#/definitions/models.Couplet"
				},
				"sender": {
					"type": "string"
				},
				"senderName": {
					"type": "string"
				},
				"receiver": {
					"type": "string"
				},
				"isPublic": {
					"type": "boolean"
				},
				"spotifyUrl": {
					"type": "string"
				},
				"musicData": {
					"$ref": "#/definitions/models.MusicData"
				},
				"cakeType": {
					"type": "string"
				},
				"createdAt": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"models.Flower": {
			"type": "object",
			"properties": {
				"_id": {
					"type": "string"
				},
				"content": {
					"type": "string"
				},
				"flowerType": {
					"type": "string"
				},
				"sender": {
					"type": "string"
				},
				"senderName": {
					"type": "string"
				},
				"receiver": {
					"type": "string"
				},
				"createdAt": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"server.registerRequest": {
			"type": "object",
			"properties": {
				"username": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			}
		},
		"server.loginRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			}
		},
		"server.createCoupletRequest": {
			"type": "object",
			"properties": {
				"content": {
					"type": "string"
				},
				"isPublic": {
					"type": "boolean"
				}
			}
		},
		"server.createBlogRequest": {
			"type": "object",
			"properties": {
				"title": {
					"type": "string"
				},
				"content": {
					"type": "string"
				},
				"isPublic": {
					"type": "boolean"
				}
			}
		},
		"server.refineRequest": {
			"type": "object",
			"properties": {
				"content": {
					"type": "string"
				}
			}
		},
		"server.refineResponse": {
			"type": "object",
			"properties": {
				"refined": {
					"type": "string"
				}
			}
		},
		"server.createProblemRequest": {
			"type": "object",
			"properties": {
				"title": {
					"type": "string"
				},
				"content": {
					"type": "string"
				}
			}
		},
		"server.solaceRequest": {
			"type": "object",
			"properties": {
				"content": {
					"type": "string"
				}
			}
		},
		"server.createBouquetRequest": {
			"type": "object",
			"properties": {
				"flowers": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"message": {
					"type": "string"
				},
				"attachedShayari": {
					"type": "string"
				},
				"receiver": {
					"type": "string"
				},
				"isPublic": {
					"type": "boolean"
				},
				"spotifyUrl": {
					"type": "string"
				},
				"musicData": {
					"$ref": "#/definitions/models.MusicData"
				},
				"cakeType": {
					"type": "string"
				}
			}
		},
		"server.createFlowerRequest": {
			"type": "object",
			"properties": {
				"content": {
					"type": "string"
				},
				"flowerType": {
					"type": "string"
				},
				"receiver": {
					"type": "string"
				}
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
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Syahi API",
	Description:      "Couplets, blogs, problems, bouquets and the flower garden.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
