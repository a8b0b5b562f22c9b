// Package docs registers the OpenAPI document served at /swagger. Keep it in
// step with the @Router annotations on the handlers.
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
		"/teams": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Teams"
				],
				"summary": "Create a new team",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "team.CreateTeamRequest",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/team.CreateTeamRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/responses.Envelope"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/responses.ErrorEnvelope"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/responses.ErrorEnvelope"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/teams/{team_id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Teams"
				],
				"summary": "Get a team by its ID",
				"parameters": [
					{
						"type": "integer",
						"name": "team_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/responses.Envelope"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/responses.ErrorEnvelope"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/responses.ErrorEnvelope"
						}
					}
				}
			}
		},
		"/teams/{team_id}/members": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Teams"
				],
				"summary": "List a team's roster",
				"parameters": [
					{
						"type": "integer",
						"name": "team_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/responses.Envelope"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/responses.ErrorEnvelope"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/responses.ErrorEnvelope"
						}
					}
				}
			},
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Teams"
				],
				"summary": "Add a player to a team's roster",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"name": "team_id",
						"in": "path",
						"required": true
					},
					{
						"description": "team.AddMemberRequest",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/team.AddMemberRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/responses.Envelope"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/responses.ErrorEnvelope"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/responses.ErrorEnvelope"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/tournaments": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Tournaments"
				],
				"summary": "Create a tournament",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "match.CreateTournamentRequest",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/match.CreateTournamentRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/responses.Envelope"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/responses.ErrorEnvelope"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/responses.ErrorEnvelope"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/tournaments/{tournament_id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Tournaments"
				],
				"summary": "Get a tournament with its registered teams",
				"parameters": [
					{
						"type": "integer",
						"name": "tournament_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/responses.Envelope"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/responses.ErrorEnvelope"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/responses.ErrorEnvelope"
						}
					}
				}
			}
		},
		"/tournaments/{tournament_id}/teams": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Tournaments"
				],
				"summary": "Register a team in a tournament category",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"name": "tournament_id",
						"in": "path",
						"required": true
					},
					{
						"description": "match.RegisterTeamRequest",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/match.RegisterTeamRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/responses.Envelope"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/responses.ErrorEnvelope"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/responses.ErrorEnvelope"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/matches": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Matches"
				],
				"summary": "Schedule a match",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "match.CreateMatchRequest",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/match.CreateMatchRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/responses.Envelope"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/responses.ErrorEnvelope"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/responses.ErrorEnvelope"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/matches/{match_id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Matches"
				],
				"summary": "Get a match with its sides and plays",
				"parameters": [
					{
						"type": "integer",
						"name": "match_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/responses.Envelope"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/responses.ErrorEnvelope"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/responses.ErrorEnvelope"
						}
					}
				}
			}
		},
		"/matches/{match_id}/status": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Matches"
				],
				"summary": "Change a match's status",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"name": "match_id",
						"in": "path",
						"required": true
					},
					{
						"description": "match.UpdateStatusRequest",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/match.UpdateStatusRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/responses.Envelope"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/responses.ErrorEnvelope"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/responses.ErrorEnvelope"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/matches/{match_id}/finish": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Matches"
				],
				"summary": "Finish a match",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"name": "match_id",
						"in": "path",
						"required": true
					},
					{
						"description": "match.FinishMatchRequest",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/match.FinishMatchRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/responses.Envelope"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/responses.ErrorEnvelope"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/responses.ErrorEnvelope"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/matches/{match_id}/plays": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Plays"
				],
				"summary": "Record a play",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"name": "match_id",
						"in": "path",
						"required": true
					},
					{
						"description": "match.RecordPlayRequest",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/match.RecordPlayRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/responses.Envelope"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/responses.ErrorEnvelope"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/responses.ErrorEnvelope"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/matches/{match_id}/plays/{play_id}": {
			"put": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Plays"
				],
				"summary": "Correct a recorded play",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"name": "match_id",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"name": "play_id",
						"in": "path",
						"required": true
					},
					{
						"description": "match.RecordPlayRequest",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/match.RecordPlayRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/responses.Envelope"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/responses.ErrorEnvelope"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/responses.ErrorEnvelope"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/matches/{match_id}/leaders": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Statistics"
				],
				"summary": "Match leaders for every statistic",
				"parameters": [
					{
						"type": "integer",
						"name": "match_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/responses.Envelope"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/responses.ErrorEnvelope"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/responses.ErrorEnvelope"
						}
					}
				}
			}
		},
		"/tournaments/{tournament_id}/standings": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Statistics"
				],
				"summary": "Category standings",
				"parameters": [
					{
						"type": "integer",
						"name": "tournament_id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"name": "category",
						"in": "query",
						"required": false
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/responses.Envelope"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/responses.ErrorEnvelope"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/responses.ErrorEnvelope"
						}
					}
				}
			}
		},
		"/tournaments/{tournament_id}/leaders": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Statistics"
				],
				"summary": "Tournament leaders for every statistic",
				"parameters": [
					{
						"type": "integer",
						"name": "tournament_id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"name": "category",
						"in": "query",
						"required": false
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/responses.Envelope"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/responses.ErrorEnvelope"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/responses.ErrorEnvelope"
						}
					}
				}
			}
		},
		"/tournaments/{tournament_id}/teams/{team_id}/leaders": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Statistics"
				],
				"summary": "Team leaders for one statistic",
				"parameters": [
					{
						"type": "integer",
						"name": "tournament_id",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"name": "team_id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"name": "stat",
						"in": "query",
						"required": true
					},
					{
						"type": "integer",
						"name": "limit",
						"in": "query",
						"required": false
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/responses.Envelope"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/responses.ErrorEnvelope"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/responses.ErrorEnvelope"
						}
					}
				}
			}
		},
		"/tournaments/{tournament_id}/teams/{team_id}/card": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Statistics"
				],
				"summary": "Team season card",
				"parameters": [
					{
						"type": "integer",
						"name": "tournament_id",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"name": "team_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/responses.Envelope"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/responses.ErrorEnvelope"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/responses.ErrorEnvelope"
						}
					}
				}
			}
		},
		"/tournaments/{tournament_id}/teams/{team_id}/players/{jersey}/debug": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Statistics"
				],
				"summary": "Player season attribution trace",
				"parameters": [
					{
						"type": "integer",
						"name": "tournament_id",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"name": "team_id",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"name": "jersey",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/responses.Envelope"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/responses.ErrorEnvelope"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/responses.ErrorEnvelope"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"responses.Envelope": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string"
				},
				"message": {
					"type": "string"
				},
				"data": {}
			}
		},
		"responses.ErrorEnvelope": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string"
				},
				"message": {
					"type": "string"
				},
				"code": {
					"type": "integer"
				},
				"errors": {}
			}
		},
		"team.CreateTeamRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"short_name": {
					"type": "string"
				},
				"logo": {
					"type": "string"
				},
				"city": {
					"type": "string"
				}
			},
			"required": [
				"name"
			]
		},
		"team.AddMemberRequest": {
			"type": "object",
			"properties": {
				"player_id": {
					"type": "integer"
				},
				"first_name": {
					"type": "string"
				},
				"last_name": {
					"type": "string"
				},
				"jersey_number": {
					"type": "integer"
				},
				"position": {
					"type": "string"
				},
				"is_captain": {
					"type": "boolean"
				}
			},
			"required": [
				"jersey_number"
			]
		},
		"match.CreateTournamentRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"season": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"start_date": {
					"type": "string"
				},
				"end_date": {
					"type": "string"
				}
			},
			"required": [
				"name"
			]
		},
		"match.RegisterTeamRequest": {
			"type": "object",
			"properties": {
				"team_id": {
					"type": "integer"
				},
				"category": {
					"type": "string"
				}
			},
			"required": [
				"team_id",
				"category"
			]
		},
		"match.CreateMatchRequest": {
			"type": "object",
			"properties": {
				"tournament_id": {
					"type": "integer"
				},
				"category": {
					"type": "string"
				},
				"home_team_id": {
					"type": "integer"
				},
				"away_team_id": {
					"type": "integer"
				},
				"scheduled_at": {
					"type": "string"
				},
				"location_text": {
					"type": "string"
				},
				"home_eligibility": {
					"type": "string",
					"enum": [
						"official",
						"friendly"
					]
				},
				"away_eligibility": {
					"type": "string",
					"enum": [
						"official",
						"friendly"
					]
				}
			},
			"required": [
				"tournament_id",
				"home_team_id",
				"away_team_id",
				"scheduled_at"
			]
		},
		"match.UpdateStatusRequest": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string",
					"enum": [
						"scheduled",
						"in_progress",
						"halftime",
						"finished",
						"suspended",
						"cancelled"
					]
				}
			},
			"required": [
				"status"
			]
		},
		"match.FinishMatchRequest": {
			"type": "object",
			"properties": {
				"home_score": {
					"type": "integer"
				},
				"away_score": {
					"type": "integer"
				}
			},
			"required": [
				"home_score",
				"away_score"
			]
		},
		"match.RecordPlayRequest": {
			"type": "object",
			"properties": {
				"sequence": {
					"type": "integer"
				},
				"period": {
					"type": "integer"
				},
				"minute": {
					"type": "integer"
				},
				"second": {
					"type": "integer"
				},
				"possession_team_id": {
					"type": "integer"
				},
				"type": {
					"type": "string",
					"enum": [
						"completed_pass",
						"incomplete_pass",
						"interception",
						"run",
						"sack",
						"tackle",
						"touchdown",
						"one_point_conversion",
						"two_point_conversion",
						"safety",
						"timeout"
					]
				},
				"description": {
					"type": "string"
				},
				"primary_player_id": {
					"type": "integer"
				},
				"secondary_player_id": {
					"type": "integer"
				},
				"scoring_player_id": {
					"type": "integer"
				},
				"is_touchdown": {
					"type": "boolean"
				},
				"is_interception": {
					"type": "boolean"
				},
				"is_sack": {
					"type": "boolean"
				},
				"points": {
					"type": "integer"
				}
			},
			"required": [
				"type",
				"primary_player_id"
			]
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8088",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Flag Football Stats API",
	Description:      "Records flag-football matches play by play and serves standings, leaderboards, team cards and attribution traces.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
