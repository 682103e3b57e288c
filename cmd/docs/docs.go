// Package docs registers the OpenAPI document served under /swagger.
// Regenerate with: swag init -g cmd/exchanger_backend/main.go -o cmd/docs
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
        "/rates": {
            "get": {
                "description": "Returns the rate snapshot every conversion is currently priced against",
                "produces": ["application/json"],
                "tags": ["rates"],
                "summary": "Get current exchange rates",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.RateTableResponse"}},
                    "503": {"description": "No rates fetched yet", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/conversions/quote": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["exchange"],
                "summary": "Quote a conversion",
                "parameters": [{"description": "Amount and currency pair", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ConversionRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.QuoteResponse"}},
                    "400": {"description": "Invalid amount or unknown currency pair", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "503": {"description": "Rates unavailable", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/exchanges": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["exchange"],
                "summary": "Exchange currency",
                "parameters": [{"description": "Amount and currency pair", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ConversionRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.TransactionResponse"}},
                    "400": {"description": "Invalid amount or unknown currency pair", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "422": {"description": "Insufficient balance", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "503": {"description": "Rates unavailable", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/settlements": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["exchange"],
                "summary": "Settle a priced conversion",
                "parameters": [{"description": "Settlement", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SettlementRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.TransactionResponse"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "422": {"description": "Insufficient balance", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/balances": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ledger"],
                "summary": "List balances",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.BalanceResponse"}}}
                }
            }
        },
        "/balances/{code}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ledger"],
                "summary": "Get a balance",
                "parameters": [{"type": "string", "description": "Currency code", "name": "code", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.BalanceResponse"}},
                    "404": {"description": "Currency never funded", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/balances/{code}/affordability": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ledger"],
                "summary": "Check affordability",
                "parameters": [
                    {"type": "string", "description": "Currency code", "name": "code", "in": "path", "required": true},
                    {"type": "number", "description": "Amount in that currency", "name": "amount", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AffordabilityResponse"}},
                    "400": {"description": "Invalid amount", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/transactions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ledger"],
                "summary": "List transactions",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.TransactionResponse"}}}
                }
            }
        },
        "/transactions/count": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ledger"],
                "summary": "Count transactions",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TransactionCountResponse"}}
                }
            }
        },
        "/session": {
            "get": {
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Get screen state",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SessionResponse"}}
                }
            }
        },
        "/session/commands": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Apply a screen command",
                "parameters": [{"description": "Command", "name": "command", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SessionCommandRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SessionResponse"}},
                    "400": {"description": "Unknown command", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "503": {"description": "Session loop not running", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}, "message": {"type": "string"}}
        },
        "dto.RateTableResponse": {
            "type": "object",
            "properties": {
                "base": {"type": "string"},
                "fetchedAt": {"type": "string"},
                "rates": {"type": "object", "additionalProperties": {"type": "number"}}
            }
        },
        "dto.ConversionRequest": {
            "type": "object",
            "required": ["amount", "fromCurrency", "toCurrency"],
            "properties": {"amount": {"type": "string"}, "fromCurrency": {"type": "string"}, "toCurrency": {"type": "string"}}
        },
        "dto.SettlementRequest": {
            "type": "object",
            "required": ["fromCurrency", "toCurrency", "sourceAmount"],
            "properties": {
                "fromCurrency": {"type": "string"},
                "toCurrency": {"type": "string"},
                "sourceAmount": {"type": "number"},
                "convertedAmount": {"type": "number"}
            }
        },
        "dto.QuoteResponse": {
            "type": "object",
            "properties": {
                "amount": {"type": "number"},
                "fromCurrency": {"type": "string"},
                "toCurrency": {"type": "string"},
                "rate": {"type": "number"},
                "convertedAmount": {"type": "number"},
                "commissionFeeRate": {"type": "number"},
                "commissionFee": {"type": "number"}
            }
        },
        "dto.BalanceResponse": {
            "type": "object",
            "properties": {"currencyCode": {"type": "string"}, "amount": {"type": "number"}, "createdAt": {"type": "string"}, "lastUpdatedAt": {"type": "string"}}
        },
        "dto.AffordabilityResponse": {
            "type": "object",
            "properties": {"currencyCode": {"type": "string"}, "amount": {"type": "number"}, "affordable": {"type": "boolean"}}
        },
        "dto.TransactionResponse": {
            "type": "object",
            "properties": {
                "transactionID": {"type": "string"},
                "fromCurrency": {"type": "string"},
                "toCurrency": {"type": "string"},
                "amount": {"type": "number"},
                "convertedAmount": {"type": "number"},
                "commissionFee": {"type": "number"},
                "createdAt": {"type": "string"}
            }
        },
        "dto.TransactionCountResponse": {
            "type": "object",
            "properties": {"count": {"type": "integer"}}
        },
        "dto.SessionCommandRequest": {
            "type": "object",
            "required": ["type"],
            "properties": {"type": {"type": "string"}, "value": {"type": "string"}}
        },
        "dto.SessionResponse": {
            "type": "object",
            "properties": {
                "rates": {"$ref": "#/definitions/dto.RateTableResponse"},
                "balances": {"type": "array", "items": {"$ref": "#/definitions/dto.BalanceResponse"}},
                "amount": {"type": "string"},
                "fromCurrency": {"type": "string"},
                "toCurrency": {"type": "string"},
                "commissionFeeRate": {"type": "number"},
                "convertedAmount": {"type": "number"},
                "canConvert": {"type": "boolean"},
                "message": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Currency Exchanger API",
	Description:      "Converts between currencies on periodically refreshed rates and settles conversions against a local balance ledger.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
