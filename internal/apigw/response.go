// Package apigw provides the shared request/response plumbing for the
// API Gateway proxy handlers: the uniform CORS JSON response, safe body
// decoding, and bearer token extraction.
package apigw

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

// Respond builds a JSON proxy response with the CORS headers every endpoint
// shares. The browser front-end is served from a different origin, so these
// are wildcarded on purpose.
func Respond(status int, body interface{}) events.APIGatewayProxyResponse {
	payload, err := json.Marshal(body)
	if err != nil {
		status = http.StatusInternalServerError
		payload = []byte(`{"error":"Internal server error"}`)
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers: map[string]string{
			"Access-Control-Allow-Origin":  "*",
			"Access-Control-Allow-Headers": "*",
			"Access-Control-Allow-Methods": "*",
			"Content-Type":                 "application/json",
		},
		Body: string(payload),
	}
}

// Message responds with a {"message": ...} body (register/login contract).
func Message(status int, msg string) events.APIGatewayProxyResponse {
	return Respond(status, map[string]string{"message": msg})
}

// Error responds with an {"error": ...} body (translate/history contract).
func Error(status int, msg string) events.APIGatewayProxyResponse {
	return Respond(status, map[string]string{"error": msg})
}

// DecodeBody unmarshals a request body into v. An empty body decodes as an
// empty object, matching what field validation expects downstream.
func DecodeBody(body string, v interface{}) error {
	if strings.TrimSpace(body) == "" {
		body = "{}"
	}
	return json.Unmarshal([]byte(body), v)
}

// BearerToken extracts the token from the Authorization header. Header names
// arrive from API Gateway in whatever casing the client used. Returns ""
// when the header or the token itself is missing.
func BearerToken(req events.APIGatewayProxyRequest) string {
	var header string
	for name, value := range req.Headers {
		if strings.EqualFold(name, "Authorization") {
			header = value
			break
		}
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
