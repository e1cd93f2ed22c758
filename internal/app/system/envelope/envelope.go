// Package envelope defines the invocation request and response shapes
// shared by every admin entry point (Lambda events, the HTTP adapter and
// tests).
package envelope

import (
	"encoding/json"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Messages used across handlers.
const (
	MsgSuccess     = "Success"
	MsgNotAllowed  = "Endpoint not allowed"
	MsgServerError = "Something Went Wrong"
)

// Request is one inbound invocation.
type Request struct {
	Method          string            `json:"httpMethod" validate:"required"`
	Path            string            `json:"path" validate:"required,startswith=/"`
	PathParameters  map[string]string `json:"pathParameters,omitempty"`
	QueryParameters map[string]string `json:"queryStringParameters,omitempty"`
	Body            string            `json:"body,omitempty"`
}

// Param returns a path parameter, or "" when absent.
func (r Request) Param(key string) string { return r.PathParameters[key] }

// Query returns a query parameter, or "" when absent.
func (r Request) Query(key string) string { return r.QueryParameters[key] }

// Response is the invocation result. Body is always a JSON object that
// carries at least a "message" field.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// MessageBody is the minimal response payload.
type MessageBody struct {
	Message string `json:"message"`
}

// ErrorBody is the payload of failed invocations.
type ErrorBody struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// fallbackBody is returned if a payload cannot be serialised.
const fallbackBody = `{"message":"Something Went Wrong","error":"response encoding failed"}`

// JSON serialises payload as the response body.
func JSON(status int, payload any) Response {
	b, err := json.Marshal(payload)
	if err != nil {
		return Response{StatusCode: http.StatusInternalServerError, Body: fallbackBody}
	}
	return Response{StatusCode: status, Body: string(b)}
}

// Message returns a body holding only msg.
func Message(status int, msg string) Response {
	return JSON(status, MessageBody{Message: msg})
}

// NotAllowed is the response for unmatched method/path combinations.
func NotAllowed() Response {
	return Message(http.StatusMethodNotAllowed, MsgNotAllowed)
}

// NotFound returns a 404 with msg.
func NotFound(msg string) Response {
	return Message(http.StatusNotFound, msg)
}

// Error returns the generic 500 with err's text as the detail.
func Error(err error) Response {
	body := ErrorBody{Message: MsgServerError}
	if err != nil {
		body.Error = err.Error()
	}
	return JSON(http.StatusInternalServerError, body)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks that the request carries a method and an absolute path.
func Validate(r Request) error {
	return validate.Struct(r)
}
