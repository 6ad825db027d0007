package core

import (
	"errors"
	"fmt"
)

// GenerationFailedMessage is shown by the interactive front ends for any failed generation.
const GenerationFailedMessage = "Something went wrong. Please update your description and try again."

// RequestFailedMessage is the body of a failed GET /recipe.
const RequestFailedMessage = "An error occurred while generating the recipe. Please update the prompt and try again."

// ErrEmptyPrompt is returned when the dish description is blank.
var ErrEmptyPrompt = errors.New("empty dish description")

// ParseError means the model response is not valid JSON.
type ParseError struct {
	Preview string // Truncated response text
	Length  int    // Full response length in bytes
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: response is not valid JSON (%d bytes): %q", e.Length, e.Preview)
}

// ShapeError means the response is JSON but not an acceptable recipe.
type ShapeError struct {
	Field   string
	Message string
}

func (e *ShapeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("shape error: %s", e.Message)
	}
	return fmt.Sprintf("shape error: %s - %s", e.Field, e.Message)
}

// GatewayError means the model could not be reached or refused the request.
type GatewayError struct {
	Adapter string
	Err     error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway %s: %v", e.Adapter, e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// StoreError means an accepted recipe could not be persisted.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// FailureKind names the cause of a failed generation for logging.
func FailureKind(err error) string {
	var (
		parseErr   *ParseError
		shapeErr   *ShapeError
		gatewayErr *GatewayError
		storeErr   *StoreError
	)
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyPrompt):
		return "empty_prompt"
	case errors.As(err, &parseErr):
		return "parse"
	case errors.As(err, &shapeErr):
		return "shape"
	case errors.As(err, &gatewayErr):
		return "gateway"
	case errors.As(err, &storeErr):
		return "store"
	default:
		return "unknown"
	}
}

