// Package validation checks incoming admin API payloads against JSON
// schemas before they reach the domain services.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrPayloadInvalid reports that a payload failed schema validation.
var ErrPayloadInvalid = errors.New("payload validation failed")

// Issue captures a single validation failure with its instance location.
type Issue struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// PayloadError surfaces validation issues with schema-aware context.
type PayloadError struct {
	Issues []Issue
	Cause  error
}

func (e *PayloadError) Error() string {
	if len(e.Issues) == 0 {
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return ErrPayloadInvalid.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := strings.TrimSpace(issue.Location)
		if location == "" {
			location = "#"
		} else if !strings.HasPrefix(location, "#") {
			location = "#" + location
		}
		if issue.Message == "" {
			parts = append(parts, location)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	return strings.Join(parts, "; ")
}

func (e *PayloadError) Unwrap() error {
	return ErrPayloadInvalid
}

// IssuesFrom extracts validation issues from an error.
func IssuesFrom(err error) []Issue {
	if err == nil {
		return nil
	}
	var payloadErr *PayloadError
	if errors.As(err, &payloadErr) && payloadErr != nil {
		return payloadErr.Issues
	}
	return []Issue{{Message: err.Error()}}
}

// GalleryPayloadSchema describes the resolved gallery payload accepted by
// the admin API. Items must arrive with a stored image URL; pending files
// are a client-side concept that never crosses this boundary.
var GalleryPayloadSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"title":      map[string]any{"type": "string", "minLength": 1, "maxLength": 200},
		"subtitle":   map[string]any{"type": "string", "minLength": 1, "maxLength": 500},
		"is_active":  map[string]any{"type": "boolean"},
		"sort_order": map[string]any{"type": "integer", "minimum": 0},
		"items": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title":       map[string]any{"type": "string", "maxLength": 100},
					"description": map[string]any{"type": "string", "maxLength": 500},
					"image_url":   map[string]any{"type": "string", "minLength": 1},
					"sort_order":  map[string]any{"type": "integer", "minimum": 1},
					"is_active":   map[string]any{"type": "boolean"},
				},
				"required":             []string{"image_url"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []string{"title", "subtitle", "items"},
	"additionalProperties": false,
}

// ValidateGalleryPayload validates a decoded JSON payload against the
// gallery schema, returning a PayloadError carrying per-field issues.
func ValidateGalleryPayload(payload map[string]any) error {
	return ValidatePayload(GalleryPayloadSchema, payload)
}

// ValidatePayload validates payload against the provided JSON schema.
func ValidatePayload(schema map[string]any, payload map[string]any) error {
	if len(schema) == 0 {
		return nil
	}
	if payload == nil {
		payload = map[string]any{}
	}
	compiled, err := compileSchema(schema)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPayloadInvalid, err)
	}
	if err := compiled.Validate(payload); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return &PayloadError{Issues: collectIssues(validationErr), Cause: err}
		}
		return &PayloadError{Cause: err}
	}
	return nil
}

func compileSchema(schema map[string]any) (*jsonschema.Schema, error) {
	encoded, err := json.Marshal(schema)
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("schema.json", bytes.NewReader(encoded)); err != nil {
		return nil, err
	}
	return compiler.Compile("schema.json")
}

func collectIssues(err *jsonschema.ValidationError) []Issue {
	if err == nil {
		return nil
	}
	issues := []Issue{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, Issue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}
