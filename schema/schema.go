// Package schema holds the fixed JSON Schemas for every collection and
// validates raw request payloads against them before anything reaches
// the store.
package schema

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/qri-io/jsonschema"
)

// FieldError names one offending field and the constraint it violated.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Registry holds the compiled schemas, keyed by schema name.
type Registry struct {
	schemas map[string]*jsonschema.Schema
}

// NewRegistry compiles every embedded schema. Compilation failure is a
// programming error and surfaces at startup, not per request.
func NewRegistry() (*Registry, error) {
	r := &Registry{schemas: make(map[string]*jsonschema.Schema)}
	for name, src := range schemaSources {
		rs := &jsonschema.Schema{}
		if err := json.Unmarshal([]byte(src), rs); err != nil {
			return nil, fmt.Errorf("compile schema %s: %w", name, err)
		}
		r.schemas[name] = rs
	}
	return r, nil
}

// Names returns the schema names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks raw JSON against the named schema. A non-empty slice
// enumerates the field problems; a nil error with an empty slice means
// the payload is valid. The returned error covers unparseable payloads
// and unknown schema names only.
func (r *Registry) Validate(ctx context.Context, name string, raw []byte) ([]FieldError, error) {
	rs, ok := r.schemas[name]
	if !ok {
		return nil, fmt.Errorf("unknown schema: %s", name)
	}

	keyErrs, err := rs.ValidateBytes(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}

	fieldErrs := make([]FieldError, 0, len(keyErrs))
	for _, ke := range keyErrs {
		fieldErrs = append(fieldErrs, FieldError{
			Field:   fieldName(ke.PropertyPath),
			Message: ke.Message,
		})
	}
	return fieldErrs, nil
}

func fieldName(propertyPath string) string {
	field := strings.TrimPrefix(propertyPath, "/")
	if field == "" {
		return "(root)"
	}
	return field
}
