// Package schema validates JSON values against JSON Schema documents. A
// compiled *Schema is immutable and may be shared by any number of
// assertions.
package schema

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

var (
	ErrSchemaMismatch = errors.New("schema: value does not match schema")
	ErrInvalidSchema  = errors.New("schema: invalid schema document")
	ErrInvalidValue   = errors.New("schema: value is not valid JSON")
)

//go:embed schemas/*.json
var embedded embed.FS

const (
	NameUser        = "user"
	NameUserPage    = "user_page"
	NameLogin       = "login"
	NameCreatedUser = "created_user"
)

type Schema struct {
	name     string
	compiled *gojsonschema.Schema
}

type Violation struct {
	Field       string
	Description string
}

type ValidationError struct {
	Schema     string
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Description)
	}

	return fmt.Sprintf("%s %q: %s", ErrSchemaMismatch, e.Schema, strings.Join(parts, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return errors.Is(target, ErrSchemaMismatch)
}

func (e *ValidationError) Unwrap() error {
	return ErrSchemaMismatch
}

// Parse compiles a schema document.
func Parse(name string, document []byte) (*Schema, error) {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(document))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidSchema, name, err)
	}

	return &Schema{name: name, compiled: compiled}, nil
}

// LoadFile reads and compiles the schema stored at path.
func LoadFile(path string) (*Schema, error) {
	document, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schema: read %s: %w", path, err)
	}

	return Parse(path, document)
}

var embeddedCache sync.Map

// Embedded returns one of the schemas shipped with the package, compiled on
// first use.
func Embedded(name string) (*Schema, error) {
	if cached, ok := embeddedCache.Load(name); ok {
		return cached.(*Schema), nil //nolint:forcetypeassert
	}

	document, err := embedded.ReadFile("schemas/" + name + ".json")
	if err != nil {
		return nil, fmt.Errorf("%w: unknown embedded schema %q", ErrInvalidSchema, name)
	}

	compiled, err := Parse(name, document)
	if err != nil {
		return nil, err
	}

	actual, _ := embeddedCache.LoadOrStore(name, compiled)

	return actual.(*Schema), nil //nolint:forcetypeassert
}

func mustEmbedded(name string) *Schema {
	s, err := Embedded(name)
	if err != nil {
		panic(err)
	}

	return s
}

func User() *Schema        { return mustEmbedded(NameUser) }
func UserPage() *Schema    { return mustEmbedded(NameUserPage) }
func Login() *Schema       { return mustEmbedded(NameLogin) }
func CreatedUser() *Schema { return mustEmbedded(NameCreatedUser) }

func (s *Schema) Name() string {
	return s.name
}

// Validate returns nil when value conforms, a *ValidationError listing every
// violation otherwise. Raw JSON ([]byte, json.RawMessage) is validated as is;
// anything else goes through encoding/json first.
func (s *Schema) Validate(value any) error {
	loader, err := documentLoader(value)
	if err != nil {
		return err
	}

	result, err := s.compiled.Validate(loader)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}

	if result.Valid() {
		return nil
	}

	violations := make([]Violation, 0, len(result.Errors()))
	for _, resultErr := range result.Errors() {
		violations = append(violations, Violation{
			Field:       resultErr.Field(),
			Description: resultErr.Description(),
		})
	}

	return &ValidationError{Schema: s.name, Violations: violations}
}

func documentLoader(value any) (gojsonschema.JSONLoader, error) {
	var raw []byte

	switch v := value.(type) {
	case json.RawMessage:
		raw = v
	case []byte:
		raw = v
	default:
		return gojsonschema.NewGoLoader(value), nil
	}

	if !json.Valid(raw) {
		return nil, ErrInvalidValue
	}

	return gojsonschema.NewBytesLoader(raw), nil
}
