package schema

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"github.com/xeipuuv/gojsonschema"

	"github.com/dmitrymomot/jobboard/core"
)

// Validator holds compiled schemas keyed by $id. It is safe for concurrent
// use once constructed.
type Validator struct {
	schemas map[string]*gojsonschema.Schema
}

// NewValidator compiles schemas, each of which may reference refs.
func NewValidator(schemas []string, refs []string) (*Validator, error) {
	type header struct {
		ID string `json:"$id"`
	}

	v := &Validator{schemas: make(map[string]*gojsonschema.Schema, len(schemas))}
	for _, str := range schemas {
		var h header
		if err := json.Unmarshal([]byte(str), &h); err != nil {
			return nil, fmt.Errorf("parse error in schema: %w", err)
		}
		if h.ID == "" {
			return nil, ErrMissingID
		}

		sl := gojsonschema.NewSchemaLoader()
		for _, ref := range refs {
			if err := sl.AddSchemas(gojsonschema.NewStringLoader(ref)); err != nil {
				return nil, fmt.Errorf("cannot add ref schema: %w", err)
			}
		}

		compiled, err := sl.Compile(gojsonschema.NewStringLoader(str))
		if err != nil {
			return nil, fmt.Errorf("cannot compile schema %s: %w", h.ID, err)
		}
		v.schemas[h.ID] = compiled
	}

	return v, nil
}

// NewValidatorFromFS loads every *.json file in dir as a top-level schema
// and every *.json file in dir/refs as a reference.
func NewValidatorFromFS(fsys fs.FS, dir string) (*Validator, error) {
	schemas, err := readJSONFiles(fsys, dir)
	if err != nil {
		return nil, err
	}

	refs, err := readJSONFiles(fsys, path.Join(dir, "refs"))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	return NewValidator(schemas, refs)
}

func readJSONFiles(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read dir %s: %w", dir, err)
	}

	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("cannot read file %s: %w", e.Name(), err)
		}
		out = append(out, string(data))
	}
	return out, nil
}

// HasSchema reports whether id is registered.
func (v *Validator) HasSchema(id string) bool {
	_, ok := v.schemas[id]
	return ok
}

// IDs returns the registered schema ids in sorted order.
func (v *Validator) IDs() []string {
	ids := make([]string, 0, len(v.schemas))
	for id := range v.schemas {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Validate checks a raw JSON document against the schema id.
func (v *Validator) Validate(document []byte, id string) error {
	return v.validate(gojsonschema.NewBytesLoader(document), id)
}

// ValidateStruct checks a Go value, as it would be encoded to JSON.
func (v *Validator) ValidateStruct(value any, id string) error {
	return v.validate(gojsonschema.NewGoLoader(value), id)
}

func (v *Validator) validate(loader gojsonschema.JSONLoader, id string) error {
	compiled, ok := v.schemas[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSchema, id)
	}

	result, err := compiled.Validate(loader)
	if err != nil {
		// The document itself could not be decoded.
		return errors.Join(ErrInvalidDocument, core.Invalid("body", "must be a valid JSON document"))
	}
	if result.Valid() {
		return nil
	}

	verr := core.NewValidationError()
	for _, e := range result.Errors() {
		verr.Add(fieldName(e), e.Description())
	}
	return errors.Join(ErrInvalidDocument, verr)
}

// fieldName returns the property a violation refers to. Root-level
// violations such as required or additionalProperties name the property in
// their details.
func fieldName(e gojsonschema.ResultError) string {
	field := e.Field()
	if field != gojsonschema.STRING_CONTEXT_ROOT {
		return field
	}
	if p, ok := e.Details()["property"].(string); ok && p != "" {
		return p
	}
	return "body"
}
