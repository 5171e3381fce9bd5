package sqlbuild

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrymomot/jobboard/core"
)

// Field is a single semantic field name with its raw value.
type Field struct {
	Name  string
	Value any
}

// Fields is an ordered, key-unique field mapping built from request input.
// Order is the insertion order, which for JSON bodies is the key order of
// the document.
type Fields []Field

// Columns maps semantic field names to storage column names. Names missing
// from the table are used as column names verbatim.
type Columns map[string]string

// Resolve returns the storage column for name.
func (c Columns) Resolve(name string) string {
	if column, ok := c[name]; ok && column != "" {
		return column
	}
	return name
}

// Get returns the value stored under name.
func (f Fields) Get(name string) (any, bool) {
	for _, field := range f {
		if field.Name == name {
			return field.Value, true
		}
	}
	return nil, false
}

// Has reports whether name is present.
func (f Fields) Has(name string) bool {
	_, ok := f.Get(name)
	return ok
}

// Set replaces the value of name in place, keeping its position, or appends
// it when absent.
func (f Fields) Set(name string, value any) Fields {
	for i := range f {
		if f[i].Name == name {
			f[i].Value = value
			return f
		}
	}
	return append(f, Field{Name: name, Value: value})
}

// Names returns field names in order.
func (f Fields) Names() []string {
	names := make([]string, len(f))
	for i, field := range f {
		names[i] = field.Name
	}
	return names
}

// UnmarshalJSON decodes a JSON object keeping the key order of the document.
// Numbers are kept as json.Number so no precision is lost before binding.
func (f *Fields) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return invalidFields(err.Error())
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return invalidFields("expected a JSON object")
	}

	out := make(Fields, 0)
	seen := make(map[string]struct{})
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return invalidFields(err.Error())
		}
		name, ok := tok.(string)
		if !ok {
			return invalidFields("expected an object key")
		}
		if _, dup := seen[name]; dup {
			return errors.Join(ErrDuplicateField, core.Invalid(name, "duplicate field"))
		}
		seen[name] = struct{}{}

		var value any
		if err := dec.Decode(&value); err != nil {
			return invalidFields(err.Error())
		}
		out = append(out, Field{Name: name, Value: value})
	}

	if _, err := dec.Token(); err != nil {
		return invalidFields(err.Error())
	}

	*f = out
	return nil
}

// MarshalJSON encodes the mapping as a JSON object in field order.
func (f Fields) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(field.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(field.Value)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func invalidFields(msg string) error {
	return errors.Join(ErrInvalidFields, core.Invalid("body", msg))
}

// Bindable returns a copy of f with json.Number values converted to their
// decimal text, which the database parses for integer and numeric columns
// alike.
func (f Fields) Bindable() Fields {
	out := make(Fields, len(f))
	for i, field := range f {
		if n, ok := field.Value.(json.Number); ok {
			field.Value = n.String()
		}
		out[i] = field
	}
	return out
}
