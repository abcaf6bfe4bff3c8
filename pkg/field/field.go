package field

import (
	"encoding/json"
	"strings"
)

// ResolveFunc post-processes a resolved value before it is displayed.
type ResolveFunc func(value Value, record Record, attribute string) Value

// Field is the part of a field shared by every field type: its identity, the
// UI component that renders it, and the optional resolve callback.
type Field struct {
	// Name is the display name shown as the field label
	Name string

	// Attribute is the record attribute the field reads and writes
	Attribute string

	// Component is the name of the UI component rendering the field
	Component string

	resolveCallback ResolveFunc
}

// NewField builds a field base. An empty attribute is derived from the name.
func NewField(name, attribute string, resolve ResolveFunc) Field {
	if attribute == "" {
		attribute = AttributeFromName(name)
	}
	return Field{
		Name:            name,
		Attribute:       attribute,
		resolveCallback: resolve,
	}
}

// AttributeFromName lower-cases the name and replaces spaces with underscores.
func AttributeFromName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

// descriptor is the JSON shape of a field sent to the UI layer. Field
// metadata is flattened into the same object.
type descriptor struct {
	Component string `json:"component"`
	Name      string `json:"name"`
	Attribute string `json:"attribute"`
	IndexName string `json:"indexName"`
	Value     Value  `json:"value"`
	optionsJSON
}

func (f Field) descriptor(value Value, opts Options) descriptor {
	return descriptor{
		Component:   f.Component,
		Name:        f.Name,
		Attribute:   f.Attribute,
		IndexName:   f.Name,
		Value:       value,
		optionsJSON: opts.toJSON(),
	}
}

func marshalDescriptor(d descriptor) ([]byte, error) {
	return json.Marshal(d)
}
