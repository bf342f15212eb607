// Package jsonschema holds a minimal JSON Schema document model for export.
package jsonschema

// Schema is a minimal JSON Schema representation used for export. Kept small
// and extended only as exported node shapes require.
type Schema struct {
	// Core
	Type     string `json:"type,omitempty"`
	Format   string `json:"format,omitempty"`
	Default  any    `json:"default,omitempty"`
	Const    any    `json:"const,omitempty"`
	Enum     []any  `json:"enum,omitempty"`
	Nullable bool   `json:"nullable,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	// Array
	Items       *Schema   `json:"items,omitempty"`
	PrefixItems []*Schema `json:"prefixItems,omitempty"`
	UniqueItems bool      `json:"uniqueItems,omitempty"`

	// Union
	OneOf []*Schema `json:"oneOf,omitempty"`

	// Discriminated union
	Discriminator *Discriminator `json:"discriminator,omitempty"`
}

// Discriminator names the tag property of a discriminated union.
type Discriminator struct {
	PropertyName string `json:"propertyName"`
}
