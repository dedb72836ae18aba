// Package schema reflects encore's host-facing configuration types into
// JSON Schema documents. Hosts use the schemas to validate stored
// configuration and to generate property UIs without hard-coding the
// field list.
package schema

import (
	"github.com/invopop/jsonschema"

	"github.com/encore-anim/encore"
)

func reflect(v any, title, description string) *jsonschema.Schema {
	r := jsonschema.Reflector{AllowAdditionalProperties: true}
	s := r.Reflect(v)
	s.Title = title
	s.Description = description
	return s
}

// Recreate returns the JSON Schema for encore.RecreateConfig.
func Recreate() *jsonschema.Schema {
	return reflect(new(encore.RecreateConfig),
		"Recreate Configuration",
		"Settings for rebuilding an entity's duplicate group: copy count, per-duplicate frame offset, geometry sharing, cycle extrapolation and random perturbation bounds.")
}

// RepeatRange returns the JSON Schema for encore.RangeSpec.
func RepeatRange() *jsonschema.Schema {
	return reflect(new(encore.RangeSpec),
		"Repeat Range Request",
		"Settings for baking repeated copies of a keyframe sub-range back into a curve.")
}

// Cycle returns the JSON Schema for encore.CycleConfig.
func Cycle() *jsonschema.Schema {
	return reflect(new(encore.CycleConfig),
		"Cycle Configuration",
		"Cyclic extrapolation settings applied to every curve of a set.")
}
