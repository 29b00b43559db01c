package session

import (
	"github.com/invopop/jsonschema"
)

// Schema describes the current persisted window format.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		DoNotReference: true,
		Anonymous:      true,
	}
	s := r.Reflect(WindowDocument{})
	s.Title = "browse window session"
	s.Description = "One element per tab, left to right. Older generations are read but never written."
	return s
}
