package travel

import (
	"net/url"

	"github.com/charmbracelet/log"
)

// Field declares one named request parameter with an optional default value.
type Field struct {
	Name    string
	Default string
}

// Schema declares the parameters a product accepts: session fields sent
// with the creation request, and polling-only fields that are appended to
// GET polls but never to the creation call.
type Schema struct {
	Session []Field
	Polling []Field
}

// Params holds named request parameters validated against a schema.
//
// Defaults from the schema are applied once, at construction. Set always
// overwrites, including with an empty value; empty values are simply
// dropped when the query mapping is rendered. Zero-valued entries such as
// "0" are rendered: a stop count of zero is a legitimate filter.
type Params struct {
	known   map[string]bool
	polling map[string]bool
	values  map[string]string
	logger  *log.Logger
}

// NewParams creates a parameter store for the given schema.
// Unknown-name warnings are written to logger; pass nil for log.Default().
func NewParams(schema Schema, logger *log.Logger) *Params {
	if logger == nil {
		logger = log.Default()
	}
	p := &Params{
		known:   make(map[string]bool),
		polling: make(map[string]bool),
		values:  make(map[string]string),
		logger:  logger,
	}
	for _, f := range schema.Session {
		p.known[f.Name] = true
		if f.Default != "" {
			p.values[f.Name] = f.Default
		}
	}
	for _, f := range schema.Polling {
		p.known[f.Name] = true
		p.polling[f.Name] = true
		if f.Default != "" {
			p.values[f.Name] = f.Default
		}
	}
	return p
}

// Set assigns a parameter. A name outside the schema is logged as a warning
// and the store is left unchanged; the operation is never fatal.
func (p *Params) Set(name, value string) {
	if !p.known[name] {
		p.logger.Warn("invalid parameter name", "name", name)
		return
	}
	p.values[name] = value
}

// SetAll assigns every entry of values via Set.
func (p *Params) SetAll(values map[string]string) {
	for name, value := range values {
		p.Set(name, value)
	}
}

// Get returns the current value of a parameter, or the empty string when it
// is unset or unknown.
func (p *Params) Get(name string) string {
	return p.values[name]
}

// Query renders the non-empty parameters as URL values. Polling-only fields
// are included only when includePolling is set.
func (p *Params) Query(includePolling bool) url.Values {
	out := url.Values{}
	for name := range p.known {
		if p.polling[name] && !includePolling {
			continue
		}
		if v := p.values[name]; v != "" {
			out.Set(name, v)
		}
	}
	return out
}
