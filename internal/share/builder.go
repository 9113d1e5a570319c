package share

import (
	"net/url"

	"github.com/blacktop/socialshare/internal/placeholder"
)

// Builder turns parameters into a share link for a network. A Builder is
// immutable and safe for concurrent use.
type Builder struct {
	templates map[Network]string
	defaults  map[Network]*Params
}

var defaultBuilder = NewBuilder()

// NewBuilder returns a Builder over the built-in network tables.
func NewBuilder() *Builder {
	return NewBuilderWith(templates, defaults)
}

// NewBuilderWith returns a Builder over the given tables. Both are copied.
func NewBuilderWith(tmpls map[Network]string, defs map[Network]*Params) *Builder {
	b := &Builder{
		templates: make(map[Network]string, len(tmpls)),
		defaults:  make(map[Network]*Params, len(defs)),
	}
	for n, t := range tmpls {
		b.templates[n] = t
	}
	for n, d := range defs {
		b.defaults[n] = d.Clone()
	}
	return b
}

// Build builds a share link using the built-in network tables.
func Build(network Network, params *Params) (string, error) {
	return defaultBuilder.Build(network, params)
}

// Build validates and encodes params, merges the network defaults under
// them and substitutes the result into the network's template.
func (b *Builder) Build(network Network, params *Params) (string, error) {
	if params.Len() == 0 {
		return "", BuildError{Network: network, Err: EmptyParametersError{}}
	}

	final := b.merge(network, Encode(params))

	tmpl, ok := b.templates[network]
	if !ok {
		return "", BuildError{Network: network, Err: UnknownNetworkError{Network: string(network)}}
	}

	link, err := placeholder.Format(tmpl, final)
	if err != nil {
		return "", BuildError{Network: network, Err: err}
	}
	return link, nil
}

// Networks returns the supported networks in lexical order.
func (b *Builder) Networks() []Network {
	return sortedNetworks(b.templates)
}

// Template returns the template registered for network.
func (b *Builder) Template(network Network) (string, bool) {
	t, ok := b.templates[network]
	return t, ok
}

// Defaults returns a copy of the default parameters for network.
func (b *Builder) Defaults(network Network) *Params {
	return b.defaults[network].Clone()
}

// Supports reports whether network has a registered template.
func (b *Builder) Supports(network Network) bool {
	_, ok := b.templates[network]
	return ok
}

// merge lays params over the network defaults. Defaults come first in
// iteration order and caller values win.
func (b *Builder) merge(network Network, params *Params) *Params {
	final := b.defaults[network].Clone()
	for _, k := range params.Keys() {
		v, _ := params.Get(k)
		final.Set(k, v)
	}
	return final
}

// Encode returns a copy of params with every value query-escaped.
func Encode(params *Params) *Params {
	out := &Params{}
	for _, k := range params.Keys() {
		v, _ := params.Get(k)
		out.Set(k, url.QueryEscape(v))
	}
	return out
}

// Networks returns the built-in networks in lexical order.
func Networks() []Network {
	return defaultBuilder.Networks()
}
