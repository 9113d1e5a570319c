package share

import (
	"sort"
	"strings"
)

// Network identifies a supported social network.
type Network string

const (
	Facebook Network = "facebook"
	Twitter  Network = "twitter"
	Google   Network = "google"
)

func (n Network) String() string { return string(n) }

// ParseNetwork normalizes a user supplied network name. It does not check
// that the network is supported; Build does that.
func ParseNetwork(s string) Network {
	return Network(strings.ToLower(strings.TrimSpace(s)))
}

// Params is an ordered mapping of parameter names to values. The zero
// value is an empty set ready to use.
type Params struct {
	keys   []string
	values map[string]string
}

// NewParams builds Params from alternating key/value arguments. A trailing
// key without a value maps to the empty string.
func NewParams(kv ...string) *Params {
	p := &Params{}
	for i := 0; i < len(kv); i += 2 {
		var v string
		if i+1 < len(kv) {
			v = kv[i+1]
		}
		p.Set(kv[i], v)
	}
	return p
}

// Set assigns value to key. An existing key keeps its position.
func (p *Params) Set(key, value string) {
	if p.values == nil {
		p.values = make(map[string]string)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get returns the value stored for key.
func (p *Params) Get(key string) (string, bool) {
	if p == nil {
		return "", false
	}
	v, ok := p.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (p *Params) Keys() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.keys...)
}

// Len returns the number of entries.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Clone returns an independent copy.
func (p *Params) Clone() *Params {
	out := &Params{}
	if p == nil {
		return out
	}
	for _, k := range p.keys {
		out.Set(k, p.values[k])
	}
	return out
}

// sortedNetworks returns the keys of m in lexical order.
func sortedNetworks[V any](m map[Network]V) []Network {
	out := make([]Network, 0, len(m))
	for n := range m {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
