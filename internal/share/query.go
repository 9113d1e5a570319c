package share

import (
	"errors"
	"net/url"
	"strings"
)

// ParseQuery parses a raw URL query string into Params, keeping the order
// in which keys first appear. Repeated keys keep the last value.
func ParseQuery(raw string) (*Params, error) {
	p := &Params{}
	for _, part := range strings.Split(raw, "&") {
		if part == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(part, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return nil, QueryError{Part: part, Err: err}
		}
		if key == "" {
			return nil, QueryError{Part: part, Err: errors.New("empty key")}
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, QueryError{Part: part, Err: err}
		}
		p.Set(key, value)
	}
	return p, nil
}

// ParseAssignments parses key=value arguments into Params, in order.
func ParseAssignments(args []string) (*Params, error) {
	p := &Params{}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, QueryError{Part: arg, Err: errors.New("expected key=value")}
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, QueryError{Part: arg, Err: errors.New("empty key")}
		}
		p.Set(key, value)
	}
	return p, nil
}
