// Package placeholder renders printf-style templates whose directives refer
// to values by name instead of by argument position.
//
// A directive has the form
//
//	%<ref>$<flags><width>.<precision><conv>
//
// where ref is an identifier such as "url" or an integer such as "2". Flags
// are '-' (left justify), '+' (force sign), ' ', '0' and 'c (pad with c).
// "%%" renders a single '%'. Any other '%' that does not begin a
// well-formed directive is copied through untouched.
package placeholder

import (
	"fmt"
	"strconv"
	"strings"
)

// Source is an ordered mapping of names to values.
type Source interface {
	Keys() []string
	Get(key string) (string, bool)
}

// FormatError is returned when a directive cannot be resolved or rendered.
type FormatError struct {
	Reference string
	Reason    string
}

func (e FormatError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("unresolved placeholder %q", e.Reference)
	}
	return fmt.Sprintf("placeholder %q: %s", e.Reference, e.Reason)
}

// edit replaces template[start:end] with text.
type edit struct {
	start, end int
	text       string
}

// Format substitutes every directive in template with the matching value
// from data. Duplicate references resolve independently.
func Format(template string, data Source) (string, error) {
	edits, err := plan(template, data)
	if err != nil {
		return "", err
	}
	return apply(template, edits), nil
}

// References lists the references of every directive in template, in
// order of appearance.
func References(template string) []string {
	var refs []string
	for i := 0; i < len(template); i++ {
		if template[i] != '%' {
			continue
		}
		if i+1 < len(template) && template[i+1] == '%' {
			i++
			continue
		}
		d, ok := parseDirective(template, i)
		if !ok {
			continue
		}
		refs = append(refs, d.ref)
		i = d.end - 1
	}
	return refs
}

func plan(template string, data Source) ([]edit, error) {
	var keys []string
	if data != nil {
		keys = data.Keys()
	}

	var edits []edit
	for i := 0; i < len(template); i++ {
		if template[i] != '%' {
			continue
		}
		if i+1 < len(template) && template[i+1] == '%' {
			edits = append(edits, edit{start: i, end: i + 2, text: "%"})
			i++
			continue
		}
		d, ok := parseDirective(template, i)
		if !ok {
			continue
		}
		idx, ok := resolve(d.ref, keys)
		if !ok {
			return nil, FormatError{Reference: d.ref}
		}
		value, _ := data.Get(keys[idx])
		text, err := d.render(value)
		if err != nil {
			return nil, err
		}
		edits = append(edits, edit{start: d.start, end: d.end, text: text})
		i = d.end - 1
	}
	return edits, nil
}

func apply(template string, edits []edit) string {
	if len(edits) == 0 {
		return template
	}
	var b strings.Builder
	b.Grow(len(template))
	last := 0
	for _, e := range edits {
		b.WriteString(template[last:e.start])
		b.WriteString(e.text)
		last = e.end
	}
	b.WriteString(template[last:])
	return b.String()
}

// resolve maps ref to a 0-based index into keys. Exact key matches win,
// then numeric equality against integer keys, then an unsigned integer is
// taken as a 1-based position.
func resolve(ref string, keys []string) (int, bool) {
	for i, k := range keys {
		if k == ref {
			return i, true
		}
	}

	n, err := strconv.Atoi(ref)
	if err != nil {
		return -1, false
	}
	for i, k := range keys {
		if kn, err := strconv.Atoi(k); err == nil && kn == n {
			return i, true
		}
	}
	if ref[0] != '+' && ref[0] != '-' && n >= 1 && n <= len(keys) {
		return n - 1, true
	}
	return -1, false
}
