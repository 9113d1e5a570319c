package placeholder

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

type directive struct {
	start, end int
	ref        string

	left      bool
	plus      bool
	space     bool
	pad       rune
	width     int
	precision int
	verb      byte
}

// parseDirective parses the directive starting at s[i], which must be '%'.
func parseDirective(s string, i int) (directive, bool) {
	d := directive{start: i, pad: ' ', width: -1, precision: -1}
	j := i + 1

	refStart := j
	switch {
	case j < len(s) && (s[j] == '+' || s[j] == '-') && j+1 < len(s) && isDigit(s[j+1]):
		j++
		for j < len(s) && isDigit(s[j]) {
			j++
		}
	case j < len(s) && isDigit(s[j]):
		for j < len(s) && isDigit(s[j]) {
			j++
		}
	case j < len(s) && isIdentStart(s[j]):
		for j < len(s) && isIdentChar(s[j]) {
			j++
		}
	default:
		return d, false
	}
	d.ref = s[refStart:j]

	if j >= len(s) || s[j] != '$' {
		return d, false
	}
	j++

flags:
	for j < len(s) {
		switch s[j] {
		case '-':
			d.left = true
		case '+':
			d.plus = true
		case ' ':
			d.space = true
		case '0':
			d.pad = '0'
		case '\'':
			if j+1 >= len(s) {
				return d, false
			}
			r, size := utf8.DecodeRuneInString(s[j+1:])
			if r == utf8.RuneError && size <= 1 {
				return d, false
			}
			d.pad = r
			j += size
		default:
			break flags
		}
		j++
	}

	if j < len(s) && isDigit(s[j]) {
		d.width, j = readInt(s, j)
	}
	if j < len(s) && s[j] == '.' {
		if j+1 >= len(s) || !isDigit(s[j+1]) {
			return d, false
		}
		d.precision, j = readInt(s, j+1)
	}

	if j >= len(s) || !isLetter(s[j]) {
		return d, false
	}
	d.verb = s[j]
	d.end = j + 1
	return d, true
}

// render formats value according to the directive's conversion.
func (d directive) render(value string) (string, error) {
	var body string
	numeric := true

	switch d.verb {
	case 's':
		numeric = false
		body = value
		if d.precision >= 0 && utf8.RuneCountInString(body) > d.precision {
			body = string([]rune(body)[:d.precision])
		}
	case 'd':
		n := toInt(value)
		body = d.sign(n >= 0) + strconv.FormatInt(n, 10)
	case 'u':
		body = strconv.FormatUint(uint64(toInt(value)), 10)
	case 'x':
		body = strconv.FormatUint(uint64(toInt(value)), 16)
	case 'X':
		body = strings.ToUpper(strconv.FormatUint(uint64(toInt(value)), 16))
	case 'o':
		body = strconv.FormatUint(uint64(toInt(value)), 8)
	case 'b':
		body = strconv.FormatUint(uint64(toInt(value)), 2)
	case 'c':
		numeric = false
		body = string(rune(toInt(value)))
	case 'e', 'E', 'f', 'F', 'g', 'G':
		f := toFloat(value)
		verb := d.verb
		if verb == 'F' {
			verb = 'f'
		}
		prec := d.precision
		if prec < 0 && verb != 'g' && verb != 'G' {
			prec = 6
		}
		body = d.sign(f >= 0) + strconv.FormatFloat(f, verb, prec, 64)
	default:
		return "", FormatError{Reference: d.ref, Reason: fmt.Sprintf("unsupported conversion %q", d.verb)}
	}

	return d.justify(body, numeric), nil
}

func (d directive) sign(nonNegative bool) string {
	switch {
	case !nonNegative:
		return ""
	case d.plus:
		return "+"
	case d.space:
		return " "
	}
	return ""
}

func (d directive) justify(body string, numeric bool) string {
	n := utf8.RuneCountInString(body)
	if d.width <= n {
		return body
	}
	fill := strings.Repeat(string(d.pad), d.width-n)
	switch {
	case d.left:
		return body + fill
	case numeric && d.pad == '0' && body != "" && strings.ContainsRune("+- ", rune(body[0])):
		return body[:1] + fill + body[1:]
	}
	return fill + body
}

func readInt(s string, j int) (int, int) {
	start := j
	for j < len(s) && isDigit(s[j]) {
		j++
	}
	n, err := strconv.Atoi(s[start:j])
	if err != nil {
		n = 0
	}
	return n, j
}

func toInt(v string) int64 {
	v = strings.TrimSpace(v)
	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return int64(f)
	}
	return 0
}

func toFloat(v string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0
	}
	return f
}

func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isLetter(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }

func isIdentStart(c byte) bool { return isLetter(c) || c == '_' || c == '-' }
func isIdentChar(c byte) bool  { return isIdentStart(c) || isDigit(c) }
