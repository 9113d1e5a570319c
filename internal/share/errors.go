package share

import (
	"errors"
	"fmt"

	"github.com/blacktop/socialshare/internal/placeholder"
)

// FormatError is returned when a template placeholder has no matching
// parameter.
type FormatError = placeholder.FormatError

// EmptyParametersError is returned when no parameters were supplied.
type EmptyParametersError struct{}

func (EmptyParametersError) Error() string {
	return "unable to generate URL: no parameters to process"
}

// UnknownNetworkError is returned when a network has no registered template.
type UnknownNetworkError struct {
	Network string
}

func (e UnknownNetworkError) Error() string {
	return fmt.Sprintf("unsupported network %q", e.Network)
}

// QueryError captures a malformed query string component.
type QueryError struct {
	Part string
	Err  error
}

func (e QueryError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %v", e.Part, e.Err)
}

func (e QueryError) Unwrap() error { return e.Err }

// BuildError wraps any failure to build a share link.
type BuildError struct {
	Network Network
	Err     error
}

func (e BuildError) Error() string {
	return fmt.Sprintf("build %s link: %v", e.Network, e.Err)
}

func (e BuildError) Unwrap() error { return e.Err }

// Error kinds reported by ErrorKind.
const (
	KindEmptyParameters = "empty_parameters"
	KindUnknownNetwork  = "unknown_network"
	KindFormat          = "format"
	KindQuery           = "query"
	KindUnknown         = "unknown"
)

// ErrorKind classifies err into one of the Kind constants.
func ErrorKind(err error) string {
	var (
		emptyErr   EmptyParametersError
		networkErr UnknownNetworkError
		formatErr  FormatError
		queryErr   QueryError
	)
	switch {
	case errors.As(err, &emptyErr):
		return KindEmptyParameters
	case errors.As(err, &networkErr):
		return KindUnknownNetwork
	case errors.As(err, &formatErr):
		return KindFormat
	case errors.As(err, &queryErr):
		return KindQuery
	}
	return KindUnknown
}
