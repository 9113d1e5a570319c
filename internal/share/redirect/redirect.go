// Package redirect sends HTTP clients on to a resolved share link.
package redirect

import (
	"net/http"

	"github.com/blacktop/socialshare/internal/share"
)

// Redirector writes the HTTP response for a share link result.
type Redirector struct {
	// Diagnostic exposes error messages in response bodies.
	Diagnostic bool
}

// Respond redirects to link with 302 Found, or reports err with the status
// from StatusFor.
func (rd Redirector) Respond(w http.ResponseWriter, r *http.Request, link string, err error) {
	if err != nil {
		status := StatusFor(err)
		msg := http.StatusText(status)
		if rd.Diagnostic {
			msg = err.Error()
		}
		http.Error(w, msg, status)
		return
	}
	http.Redirect(w, r, link, http.StatusFound)
}

// StatusFor maps a build error to an HTTP status code.
func StatusFor(err error) int {
	switch share.ErrorKind(err) {
	case share.KindEmptyParameters, share.KindQuery:
		return http.StatusBadRequest
	case share.KindUnknownNetwork:
		return http.StatusNotFound
	case share.KindFormat:
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
