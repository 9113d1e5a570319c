// Package printer writes share link results to a terminal or stream
// instead of redirecting.
package printer

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Printer writes resolved links to Out and errors to Err.
type Printer struct {
	Out io.Writer
	Err io.Writer
	// Quiet suppresses error output.
	Quiet bool

	link *color.Color
	fail *color.Color
}

// New returns a Printer that colorizes output written to a terminal.
func New(out, errOut io.Writer) *Printer {
	p := &Printer{
		Out:  out,
		Err:  errOut,
		link: color.New(color.FgGreen),
		fail: color.New(color.FgRed, color.Bold),
	}
	if isTerminal(out) {
		p.link.EnableColor()
	} else {
		p.link.DisableColor()
	}
	if isTerminal(errOut) {
		p.fail.EnableColor()
	} else {
		p.fail.DisableColor()
	}
	return p
}

// Print writes link, or err when it is non-nil. err is returned unchanged
// so callers can still act on it.
func (p *Printer) Print(link string, err error) error {
	if err != nil {
		if !p.Quiet {
			p.printErr(err)
		}
		return err
	}
	if p.link == nil {
		_, werr := fmt.Fprintln(p.Out, link)
		return werr
	}
	_, werr := p.link.Fprintln(p.Out, link)
	return werr
}

func (p *Printer) printErr(err error) {
	if p.fail == nil {
		fmt.Fprintln(p.Err, err)
		return
	}
	p.fail.Fprintln(p.Err, err)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
