// Package printer writes styled, line-oriented output for the CLI.
package printer

import (
	"fmt"
	"io"

	"github.com/colonyops/tasker/internal/core/styles"
)

// Printer writes styled lines to an io.Writer.
type Printer struct {
	out io.Writer
}

// New creates a Printer writing to out.
func New(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Printf writes an unstyled line.
func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format+"\n", args...)
}

// Title writes a bold title preceded by a blank line.
func (p *Printer) Title(s string) {
	_, _ = fmt.Fprintln(p.out)
	_, _ = fmt.Fprintln(p.out, styles.TitleStyle.Render(s))
}

// Section writes a heading preceded by a blank line.
func (p *Printer) Section(s string) {
	_, _ = fmt.Fprintln(p.out)
	_, _ = fmt.Fprintln(p.out, styles.HeadingStyle.Render(s))
}

// Quote writes a motivational quote surrounded by blank lines.
func (p *Printer) Quote(q string) {
	_, _ = fmt.Fprintln(p.out)
	_, _ = fmt.Fprintln(p.out, styles.QuoteStyle.Render(fmt.Sprintf("Motivational Quote: \"%s\"", q)))
	_, _ = fmt.Fprintln(p.out)
}

// Successf writes a success line.
func (p *Printer) Successf(format string, args ...any) {
	_, _ = fmt.Fprintln(p.out, styles.SuccessStyle.Render(fmt.Sprintf(format, args...)))
}

// Warnf writes a warning line.
func (p *Printer) Warnf(format string, args ...any) {
	_, _ = fmt.Fprintln(p.out, styles.WarningStyle.Render(fmt.Sprintf(format, args...)))
}

// Errorf writes an error line.
func (p *Printer) Errorf(format string, args ...any) {
	_, _ = fmt.Fprintln(p.out, styles.ErrorStyle.Render(fmt.Sprintf(format, args...)))
}

// Mutedf writes a de-emphasised line.
func (p *Printer) Mutedf(format string, args ...any) {
	_, _ = fmt.Fprintln(p.out, styles.MutedStyle.Render(fmt.Sprintf(format, args...)))
}
