package response

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Printer writes user-facing command output.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// ────────────────────────────────────────────────────────────────────────────
// Helper builders
// ────────────────────────────────────────────────────────────────────────────

// Success prints a plain message line.
func (p *Printer) Success(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Lines prints each item on its own line.
func (p *Printer) Lines(items []string) {
	for _, item := range items {
		fmt.Fprintln(p.out, item)
	}
}

// Fail prints the message for code.
func (p *Printer) Fail(code ErrCode) {
	fmt.Fprintln(p.out, GetMessage(code))
}

// FailWithDetail prints the message for code followed by a detail line.
func (p *Printer) FailWithDetail(code ErrCode, detail string) {
	fmt.Fprintln(p.out, GetMessage(code))
	if detail != "" {
		fmt.Fprintf(p.out, "  %s\n", detail)
	}
}

// FailWithFields prints the message for code followed by one line per field,
// sorted by field name so the output is stable.
func (p *Printer) FailWithFields(code ErrCode, fields map[string]string) {
	fmt.Fprintln(p.out, GetMessage(code))

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(p.out, "  - %s\n", fields[k])
	}
}

// Usage prints the usage line for a command.
func (p *Printer) Usage(usage string) {
	fmt.Fprintf(p.out, "%s Usage: %s\n", GetMessage(ErrUsage), strings.TrimSpace(usage))
}
