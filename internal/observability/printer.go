// Package observability provides formatted console output for enrichment runs.
package observability

import (
	"fmt"
	"io"
	"strings"
)

// boxWidth is the default width for formatted output boxes
const boxWidth = 60

// Printer handles run status output. Status goes to out, warnings to errOut.
type Printer struct {
	out    io.Writer
	errOut io.Writer
}

// NewPrinter creates a new Printer writing status to out and warnings to errOut.
func NewPrinter(out, errOut io.Writer) *Printer {
	return &Printer{out: out, errOut: errOut}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// Banner prints the startup summary before the first request.
func (p *Printer) Banner(input, output string, processed, total int) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Reading from:      %s\n", input))
	sb.WriteString(fmt.Sprintf("Writing to:        %s\n", output))
	sb.WriteString(fmt.Sprintf("Already processed: %d\n", processed))
	sb.WriteString(fmt.Sprintf("Total colleges:    %d\n", total))
	remaining := total - processed
	if remaining < 0 {
		remaining = 0
	}
	sb.WriteString(fmt.Sprintf("Remaining:         %d", remaining))
	p.printBox("COLLEGE DATA ENRICHMENT", sb.String())
}

// Processing prints the per-entity status line.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) Processing(i, total int, name string) {
	fmt.Fprintf(p.out, "[%d/%d] Processing: %s\n", i, total, name)
}

// Success marks the current entity as written.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) Success(name string) {
	fmt.Fprintf(p.out, "  ok: %s\n", name)
}

// Failure marks the current entity as failed; the run continues.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) Failure(name string, err error) {
	fmt.Fprintf(p.out, "  failed: %s: %v\n", name, err)
}

// Warnf prints a non-fatal warning.
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) Warnf(format string, args ...any) {
	fmt.Fprintf(p.errOut, "Warning: "+format+"\n", args...)
}

// Progress prints the periodic counter snapshot.
func (p *Printer) Progress(done, total, success, errCount, skipped int) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Progress: %d/%d\n", done, total))
	sb.WriteString(fmt.Sprintf("Success:  %d\n", success))
	sb.WriteString(fmt.Sprintf("Errors:   %d\n", errCount))
	sb.WriteString(fmt.Sprintf("Skipped:  %d", skipped))
	p.printBox("PROGRESS", sb.String())
}

// Summary prints the final counters and output location.
func (p *Printer) Summary(success, errCount, skipped int, output string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Success: %d\n", success))
	sb.WriteString(fmt.Sprintf("Errors:  %d\n", errCount))
	sb.WriteString(fmt.Sprintf("Skipped: %d\n", skipped))
	sb.WriteString(fmt.Sprintf("Output:  %s", output))
	p.printBox("PROCESSING COMPLETE", sb.String())
}
