package demo

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
)

// Printer writes results either as "Name: value" lines or as a table.
type Printer struct {
	w         io.Writer
	color     bool
	nameStyle lipgloss.Style
	errStyle  lipgloss.Style
}

// NewPrinter returns a Printer writing to w. color enables ANSI styling and
// should only be set when w is a terminal.
func NewPrinter(w io.Writer, color bool) *Printer {
	p := &Printer{w: w, color: color}
	if color {
		p.nameStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
		p.errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	}

	return p
}

// Lines prints one "Name: value" line per result; failures print "Name: error: …".
func (p *Printer) Lines(results []Result) error {
	for _, res := range results {
		var err error
		if res.Err != nil {
			_, err = fmt.Fprintf(p.w, "%s: %s\n", p.name(res.Name), p.failure(res.Err))
		} else {
			_, err = fmt.Fprintf(p.w, "%s: %s\n", p.name(res.Name), res.Value)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// Table prints the results as a borderless table with a timing column and a
// footer counting failures.
func (p *Printer) Table(results []Result) {
	table := tablewriter.NewWriter(p.w)
	table.SetHeader([]string{"Algorithm", "Result", "Elapsed"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	failed := 0
	for _, res := range results {
		value := res.Value
		if res.Err != nil {
			value = "error: " + res.Err.Error()
			failed++
		}
		table.Append([]string{res.Name, value, res.Elapsed.String()})
	}
	table.SetFooter([]string{
		fmt.Sprintf("%d demos", len(results)),
		fmt.Sprintf("%d failed", failed),
		"",
	})
	table.Render()
}

func (p *Printer) name(s string) string {
	if !p.color {
		return s
	}

	return p.nameStyle.Render(s)
}

func (p *Printer) failure(err error) string {
	msg := "error: " + err.Error()
	if !p.color {
		return msg
	}

	return p.errStyle.Render(msg)
}
