package compare

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/k0kubun/pp/v3"
	"github.com/olekukonko/tablewriter"
	"github.com/open-dynaMIX/qutebrowser-compare-config/pkg/models"
)

// printReport renders the grouped, human-readable report. Discrepancies are
// information, not failures, so printing always succeeds the run.
func (c *Compare) printReport(report *models.Report) error {
	if report.Total() == 0 {
		color.New(color.FgGreen).Fprintln(c.out, "Local config is in sync with the available settings.")
	}

	if len(report.Missing) > 0 {
		c.printCategory("Not in local config:", color.FgHiCyan)
		if c.config.Naked {
			c.printNames(report.Missing)
		} else {
			c.printMissingTable(report.Missing)
		}
	}

	if len(report.Dropped) > 0 {
		c.printCategory("Not available in qutebrowser anymore:", color.FgHiRed)
		if c.config.Naked {
			c.printNames(report.Dropped)
		} else {
			c.printDroppedTable(report.Dropped)
		}
	}

	if len(report.ChangedDefaults) > 0 {
		c.printCategory("Commented-out settings whose default changed:", color.FgHiYellow)
		if c.config.Naked {
			c.printNames(report.ChangedDefaults)
		} else {
			c.printChangedTable(report.ChangedDefaults)
		}
	}

	if len(report.Warnings) > 0 && !c.config.Naked {
		c.printCategory("Warnings:", color.FgYellow)
		for _, w := range report.Warnings {
			fmt.Fprintln(c.out, " -", w.String())
		}
	}

	if !c.config.Naked {
		printer := pp.New()
		printer.WithLineInfo = false
		summary := printer.Sprintf("\n%d missing, %d dropped, %d changed defaults, %d warnings\n",
			len(report.Missing), len(report.Dropped), len(report.ChangedDefaults), len(report.Warnings))
		fmt.Fprint(c.out, summary)
	}

	return nil
}

func (c *Compare) printCategory(title string, attr color.Attribute) {
	fmt.Fprintln(c.out)
	color.New(attr, color.Bold).Fprintln(c.out, title)
}

func (c *Compare) printNames(entries []models.ReportEntry) {
	for _, e := range entries {
		fmt.Fprintln(c.out, e.Name)
	}
}

func (c *Compare) printMissingTable(entries []models.ReportEntry) {
	table := tablewriter.NewWriter(c.out)
	table.SetHeader([]string{"Setting", "URL"})
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, e := range entries {
		table.Append([]string{e.Name, e.URL})
	}
	table.Render()
}

func (c *Compare) printDroppedTable(entries []models.ReportEntry) {
	table := tablewriter.NewWriter(c.out)
	table.SetHeader([]string{"Setting", "File", "Line"})
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, e := range entries {
		table.Append([]string{e.Name, e.File, strconv.Itoa(e.Line)})
	}
	table.Render()
}

func (c *Compare) printChangedTable(entries []models.ReportEntry) {
	table := tablewriter.NewWriter(c.out)
	table.SetHeader([]string{"Setting", "Default", "Local", "Location"})
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, e := range entries {
		local := e.Found
		if e.Unverifiable {
			local = color.YellowString("%s (unverifiable)", e.Found)
		}
		table.Append([]string{
			e.Name,
			e.Expected,
			local,
			fmt.Sprintf("%s:%d", e.File, e.Line),
		})
	}
	table.Render()
}
