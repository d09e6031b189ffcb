package ui

import (
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"trp/internal/analysis"
	"trp/internal/domain"
	"trp/internal/registry"
)

// Formatter renders summaries, histories and plan listings to the terminal.
type Formatter struct{}

// NewFormatter creates a new Formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

// PrintSummary renders an aggregate summary table plus a verdict line.
func (f *Formatter) PrintSummary(title string, s analysis.Summary) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(title)
	t.AppendRows([]table.Row{
		{"Total results", s.Total},
		{"Passed", text.FgGreen.Sprint(s.Passed)},
		{"Failed", text.FgRed.Sprint(s.Failed)},
		{"Pass rate", fmt.Sprintf("%.1f%%", s.PassRate)},
	})
	statuses := make([]string, 0, len(s.ByStatus))
	for status := range s.ByStatus {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)
	for _, status := range statuses {
		t.AppendRow(table.Row{"  " + status, s.ByStatus[status]})
	}
	t.Render()

	fmt.Println()
	if s.Total == 0 {
		color.Yellow("No results recorded yet")
	} else if s.Failed == 0 {
		color.Green("✓ All tests passed!")
	} else {
		color.Red("✗ %d of %d result(s) failed", s.Failed, s.Total)
	}
}

// PrintHistory renders a test case's execution history, oldest first.
func (f *Formatter) PrintHistory(testCaseID string, history []domain.TestResult) {
	if len(history) == 0 {
		color.Yellow("No history recorded for %s", testCaseID)
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("History for " + testCaseID)
	t.AppendHeader(table.Row{"Result ID", "Status", "Timestamp", "Duration", "Detail"})
	for _, r := range history {
		status := text.FgGreen.Sprint(r.Status)
		detail := r.Diagnosis
		if r.Status == domain.ResultStatusFailed {
			status = text.FgRed.Sprint(r.Status)
			if detail == "" {
				detail = r.ErrorDetails
			}
		}
		t.AppendRow(table.Row{
			r.ID, status, r.Timestamp.String(),
			fmt.Sprintf("%.3fs", r.ExecutionTime), detail,
		})
	}
	t.Render()
}

// PrintPlan lists the registered modules and their test cases.
func (f *Formatter) PrintPlan(reg *registry.Registry) {
	modules := reg.GetAllModules()
	sort.Slice(modules, func(i, j int) bool { return modules[i].Name < modules[j].Name })

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Module", "Test Case", "Type", "Status", "ID"})
	for _, m := range modules {
		for _, caseID := range m.TestCaseIDs {
			tc := reg.GetTestCase(caseID)
			if tc == nil {
				continue
			}
			t.AppendRow(table.Row{m.Name, tc.Name, tc.TestType, string(tc.Status), tc.ID})
		}
	}
	t.Render()
}

// PrintFailureMessages prints brief diagnostic messages for failed results.
func (f *Formatter) PrintFailureMessages(messages []string) {
	if len(messages) == 0 {
		color.Green("No failures to report")
		return
	}
	for i, msg := range messages {
		if i > 0 {
			fmt.Println()
		}
		color.Red("%s", msg)
	}
}
