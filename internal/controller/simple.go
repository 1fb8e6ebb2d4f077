package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/hellfloat/internal/model"
)

// maxListedIssues caps how many verification issues are printed.
const maxListedIssues = 20

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// Wait returns immediately; plain output needs no user interaction.
func (s *SimpleUI) Wait() {}

// DisplayPlan prints the partition table or error.
func (s *SimpleUI) DisplayPlan(plan m.Plan, err error) error {
	if err != nil {
		s.printf("plan error: %v\n", err)
		return err
	}

	table, buf := s.newTable([]string{"Generator", "Count", "Share"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})

	for _, spec := range plan.Specs {
		table.Append([]string{string(spec.Kind), fmt.Sprintf("%d", spec.Count), share(spec.Count, plan.Target)})
	}

	table.SetFooter([]string{fmt.Sprintf("Seed %d", plan.Seed), fmt.Sprintf("%d", plan.Total()), ""})
	table.Render()

	s.printf("\n%s", buf.String())

	return nil
}

// DisplayProgress prints one line per finished generator.
func (s *SimpleUI) DisplayProgress(spec m.GeneratorSpec, produced, target int) {
	s.printf("%-10s %9d values  (%d/%d)\n", spec.Kind, spec.Count, produced, target)
}

// DisplaySummary prints where the corpus went and what it contains.
func (s *SimpleUI) DisplaySummary(summary m.Summary) {
	s.printf("Wrote %d float64 values to %s (%s)\n", summary.Written, summary.Output, humanBytes(summary.Bytes))
	s.printf("sha256 %s\n", summary.SHA256)

	table, buf := s.newTable([]string{"Class", "Count", "Share"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})

	for _, class := range presentClasses(summary.Classes) {
		count := summary.Classes[class]
		table.Append([]string{string(class), fmt.Sprintf("%d", count), share(count, summary.Written)})
	}

	table.Render()
	s.printf("\n%s", buf.String())
}

// DisplayVerification prints the verification verdict and the first issues.
func (s *SimpleUI) DisplayVerification(result m.VerifyResult) {
	verdict := "OK"
	if !result.OK() {
		verdict = "FAILED"
	}

	table, buf := s.newTable([]string{"Check", "Result"})
	table.Append([]string{"lines", fmt.Sprintf("%d / %d", result.Lines, result.Expected)})
	table.Append([]string{"sha256", fmt.Sprintf("%t", result.HashOK)})
	table.Append([]string{"source", verifySource(result)})
	table.Append([]string{"issues", fmt.Sprintf("%d", len(result.Issues))})
	table.SetFooter([]string{string(result.Output), verdict})
	table.Render()

	s.printf("\n%s", buf.String())

	for i, issue := range result.Issues {
		if i == maxListedIssues {
			s.printf("... %d more\n", len(result.Issues)-maxListedIssues)
			break
		}

		s.printf("line %d: %q: %s\n", issue.Line, issue.Text, issue.Reason)
	}
}

func (s *SimpleUI) newTable(header []string) (*tablewriter.Table, *bytes.Buffer) {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")

	return table, &buf
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
