package controller

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/hellfloat/internal/model"
)

var (
	accentColor = lipgloss.Color("6")

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 0, 0, 2)

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 0, 1, 2)

	accentStyle = lipgloss.NewStyle().Foreground(accentColor)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Margin(0, 1).
			Padding(0, 1)
)

// runModel renders a single inspect, generate or verify run.
type runModel struct {
	mode            StartMode
	width           int
	progressBar     progress.Model
	progressPercent float64
	produced        int
	target          int
	plan            *m.Plan
	planErr         error
	steps           []generatorStep
	summary         *m.Summary
	verification    *m.VerifyResult
	finished        bool
}

func newRunModel(mode StartMode) runModel {
	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	return runModel{mode: mode, progressBar: prog}
}

func (rm runModel) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (rm runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rm.width = msg.Width

		rm.progressBar.Width = max(rm.width-8, 20)

	case tea.KeyMsg:
		if msg.String() == "q" || msg.Type == tea.KeyCtrlC {
			rm.finished = true
			return rm, tea.Quit
		}

	case tickMsg:
		if rm.finished {
			return rm, nil
		}

		return rm, tick()

	case planMsg:
		plan := msg.plan
		rm.plan = &plan
		rm.planErr = msg.err
		rm.target = plan.Target

	case progressMsg:
		rm = rm.handleProgress(msg)

	case summaryMsg:
		summary := msg.summary
		rm.summary = &summary
		rm.progressPercent = 1

	case verificationMsg:
		result := msg.result
		rm.verification = &result

	case closeMsg:
		rm.finished = true
		return rm, tea.Quit
	}

	return rm, nil
}

func (rm runModel) handleProgress(msg progressMsg) runModel {
	rm.produced = msg.produced
	rm.target = msg.target
	rm.steps = append(rm.steps, generatorStep{kind: msg.spec.Kind, count: msg.spec.Count})

	if msg.target > 0 {
		rm.progressPercent = float64(msg.produced) / float64(msg.target)
	}

	return rm
}

func (rm runModel) View() string {
	sections := []string{titleStyle.Render("hellfloat " + rm.mode.String())}

	if rm.planErr != nil {
		sections = append(sections, summaryStyle.Render(failStyle.Render("plan error: "+rm.planErr.Error())))
		return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
	}

	if rm.plan != nil {
		sections = append(sections,
			summaryStyle.Render(fmt.Sprintf("Target: %s  •  Seed: %s",
				accentStyle.Render(fmt.Sprintf("%d", rm.plan.Target)),
				accentStyle.Render(fmt.Sprintf("%d", rm.plan.Seed)))),
			boxStyle.Render(rm.renderPlan()),
		)
	}

	if rm.mode == ModeGenerate {
		sections = append(sections, rm.viewProgress())
	}

	if rm.summary != nil {
		sections = append(sections, rm.viewSummary())
	}

	if rm.verification != nil {
		sections = append(sections, rm.viewVerification())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (rm runModel) renderPlan() string {
	var b strings.Builder

	b.WriteString(mutedStyle.Render(fmt.Sprintf("%-10s %9s %8s", "Generator", "Count", "Share")))

	for _, spec := range rm.plan.Specs {
		fmt.Fprintf(&b, "\n%-10s %9d %8s", spec.Kind, spec.Count, share(spec.Count, rm.plan.Target))
	}

	return b.String()
}

func (rm runModel) viewProgress() string {
	progressView := lipgloss.NewStyle().Padding(0, 2).Render(rm.progressBar.ViewAs(rm.progressPercent))

	status := fmt.Sprintf("Progress: %s / %s",
		accentStyle.Render(fmt.Sprintf("%d", rm.produced)),
		accentStyle.Render(fmt.Sprintf("%d", rm.target)))

	lines := make([]string, 0, len(rm.steps))
	for _, step := range rm.steps {
		lines = append(lines, fmt.Sprintf("%s %-10s %9d", okStyle.Render("✓"), step.kind, step.count))
	}

	parts := []string{summaryStyle.Render(status), progressView}
	if len(lines) > 0 {
		parts = append(parts, boxStyle.Render(strings.Join(lines, "\n")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (rm runModel) viewSummary() string {
	s := rm.summary

	var b strings.Builder

	fmt.Fprintf(&b, "Wrote %s values to %s (%s)\nsha256 %s",
		accentStyle.Render(fmt.Sprintf("%d", s.Written)), s.Output, humanBytes(s.Bytes), mutedStyle.Render(s.SHA256))

	for _, class := range presentClasses(s.Classes) {
		count := s.Classes[class]
		fmt.Fprintf(&b, "\n%-10s %9d %8s", class, count, share(count, s.Written))
	}

	return boxStyle.Render(b.String())
}

func (rm runModel) viewVerification() string {
	v := rm.verification

	verdict := okStyle.Render("OK")
	if !v.OK() {
		verdict = failStyle.Render("FAILED")
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\nlines %d / %d  •  sha256 %t  •  source %s",
		verdict, v.Output, v.Lines, v.Expected, v.HashOK, verifySource(*v))

	for i, issue := range v.Issues {
		if i == maxListedIssues {
			fmt.Fprintf(&b, "\n... %d more", len(v.Issues)-maxListedIssues)
			break
		}

		fmt.Fprintf(&b, "\nline %d: %q: %s", issue.Line, issue.Text, issue.Reason)
	}

	return boxStyle.Render(b.String())
}
