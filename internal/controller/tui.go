package controller

import (
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/hellfloat/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	program *tea.Program
	done    chan struct{}
	mu      sync.Mutex
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program in the background.
func (t *TUI) Start(options ...StartOption) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return nil
	}

	cfg := resolveStartConfig(options)

	t.program = tea.NewProgram(newRunModel(cfg.mode), tea.WithOutput(t.output), tea.WithInput(nil))
	t.done = make(chan struct{})

	go func(program *tea.Program, done chan struct{}) {
		defer close(done)

		_, _ = program.Run()
	}(t.program, t.done)

	return nil
}

// Close asks the program to finish after rendering what it has.
func (t *TUI) Close() {
	t.send(closeMsg{})
}

// Wait blocks until the program exits.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done != nil {
		<-done
	}
}

// DisplayPlan shows the generator partition or error.
func (t *TUI) DisplayPlan(plan m.Plan, err error) error {
	t.send(planMsg{plan: plan, err: err})

	return err
}

// DisplayProgress advances the progress bar.
func (t *TUI) DisplayProgress(spec m.GeneratorSpec, produced, target int) {
	t.send(progressMsg{spec: spec, produced: produced, target: target})
}

// DisplaySummary shows the final artifact summary.
func (t *TUI) DisplaySummary(summary m.Summary) {
	t.send(summaryMsg{summary: summary})
}

// DisplayVerification shows the verification verdict.
func (t *TUI) DisplayVerification(result m.VerifyResult) {
	t.send(verificationMsg{result: result})
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(msg)
	}
}
