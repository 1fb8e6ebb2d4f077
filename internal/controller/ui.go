// Package controller provides presenters for corpus generation runs.
package controller

import (
	m "github.com/mouse-blink/hellfloat/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeInspect StartMode = iota
	ModeGenerate
	ModeVerify
)

func (s StartMode) String() string {
	switch s {
	case ModeInspect:
		return "inspect"
	case ModeGenerate:
		return "generate"
	case ModeVerify:
		return "verify"
	default:
		return "unknown"
	}
}

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithInspectMode sets the UI to plan inspection mode.
func WithInspectMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeInspect
	}
}

// WithGenerateMode sets the UI to corpus generation mode.
func WithGenerateMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeGenerate
	}
}

// WithVerifyMode sets the UI to artifact verification mode.
func WithVerifyMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeVerify
	}
}

func resolveStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeGenerate}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines the interface for presenting a run.
// Implementations can use different output methods (simple text, TUI, JSON).
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish (user closes it)
	DisplayPlan(plan m.Plan, err error) error
	DisplayProgress(spec m.GeneratorSpec, produced, target int)
	DisplaySummary(summary m.Summary)
	DisplayVerification(result m.VerifyResult)
}
