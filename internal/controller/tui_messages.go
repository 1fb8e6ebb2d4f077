package controller

import (
	"time"

	m "github.com/mouse-blink/hellfloat/internal/model"
)

type tickMsg time.Time

// Message types.
type planMsg struct {
	plan m.Plan
	err  error
}

type progressMsg struct {
	spec     m.GeneratorSpec
	produced int
	target   int
}

type summaryMsg struct {
	summary m.Summary
}

type verificationMsg struct {
	result m.VerifyResult
}

// closeMsg is sent by Close so a run that failed midway still ends the program.
type closeMsg struct{}

// generatorStep is one finished generator shown in the progress box.
type generatorStep struct {
	kind  m.GeneratorKind
	count int
}
