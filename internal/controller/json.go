package controller

import (
	"fmt"
	"io"

	"github.com/sugawarayuuta/sonnet"

	m "github.com/mouse-blink/hellfloat/internal/model"
)

// JSONUI writes one JSON document per displayed result.
// Progress events are dropped so the stream stays machine readable.
type JSONUI struct {
	output io.Writer
}

// NewJSONUI creates a new JSONUI.
func NewJSONUI(output io.Writer) *JSONUI {
	return &JSONUI{output: output}
}

type jsonSummary struct {
	Output  m.Path               `json:"output"`
	Written int                  `json:"written"`
	Bytes   int64                `json:"bytes"`
	SHA256  string               `json:"sha256"`
	Plan    m.Plan               `json:"plan"`
	Classes map[m.ValueClass]int `json:"classes"`
}

type jsonIssue struct {
	Line   int    `json:"line"`
	Text   string `json:"text"`
	Reason string `json:"reason"`
}

type jsonVerification struct {
	Output   m.Path      `json:"output"`
	OK       bool        `json:"ok"`
	Lines    int         `json:"lines"`
	Expected int         `json:"expected"`
	Source   string      `json:"source"`
	HashOK   bool        `json:"sha256_ok"`
	Issues   []jsonIssue `json:"issues"`
}

type jsonError struct {
	Error string `json:"error"`
}

// Start initializes the UI.
func (j *JSONUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (j *JSONUI) Close() {}

// Wait returns immediately.
func (j *JSONUI) Wait() {}

// DisplayPlan writes the plan, or the error as {"error": ...}.
func (j *JSONUI) DisplayPlan(plan m.Plan, err error) error {
	if err != nil {
		j.write(jsonError{Error: err.Error()})
		return err
	}

	j.write(plan)

	return nil
}

// DisplayProgress is a no-op.
func (j *JSONUI) DisplayProgress(_ m.GeneratorSpec, _, _ int) {}

// DisplaySummary writes the run summary.
func (j *JSONUI) DisplaySummary(summary m.Summary) {
	j.write(jsonSummary{
		Output:  summary.Output,
		Written: summary.Written,
		Bytes:   summary.Bytes,
		SHA256:  summary.SHA256,
		Plan:    summary.Plan,
		Classes: summary.Classes,
	})
}

// DisplayVerification writes the verification result.
func (j *JSONUI) DisplayVerification(result m.VerifyResult) {
	issues := make([]jsonIssue, 0, len(result.Issues))
	for _, issue := range result.Issues {
		issues = append(issues, jsonIssue(issue))
	}

	j.write(jsonVerification{
		Output:   result.Output,
		OK:       result.OK(),
		Lines:    result.Lines,
		Expected: result.Expected,
		Source:   verifySource(result),
		HashOK:   result.HashOK,
		Issues:   issues,
	})
}

func (j *JSONUI) write(v interface{}) {
	data, err := sonnet.Marshal(v)
	if err != nil {
		_, _ = fmt.Fprintf(j.output, "{\"error\":%q}\n", err.Error())
		return
	}

	_, _ = fmt.Fprintf(j.output, "%s\n", data)
}
