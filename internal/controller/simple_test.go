package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/hellfloat/internal/model"
)

func newTestCommand() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	return cmd, &buf
}

func samplePlan() m.Plan {
	return m.Plan{
		Target: 2048,
		Seed:   42,
		Specs: []m.GeneratorSpec{
			{Kind: m.GeneratorSpecial, Count: 1024},
			{Kind: m.GeneratorPow2, Count: 204},
			{Kind: m.GeneratorPow10, Count: 204},
			{Kind: m.GeneratorLogSpace, Count: 204},
			{Kind: m.GeneratorSubnormal, Count: 204},
			{Kind: m.GeneratorNearPow10, Count: 208},
		},
	}
}

func TestSimpleUI_DisplayPlan_PrintsTable(t *testing.T) {
	cmd, buf := newTestCommand()
	ui := NewSimpleUI(cmd)

	if err := ui.DisplayPlan(samplePlan(), nil); err != nil {
		t.Fatalf("DisplayPlan() error = %v", err)
	}

	output := buf.String()

	for _, want := range []string{
		"GENERATOR",
		"special",
		"nearpow10",
		"1024",
		"208",
		"50.00%",
		"SEED 42",
		"2048",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestSimpleUI_DisplayPlan_Error(t *testing.T) {
	cmd, buf := newTestCommand()
	ui := NewSimpleUI(cmd)
	boom := errors.New("boom")

	if err := ui.DisplayPlan(m.Plan{}, boom); !errors.Is(err, boom) {
		t.Fatalf("DisplayPlan() error = %v, want boom", err)
	}

	if !strings.Contains(buf.String(), "plan error: boom") {
		t.Fatalf("output missing error message\noutput:\n%s", buf.String())
	}
}

func TestSimpleUI_DisplayProgress(t *testing.T) {
	cmd, buf := newTestCommand()
	ui := NewSimpleUI(cmd)

	ui.DisplayProgress(m.GeneratorSpec{Kind: m.GeneratorPow2, Count: 204}, 1228, 2048)

	output := buf.String()
	if !strings.Contains(output, "pow2") || !strings.Contains(output, "(1228/2048)") {
		t.Fatalf("unexpected progress line %q", output)
	}
}

func TestSimpleUI_DisplaySummary(t *testing.T) {
	cmd, buf := newTestCommand()
	ui := NewSimpleUI(cmd)

	ui.DisplaySummary(m.Summary{
		Output:  "out.txt",
		Written: 10,
		Bytes:   2048,
		SHA256:  "abc123",
		Classes: map[m.ValueClass]int{m.ClassNormal: 7, m.ClassZero: 3},
	})

	output := buf.String()

	for _, want := range []string{
		"Wrote 10 float64 values to out.txt (2.0 KiB)",
		"sha256 abc123",
		"zero",
		"30.00%",
		"normal",
		"70.00%",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}

	if strings.Contains(output, "subnormal") {
		t.Fatalf("absent class should not be listed\noutput:\n%s", output)
	}
}

func TestSimpleUI_DisplayVerification(t *testing.T) {
	cmd, buf := newTestCommand()
	ui := NewSimpleUI(cmd)

	issues := make([]m.VerifyIssue, maxListedIssues+3)
	for i := range issues {
		issues[i] = m.VerifyIssue{Line: i + 1, Text: "nan", Reason: "not finite"}
	}

	ui.DisplayVerification(m.VerifyResult{Output: "out.txt", Lines: 23, Expected: 23, HashOK: true, Issues: issues})

	output := buf.String()

	for _, want := range []string{"FAILED", "23 / 23", `line 1: "nan": not finite`, "... 3 more"} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}

	buf.Reset()
	ui.DisplayVerification(m.VerifyResult{Output: "out.txt", Lines: 5, Expected: 5, HashOK: true, FromManifest: true})

	for _, want := range []string{"OK", "manifest"} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, buf.String())
		}
	}
}

func TestSimpleUI_Lifecycle(t *testing.T) {
	cmd, buf := newTestCommand()
	ui := NewSimpleUI(cmd)

	if err := ui.Start(WithVerifyMode()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	ui.Close()
	ui.Wait()

	if buf.Len() != 0 {
		t.Fatalf("lifecycle calls should not print, got %q", buf.String())
	}
}

func TestHumanBytes(t *testing.T) {
	cases := map[int64]string{
		0:                "0 B",
		1023:             "1023 B",
		1024:             "1.0 KiB",
		1536:             "1.5 KiB",
		24 * 1024 * 1024: "24.0 MiB",
	}

	for in, want := range cases {
		if got := humanBytes(in); got != want {
			t.Errorf("humanBytes(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestShare(t *testing.T) {
	if got := share(1, 0); got != "0.00%" {
		t.Fatalf("share with zero total = %q", got)
	}

	if got := share(1, 3); got != "33.33%" {
		t.Fatalf("share(1, 3) = %q", got)
	}
}

func TestStartMode_String(t *testing.T) {
	cases := map[StartMode]string{
		ModeInspect:   "inspect",
		ModeGenerate:  "generate",
		ModeVerify:    "verify",
		StartMode(99): "unknown",
	}

	for mode, want := range cases {
		if got := mode.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", mode, got, want)
		}
	}

	if got := resolveStartConfig(nil).mode; got != ModeGenerate {
		t.Fatalf("default mode = %v, want generate", got)
	}

	if got := resolveStartConfig([]StartOption{WithGenerateMode(), WithInspectMode()}).mode; got != ModeInspect {
		t.Fatalf("last option should win, got %v", got)
	}
}
