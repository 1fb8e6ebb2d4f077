package controller

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sugawarayuuta/sonnet"

	m "github.com/mouse-blink/hellfloat/internal/model"
)

func TestJSONUI_DisplayPlan(t *testing.T) {
	var buf bytes.Buffer

	ui := NewJSONUI(&buf)
	require.NoError(t, ui.DisplayPlan(samplePlan(), nil))

	var got m.Plan
	require.NoError(t, sonnet.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, samplePlan(), got)
	assert.Contains(t, buf.String(), `"generators":[{"kind":"special","count":1024}`)
}

func TestJSONUI_DisplayPlan_Error(t *testing.T) {
	var buf bytes.Buffer

	boom := errors.New("boom")
	ui := NewJSONUI(&buf)

	err := ui.DisplayPlan(m.Plan{}, boom)
	require.ErrorIs(t, err, boom)
	assert.JSONEq(t, `{"error":"boom"}`, buf.String())
}

func TestJSONUI_DisplaySummaryAndVerification(t *testing.T) {
	var buf bytes.Buffer

	ui := NewJSONUI(&buf)
	require.NoError(t, ui.Start(WithGenerateMode()))

	ui.DisplayProgress(m.GeneratorSpec{Kind: m.GeneratorPow2, Count: 1}, 1, 1)
	assert.Zero(t, buf.Len(), "progress must not be written")

	ui.DisplaySummary(m.Summary{
		Output:  "out.txt",
		Written: 3,
		Bytes:   12,
		SHA256:  "ff",
		Classes: map[m.ValueClass]int{m.ClassZero: 3},
	})

	var summary map[string]interface{}
	require.NoError(t, sonnet.Unmarshal(buf.Bytes(), &summary))
	assert.Equal(t, "out.txt", summary["output"])
	assert.EqualValues(t, 3, summary["written"])
	assert.Equal(t, map[string]interface{}{"zero": float64(3)}, summary["classes"])

	buf.Reset()
	ui.DisplayVerification(m.VerifyResult{
		Output:   "out.txt",
		Lines:    2,
		Expected: 3,
		HashOK:   true,
		Issues:   []m.VerifyIssue{{Line: 2, Text: "x", Reason: "unparsable"}},
	})

	assert.JSONEq(t, `{
		"output": "out.txt",
		"ok": false,
		"lines": 2,
		"expected": 3,
		"source": "configuration",
		"sha256_ok": true,
		"issues": [{"line": 2, "text": "x", "reason": "unparsable"}]
	}`, buf.String())

	ui.Close()
	ui.Wait()
}
