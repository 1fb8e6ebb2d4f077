package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/hellfloat/internal/domain/encoding"
)

func encodeLines(values []float64) []string {
	lines := make([]string, len(values))
	for i, v := range values {
		lines[i] = encoding.Format(v)
	}

	return lines
}

func TestVerifier_CleanArtifact(t *testing.T) {
	values := assemble(t, 3000, 11).Values

	for _, threads := range []int{0, 1, 3, 16} {
		issues := NewVerifier(threads).Check(encodeLines(values), values)
		assert.Empty(t, issues, "threads=%d", threads)
	}
}

func TestVerifier_ReportsEachKindOfIssue(t *testing.T) {
	values := []float64{1, 0.1, 2, 3, 4, 5}
	lines := encodeLines(values)
	lines[0] = "abc"
	lines[1] = "0.1"
	lines[2] = "NaN"
	lines[3] = "5"
	lines = append(lines, "6")

	issues := NewVerifier(2).Check(lines, values)
	require.Len(t, issues, 5)

	want := []struct {
		line   int
		reason string
	}{
		{1, "not a decimal literal"},
		{2, "not canonical, want 0.10000000000000001"},
		{3, "not finite"},
		{4, "differs from regenerated 3"},
		{7, "beyond target count"},
	}

	for i, w := range want {
		assert.Equal(t, w.line, issues[i].Line)
		assert.Equal(t, w.reason, issues[i].Reason)
		assert.Equal(t, lines[w.line-1], issues[i].Text)
	}
}

func TestVerifier_SignedZeroMustMatch(t *testing.T) {
	issues := NewVerifier(1).Check([]string{"0"}, []float64{encodingNegZero()})

	require.Len(t, issues, 1)
	assert.True(t, strings.HasPrefix(issues[0].Reason, "differs from regenerated -0"))
}

func encodingNegZero() float64 {
	v, _ := encoding.Decode("-0")
	return v
}

func TestVerifier_CapsIssues(t *testing.T) {
	lines := make([]string, MaxReportedIssues+500)
	for i := range lines {
		lines[i] = "x"
	}

	issues := NewVerifier(4).Check(lines, nil)

	require.Len(t, issues, MaxReportedIssues)
	assert.Equal(t, 1, issues[0].Line)

	for i := 1; i < len(issues); i++ {
		require.Less(t, issues[i-1].Line, issues[i].Line)
	}
}

func TestVerifier_Empty(t *testing.T) {
	assert.Empty(t, NewVerifier(2).Check(nil, []float64{1}))
}
