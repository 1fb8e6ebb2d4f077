package domain

import (
	"fmt"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/hellfloat/internal/domain/encoding"
	m "github.com/mouse-blink/hellfloat/internal/model"
)

// MaxReportedIssues caps how many issues one verification keeps.
const MaxReportedIssues = 1000

// chunksPerWorker splits the artifact finer than the worker count so a slow
// chunk does not hold up the whole run.
const chunksPerWorker = 4

// Verifier checks artifact lines against the corpus they should encode.
type Verifier struct {
	threads int
}

// NewVerifier creates a Verifier that checks chunks on up to threads goroutines.
func NewVerifier(threads int) *Verifier {
	if threads <= 0 {
		threads = 1
	}

	return &Verifier{threads: threads}
}

// Check validates every line. A line must parse, be finite, be in canonical
// 17-digit form and, when expected has a value at its position, carry
// exactly the same bits. Issues are ordered by line number.
func (v *Verifier) Check(lines []string, expected []float64) []m.VerifyIssue {
	if len(lines) == 0 {
		return nil
	}

	chunkSize := max(1, (len(lines)+v.threads*chunksPerWorker-1)/(v.threads*chunksPerWorker))
	chunks := (len(lines) + chunkSize - 1) / chunkSize
	found := make([][]m.VerifyIssue, chunks)

	var g errgroup.Group

	g.SetLimit(v.threads)

	for c := range chunks {
		lo := c * chunkSize
		hi := min(lo+chunkSize, len(lines))

		g.Go(func() error {
			found[c] = checkChunk(lines, expected, lo, hi)
			return nil
		})
	}

	_ = g.Wait()

	var issues []m.VerifyIssue
	for _, chunk := range found {
		issues = append(issues, chunk...)
	}

	sort.Slice(issues, func(i, j int) bool { return issues[i].Line < issues[j].Line })

	if len(issues) > MaxReportedIssues {
		issues = issues[:MaxReportedIssues]
	}

	return issues
}

func checkChunk(lines []string, expected []float64, lo, hi int) []m.VerifyIssue {
	var issues []m.VerifyIssue

	for i := lo; i < hi && len(issues) < MaxReportedIssues; i++ {
		var want *float64
		if i < len(expected) {
			want = &expected[i]
		}

		if reason := checkLine(lines[i], want); reason != "" {
			issues = append(issues, m.VerifyIssue{Line: i + 1, Text: lines[i], Reason: reason})
		}
	}

	return issues
}

func checkLine(line string, want *float64) string {
	got, err := encoding.Decode(line)
	if err != nil {
		return "not a decimal literal"
	}

	if math.IsNaN(got) || math.IsInf(got, 0) {
		return "not finite"
	}

	if canonical := encoding.Format(got); canonical != line {
		return fmt.Sprintf("not canonical, want %s", canonical)
	}

	if want == nil {
		return "beyond target count"
	}

	if math.Float64bits(got) != math.Float64bits(*want) {
		return fmt.Sprintf("differs from regenerated %s", encoding.Format(*want))
	}

	return ""
}
