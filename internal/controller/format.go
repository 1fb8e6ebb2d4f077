package controller

import (
	"fmt"

	m "github.com/mouse-blink/hellfloat/internal/model"
)

var classOrder = []m.ValueClass{m.ClassZero, m.ClassSubnormal, m.ClassNormal, m.ClassNonFinite}

// share renders count as a percentage of total.
func share(count, total int) string {
	if total <= 0 {
		return "0.00%"
	}

	return fmt.Sprintf("%.2f%%", 100*float64(count)/float64(total))
}

// presentClasses returns the classes present in counts in display order.
func presentClasses(counts map[m.ValueClass]int) []m.ValueClass {
	out := make([]m.ValueClass, 0, len(counts))

	for _, class := range classOrder {
		if _, ok := counts[class]; ok {
			out = append(out, class)
		}
	}

	return out
}

func humanBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}

	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// verifySource names where verify took its seed and count from.
func verifySource(result m.VerifyResult) string {
	if result.FromManifest {
		return "manifest"
	}

	return "configuration"
}
