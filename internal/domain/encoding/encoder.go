// Package encoding renders doubles as round-trip-safe decimal text.
//
// Every value is written with 17 significant digits, which is always enough
// for a correct binary64 parser to recover the exact bit pattern, signed zero
// and subnormals included.
package encoding

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// SignificantDigits is the precision used for every encoded value.
const SignificantDigits = 17

// Format returns the text form of v.
func Format(v float64) string {
	return strconv.FormatFloat(v, 'g', SignificantDigits, 64)
}

// Append appends the text form of v to dst.
func Append(dst []byte, v float64) []byte {
	return strconv.AppendFloat(dst, v, 'g', SignificantDigits, 64)
}

// Decode parses one encoded line back into a double.
func Decode(line string) (float64, error) {
	v, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, fmt.Errorf("decode %q: %w", line, err)
	}

	return v, nil
}

// Encode writes values to w, one per line, each terminated by '\n'. It
// returns the number of bytes written.
func Encode(w io.Writer, values []float64) (int64, error) {
	bw := bufio.NewWriterSize(w, 1<<16)
	buf := make([]byte, 0, 32)

	var written int64

	for _, v := range values {
		buf = Append(buf[:0], v)
		buf = append(buf, '\n')

		n, err := bw.Write(buf)
		written += int64(n)

		if err != nil {
			return written, fmt.Errorf("write value: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return written, fmt.Errorf("flush: %w", err)
	}

	return written, nil
}
