package wer

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// renderAlignment writes a three-row view of every aligned utterance (REF,
// HYP and S/D/I markers) followed by the totals.
func renderAlignment(w io.Writer, aligned [][]Op, total Counts, rate float64, charLevel, includeCorrect bool) error {
	var b strings.Builder
	sep := " "
	if charLevel {
		sep = ""
	}
	for n, ops := range aligned {
		if !includeCorrect && isCorrect(ops) {
			continue
		}
		fmt.Fprintf(&b, "sentence %d\n", n+1)
		writeColumns(&b, ops, sep)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "number of sentences: %d\n", len(aligned))
	fmt.Fprintf(&b, "substitutions=%d deletions=%d insertions=%d hits=%d\n",
		total.Substitutions, total.Deletions, total.Insertions, total.Hits)
	name := "wer"
	if charLevel {
		name = "cer"
	}
	fmt.Fprintf(&b, "\n%s=%.2f%%\n", name, rate*100)

	_, err := io.WriteString(w, b.String())
	return err
}

func isCorrect(ops []Op) bool {
	for _, op := range ops {
		if op.Kind != Hit {
			return false
		}
	}
	return true
}

func writeColumns(b *strings.Builder, ops []Op, sep string) {
	ref := []string{"REF:"}
	hyp := []string{"HYP:"}
	mark := []string{"    "}
	for _, op := range ops {
		width := max(utf8.RuneCountInString(op.Ref), utf8.RuneCountInString(op.Hyp), 1)
		r, h := op.Ref, op.Hyp
		switch op.Kind {
		case Deletion:
			h = strings.Repeat("*", width)
		case Insertion:
			r = strings.Repeat("*", width)
		}
		m := " "
		if op.Kind != Hit {
			m = string(op.Kind)
		}
		ref = append(ref, padLeft(r, width))
		hyp = append(hyp, padLeft(h, width))
		mark = append(mark, padLeft(m, width))
	}
	for _, row := range [][]string{ref, hyp, mark} {
		b.WriteString(strings.TrimRight(row[0]+" "+strings.Join(row[1:], sep), " "))
		b.WriteByte('\n')
	}
}

func padLeft(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}
