// Package report formats, aggregates and exports WER/CER reports.
package report

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/chaz8081/gostt-eval/internal/wer"
)

var (
	ErrUnknownField = errors.New("report: unknown field")
	ErrNoReports    = errors.New("report: no reports")
	ErrInvalid      = errors.New("report: invalid report")
)

// SummaryLine renders r as a one-line percentage summary. listName labels
// the focus-word rate when r carries one.
func SummaryLine(r wer.Report, listName string) string {
	scale := 100.0
	if r.Percents {
		scale = 1
	}
	line := fmt.Sprintf(" %s: %.2f %% [ deletions: %.2f %% | insertions: %.2f %% | substitutions: %.2f %% ](count: %d)",
		r.Metric(), r.WER*scale, r.Del*scale, r.Ins*scale, r.Sub*scale, r.Count)
	if r.WordErr != nil {
		line = fmt.Sprintf(" %s err: %.2f %% |", listName, *r.WordErr*100) + line
	}
	return line
}

// Framed puts line between two dash rules of its own width.
func Framed(line string) string {
	rule := strings.Repeat("-", len([]rune(line)))
	return rule + "\n" + line + "\n" + rule
}

// Field returns the named rate of r: wer, cer, del, ins, sub, count or
// word_err.
func Field(r wer.Report, name string) (float64, error) {
	switch name {
	case "wer", "cer":
		return r.WER, nil
	case "del":
		return r.Del, nil
	case "ins":
		return r.Ins, nil
	case "sub":
		return r.Sub, nil
	case "count":
		return float64(r.Count), nil
	case "word_err":
		if r.WordErr == nil {
			return 0, fmt.Errorf("%w: report has no word_err", ErrUnknownField)
		}
		return *r.WordErr, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// Values collects one field across reports.
func Values(reports []wer.Report, field string) ([]float64, error) {
	out := make([]float64, len(reports))
	for i, r := range reports {
		v, err := Field(r, field)
		if err != nil {
			return nil, fmt.Errorf("report %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

// Average is the mean of one field across reports.
func Average(reports []wer.Report, field string) (float64, error) {
	if len(reports) == 0 {
		return 0, ErrNoReports
	}
	v, err := Values(reports, field)
	if err != nil {
		return 0, err
	}
	return stat.Mean(v, nil), nil
}

// Stats describes the distribution of one field.
type Stats struct {
	Field  string  `json:"field" yaml:"field"`
	N      int     `json:"n" yaml:"n"`
	Mean   float64 `json:"mean" yaml:"mean"`
	StdDev float64 `json:"std" yaml:"std"`
	Min    float64 `json:"min" yaml:"min"`
	Max    float64 `json:"max" yaml:"max"`
	P50    float64 `json:"p50" yaml:"p50"`
	P90    float64 `json:"p90" yaml:"p90"`
}

// Summarize computes Stats for one field. StdDev is zero for a single
// report.
func Summarize(reports []wer.Report, field string) (Stats, error) {
	if len(reports) == 0 {
		return Stats{}, ErrNoReports
	}
	v, err := Values(reports, field)
	if err != nil {
		return Stats{}, err
	}
	slices.Sort(v)
	s := Stats{
		Field: field,
		N:     len(v),
		Mean:  stat.Mean(v, nil),
		Min:   v[0],
		Max:   v[len(v)-1],
		P50:   stat.Quantile(0.5, stat.Empirical, v, nil),
		P90:   stat.Quantile(0.9, stat.Empirical, v, nil),
	}
	if len(v) > 1 {
		s.StdDev = stat.StdDev(v, nil)
	}
	return s, nil
}

// Check verifies that every report has finite rates and that the error
// rate is the sum of its parts.
func Check(reports []wer.Report) error {
	if len(reports) == 0 {
		return ErrNoReports
	}
	for i, r := range reports {
		for _, v := range []float64{r.WER, r.Del, r.Ins, r.Sub} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: report %d has a non-finite rate", ErrInvalid, i)
			}
		}
		if math.Abs(r.WER-(r.Del+r.Ins+r.Sub)) > 1e-4*max(1, math.Abs(r.WER)) {
			return fmt.Errorf("%w: report %d: %s %.4f is not del+ins+sub %.4f",
				ErrInvalid, i, strings.ToLower(r.Metric()), r.WER, r.Del+r.Ins+r.Sub)
		}
	}
	return nil
}
