package report

import (
	"fmt"
	"strconv"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/xuri/excelize/v2"

	"github.com/chaz8081/gostt-eval/internal/wer"
)

const (
	utteranceSheet = "utterances"
	summarySheet   = "summary"
)

// Row is one scored utterance.
type Row struct {
	ID         string
	Reference  string
	Hypothesis string
	Report     wer.Report
}

// WriteWorkbook saves an xlsx file with one row per utterance, the
// reference/hypothesis difference highlighted, and a summary sheet.
func WriteWorkbook(path string, rows []Row, total wer.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", utteranceSheet); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}
	style, err := f.NewStyle(&excelize.Style{Font: font("#000000")})
	if err != nil {
		return fmt.Errorf("creating style: %w", err)
	}
	wrap, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
		Font:      font("#000000"),
	})
	if err != nil {
		return fmt.Errorf("creating style: %w", err)
	}
	for _, w := range []struct {
		from, to string
		width    float64
	}{{"A", "A", 14}, {"B", "C", 9}, {"D", "F", 60}} {
		if err := f.SetColWidth(utteranceSheet, w.from, w.to, w.width); err != nil {
			return fmt.Errorf("setting column width: %w", err)
		}
	}

	header := []any{"id", total.Metric(), "count", "reference", "hypothesis", "diff"}
	if err := f.SetSheetRow(utteranceSheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	dmp := diffmatchpatch.New()
	for i, row := range rows {
		line := strconv.Itoa(i + 2)
		values := []any{row.ID, row.Report.WER, row.Report.Count, row.Reference, row.Hypothesis}
		if err := f.SetSheetRow(utteranceSheet, "A"+line, &values); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
		diffs := dmp.DiffMain(row.Reference, row.Hypothesis, false)
		diffs = dmp.DiffCleanupSemantic(diffs)
		if err := f.SetCellRichText(utteranceSheet, "F"+line, diffRuns(diffs)); err != nil {
			return fmt.Errorf("writing diff %d: %w", i, err)
		}
	}
	last := strconv.Itoa(len(rows) + 1)
	if err := f.SetCellStyle(utteranceSheet, "A1", "C"+last, style); err != nil {
		return fmt.Errorf("styling: %w", err)
	}
	if err := f.SetCellStyle(utteranceSheet, "D1", "E"+last, wrap); err != nil {
		return fmt.Errorf("styling: %w", err)
	}

	if err := writeSummary(f, rows, total); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

func writeSummary(f *excelize.File, rows []Row, total wer.Report) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("creating summary sheet: %w", err)
	}
	lines := [][]any{
		{"metric", total.Metric()},
		{"rate", total.WER},
		{"deletions", total.Del},
		{"insertions", total.Ins},
		{"substitutions", total.Sub},
		{"count", total.Count},
		{"utterances", len(rows)},
	}
	if total.WordErr != nil {
		lines = append(lines, []any{"word_err", *total.WordErr})
	}
	if len(rows) > 0 {
		reports := make([]wer.Report, len(rows))
		for i, r := range rows {
			reports[i] = r.Report
		}
		s, err := Summarize(reports, "wer")
		if err != nil {
			return err
		}
		lines = append(lines,
			[]any{"utterance mean", s.Mean},
			[]any{"utterance std", s.StdDev},
			[]any{"utterance min", s.Min},
			[]any{"utterance max", s.Max},
			[]any{"utterance p50", s.P50},
			[]any{"utterance p90", s.P90},
		)
	}
	for i, l := range lines {
		if err := f.SetSheetRow(summarySheet, "A"+strconv.Itoa(i+1), &l); err != nil {
			return fmt.Errorf("writing summary: %w", err)
		}
	}
	if err := f.SetColWidth(summarySheet, "A", "A", 18); err != nil {
		return fmt.Errorf("setting column width: %w", err)
	}
	return nil
}

func font(color string) *excelize.Font {
	return &excelize.Font{Size: 12, Family: "Calibri", Color: color}
}

// diffRuns colours deleted reference text red and inserted hypothesis text
// green.
func diffRuns(diffs []diffmatchpatch.Diff) []excelize.RichTextRun {
	runs := make([]excelize.RichTextRun, 0, len(diffs))
	for _, d := range diffs {
		color := "#000000"
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			color = "#FF0000"
		case diffmatchpatch.DiffInsert:
			color = "#008000"
		}
		runs = append(runs, excelize.RichTextRun{Text: d.Text, Font: font(color)})
	}
	return runs
}
