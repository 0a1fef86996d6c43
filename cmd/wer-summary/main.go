// Command wer-summary aggregates saved compute-wer reports (JSON or YAML)
// and prints per-file averages and distribution statistics.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/chaz8081/gostt-eval/internal/config"
	"github.com/chaz8081/gostt-eval/internal/report"
	"github.com/chaz8081/gostt-eval/internal/wer"
)

// Summary is the machine-readable output for one input file.
type Summary struct {
	Name    string         `json:"name" yaml:"name"`
	Reports int            `json:"reports" yaml:"reports"`
	Stats   []report.Stats `json:"stats" yaml:"stats"`
}

func main() {
	configPath := flag.String("config", "", "path to config file (default: ~/.config/gostt-eval/config.yaml)")
	fields := flag.String("fields", "wer,del,ins,sub", "comma separated report fields to summarize")
	format := flag.String("format", "text", "output format: text, json or yaml")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: wer-summary [flags] <report>...\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, _, err := config.LoadOrDefault(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: config.ParseLogLevel(cfg.LogLevel),
	})))

	var summaries []Summary
	for _, path := range flag.Args() {
		s, err := summarize(path, strings.Split(*fields, ","))
		if err != nil {
			log.Fatalf("%v", err)
		}
		summaries = append(summaries, s)
	}
	if err := write(os.Stdout, *format, summaries); err != nil {
		log.Fatalf("%v", err)
	}
}

func summarize(path string, fields []string) (Summary, error) {
	reports, err := report.Load(path)
	if err != nil {
		return Summary{}, err
	}
	if err := report.Check(reports); err != nil {
		return Summary{}, fmt.Errorf("%s: %w", path, err)
	}
	s := Summary{
		Name:    strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Reports: len(reports),
	}
	for _, f := range fields {
		st, err := report.Summarize(reports, strings.TrimSpace(f))
		if err != nil {
			return Summary{}, fmt.Errorf("%s: %w", path, err)
		}
		s.Stats = append(s.Stats, st)
	}
	slog.Debug("summarized", "file", path, "reports", len(reports))
	return s, nil
}

func write(w io.Writer, format string, summaries []Summary) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(summaries)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(summaries)
	case "text":
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	for _, s := range summaries {
		fmt.Fprintf(w, "== %s (%d reports)\n", s.Name, s.Reports)
		if avg, ok := averageReport(s); ok {
			fmt.Fprintln(w, report.Framed(report.SummaryLine(avg, "")))
		}
		for _, st := range s.Stats {
			fmt.Fprintf(w, "  %-8s mean %.4f  std %.4f  min %.4f  max %.4f  p50 %.4f  p90 %.4f\n",
				st.Field, st.Mean, st.StdDev, st.Min, st.Max, st.P50, st.P90)
		}
	}
	return nil
}

// averageReport rebuilds a report of mean rates when the four rate fields
// were summarized.
func averageReport(s Summary) (wer.Report, bool) {
	var r wer.Report
	found := 0
	for _, st := range s.Stats {
		switch st.Field {
		case "wer", "cer":
			r.WER = st.Mean
			r.CharacterLevel = st.Field == "cer"
		case "del":
			r.Del = st.Mean
		case "ins":
			r.Ins = st.Mean
		case "sub":
			r.Sub = st.Mean
		default:
			continue
		}
		found++
	}
	return r, found == 4
}
