// Command compute-wer scores ASR predictions against references. Both
// arguments are corpus files, or literal utterances when neither is a file
// and at least one holds a space.
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

	"github.com/chaz8081/gostt-eval/internal/config"
	"github.com/chaz8081/gostt-eval/internal/report"
	"github.com/chaz8081/gostt-eval/internal/wer"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default: ~/.config/gostt-eval/config.yaml)")
	envFile := flag.String("env", ".env", "optional .env file with GOSTT_EVAL_* overrides")
	useIDs := flag.Bool("use-ids", true, "lines start with an utterance id")
	norm := flag.String("norm", "", "normalization language, with '+' or '++' for stronger folding")
	char := flag.Bool("char", false, "character error rate")
	alignment := flag.String("alignment", "", "write the alignment to this file, '-' for stdout")
	includeCorrect := flag.Bool("include-correct", false, "also show correct utterances in the alignment")
	wordsList := flag.String("words-list", "", "file of focus words")
	replacements := flag.String("replacements", "", "replacements for references and predictions")
	replacementsRef := flag.String("replacements-ref", "", "replacements for references only")
	replacementsPred := flag.String("replacements-pred", "", "replacements for predictions only")
	xlsx := flag.String("xlsx", "", "write a per-utterance diff workbook")
	jsonOut := flag.String("json", "", "save the report as JSON")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: compute-wer [flags] <references> <predictions>\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, source, err := config.LoadOrDefault(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := cfg.LoadEnv(*envFile); err != nil {
		log.Fatalf("config: %v", err)
	}
	ev := &cfg.Evaluate
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "use-ids":
			ev.UseIDs = *useIDs
		case "norm":
			ev.Normalization = *norm
		case "char":
			ev.CharacterLevel = *char
		case "alignment":
			ev.AlignmentFile = *alignment
		case "include-correct":
			ev.IncludeCorrect = *includeCorrect
		case "words-list":
			ev.WordsList = *wordsList
		case "replacements":
			ev.Replacements = *replacements
		case "replacements-ref":
			ev.ReplacementsRef = *replacementsRef
		case "replacements-pred":
			ev.ReplacementsPred = *replacementsPred
		case "xlsx":
			ev.XLSXFile = *xlsx
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config validation: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: config.ParseLogLevel(cfg.LogLevel),
	})))
	printBanner(cfg, source)

	refs, preds, err := loadInputs(flag.Arg(0), flag.Arg(1), ev.UseIDs)
	if err != nil {
		log.Fatalf("%v", err)
	}

	opts, listName, closeAlignment, err := buildOptions(ev)
	if err != nil {
		log.Fatalf("%v", err)
	}
	res, err := wer.ComputeCorpus(refs, preds, opts)
	closeAlignment()
	if err != nil {
		log.Fatalf("%v", err)
	}

	fmt.Println(report.Framed(report.SummaryLine(res, listName)))

	if *jsonOut != "" {
		if err := saveJSON(*jsonOut, res); err != nil {
			log.Fatalf("%v", err)
		}
	}
	if ev.XLSXFile != "" {
		if err := writeWorkbook(ev.XLSXFile, refs, preds, opts, res); err != nil {
			log.Fatalf("%v", err)
		}
		slog.Info("workbook written", "path", ev.XLSXFile)
	}
}

// loadInputs reads both corpora, or wraps two literal utterances.
func loadInputs(refArg, predArg string, useIDs bool) (refs, preds *wer.Corpus, err error) {
	refIsFile, predIsFile := isFile(refArg), isFile(predArg)
	if !refIsFile {
		switch {
		case predIsFile:
			return nil, nil, fmt.Errorf("%w: %s (but %s exists)", wer.ErrMissingFile, refArg, predArg)
		case !strings.Contains(refArg, " ") && !strings.Contains(predArg, " "):
			return nil, nil, fmt.Errorf("%w: %s", wer.ErrMissingFile, refArg)
		}
		return wer.FromTexts([]string{refArg}), wer.FromTexts([]string{predArg}), nil
	}
	if refs, err = wer.LoadCorpus(refArg, useIDs); err != nil {
		return nil, nil, err
	}
	if preds, err = wer.LoadCorpus(predArg, useIDs); err != nil {
		return nil, nil, err
	}
	return refs, preds, nil
}

func isFile(path string) bool {
	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}

// buildOptions loads the word list and replacement files and opens the
// alignment sink. The returned func closes the sink.
func buildOptions(ev *config.EvaluateConfig) (opts wer.Options, listName string, closer func(), err error) {
	closer = func() {}
	opts = wer.Options{
		Normalization:  ev.Normalization,
		CharacterLevel: ev.CharacterLevel,
		UsePercents:    ev.UsePercents,
		IncludeCorrect: ev.IncludeCorrect,
	}

	if ev.WordsList != "" {
		if opts.WordsList, err = wer.LoadWordList(ev.WordsList); err != nil {
			return opts, "", closer, err
		}
		listName = strings.TrimSuffix(filepath.Base(ev.WordsList), filepath.Ext(ev.WordsList))
	}

	for _, src := range []struct {
		path string
		dst  []*[]wer.Replacement
	}{
		{ev.ReplacementsRef, []*[]wer.Replacement{&opts.ReplacementsRef}},
		{ev.ReplacementsPred, []*[]wer.Replacement{&opts.ReplacementsPred}},
		{ev.Replacements, []*[]wer.Replacement{&opts.ReplacementsRef, &opts.ReplacementsPred}},
	} {
		if src.path == "" {
			continue
		}
		rules, err := wer.LoadReplacements(src.path)
		if err != nil {
			return opts, "", closer, err
		}
		for _, d := range src.dst {
			*d = append(*d, rules...)
		}
	}

	switch ev.AlignmentFile {
	case "":
	case "-":
		opts.Alignment = os.Stdout
	default:
		f, err := os.Create(ev.AlignmentFile)
		if err != nil {
			return opts, "", closer, fmt.Errorf("creating alignment file: %w", err)
		}
		opts.Alignment = f
		closer = func() { f.Close() }
	}
	return opts, listName, closer, nil
}

func saveJSON(path string, res wer.Report) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// writeWorkbook scores every common utterance on its own and exports the
// rows with the corpus report.
func writeWorkbook(path string, refs, preds *wer.Corpus, opts wer.Options, total wer.Report) error {
	opts.Alignment = nil
	opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	ids, r, p, err := wer.Intersect(refs, preds, opts.Logger)
	if err != nil {
		return err
	}
	rows := make([]report.Row, 0, len(ids))
	for i, id := range ids {
		res, err := wer.Compute([]string{r[i]}, []string{p[i]}, opts)
		if err != nil {
			return fmt.Errorf("scoring %s: %w", id, err)
		}
		rows = append(rows, report.Row{ID: id, Reference: r[i], Hypothesis: p[i], Report: res})
	}
	return report.WriteWorkbook(path, rows, total)
}

// printBanner displays the evaluation settings on stderr.
func printBanner(cfg *config.Config, source string) {
	ev := cfg.Evaluate
	norm := ev.Normalization
	if norm == "" {
		norm = "none"
	}
	metric := "WER"
	if ev.CharacterLevel {
		metric = "CER"
	}
	fmt.Fprintln(os.Stderr, "=== compute-wer ===")
	fmt.Fprintf(os.Stderr, "  Config:  %s\n", source)
	fmt.Fprintf(os.Stderr, "  Metric:  %s\n", metric)
	fmt.Fprintf(os.Stderr, "  Norm:    %s\n", norm)
	fmt.Fprintf(os.Stderr, "  IDs:     %v\n", ev.UseIDs)
	fmt.Fprintf(os.Stderr, "  Log:     %s\n", cfg.LogLevel)
	fmt.Fprintln(os.Stderr, "===================")
}
