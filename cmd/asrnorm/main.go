// Command asrnorm normalizes transcripts for ASR evaluation. The argument
// is either a file, normalized line by line, or the text itself.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/chaz8081/gostt-eval/internal/config"
	"github.com/chaz8081/gostt-eval/internal/textnorm"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default: ~/.config/gostt-eval/config.yaml)")
	envFile := flag.String("env", ".env", "optional .env file with GOSTT_EVAL_* overrides")
	lang := flag.String("lang", "", "language code (fr, en, es, ar, ru), overrides normalize.language")
	keepPunc := flag.Bool("keep-punc", false, "keep punctuation")
	parenthesis := flag.Bool("extract-parenthesis", false, "move parenthesised text to its own line")
	suspicious := flag.Bool("remove-suspicious", false, "drop entries with unusual characters")
	noSafety := flag.Bool("no-safety", false, "do not fail on digits left after conversion")
	buckwalter := flag.Bool("buckwalter", false, "transliterate Arabic output to Buckwalter")
	output := flag.String("o", "", "output file (default: stdout)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: asrnorm [flags] <file | text...>\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
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
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "lang":
			cfg.Normalize.Language = *lang
		case "keep-punc":
			cfg.Normalize.KeepPunctuation = *keepPunc
		case "extract-parenthesis":
			cfg.Normalize.ExtractParenthesis = *parenthesis
		case "remove-suspicious":
			cfg.Normalize.RemoveSuspiciousEntries = *suspicious
		case "no-safety":
			cfg.Normalize.SafetyChecks = !*noSafety
		case "buckwalter":
			cfg.Normalize.Buckwalter = *buckwalter
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config validation: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: config.ParseLogLevel(cfg.LogLevel),
	})))
	slog.Debug("config loaded", "source", source, "language", cfg.Normalize.Language)

	tc := cfg.Normalize.TextConfig()
	closers, err := attachSinks(&tc, cfg.Normalize)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer closeAll(closers)

	n, err := textnorm.New(cfg.Normalize.Language, tc)
	if err != nil {
		log.Fatalf("normalizer: %v", err)
	}

	out := io.Writer(os.Stdout)
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatalf("creating output: %v", err)
		}
		defer f.Close()
		out = f
	}
	w := bufio.NewWriter(out)
	defer w.Flush()

	if err := run(n, flag.Args(), w); err != nil {
		w.Flush()
		closeAll(closers)
		log.Fatalf("%v", err)
	}
}

// run normalizes the file named by a single argument line by line, or the
// arguments joined by spaces.
func run(n *textnorm.Normalizer, args []string, w io.Writer) error {
	if len(args) == 1 {
		if st, err := os.Stat(args[0]); err == nil && !st.IsDir() {
			return normalizeFile(n, args[0], w)
		}
	}
	out, err := n.Normalize(strings.Join(args, " "))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

func normalizeFile(n *textnorm.Normalizer, path string, w io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64<<10), 16<<20)
	for line := 1; sc.Scan(); line++ {
		out, err := n.Normalize(sc.Text())
		if err != nil {
			return fmt.Errorf("%s:%d: %w", path, line, err)
		}
		if _, err := fmt.Fprintln(w, out); err != nil {
			return err
		}
	}
	return sc.Err()
}

// attachSinks opens the acronym and special character dump files named in
// the config.
func attachSinks(tc *textnorm.Config, nc config.NormalizeConfig) ([]io.Closer, error) {
	var closers []io.Closer
	if nc.AcronymsFile != "" {
		f, err := os.Create(nc.AcronymsFile)
		if err != nil {
			return nil, fmt.Errorf("creating acronyms file: %w", err)
		}
		closers = append(closers, f)
		tc.Acronyms = textnorm.NewSeen(f)
	}
	if nc.SpecialCharsFile != "" {
		f, err := os.Create(nc.SpecialCharsFile)
		if err != nil {
			closeAll(closers)
			return nil, fmt.Errorf("creating special characters file: %w", err)
		}
		closers = append(closers, f)
		tc.SpecialChars = textnorm.NewCharSeen(f)
	}
	return closers, nil
}

func closeAll(closers []io.Closer) {
	for _, c := range closers {
		c.Close()
	}
}
