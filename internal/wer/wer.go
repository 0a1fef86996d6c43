// Package wer scores ASR hypotheses against references with word or
// character error rates computed from a Levenshtein alignment.
package wer

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/chaz8081/gostt-eval/internal/textnorm"
)

// placeholder stands in for an empty reference, which cannot be aligned.
const placeholder = "A"

// Options tunes Compute. The zero value scores raw text at word level as
// fractions of one.
type Options struct {
	// Normalization selects the language normalizer ("fr", "en+", "ar++").
	// Empty disables normalization.
	Normalization  string
	CharacterLevel bool
	UsePercents    bool

	// Alignment receives a rendering of the alignment when set.
	Alignment      io.Writer
	IncludeCorrect bool

	// WordsList enables the focus-word error rate.
	WordsList        []string
	ReplacementsRef  []Replacement
	ReplacementsPred []Replacement

	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// Report is the result of one evaluation. Rates are fractions of Count, or
// percentages with UsePercents.
type Report struct {
	WER   float64
	Del   float64
	Ins   float64
	Sub   float64
	Count int

	// Alignment holds the rendering written to Options.Alignment.
	Alignment string
	// WordErr is the focus-word error rate. It is nil without a word list
	// or when no reference holds a focus word.
	WordErr *float64
	// CharacterLevel marks a CER report. It selects the "cer" JSON key.
	CharacterLevel bool
	// Percents is set when rates are scaled to 100.
	Percents bool
}

type reportJSON struct {
	WER       *float64 `json:"wer,omitempty"`
	CER       *float64 `json:"cer,omitempty"`
	Del       float64  `json:"del"`
	Ins       float64  `json:"ins"`
	Sub       float64  `json:"sub"`
	Count     int      `json:"count"`
	Alignment string   `json:"alignment,omitempty"`
	WordErr   *float64 `json:"word_err,omitempty"`
}

func (r Report) MarshalJSON() ([]byte, error) {
	out := reportJSON{Del: r.Del, Ins: r.Ins, Sub: r.Sub, Count: r.Count, Alignment: r.Alignment, WordErr: r.WordErr}
	rate := r.WER
	if r.CharacterLevel {
		out.CER = &rate
	} else {
		out.WER = &rate
	}
	return json.Marshal(out)
}

func (r *Report) UnmarshalJSON(data []byte) error {
	var in reportJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*r = Report{Del: in.Del, Ins: in.Ins, Sub: in.Sub, Count: in.Count, Alignment: in.Alignment, WordErr: in.WordErr}
	switch {
	case in.WER != nil:
		r.WER = *in.WER
	case in.CER != nil:
		r.WER, r.CharacterLevel = *in.CER, true
	default:
		return fmt.Errorf("%w: report has neither wer nor cer", ErrInput)
	}
	return nil
}

// Metric returns "WER" or "CER".
func (r Report) Metric() string {
	if r.CharacterLevel {
		return "CER"
	}
	return "WER"
}

// Compute scores preds against refs, paired by position.
func Compute(refs, preds []string, opts Options) (Report, error) {
	switch {
	case len(refs) == 0:
		return Report{}, ErrEmptyReference
	case len(preds) == 0:
		return Report{}, ErrEmptyPrediction
	case len(refs) != len(preds):
		return Report{}, fmt.Errorf("%w: %d references, %d predictions", ErrLengthMismatch, len(refs), len(preds))
	}
	return compute(refs, preds, opts)
}

// ComputeCorpus scores the entries of refs and preds that share an id.
func ComputeCorpus(refs, preds *Corpus, opts Options) (Report, error) {
	_, r, p, err := Intersect(refs, preds, opts.logger())
	if err != nil {
		return Report{}, err
	}
	return compute(r, p, opts)
}

// ComputeMaps scores id-keyed utterances.
func ComputeMaps(refs, preds map[string]string, opts Options) (Report, error) {
	return ComputeCorpus(FromMap(refs), FromMap(preds), opts)
}

// ComputeFiles scores two corpus files. See ReadCorpus for the format.
func ComputeFiles(refPath, predPath string, useIDs bool, opts Options) (Report, error) {
	refs, err := LoadCorpus(refPath, useIDs)
	if err != nil {
		return Report{}, err
	}
	preds, err := LoadCorpus(predPath, useIDs)
	if err != nil {
		return Report{}, err
	}
	return ComputeCorpus(refs, preds, opts)
}

func compute(refs, preds []string, opts Options) (Report, error) {
	log := opts.logger()
	words := opts.WordsList

	refs = replaceEach(refs, opts.ReplacementsRef)
	preds = replaceEach(preds, opts.ReplacementsPred)
	words = replaceEach(words, opts.ReplacementsRef)

	repRef, repPred := opts.ReplacementsRef, opts.ReplacementsPred
	if opts.Normalization != "" {
		tn, err := newTextNormalizer(opts.Normalization, log)
		if err != nil {
			return Report{}, err
		}
		if refs, err = tn.normalizeAll(refs, "reference"); err != nil {
			return Report{}, err
		}
		if preds, err = tn.normalizeAll(preds, "prediction"); err != nil {
			return Report{}, err
		}
		if words, err = tn.normalizeAll(words, "focus word"); err != nil {
			return Report{}, err
		}
		if repRef, err = tn.normalizeRules(repRef); err != nil {
			return Report{}, err
		}
		if repPred, err = tn.normalizeRules(repPred); err != nil {
			return Report{}, err
		}
		words = dropEmpty(words)
		refs = replaceEach(refs, repRef)
		preds = replaceEach(preds, repPred)
		words = replaceEach(words, repRef)
	}

	refs, preds, bias := fillEmptyReferences(refs, preds, opts.CharacterLevel)

	var aligned [][]Op
	var total Counts
	render := opts.Alignment != nil
	if opts.CharacterLevel {
		ref, hyp := corpusChars(refs), corpusChars(preds)
		if render {
			ops, c := Align(ref, hyp)
			aligned, total = [][]Op{ops}, c
		} else {
			total = countOps(ref, hyp)
		}
	} else {
		for i := range refs {
			ops, c := Align(strings.Fields(refs[i]), strings.Fields(preds[i]))
			total.add(c)
			if render {
				aligned = append(aligned, ops)
			}
		}
	}
	total.Hits -= bias

	rep := score(total, opts.UsePercents)
	rep.CharacterLevel = opts.CharacterLevel
	rep.Percents = opts.UsePercents
	if len(words) > 0 {
		rep.WordErr = focusWordError(refs, preds, words)
	}
	if render {
		var b strings.Builder
		scale := 1.0
		if opts.UsePercents {
			scale = 100
		}
		if err := renderAlignment(&b, aligned, total, rep.WER/scale, opts.CharacterLevel, opts.IncludeCorrect); err != nil {
			return Report{}, err
		}
		rep.Alignment = b.String()
		if _, err := io.WriteString(opts.Alignment, rep.Alignment); err != nil {
			return Report{}, fmt.Errorf("writing alignment: %w", err)
		}
	}
	log.Debug("scored", "metric", rep.Metric(), "utterances", len(refs), "count", rep.Count,
		"hits", total.Hits, "errors", total.Errors(), "bias", bias)
	return rep, nil
}

// fillEmptyReferences swaps every blank reference for the placeholder and
// prepends it to the matching prediction. bias is the number of hits this
// adds.
func fillEmptyReferences(refs, preds []string, charLevel bool) (r, p []string, bias int) {
	r, p = refs, preds
	sep := " "
	if charLevel {
		sep = ""
	}
	for i := range refs {
		if strings.TrimSpace(refs[i]) != "" {
			continue
		}
		if bias == 0 {
			r, p = append([]string(nil), refs...), append([]string(nil), preds...)
		}
		r[i] = placeholder
		p[i] = placeholder + sep + preds[i]
		bias++
	}
	return r, p, bias
}

// corpusChars joins all utterances into one character sequence. Each
// utterance is trimmed and its spaces squeezed first.
func corpusChars(texts []string) []string {
	var out []string
	for _, t := range texts {
		for _, r := range textnorm.CollapseWhitespace(t) {
			out = append(out, string(r))
		}
	}
	return out
}

func score(c Counts, percents bool) Report {
	scale := 1.0
	if percents {
		scale = 100
	}
	count := c.Hits + c.Deletions + c.Substitutions
	if count == 0 {
		r := Report{}
		if c.Insertions > 0 {
			r.WER, r.Ins = scale, scale
		}
		return r
	}
	f := float64(count)
	return Report{
		WER:   float64(c.Errors()) / f * scale,
		Del:   float64(c.Deletions) / f * scale,
		Ins:   float64(c.Insertions) / f * scale,
		Sub:   float64(c.Substitutions) / f * scale,
		Count: count,
	}
}

// focusWordError counts references holding a focus word and how many of
// their predictions recover that same word. The first matching word of the
// list decides for each reference. The rate is nil when no reference holds
// a focus word.
func focusWordError(refs, preds, words []string) *float64 {
	var total, correct int
	for i, ref := range refs {
		for _, w := range words {
			if !textnorm.ContainsWholeWord(ref, w) {
				continue
			}
			total++
			if textnorm.ContainsWholeWord(preds[i], w) {
				correct++
			}
			break
		}
	}
	if total == 0 {
		return nil
	}
	rate := float64(total-correct) / float64(total)
	return &rate
}

func dropEmpty(words []string) []string {
	out := words[:0:0]
	for _, w := range words {
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}
