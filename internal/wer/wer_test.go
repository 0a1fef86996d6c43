package wer

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/chaz8081/gostt-eval/internal/textnorm"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 0.001 }

func TestAlign(t *testing.T) {
	tests := []struct {
		name       string
		reference  string
		hypothesis string
		wantSubs   int
		wantIns    int
		wantDels   int
		wantHits   int
	}{
		{
			name:       "identical",
			reference:  "the cat sat on the mat",
			hypothesis: "the cat sat on the mat",
			wantHits:   6,
		},
		{
			name:       "one_substitution",
			reference:  "the cat sat on the mat",
			hypothesis: "the cat sit on the mat",
			wantSubs:   1,
			wantHits:   5,
		},
		{
			name:       "one_insertion",
			reference:  "the cat sat",
			hypothesis: "the big cat sat",
			wantIns:    1,
			wantHits:   3,
		},
		{
			name:       "one_deletion",
			reference:  "the cat sat on the mat",
			hypothesis: "the cat on the mat",
			wantDels:   1,
			wantHits:   5,
		},
		{
			name:       "empty_hypothesis",
			reference:  "some words",
			hypothesis: "",
			wantDels:   2,
		},
		{
			name:       "empty_reference",
			reference:  "",
			hypothesis: "some words",
			wantIns:    2,
		},
		{
			name:       "completely_different",
			reference:  "the cat sat",
			hypothesis: "a dog ran",
			wantSubs:   3,
		},
		{
			name:       "mixed_errors",
			reference:  "the quick brown fox jumps over the lazy dog",
			hypothesis: "a quick brown cat jumps the lazy dog",
			// sub: the->a, fox->cat; del: over
			wantSubs: 2,
			wantDels: 1,
			wantHits: 6,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, hyp := strings.Fields(tt.reference), strings.Fields(tt.hypothesis)
			ops, got := Align(ref, hyp)

			want := Counts{Hits: tt.wantHits, Substitutions: tt.wantSubs, Deletions: tt.wantDels, Insertions: tt.wantIns}
			if got != want {
				t.Errorf("Align counts = %+v, want %+v", got, want)
			}
			if c := countOps(ref, hyp); c != got {
				t.Errorf("countOps = %+v, Align = %+v", c, got)
			}

			var refBack, hypBack []string
			for _, op := range ops {
				if op.Kind != Insertion {
					refBack = append(refBack, op.Ref)
				}
				if op.Kind != Deletion {
					hypBack = append(hypBack, op.Hyp)
				}
			}
			if !slices.Equal(refBack, ref) || !slices.Equal(hypBack, hyp) {
				t.Errorf("ops do not cover the inputs: ref %q hyp %q", refBack, hypBack)
			}
		})
	}
}

func TestCountOpsMatchesAlignOnCharacters(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"bonjour le monde", "bonjour monde"},
		{"abcabc", "cbacba"},
		{"é à ç", "e a c"},
		{"", "abc"},
		{"abc", ""},
	}
	for _, p := range pairs {
		ref, hyp := corpusChars([]string{p[0]}), corpusChars([]string{p[1]})
		_, want := Align(ref, hyp)
		if got := countOps(ref, hyp); got != want {
			t.Errorf("%q vs %q: countOps = %+v, Align = %+v", p[0], p[1], got, want)
		}
	}
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name      string
		refs      []string
		preds     []string
		opts      Options
		wantWER   float64
		wantDel   float64
		wantIns   float64
		wantSub   float64
		wantCount int
	}{
		{
			name:      "deletion",
			refs:      []string{"bonjour le monde"},
			preds:     []string{"bonjour monde"},
			wantWER:   1.0 / 3.0,
			wantDel:   1.0 / 3.0,
			wantCount: 3,
		},
		{
			name:      "percents",
			refs:      []string{"bonjour le monde"},
			preds:     []string{"bonjour monde"},
			opts:      Options{UsePercents: true},
			wantWER:   100.0 / 3.0,
			wantDel:   100.0 / 3.0,
			wantCount: 3,
		},
		{
			name:      "empty_reference_is_bias_corrected",
			refs:      []string{"", "a b"},
			preds:     []string{"x", "a b"},
			wantWER:   0.5,
			wantIns:   0.5,
			wantCount: 2,
		},
		{
			name:    "only_empty_references_with_insertions",
			refs:    []string{""},
			preds:   []string{"some words"},
			wantWER: 1,
			wantIns: 1,
		},
		{
			name:  "only_empty_references_and_predictions",
			refs:  []string{" ", ""},
			preds: []string{"", ""},
		},
		{
			name:      "summed_over_utterances",
			refs:      []string{"the cat sat", "on the mat"},
			preds:     []string{"the cat", "on a mat"},
			wantWER:   2.0 / 6.0,
			wantDel:   1.0 / 6.0,
			wantSub:   1.0 / 6.0,
			wantCount: 6,
		},
		{
			name:      "character_level",
			refs:      []string{"abc", "de"},
			preds:     []string{"abd", "de"},
			opts:      Options{CharacterLevel: true},
			wantWER:   0.2,
			wantSub:   0.2,
			wantCount: 5,
		},
		{
			name:      "character_level_counts_spaces",
			refs:      []string{"a  b "},
			preds:     []string{"ab"},
			opts:      Options{CharacterLevel: true},
			wantWER:   1.0 / 3.0,
			wantDel:   1.0 / 3.0,
			wantCount: 3,
		},
		{
			name:    "character_level_empty_reference",
			refs:    []string{""},
			preds:   []string{"xy"},
			opts:    Options{CharacterLevel: true},
			wantWER: 1,
			wantIns: 1,
		},
		{
			name:  "replacements_before_scoring",
			refs:  []string{"il a dit ok"},
			preds: []string{"il a dit okay"},
			opts:  Options{ReplacementsRef: []Replacement{{From: "ok", To: "okay"}}},
			// 4 hits
			wantCount: 4,
		},
		{
			name:      "replacements_are_whole_word",
			refs:      []string{"un okapi"},
			preds:     []string{"un okayapi"},
			opts:      Options{ReplacementsRef: []Replacement{{From: "ok", To: "okay"}}},
			wantWER:   0.5,
			wantSub:   0.5,
			wantCount: 2,
		},
		{
			name:      "normalized",
			refs:      []string{"Il a 3 chats."},
			preds:     []string{"il a trois chats"},
			opts:      Options{Normalization: "fr"},
			wantCount: 4,
		},
		{
			name:      "french_articles_folded",
			refs:      []string{"une pomme"},
			preds:     []string{"un pomme"},
			opts:      Options{Normalization: "fr"},
			wantCount: 2,
		},
		{
			name:      "strong_normalization",
			refs:      []string{"l'homme"},
			preds:     []string{"l homme"},
			opts:      Options{Normalization: "fr+"},
			wantCount: 2,
		},
		{
			name:      "very_strong_normalization",
			refs:      []string{"les chats"},
			preds:     []string{"le chat"},
			opts:      Options{Normalization: "fr++"},
			wantCount: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compute(tt.refs, tt.preds, tt.opts)
			if err != nil {
				t.Fatalf("Compute() error: %v", err)
			}
			if !approx(got.WER, tt.wantWER) {
				t.Errorf("WER = %f, want %f", got.WER, tt.wantWER)
			}
			if !approx(got.Del, tt.wantDel) {
				t.Errorf("Del = %f, want %f", got.Del, tt.wantDel)
			}
			if !approx(got.Ins, tt.wantIns) {
				t.Errorf("Ins = %f, want %f", got.Ins, tt.wantIns)
			}
			if !approx(got.Sub, tt.wantSub) {
				t.Errorf("Sub = %f, want %f", got.Sub, tt.wantSub)
			}
			if got.Count != tt.wantCount {
				t.Errorf("Count = %d, want %d", got.Count, tt.wantCount)
			}
			if got.CharacterLevel != tt.opts.CharacterLevel {
				t.Errorf("CharacterLevel = %v", got.CharacterLevel)
			}
		})
	}
}

func TestComputeDoesNotMutateInputs(t *testing.T) {
	refs := []string{"", "a b"}
	preds := []string{"x", "a b"}
	if _, err := Compute(refs, preds, Options{}); err != nil {
		t.Fatal(err)
	}
	if refs[0] != "" || preds[0] != "x" {
		t.Errorf("inputs modified: %q %q", refs, preds)
	}
}

func TestComputeErrors(t *testing.T) {
	tests := []struct {
		name  string
		refs  []string
		preds []string
		opts  Options
		want  error
	}{
		{"empty_reference", nil, []string{"a"}, Options{}, ErrEmptyReference},
		{"empty_prediction", []string{"a"}, nil, Options{}, ErrEmptyPrediction},
		{"length_mismatch", []string{"a", "b"}, []string{"a"}, Options{}, ErrLengthMismatch},
		{"unknown_language", []string{"a"}, []string{"a"}, Options{Normalization: "xx+"}, textnorm.ErrUnsupportedLanguage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compute(tt.refs, tt.preds, tt.opts)
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
		})
	}

	_, err := Compute(nil, nil, Options{})
	if !errors.Is(err, ErrInput) {
		t.Errorf("error %v does not match ErrInput", err)
	}
}

func TestComputeMaps(t *testing.T) {
	var logs bytes.Buffer
	opts := Options{Logger: slog.New(slog.NewTextHandler(&logs, nil))}

	got, err := ComputeMaps(
		map[string]string{"a": "hello", "b": "world"},
		map[string]string{"a": "hello"},
		opts,
	)
	if err != nil {
		t.Fatalf("ComputeMaps() error: %v", err)
	}
	if got.Count != 1 || got.WER != 0 {
		t.Errorf("got %+v, want count 1 and wer 0", got)
	}
	if !strings.Contains(logs.String(), "ids in reference and/or prediction are missing or different") {
		t.Errorf("missing overlap warning, logs: %s", logs.String())
	}

	tests := []struct {
		name  string
		refs  map[string]string
		preds map[string]string
		want  error
	}{
		{"no_common_ids", map[string]string{"a": "x"}, map[string]string{"b": "x"}, ErrNoCommonIDs},
		{"empty_reference", map[string]string{}, map[string]string{"b": "x"}, ErrEmptyReference},
		{"empty_prediction", map[string]string{"a": "x"}, nil, ErrEmptyPrediction},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeMaps(tt.refs, tt.preds, opts)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestComputeFiles(t *testing.T) {
	tests := []struct {
		name      string
		ref, hyp  string
		useIDs    bool
		wantWER   float64
		wantCount int
	}{
		{"positional", "ref.txt", "hyp.txt", false, 1.0 / 6.0, 6},
		{"ids", "ref_ids.txt", "hyp_ids.txt", true, 2.0 / 6.0, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeFiles(filepath.Join("testdata", tt.ref), filepath.Join("testdata", tt.hyp), tt.useIDs, Options{})
			if err != nil {
				t.Fatalf("ComputeFiles() error: %v", err)
			}
			if !approx(got.WER, tt.wantWER) || got.Count != tt.wantCount {
				t.Errorf("got wer %f count %d, want %f %d", got.WER, got.Count, tt.wantWER, tt.wantCount)
			}
		})
	}

	_, err := ComputeFiles(filepath.Join("testdata", "ref.txt"), filepath.Join("testdata", "nope.txt"), false, Options{})
	if !errors.Is(err, ErrMissingFile) {
		t.Errorf("error = %v, want ErrMissingFile", err)
	}
}

func TestReadCorpus(t *testing.T) {
	c, err := ReadCorpus(strings.NewReader("b  deux\tmots\na\n\nb deux mots\n"), true)
	if err != nil {
		t.Fatalf("ReadCorpus() error: %v", err)
	}
	if want := []string{"b", "a"}; !slices.Equal(c.IDs(), want) {
		t.Errorf("IDs() = %q, want %q", c.IDs(), want)
	}
	if got, _ := c.Text("b"); got != "deux mots" {
		t.Errorf("Text(b) = %q", got)
	}
	if got, ok := c.Text("a"); !ok || got != "" {
		t.Errorf("Text(a) = %q, %v", got, ok)
	}

	c, err = ReadCorpus(strings.NewReader("one\n\n  two  \n"), false)
	if err != nil {
		t.Fatalf("ReadCorpus() error: %v", err)
	}
	if want := []string{"one", "", "two"}; !slices.Equal(c.Texts(), want) {
		t.Errorf("Texts() = %q, want %q", c.Texts(), want)
	}

	_, err = LoadCorpus(filepath.Join("testdata", "dup_ids.txt"), true)
	if !errors.Is(err, ErrDuplicateID) {
		t.Errorf("error = %v, want ErrDuplicateID", err)
	}
}

func TestFromMapIsSorted(t *testing.T) {
	c := FromMap(map[string]string{"c": "3", "a": "1", "b": "2"})
	if want := []string{"1", "2", "3"}; !slices.Equal(c.Texts(), want) {
		t.Errorf("Texts() = %q, want %q", c.Texts(), want)
	}
}

func TestLoadReplacements(t *testing.T) {
	got, err := LoadReplacements(filepath.Join("testdata", "replacements.txt"))
	if err != nil {
		t.Fatalf("LoadReplacements() error: %v", err)
	}
	want := []Replacement{{From: "ok", To: "okay"}, {From: "svp", To: "s il vous plait"}}
	if !slices.Equal(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}

	_, err = LoadReplacements(filepath.Join("testdata", "replacements_bad.txt"))
	if !errors.Is(err, ErrMalformedLine) || !errors.Is(err, ErrInput) {
		t.Errorf("error = %v, want ErrMalformedLine", err)
	}
}

func TestLoadWordList(t *testing.T) {
	got, err := LoadWordList(filepath.Join("testdata", "words.txt"))
	if err != nil {
		t.Fatalf("LoadWordList() error: %v", err)
	}
	if want := []string{"monde", "beau"}; !slices.Equal(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFocusWords(t *testing.T) {
	got, err := Compute(
		[]string{"le chat dort", "le chien mange", "rien ici"},
		[]string{"le chat dort", "le chat mange", "rien"},
		Options{WordsList: []string{"chat", "chien"}},
	)
	if err != nil {
		t.Fatal(err)
	}
	if got.WordErr == nil || !approx(*got.WordErr, 0.5) {
		t.Errorf("WordErr = %v, want 0.5", got.WordErr)
	}

	got, err = Compute([]string{"a"}, []string{"a"}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if got.WordErr != nil {
		t.Errorf("WordErr = %v without a word list", *got.WordErr)
	}

	got, err = Compute(
		[]string{"bonjour le monde"},
		[]string{"bonjour monde"},
		Options{WordsList: []string{"chat"}},
	)
	if err != nil {
		t.Fatal(err)
	}
	if got.WordErr != nil {
		t.Errorf("WordErr = %v when no reference holds a focus word, want nil", *got.WordErr)
	}
}

func TestAlignmentRendering(t *testing.T) {
	refs := []string{"bonjour le monde", "il fait beau"}
	preds := []string{"bonjour monde", "il fait beau"}

	var buf bytes.Buffer
	got, err := Compute(refs, preds, Options{Alignment: &buf})
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if got.Alignment != out {
		t.Errorf("Report.Alignment differs from the written rendering")
	}
	for _, want := range []string{
		"sentence 1\nREF: bonjour le monde\nHYP: bonjour ** monde\n" + strings.Repeat(" ", 14) + "D\n",
		"number of sentences: 2\n",
		"substitutions=0 deletions=1 insertions=0 hits=5\n",
		"wer=16.67%\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendering missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "sentence 2") {
		t.Errorf("correct sentence rendered without IncludeCorrect:\n%s", out)
	}

	buf.Reset()
	if _, err := Compute(refs, preds, Options{Alignment: &buf, IncludeCorrect: true}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "sentence 2\nREF: il fait beau\n") {
		t.Errorf("IncludeCorrect did not render sentence 2:\n%s", buf.String())
	}
}

func TestCharacterAlignmentRendering(t *testing.T) {
	var buf bytes.Buffer
	if _, err := Compute([]string{"abc"}, []string{"axc"}, Options{CharacterLevel: true, Alignment: &buf}); err != nil {
		t.Fatal(err)
	}
	want := "sentence 1\nREF: abc\nHYP: axc\n      S\n"
	if !strings.HasPrefix(buf.String(), want) {
		t.Errorf("got:\n%s\nwant prefix:\n%s", buf.String(), want)
	}
	if !strings.Contains(buf.String(), "cer=33.33%") {
		t.Errorf("missing cer footer:\n%s", buf.String())
	}
}

func TestReportJSON(t *testing.T) {
	data, err := json.Marshal(Report{WER: 0.5, Del: 0.5, Count: 2})
	if err != nil {
		t.Fatal(err)
	}
	if s := string(data); !strings.Contains(s, `"wer":0.5`) || strings.Contains(s, "cer") || strings.Contains(s, "word_err") {
		t.Errorf("unexpected JSON %s", s)
	}

	werr := 0.25
	data, err = json.Marshal(Report{WER: 0.1, Count: 10, CharacterLevel: true, WordErr: &werr})
	if err != nil {
		t.Fatal(err)
	}
	var back Report
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if !back.CharacterLevel || back.WER != 0.1 || back.WordErr == nil || *back.WordErr != 0.25 {
		t.Errorf("round trip of %s gave %+v", data, back)
	}

	if err := json.Unmarshal([]byte(`{"del":0}`), &back); !errors.Is(err, ErrInput) {
		t.Errorf("error = %v, want ErrInput", err)
	}
}

func TestParseNormalization(t *testing.T) {
	tests := []struct {
		in        string
		wantLang  string
		wantLevel Intensity
	}{
		{"fr", "fr", Standard},
		{"fr+", "fr", Strong},
		{"fr++", "fr", VeryStrong},
		{"ar++", "ar", VeryStrong},
	}
	for _, tt := range tests {
		lang, level := ParseNormalization(tt.in)
		if lang != tt.wantLang || level != tt.wantLevel {
			t.Errorf("ParseNormalization(%q) = %q, %d", tt.in, lang, level)
		}
	}
}

func TestDropPluralS(t *testing.T) {
	if got := dropPluralS("les chats class s"); got != "le chat clas s" {
		t.Errorf("dropPluralS() = %q", got)
	}
}
