package wer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/chaz8081/gostt-eval/internal/textnorm"
)

// Corpus is an ordered set of utterances keyed by id.
type Corpus struct {
	ids  []string
	text map[string]string
}

// NewCorpus returns an empty corpus.
func NewCorpus() *Corpus {
	return &Corpus{text: map[string]string{}}
}

// FromTexts builds a positional corpus: the id of each entry is its index.
func FromTexts(texts []string) *Corpus {
	c := NewCorpus()
	for i, t := range texts {
		c.ids = append(c.ids, strconv.Itoa(i))
		c.text[strconv.Itoa(i)] = t
	}
	return c
}

// FromMap builds a corpus from an id-keyed mapping, ordered by id.
func FromMap(m map[string]string) *Corpus {
	c := NewCorpus()
	for id, t := range m {
		c.ids = append(c.ids, id)
		c.text[id] = t
	}
	slices.Sort(c.ids)
	return c
}

// Add appends an entry. Re-adding an id with the same text is a no-op.
func (c *Corpus) Add(id, text string) error {
	if prev, ok := c.text[id]; ok {
		if prev != text {
			return fmt.Errorf("%w: %q", ErrDuplicateID, id)
		}
		return nil
	}
	c.ids = append(c.ids, id)
	c.text[id] = text
	return nil
}

// Len returns the number of entries.
func (c *Corpus) Len() int { return len(c.ids) }

// IDs returns the ids in corpus order.
func (c *Corpus) IDs() []string { return slices.Clone(c.ids) }

// Text returns the utterance stored under id.
func (c *Corpus) Text(id string) (string, bool) {
	t, ok := c.text[id]
	return t, ok
}

// Texts returns the utterances in corpus order.
func (c *Corpus) Texts() []string {
	out := make([]string, len(c.ids))
	for i, id := range c.ids {
		out[i] = c.text[id]
	}
	return out
}

const maxLineSize = 16 << 20

func newLineScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxLineSize)
	return sc
}

// ReadCorpus parses one utterance per line. With useIDs each line is
// "<id> <text>" and blank lines are skipped; otherwise lines are positional.
func ReadCorpus(r io.Reader, useIDs bool) (*Corpus, error) {
	c := NewCorpus()
	sc := newLineScanner(r)
	n := 0
	for sc.Scan() {
		line := textnorm.CollapseWhitespace(sc.Text())
		if !useIDs {
			c.ids = append(c.ids, strconv.Itoa(n))
			c.text[strconv.Itoa(n)] = line
			n++
			continue
		}
		if line == "" {
			continue
		}
		id, text, _ := strings.Cut(line, " ")
		if err := c.Add(id, text); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading corpus: %w", err)
	}
	return c, nil
}

// LoadCorpus reads a corpus file. See ReadCorpus.
func LoadCorpus(path string, useIDs bool) (*Corpus, error) {
	f, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := ReadCorpus(f, useIDs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func openInput(path string) (*os.File, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrMissingFile, path)
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return f, nil
}

// Intersect pairs the entries of refs and preds sharing an id, in
// reference order. A partial overlap is logged; no overlap at all is an
// error.
func Intersect(refs, preds *Corpus, log *slog.Logger) (ids, r, p []string, err error) {
	if log == nil {
		log = slog.Default()
	}
	for _, id := range refs.ids {
		pt, ok := preds.text[id]
		if !ok {
			continue
		}
		ids = append(ids, id)
		r = append(r, refs.text[id])
		p = append(p, pt)
	}
	switch {
	case len(ids) > 0:
	case refs.Len() == 0:
		return nil, nil, nil, ErrEmptyReference
	case preds.Len() == 0:
		return nil, nil, nil, ErrEmptyPrediction
	default:
		return nil, nil, nil, ErrNoCommonIDs
	}
	if len(ids) != refs.Len() || len(ids) != preds.Len() {
		log.Warn("ids in reference and/or prediction are missing or different",
			"refs", refs.Len(), "preds", preds.Len(), "common", len(ids))
	}
	return ids, r, p, nil
}
