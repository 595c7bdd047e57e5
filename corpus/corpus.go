// seehuhn.de/go/charproof - proofing tools for font character sets
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package corpus loads example text for tiered character sets.
//
// The corpus of a writing system consists of one text file per tier (for
// example AL1.txt to AL5.txt), with one example sentence or word per line.
// Every line is tagged with the lowest tier which contains all of its
// characters.
package corpus

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"slices"
	"strings"

	"github.com/go-text/typesetting/language"
	"github.com/ulikunitz/xz"
	"github.com/zeebo/blake3"

	"seehuhn.de/go/charproof/charset"
	"seehuhn.de/go/charproof/internal/logging"
)

// Line is a single line of the corpus.
type Line struct {
	// Index is the position of the line in the corpus.
	Index int

	Text   string
	File   string
	LineNo int

	// Runes lists the distinct code points of the line, excluding
	// baseline characters, in canonical form and increasing order.
	Runes []rune

	// Tier is the index of the lowest tier whose cumulative set contains
	// all of Runes.
	Tier int
}

// Corpus is the loaded example text of one writing system.
// A Corpus is not modified after loading and is safe for concurrent use.
type Corpus struct {
	System *charset.System
	Lines  []*Line

	// Dropped lists the lines which could not be assigned to any tier.
	Dropped []*UnclassifiableLineError

	// Digest is the BLAKE3 hash of the names and contents of all files
	// read.
	Digest [32]byte
}

// Options can be used to configure [Load].
type Options struct {
	Logger *slog.Logger
}

// Load reads the corpus files of a writing system from fsys.
//
// For every tier, the file "<tier>.txt" is read, or "<tier>.txt.xz" if the
// uncompressed file does not exist.  Missing files are skipped.  Lines
// which cannot be classified are logged and recorded in Corpus.Dropped.
func Load(fsys fs.FS, sys *charset.System, opt *Options) (*Corpus, error) {
	if opt == nil {
		opt = &Options{}
	}
	logger := logging.OrDiscard(opt.Logger).With("system", sys.Tag())

	var names []string
	if base := sys.BaseFile(); base != "" {
		names = append(names, base)
	}
	names = append(names, sys.Tiers()...)

	c := &Corpus{System: sys}
	h := blake3.New()
	seen := make(map[string]bool)
	for _, name := range names {
		fileName, data, err := readTierFile(fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("no corpus file", "tier", name)
			continue
		} else if err != nil {
			return nil, fmt.Errorf("corpus: %w", err)
		}
		h.Write([]byte(fileName))
		h.Write(data)

		for i, text := range strings.Split(string(data), "\n") {
			text = strings.TrimSuffix(text, "\r")
			if strings.TrimSpace(text) == "" || strings.HasPrefix(text, "#") {
				continue
			}
			if seen[text] {
				continue
			}
			seen[text] = true

			runes, tier, err := Classify(sys, text)
			if err != nil {
				uErr := err.(*UnclassifiableLineError)
				uErr.File = fileName
				uErr.LineNo = i + 1
				logger.Warn("dropping unclassifiable line",
					"file", fileName, "line", i+1, "outside", string(uErr.Outside))
				c.Dropped = append(c.Dropped, uErr)
				continue
			}
			c.Lines = append(c.Lines, &Line{
				Index:  len(c.Lines),
				Text:   text,
				File:   fileName,
				LineNo: i + 1,
				Runes:  runes,
				Tier:   tier,
			})
		}
	}
	copy(c.Digest[:], h.Sum(nil))

	logger.Debug("corpus loaded", "lines", len(c.Lines), "dropped", len(c.Dropped))
	return c, nil
}

func readTierFile(fsys fs.FS, name string) (string, []byte, error) {
	fileName := name + ".txt"
	data, err := fs.ReadFile(fsys, fileName)
	if !errors.Is(err, fs.ErrNotExist) {
		return fileName, data, err
	}

	fileName += ".xz"
	compressed, err := fs.ReadFile(fsys, fileName)
	if err != nil {
		return fileName, nil, err
	}
	r, err := xz.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return fileName, nil, fmt.Errorf("%s: %w", fileName, err)
	}
	data, err = io.ReadAll(r)
	if err != nil {
		return fileName, nil, fmt.Errorf("%s: %w", fileName, err)
	}
	return fileName, data, nil
}

// Classify determines the non-baseline code points of text and the lowest
// tier of sys whose cumulative set contains all of them.  Text which only
// uses baseline characters belongs to the lowest tier.
//
// If some code points belong to no tier, an *UnclassifiableLineError is
// returned.
func Classify(sys *charset.System, text string) ([]rune, int, error) {
	set := make(map[rune]bool)
	var outside []rune
	tier := 0
	for _, r := range text {
		r = sys.Canonical(r)
		if set[r] || sys.IsBaseline(r) {
			continue
		}
		set[r] = true

		idx, ok := sys.TierOf(r)
		if !ok {
			outside = append(outside, r)
			continue
		}
		tier = max(tier, idx)
	}

	if len(outside) > 0 {
		slices.Sort(outside)
		err := &UnclassifiableLineError{
			System:  sys.Tag(),
			Text:    text,
			Outside: outside,
		}
		for _, r := range outside {
			script := language.LookupScript(r)
			switch script {
			case sys.Script(), language.Common, language.Inherited, language.Unknown:
				continue
			}
			err.Mixed = script.String()
			break
		}
		return nil, 0, err
	}

	runes := make([]rune, 0, len(set))
	for r := range set {
		runes = append(runes, r)
	}
	slices.Sort(runes)
	return runes, tier, nil
}

// Pool returns the lines which only need characters from tiers up to and
// including tier, in corpus order.
func (c *Corpus) Pool(tier int) []*Line {
	var res []*Line
	for _, line := range c.Lines {
		if line.Tier <= tier {
			res = append(res, line)
		}
	}
	return res
}

// UnclassifiableLineError is used for corpus lines which contain characters
// outside all tiers of a writing system.
type UnclassifiableLineError struct {
	System  string
	File    string
	LineNo  int
	Text    string
	Outside []rune

	// Mixed, if set, names the script of an offending character when
	// this is different from the script of the writing system.
	Mixed string
}

func (err *UnclassifiableLineError) Error() string {
	var b strings.Builder
	b.WriteString("corpus: ")
	if err.File != "" {
		fmt.Fprintf(&b, "%s:%d: ", err.File, err.LineNo)
	}
	fmt.Fprintf(&b, "characters %q are not in any %s tier", string(err.Outside), err.System)
	if err.Mixed != "" {
		b.WriteString(" (mixed with " + err.Mixed + " text)")
	}
	return b.String()
}
