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

package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/term"

	"seehuhn.de/go/charproof/charset"
	"seehuhn.de/go/charproof/corpus"
	"seehuhn.de/go/charproof/fontinfo"
	"seehuhn.de/go/charproof/fontinfo/gofont"
	"seehuhn.de/go/charproof/internal/logging"
)

var registry = charset.Adobe()

// selectSystems resolves a comma-separated list of writing system tags.
// The special value "all" selects all registered writing systems.
func selectSystems(arg string) ([]*charset.System, error) {
	var tags []string
	if isAll(arg) {
		tags = registry.Systems()
	} else {
		tags = strings.Split(arg, ",")
	}

	var res []*charset.System
	for _, tag := range tags {
		sys, err := registry.System(strings.TrimSpace(tag))
		if err != nil {
			return nil, err
		}
		res = append(res, sys)
	}
	return res, nil
}

func isAll(arg string) bool {
	return strings.EqualFold(arg, "all")
}

// systemChecker is implemented by [fontinfo.Info].
type systemChecker interface {
	SupportsSystem(sys *charset.System) bool
}

// supportedSystems removes the writing systems which the font cannot set.
func supportedSystems(systems []*charset.System, font systemChecker) []*charset.System {
	var res []*charset.System
	for _, sys := range systems {
		if !font.SupportsSystem(sys) {
			logging.OrDiscard(rootCmd.logger).Info("font does not support writing system, skipping",
				"system", sys.Tag())
			continue
		}
		res = append(res, sys)
	}
	return res
}

// resolveTier converts a tier argument into a tier name.  The argument can
// either be a tier name like "AL3", or a level number like "3", which is
// useful when several writing systems are processed at once.  An empty
// argument selects the highest tier.
func resolveTier(sys *charset.System, arg string) (string, error) {
	if arg == "" {
		return sys.TierName(sys.NumTiers() - 1), nil
	}
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > sys.NumTiers() {
			return "", &charset.UnknownTierError{System: sys.Tag(), Tier: arg}
		}
		return sys.TierName(n - 1), nil
	}
	idx, err := sys.TierIndex(arg)
	if err != nil {
		return "", err
	}
	return sys.TierName(idx), nil
}

// loadFont reads a font file, or one of the built-in Go fonts when the
// name has the form "go:regular".  An empty name gives a nil font.
func loadFont(name string) (*fontinfo.Info, error) {
	if name == "" {
		return nil, nil
	}
	return gofont.Load(name)
}

func newCache(dir string) (*corpus.Cache, error) {
	if dir == "" {
		return nil, errors.New("no corpus directory given (use --content)")
	}
	fi, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%s: not a directory", dir)
	}
	return corpus.NewCache(os.DirFS(dir), &corpus.Options{Logger: rootCmd.logger}), nil
}

// forEachSystem runs fn for all writing systems concurrently.  The results
// are returned in the order of systems.
func forEachSystem[T any](systems []*charset.System, fn func(*charset.System) (T, error)) ([]T, error) {
	res := make([]T, len(systems))
	errs := make([]error, len(systems))

	var wg sync.WaitGroup
	for i, sys := range systems {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res[i], errs[i] = fn(sys)
		}()
	}
	wg.Wait()

	return res, errors.Join(errs...)
}

// termWidth returns the width of the terminal, or 80 if standard output is
// not a terminal.
func termWidth() int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 20 {
			return w
		}
	}
	return 80
}

// wrap breaks text into lines of at most width characters, at spaces.
// Words longer than width are placed on a line of their own.
func wrap(text string, width int, indent string) []string {
	var lines []string
	cur := indent
	curLen := len([]rune(indent))
	for _, word := range strings.Fields(text) {
		n := len([]rune(word))
		if curLen > len([]rune(indent)) && curLen+1+n > width {
			lines = append(lines, cur)
			cur = indent
			curLen = len([]rune(indent))
		}
		if curLen > len([]rune(indent)) {
			cur += " "
			curLen++
		}
		cur += word
		curLen += n
	}
	if curLen > len([]rune(indent)) {
		lines = append(lines, cur)
	}
	return lines
}

func spaced(rr []rune) string {
	parts := make([]string, len(rr))
	for i, r := range rr {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}
