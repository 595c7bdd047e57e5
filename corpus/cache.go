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

package corpus

import (
	"io/fs"
	"sync"

	"seehuhn.de/go/charproof/charset"
)

// Cache loads the corpus of each writing system at most once.
// A Cache is safe for concurrent use.
type Cache struct {
	fsys fs.FS
	opt  *Options

	mu      sync.Mutex
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	once sync.Once
	c    *Corpus
	err  error
}

// NewCache returns a cache which reads corpus files from fsys.
func NewCache(fsys fs.FS, opt *Options) *Cache {
	return &Cache{
		fsys:    fsys,
		opt:     opt,
		entries: make(map[string]*cacheEntry),
	}
}

// Get returns the corpus for sys, loading it on first use.
// Load errors are cached as well.
func (cache *Cache) Get(sys *charset.System) (*Corpus, error) {
	cache.mu.Lock()
	e, ok := cache.entries[sys.Tag()]
	if !ok {
		e = &cacheEntry{}
		cache.entries[sys.Tag()] = e
	}
	cache.mu.Unlock()

	e.once.Do(func() {
		e.c, e.err = Load(cache.fsys, sys, cache.opt)
	})
	return e.c, e.err
}
