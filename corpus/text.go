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
	"bufio"
	"fmt"
	"io"
	"strings"

	"seehuhn.de/go/charproof/layout"
)

// ReadText reads a free-form text file, for proofs with predictable
// content.  Lines starting with "#" are comments.  Blank lines separate
// paragraphs; the first line after a paragraph boundary is marked to start
// a new page.
func ReadText(r io.Reader) ([]layout.Line, error) {
	var res []layout.Line
	pendingBreak := false

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		text := strings.TrimSuffix(sc.Text(), "\r")
		if strings.HasPrefix(text, "#") {
			continue
		}
		if strings.TrimSpace(text) == "" {
			pendingBreak = len(res) > 0
			continue
		}
		res = append(res, layout.Line{Text: text, Break: pendingBreak})
		pendingBreak = false
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("corpus: %w", err)
	}
	return res, nil
}
