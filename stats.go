// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package ppmtrie

// Stats provides summary information about a trie.
type Stats struct {
	Nodes     int
	Leaves    int
	Terminals int
	Height    int
	Cursors   int64
	Documents int
	// Levels contains the number of nodes per depth.
	Levels []int
}

// Stats computes the statistics of the trie.
func (t *Trie) Stats() Stats {
	s := Stats{
		Nodes:     t.Len(),
		Height:    t.height,
		Cursors:   t.count[0],
		Documents: len(t.docs),
		Levels:    make([]int, t.height+1),
	}
	for i := range t.token {
		if t.childCount[i] == 0 {
			s.Leaves++
		}
		if i > 0 && t.token[i] == EOS {
			s.Terminals++
		}
		s.Levels[t.depth[i]]++
	}
	return s
}
