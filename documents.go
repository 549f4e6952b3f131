// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package ppmtrie

// Cursor identifies a suffix instance of the corpus: the suffix of document
// Doc starting at offset Pos.
type Cursor struct {
	Doc int32
	Pos int32
}

// tokenAt returns the token the cursor points to at the given depth: the
// token at Pos+depth-1, or EOS beyond the end of the document.
func (t *Trie) tokenAt(c Cursor, depth int) Token {
	doc := t.docs[c.Doc]
	k := int(c.Pos) + depth - 1
	if k >= len(doc) {
		return EOS
	}
	return doc[k]
}

// AddDocument appends a document to the store and seeds its cursors with
// the configured Seeder. Documents can only be added before Build is
// called.
func (t *Trie) AddDocument(s string) error {
	if hasEOS(s) {
		return ErrSentinel
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != collecting {
		return ErrIndexing
	}
	doc := Tokens(s)
	id := int32(len(t.docs))
	t.docs = append(t.docs, doc)
	for pos := 0; pos <= len(doc); pos++ {
		if t.cfg.Seeder(doc, pos) {
			t.cursors = append(t.cursors,
				Cursor{Doc: id, Pos: int32(pos)})
		}
	}
	return nil
}

// AddDocuments adds all texts in order.
func (t *Trie) AddDocuments(texts ...string) error {
	for _, s := range texts {
		if err := t.AddDocument(s); err != nil {
			return err
		}
	}
	return nil
}

// NumDocuments returns the number of documents in the store. It is zero for
// truncated tries.
func (t *Trie) NumDocuments() int { return len(t.docs) }

// Document returns the text of document i.
func (t *Trie) Document(i int) string { return TokenString(t.docs[i]) }

// Cursors returns the cursors of node n. The slice shares the cursor array
// of the trie and must not be modified. Truncated tries have no cursors.
func (t *Trie) Cursors(n Node) []Cursor {
	if t.cursors == nil {
		return nil
	}
	f := t.firstCursor[n.i]
	return t.cursors[f : f+t.count[n.i]]
}
