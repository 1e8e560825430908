// session.go
//
// Block document engine for the Nokturo studio application
// Copyright (c) 2026 Vojtech Okenka <vojtech@okenka.dev>
//
// This file is part of nokturo.
// nokturo is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// nokturo is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with nokturo.
// If not, see <https://www.gnu.org/licenses/>.

// Package editor owns one editing session over a block document: semantic
// edits, undo-of-empty-insertion tracking, debounced autosave, and async
// image uploads. onChange receives whole-array replacements in call order.
package editor

import (
	"sync"

	"github.com/vojtechokenka/nokturo/internal/blocks"
)

// Session is a single user's editing session over one document. Methods are
// safe for concurrent use; async upload completions re-enter through the
// same lock as user edits, so onChange ordering matches application order.
type Session struct {
	mu  sync.Mutex
	doc blocks.Document

	// pendingInserts holds ids of blocks that were inserted and have not
	// become non-empty yet; only these are candidates for insertion undo.
	pendingInserts map[string]struct{}
	lastInsert     string
	focused        string

	onChange func(blocks.Document)
	saver    *Autosave
}

// NewSession starts a session over doc. onChange may be nil. The autosave
// saver, when set via SetAutosave, is notified on every semantic edit.
func NewSession(doc blocks.Document, onChange func(blocks.Document)) *Session {
	return &Session{
		doc:            doc,
		pendingInserts: map[string]struct{}{},
		onChange:       onChange,
	}
}

// SetAutosave attaches a debounced saver to the session. The session owns
// the saver's lifecycle from this point; Close cancels it.
func (s *Session) SetAutosave(saver *Autosave) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saver = saver
}

// Document returns the current document value.
func (s *Session) Document() blocks.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc
}

// SetFocus records which block currently holds focus. Insertion undo only
// applies while focus remains on the inserted block (or nothing has been
// focused since the insert).
func (s *Session) SetFocus(blockID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.focused = blockID
}

// Insert places a new block at the given index and tracks it as
// undoable-while-still-empty.
func (s *Session) Insert(at int, b blocks.Block) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b.ID == "" {
		b.ID = blocks.NewID()
	}
	s.doc = blocks.Insert(s.doc, at, b)
	if blocks.IsEmpty(b) {
		s.pendingInserts[b.ID] = struct{}{}
		s.lastInsert = b.ID
	}
	s.emit()
}

// Update applies fn to the block with the given id. The moment the block
// becomes non-empty it leaves the insertion-undo tracking set for good.
func (s *Session) Update(id string, fn func(blocks.Block) blocks.Block) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := blocks.Update(s.doc, id, fn)
	if blocks.IndexOf(next, id) >= 0 {
		if b, ok := blocks.Get(next, id); ok && !blocks.IsEmpty(b) {
			delete(s.pendingInserts, id)
			if s.lastInsert == id {
				s.lastInsert = ""
			}
		}
	}
	s.doc = next
	s.emit()
}

// Remove deletes the block with the given id.
func (s *Session) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = blocks.Remove(s.doc, id)
	delete(s.pendingInserts, id)
	if s.lastInsert == id {
		s.lastInsert = ""
	}
	s.emit()
}

// Move reorders a block between indices; it only commits when the indices
// differ.
func (s *Session) Move(from, to int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if from == to {
		return
	}
	s.doc = blocks.Move(s.doc, from, to)
	s.emit()
}

// Undo handles the platform undo shortcut. If the most recent insertion is
// still empty and focus has not moved off it, the insertion itself is
// reverted and Undo reports true; otherwise it reports false and the caller
// defers to native text undo.
func (s *Session) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.lastInsert
	if id == "" {
		return false
	}
	if _, tracked := s.pendingInserts[id]; !tracked {
		return false
	}
	if s.focused != "" && s.focused != id {
		return false
	}
	b, ok := blocks.Get(s.doc, id)
	if !ok || !blocks.IsEmpty(b) {
		return false
	}

	s.doc = blocks.Remove(s.doc, id)
	delete(s.pendingInserts, id)
	s.lastInsert = ""
	s.emit()
	return true
}

// ApplyUploadedImage targets the block by id with the uploaded URL. A
// missing id means the user removed the block while the upload was in
// flight; the completion is silently dropped.
func (s *Session) ApplyUploadedImage(blockID, url string) {
	s.Update(blockID, func(b blocks.Block) blocks.Block {
		switch b.Kind {
		case blocks.KindImage:
			img := blocks.Image{Fit: blocks.FitFill}
			if b.Image != nil {
				img = *b.Image
			}
			img.URL = url
			b.Image = &img
		case blocks.KindGallery:
			if b.Gallery != nil {
				g := *b.Gallery
				images := make([]blocks.GalleryImage, len(g.Images), len(g.Images)+1)
				copy(images, g.Images)
				g.Images = append(images, blocks.GalleryImage{URL: url})
				b.Gallery = &g
			}
		case blocks.KindImageGrid:
			if b.ImageGrid != nil {
				g := *b.ImageGrid
				images := make([]blocks.GalleryImage, len(g.Images), len(g.Images)+1)
				copy(images, g.Images)
				g.Images = append(images, blocks.GalleryImage{URL: url})
				b.ImageGrid = &g
			}
		case blocks.KindHeading, blocks.KindParagraph, blocks.KindQuote,
			blocks.KindList, blocks.KindGrid, blocks.KindLink, blocks.KindDivider:
		}
		return b
	})
}

// Close tears the session down, cancelling any scheduled autosave.
func (s *Session) Close() {
	s.mu.Lock()
	saver := s.saver
	s.saver = nil
	s.mu.Unlock()
	if saver != nil {
		saver.Close()
	}
}

// emit is called with s.mu held.
func (s *Session) emit() {
	if s.onChange != nil {
		s.onChange(s.doc)
	}
	if s.saver != nil {
		s.saver.Notify(s.doc)
	}
}
