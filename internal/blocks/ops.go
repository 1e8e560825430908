package blocks

// Document operations. Every operation returns a fresh slice so callers can
// treat documents as immutable values; the input document is never mutated.

// Insert places b at index at, clamped to [0, len(doc)].
func Insert(doc Document, at int, b Block) Document {
	if at < 0 {
		at = 0
	}
	if at > len(doc) {
		at = len(doc)
	}
	out := make(Document, 0, len(doc)+1)
	out = append(out, doc[:at]...)
	out = append(out, b.normalized())
	out = append(out, doc[at:]...)
	return out
}

// Update applies fn to the block with the given id. The returned block keeps
// the original id; if fn changes the kind, payloads of the old kind are
// dropped wholesale. A missing id is a no-op, which is what late async
// completions (an upload resolving after its block was removed) rely on.
func Update(doc Document, id string, fn func(Block) Block) Document {
	idx := IndexOf(doc, id)
	if idx < 0 {
		return doc
	}
	out := make(Document, len(doc))
	copy(out, doc)
	next := fn(out[idx])
	next.ID = id
	out[idx] = next.normalized()
	return out
}

// Remove deletes the block with the given id; missing ids are a no-op.
func Remove(doc Document, id string) Document {
	idx := IndexOf(doc, id)
	if idx < 0 {
		return doc
	}
	out := make(Document, 0, len(doc)-1)
	out = append(out, doc[:idx]...)
	out = append(out, doc[idx+1:]...)
	return out
}

// Move relocates the block at index from to index to. The move only commits
// when source and destination differ and both are in range.
func Move(doc Document, from, to int) Document {
	if from == to || from < 0 || from >= len(doc) || to < 0 || to >= len(doc) {
		return doc
	}
	out := make(Document, 0, len(doc))
	out = append(out, doc...)
	b := out[from]
	out = append(out[:from], out[from+1:]...)
	rest := make(Document, 0, len(doc))
	rest = append(rest, out[:to]...)
	rest = append(rest, b)
	rest = append(rest, out[to:]...)
	return rest
}

// IndexOf returns the position of the block with the given id, or -1.
func IndexOf(doc Document, id string) int {
	for i, b := range doc {
		if b.ID == id {
			return i
		}
	}
	return -1
}

// Get returns the block with the given id.
func Get(doc Document, id string) (Block, bool) {
	idx := IndexOf(doc, id)
	if idx < 0 {
		return Block{}, false
	}
	return doc[idx], true
}
