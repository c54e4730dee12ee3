package emailbuilder

// ComputeReorder translates a completed drag gesture into a new block
// ordering: the block identified by sourceID moves to targetID's current
// index, relative order of all other blocks is preserved. The input slice is
// never mutated. When sourceID equals targetID, or either id is absent, the
// input is returned unchanged. Output length and id-set always equal the
// input's.
func ComputeReorder(blocks []Block, sourceID, targetID string) []Block {
	if sourceID == targetID {
		return blocks
	}
	sourceIdx, targetIdx := -1, -1
	for i := range blocks {
		switch blocks[i].ID {
		case sourceID:
			sourceIdx = i
		case targetID:
			targetIdx = i
		}
	}
	if sourceIdx < 0 || targetIdx < 0 {
		return blocks
	}

	out := make([]Block, 0, len(blocks))
	out = append(out, blocks[:sourceIdx]...)
	out = append(out, blocks[sourceIdx+1:]...)

	// The moved block lands exactly at the target's original index, the
	// same arithmetic drag libraries use for arrayMove.
	insertAt := targetIdx
	if insertAt > len(out) {
		insertAt = len(out)
	}

	moved := blocks[sourceIdx]
	out = append(out[:insertAt], append([]Block{moved}, out[insertAt:]...)...)
	return out
}

// IsPermutation reports whether next contains exactly the same block ids as
// current, each exactly once. Callers of wholesale reordering use this to
// reject orderings that would drop or duplicate blocks.
func IsPermutation(current, next []Block) bool {
	if len(current) != len(next) {
		return false
	}
	counts := make(map[string]int, len(current))
	for i := range current {
		counts[current[i].ID]++
	}
	for i := range next {
		counts[next[i].ID]--
		if counts[next[i].ID] < 0 {
			return false
		}
	}
	for _, n := range counts {
		if n != 0 {
			return false
		}
	}
	return true
}
