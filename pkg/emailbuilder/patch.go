package emailbuilder

import (
	"encoding/json"
	"fmt"
)

// MergeBlockPatch returns a copy of b with the given content and style
// fields shallow-merged in: every key present in a patch replaces that field
// only, all other fields keep their current values. Keys that do not exist
// on the block's content type are dropped by the typed re-decode rather
// than corrupting the payload. Nil patches leave the respective side
// untouched.
func MergeBlockPatch(b Block, contentPatch, stylesPatch map[string]any) (Block, error) {
	out := b.Copy()

	if len(contentPatch) > 0 {
		merged, err := mergeIntoTyped(out.Content, contentPatch, newContentForType(b.Type))
		if err != nil {
			return b, fmt.Errorf("failed to merge content for block %s: %w", b.ID, err)
		}
		if merged != nil {
			out.Content = derefContent(merged.(BlockContent))
		}
	}

	if len(stylesPatch) > 0 {
		target := &BlockStyles{}
		merged, err := mergeIntoTyped(out.Styles, stylesPatch, target)
		if err != nil {
			return b, fmt.Errorf("failed to merge styles for block %s: %w", b.ID, err)
		}
		if merged != nil {
			out.Styles = *merged.(*BlockStyles)
		}
	}

	return out, nil
}

// mergeIntoTyped flattens current to a map, overlays the patch and decodes
// the result back into target. Returns nil when there is no typed target to
// decode into (unknown block types).
func mergeIntoTyped(current any, patch map[string]any, target any) (any, error) {
	if target == nil {
		return nil, nil
	}

	base := make(map[string]any)
	if current != nil {
		data, err := json.Marshal(current)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal current value: %w", err)
		}
		if err := json.Unmarshal(data, &base); err != nil {
			return nil, fmt.Errorf("failed to flatten current value: %w", err)
		}
	}
	for k, v := range patch {
		base[k] = v
	}

	data, err := json.Marshal(base)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal merged value: %w", err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return nil, fmt.Errorf("failed to decode merged value: %w", err)
	}
	return target, nil
}
