package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/Mailframe/mailframe/internal/domain"
	"github.com/Mailframe/mailframe/pkg/emailbuilder"
	"github.com/Mailframe/mailframe/pkg/logger"
)

// EditorService is the document store of the email editor: the single
// source of truth for the current document, the dirty flag, the selection
// and the preview device. Every command produces a new document value; a
// value handed out by Document is never mutated afterwards, so callers can
// rely on equality-based change detection.
type EditorService struct {
	mu sync.RWMutex

	doc        *emailbuilder.Document
	dirty      bool
	revision   uint64
	selectedID *string
	device     domain.PreviewDevice

	repo    domain.DocumentRepository
	gallery domain.TemplateGallery
	themes  domain.ThemeProvider
	logger  logger.Logger
}

// NewEditorService creates an editor around the given document. A nil
// initial document starts a minimal empty one with a fresh id. The
// repository, gallery and theme provider are host collaborators and may be
// nil when the host does not supply them.
func NewEditorService(
	repo domain.DocumentRepository,
	gallery domain.TemplateGallery,
	themes domain.ThemeProvider,
	log logger.Logger,
	initial *emailbuilder.Document,
) *EditorService {
	doc := initial
	if doc == nil {
		doc = emailbuilder.NewDocument("")
	}
	return &EditorService{
		doc:     doc,
		device:  domain.PreviewDesktop,
		repo:    repo,
		gallery: gallery,
		themes:  themes,
		logger:  log,
	}
}

// Document returns the current document value. The returned value is
// replaced, never mutated, by subsequent commands.
func (s *EditorService) Document() *emailbuilder.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc
}

// IsDirty reports whether there are unsaved changes since the last
// acknowledged save.
func (s *EditorService) IsDirty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dirty
}

// SelectedBlockID returns the currently selected block id, or nil.
func (s *EditorService) SelectedBlockID() *string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedID
}

// SelectBlock sets the selection. A nil id clears it; an id not present in
// the document is ignored. Selection is UI state and does not mark the
// document dirty.
func (s *EditorService) SelectBlock(id *string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == nil {
		s.selectedID = nil
		return
	}
	if s.doc.BlockIndex(*id) < 0 {
		return
	}
	selected := *id
	s.selectedID = &selected
}

// PreviewDevice returns the current preview device.
func (s *EditorService) PreviewDevice() domain.PreviewDevice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.device
}

// SetPreviewDevice switches the preview frame. Not a document mutation.
func (s *EditorService) SetPreviewDevice(device domain.PreviewDevice) error {
	if err := device.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.device = device
	return nil
}

// AddBlock creates a block of the given type from the registry defaults,
// inserts it at index (append when nil or out of range), selects it and
// marks the document dirty. A type outside the closed set is a programming
// error and is rejected.
func (s *EditorService) AddBlock(blockType emailbuilder.BlockType, index *int) (*emailbuilder.Block, error) {
	if err := blockType.Validate(); err != nil {
		return nil, &domain.ErrUnknownBlockType{Type: string(blockType)}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	block := emailbuilder.NewBlock(blockType)
	next := s.doc.Copy()

	at := len(next.Blocks)
	if index != nil && *index >= 0 && *index <= len(next.Blocks) {
		at = *index
	}
	next.Blocks = append(next.Blocks[:at], append([]emailbuilder.Block{block}, next.Blocks[at:]...)...)

	s.replaceLocked(&next)
	selected := block.ID
	s.selectedID = &selected
	return next.BlockByID(block.ID), nil
}

// UpdateBlock shallow-merges the patch into the matching block's content
// and styles. An unknown id is a deliberate silent no-op: the document and
// the dirty flag are left untouched, which keeps stale UI references
// harmless.
func (s *EditorService) UpdateBlock(id string, patch domain.BlockPatch) error {
	if patch.IsZero() {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.doc.BlockIndex(id)
	if idx < 0 {
		return nil
	}

	merged, err := emailbuilder.MergeBlockPatch(s.doc.Blocks[idx], patch.Content, patch.Styles)
	if err != nil {
		s.logger.WithField("block_id", id).Error(fmt.Sprintf("Failed to merge block patch: %v", err))
		return fmt.Errorf("failed to update block: %w", err)
	}

	next := s.doc.Copy()
	next.Blocks[idx] = merged
	s.replaceLocked(&next)
	return nil
}

// DeleteBlock removes the block. If it was selected the selection is
// cleared. Unknown ids are a silent no-op.
func (s *EditorService) DeleteBlock(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.doc.BlockIndex(id)
	if idx < 0 {
		return
	}

	next := s.doc.Copy()
	next.Blocks = append(next.Blocks[:idx], next.Blocks[idx+1:]...)
	s.replaceLocked(&next)

	if s.selectedID != nil && *s.selectedID == id {
		s.selectedID = nil
	}
}

// DuplicateBlock inserts a deep value copy with a new id directly after the
// original. Unknown ids are a silent no-op and return nil.
func (s *EditorService) DuplicateBlock(id string) *emailbuilder.Block {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.doc.BlockIndex(id)
	if idx < 0 {
		return nil
	}

	next := s.doc.Copy()
	dup := next.Blocks[idx].Copy()
	dup.ID = emailbuilder.NewBlockID()

	at := idx + 1
	next.Blocks = append(next.Blocks[:at], append([]emailbuilder.Block{dup}, next.Blocks[at:]...)...)
	s.replaceLocked(&next)
	return next.BlockByID(dup.ID)
}

// ReorderBlocks replaces the block order wholesale. The new order must be a
// permutation of the current block ids; anything else is a caller contract
// violation and is rejected rather than silently dropping blocks.
func (s *EditorService) ReorderBlocks(orderedIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(orderedIDs) != len(s.doc.Blocks) {
		return &domain.ErrNotPermutation{Have: len(s.doc.Blocks), Got: len(orderedIDs)}
	}

	current := s.doc.Copy()
	reordered := make([]emailbuilder.Block, 0, len(orderedIDs))
	seen := make(map[string]bool, len(orderedIDs))
	for _, id := range orderedIDs {
		idx := current.BlockIndex(id)
		if idx < 0 || seen[id] {
			return &domain.ErrNotPermutation{Have: len(s.doc.Blocks), Got: len(orderedIDs)}
		}
		seen[id] = true
		reordered = append(reordered, current.Blocks[idx])
	}

	current.Blocks = reordered
	s.replaceLocked(&current)
	return nil
}

// MoveBlock commits a completed drag gesture: the source block moves to the
// target block's position. Missing ids and source==target are no-ops;
// intermediate drag positions are never written here.
func (s *EditorService) MoveBlock(sourceID, targetID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.doc.Copy()
	moved := emailbuilder.ComputeReorder(next.Blocks, sourceID, targetID)
	if sameOrder(next.Blocks, moved) {
		return
	}
	next.Blocks = moved
	s.replaceLocked(&next)
}

// ToggleBlockVisibility flips the block's visible flag. Hidden blocks stay
// in the document but are skipped by the renderer. Unknown ids are a silent
// no-op.
func (s *EditorService) ToggleBlockVisibility(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.doc.BlockIndex(id)
	if idx < 0 {
		return
	}

	next := s.doc.Copy()
	next.Blocks[idx].Visible = !next.Blocks[idx].Visible
	s.replaceLocked(&next)
}

// UpdateGlobalStyles merges the patch into the document's global styles.
func (s *EditorService) UpdateGlobalStyles(patch emailbuilder.GlobalStylesPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.doc.Copy()
	next.GlobalStyles = patch.Apply(next.GlobalStyles)
	s.replaceLocked(&next)
}

// UpdateSubject replaces the subject line.
func (s *EditorService) UpdateSubject(subject string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.doc.Copy()
	next.Subject = subject
	s.replaceLocked(&next)
}

// UpdatePreviewText replaces the inbox preview text.
func (s *EditorService) UpdatePreviewText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.doc.Copy()
	next.PreviewText = text
	s.replaceLocked(&next)
}

// UpdateName renames the document.
func (s *EditorService) UpdateName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.doc.Copy()
	next.Name = name
	s.replaceLocked(&next)
}

// Preview renders every visible block of the current document in order.
func (s *EditorService) Preview() []*emailbuilder.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return emailbuilder.RenderDocument(s.doc)
}

// Compile compiles the current document to MJML and HTML.
func (s *EditorService) Compile(ctx context.Context, data emailbuilder.MapOfAny) (*emailbuilder.CompileResult, error) {
	s.mu.RLock()
	doc := s.doc
	s.mu.RUnlock()
	return emailbuilder.CompileDocument(ctx, doc, emailbuilder.CompileOptions{Data: data})
}

// Save hands the current document to the repository. The dirty flag only
// transitions to clean when the save is acknowledged and no command ran
// while the save was in flight; edits made during an in-flight save keep
// the document dirty. Saves do not block further edits.
func (s *EditorService) Save(ctx context.Context) error {
	if s.repo == nil {
		return fmt.Errorf("no document repository configured")
	}

	s.mu.RLock()
	doc := s.doc
	revision := s.revision
	s.mu.RUnlock()

	if err := s.repo.SaveDocument(ctx, doc); err != nil {
		s.logger.WithField("document_id", doc.ID).Error(fmt.Sprintf("Failed to save document: %v", err))
		return fmt.Errorf("failed to save document: %w", err)
	}

	s.mu.Lock()
	if s.revision == revision {
		s.dirty = false
	}
	s.mu.Unlock()
	return nil
}

// Load replaces the current document with the stored one and resets the
// editing state.
func (s *EditorService) Load(ctx context.Context, id string) error {
	if s.repo == nil {
		return fmt.Errorf("no document repository configured")
	}

	doc, err := s.repo.LoadDocument(ctx, id)
	if err != nil {
		if _, ok := err.(*domain.ErrDocumentNotFound); ok {
			return err
		}
		s.logger.WithField("document_id", id).Error(fmt.Sprintf("Failed to load document: %v", err))
		return fmt.Errorf("failed to load document: %w", err)
	}

	s.mu.Lock()
	s.doc = doc
	s.dirty = false
	s.revision++
	s.selectedID = nil
	s.mu.Unlock()
	return nil
}

// Presets lists the gallery's presets, falling back to the built-in ones
// when the host supplies no gallery.
func (s *EditorService) Presets(ctx context.Context) ([]emailbuilder.Preset, error) {
	if s.gallery == nil {
		return emailbuilder.DefaultPresets(), nil
	}
	presets, err := s.gallery.ListPresets(ctx)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to list presets: %v", err))
		return nil, fmt.Errorf("failed to list presets: %w", err)
	}
	return presets, nil
}

// UseTemplate instantiates the preset into a fresh document and replaces
// the current one wholesale. The result is a new, unsaved document.
func (s *EditorService) UseTemplate(preset emailbuilder.Preset) *emailbuilder.Document {
	doc := emailbuilder.Instantiate(preset)

	s.mu.Lock()
	s.doc = doc
	s.dirty = true
	s.revision++
	s.selectedID = nil
	s.mu.Unlock()
	return doc
}

// ImportProjectTheme fetches the host project's theme and applies it to the
// document: global styles plus the targeted per-block overrides. One-shot,
// on explicit user action.
func (s *EditorService) ImportProjectTheme(ctx context.Context) error {
	if s.themes == nil {
		return fmt.Errorf("no theme provider configured")
	}

	theme, err := s.themes.ProjectTheme(ctx)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to fetch project theme: %v", err))
		return fmt.Errorf("failed to fetch project theme: %w", err)
	}
	if theme == nil {
		return nil
	}

	s.mu.Lock()
	next := emailbuilder.ApplyProjectTheme(s.doc, *theme)
	s.doc = next
	s.dirty = true
	s.revision++
	s.mu.Unlock()
	return nil
}

// Palette returns the host project's color list for pickers. Empty when no
// provider is configured.
func (s *EditorService) Palette(ctx context.Context) ([]string, error) {
	if s.themes == nil {
		return nil, nil
	}
	return s.themes.ProjectPalette(ctx)
}

// replaceLocked swaps in the next document value and marks the editor
// dirty. Callers hold the write lock.
func (s *EditorService) replaceLocked(next *emailbuilder.Document) {
	s.doc = next
	s.dirty = true
	s.revision++
}

func sameOrder(a, b []emailbuilder.Block) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}
