package domain

import (
	"context"
	"fmt"

	"github.com/Mailframe/mailframe/pkg/emailbuilder"
)

// PreviewDevice is the device frame the preview renders into.
type PreviewDevice string

const (
	PreviewDesktop PreviewDevice = "desktop"
	PreviewMobile  PreviewDevice = "mobile"
)

func (d PreviewDevice) Validate() error {
	switch d {
	case PreviewDesktop, PreviewMobile:
		return nil
	}
	return fmt.Errorf("invalid preview device: %s", d)
}

// BlockPatch is a partial update for a single block. Only the keys present
// are merged; all other content and style fields are left as they are.
type BlockPatch struct {
	Content map[string]any `json:"content,omitempty"`
	Styles  map[string]any `json:"styles,omitempty"`
}

// IsZero reports whether the patch carries no changes.
func (p BlockPatch) IsZero() bool {
	return len(p.Content) == 0 && len(p.Styles) == 0
}

// DocumentRepository is the persistence collaborator supplied by the host.
// The editor core defines neither the transport nor the storage format; it
// only hands over complete, self-consistent document values.
type DocumentRepository interface {
	LoadDocument(ctx context.Context, id string) (*emailbuilder.Document, error)
	SaveDocument(ctx context.Context, doc *emailbuilder.Document) error
}

// TemplateGallery is the host-supplied preset catalogue.
type TemplateGallery interface {
	ListPresets(ctx context.Context) ([]emailbuilder.Preset, error)
}

// ThemeProvider exposes the host project's theme and palette for import
// into a document.
type ThemeProvider interface {
	ProjectTheme(ctx context.Context) (*emailbuilder.ProjectTheme, error)
	ProjectPalette(ctx context.Context) ([]string, error)
}
