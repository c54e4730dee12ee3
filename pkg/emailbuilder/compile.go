package emailbuilder

import (
	"context"
	"fmt"
	"html"
	"regexp"

	mjmlgo "github.com/Boostport/mjml-go"
)

// MapOfAny carries personalization data for Liquid rendering.
type MapOfAny map[string]any

// CompileOptions control document compilation.
type CompileOptions struct {
	// Data is merged into Liquid placeholders ({{ first_name }}) found in
	// block content. Nil leaves placeholders untouched.
	Data MapOfAny
	// SkipValidation bypasses Document.Validate, for previewing documents
	// that are known to be mid-edit.
	SkipValidation bool
}

// CompileResult is the outcome of compiling a document.
type CompileResult struct {
	MJML string `json:"mjml"`
	HTML string `json:"html"`
}

// CompileDocument compiles a document to MJML markup and then to
// email-client HTML. Personalization data is applied to the markup before
// the MJML compiler runs, so placeholders inside both content and URLs
// resolve.
func CompileDocument(ctx context.Context, doc *Document, opts CompileOptions) (*CompileResult, error) {
	if doc == nil {
		return nil, fmt.Errorf("document cannot be nil")
	}
	if !opts.SkipValidation {
		if err := doc.Validate(); err != nil {
			return nil, fmt.Errorf("compilation rejected: %w", err)
		}
	}

	mjmlString := DocumentToMJML(doc)

	if opts.Data != nil {
		engine := NewSecureLiquidEngine()
		rendered, err := engine.Render(mjmlString, opts.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to personalize document %s: %w", doc.ID, err)
		}
		mjmlString = rendered
	}

	htmlResult, err := mjmlgo.ToHTML(ctx, mjmlString)
	if err != nil {
		return nil, fmt.Errorf("mjml compilation failed for document %s: %w", doc.ID, err)
	}

	// The MJML compiler does not always decode &amp; back to & inside URL
	// attributes, which breaks query strings in compiled links.
	htmlResult = decodeEntitiesInURLAttributes(htmlResult)

	return &CompileResult{
		MJML: mjmlString,
		HTML: htmlResult,
	}, nil
}

var urlAttrRegex = regexp.MustCompile(`((?:href|src)=["'])([^"']+)(["'])`)

func decodeEntitiesInURLAttributes(markup string) string {
	return urlAttrRegex.ReplaceAllStringFunc(markup, func(match string) string {
		parts := urlAttrRegex.FindStringSubmatch(match)
		if len(parts) != 4 {
			return match
		}
		return parts[1] + html.UnescapeString(parts[2]) + parts[3]
	})
}
