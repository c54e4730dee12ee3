package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mailframe/mailframe/pkg/emailbuilder"
	"github.com/Mailframe/mailframe/pkg/logger"
)

func writeTestDocument(t *testing.T, dir string) string {
	t.Helper()
	doc := emailbuilder.NewDocument("preview test")
	block := emailbuilder.NewBlock(emailbuilder.BlockTypeText)
	block.Content = emailbuilder.TextContent{Text: "Hello {{ first_name }}"}
	doc.Blocks = []emailbuilder.Block{block}

	data, err := emailbuilder.MarshalDocument(doc)
	require.NoError(t, err)

	path := filepath.Join(dir, "doc.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestRunCompilesDocumentToFiles(t *testing.T) {
	dir := t.TempDir()
	docPath := writeTestDocument(t, dir)
	htmlPath := filepath.Join(dir, "out.html")
	mjmlPath := filepath.Join(dir, "out.mjml")
	dataPath := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(dataPath, []byte(`{"first_name":"Ada"}`), 0o644))

	err := run(logger.NewMockLogger(t), docPath, htmlPath, mjmlPath, dataPath)
	require.NoError(t, err)

	html, err := os.ReadFile(htmlPath)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Hello Ada")

	mjml, err := os.ReadFile(mjmlPath)
	require.NoError(t, err)
	assert.Contains(t, string(mjml), "<mjml>")
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	log := logger.NewMockLogger(t)

	assert.Error(t, run(log, "", "-", "", ""), "missing document path")
	assert.Error(t, run(log, filepath.Join(dir, "nope.json"), "-", "", ""), "unreadable document")

	badDoc := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(badDoc, []byte("{not json"), 0o644))
	assert.Error(t, run(log, badDoc, "-", "", ""))

	docPath := writeTestDocument(t, dir)
	badData := filepath.Join(dir, "bad-data.json")
	require.NoError(t, os.WriteFile(badData, []byte("{oops"), 0o644))
	assert.Error(t, run(log, docPath, "-", "", badData), "malformed personalization data")
}
