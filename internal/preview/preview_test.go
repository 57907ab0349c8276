package preview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontgen_server/internal/framework"
	"frontgen_server/internal/types"
)

func staticBundle() *types.ProjectBundle {
	return &types.ProjectBundle{
		Framework: framework.HTMLCSSJS,
		Files: []types.FileEntry{
			{RelativePath: "index.html", Content: "<h1>Hello</h1>"},
			{RelativePath: "style.css", Content: "h1 { color: blue; }"},
			{RelativePath: "script.js", Content: "console.log('loaded');"},
		},
	}
}

func TestAssembleInlinesTrio(t *testing.T) {
	doc, err := Assemble(staticBundle())
	require.NoError(t, err)

	assert.Contains(t, doc, "<!DOCTYPE html>")
	assert.Contains(t, doc, `name="viewport"`)
	assert.Contains(t, doc, "<h1>Hello</h1>")
	assert.Contains(t, doc, "h1 { color: blue; }")
	assert.Contains(t, doc, "console.log('loaded');")
}

func TestAssembleExtractsBodyFromFullDocument(t *testing.T) {
	bundle := &types.ProjectBundle{
		Framework: framework.HTMLCSSJS,
		Files: []types.FileEntry{
			{RelativePath: "index.html", Content: "<!DOCTYPE html><html><head><title>x</title></head><body><main>content</main></body></html>"},
		},
	}

	doc, err := Assemble(bundle)
	require.NoError(t, err)
	assert.Contains(t, doc, "<main>content</main>")
	assert.NotContains(t, doc, "<title>x</title>")
}

func TestAssembleBodyWithMultiByteRunes(t *testing.T) {
	// Length-changing runes under Unicode lowercasing must not shift the
	// body boundaries.
	inner := "<main>" + strings.Repeat("Ⱥ", 100) + " İstanbul</main>"
	bundle := &types.ProjectBundle{
		Framework: framework.HTMLCSSJS,
		Files: []types.FileEntry{
			{RelativePath: "index.html", Content: "<!DOCTYPE html><html><head><title>x</title></head><BODY>" + inner + "</BODY></html>"},
		},
	}

	doc, err := Assemble(bundle)
	require.NoError(t, err)
	assert.Contains(t, doc, inner)
	assert.NotContains(t, doc, "<title>x</title>")
}

func TestAssembleRejectsBuildFrameworks(t *testing.T) {
	bundle := &types.ProjectBundle{
		Framework: framework.React,
		Files: []types.FileEntry{
			{RelativePath: "src/App.js", Content: "export {}"},
		},
	}

	_, err := Assemble(bundle)
	assert.ErrorIs(t, err, ErrNotPreviewable)
}

func TestAssembleRequiresDocument(t *testing.T) {
	bundle := &types.ProjectBundle{
		Framework: framework.HTMLCSSJS,
		Files: []types.FileEntry{
			{RelativePath: "style.css", Content: "body {}"},
		},
	}

	_, err := Assemble(bundle)
	assert.ErrorIs(t, err, ErrNoDocument)
}
