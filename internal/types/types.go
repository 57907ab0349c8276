package types

import "frontgen_server/internal/framework"

// GenerationRequest carries the user's submission. It is never mutated
// after it is handed to the pipeline.
type GenerationRequest struct {
	Framework    framework.Framework `json:"framework"`
	Requirements string              `json:"requirements"`
	StyleNotes   string              `json:"styleNotes"`
}

// ModelCompletion is the raw text the model returned for one request,
// tagged with the framework the prompt asked for.
type ModelCompletion struct {
	RawText   string
	Framework framework.Framework
}

// FileEntry is one generated file. Content may be empty (the model may
// emit a placeholder) but RelativePath never is.
type FileEntry struct {
	RelativePath string `json:"relativePath"`
	Content      string `json:"content"`
	Type         string `json:"type,omitempty"` // e.g. "html", "css", "javascript"
}

// ProjectBundle is the parsed result of one generation. It owns its file
// list exclusively; paths are unique within Files.
type ProjectBundle struct {
	Framework framework.Framework `json:"framework"`
	Files     []FileEntry         `json:"files"`
	Readme    string              `json:"readme,omitempty"`
}

// Lookup returns the entry for path, if present.
func (b *ProjectBundle) Lookup(path string) (FileEntry, bool) {
	for _, f := range b.Files {
		if f.RelativePath == path {
			return f, true
		}
	}
	return FileEntry{}, false
}

// Diagnostics flags parser events that are tolerated but should not be
// silently dropped.
type Diagnostics struct {
	// DuplicatePaths lists paths the model emitted more than once
	// (resolved last-write-wins).
	DuplicatePaths []string `json:"duplicatePaths,omitempty"`
	// EmptyFiles lists recognized paths whose content was empty.
	EmptyFiles []string `json:"emptyFiles,omitempty"`
}

// IsClean reports whether parsing raised no flags.
func (d *Diagnostics) IsClean() bool {
	return d == nil || (len(d.DuplicatePaths) == 0 && len(d.EmptyFiles) == 0)
}
