package parser

import (
	"strings"

	"frontgen_server/internal/framework"
	"frontgen_server/internal/types"
	"frontgen_server/internal/utils"
)

// fileMarker is the per-file header convention the prompt instructs the
// model to emit.
const fileMarker = "### FILE:"

// Parse splits a completion into a ProjectBundle. Duplicate paths resolve
// last-write-wins and empty file contents are kept, both flagged in the
// returned Diagnostics. When no markers are present, the HTML/CSS/JS path
// falls back to a heuristic split of a single undifferentiated block;
// anything else fails with *types.ParseError.
func Parse(completion *types.ModelCompletion) (*types.ProjectBundle, *types.Diagnostics, error) {
	diags := &types.Diagnostics{}

	entries := splitSections(completion.RawText)
	if len(entries) == 0 && completion.Framework == framework.HTMLCSSJS {
		entries = splitSingleBlock(completion.RawText)
	}
	if len(entries) == 0 {
		return nil, nil, &types.ParseError{
			Reason:  "no recognizable file boundaries in the completion",
			RawText: completion.RawText,
		}
	}

	bundle := &types.ProjectBundle{Framework: completion.Framework}
	index := make(map[string]int)
	for _, e := range entries {
		if e.Type == "" {
			e.Type = utils.DetermineFileType(e.RelativePath)
		}
		if i, seen := index[e.RelativePath]; seen {
			// Last write wins, at the position of the first occurrence.
			bundle.Files[i] = e
			diags.DuplicatePaths = append(diags.DuplicatePaths, e.RelativePath)
			continue
		}
		index[e.RelativePath] = len(bundle.Files)
		bundle.Files = append(bundle.Files, e)
	}

	for _, f := range bundle.Files {
		if f.Content == "" {
			diags.EmptyFiles = append(diags.EmptyFiles, f.RelativePath)
		}
		if f.RelativePath == "README.md" {
			bundle.Readme = f.Content
		}
	}

	return bundle, diags, nil
}

// splitSections scans for "### FILE: path" headers and extracts one entry
// per section. Sections with an empty path are skipped, never emitted as
// null entries.
func splitSections(raw string) []types.FileEntry {
	var entries []types.FileEntry
	sections := strings.Split(raw, fileMarker)
	for i, section := range sections {
		if i == 0 {
			// Preamble before the first marker: prose, not a file.
			continue
		}
		name, body, found := strings.Cut(section, "\n")
		if !found {
			body = ""
		}
		name = cleanPath(name)
		if name == "" {
			continue
		}
		entries = append(entries, types.FileEntry{
			RelativePath: name,
			Content:      stripFence(body),
		})
	}
	return entries
}

// cleanPath normalizes a path taken from a marker line. Models sometimes
// wrap the filename in backticks or bold markers.
func cleanPath(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "`*")
	return strings.TrimSpace(s)
}

// stripFence removes one surrounding fenced code block, including a
// language tag on the opening fence, and trims the remainder.
func stripFence(body string) string {
	body = strings.TrimSpace(body)
	if !strings.HasPrefix(body, "```") {
		return body
	}
	// Drop the opening fence line (``` or ```lang).
	if _, rest, found := strings.Cut(body, "\n"); found {
		body = rest
	} else {
		return ""
	}
	if i := strings.LastIndex(body, "```"); i >= 0 {
		body = body[:i]
	}
	return strings.TrimSpace(body)
}

// splitSingleBlock handles the case where the model ignored the file
// markers and returned one blob for the static framework. If the blob
// looks like an HTML document, inline <style> and <script> bodies are
// pulled out into style.css and script.js and the rest becomes
// index.html.
func splitSingleBlock(raw string) []types.FileEntry {
	blob := stripFence(strings.TrimSpace(raw))
	lower := utils.FoldASCII(blob)
	if !strings.Contains(lower, "<html") && !strings.Contains(lower, "<!doctype") &&
		!strings.Contains(lower, "<body") {
		return nil
	}

	css, blob := extractTagged(blob, "style")
	js, blob := extractTagged(blob, "script")

	entries := []types.FileEntry{
		{RelativePath: "index.html", Content: strings.TrimSpace(blob), Type: "html"},
	}
	if css != "" {
		entries = append(entries, types.FileEntry{RelativePath: "style.css", Content: css, Type: "css"})
	}
	if js != "" {
		entries = append(entries, types.FileEntry{RelativePath: "script.js", Content: js, Type: "javascript"})
	}
	return entries
}

// extractTagged pulls the body of the first <tag>...</tag> pair out of
// blob, returning the body and the blob with the whole element removed.
// Tag matching is case-insensitive via an ASCII fold so the indexes stay
// aligned with the original bytes regardless of the surrounding text.
func extractTagged(blob, tag string) (string, string) {
	lower := utils.FoldASCII(blob)
	open := strings.Index(lower, "<"+tag)
	if open < 0 {
		return "", blob
	}
	bodyStart := strings.Index(lower[open:], ">")
	if bodyStart < 0 {
		return "", blob
	}
	bodyStart += open + 1
	closeTag := "</" + tag + ">"
	end := strings.Index(lower[bodyStart:], closeTag)
	if end < 0 {
		return "", blob
	}
	end += bodyStart
	body := strings.TrimSpace(blob[bodyStart:end])
	rest := blob[:open] + blob[end+len(closeTag):]
	return body, rest
}
