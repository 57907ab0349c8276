package packager

import (
	"archive/zip"
	"bytes"
	"fmt"
	"path"
	"sort"
	"strings"

	"frontgen_server/internal/types"
)

// Package serializes a bundle into a zip archive: the bundle's files in
// insertion order, then backfilled scaffolding (placeholders for required
// files the model omitted, manifest templates, a README). Any relative
// path that would escape the archive root fails the whole attempt with
// *types.PackagingError; no partial archive is returned.
func Package(bundle *types.ProjectBundle) ([]byte, error) {
	for _, f := range bundle.Files {
		if err := validatePath(f.RelativePath); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	seen := make(map[string]bool)
	write := func(name, content string) error {
		w, err := zw.Create(name)
		if err != nil {
			return &types.PackagingError{Path: name, Reason: err.Error()}
		}
		if _, err := w.Write([]byte(content)); err != nil {
			return &types.PackagingError{Path: name, Reason: err.Error()}
		}
		seen[name] = true
		return nil
	}

	for _, f := range bundle.Files {
		if err := write(f.RelativePath, f.Content); err != nil {
			return nil, err
		}
	}

	spec := bundle.Framework.Spec()
	for _, name := range spec.RequiredFiles {
		if seen[name] {
			continue
		}
		if err := write(name, placeholder(name)); err != nil {
			return nil, err
		}
	}
	manifestNames := make([]string, 0, len(spec.Manifests))
	for name := range spec.Manifests {
		manifestNames = append(manifestNames, name)
	}
	sort.Strings(manifestNames)
	for _, name := range manifestNames {
		if seen[name] {
			continue
		}
		if err := write(name, spec.Manifests[name]); err != nil {
			return nil, err
		}
	}
	if !seen["README.md"] {
		readme := bundle.Readme
		if readme == "" {
			readme = buildReadme(bundle)
		}
		if err := write("README.md", readme); err != nil {
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, &types.PackagingError{Reason: err.Error()}
	}
	return buf.Bytes(), nil
}

// validatePath rejects anything that could write outside the archive
// root: traversal segments, absolute paths, backslashes, drive letters.
func validatePath(p string) error {
	if p == "" {
		return &types.PackagingError{Path: p, Reason: "empty relative path"}
	}
	if strings.Contains(p, "\\") {
		return &types.PackagingError{Path: p, Reason: "backslash in path"}
	}
	if strings.Contains(p, ":") {
		return &types.PackagingError{Path: p, Reason: "volume separator in path"}
	}
	if strings.HasPrefix(p, "/") {
		return &types.PackagingError{Path: p, Reason: "absolute path"}
	}
	clean := path.Clean(p)
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return &types.PackagingError{Path: p, Reason: "path escapes archive root"}
	}
	return nil
}

// placeholder mirrors the comment style of the omitted file so the
// scaffold stays loadable.
func placeholder(name string) string {
	switch {
	case strings.HasSuffix(name, ".html"):
		return fmt.Sprintf("<!-- %s content missing -->\n", name)
	case strings.HasSuffix(name, ".css"):
		return fmt.Sprintf("/* %s content missing */\n", name)
	default:
		return fmt.Sprintf("// %s content missing\n", name)
	}
}

func buildReadme(bundle *types.ProjectBundle) string {
	spec := bundle.Framework.Spec()
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Generated %s Frontend\n\n", spec.DisplayName)
	sb.WriteString("## Setup Instructions\n\n")
	fmt.Fprintf(&sb, "1. Install dependencies: %s\n", spec.InstallCmd)
	fmt.Fprintf(&sb, "2. Run the project: %s\n\n", spec.RunCmd)
	sb.WriteString("## Files\n\n")
	for _, f := range bundle.Files {
		fmt.Fprintf(&sb, "- `%s`\n", f.RelativePath)
	}
	sb.WriteString("\n## Deployment\n\n")
	sb.WriteString("The project is ready to be deployed on platforms like Netlify, Vercel, or GitHub Pages.\n")
	return sb.String()
}
