package preview

import (
	"errors"
	"fmt"
	"strings"

	"frontgen_server/internal/framework"
	"frontgen_server/internal/types"
	"frontgen_server/internal/utils"
)

// ErrNotPreviewable means the bundle's framework needs a build step and
// cannot be rendered as a static document.
var ErrNotPreviewable = errors.New("live preview is only available for HTML/CSS/JavaScript projects")

// ErrNoDocument means the bundle has no index.html to render.
var ErrNoDocument = errors.New("generated project has no index.html to preview")

const documentTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Live Preview</title>
    <style>
%s
    </style>
</head>
<body>
%s
    <script>
%s
    </script>
</body>
</html>
`

// Assemble inlines the generated style and script into a single HTML
// document the browser can render directly. The markup is embedded as
// body content; if the model produced a full document, its body is used.
func Assemble(bundle *types.ProjectBundle) (string, error) {
	if bundle.Framework != framework.HTMLCSSJS {
		return "", ErrNotPreviewable
	}
	html, ok := bundle.Lookup("index.html")
	if !ok || strings.TrimSpace(html.Content) == "" {
		return "", ErrNoDocument
	}

	var css, js string
	if f, ok := bundle.Lookup("style.css"); ok {
		css = f.Content
	}
	if f, ok := bundle.Lookup("script.js"); ok {
		js = f.Content
	}

	return fmt.Sprintf(documentTemplate, css, bodyOf(html.Content), js), nil
}

// bodyOf returns the inner body of a full HTML document, or the markup
// unchanged when it is already a fragment.
func bodyOf(markup string) string {
	lower := utils.FoldASCII(markup)
	start := strings.Index(lower, "<body")
	if start < 0 {
		return markup
	}
	open := strings.Index(lower[start:], ">")
	if open < 0 {
		return markup
	}
	start += open + 1
	end := strings.Index(lower[start:], "</body>")
	if end < 0 {
		return markup[start:]
	}
	return strings.TrimSpace(markup[start : start+end])
}
