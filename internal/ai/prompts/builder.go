package prompts

import (
	"fmt"
	"strings"

	"frontgen_server/internal/types"
)

const defaultStyleNotes = "Modern, minimalistic, with a blue and white color scheme"

// Build assembles the full prompt for a generation request. It is a pure
// function of its input: the framework instruction block, the user's
// requirements and style notes, and the output-format contract the parser
// relies on.
func Build(req *types.GenerationRequest) (string, error) {
	if strings.TrimSpace(req.Requirements) == "" {
		return "", &types.InvalidRequestError{Field: "requirements", Reason: "must not be empty"}
	}
	if !req.Framework.Valid() {
		return "", &types.InvalidRequestError{Field: "framework", Reason: fmt.Sprintf("unsupported framework %q", req.Framework)}
	}

	style := strings.TrimSpace(req.StyleNotes)
	if style == "" {
		style = defaultStyleNotes
	}

	spec := req.Framework.Spec()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(generalInstructions, spec.DisplayName, strings.TrimSpace(req.Requirements), style))
	sb.WriteString(frameworkInstructions[req.Framework])
	sb.WriteString(outputInstructions)
	return sb.String(), nil
}
