package utils

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// IsRetryable classifies an upstream failure as transient. The result is
// surfaced to the user as a retry affordance; the server itself never
// retries a generation.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "rate limit") ||
		strings.Contains(errMsg, "502 bad gateway") ||
		strings.Contains(errMsg, "503 service unavailable") ||
		strings.Contains(errMsg, "504 gateway timeout") ||
		strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "connection reset by peer") ||
		strings.Contains(errMsg, "context deadline exceeded") {
		return true
	}
	var openAIErr *openai.APIError
	if errors.As(err, &openAIErr) {
		if openAIErr.HTTPStatusCode >= 500 || openAIErr.HTTPStatusCode == 429 {
			return true
		}
	}
	return false
}

// FoldASCII lowercases only the ASCII letters of s. Unlike
// strings.ToLower it never changes byte length, so indexes found in the
// folded string are valid in the original. Intended for locating ASCII
// tokens (HTML tag names) inside arbitrary Unicode text.
func FoldASCII(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}

// DetermineFileType infers a highlight language from a filename. Used
// when the model does not tag a file with a type of its own.
func DetermineFileType(filename string) string {
	lower := strings.ToLower(filename)
	switch filepath.Ext(lower) {
	case ".html", ".htm":
		return "html"
	case ".css":
		return "css"
	case ".js", ".jsx":
		return "javascript"
	case ".ts", ".tsx":
		return "typescript"
	case ".json":
		return "json"
	case ".md":
		return "markdown"
	case ".svg":
		return "svg"
	case ".txt":
		return "text"
	default:
		base := filepath.Base(lower)
		if strings.Contains(base, "package.json") || strings.Contains(base, "angular.json") {
			return "json"
		}
		return ""
	}
}
