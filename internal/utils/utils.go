package utils

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/sashabaranov/go-openai"
	"google.golang.org/api/googleapi"
)

// ShouldRetry reports whether a completion error looks transient.
// Rate limits, upstream 5xx and connection resets are retried; a cancelled caller is not.
func ShouldRetry(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	// per-attempt deadline; the caller still checks its own context before retrying
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var openAIErr *openai.APIError
	if errors.As(err, &openAIErr) {
		return openAIErr.HTTPStatusCode >= 500 || openAIErr.HTTPStatusCode == 429
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode >= 500 || reqErr.HTTPStatusCode == 429
	}
	// Gemini REST transport
	var googleErr *googleapi.Error
	if errors.As(err, &googleErr) {
		return googleErr.Code >= 500 || googleErr.Code == 429
	}
	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "rate limit") ||
		strings.Contains(errMsg, "500 internal server error") ||
		strings.Contains(errMsg, "502 bad gateway") ||
		strings.Contains(errMsg, "503 service unavailable") ||
		strings.Contains(errMsg, "504 gateway timeout") ||
		strings.Contains(errMsg, "connection reset by peer") {
		return true
	}
	return false
}

// DetectImageType sniffs blob and returns its MIME type and whether it is an image.
func DetectImageType(blob []byte) (string, bool) {
	mt := mimetype.Detect(blob)
	return mt.String(), strings.HasPrefix(mt.String(), "image/")
}

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// IsHexColor validates the #RRGGBB form.
func IsHexColor(color string) bool {
	return hexColor.MatchString(color)
}

// MaskSecret keeps only the last four characters of a credential for logging.
func MaskSecret(secret string) string {
	if secret == "" {
		return "(not set)"
	}
	if len(secret) > 4 {
		return "***" + secret[len(secret)-4:]
	}
	return "***"
}
