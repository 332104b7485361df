package supabase

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strings"

	crerr "github.com/cockroachdb/errors"
)

func isCircuitFailure(err error) bool {
	return crerr.Is(err, errSupabaseTransient)
}

func isRetryableStatus(status int) bool {
	return status == 408 || status == 429 || status >= 500
}

// compactSelect strips the whitespace people put in multi-line embeddings.
func compactSelect(expr string) string {
	return strings.Join(strings.Fields(expr), "")
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) > 256 {
		return text[:256] + "..."
	}
	return text
}

func redactURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return "invalid-url"
	}
	parsed.RawQuery = ""
	return parsed.String()
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
