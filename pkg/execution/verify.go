package execution

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// maxSkew bounds how far a delivery timestamp may drift from the local
// clock in either direction before the delivery is rejected.
const maxSkew = 5 * time.Minute

// ErrVerificationFailed marks a delivery whose signature or timestamp
// could not be validated. The handler maps it to 401; nothing is written.
var ErrVerificationFailed = errors.New("webhook verification failed")

// Verifier checks standard-webhooks signatures: HMAC-SHA256 over
// "id.timestamp.body". Senders disagree on how the shared secret is
// encoded and on whether the id participates in the signed content, so
// verification tries every plausible combination and accepts the first
// constant-time match.
type Verifier struct {
	keys [][]byte
}

// NewVerifier derives the key candidates from the configured secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{keys: keyCandidates(secret)}
}

// keyCandidates expands the secret into every byte form a sender may
// have signed with: base64-decoded (with and without the whsec_ prefix),
// hex-decoded, and the raw ASCII value itself.
func keyCandidates(secret string) [][]byte {
	trimmed := strings.TrimPrefix(secret, "whsec_")

	var keys [][]byte
	seen := make(map[string]bool)
	add := func(k []byte) {
		if len(k) == 0 || seen[string(k)] {
			return
		}
		seen[string(k)] = true
		keys = append(keys, k)
	}

	if b, err := base64.StdEncoding.DecodeString(trimmed); err == nil {
		add(b)
	}
	if b, err := hex.DecodeString(trimmed); err == nil {
		add(b)
	}
	add([]byte(secret))
	add([]byte(trimmed))

	return keys
}

// Verify validates one delivery. id, timestamp and signature come from
// the webhook-id, webhook-timestamp and webhook-signature headers; body
// is the raw request body exactly as received.
func (v *Verifier) Verify(id, timestamp, signature string, body []byte) error {
	if id == "" || timestamp == "" || signature == "" {
		return fmt.Errorf("%w: missing signature headers", ErrVerificationFailed)
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: unparseable timestamp", ErrVerificationFailed)
	}
	if skew := time.Since(time.Unix(ts, 0)); skew > maxSkew || skew < -maxSkew {
		return fmt.Errorf("%w: timestamp outside tolerance", ErrVerificationFailed)
	}

	provided := parseSignatures(signature)
	if len(provided) == 0 {
		return fmt.Errorf("%w: no decodable signature", ErrVerificationFailed)
	}

	// Current senders sign "id.ts.body"; legacy ones signed "ts.body".
	prefixes := []string{
		id + "." + timestamp + ".",
		timestamp + ".",
	}
	for _, key := range v.keys {
		for _, prefix := range prefixes {
			mac := hmac.New(sha256.New, key)
			mac.Write([]byte(prefix))
			mac.Write(body)
			digest := mac.Sum(nil)
			for _, sig := range provided {
				if hmac.Equal(digest, sig) {
					return nil
				}
			}
		}
	}

	return ErrVerificationFailed
}

// parseSignatures decodes every candidate in the signature header.
// Entries are space-separated and may carry a version prefix such as
// "v1,"; each value is tried as base64 and as hex.
func parseSignatures(header string) [][]byte {
	var sigs [][]byte
	for _, part := range strings.Fields(header) {
		val := part
		if i := strings.IndexByte(val, ','); i >= 0 {
			val = val[i+1:]
		}
		if b, err := base64.StdEncoding.DecodeString(val); err == nil {
			sigs = append(sigs, b)
		}
		if b, err := hex.DecodeString(val); err == nil {
			sigs = append(sigs, b)
		}
	}
	return sigs
}
