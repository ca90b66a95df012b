package execution

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// signKey is the raw key material behind every secret encoding used in
// these tests.
var signKey = []byte("test-signing-key-001")

func testSecret() string {
	return "whsec_" + base64.StdEncoding.EncodeToString(signKey)
}

func sign(key []byte, content string) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(content))
	return mac.Sum(nil)
}

func nowTS() string {
	return strconv.FormatInt(time.Now().Unix(), 10)
}

func TestVerify_AcceptsStandardSignature(t *testing.T) {
	v := NewVerifier(testSecret())
	body := []byte(`{"trigger_nano_id":"trig_1"}`)
	ts := nowTS()
	sig := base64.StdEncoding.EncodeToString(sign(signKey, "msg_1."+ts+"."+string(body)))

	require.NoError(t, v.Verify("msg_1", ts, "v1,"+sig, body))
}

func TestVerify_AcceptsHexSignature(t *testing.T) {
	v := NewVerifier(testSecret())
	body := []byte(`{"trigger_nano_id":"trig_1"}`)
	ts := nowTS()
	sig := hex.EncodeToString(sign(signKey, "msg_1."+ts+"."+string(body)))

	require.NoError(t, v.Verify("msg_1", ts, sig, body))
}

func TestVerify_AcceptsLegacyOrdering(t *testing.T) {
	v := NewVerifier(testSecret())
	body := []byte(`{"trigger_nano_id":"trig_1"}`)
	ts := nowTS()

	// Older senders omit the id from the signed content.
	sig := base64.StdEncoding.EncodeToString(sign(signKey, ts+"."+string(body)))

	require.NoError(t, v.Verify("msg_1", ts, "v1,"+sig, body))
}

func TestVerify_KeyEncodings(t *testing.T) {
	body := []byte(`{"ok":true}`)

	cases := []struct {
		name   string
		secret string
	}{
		{"base64 with prefix", "whsec_" + base64.StdEncoding.EncodeToString(signKey)},
		{"base64 bare", base64.StdEncoding.EncodeToString(signKey)},
		{"hex", hex.EncodeToString(signKey)},
		{"raw ascii", string(signKey)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := NewVerifier(tc.secret)
			ts := nowTS()
			sig := base64.StdEncoding.EncodeToString(sign(signKey, "msg_1."+ts+"."+string(body)))
			assert.NoError(t, v.Verify("msg_1", ts, "v1,"+sig, body))
		})
	}
}

func TestVerify_AcceptsOneOfManySignatures(t *testing.T) {
	v := NewVerifier(testSecret())
	body := []byte(`{}`)
	ts := nowTS()

	good := base64.StdEncoding.EncodeToString(sign(signKey, "msg_1."+ts+"."+string(body)))
	stale := base64.StdEncoding.EncodeToString(sign([]byte("rotated-out-key"), "msg_1."+ts+"."+string(body)))

	require.NoError(t, v.Verify("msg_1", ts, "v1,"+stale+" v1,"+good, body))
}

func TestVerify_RejectsWrongSignature(t *testing.T) {
	v := NewVerifier(testSecret())
	body := []byte(`{"trigger_nano_id":"trig_1"}`)
	ts := nowTS()
	sig := base64.StdEncoding.EncodeToString(sign([]byte("wrong-key"), "msg_1."+ts+"."+string(body)))

	err := v.Verify("msg_1", ts, "v1,"+sig, body)
	require.ErrorIs(t, err, ErrVerificationFailed)
}

func TestVerify_RejectsTamperedBody(t *testing.T) {
	v := NewVerifier(testSecret())
	ts := nowTS()
	sig := base64.StdEncoding.EncodeToString(sign(signKey, "msg_1."+ts+`.{"amount":10}`))

	err := v.Verify("msg_1", ts, "v1,"+sig, []byte(`{"amount":9999}`))
	require.ErrorIs(t, err, ErrVerificationFailed)
}

func TestVerify_RejectsSkewedTimestamps(t *testing.T) {
	v := NewVerifier(testSecret())
	body := []byte(`{}`)

	cases := []struct {
		name string
		ts   int64
	}{
		{"stale", time.Now().Add(-10 * time.Minute).Unix()},
		{"future", time.Now().Add(10 * time.Minute).Unix()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ts := strconv.FormatInt(tc.ts, 10)
			// Correctly signed for that timestamp; only the skew fails.
			sig := base64.StdEncoding.EncodeToString(sign(signKey, "msg_1."+ts+"."+string(body)))
			err := v.Verify("msg_1", ts, "v1,"+sig, body)
			require.ErrorIs(t, err, ErrVerificationFailed)
			assert.Contains(t, err.Error(), "tolerance")
		})
	}
}

func TestVerify_RejectsMalformedInput(t *testing.T) {
	v := NewVerifier(testSecret())

	cases := []struct {
		name        string
		id, ts, sig string
	}{
		{"missing id", "", nowTS(), "v1,AAAA"},
		{"missing timestamp", "msg_1", "", "v1,AAAA"},
		{"missing signature", "msg_1", nowTS(), ""},
		{"garbage timestamp", "msg_1", "yesterday", "v1,AAAA"},
		{"undecodable signature", "msg_1", nowTS(), "v1,!!!not-base64-or-hex!!!"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Verify(tc.id, tc.ts, tc.sig, []byte(`{}`))
			assert.ErrorIs(t, err, ErrVerificationFailed)
		})
	}
}
