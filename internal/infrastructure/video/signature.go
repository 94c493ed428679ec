package video

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Webhook payloads are signed with HMAC-SHA256 over "<timestamp>.<body>".
// Header format: "t=<unix>,v1=<hex digest>".

// DefaultSignatureTolerance bounds how old a signed webhook may be.
const DefaultSignatureTolerance = 5 * time.Minute

// VerifyWebhookSignature checks the signature header against the raw
// request body using the shared webhook secret.
func VerifyWebhookSignature(payload []byte, header, secret string) error {
	return verifyWebhookSignatureAt(payload, header, secret, time.Now())
}

func verifyWebhookSignatureAt(payload []byte, header, secret string, now time.Time) error {
	if secret == "" {
		return fmt.Errorf("webhook secret is empty")
	}

	timestamp, received, err := parseSignatureHeader(header)
	if err != nil {
		return err
	}

	sent := time.Unix(timestamp, 0)
	if skew := now.Sub(sent); skew > DefaultSignatureTolerance || skew < -DefaultSignatureTolerance {
		return fmt.Errorf("webhook timestamp outside tolerance")
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))
	mac.Write([]byte("."))
	mac.Write(payload)
	expected := mac.Sum(nil)

	receivedBytes, err := hex.DecodeString(received)
	if err != nil {
		return fmt.Errorf("malformed signature digest")
	}

	if !hmac.Equal(expected, receivedBytes) {
		return fmt.Errorf("signature mismatch")
	}

	return nil
}

// SignPayload produces a valid signature header for payload. Used by tests
// and local webhook replay tooling.
func SignPayload(payload []byte, secret string, at time.Time) string {
	ts := strconv.FormatInt(at.Unix(), 10)
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(ts))
	mac.Write([]byte("."))
	mac.Write(payload)
	return fmt.Sprintf("t=%s,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func parseSignatureHeader(header string) (int64, string, error) {
	var timestamp int64
	var signature string

	for _, part := range strings.Split(header, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch kv[0] {
		case "t":
			ts, err := strconv.ParseInt(kv[1], 10, 64)
			if err != nil {
				return 0, "", fmt.Errorf("malformed signature timestamp")
			}
			timestamp = ts
		case "v1":
			signature = kv[1]
		}
	}

	if timestamp == 0 || signature == "" {
		return 0, "", fmt.Errorf("malformed signature header")
	}

	return timestamp, signature, nil
}
