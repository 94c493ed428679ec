package video

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWebhookSignature(t *testing.T) {
	secret := "webhook-secret"
	payload := []byte(`{"type":"video.asset.ready","data":{"id":"asset-1"}}`)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("accepts a fresh valid signature", func(t *testing.T) {
		header := SignPayload(payload, secret, now)
		require.NoError(t, verifyWebhookSignatureAt(payload, header, secret, now))
	})

	t.Run("accepts signatures within tolerance", func(t *testing.T) {
		header := SignPayload(payload, secret, now.Add(-4*time.Minute))
		require.NoError(t, verifyWebhookSignatureAt(payload, header, secret, now))
	})

	t.Run("rejects expired signatures", func(t *testing.T) {
		header := SignPayload(payload, secret, now.Add(-10*time.Minute))
		require.Error(t, verifyWebhookSignatureAt(payload, header, secret, now))
	})

	t.Run("rejects timestamps from the future", func(t *testing.T) {
		header := SignPayload(payload, secret, now.Add(10*time.Minute))
		require.Error(t, verifyWebhookSignatureAt(payload, header, secret, now))
	})

	t.Run("rejects tampered payload", func(t *testing.T) {
		header := SignPayload(payload, secret, now)
		tampered := []byte(`{"type":"video.asset.ready","data":{"id":"asset-2"}}`)
		require.Error(t, verifyWebhookSignatureAt(tampered, header, secret, now))
	})

	t.Run("rejects wrong secret", func(t *testing.T) {
		header := SignPayload(payload, "other-secret", now)
		require.Error(t, verifyWebhookSignatureAt(payload, header, secret, now))
	})

	t.Run("rejects malformed headers", func(t *testing.T) {
		for _, header := range []string{"", "t=,v1=", "nonsense", "t=abc,v1=deadbeef"} {
			require.Error(t, verifyWebhookSignatureAt(payload, header, secret, now), header)
		}
	})

	t.Run("rejects empty secret", func(t *testing.T) {
		header := SignPayload(payload, secret, now)
		require.Error(t, verifyWebhookSignatureAt(payload, header, "", now))
	})
}
