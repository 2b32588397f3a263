package client

import (
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v74/webhook"
)

const testWebhookSecret = "whsec_test_secret"

func signedHeader(t *testing.T, payload []byte, secret string) string {
	t.Helper()
	ts := time.Now()
	sig := webhook.ComputeSignature(ts, payload, secret)
	return fmt.Sprintf("t=%d,v1=%s", ts.Unix(), hex.EncodeToString(sig))
}

func TestConstructEvent_ValidSignature(t *testing.T) {
	c := NewStripeClient("sk_test_x", testWebhookSecret)

	payload := []byte(`{"id":"evt_1","type":"payment_intent.succeeded","data":{"object":{"id":"pi_123"}}}`)
	header := signedHeader(t, payload, testWebhookSecret)

	event, err := c.ConstructEvent(payload, header)
	require.NoError(t, err)
	assert.Equal(t, "evt_1", event.ID)
	assert.Equal(t, "payment_intent.succeeded", string(event.Type))
}

func TestConstructEvent_SingleByteMutationInvalidates(t *testing.T) {
	c := NewStripeClient("sk_test_x", testWebhookSecret)

	payload := []byte(`{"id":"evt_1","type":"payment_intent.succeeded","data":{"object":{}}}`)
	header := signedHeader(t, payload, testWebhookSecret)

	mutated := append([]byte(nil), payload...)
	mutated[len(mutated)/2] ^= 0x01

	_, err := c.ConstructEvent(mutated, header)
	assert.Error(t, err)
}

func TestConstructEvent_WrongSecretFails(t *testing.T) {
	c := NewStripeClient("sk_test_x", testWebhookSecret)

	payload := []byte(`{"id":"evt_1","type":"payment_intent.succeeded","data":{"object":{}}}`)
	header := signedHeader(t, payload, "whsec_other")

	_, err := c.ConstructEvent(payload, header)
	assert.Error(t, err)
}
