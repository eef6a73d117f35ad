package lib

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alumniconnect/Backend-Alumni-Connect/src/config"
)

func signPayment(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	g := NewPaymentGateway(&config.Config{
		RazorpayKeyID:     "rzp_test_key",
		RazorpayKeySecret: "rzp_test_secret",
	})

	sig := signPayment("rzp_test_secret", "order_ABC123", "pay_XYZ789")

	assert.True(t, g.VerifySignature("order_ABC123", "pay_XYZ789", sig))
	assert.False(t, g.VerifySignature("order_ABC123", "pay_XYZ789", "0"+sig))
	assert.False(t, g.VerifySignature("order_other", "pay_XYZ789", sig))
	assert.False(t, g.VerifySignature("order_ABC123", "pay_XYZ789", ""))
}

func TestCreateOrderWithoutCredentials(t *testing.T) {
	g := NewPaymentGateway(&config.Config{})

	_, err := g.CreateOrder(500)
	assert.Error(t, err)
}
