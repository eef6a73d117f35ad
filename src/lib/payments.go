package lib

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	razorpay "github.com/razorpay/razorpay-go"

	"github.com/alumniconnect/Backend-Alumni-Connect/src/apperr"
	"github.com/alumniconnect/Backend-Alumni-Connect/src/config"
)

// Gateway is the payment collaborator, set at startup.
var Gateway *PaymentGateway

// PaymentGateway wraps the Razorpay order API. The core only ever consumes
// the boolean outcome of VerifySignature before recording a donation.
type PaymentGateway struct {
	client    *razorpay.Client
	keyID     string
	keySecret string
}

// NewPaymentGateway builds a gateway from config. Without credentials the
// gateway is created but order creation fails with a dependency error.
func NewPaymentGateway(cfg *config.Config) *PaymentGateway {
	return &PaymentGateway{
		client:    razorpay.NewClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret),
		keyID:     cfg.RazorpayKeyID,
		keySecret: cfg.RazorpayKeySecret,
	}
}

// Order is the subset of the gateway order the client needs.
type Order struct {
	Key      string `json:"key"`
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// CreateOrder registers an order for amount (in rupees) with the gateway.
func (g *PaymentGateway) CreateOrder(amount int64) (*Order, error) {
	if g.keyID == "" || g.keySecret == "" {
		return nil, apperr.New(apperr.CodeUnavailable, "Payment gateway not configured")
	}

	receipt := fmt.Sprintf("receipt_order_%d_%s", time.Now().Unix(), uuid.NewString()[:8])
	data := map[string]interface{}{
		"amount":   amount * 100, // smallest currency unit
		"currency": "INR",
		"receipt":  receipt,
	}

	order, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeUnavailable, "Payment order creation failed")
	}

	id, _ := order["id"].(string)
	return &Order{
		Key:      g.keyID,
		ID:       id,
		Amount:   amount * 100,
		Currency: "INR",
	}, nil
}

// VerifySignature checks the gateway callback signature: HMAC-SHA256 of
// "orderID|paymentID" under the key secret, hex encoded.
func (g *PaymentGateway) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(g.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
