package payment

import (
	razorpay "github.com/razorpay/razorpay-go" // Razorpay SDK
)

// OrderCreator creates an order with the payment provider. Handlers
// depend on this interface so tests can substitute a fake provider.
type OrderCreator interface {
	// CreateOrder registers an order for the given amount in paise and
	// returns the provider's order object
	CreateOrder(amountPaise int64, currency, receipt string, notes map[string]interface{}) (map[string]interface{}, error)
}

// RazorpayClient implements OrderCreator against the Razorpay Orders API
type RazorpayClient struct {
	client *razorpay.Client // Underlying SDK client
}

// NewRazorpayClient builds a client from the API key pair
func NewRazorpayClient(keyID, keySecret string) *RazorpayClient {
	return &RazorpayClient{client: razorpay.NewClient(keyID, keySecret)}
}

// CreateOrder creates a Razorpay order
func (r *RazorpayClient) CreateOrder(amountPaise int64, currency, receipt string, notes map[string]interface{}) (map[string]interface{}, error) {
	data := map[string]interface{}{
		"amount":   amountPaise, // Smallest currency unit
		"currency": currency,    // e.g. INR
		"receipt":  receipt,     // Caller-side reference
		"notes":    notes,       // Metadata linking back to the user
	}
	return r.client.Order.Create(data, nil)
}
