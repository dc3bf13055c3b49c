package payment

import (
	"crypto/hmac"   // Keyed hashing and constant-time comparison
	"crypto/sha256" // HMAC hash function
	"encoding/hex"  // Hex encoding of the digest
)

// ExpectedSignature computes the hex-encoded HMAC-SHA256 digest of
// "orderID|paymentID" keyed with the provider secret. This is the
// signature Razorpay attaches to a successful checkout.
func ExpectedSignature(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature reports whether the supplied signature matches the
// expected one. The comparison is constant-time.
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	expected := ExpectedSignature(orderID, paymentID, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}
