package api

import (
	"context"  // Context for Redis operations
	"fmt"      // Receipt formatting
	"net/http" // HTTP status codes
	"time"     // Timestamps and cache TTL

	"checkout_system/internal/config"     // Reward configuration
	"checkout_system/internal/domain"     // Domain models
	"checkout_system/internal/middleware" // Auth gate context access
	"checkout_system/internal/payment"    // Provider client and signature check
	"checkout_system/internal/utils"      // Cache utilities

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Structured logging
	"gorm.io/gorm"                 // GORM ORM library
)

// historyCacheTTL bounds staleness of the cached payment history
const historyCacheTTL = 60 * time.Second

// orderCurrency is the only currency this checkout handles
const orderCurrency = "INR"

// CreateOrderRequest is the body of POST /api/payments/create-order
type CreateOrderRequest struct {
	Amount int64 `json:"amount" binding:"required,gte=1"` // Amount in rupees, at least 1
}

// VerifyRequest is the body of POST /api/payments/verify
type VerifyRequest struct {
	OrderID   string `json:"razorpay_order_id" binding:"required"`   // Provider order id
	PaymentID string `json:"razorpay_payment_id" binding:"required"` // Provider payment id
	Signature string `json:"razorpay_signature" binding:"required"`  // Provider signature
}

// PaymentView is the projection returned by the history endpoint
type PaymentView struct {
	ID        uint      `json:"id"`         // Payment ID
	Amount    int64     `json:"amount"`     // Amount in rupees
	Status    string    `json:"status"`     // created or completed
	Verified  bool      `json:"verified"`   // Whether the signature check passed
	CreatedAt time.Time `json:"created_at"` // Timestamp of creation
	PaymentID string    `json:"payment_id"` // Provider payment reference
}

// CreateOrderHandler creates a provider order and records it as pending
func CreateOrderHandler(db *gorm.DB, rdb *redis.Client, orders payment.OrderCreator) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c) // Resolved by the auth gate
		if !ok {
			respondError(c, http.StatusUnauthorized, "Authentication required")
			return
		}
		var req CreateOrderRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil || req.Amount < 1 {
			respondError(c, http.StatusBadRequest, "Amount must be a positive integer")
			return
		}
		// Provider keys are optional at startup but required here
		if orders == nil {
			respondServerError(c, "Payment provider is not configured", nil)
			return
		}
		// Receipt uniqueness is best-effort: user id plus current time
		receipt := fmt.Sprintf("rcpt_%d_%d", user.ID, time.Now().Unix())
		notes := map[string]interface{}{"user_id": fmt.Sprintf("%d", user.ID)}
		// The provider takes the amount in paise
		order, err := orders.CreateOrder(req.Amount*100, orderCurrency, receipt, notes)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": user.ID,     // Buyer
				"amount":  req.Amount,  // Rupees
				"error":   err.Error(), // Error message
			}).Error("Order creation failed")
			respondServerError(c, "Failed to create payment order", err)
			return
		}
		orderID, _ := order["id"].(string) // Provider order reference
		// Persist the pending payment with the rupee amount
		p := domain.Payment{
			UserID:  user.ID,                     // Owning user
			OrderID: orderID,                     // Provider order reference
			Amount:  req.Amount,                  // Rupees as received from the client
			Status:  domain.PaymentStatusCreated, // Awaiting verification
		}
		if err := db.Create(&p).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id":  user.ID,     // Buyer
				"order_id": orderID,     // Provider order reference
				"error":    err.Error(), // Error message
			}).Error("Failed to record payment")
			respondServerError(c, "Failed to record payment", err)
			return
		}
		// Log order creation
		logrus.WithFields(logrus.Fields{
			"user_id":  user.ID,    // Buyer
			"order_id": orderID,    // Provider order reference
			"amount":   req.Amount, // Rupees
		}).Info("Payment order created")
		// Invalidate the cached history for this user
		if rdb != nil {
			_ = utils.DeleteCache(context.Background(), rdb, utils.HistoryCacheKey(user.ID))
		}
		// Return the provider order object and the amount
		respondSuccess(c, http.StatusOK, "", gin.H{
			"order":  order,      // Provider order object
			"amount": req.Amount, // Rupees
		})
	}
}

// VerifyPaymentHandler checks the provider signature and completes the payment
func VerifyPaymentHandler(db *gorm.DB, rdb *redis.Client, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c) // Resolved by the auth gate
		if !ok {
			respondError(c, http.StatusUnauthorized, "Authentication required")
			return
		}
		var req VerifyRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "Order id, payment id and signature are required")
			return
		}
		// Recompute the expected signature and compare constant-time;
		// a mismatch mutates nothing
		if !payment.VerifySignature(req.OrderID, req.PaymentID, req.Signature, cfg.RazorpaySecret) {
			logrus.WithFields(logrus.Fields{
				"user_id":  user.ID,     // Caller
				"order_id": req.OrderID, // Claimed order
			}).Warn("Payment signature mismatch")
			respondError(c, http.StatusBadRequest, "Payment verification failed")
			return
		}
		// Only a pending payment owned by the caller can complete.
		// Completed rows are excluded so verified_at is written once.
		var p domain.Payment
		err := db.Where("user_id = ? AND order_id = ? AND status = ?",
			user.ID, req.OrderID, domain.PaymentStatusCreated).First(&p).Error
		if err != nil {
			respondError(c, http.StatusNotFound, "Payment not found")
			return
		}
		now := time.Now() // Verification timestamp
		updates := map[string]interface{}{
			"payment_id":  req.PaymentID,                 // Provider payment reference
			"signature":   req.Signature,                 // Validated signature
			"verified":    true,                          // Signature check passed
			"status":      domain.PaymentStatusCompleted, // Terminal state
			"verified_at": &now,                          // Set exactly once
		}
		if err := db.Model(&p).Updates(updates).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id":  user.ID,     // Buyer
				"order_id": req.OrderID, // Provider order reference
				"error":    err.Error(), // Error message
			}).Error("Payment completion failed")
			respondServerError(c, "Failed to update payment", err)
			return
		}
		// Log the completed payment
		logrus.WithFields(logrus.Fields{
			"user_id":    user.ID,       // Buyer
			"order_id":   req.OrderID,   // Provider order reference
			"payment_id": req.PaymentID, // Provider payment reference
			"amount":     p.Amount,      // Rupees
		}).Info("Payment verified")
		// Invalidate the cached history for this user
		if rdb != nil {
			_ = utils.DeleteCache(context.Background(), rdb, utils.HistoryCacheKey(user.ID))
		}
		// The reward is static for the single product on sale
		respondSuccess(c, http.StatusOK, "Payment verified successfully", gin.H{
			"coupon":       cfg.CouponCode,  // Coupon code
			"redirect_url": cfg.RedirectURL, // Where the front end sends the buyer
		})
	}
}

// HistoryHandler returns the caller's payments, newest first
func HistoryHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c) // Resolved by the auth gate
		if !ok {
			respondError(c, http.StatusUnauthorized, "Authentication required")
			return
		}
		ctx := context.Background()                 // Context for Redis operations
		cacheKey := utils.HistoryCacheKey(user.ID) // Cache key for this user's history
		// Try the cache first
		if rdb != nil {
			var cached []PaymentView
			found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
			if err == nil && found {
				respondSuccess(c, http.StatusOK, "", gin.H{"payments": cached, "cached": true})
				return
			}
		}
		var payments []domain.Payment // The caller's payments
		if err := db.Where("user_id = ?", user.ID).Order("created_at desc").Find(&payments).Error; err != nil {
			respondServerError(c, "Failed to fetch payments", err)
			return
		}
		// Project to the history view
		views := make([]PaymentView, len(payments))
		for i, p := range payments {
			views[i] = PaymentView{
				ID:        p.ID,        // Payment ID
				Amount:    p.Amount,    // Rupees
				Status:    p.Status,    // created or completed
				Verified:  p.Verified,  // Signature check result
				CreatedAt: p.CreatedAt, // Timestamp of creation
				PaymentID: p.PaymentID, // Provider payment reference
			}
		}
		// Cache the projection for future requests
		if rdb != nil {
			_ = utils.SetCache(ctx, rdb, cacheKey, views, historyCacheTTL)
		}
		respondSuccess(c, http.StatusOK, "", gin.H{"payments": views, "cached": false})
	}
}
