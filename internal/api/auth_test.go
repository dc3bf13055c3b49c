package api

import (
	"net/http"
	"testing"

	"checkout_system/internal/domain"
	"checkout_system/internal/middleware"
	"checkout_system/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.POST("/api/auth/signup", SignupHandler(db, testJWTSecret))
	r.POST("/api/auth/login", LoginHandler(db, testJWTSecret))
	r.GET("/api/auth/me", middleware.AuthRequired(db, testJWTSecret), MeHandler())
	return r
}

func TestSignup_TokenResolvesToNewUser(t *testing.T) {
	db := newTestDB(t)
	r := newAuthRouter(db)

	code, envelope := doJSON(t, r, http.MethodPost, "/api/auth/signup", "", gin.H{
		"name":     "Asha",
		"email":    "asha@example.com",
		"password": "longenough1",
	})
	require.Equal(t, http.StatusCreated, code)
	require.Equal(t, true, envelope["success"])

	data := dataField(t, envelope)
	token, _ := data["token"].(string)
	require.NotEmpty(t, token)

	// The hash must never leak through the user view
	user, ok := data["user"].(map[string]interface{})
	require.True(t, ok)
	require.NotContains(t, user, "password")

	// Verifying the issued token yields the created user's id
	claims, err := utils.ParseJWT(token, testJWTSecret)
	require.NoError(t, err)
	var created domain.User
	require.NoError(t, db.Where("email = ?", "asha@example.com").First(&created).Error)
	require.Equal(t, created.ID, claims.UserID)
}

func TestSignup_MissingFields(t *testing.T) {
	db := newTestDB(t)
	r := newAuthRouter(db)

	code, envelope := doJSON(t, r, http.MethodPost, "/api/auth/signup", "", gin.H{"email": "x@example.com"})
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, false, envelope["success"])
}

func TestSignup_ShortPassword(t *testing.T) {
	db := newTestDB(t)
	r := newAuthRouter(db)

	code, envelope := doJSON(t, r, http.MethodPost, "/api/auth/signup", "", gin.H{
		"name": "Asha", "email": "asha@example.com", "password": "short7c",
	})
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "Password must be at least 8 characters", envelope["error"])
}

func TestSignup_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	r := newAuthRouter(db)
	seedUser(t, db, "asha@example.com")

	// Password value is irrelevant to the conflict
	for _, password := range []string{"longenough1", "anotherlongone"} {
		code, envelope := doJSON(t, r, http.MethodPost, "/api/auth/signup", "", gin.H{
			"name": "Imposter", "email": "asha@example.com", "password": password,
		})
		require.Equal(t, http.StatusBadRequest, code)
		require.Equal(t, "User already exists", envelope["error"])
	}
}

func TestLogin_Success(t *testing.T) {
	db := newTestDB(t)
	r := newAuthRouter(db)
	seeded, _ := seedUser(t, db, "asha@example.com")

	code, envelope := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "asha@example.com", "password": "hunter2hunter2",
	})
	require.Equal(t, http.StatusOK, code)

	data := dataField(t, envelope)
	token, _ := data["token"].(string)
	claims, err := utils.ParseJWT(token, testJWTSecret)
	require.NoError(t, err)
	require.Equal(t, seeded.ID, claims.UserID)
}

func TestLogin_IdenticalErrorForBothFailures(t *testing.T) {
	db := newTestDB(t)
	r := newAuthRouter(db)
	seedUser(t, db, "asha@example.com")

	// Unknown email
	codeA, envelopeA := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "nobody@example.com", "password": "hunter2hunter2",
	})
	// Wrong password for a real account
	codeB, envelopeB := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "asha@example.com", "password": "wrong-password",
	})

	require.Equal(t, http.StatusUnauthorized, codeA)
	require.Equal(t, http.StatusUnauthorized, codeB)
	require.Equal(t, envelopeA["error"], envelopeB["error"])
	require.Equal(t, "Invalid email or password", envelopeA["error"])
}

func TestLogin_MissingFields(t *testing.T) {
	db := newTestDB(t)
	r := newAuthRouter(db)

	code, _ := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{"email": "asha@example.com"})
	require.Equal(t, http.StatusBadRequest, code)
}

func TestMe(t *testing.T) {
	db := newTestDB(t)
	r := newAuthRouter(db)
	seeded, token := seedUser(t, db, "asha@example.com")

	code, envelope := doJSON(t, r, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, code)

	user, ok := dataField(t, envelope)["user"].(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, float64(seeded.ID), user["id"])
	require.Equal(t, "asha@example.com", user["email"])
	require.NotContains(t, user, "password")

	// No token, no profile
	code, _ = doJSON(t, r, http.MethodGet, "/api/auth/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, code)
}
