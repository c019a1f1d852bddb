package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/nahid-mahmud/diacare-server/internal/middleware"
	"github.com/nahid-mahmud/diacare-server/internal/utils"
)

var testSecret = []byte("test-secret")

func tokenFor(t *testing.T, email string) string {
	t.Helper()
	token, err := utils.SignClaims(map[string]interface{}{"email": email}, testSecret)
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}
	return token
}

func do(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireTokenMissingHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middleware.RequireToken(testSecret), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := do(r, http.MethodGet, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "unauthorized access")
}

func TestRequireTokenInvalidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middleware.RequireToken(testSecret), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := do(r, http.MethodGet, "/protected", "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireTokenPropagatesEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middleware.RequireToken(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString(middleware.ClaimedEmailKey)})
	})

	w := do(r, http.MethodGet, "/protected", tokenFor(t, "user@example.com"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user@example.com")
}

func TestRequireSelf(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/users/:email", middleware.RequireToken(testSecret), middleware.RequireSelf("email"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	token := tokenFor(t, "user@example.com")

	w := do(r, http.MethodGet, "/users/user@example.com", token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/users/other@example.com", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "forbidden access")
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	adminRouter := func(check middleware.AdminChecker) *gin.Engine {
		r := gin.New()
		r.GET("/admin", middleware.RequireToken(testSecret), middleware.RequireAdmin(check), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return r
	}

	token := tokenFor(t, "user@example.com")

	isAdmin := func(ctx context.Context, email string) (bool, error) { return true, nil }
	w := do(adminRouter(isAdmin), http.MethodGet, "/admin", token)
	assert.Equal(t, http.StatusOK, w.Code)

	notAdmin := func(ctx context.Context, email string) (bool, error) { return false, nil }
	w = do(adminRouter(notAdmin), http.MethodGet, "/admin", token)
	assert.Equal(t, http.StatusForbidden, w.Code)

	lookupFails := func(ctx context.Context, email string) (bool, error) { return false, errors.New("db down") }
	w = do(adminRouter(lookupFails), http.MethodGet, "/admin", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdminChecksClaimedEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var seen string
	check := func(ctx context.Context, email string) (bool, error) {
		seen = email
		return true, nil
	}

	r := gin.New()
	r.GET("/admin", middleware.RequireToken(testSecret), middleware.RequireAdmin(check), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	do(r, http.MethodGet, "/admin", tokenFor(t, "admin@example.com"))
	assert.Equal(t, "admin@example.com", seen)
}
