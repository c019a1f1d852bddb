package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestIsValidRole(t *testing.T) {
	assert.True(t, isValidRole("admin"))
	assert.True(t, isValidRole("user"))
	assert.False(t, isValidRole(""))
	assert.False(t, isValidRole("Admin"))
	assert.False(t, isValidRole("superuser"))
}

func TestIsValidAccountStatus(t *testing.T) {
	assert.True(t, isValidAccountStatus("active"))
	assert.True(t, isValidAccountStatus("blocked"))
	assert.False(t, isValidAccountStatus(""))
	assert.False(t, isValidAccountStatus("Active"))
	assert.False(t, isValidAccountStatus("disabled"))
}

func patchJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Enum validation runs before any database access, so a nil-DB Handler is
// enough to exercise the rejection paths.
func TestUpdateUserRoleRejectsInvalidValue(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &Handler{}
	r := gin.New()
	r.PATCH("/users/role/:id", h.UpdateUserRole)

	id := primitive.NewObjectID().Hex()
	for _, body := range []string{`{}`, `{"role": ""}`, `{"role": "root"}`, `{"role": "Admin"}`} {
		w := patchJSON(r, "/users/role/"+id, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
		assert.Contains(t, w.Body.String(), "Invalid role value")
	}
}

func TestUpdateUserStatusRejectsInvalidValue(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &Handler{}
	r := gin.New()
	r.PATCH("/users/status/:id", h.UpdateUserStatus)

	id := primitive.NewObjectID().Hex()
	for _, body := range []string{`{}`, `{"status": ""}`, `{"status": "suspended"}`} {
		w := patchJSON(r, "/users/status/"+id, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
		assert.Contains(t, w.Body.String(), "Invalid status value")
	}
}
