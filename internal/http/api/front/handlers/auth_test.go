package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dawati-cards/dawati/internal/security"
	"github.com/gin-gonic/gin"
)

func TestRegisterCreatesUserAndIssuesToken(t *testing.T) {
	conn := testDB(t)
	h := NewAuthHandler(conn, testJWTConfig())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPost, "/v0/front/register", map[string]string{
		"name":     "Sara",
		"email":    "Sara@Example.com",
		"password": "secret1",
	})

	h.Register(c)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID    uint64 `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	if errDecode := json.Unmarshal(w.Body.Bytes(), &resp); errDecode != nil {
		t.Fatalf("decode response: %v", errDecode)
	}
	if resp.Token == "" {
		t.Fatalf("expected a token in the response")
	}
	if resp.User.Email != "sara@example.com" {
		t.Fatalf("expected lowercased email, got %q", resp.User.Email)
	}

	claims, errParse := security.ParseToken("test-secret", resp.Token)
	if errParse != nil {
		t.Fatalf("parse issued token: %v", errParse)
	}
	if claims.UserID != resp.User.ID {
		t.Fatalf("token user id %d does not match response %d", claims.UserID, resp.User.ID)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	conn := testDB(t)
	testUser(t, conn, "taken@example.com")
	h := NewAuthHandler(conn, testJWTConfig())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPost, "/v0/front/register", map[string]string{
		"name":     "Other",
		"email":    "taken@example.com",
		"password": "secret1",
	})

	h.Register(c)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	conn := testDB(t)
	h := NewAuthHandler(conn, testJWTConfig())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPost, "/v0/front/register", map[string]string{
		"name":     "Sara",
		"email":    "sara@example.com",
		"password": "short",
	})

	h.Register(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestLoginVerifiesPassword(t *testing.T) {
	conn := testDB(t)
	hash, errHash := security.HashPassword("secret1")
	if errHash != nil {
		t.Fatalf("hash password: %v", errHash)
	}
	user := testUser(t, conn, "login@example.com")
	if errSave := conn.Model(&user).Update("password", hash).Error; errSave != nil {
		t.Fatalf("set password: %v", errSave)
	}
	h := NewAuthHandler(conn, testJWTConfig())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPost, "/v0/front/login", map[string]string{
		"email":    "login@example.com",
		"password": "secret1",
	})
	h.Login(c)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d body=%s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPost, "/v0/front/login", map[string]string{
		"email":    "login@example.com",
		"password": "wrong-pass",
	})
	h.Login(c)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 for wrong password, got %d", w.Code)
	}
}

func TestLoginUnknownEmailReturnsUnauthorized(t *testing.T) {
	conn := testDB(t)
	h := NewAuthHandler(conn, testJWTConfig())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPost, "/v0/front/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "whatever",
	})

	h.Login(c)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestSessionReturnsCurrentUser(t *testing.T) {
	conn := testDB(t)
	user := testUser(t, conn, "me@example.com")
	h := NewSessionHandler(conn)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("userID", user.ID)
	c.Request = httptest.NewRequest(http.MethodGet, "/v0/front/session", nil)

	h.Get(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		ID    uint64 `json:"id"`
		Email string `json:"email"`
	}
	if errDecode := json.Unmarshal(w.Body.Bytes(), &resp); errDecode != nil {
		t.Fatalf("decode response: %v", errDecode)
	}
	if resp.ID != user.ID || resp.Email != "me@example.com" {
		t.Fatalf("unexpected session payload: %+v", resp)
	}
}
