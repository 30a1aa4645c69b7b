package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dawati-cards/dawati/internal/card"
	dbpkg "github.com/dawati-cards/dawati/internal/db"
	"github.com/dawati-cards/dawati/internal/models"
	"github.com/dawati-cards/dawati/internal/render"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func testRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	conn, errOpen := dbpkg.Open(":memory:")
	if errOpen != nil {
		t.Fatalf("open db: %v", errOpen)
	}
	if errMigrate := dbpkg.Migrate(conn); errMigrate != nil {
		t.Fatalf("migrate db: %v", errMigrate)
	}
	renderer, errNew := render.New()
	if errNew != nil {
		t.Fatalf("new renderer: %v", errNew)
	}
	r := gin.New()
	RegisterWebRoutes(r, conn, renderer, t.TempDir())
	return r, conn
}

func seedCard(t *testing.T, conn *gorm.DB, publicID string) models.Card {
	t.Helper()
	user := models.User{Name: "Owner", Email: publicID + "@example.com", Password: "hashed"}
	if errCreate := conn.Create(&user).Error; errCreate != nil {
		t.Fatalf("create user: %v", errCreate)
	}
	fields, errSeed := card.DefaultFieldsJSON(models.CardTypeWedding)
	if errSeed != nil {
		t.Fatalf("seed fields: %v", errSeed)
	}
	m := models.Card{
		PublicID: publicID,
		UserID:   user.ID,
		Type:     models.CardTypeWedding,
		Title:    "دعوة زفاف",
		Fields:   []byte(fields),
		Width:    models.DefaultCardWidth,
	}
	if errCreate := conn.Create(&m).Error; errCreate != nil {
		t.Fatalf("create card: %v", errCreate)
	}
	return m
}

func get(r *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestShareViewRendersPublicCard(t *testing.T) {
	r, conn := testRouter(t)
	seedCard(t, conn, "share-ok")

	w := get(r, "/card/share-ok")

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "wedding-card-professional") {
		t.Fatal("expected the wedding card fragment in the page")
	}
	if strings.Contains(body, "contenteditable") {
		t.Fatal("public share page must not be editable")
	}
	if !strings.Contains(body, card.DefaultGroomName) {
		t.Fatal("expected seeded groom name in the page")
	}
}

func TestShareViewUnknownCardShowsNotFoundPage(t *testing.T) {
	r, _ := testRouter(t)

	w := get(r, "/card/no-such-card")

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "البطاقة غير موجودة") {
		t.Fatal("expected the not-found heading")
	}
	if !strings.Contains(body, `href="/"`) {
		t.Fatal("expected a home action on the error page")
	}
}

func TestShareViewRejectsPlaceholderIDs(t *testing.T) {
	r, _ := testRouter(t)

	for _, id := range []string{"undefined", "null", "Undefined"} {
		w := get(r, "/card/"+id)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("id %q: expected status 400, got %d", id, w.Code)
		}
		if !strings.Contains(w.Body.String(), "رابط غير صالح") {
			t.Fatalf("id %q: expected the invalid-link heading", id)
		}
	}
}
