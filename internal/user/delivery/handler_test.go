package delivery

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"vrikzo-backend/internal/user/domain"
	"vrikzo-backend/internal/user/repository"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_fk=1", name, time.Now().UnixNano())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite memory: %v", err)
	}
	if err := db.AutoMigrate(&domain.EmailUser{}); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	h := NewUserHandler(repository.NewGormEmailUserRepository(db))
	r := gin.New()
	r.POST("/api/users/registerEmail", h.RegisterEmail)
	return r, db
}

func TestRegisterEmail(t *testing.T) {
	t.Parallel()
	r, db := newTestRouter(t)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/users/registerEmail", strings.NewReader(`{"email":" User@Example.COM "}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("attempt %d: expected 200, got %d: %s", i, w.Code, w.Body.String())
		}
	}

	var users []domain.EmailUser
	if err := db.Find(&users).Error; err != nil {
		t.Fatalf("fetch users: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected a single registry row, got %d", len(users))
	}
	if users[0].Email != "user@example.com" {
		t.Fatalf("email not normalized: %q", users[0].Email)
	}
}

func TestRegisterEmailRequiresEmail(t *testing.T) {
	t.Parallel()
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/users/registerEmail", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
