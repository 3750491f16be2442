package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/smith-legal/staff-portal/internal/models"
	"github.com/smith-legal/staff-portal/internal/repositories/postgres"
	"github.com/smith-legal/staff-portal/internal/services"
	"github.com/smith-legal/staff-portal/internal/token"
	"github.com/smith-legal/staff-portal/internal/utils"
	"github.com/smith-legal/staff-portal/internal/validator"
)

const testSessionMaxAge = time.Hour

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
	codec  *token.Codec
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Account{}, &models.Profile{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	staticDir := t.TempDir()
	for _, page := range []string{"login.html", "home.html"} {
		if err := os.WriteFile(filepath.Join(staticDir, page), []byte("<html>"+page+"</html>"), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", page, err)
		}
	}

	slogLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	log := utils.NewSlogLogger(slogLogger)
	repo := postgres.NewRepository(db)
	codec := token.NewCodec("test-secret", testSessionMaxAge)
	serviceManager := services.NewDefaultServiceManager(db, repo, slogLogger, validator.New())

	router := gin.New()
	SetupMiddleware(router, log)
	NewHandlerManager(serviceManager, codec, testSessionMaxAge, staticDir, log).SetupRoutes(router)

	return &testServer{router: router, db: db, codec: codec}
}

func (ts *testServer) seedUser(t *testing.T, password, firstName, lastName string) uint {
	t.Helper()

	dob, err := time.Parse(models.DateLayout, "1975-02-20")
	if err != nil {
		t.Fatalf("failed to parse seed date: %v", err)
	}
	account := &models.Account{Password: password}
	profile := &models.Profile{
		FirstName:   firstName,
		LastName:    lastName,
		DateOfBirth: datatypes.Date(dob),
		Province:    "Western Cape",
		Gender:      "Male",
	}
	repo := postgres.NewUserPostgreSQL(ts.db)
	if err := repo.Create(context.Background(), account, profile); err != nil {
		t.Fatalf("failed to seed user %s: %v", lastName, err)
	}
	return account.ID
}

func (ts *testServer) do(t *testing.T, method, path string, body any, cookie *http.Cookie, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

// login performs a login request and returns the session cookie.
func (ts *testServer) login(t *testing.T, surname, password string) *http.Cookie {
	t.Helper()

	w := ts.do(t, http.MethodPost, "/api/auth/login", map[string]string{
		"surname":  surname,
		"password": password,
	}, nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("login returned %d: %s", w.Code, w.Body.String())
	}

	for _, c := range w.Result().Cookies() {
		if c.Name == SessionCookieName && c.Value != "" {
			return c
		}
	}
	t.Fatal("login response did not set the session cookie")
	return nil
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, dest any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dest); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}
