package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mvisser/enroll/internal/api/middleware"
	"github.com/mvisser/enroll/internal/core/service"
	"github.com/mvisser/enroll/internal/infrastructure/sqlite"
	"github.com/mvisser/enroll/internal/infrastructure/uploads"
	"github.com/mvisser/enroll/internal/web"
)

const testSessionSecret = "test-secret"

// testEnv holds all test dependencies
type testEnv struct {
	db             *sqlite.DB
	uploadDir      string
	router         *gin.Engine
	accountService *service.AccountService
	sessionService *service.SessionService
	profileService *service.ProfileService
}

// setupTestEnv creates a test environment with an in-memory SQLite database
// and a temporary upload directory
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	uploadDir := t.TempDir()
	imageStore, err := uploads.NewImageStore(uploadDir, 2*1024*1024, []string{"png", "jpg", "jpeg", "pdf"})
	if err != nil {
		t.Fatalf("failed to create image store: %v", err)
	}

	userRepo := sqlite.NewUserRepository(db)
	accountService := service.NewAccountService(userRepo)
	sessionService := service.NewSessionService(testSessionSecret, "HS256")
	profileService := service.NewProfileService(userRepo)

	authHandler := NewAuthHandler(accountService, sessionService)
	registerHandler := NewRegisterHandler(accountService, imageStore)
	profileHandler := NewProfileHandler(profileService)

	// Setup gin router in test mode with the same routes as the server
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.SetHTMLTemplate(web.Templates())

	router.GET("/", authHandler.ShowLogin)
	router.POST("/", authHandler.Login)
	router.GET("/register", registerHandler.Show)
	router.POST("/register", registerHandler.Register)
	router.GET("/profile", middleware.SessionMiddleware(sessionService), profileHandler.Show)

	return &testEnv{
		db:             db,
		uploadDir:      uploadDir,
		router:         router,
		accountService: accountService,
		sessionService: sessionService,
		profileService: profileService,
	}
}

// cleanup closes the test database
func (env *testEnv) cleanup() {
	if env.db != nil {
		env.db.Close()
	}
}

// postForm performs a urlencoded POST and returns the response
func (env *testEnv) postForm(t *testing.T, path string, values url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// postMultipart performs a multipart POST with the given fields and an
// optional file part named "image"
func (env *testEnv) postMultipart(t *testing.T, path string, fields map[string]string, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for key, value := range fields {
		if err := mw.WriteField(key, value); err != nil {
			t.Fatalf("failed to write field %s: %v", key, err)
		}
	}
	if filename != "" {
		part, err := mw.CreateFormFile("image", filename)
		if err != nil {
			t.Fatalf("failed to create file part: %v", err)
		}
		if _, err := part.Write(content); err != nil {
			t.Fatalf("failed to write file part: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, path, &body)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// get performs a GET request, attaching the given cookies
func (env *testEnv) get(t *testing.T, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// registerUser creates a user directly through the account service
func (env *testEnv) registerUser(t *testing.T, username, password string) int64 {
	t.Helper()

	user, err := env.accountService.Register(context.Background(), service.RegisterInput{
		Name:      "Test User",
		Birthdate: "2000-06-15",
		Address:   "1 Test Street",
		Username:  username,
		Password:  password,
	})
	if err != nil {
		t.Fatalf("failed to register user %s: %v", username, err)
	}
	return user.ID
}

// countUsers returns the number of rows in the user table
func (env *testEnv) countUsers(t *testing.T) int {
	t.Helper()

	var count int
	if err := env.db.Get(&count, "SELECT COUNT(*) FROM user"); err != nil {
		t.Fatalf("failed to count users: %v", err)
	}
	return count
}

// responseCookie returns the named cookie set by the response, or nil
func responseCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

// assertRedirect fails unless the response is a 303 to the given location
func assertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d: %s", http.StatusSeeOther, w.Code, w.Body.String())
	}
	if got := w.Header().Get("Location"); got != location {
		t.Fatalf("expected redirect to %q, got %q", location, got)
	}
}

// registerFields returns a valid registration form
func registerFields(username string) map[string]string {
	return map[string]string{
		"name":             "Test User",
		"bday":             "2000-06-15",
		"address":          "1 Test Street",
		"username":         username,
		"password":         "opensesame",
		"confirm_password": "opensesame",
	}
}
