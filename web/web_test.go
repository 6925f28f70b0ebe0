package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"quote-ui/database"
	"quote-ui/logger"

	"github.com/gin-gonic/gin"
	"github.com/op/go-logging"
)

func TestMain(m *testing.M) {
	logger.InitLogger(logging.ERROR)
	if err := database.InitTestDB(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	engine, err := NewServer().initRouter()
	if err != nil {
		t.Fatalf("initRouter() err = %v", err)
	}
	return engine
}

// sessionCookie extracts the session cookie from a response, empty when none
// was set.
func sessionCookie(w *httptest.ResponseRecorder) string {
	for _, raw := range w.Header().Values("Set-Cookie") {
		if strings.HasPrefix(raw, "quote-ui=") {
			return strings.SplitN(raw, ";", 2)[0]
		}
	}
	return ""
}

func doGet(engine *gin.Engine, path string, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func doPost(engine *gin.Engine, path string, form url.Values, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

// locationMessage splits a redirect target into its path and decoded message.
func locationMessage(t *testing.T, w *httptest.ResponseRecorder) (string, string) {
	t.Helper()
	loc := w.Header().Get("Location")
	u, err := url.Parse(loc)
	if err != nil {
		t.Fatalf("bad redirect location %q: %v", loc, err)
	}
	return u.Path, u.Query().Get("message")
}

func login(t *testing.T, engine *gin.Engine, email string, password string) (string, *httptest.ResponseRecorder) {
	t.Helper()
	w := doPost(engine, "/login", url.Values{
		"email":    {email},
		"password": {password},
	}, "")
	return sessionCookie(w), w
}

func TestRegisterLoginDashboardFlow(t *testing.T) {
	engine := newTestEngine(t)

	w := doPost(engine, "/register", url.Values{
		"name":     {"A"},
		"email":    {"a@x.com"},
		"password": {"p"},
	}, "")
	if w.Code != http.StatusFound {
		t.Fatalf("register status = %d, expected 302", w.Code)
	}
	if path, _ := locationMessage(t, w); path != "/login" {
		t.Fatalf("register redirect = %q, expected /login", path)
	}

	cookie, w := login(t, engine, "a@x.com", "p")
	if cookie == "" {
		t.Fatal("login did not set a session cookie")
	}
	if path, _ := locationMessage(t, w); path != "/" {
		t.Fatalf("user login redirect = %q, expected /", path)
	}

	w = doGet(engine, "/", cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("dashboard status = %d, expected 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "a@x.com") {
		t.Error("dashboard does not greet the logged-in user")
	}
}

func TestRegisterDuplicateEmailRedirectsToLogin(t *testing.T) {
	engine := newTestEngine(t)

	form := url.Values{
		"name":     {"B"},
		"email":    {"b@x.com"},
		"password": {"p"},
	}
	doPost(engine, "/register", form, "")
	w := doPost(engine, "/register", form, "")

	path, msg := locationMessage(t, w)
	if path != "/login" || msg != "Email already registered!" {
		t.Errorf("duplicate register redirect = %q message = %q", path, msg)
	}
}

func TestLoginFailures(t *testing.T) {
	engine := newTestEngine(t)

	doPost(engine, "/register", url.Values{
		"name":     {"C"},
		"email":    {"c@x.com"},
		"password": {"right"},
	}, "")

	tests := []struct {
		name     string
		email    string
		password string
		path     string
		message  string
	}{
		{"unregistered email", "missing@x.com", "p", "/register", "You need to register first!"},
		{"wrong password", "c@x.com", "wrong", "/login", "Incorrect password!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, w := login(t, engine, tt.email, tt.password)
			path, msg := locationMessage(t, w)
			if path != tt.path || msg != tt.message {
				t.Errorf("redirect = %q message = %q, expected %q / %q", path, msg, tt.path, tt.message)
			}
		})
	}
}

func TestAdminLoginRedirectsToAdminDashboard(t *testing.T) {
	engine := newTestEngine(t)

	cookie, w := login(t, engine, "admin@gmail.com", "admin")
	if cookie == "" {
		t.Fatal("admin login did not set a session cookie")
	}
	if path, _ := locationMessage(t, w); path != "/admin" {
		t.Fatalf("admin login redirect = %q, expected /admin", path)
	}

	w = doGet(engine, "/admin", cookie)
	if w.Code != http.StatusOK {
		t.Errorf("admin dashboard status = %d, expected 200", w.Code)
	}
}

func TestAdminGuard(t *testing.T) {
	engine := newTestEngine(t)

	doPost(engine, "/register", url.Values{
		"name":     {"D"},
		"email":    {"d@x.com"},
		"password": {"p"},
	}, "")
	userCookie, _ := login(t, engine, "d@x.com", "p")

	adminPaths := []string{"/admin", "/admin/users", "/admin/summary", "/admin/authors", "/admin/quotes"}

	for _, path := range adminPaths {
		t.Run("anonymous "+path, func(t *testing.T) {
			w := doGet(engine, path, "")
			redirect, msg := locationMessage(t, w)
			if redirect != "/login" || msg != "You need to log in first!" {
				t.Errorf("redirect = %q message = %q", redirect, msg)
			}
		})
		t.Run("non-admin "+path, func(t *testing.T) {
			w := doGet(engine, path, userCookie)
			redirect, msg := locationMessage(t, w)
			if redirect != "/" || msg != "You do not have permission to access this page!" {
				t.Errorf("redirect = %q message = %q", redirect, msg)
			}
		})
	}
}

func TestAdminAuthorAndQuoteCRUD(t *testing.T) {
	engine := newTestEngine(t)
	cookie, _ := login(t, engine, "admin@gmail.com", "admin")

	w := doPost(engine, "/admin/authors", url.Values{
		"name":        {"Diogenes"},
		"description": {"Cynic"},
		"image":       {"https://img.example/diogenes.jpg"},
	}, cookie)
	if path, msg := locationMessage(t, w); path != "/admin/authors" || msg != "Author added successfully!" {
		t.Fatalf("create author redirect = %q message = %q", path, msg)
	}

	w = doGet(engine, "/admin/authors", cookie)
	if !strings.Contains(w.Body.String(), "Diogenes") {
		t.Fatal("author list does not show the created author")
	}

	w = doPost(engine, "/admin/quotes", url.Values{
		"text":      {"I am looking for an honest man."},
		"author_id": {"1"},
	}, cookie)
	if path, msg := locationMessage(t, w); path != "/admin/quotes" || msg != "Quote added successfully!" {
		t.Fatalf("create quote redirect = %q message = %q", path, msg)
	}

	w = doPost(engine, "/admin/quotes", url.Values{
		"text":      {"orphan"},
		"author_id": {"99999"},
	}, cookie)
	if _, msg := locationMessage(t, w); msg != "Author not found!" {
		t.Errorf("quote with missing author message = %q", msg)
	}
}

func TestMissingIdRedirectsToList(t *testing.T) {
	engine := newTestEngine(t)
	cookie, _ := login(t, engine, "admin@gmail.com", "admin")

	tests := []struct {
		name    string
		path    string
		list    string
		message string
	}{
		{"author detail", "/admin/authors/99999", "/admin/authors", "Author not found!"},
		{"author bad id", "/admin/authors/abc", "/admin/authors", "Author not found!"},
		{"quote detail", "/admin/quotes/99999", "/admin/quotes", "Quote not found!"},
		{"quote bad id", "/admin/quotes/abc", "/admin/quotes", "Quote not found!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(engine, tt.path, cookie)
			path, msg := locationMessage(t, w)
			if path != tt.list || msg != tt.message {
				t.Errorf("redirect = %q message = %q, expected %q / %q", path, msg, tt.list, tt.message)
			}
		})
	}
}

func TestLogoutClearsSession(t *testing.T) {
	engine := newTestEngine(t)

	doPost(engine, "/register", url.Values{
		"name":     {"E"},
		"email":    {"e@x.com"},
		"password": {"p"},
	}, "")
	cookie, _ := login(t, engine, "e@x.com", "p")

	w := doGet(engine, "/logout", cookie)
	path, msg := locationMessage(t, w)
	if path != "/login" || msg != "You have been logged out!" {
		t.Fatalf("logout redirect = %q message = %q", path, msg)
	}

	cleared := sessionCookie(w)
	if cleared == "" {
		cleared = cookie
	}
	w = doGet(engine, "/", cleared)
	if path, _ := locationMessage(t, w); path != "/login" {
		t.Errorf("dashboard after logout redirect = %q, expected /login", path)
	}
}
