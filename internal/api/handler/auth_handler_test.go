package handler

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/mvisser/enroll/internal/api/middleware"
)

func TestLoginSuccess(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()

	env.registerUser(t, "alice", "opensesame")

	w := env.postForm(t, "/", url.Values{
		"username": {"alice"},
		"password": {"opensesame"},
	})

	assertRedirect(t, w, "/profile")

	session := responseCookie(w, middleware.SessionCookie)
	if session == nil || session.Value == "" {
		t.Fatal("expected a session cookie on successful login")
	}
	if !session.HttpOnly {
		t.Fatal("expected the session cookie to be http-only")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()

	env.registerUser(t, "alice", "opensesame")

	w := env.postForm(t, "/", url.Values{
		"username": {"alice"},
		"password": {"not-the-password"},
	})

	assertRedirect(t, w, "/")
	if responseCookie(w, middleware.SessionCookie) != nil {
		t.Fatal("expected no session cookie on failed login")
	}
}

func TestLoginFailureDoesNotRevealWhichFieldWasWrong(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()

	env.registerUser(t, "alice", "opensesame")

	wrongPassword := env.postForm(t, "/", url.Values{
		"username": {"alice"},
		"password": {"not-the-password"},
	})
	unknownUser := env.postForm(t, "/", url.Values{
		"username": {"nobody"},
		"password": {"whatever"},
	})

	assertRedirect(t, wrongPassword, "/")
	assertRedirect(t, unknownUser, "/")

	// Both failures must carry the identical flash message.
	first := responseCookie(wrongPassword, "enroll_flash")
	second := responseCookie(unknownUser, "enroll_flash")
	if first == nil || second == nil {
		t.Fatal("expected flash cookies on both failed logins")
	}
	if first.Value != second.Value {
		t.Fatalf("flash messages differ: %q vs %q", first.Value, second.Value)
	}
}

func TestRegisterLoginRoundTrip(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()

	w := env.postMultipart(t, "/register", registerFields("alice"), "", nil)
	assertRedirect(t, w, "/")

	// The registration password authenticates.
	w = env.postForm(t, "/", url.Values{
		"username": {"alice"},
		"password": {"opensesame"},
	})
	assertRedirect(t, w, "/profile")

	// Any other password does not.
	w = env.postForm(t, "/", url.Values{
		"username": {"alice"},
		"password": {"opensesame2"},
	})
	assertRedirect(t, w, "/")
}

func TestShowLoginRendersForm(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()

	w := env.get(t, "/")

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `name="username"`) || !strings.Contains(body, `name="password"`) {
		t.Fatalf("expected login form fields in body: %s", body)
	}
}
