package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notewall/notewall/models"
)

// newStubServer runs a minimal server that issues a session cookie on login
// and requires it on the note routes, so cookie-jar behaviour is exercised
// end to end.
func newStubServer(t *testing.T) *httptest.Server {
	t.Helper()

	sessionToken := uuid.NewString()
	mux := http.NewServeMux()

	// Method-qualified mux patterns need Go 1.22+; this module is built with
	// Go 1.21, so each handler checks the method itself.
	mux.HandleFunc("/api/users/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}

		var creds struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "Parameters missing."})
			return
		}

		if creds.Password != "s3cret" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Invalid credentials"})
			return
		}

		http.SetCookie(w, &http.Cookie{Name: "session_id", Value: sessionToken, Path: "/"})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.User{UserID: 1, Username: creds.Username})
	})

	mux.HandleFunc("/api/users/signup", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}

		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "Username is already in use. Please choose a different one or log in instead."})
	})

	mux.HandleFunc("/api/notes", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}

		cookie, err := r.Cookie("session_id")
		if err != nil || cookie.Value != sessionToken {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "User not authenticated."})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]models.Note{
			{NoteID: uuid.New(), UserID: 1, Title: "groceries"},
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv
}

// TestClient_CookiePersistence verifies the session cookie from Login is
// replayed on later calls.
func TestClient_CookiePersistence(t *testing.T) {
	srv := newStubServer(t)

	c, err := New(srv.URL)
	require.NoError(t, err)

	// unauthenticated list fails
	_, err = c.ListNotes(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)

	user, err := c.Login(context.Background(), "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	notes, err := c.ListNotes(context.Background())
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "groceries", notes[0].Title)
}

// TestClient_ErrorMapping verifies 401 and 409 map onto sentinels carrying
// the server message.
func TestClient_ErrorMapping(t *testing.T) {
	srv := newStubServer(t)

	c, err := New(srv.URL)
	require.NoError(t, err)

	_, err = c.Login(context.Background(), "alice", "wrong")
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "Invalid credentials")

	_, err = c.SignUp(context.Background(), "alice", "alice@example.com", "pw")
	require.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "Username is already in use")
}
