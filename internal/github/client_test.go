package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/apperr"
)

// fakeGitHub is a minimal stand-in for the REST endpoints the client uses.
type fakeGitHub struct {
	t *testing.T

	mu        sync.Mutex
	userFails int
	repos     map[string]bool
	failFiles map[string]bool
	probeCode int
	deleteErr bool

	uploads  []string
	messages []string
	contents map[string]string
	created  []map[string]any
	auth     []string
}

func newFake(t *testing.T) (*fakeGitHub, *Client) {
	f := &fakeGitHub{
		t:         t,
		repos:     map[string]bool{},
		failFiles: map[string]bool{},
		contents:  map[string]string{},
		probeCode: http.StatusNotFound,
	}
	srv := httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(srv.Close)

	c, err := NewClient(Config{Token: "secret", BaseURL: srv.URL, UploadDelay: 0})
	require.NoError(t, err)
	return f, c
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (f *fakeGitHub) serve(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.auth = append(f.auth, r.Header.Get("Authorization"))

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/user":
		if f.userFails > 0 {
			f.userFails--
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Bad credentials"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"login": "alice"})

	case r.Method == http.MethodPost && r.URL.Path == "/user/repos":
		var body map[string]any
		assert.NoError(f.t, json.NewDecoder(r.Body).Decode(&body))
		f.created = append(f.created, body)
		name := body["name"].(string)
		f.repos[name] = true
		writeJSON(w, http.StatusCreated, map[string]any{
			"name":      name,
			"full_name": "alice/" + name,
			"html_url":  "https://github.com/alice/" + name,
			"clone_url": "https://github.com/alice/" + name + ".git",
			"ssh_url":   "git@github.com:alice/" + name + ".git",
		})

	case strings.HasPrefix(r.URL.Path, "/repos/alice/"):
		rest := strings.TrimPrefix(r.URL.Path, "/repos/alice/")
		name, filePath, isContent := strings.Cut(rest, "/contents/")
		switch {
		case isContent && r.Method == http.MethodPut:
			if f.failFiles[filePath] {
				writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"message": "sha wasn't supplied"})
				return
			}
			var body struct {
				Message string `json:"message"`
				Content []byte `json:"content"`
				Branch  string `json:"branch"`
			}
			assert.NoError(f.t, json.NewDecoder(r.Body).Decode(&body))
			f.uploads = append(f.uploads, filePath)
			f.messages = append(f.messages, body.Message)
			f.contents[filePath] = string(body.Content)
			writeJSON(w, http.StatusCreated, map[string]any{"content": map[string]any{"path": filePath}})
		case r.Method == http.MethodDelete:
			if f.deleteErr {
				writeJSON(w, http.StatusForbidden, map[string]string{"message": "Must have admin rights"})
				return
			}
			delete(f.repos, name)
			w.WriteHeader(http.StatusNoContent)
		case r.Method == http.MethodGet && name == probeRepo && !f.repos[name]:
			writeJSON(w, f.probeCode, map[string]string{"message": "probe"})
		case r.Method == http.MethodGet && f.repos[name]:
			writeJSON(w, http.StatusOK, map[string]any{
				"name":      name,
				"full_name": "alice/" + name,
				"html_url":  "https://github.com/alice/" + name,
			})
		default:
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not Found"})
		}

	default:
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not Found"})
	}
}

func TestRepositoryName(t *testing.T) {
	assert.Equal(t, "my-project", RepositoryName("My Project"))
	assert.Equal(t, "snake-case-name", RepositoryName("snake_case name"))
	assert.Equal(t, "already-fine", RepositoryName("already-fine"))
}

func TestClient_CreateRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("creates under the account", func(t *testing.T) {
		f, c := newFake(t)

		info, err := c.CreateRepository(ctx, "My Project", "desc", false)
		require.NoError(t, err)
		assert.Equal(t, "my-project", info.Name)
		assert.Equal(t, "alice/my-project", info.FullName)
		assert.Equal(t, "https://github.com/alice/my-project", info.HTMLURL)

		require.Len(t, f.created, 1)
		assert.Equal(t, "my-project", f.created[0]["name"])
		assert.Equal(t, "desc", f.created[0]["description"])
		assert.Equal(t, false, f.created[0]["private"])
		assert.Equal(t, false, f.created[0]["auto_init"])
		assert.Equal(t, "Bearer secret", f.auth[0])
	})

	t.Run("existing repository is rejected", func(t *testing.T) {
		f, c := newFake(t)
		f.repos["demo"] = true

		_, err := c.CreateRepository(ctx, "demo", "desc", false)
		require.Error(t, err)
		assert.True(t, apperr.Is(err, apperr.KindGitHub))
		assert.Contains(t, err.Error(), "Repository 'demo' already exists")
		assert.Empty(t, f.created)
	})

	t.Run("account lookup failure is not cached", func(t *testing.T) {
		f, c := newFake(t)
		f.userFails = 1

		_, err := c.CreateRepository(ctx, "demo", "desc", false)
		require.Error(t, err)
		assert.True(t, apperr.Is(err, apperr.KindGitHub))
		assert.Contains(t, err.Error(), "Failed to get GitHub user")

		_, err = c.CreateRepository(ctx, "demo", "desc", false)
		require.NoError(t, err)
	})
}

func TestClient_CreateFiles(t *testing.T) {
	ctx := context.Background()

	t.Run("uploads in path order and skips failures", func(t *testing.T) {
		f, c := newFake(t)
		f.repos["demo"] = true
		f.failFiles["b.txt"] = true

		files := map[string]string{
			"c/main.py": "print('hi')",
			"a.md":      "# demo",
			"b.txt":     "boom",
		}
		results, err := c.CreateFiles(ctx, "demo", files, "Initial commit: demo")
		require.NoError(t, err)

		require.Len(t, results, 3)
		assert.Equal(t, FileResult{Path: "a.md", Success: true}, results[0])
		assert.Equal(t, "b.txt", results[1].Path)
		assert.False(t, results[1].Success)
		assert.NotEmpty(t, results[1].Error)
		assert.True(t, results[2].Success)

		assert.Equal(t, []string{"a.md", "c/main.py"}, f.uploads)
		assert.Equal(t, "Initial commit: demo: Add a.md", f.messages[0])
		assert.Equal(t, "print('hi')", f.contents["c/main.py"])
	})

	t.Run("missing repository is an error", func(t *testing.T) {
		_, c := newFake(t)

		_, err := c.CreateFiles(ctx, "ghost", map[string]string{"a": "b"}, "msg")
		require.Error(t, err)
		assert.True(t, apperr.Is(err, apperr.KindGitHub))
	})

	t.Run("paces uploads", func(t *testing.T) {
		f, c := newFake(t)
		f.repos["demo"] = true
		c.delay = 30 * time.Millisecond

		start := time.Now()
		_, err := c.CreateFiles(ctx, "demo", map[string]string{"a": "1", "b": "2", "c": "3"}, "msg")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 55*time.Millisecond)
	})
}

func TestClient_GetRepository(t *testing.T) {
	f, c := newFake(t)
	f.repos["demo"] = true
	ctx := context.Background()

	info, err := c.GetRepository(ctx, "demo")
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "alice/demo", info.FullName)

	info, err = c.GetRepository(ctx, "ghost")
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestClient_DeleteRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes", func(t *testing.T) {
		f, c := newFake(t)
		f.repos["demo"] = true

		require.NoError(t, c.DeleteRepository(ctx, "demo"))
		assert.False(t, f.repos["demo"])
	})

	t.Run("failure is a github error", func(t *testing.T) {
		f, c := newFake(t)
		f.deleteErr = true

		err := c.DeleteRepository(ctx, "demo")
		require.Error(t, err)
		assert.True(t, apperr.Is(err, apperr.KindGitHub))
	})
}

func TestClient_TestConnection(t *testing.T) {
	ctx := context.Background()

	t.Run("404 probe counts as connected", func(t *testing.T) {
		_, c := newFake(t)
		assert.True(t, c.TestConnection(ctx))
	})

	t.Run("server error is disconnected", func(t *testing.T) {
		f, c := newFake(t)
		f.probeCode = http.StatusInternalServerError
		assert.False(t, c.TestConnection(ctx))
	})

	t.Run("bad credentials is disconnected", func(t *testing.T) {
		f, c := newFake(t)
		f.userFails = 10
		assert.False(t, c.TestConnection(ctx))
	})
}
