package command

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/urfave/cli/v2"
)

// testEnv is a scratch home for one test: a config file and a token
// store directory that survive across several CLI invocations.
type testEnv struct {
	t          *testing.T
	configPath string
	storageDir string
	stdin      string
}

// newTestEnv writes a config that selects mode and points the token store
// into t.TempDir. extra is appended verbatim to the YAML.
func newTestEnv(t *testing.T, mode, baseURL, extra string) *testEnv {
	t.Helper()

	dir := t.TempDir()
	if baseURL == "" {
		baseURL = "http://localhost:8080/api"
	}
	cfg := fmt.Sprintf(`api:
  mode: %s
  base_url: %s
storage:
  dir: %s
auth:
  mock_delay: 0s
%s`, mode, baseURL, filepath.Join(dir, "tokens"), extra)

	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(cfg), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return &testEnv{t: t, configPath: path, storageDir: filepath.Join(dir, "tokens")}
}

// result is the captured outcome of one invocation.
type result struct {
	stdout string
	stderr string
	err    error
}

// run executes the CLI with the test config and returns its output.
func (e *testEnv) run(args ...string) result {
	e.t.Helper()

	var stdout, stderr bytes.Buffer
	app := App()
	app.Writer = &stdout
	app.ErrWriter = &stderr
	app.Reader = strings.NewReader(e.stdin)
	app.ExitErrHandler = func(*cli.Context, error) {}

	argv := append([]string{"moneytracker-cli", "--config", e.configPath}, args...)
	err := app.RunContext(context.Background(), argv)
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// mustRun is run that fails the test on error.
func (e *testEnv) mustRun(args ...string) string {
	e.t.Helper()
	r := e.run(args...)
	if r.err != nil {
		e.t.Fatalf("%v: %v\nstderr: %s", args, r.err, r.stderr)
	}
	return r.stdout
}

// backend is a fake REST API mounted under /api.
type backend struct {
	*httptest.Server

	mu     sync.Mutex
	routes map[string]http.HandlerFunc
	seen   []string
}

func newBackend(t *testing.T) *backend {
	t.Helper()
	b := &backend{routes: make(map[string]http.HandlerFunc)}
	b.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		b.mu.Lock()
		b.seen = append(b.seen, key)
		h, ok := b.routes[key]
		b.mu.Unlock()
		if !ok {
			http.Error(w, `{"message":"no route"}`, http.StatusNotFound)
			return
		}
		h(w, r)
	}))
	t.Cleanup(b.Close)
	return b
}

// handle registers a JSON response for "METHOD /api/path".
func (b *backend) handle(route string, status int, body string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.routes[route] = func(w http.ResponseWriter, r *http.Request) {
		io.Copy(io.Discard, r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	}
}

func (b *backend) count(route string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, s := range b.seen {
		if s == route {
			n++
		}
	}
	return n
}

func (b *backend) apiURL() string {
	return b.URL + "/api"
}
