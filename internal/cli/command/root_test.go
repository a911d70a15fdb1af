package command

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yndnr/moneytracker-go/internal/core/service"
	"github.com/yndnr/moneytracker-go/internal/storage"
)

func TestApp(t *testing.T) {
	app := App()
	if app.Name != "moneytracker-cli" {
		t.Errorf("Name = %q, want %q", app.Name, "moneytracker-cli")
	}

	names := make(map[string]bool)
	for _, cmd := range app.Commands {
		names[cmd.Name] = true
	}
	for _, name := range []string{
		"login", "register", "logout", "whoami", "refresh", "profile",
		"wallets", "transactions", "categories", "dashboard", "sources", "config", "version", "shell",
	} {
		if !names[name] {
			t.Errorf("missing command %q", name)
		}
	}
}

func TestApp_Subcommands(t *testing.T) {
	want := map[string][]string{
		"profile":      {"show", "update"},
		"wallets":      {"list", "get", "favorites", "set-favorite", "create", "update", "delete", "transfer"},
		"transactions": {"list", "get", "range", "balance", "create", "update", "delete"},
		"categories":   {"list", "get", "income", "expense", "system", "create", "update", "delete"},
		"dashboard":    {"summary", "net-worth"},
	}

	app := App()
	for _, cmd := range app.Commands {
		subs, ok := want[cmd.Name]
		if !ok {
			continue
		}
		for _, sub := range subs {
			if cmd.Command(sub) == nil {
				t.Errorf("%s: missing subcommand %q", cmd.Name, sub)
			}
		}
	}
}

func TestApp_GlobalFlags(t *testing.T) {
	flags := make(map[string]bool)
	for _, f := range App().Flags {
		flags[f.Names()[0]] = true
	}
	for _, name := range []string{"config", "mode", "base-url", "output", "wide", "ephemeral", "verbose", "metrics"} {
		if !flags[name] {
			t.Errorf("missing global flag %q", name)
		}
	}
}

func TestApp_RejectsUnknownOutput(t *testing.T) {
	env := newTestEnv(t, "mock", "", "")
	r := env.run("--output", "xml", "version")
	if r.err == nil || !strings.Contains(r.err.Error(), "unknown output format") {
		t.Fatalf("err = %v, want unknown output format", r.err)
	}
}

func TestMock_LoginPersistsTokens(t *testing.T) {
	env := newTestEnv(t, "mock", "", "")

	out := env.mustRun("-o", "json", "login", "--email", service.DemoEmail, "--password", service.DemoPassword)
	var got authResult
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if got.Email != service.DemoEmail || got.Source != "mock" {
		t.Errorf("login result = %+v", got)
	}
	if strings.Contains(out, "mock-access-token") {
		t.Error("login output must not contain tokens")
	}

	// A new process finds the stored tokens but not the in-memory user.
	out = env.mustRun("whoami")
	if !strings.Contains(out, "Logged in") {
		t.Errorf("whoami = %q, want logged-in notice", out)
	}

	env.mustRun("logout")
	r := env.run("whoami")
	if r.err == nil || !strings.Contains(r.err.Error(), "not logged in") {
		t.Errorf("whoami after logout: err = %v", r.err)
	}
}

func TestMock_LoginRejectsBadPassword(t *testing.T) {
	env := newTestEnv(t, "mock", "", "")
	r := env.run("login", "--email", service.DemoEmail, "--password", "nope")
	if r.err == nil || r.err.Error() != "Invalid email or password" {
		t.Fatalf("err = %v, want Invalid email or password", r.err)
	}
}

func TestMock_LoginReadsPasswordFromStdin(t *testing.T) {
	env := newTestEnv(t, "mock", "", "")
	env.stdin = service.DemoPassword + "\n"

	out := env.mustRun("--ephemeral", "login", "--email", service.DemoEmail)
	if !strings.Contains(out, service.DemoEmail) {
		t.Errorf("output = %q", out)
	}
}

func TestMock_Register(t *testing.T) {
	env := newTestEnv(t, "mock", "", "")

	out := env.mustRun("--ephemeral", "-o", "json", "register", "--email", "new@example.com",
		"--password", "pw", "--first-name", "New")
	if !strings.Contains(out, `"email": "new@example.com"`) {
		t.Errorf("output = %q", out)
	}

	r := env.run("--ephemeral", "register", "--email", service.ExistingEmail, "--password", "pw")
	if r.err == nil || r.err.Error() != "Email already exists" {
		t.Errorf("err = %v, want Email already exists", r.err)
	}
}

func TestMock_Wallets(t *testing.T) {
	env := newTestEnv(t, "mock", "", "")

	out := env.mustRun("--ephemeral", "-o", "json", "wallets", "list")
	var wallets []map[string]any
	if err := json.Unmarshal([]byte(out), &wallets); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(wallets) != 10 {
		t.Errorf("wallets = %d, want 10", len(wallets))
	}

	out = env.mustRun("--ephemeral", "wallets", "get", "1")
	if !strings.HasPrefix(out, "FIELD") || !strings.Contains(out, "balance") {
		t.Errorf("table output = %q", out)
	}

	r := env.run("--ephemeral", "wallets", "get")
	if r.err == nil || r.err.Error() != "wallet ID required" {
		t.Errorf("err = %v, want wallet ID required", r.err)
	}

	r = env.run("--ephemeral", "wallets", "transfer", "1", "--to", "1")
	if r.err == nil {
		t.Error("self transfer should fail")
	}
}

func TestMock_TransactionsBalance(t *testing.T) {
	env := newTestEnv(t, "mock", "", "")

	out := env.mustRun("--ephemeral", "transactions", "balance", "--wallet", "1")
	if !strings.Contains(out, "4429.50") {
		t.Errorf("balance output = %q", out)
	}

	r := env.run("--ephemeral", "transactions", "range", "--wallet", "1", "--from", "2024-12-10", "--to", "2024-12-01")
	if r.err == nil {
		t.Error("inverted range should fail")
	}
}

func TestMock_Categories(t *testing.T) {
	env := newTestEnv(t, "mock", "", "")

	out := env.mustRun("--ephemeral", "-o", "json", "categories", "income")
	var cats []map[string]any
	if err := json.Unmarshal([]byte(out), &cats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(cats) != 3 {
		t.Errorf("income categories = %d, want 3", len(cats))
	}
}

func TestMock_DashboardNetWorth(t *testing.T) {
	env := newTestEnv(t, "mock", "", "")

	out := env.mustRun("--ephemeral", "dashboard", "net-worth", "--period", "7d")
	if !strings.HasPrefix(out, "DATE") || !strings.Contains(out, "15420.50") {
		t.Errorf("net-worth output = %q", out)
	}

	r := env.run("--ephemeral", "dashboard", "net-worth", "--period", "5Y")
	if r.err == nil {
		t.Error("unknown period should fail")
	}
}

func TestSources_Hybrid(t *testing.T) {
	env := newTestEnv(t, "hybrid", "", "sources:\n  transactions: api\n")

	out := env.mustRun("-o", "json", "sources")
	var got sourcesReport
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	want := map[string]string{
		"auth":         "api",
		"wallets":      "mock",
		"transactions": "api",
		"categories":   "mock",
		"users":        "api",
		"dashboard":    "mock",
	}
	if got.Mode != "hybrid" || len(got.Domains) != len(want) {
		t.Fatalf("report = %+v", got)
	}
	for _, row := range got.Domains {
		if want[row.Domain] != row.Source {
			t.Errorf("%s = %s, want %s", row.Domain, row.Source, want[row.Domain])
		}
	}
}

func TestConfigShow_MasksSecrets(t *testing.T) {
	env := newTestEnv(t, "mock", "", "")
	t.Setenv("MONEYTRACKER_STORAGE_ENCRYPTION_KEY", "super-secret-key")

	out := env.mustRun("config", "show")
	if strings.Contains(out, "super-secret-key") {
		t.Errorf("config show leaked the key: %q", out)
	}
	if !strings.Contains(out, "su************ey") {
		t.Errorf("config show = %q, want masked key", out)
	}
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t, "mock", "", "")
	out := env.mustRun("-o", "json", "version")
	if !strings.Contains(out, `"version"`) || !strings.Contains(out, `"goVersion"`) {
		t.Errorf("version output = %q", out)
	}
}

const loginJSON = `{"accessToken":"a-1","refreshToken":"r-1","tokenType":"Bearer","expiresIn":900,` +
	`"user":{"id":"42","email":"jane@example.com","firstName":"Jane","lastName":"Doe"}}`

func TestAPI_LoginWhoamiLogout(t *testing.T) {
	api := newBackend(t)
	api.handle("POST /api/auth/login", http.StatusOK, loginJSON)
	api.handle("GET /api/auth/me", http.StatusOK, `{"id":"42","email":"jane@example.com"}`)
	api.handle("POST /api/auth/logout", http.StatusInternalServerError, `{"message":"boom"}`)

	env := newTestEnv(t, "api", api.apiURL(), "")

	env.mustRun("login", "--email", "jane@example.com", "--password", "pw")

	out := env.mustRun("-o", "json", "whoami")
	if !strings.Contains(out, `"id": "42"`) {
		t.Errorf("whoami = %q", out)
	}
	if n := api.count("GET /api/auth/me"); n != 1 {
		t.Errorf("/auth/me calls = %d, want 1", n)
	}

	// Server-side logout failure still clears local tokens.
	env.mustRun("logout")
	r := env.run("whoami")
	if r.err == nil || !strings.Contains(r.err.Error(), "not logged in") {
		t.Errorf("whoami after logout: err = %v", r.err)
	}
}

func TestAPI_WhoamiExpiredSession(t *testing.T) {
	api := newBackend(t)
	api.handle("POST /api/auth/login", http.StatusOK, loginJSON)
	api.handle("GET /api/auth/me", http.StatusUnauthorized, `{"message":"expired"}`)
	api.handle("POST /api/auth/refresh", http.StatusUnauthorized, `{"message":"expired"}`)

	env := newTestEnv(t, "api", api.apiURL(), "")
	env.mustRun("login", "--email", "jane@example.com", "--password", "pw")

	r := env.run("whoami")
	if r.err == nil || !strings.Contains(r.err.Error(), "session expired") {
		t.Fatalf("err = %v, want session expired", r.err)
	}
	if n := api.count("POST /api/auth/refresh"); n != 1 {
		t.Errorf("refresh calls = %d, want 1", n)
	}

	// Bootstrap failure cleared the store.
	r = env.run("whoami")
	if r.err == nil || !strings.Contains(r.err.Error(), "not logged in") {
		t.Errorf("second whoami: err = %v", r.err)
	}
}

func TestAPI_WalletsUseStoredToken(t *testing.T) {
	api := newBackend(t)
	api.handle("POST /api/auth/login", http.StatusOK, loginJSON)
	api.handle("GET /api/wallets", http.StatusOK,
		`{"content":[{"id":"w1","name":"Main","type":"BANK_CASH","currency":"PLN","balance":12.5}]}`)

	env := newTestEnv(t, "api", api.apiURL(), "")
	env.mustRun("login", "--email", "jane@example.com", "--password", "pw")

	out := env.mustRun("wallets", "list")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "ID") || !strings.Contains(lines[1], "12.50") {
		t.Errorf("wallets table = %q", out)
	}
}

func TestMetricsFlag(t *testing.T) {
	env := newTestEnv(t, "mock", "", "")
	r := env.run("--ephemeral", "--metrics", "login", "--email", service.DemoEmail, "--password", service.DemoPassword)
	if r.err != nil {
		t.Fatalf("login: %v", r.err)
	}
	if !strings.Contains(r.stderr, "moneytracker_") {
		t.Errorf("stderr = %q, want metrics dump", r.stderr)
	}
}

func TestModeFlagOverridesConfig(t *testing.T) {
	env := newTestEnv(t, "mock", "", "")

	out := env.mustRun("--mode", "api", "--base-url", "https://money.example.com/api", "-o", "json", "sources")
	var got sourcesReport
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if got.Mode != "api" || got.BaseURL != "https://money.example.com/api" {
		t.Errorf("report = %+v", got)
	}
}

func TestAPI_WhoamiWithoutUserDetails(t *testing.T) {
	api := newBackend(t)
	api.handle("POST /api/auth/login", http.StatusOK,
		`{"accessToken":"a-1","refreshToken":"r-1","tokenType":"Bearer","expiresIn":900}`)
	api.handle("GET /api/auth/me", http.StatusOK, "")

	env := newTestEnv(t, "api", api.apiURL(), "")
	env.mustRun("login", "--email", "jane@example.com", "--password", "pw")

	r := env.run("whoami")
	if r.err == nil || r.err.Error() != "server returned no user details" {
		t.Fatalf("err = %v, want server returned no user details", r.err)
	}
	if strings.Contains(r.stdout, "mock mode") {
		t.Errorf("api whoami printed the mock notice: %q", r.stdout)
	}
}

func TestEnv_FailedSetupReleasesTokenStore(t *testing.T) {
	dir := t.TempDir()
	env := newTestEnv(t, "mock", "", "http:\n  ca_file: "+filepath.Join(dir, "missing.pem")+"\n")

	r := env.run("wallets", "list")
	if r.err == nil || !strings.Contains(r.err.Error(), "http.ca_file") {
		t.Fatalf("err = %v, want http.ca_file error", r.err)
	}

	// The directory lock is gone once setup has failed.
	store, err := storage.NewBadgerTokenStore(storage.BadgerConfig{Dir: env.storageDir})
	if err != nil {
		t.Fatalf("reopen token store: %v", err)
	}
	store.Close()
}
