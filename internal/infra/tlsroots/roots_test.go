package tlsroots

import (
	"encoding/pem"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

// serverCertPEM returns the PEM form of srv's self-signed certificate.
func serverCertPEM(srv *httptest.Server) []byte {
	return pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: srv.Certificate().Raw})
}

func newTLSServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, "ok")
	}))
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, pool *Pool, url string) error {
	t.Helper()
	client := &http.Client{Transport: &http.Transport{TLSClientConfig: pool.TLSConfig()}}
	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func TestPool_TrustsAddedCertificate(t *testing.T) {
	srv := newTLSServer(t)

	if err := get(t, NewEmptyPool(), srv.URL); err == nil {
		t.Fatal("empty pool trusted the test server")
	}

	pool := NewEmptyPool()
	if err := pool.AddCertPEM(serverCertPEM(srv)); err != nil {
		t.Fatalf("AddCertPEM() = %v", err)
	}
	if err := get(t, pool, srv.URL); err != nil {
		t.Errorf("GET with trusted root: %v", err)
	}
}

func TestAddCertPEM_NoCerts(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"garbage", []byte("not a certificate")},
		{"key only", pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: []byte{1, 2, 3}})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := NewEmptyPool().AddCertPEM(tt.data); !errors.Is(err, ErrNoCertsFound) {
				t.Errorf("AddCertPEM() = %v, want ErrNoCertsFound", err)
			}
		})
	}
}

func TestAddCertPEM_InvalidCert(t *testing.T) {
	invalid := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: []byte("invalid")})
	err := NewEmptyPool().AddCertPEM(invalid)
	if err == nil || errors.Is(err, ErrNoCertsFound) {
		t.Errorf("AddCertPEM() = %v, want parse error", err)
	}
}

func TestAddCertDir(t *testing.T) {
	srv := newTLSServer(t)
	dir := t.TempDir()

	if err := os.WriteFile(filepath.Join(dir, "ca.CRT"), serverCertPEM(srv), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "README"), []byte("ignored"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.pem"), 0o700); err != nil {
		t.Fatal(err)
	}

	pool := NewEmptyPool()
	if err := pool.AddCertDir(dir); err != nil {
		t.Fatalf("AddCertDir() = %v", err)
	}
	if err := get(t, pool, srv.URL); err != nil {
		t.Errorf("GET with directory root: %v", err)
	}
}

func TestAddCertDir_Errors(t *testing.T) {
	if err := NewEmptyPool().AddCertDir(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("missing dir: want error")
	}
	if err := NewEmptyPool().AddCertDir(t.TempDir()); !errors.Is(err, ErrNoCertsFound) {
		t.Errorf("empty dir: err = %v, want ErrNoCertsFound", err)
	}

	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "bad.pem"), []byte("junk"), 0o600)
	if err := NewEmptyPool().AddCertDir(dir); !errors.Is(err, ErrNoCertsFound) {
		t.Errorf("bad file: err = %v, want ErrNoCertsFound", err)
	}
}

func TestLoad(t *testing.T) {
	srv := newTLSServer(t)
	file := filepath.Join(t.TempDir(), "ca.pem")
	if err := os.WriteFile(file, serverCertPEM(srv), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil || cfg != nil {
		t.Errorf("Load(\"\") = %v, %v; want nil, nil", cfg, err)
	}

	cfg, err = Load(file)
	if err != nil {
		t.Fatalf("Load(file) = %v", err)
	}
	client := &http.Client{Transport: &http.Transport{TLSClientConfig: cfg}}
	resp, err := client.Get(srv.URL)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()

	if _, err := Load(filepath.Join(t.TempDir(), "absent.pem")); err == nil {
		t.Error("Load(missing) should fail")
	}
}
