package config

import "time"

// ClientConfig is the complete client configuration.
type ClientConfig struct {
	API     APISection     `koanf:"api"`
	Sources SourcesSection `koanf:"sources"`
	Storage StorageSection `koanf:"storage"`
	HTTP    HTTPSection    `koanf:"http"`
	Auth    AuthSection    `koanf:"auth"`
	Log     LogSection     `koanf:"log"`
}

// APISection selects the data mode and backend location.
type APISection struct {
	// Mode is mock, api or hybrid. Anything else resolves to mock.
	Mode    string `koanf:"mode"`
	BaseURL string `koanf:"base_url"`
}

// SourcesSection holds per-domain overrides. Only "mock" and "api" take effect.
type SourcesSection struct {
	Wallets      string `koanf:"wallets"`
	Transactions string `koanf:"transactions"`
}

// StorageSection configures the token store.
type StorageSection struct {
	Dir           string `koanf:"dir"`
	EncryptionKey string `koanf:"encryption_key"`
}

// HTTPSection configures the gateway transport.
type HTTPSection struct {
	// Timeout of 0 leaves timing to the transport.
	Timeout              time.Duration `koanf:"timeout"`
	MaxRequestsPerSecond float64       `koanf:"max_requests_per_second"`
	Burst                int           `koanf:"burst"`

	// CAFile is a PEM file or directory of extra trusted roots.
	CAFile string `koanf:"ca_file"`
}

// AuthSection configures authentication behaviour.
type AuthSection struct {
	// MockDelay is the artificial latency of mock login and register.
	MockDelay time.Duration `koanf:"mock_delay"`
}

// LogSection configures diagnostics output.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}
