package sheet

import (
	"os"
	"strconv"
	"time"
)

// DefaultTimeout bounds every request to the spreadsheet backend. A timeout
// is a distinct, reportable failure, never a silent retry.
const DefaultTimeout = 10 * time.Second

// Config holds the connection settings for the spreadsheet backend.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// LoadConfig reads the backend settings from the environment:
// REVISA_SHEET_URL and optionally REVISA_TIMEOUT_MS.
func LoadConfig() Config {
	cfg := Config{
		BaseURL: os.Getenv("REVISA_SHEET_URL"),
		Timeout: DefaultTimeout,
	}
	if ms := os.Getenv("REVISA_TIMEOUT_MS"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v > 0 {
			cfg.Timeout = time.Duration(v) * time.Millisecond
		}
	}
	return cfg
}
