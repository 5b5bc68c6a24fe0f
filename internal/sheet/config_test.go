package sheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("REVISA_SHEET_URL", "https://example.com/exec")
	t.Setenv("REVISA_TIMEOUT_MS", "2500")

	cfg := LoadConfig()
	assert.Equal(t, "https://example.com/exec", cfg.BaseURL)
	assert.Equal(t, 2500*time.Millisecond, cfg.Timeout)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("REVISA_SHEET_URL", "https://example.com/exec")
	t.Setenv("REVISA_TIMEOUT_MS", "")

	cfg := LoadConfig()
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
}

func TestLoadConfig_BadTimeoutIgnored(t *testing.T) {
	t.Setenv("REVISA_SHEET_URL", "https://example.com/exec")
	for _, bad := range []string{"abc", "-5", "0"} {
		t.Setenv("REVISA_TIMEOUT_MS", bad)
		assert.Equal(t, DefaultTimeout, LoadConfig().Timeout, "value %q", bad)
	}
}
