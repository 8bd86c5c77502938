package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestReadEnvironment(t *testing.T) {
	t.Setenv("PAYEER_ACCOUNT", "P1000000")
	t.Setenv("PAYEER_API_ID", "12345")
	t.Setenv("PAYEER_API_PASS", "secret")
	t.Setenv("PAYEER_TIMEOUT", "5s")
	t.Setenv("NOTIFY_ALLOWED_IPS", "1.1.1.1,2.2.2.2")
	t.Setenv("LOG_LEVEL", "DEBUG")

	conf, err := Read("")
	require.NoError(t, err)
	require.Equal(t, "P1000000", conf.Account)
	require.Equal(t, 5*time.Second, conf.Timeout)
	require.Equal(t, []string{"1.1.1.1", "2.2.2.2"}, conf.NotifyAllowedIPs)
	require.Equal(t, slog.LevelDebug, conf.LogLevel)
	require.Equal(t, ":8080", conf.NotifyAddr)
	require.NoError(t, conf.CheckCredentials())
	require.ErrorIs(t, conf.CheckShop(), ErrNoShop)
}

func TestReadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PAYEER_SHOP_ID=777\nPAYEER_SHOP_KEY=from-file\n"), 0o600))
	t.Setenv("PAYEER_SHOP_KEY", "from-env")
	// registered so the value loaded from the file is cleaned up
	t.Setenv("PAYEER_SHOP_ID", "")
	os.Unsetenv("PAYEER_SHOP_ID")

	conf, err := Read(path)
	require.NoError(t, err)
	require.Equal(t, "777", conf.ShopId)
	require.Equal(t, "from-env", conf.ShopKey)
	require.NoError(t, conf.CheckShop())
}

func TestReadMissingEnvFile(t *testing.T) {
	t.Setenv("PAYEER_ACCOUNT", "")

	conf, err := Read(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	require.ErrorIs(t, conf.CheckCredentials(), ErrNoCredentials)
	require.Equal(t, 30*time.Second, conf.Timeout)
}
