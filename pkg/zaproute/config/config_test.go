package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_QueryKeyword(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    QueryKeyword
		enabled bool
	}{
		{"default", ``, "route", true},
		{"string", `query_keyword = "page"`, "page", true},
		{"true means default", `query_keyword = true`, "route", true},
		{"false disables", `query_keyword = false`, "", false},
		{"blank disables", `query_keyword = "  "`, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.QueryKeyword)
			assert.Equal(t, tt.enabled, cfg.QueryKeyword.Enabled())
		})
	}
}

func TestParse_QueryKeywordWrongType(t *testing.T) {
	_, err := Parse(`query_keyword = 3`)
	assert.Error(t, err)
}

func TestParse_Full(t *testing.T) {
	cfg, err := Parse(`
query_keyword = "route"
index = "Links"
language = "nb"

[server]
addr = "127.0.0.1:9000"
session_ttl = "5m"

[log]
level = "debug"
path = "/tmp/zaproute.log"
`)
	require.NoError(t, err)

	assert.Equal(t, "Links", cfg.Index)
	assert.Equal(t, "nb", cfg.Language)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, 5*time.Minute, cfg.Server.SessionTTL)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/zaproute.log", cfg.Log.Path)
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := Parse("[server]\nport = 80\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.port")
}

func TestParse_InvalidTTL(t *testing.T) {
	_, err := Parse("[server]\nsession_ttl = \"-1s\"\n")
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	t.Run("missing file gives defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "zaproute.toml")
		require.NoError(t, os.WriteFile(path, []byte("index = \"Queries\"\n"), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "Queries", cfg.Index)
		assert.Equal(t, QueryKeyword("route"), cfg.QueryKeyword)
	})

	t.Run("bad file reports path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.toml")
		require.NoError(t, os.WriteFile(path, []byte("index = \n"), 0644))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), path)
	})
}
