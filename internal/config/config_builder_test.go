// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBaseEnv() map[string]string {
	return map[string]string{
		"APP_TOKEN_SIGN_KEY":      "env-secret",
		"STORAGE_DB_DATABASE_URI": "sqlite://env.db",
	}
}

func TestLoadStructuredConfig_EnvOnly(t *testing.T) {
	// Arrange
	setEnvVars(t, validBaseEnv())
	chdir(t, t.TempDir())

	// Act
	cfg, err := LoadStructuredConfig(nil)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "env-secret", cfg.App.TokenSignKey)
	assert.Equal(t, "sqlite://env.db", cfg.Storage.DB.DSN)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestLoadStructuredConfig_FlagsOverrideEnv(t *testing.T) {
	// Arrange
	setEnvVars(t, validBaseEnv())
	chdir(t, t.TempDir())

	// Act
	cfg, err := LoadStructuredConfig([]string{"-a", "localhost:9999", "-d", "postgres://flag/db"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "localhost:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://flag/db", cfg.Storage.DB.DSN)
	assert.Equal(t, "env-secret", cfg.App.TokenSignKey)
}

func TestLoadStructuredConfig_JSONOverridesFlags(t *testing.T) {
	// Arrange
	setEnvVars(t, validBaseEnv())
	chdir(t, t.TempDir())
	path := writeJSONConfig(t, `{"server": {"http_address": ":7000"}, "breach": {"cache_max_age": 5}}`)

	// Act
	cfg, err := LoadStructuredConfig([]string{"-a", "localhost:9999", "-c", path})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.HTTPAddress)
	assert.Equal(t, 5, cfg.Breach.CacheMaxAge)
	assert.Equal(t, "sqlite://env.db", cfg.Storage.DB.DSN)
}

func TestLoadStructuredConfig_DotEnvFile(t *testing.T) {
	// Arrange
	clearEnvVars(t)
	chdir(t, t.TempDir())
	envPath := filepath.Join(t.TempDir(), "vault.env")
	require.NoError(t, os.WriteFile(envPath, []byte(
		"APP_TOKEN_SIGN_KEY=dotenv-secret\nSTORAGE_DB_DATABASE_URI=sqlite://dotenv.db\n",
	), 0o600))

	// Act
	cfg, err := LoadStructuredConfig([]string{"-env-file", envPath})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "dotenv-secret", cfg.App.TokenSignKey)
	assert.Equal(t, "sqlite://dotenv.db", cfg.Storage.DB.DSN)
	assert.Equal(t, envPath, cfg.EnvFilePath)
}

func TestLoadStructuredConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		args    []string
		wantErr error
	}{
		{
			name:    "missing dsn",
			env:     map[string]string{"APP_TOKEN_SIGN_KEY": "k"},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing sign key",
			env:     map[string]string{"STORAGE_DB_DATABASE_URI": "sqlite://x.db"},
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name: "non-positive request timeout",
			env: map[string]string{
				"APP_TOKEN_SIGN_KEY":      "k",
				"STORAGE_DB_DATABASE_URI": "sqlite://x.db",
				"SERVER_REQUEST_TIMEOUT":  "-1s",
			},
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name: "relative breach url",
			env: map[string]string{
				"APP_TOKEN_SIGN_KEY":      "k",
				"STORAGE_DB_DATABASE_URI": "sqlite://x.db",
				"HIBP_API_BASE":           "/api/v3",
			},
			wantErr: ErrInvalidBreachConfigs,
		},
		{
			name: "non-positive breach timeout",
			env: map[string]string{
				"APP_TOKEN_SIGN_KEY":      "k",
				"STORAGE_DB_DATABASE_URI": "sqlite://x.db",
				"BREACH_CONNECT_TIMEOUT":  "0s",
			},
			wantErr: ErrInvalidBreachConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, tt.env)
			chdir(t, t.TempDir())

			_, err := LoadStructuredConfig(tt.args)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadStructuredConfig_BadFlag(t *testing.T) {
	setEnvVars(t, validBaseEnv())
	chdir(t, t.TempDir())

	_, err := LoadStructuredConfig([]string{"-unknown"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error occurred during building config")
}

func TestLoadStructuredConfig_MissingJSONFile(t *testing.T) {
	setEnvVars(t, validBaseEnv())
	chdir(t, t.TempDir())

	_, err := LoadStructuredConfig([]string{"-c", filepath.Join(t.TempDir(), "absent.json")})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}
