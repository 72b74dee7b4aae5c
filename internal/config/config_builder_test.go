// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- Helpers ----

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validConfig() *StructuredConfig {
	cfg := defaults()
	cfg.Auth.AccessToken = "token"
	return cfg
}

// ---- newConfigBuilder / build ----

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_EmptyBuilderFailsWithoutToken(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAuthConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterConfigsOverride(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{Auth: Auth{AccessToken: "first"}, Server: Server{Port: 4000}},
		&StructuredConfig{Auth: Auth{AccessToken: "second"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "second", cfg.Auth.AccessToken)
	// zero values in a later config do not reset earlier ones
	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, IDStrategyLength, cfg.App.IDStrategy)
	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
}

func TestBuild_SQLiteGetsInMemoryDSN(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{
		Auth:    Auth{AccessToken: "token"},
		Storage: Storage{Driver: StorageDriverSQLite},
	})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, defaultSQLiteDSN, cfg.Storage.DB.DSN)
}

// ---- withDefaults ----

func TestWithDefaults(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withDefaults())
	require.Len(t, b.configs, 1)

	d := b.configs[0]
	assert.Equal(t, 3001, d.Server.Port)
	assert.Equal(t, IDStrategyLength, d.App.IDStrategy)
	assert.Equal(t, TokenComparisonPlain, d.App.TokenComparison)
	assert.Equal(t, StorageDriverMemory, d.Storage.Driver)
	assert.Empty(t, d.Auth.AccessToken)
}

// ---- withEnv ----

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ACCESS_TOKEN":    "env-token",
		"APP_ID_STRATEGY": "sequence",
	})

	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-token", b.configs[0].Auth.AccessToken)
	assert.Equal(t, IDStrategySequence, b.configs[0].App.IDStrategy)
}

func TestWithEnv_RecordsError(t *testing.T) {
	setEnvVars(t, map[string]string{"PORT": "x"})

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ---- withFlags ----

func TestWithFlags_AppendsConfig(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags([]string{"-access-token", "flag-token"}))

	require.Len(t, b.configs, 1)
	assert.Equal(t, "flag-token", b.configs[0].Auth.AccessToken)
}

func TestWithFlags_RecordsError(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-nope"})

	assert.ErrorIs(t, b.err, ErrInvalidFlags)
}

// ---- withJSON ----

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	assert.Same(t, b, b.withJSON())

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenPathFromEnvConfig(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.AccessToken = "json-token"
	payload.Server.Port = 5000
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-token", b.configs[1].Auth.AccessToken)
	assert.Equal(t, 5000, b.configs[1].Server.Port)
}

func TestWithJSON_PathFromFlagsWins(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.AccessToken = "from-flag-file"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})
	b.withJSON("-c", path)

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "from-flag-file", b.configs[1].Auth.AccessToken)
}

func TestWithJSON_RecordsError_WhenFileMissing(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})
	b.withJSON()

	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

// ---- GetStructuredConfig ----

func TestGetStructuredConfig_PriorityOrder(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.AccessToken = "json-token"
	payload.Server.RequestTimeout = Duration(5 * time.Second)
	path := writeTempJSONConfig(t, payload)

	setEnvVars(t, map[string]string{
		"ACCESS_TOKEN": "env-token",
		"PORT":         "3100",
		"CONFIG":       path,
	})

	cfg, err := GetStructuredConfig([]string{"-p", "3200"})
	require.NoError(t, err)

	assert.Equal(t, "json-token", cfg.Auth.AccessToken)
	assert.Equal(t, 3200, cfg.Server.Port)
	assert.Equal(t, ":3200", cfg.Server.Address())
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, IDStrategyLength, cfg.App.IDStrategy)
}

func TestGetStructuredConfig_FailsFastWithoutToken(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetStructuredConfig(nil)
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAuthConfigs)
}

// ---- validate ----

func TestValidate_TableTest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid defaults", mutate: func(*StructuredConfig) {}},
		{
			name:    "missing token",
			mutate:  func(cfg *StructuredConfig) { cfg.Auth.AccessToken = "" },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "unknown id strategy",
			mutate:  func(cfg *StructuredConfig) { cfg.App.IDStrategy = "random" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "unknown token comparison",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenComparison = "fuzzy" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "unknown driver",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Driver = "mongo" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "postgres without dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Driver = StorageDriverPostgres },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "postgres with dsn",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.Driver = StorageDriverPostgres
				cfg.Storage.DB.DSN = "postgres://localhost/users"
			},
		},
		{
			name:    "port out of range",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.Port = 70000 },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name: "address makes port irrelevant",
			mutate: func(cfg *StructuredConfig) {
				cfg.Server.Port = 0
				cfg.Server.HTTPAddress = "127.0.0.1:9000"
			},
		},
		{
			name:    "negative timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = -time.Second },
			wantErr: ErrInvalidServerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestServer_Address(t *testing.T) {
	assert.Equal(t, ":3001", Server{Port: 3001}.Address())
	assert.Equal(t, "localhost:8080", Server{Port: 3001, HTTPAddress: "localhost:8080"}.Address())
}
