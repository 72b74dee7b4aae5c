// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the ErrInvalid*
// sentinels wrapped with the offending value otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.AccessToken == "" {
		return ErrInvalidAuthConfigs
	}

	switch cfg.App.IDStrategy {
	case IDStrategyLength, IDStrategySequence:
	default:
		return fmt.Errorf("%w: unknown id strategy %q", ErrInvalidAppConfigs, cfg.App.IDStrategy)
	}

	switch cfg.App.TokenComparison {
	case TokenComparisonPlain, TokenComparisonConstant:
	default:
		return fmt.Errorf("%w: unknown token comparison %q", ErrInvalidAppConfigs, cfg.App.TokenComparison)
	}

	switch cfg.Storage.Driver {
	case StorageDriverMemory:
	case StorageDriverSQLite, StorageDriverPostgres:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: driver %q needs a DSN", ErrInvalidStorageConfigs, cfg.Storage.Driver)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
	}

	if cfg.Server.HTTPAddress == "" && (cfg.Server.Port < 1 || cfg.Server.Port > 65535) {
		return fmt.Errorf("%w: port %d", ErrInvalidServerConfigs, cfg.Server.Port)
	}

	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	return nil
}
