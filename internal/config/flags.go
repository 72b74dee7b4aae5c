// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from args (usually os.Args[1:]).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-p listen port, used when -a is not given
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-cors-origins comma separated list of allowed CORS origins
//	-access-token shared bearer token
//	-token-comparison plain or constant
//	-id-strategy length or sequence
//	-log-level zerolog level name
//	-storage memory, sqlite3 or pgx
//	-d database DSN
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var port int
	var requestTimeout time.Duration
	var corsOrigins string
	var accessToken string
	var tokenComparison string
	var idStrategy string
	var logLevel string
	var storageDriver string
	var databaseDSN string
	var jsonConfigPath string

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.IntVar(&port, "p", 0, "Listen port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&corsOrigins, "cors-origins", "", "Comma separated allowed CORS origins")
	fs.StringVar(&accessToken, "access-token", "", "Shared bearer token")
	fs.StringVar(&tokenComparison, "token-comparison", "", "Token comparison: plain or constant")
	fs.StringVar(&idStrategy, "id-strategy", "", "Id strategy: length or sequence")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&storageDriver, "storage", "", "Storage driver: memory, sqlite3 or pgx")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, errors.Join(ErrInvalidFlags, err)
	}

	return &StructuredConfig{
		App: App{
			IDStrategy:      idStrategy,
			TokenComparison: tokenComparison,
			LogLevel:        logLevel,
		},
		Auth: Auth{
			AccessToken: accessToken,
		},
		Storage: Storage{
			Driver: storageDriver,
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			Port:               port,
			HTTPAddress:        serverAddress.String(),
			RequestTimeout:     requestTimeout,
			CORSAllowedOrigins: splitList(corsOrigins),
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// jsonPathFromArgs returns the value of -c / -config, if any.
func jsonPathFromArgs(args []string) string {
	cfg, err := ParseFlags(args)
	if err != nil {
		return ""
	}

	return cfg.JSONFilePath
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
