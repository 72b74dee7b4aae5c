// Package config provides configuration loading, merging, and validation
// facilities for the user registry server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults (port 3001, memory storage, length id strategy)
//  2. Environment variables
//  3. JSON config file
//  4. Command-line flags
//
// The main entry point is [GetStructuredConfig]. There is no default access
// token: a configuration without one fails validation.
package config
