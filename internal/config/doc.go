// Package config provides configuration loading, merging, and validation
// facilities for the vitrine server and its admin client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file
//  2. Environment variables (with defaults)
//  3. JSON config file
//  4. Command-line flags
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetAdminConfig] for the terminal admin client.
package config
