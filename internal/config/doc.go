// Package config loads, merges and validates the configuration of the
// video-notes server and client.
//
// Sources, highest precedence first:
//  1. Environment variables (an optional .env file is loaded beforehand)
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// Entry points are [GetServerConfig] for the server and [GetClientConfig]
// for the terminal client.
package config
