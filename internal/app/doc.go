// Package app wires application dependencies for the CLI.
//
// It resolves Config from defaults, .env files, environment variables and
// flags, then builds the concrete stores and services, exposing them via the
// Wire struct for commands to use.
package app
