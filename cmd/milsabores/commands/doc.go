// Package commands defines the milsabores CLI and wires dependencies for subcommands.
//
// Commands
//
//   - register   Create an account and log in
//   - login      Start a session
//   - logout     End the current session
//   - whoami     Print the logged-in email
//   - profile    Show the logged-in user
//   - photo      Set, show or import the profile photo
//   - catalog    List products
//   - cart       Add, remove, clear or show the cart
//   - about      Print the "Nosotros" page
//
// # Implementation
//
// The root command resolves configuration (defaults, .env, MILSABORES_*
// variables, flags) and builds the dependency graph before any subcommand
// runs. Handlers share it through the env value captured by each command.
package commands
