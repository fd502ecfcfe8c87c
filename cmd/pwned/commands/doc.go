// Package commands defines the pwned CLI and wires dependencies for subcommands.
//
// Commands
//
//   - breaches     List the breaches an email address appears in
//   - catalog      List every breach, optionally for one domain
//   - breach       Show a single breach by name
//   - dataclasses  List the data class names
//   - pastes       List the pastes an email address appears in
//   - password     Report how often a password appears in breaches
//   - validate     Accept or reject a password, exiting non-zero on rejection
//
// # Implementation
//
// The root command loads configuration and builds the dependency graph
// (logger, pooled HTTP client, lookup clients, validator) before any
// subcommand runs. Passwords given as "-" or omitted are read from stdin so
// they stay out of shell history.
package commands
