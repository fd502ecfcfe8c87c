// Package app wires application dependencies for the CLI.
//
// LoadConfig reads settings with viper from an optional config file and
// PWNED_* environment variables. NewWire builds the logger, one shared HTTP
// client and the breach, password and validation services from that Config.
package app
