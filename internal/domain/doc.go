// Package domain defines the data model, failure taxonomy and service
// contracts shared by the lookup client, the validation adapter and the CLI.
// It contains plain types (wire/state) and contracts (interfaces) only.
package domain
