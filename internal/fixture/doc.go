// Package fixture holds the sample dataset served by the mock API.
//
// A dataset is a JSON document with breaches, the accounts and pastes that
// reference them, and password counts. Load falls back to the built-in sample
// when the file does not exist.
package fixture
