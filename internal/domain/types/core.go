package types

// Account is an email address looked up against the breach and paste service.
type Account string

// String returns the string form of the account.
func (a Account) String() string { return string(a) }

// BreachName is the stable, Pascal-cased identifier the service assigns to a
// breach, e.g. "Adobe".
type BreachName string

// String returns the string form of the breach name.
func (n BreachName) String() string { return string(n) }
