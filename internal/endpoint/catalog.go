package endpoint

// Class selects the base URL and the resilience profile of an operation.
type Class uint8

const (
	// ClassBreach covers the breach and paste endpoints.
	ClassBreach Class = iota
	// ClassPassword covers the passwords endpoint.
	ClassPassword
)

// String returns the class name used in logs and metric labels.
func (c Class) String() string {
	if c == ClassPassword {
		return "password"
	}
	return "breach"
}

// Operation is a logical remote operation.
type Operation string

const (
	OpBreachedAccount Operation = "breachedaccount"
	OpBreaches        Operation = "breaches"
	OpBreach          Operation = "breach"
	OpDataClasses     Operation = "dataclasses"
	OpPasteAccount    Operation = "pasteaccount"
	OpPassword        Operation = "pwnedpassword"
)

// Query filter names.
const (
	FilterIncludeUnverified = "includeUnverified"
	FilterTruncateResponse  = "truncateResponse"
	FilterDomain            = "domain"
)

// Endpoint describes one catalog entry.
type Endpoint struct {
	Op    Operation
	Path  string
	Class Class
	// Param reports whether the path takes a required trailing parameter.
	Param bool
	// Filters lists accepted query filters in emission order.
	Filters []string
}

var catalog = map[Operation]Endpoint{
	OpBreachedAccount: {
		Op:      OpBreachedAccount,
		Path:    "breachedaccount",
		Class:   ClassBreach,
		Param:   true,
		Filters: []string{FilterIncludeUnverified, FilterTruncateResponse, FilterDomain},
	},
	OpBreaches: {
		Op:      OpBreaches,
		Path:    "breaches",
		Class:   ClassBreach,
		Filters: []string{FilterDomain},
	},
	OpBreach: {
		Op:    OpBreach,
		Path:  "breach",
		Class: ClassBreach,
		Param: true,
	},
	OpDataClasses: {
		Op:    OpDataClasses,
		Path:  "dataclasses",
		Class: ClassBreach,
	},
	OpPasteAccount: {
		Op:    OpPasteAccount,
		Path:  "pasteaccount",
		Class: ClassBreach,
		Param: true,
	},
	OpPassword: {
		Op:    OpPassword,
		Path:  "pwnedpassword",
		Class: ClassPassword,
		Param: true,
	},
}

// Lookup returns the catalog entry for op.
func Lookup(op Operation) (Endpoint, bool) {
	e, ok := catalog[op]
	return e, ok
}
