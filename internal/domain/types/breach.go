package types

import "time"

// Breach is one historical compromise event as reported by the service.
//
// Values are produced only by decoding a response; the client never merges,
// deduplicates or mutates them. When a lookup asked for a truncated response
// only Name is populated.
type Breach struct {
	Name         BreachName `json:"Name"`
	Title        string     `json:"Title,omitempty"`
	Domain       string     `json:"Domain,omitempty"`
	BreachDate   string     `json:"BreachDate,omitempty"` // YYYY-MM-DD
	AddedDate    time.Time  `json:"AddedDate"`
	ModifiedDate time.Time  `json:"ModifiedDate"`
	PwnCount     int64      `json:"PwnCount,omitempty"`
	Description  string     `json:"Description,omitempty"`
	DataClasses  []string   `json:"DataClasses,omitempty"`
	IsVerified   bool       `json:"IsVerified"`
	IsSensitive  bool       `json:"IsSensitive"`
	IsRetired    bool       `json:"IsRetired"`
	IsSpamList   bool       `json:"IsSpamList"`
	LogoPath     string     `json:"LogoPath,omitempty"`
	LogoType     string     `json:"LogoType,omitempty"` // v2 responses
}

// BreachFilter narrows a breached-account lookup. The zero value asks for
// verified breaches only, full breach records, across every domain.
type BreachFilter struct {
	// IncludeUnverified also returns breaches flagged as unverified.
	IncludeUnverified bool
	// Truncate asks for breach names only instead of full records.
	Truncate bool
	// Domain restricts results to breaches against a single domain.
	Domain string
}
