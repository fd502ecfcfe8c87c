package types

import "time"

// PasteAccount is one paste that referenced a queried account.
type PasteAccount struct {
	// Source is the paste service, e.g. Pastebin, Pastie, Slexy, AdHocUrl.
	Source string `json:"Source"`
	// ID is the paste id at Source; together they resolve the paste URL.
	ID string `json:"Id"`
	// Title is nil when the paste had no title.
	Title *string `json:"Title,omitempty"`
	// Date is nil when the paste site published no date.
	Date       *time.Time `json:"Date,omitempty"`
	EmailCount int        `json:"EmailCount"`
}
