package fixture

import (
	"slices"
	"strings"

	"pwned/internal/domain"
)

// Dataset is an in-memory copy of what the remote service knows. It is not
// modified after loading and may be read concurrently.
type Dataset struct {
	Breaches    []domain.Breach `json:"breaches"`
	DataClasses []string        `json:"dataClasses"`
	// Accounts maps a lower-case email address to the breaches it is in.
	Accounts map[string][]domain.BreachName `json:"accounts"`
	// Pastes maps a lower-case email address to its pastes.
	Pastes map[string][]domain.PasteAccount `json:"pastes"`
	// Passwords maps a raw password to its occurrence count.
	Passwords map[string]int64 `json:"passwords"`
}

// Catalog returns every breach, restricted to domainName when set.
func (d *Dataset) Catalog(domainName string) []domain.Breach {
	out := make([]domain.Breach, 0, len(d.Breaches))
	for _, b := range d.Breaches {
		if matchesDomain(b, domainName) {
			out = append(out, b)
		}
	}
	return out
}

// Breach returns the breach called name, ignoring case.
func (d *Dataset) Breach(name string) (domain.Breach, bool) {
	for _, b := range d.Breaches {
		if strings.EqualFold(string(b.Name), name) {
			return b, true
		}
	}
	return domain.Breach{}, false
}

// BreachesFor returns the breaches account is in, in catalog order. ok is
// false when the account is unknown or every breach was filtered out.
func (d *Dataset) BreachesFor(account string, filter domain.BreachFilter) (out []domain.Breach, ok bool) {
	names := d.Accounts[strings.ToLower(account)]
	for _, b := range d.Breaches {
		if !slices.Contains(names, b.Name) {
			continue
		}
		if !b.IsVerified && !filter.IncludeUnverified {
			continue
		}
		if !matchesDomain(b, filter.Domain) {
			continue
		}
		out = append(out, b)
	}
	return out, len(out) > 0
}

// PastesFor returns the pastes of account.
func (d *Dataset) PastesFor(account string) ([]domain.PasteAccount, bool) {
	p, ok := d.Pastes[strings.ToLower(account)]
	return p, ok && len(p) > 0
}

// PasswordCount returns how often password was seen. The match is exact.
func (d *Dataset) PasswordCount(password string) (int64, bool) {
	n, ok := d.Passwords[password]
	return n, ok && n > 0
}

func matchesDomain(b domain.Breach, domainName string) bool {
	return domainName == "" || strings.EqualFold(b.Domain, domainName)
}
