package endpoint

import (
	"net/url"
	"strconv"
	"strings"

	"pwned/internal/domain"
)

// Filter is one optional query parameter.
type Filter struct {
	Name  string
	Value string
	// set is false when the filter is at its default and must be omitted.
	set bool
}

// TextFilter returns a free-text filter; an empty value is the default.
func TextFilter(name, value string) Filter {
	return Filter{Name: name, Value: url.QueryEscape(value), set: value != ""}
}

// BoolFilter returns a boolean filter emitted as a literal true/false token
// only when value differs from def.
func BoolFilter(name string, value, def bool) Filter {
	return Filter{Name: name, Value: strconv.FormatBool(value), set: value != def}
}

// Builder composes fully-qualified request URLs. It is immutable and safe for
// concurrent use.
type Builder struct {
	bases map[Class]string
}

// NewBuilder returns a Builder for the breach/paste and passwords base URLs.
func NewBuilder(serviceURL, passwordsURL string) (*Builder, error) {
	service, err := normaliseBase(serviceURL)
	if err != nil {
		return nil, err
	}
	passwords, err := normaliseBase(passwordsURL)
	if err != nil {
		return nil, err
	}
	return &Builder{bases: map[Class]string{
		ClassBreach:   service,
		ClassPassword: passwords,
	}}, nil
}

// Build returns the URL for op with param as the trailing path segment and
// the non-default filters as the query string, in catalog order.
func (b *Builder) Build(op Operation, param string, filters ...Filter) (string, error) {
	ep, ok := Lookup(op)
	if !ok {
		return "", domain.InvalidArgument(string(op), "unknown operation")
	}

	var sb strings.Builder
	sb.WriteString(b.bases[ep.Class])
	sb.WriteString(ep.Path)
	if ep.Param {
		if param == "" {
			return "", domain.InvalidArgument(string(op), "path parameter is required")
		}
		sb.WriteByte('/')
		sb.WriteString(url.PathEscape(param))
	}

	byName := make(map[string]Filter, len(filters))
	for _, f := range filters {
		if !accepts(ep, f.Name) {
			return "", domain.InvalidArgument(string(op), "unsupported filter %q", f.Name)
		}
		byName[f.Name] = f
	}

	sep := byte('?')
	for _, name := range ep.Filters {
		f, ok := byName[name]
		if !ok || !f.set {
			continue
		}
		sb.WriteByte(sep)
		sb.WriteString(f.Name)
		sb.WriteByte('=')
		sb.WriteString(f.Value)
		sep = '&'
	}
	return sb.String(), nil
}

func accepts(ep Endpoint, name string) bool {
	for _, n := range ep.Filters {
		if n == name {
			return true
		}
	}
	return false
}

// normaliseBase validates raw as an absolute http(s) URL and returns it with
// exactly one trailing slash.
func normaliseBase(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", domain.InvalidArgument("", "base url %q: %v", raw, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", domain.InvalidArgument("", "base url %q must be an absolute http(s) url", raw)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return "", domain.InvalidArgument("", "base url %q must not carry a query or fragment", raw)
	}
	return strings.TrimRight(u.String(), "/") + "/", nil
}
