// Package naming resolves user-typed item and spell names to catalog IDs.
// Game content is Spanish, so lookups ignore case and accents: "Expelliarmus",
// "expelliarmus" and "EXPELLIARMUS" all hit, and "Piedra de la Resurrección"
// matches "piedra de la resurreccion".
package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Resolver maps normalized display names and IDs to catalog IDs.
type Resolver struct {
	byKey map[string]string
}

// NewResolver creates an empty resolver
func NewResolver() *Resolver {
	return &Resolver{byKey: make(map[string]string)}
}

// Register adds an entry under both its ID and display name. Later
// registrations win on collision, so load static catalogs before user data.
func (r *Resolver) Register(id, name string) {
	r.byKey[Normalize(id)] = id
	r.byKey[Normalize(name)] = id
}

// Resolve returns the catalog ID for a user-typed name, and whether it is
// known.
func (r *Resolver) Resolve(input string) (string, bool) {
	id, ok := r.byKey[Normalize(input)]
	return id, ok
}

// Normalize lowercases, trims, strips diacritics, and collapses interior
// whitespace to single underscores so "  Piedra  de la Resurrección " and
// "piedra_de_la_resurreccion" normalize identically.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	fields := strings.Fields(strings.ToLower(stripped))
	return strings.Join(fields, "_")
}
