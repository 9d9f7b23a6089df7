package ids

import "github.com/oklog/ulid/v2"

// New returns a lexicographically sortable identifier suitable for
// store-assigned account ids.
func New() string {
	return ulid.Make().String()
}
