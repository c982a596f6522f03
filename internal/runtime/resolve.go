package runtime

import (
	"strings"

	"github.com/daybook-cli/daybook/internal/model"
	"github.com/daybook-cli/daybook/internal/store"
)

// ResolveID finds the entry whose id equals ref or uniquely starts with
// it, so commands can accept the short ids shown in listings.
func ResolveID[T model.Entity](s *store.Store[T], ref string) (T, error) {
	var zero T
	if ref == "" {
		return zero, ErrEntryNotFound
	}

	var match T
	found := 0
	for _, item := range s.Items() {
		id := item.EntityID()
		if id == ref {
			return item, nil
		}
		if strings.HasPrefix(id, ref) {
			match = item
			found++
		}
	}

	switch found {
	case 0:
		return zero, ErrEntryNotFound
	case 1:
		return match, nil
	default:
		return zero, ErrAmbiguousID
	}
}
