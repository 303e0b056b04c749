package store

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"

	"github.com/spachava753/contactstore/contacts"
)

// sortContacts orders found in place. Ties on display name fall back to the
// contact ID so paging is stable.
func sortContacts(found []*contacts.PartialContact, sort Sort) {
	var compare func(a, b *contacts.PartialContact) int
	switch sort.By {
	case SortByDisplayName:
		// a Collator is not safe for concurrent use
		collator := collate.New(sort.Language, collate.IgnoreCase, collate.Loose)
		compare = func(a, b *contacts.PartialContact) int {
			if c := collator.CompareString(a.DisplayName(), b.DisplayName()); c != 0 {
				return c
			}
			return cmp.Compare(a.ContactID(), b.ContactID())
		}
	default:
		compare = func(a, b *contacts.PartialContact) int {
			return cmp.Compare(a.ContactID(), b.ContactID())
		}
	}
	if sort.Order == SortOrderDesc {
		asc := compare
		compare = func(a, b *contacts.PartialContact) int { return asc(b, a) }
	}
	slices.SortStableFunc(found, compare)
}
