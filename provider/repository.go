package provider

import (
	"context"

	"github.com/spachava753/contactstore/contacts"
)

// Query selects contacts to fetch. Empty ContactIDs and LookupKeys select
// every contact; when both are set a contact matching either is returned.
type Query struct {
	Columns    []contacts.Column
	ContactIDs []int64
	LookupKeys []contacts.LookupKey
}

// Repository is the backing contacts store.
//
// Fetch returns one Row per matching contact, carrying only data rows of
// Query.Columns, ordered by contact ID. Rows of standard columns come from
// the contact's local raw contact; linked raw contacts contribute rows only
// through linked account columns.
//
// ApplyBatch applies every operation in one all-or-nothing transaction,
// resolving back references to identifiers generated earlier in the batch,
// and returns the identifier generated by operation 0. On failure nothing is
// written.
type Repository interface {
	Fetch(ctx context.Context, query Query) ([]Row, error)
	ApplyBatch(ctx context.Context, ops []Operation) (int64, error)
}
