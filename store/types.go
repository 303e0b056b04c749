package store

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/spachava753/contactstore/contacts"
)

// ErrorCode classifies store failures.
type ErrorCode string

const (
	// ErrorCodeNotFound indicates the referenced contact does not exist.
	ErrorCodeNotFound ErrorCode = "not_found"
	// ErrorCodeValidation indicates invalid input.
	ErrorCodeValidation ErrorCode = "validation"
	// ErrorCodeRepository indicates the backing repository failed to fetch
	// or to apply a batch.
	ErrorCodeRepository ErrorCode = "repository"
	// ErrorCodeUnknown indicates an unmapped error.
	ErrorCodeUnknown ErrorCode = "unknown"
)

// Error is a typed store error. Err, when set, is the underlying cause.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

// Error returns the formatted error message.
func (e *Error) Error() string {
	if e == nil {
		return "store: <nil>"
	}
	msg := fmt.Sprintf("store: %s", e.Code)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func newError(code ErrorCode, err error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Err: err}
}

// Query filters Find. Empty ContactIDs and LookupKeys match every contact;
// when both are set a contact matching either is returned.
type Query struct {
	ContactIDs []int64
	LookupKeys []contacts.LookupKey
}

// Page controls paginated find output. Cursor is opaque; pass back the
// NextCursor of the previous page.
type Page struct {
	Limit  int
	Cursor string
}

// SortField controls find ordering.
type SortField string

const (
	// SortByContactID orders by contact ID.
	SortByContactID SortField = "contact_id"
	// SortByDisplayName orders by display name using the collation of
	// Sort.Language, then by contact ID.
	SortByDisplayName SortField = "display_name"
)

// SortOrder controls ascending/descending order.
type SortOrder string

const (
	// SortOrderAsc sorts ascending.
	SortOrderAsc SortOrder = "asc"
	// SortOrderDesc sorts descending.
	SortOrderDesc SortOrder = "desc"
)

// Sort controls Find ordering. The zero value sorts by contact ID, ascending.
// A zero Language collates with the root locale.
type Sort struct {
	By       SortField
	Order    SortOrder
	Language language.Tag
}

// FindInput is the selection request.
//
// Columns lists the column groups to fetch; empty means
// [contacts.StandardColumns]. Returned contacts carry exactly these columns.
type FindInput struct {
	Query   Query
	Columns []contacts.Column
	Page    Page
	Sort    Sort
}

// FindOutput is the selection response.
//
// NextCursor is empty when no more pages are available.
type FindOutput struct {
	Contacts   []*contacts.PartialContact
	NextCursor string
}
