package store

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/spachava753/contactstore/contacts"
	"github.com/spachava753/contactstore/provider"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 500
)

// Store reads and creates contacts through a [provider.Repository].
//
// A Store holds no state besides its collaborators and is safe for
// concurrent use when the repository is.
type Store struct {
	repo   provider.Repository
	logger *slog.Logger
}

// Option configures a [Store].
type Option func(*Store)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New returns a Store backed by repo.
func New(repo provider.Repository, opts ...Option) *Store {
	s := &Store{repo: repo}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	return s
}

// Find returns the contacts matching input.Query, each carrying exactly the
// requested columns.
//
// Example:
//
//	out, err := s.Find(ctx, store.FindInput{
//		Columns: []contacts.Column{contacts.ColumnNames, contacts.ColumnPhones},
//		Page:    store.Page{Limit: 20},
//		Sort:    store.Sort{By: store.SortByDisplayName, Language: language.German},
//	})
func (s *Store) Find(ctx context.Context, input FindInput) (FindOutput, error) {
	columns, err := normalizeColumns(input.Columns)
	if err != nil {
		return FindOutput{}, err
	}
	sortBy, err := normalizeSort(input.Sort)
	if err != nil {
		return FindOutput{}, err
	}

	limit := input.Page.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	offset, err := parseCursor(input.Page.Cursor)
	if err != nil {
		return FindOutput{}, err
	}

	found, err := s.fetch(ctx, provider.Query{
		Columns:    columns,
		ContactIDs: input.Query.ContactIDs,
		LookupKeys: input.Query.LookupKeys,
	})
	if err != nil {
		return FindOutput{}, err
	}
	sortContacts(found, sortBy)

	if offset > len(found) {
		offset = len(found)
	}
	end := min(offset+limit, len(found))

	out := FindOutput{Contacts: found[offset:end]}
	if end < len(found) {
		out.NextCursor = strconv.Itoa(end)
	}
	return out, nil
}

// Get returns the contact with the given ID carrying columns, or all
// standard columns when none are given. A missing contact yields an *Error
// with [ErrorCodeNotFound].
func (s *Store) Get(ctx context.Context, id int64, columns ...contacts.Column) (*contacts.PartialContact, error) {
	out, err := s.Find(ctx, FindInput{
		Query:   Query{ContactIDs: []int64{id}},
		Columns: columns,
		Page:    Page{Limit: 1},
	})
	if err != nil {
		return nil, err
	}
	if len(out.Contacts) == 0 {
		return nil, newError(ErrorCodeNotFound, nil, "contact %d", id)
	}
	return out.Contacts[0], nil
}

// Lookup is like [Store.Get] but resolves the contact by lookup key.
func (s *Store) Lookup(ctx context.Context, key contacts.LookupKey, columns ...contacts.Column) (*contacts.PartialContact, error) {
	if strings.TrimSpace(string(key)) == "" {
		return nil, newError(ErrorCodeValidation, nil, "lookup key is required")
	}
	out, err := s.Find(ctx, FindInput{
		Query:   Query{LookupKeys: []contacts.LookupKey{key}},
		Columns: columns,
		Page:    Page{Limit: 1},
	})
	if err != nil {
		return nil, err
	}
	if len(out.Contacts) == 0 {
		return nil, newError(ErrorCodeNotFound, nil, "lookup key %q", key)
	}
	return out.Contacts[0], nil
}

// Create saves c as a new local contact and returns the generated contact ID.
//
// Only the columns c carries are written. A contact copied from a saved one
// is saved again as a separate contact. A label that is illegal for its value
// kind panics with a *provider.LabelError before anything is written.
func (s *Store) Create(ctx context.Context, c *contacts.MutableContact) (int64, error) {
	if c == nil {
		return 0, newError(ErrorCodeValidation, nil, "contact is required")
	}
	ops := provider.NewContactOperations(c)

	id, err := s.repo.ApplyBatch(ctx, ops)
	if err != nil {
		s.logger.ErrorContext(ctx, "store: apply batch failed",
			slog.Int("operations", len(ops)),
			slog.Any("error", err))
		return 0, newError(ErrorCodeRepository, err, "create contact")
	}
	s.logger.DebugContext(ctx, "store: contact created",
		slog.Int64("contact_id", id),
		slog.Int("operations", len(ops)),
		slog.Any("columns", c.Columns()))
	return id, nil
}

func (s *Store) fetch(ctx context.Context, query provider.Query) ([]*contacts.PartialContact, error) {
	rows, err := s.repo.Fetch(ctx, query)
	if err != nil {
		s.logger.ErrorContext(ctx, "store: fetch failed",
			slog.Any("columns", query.Columns),
			slog.Any("error", err))
		return nil, newError(ErrorCodeRepository, err, "fetch contacts")
	}
	out := make([]*contacts.PartialContact, 0, len(rows))
	for _, row := range rows {
		out = append(out, provider.DecodeContact(row, query.Columns))
	}
	s.logger.DebugContext(ctx, "store: contacts fetched",
		slog.Any("columns", query.Columns),
		slog.Int("contacts", len(out)))
	return out, nil
}

// normalizeColumns validates the requested columns and drops duplicates.
func normalizeColumns(columns []contacts.Column) ([]contacts.Column, error) {
	if len(columns) == 0 {
		return contacts.StandardColumns(), nil
	}
	standard := contacts.StandardColumns()
	out := make([]contacts.Column, 0, len(columns))
	for _, column := range columns {
		switch {
		case slices.Contains(standard, column):
		case column.IsLinkedAccount() && strings.TrimSpace(column.AccountType()) != "":
		default:
			return nil, newError(ErrorCodeValidation, nil, "unsupported column %q", column)
		}
		if !slices.Contains(out, column) {
			out = append(out, column)
		}
	}
	return out, nil
}

func normalizeSort(sort Sort) (Sort, error) {
	switch sort.By {
	case "":
		sort.By = SortByContactID
	case SortByContactID, SortByDisplayName:
	default:
		return Sort{}, newError(ErrorCodeValidation, nil, "unsupported sort field %q", sort.By)
	}
	switch sort.Order {
	case "":
		sort.Order = SortOrderAsc
	case SortOrderAsc, SortOrderDesc:
	default:
		return Sort{}, newError(ErrorCodeValidation, nil, "unsupported sort order %q", sort.Order)
	}
	return sort, nil
}

func parseCursor(cursor string) (int, error) {
	cursor = strings.TrimSpace(cursor)
	if cursor == "" {
		return 0, nil
	}
	offset, err := strconv.Atoi(cursor)
	if err != nil || offset < 0 {
		return 0, newError(ErrorCodeValidation, nil, "invalid cursor %q", cursor)
	}
	return offset, nil
}
