package storetest

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/spachava753/contactstore/contacts"
	"github.com/spachava753/contactstore/provider"
)

// Repository is an in-memory provider.Repository backed by a snapshot of
// rows. It is safe for concurrent use.
type Repository struct {
	// FetchErr, when set, is returned by every Fetch.
	FetchErr error
	// ApplyErr, when set, is returned by every ApplyBatch before anything is
	// written.
	ApplyErr error

	mu         sync.Mutex
	rows       []*storedContact
	raws       map[int64]rawContact
	nextID     int64
	nextDataID int64
	batches    [][]provider.Operation
}

type storedContact struct {
	row provider.Row
}

// rawContact is one raw contact: the contact it belongs to and the account
// that contributed it.
type rawContact struct {
	contactID   int64
	accountType string
}

var _ provider.Repository = (*Repository)(nil)

// NewRepository returns a repository holding the given snapshot rows. Each
// snapshot row is one local raw contact whose ID equals the contact ID.
func NewRepository(snapshot ...provider.Row) *Repository {
	r := &Repository{nextID: 1, nextDataID: 1, raws: map[int64]rawContact{}}
	for _, row := range snapshot {
		row = cloneRow(row)
		r.rows = append(r.rows, &storedContact{row: row})
		r.raws[row.ContactID] = rawContact{contactID: row.ContactID}
		r.nextID = max(r.nextID, row.ContactID+1)
		for _, data := range row.Data {
			r.nextDataID = max(r.nextDataID, data.ID+1)
		}
	}
	return r
}

// Batches returns every batch applied successfully, oldest first.
func (r *Repository) Batches() [][]provider.Operation {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.batches)
}

// Fetch implements provider.Repository.
func (r *Repository) Fetch(ctx context.Context, query provider.Query) ([]provider.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.FetchErr != nil {
		return nil, r.FetchErr
	}

	mimeTypes := provider.MimeTypes(query.Columns)
	accountTypes := provider.AccountTypes(query.Columns)

	r.mu.Lock()
	defer r.mu.Unlock()

	var out []provider.Row
	for _, stored := range r.rows {
		if !matches(stored.row, query) {
			continue
		}
		row := stored.row
		row.Data = nil
		for _, data := range stored.row.Data {
			if (data.AccountType == "" && slices.Contains(mimeTypes, data.MimeType)) ||
				(data.AccountType != "" && slices.Contains(accountTypes, data.AccountType)) {
				row.Data = append(row.Data, cloneData(data))
			}
		}
		out = append(out, row)
	}
	slices.SortFunc(out, func(a, b provider.Row) int {
		return cmp.Compare(a.ContactID, b.ContactID)
	})
	return out, nil
}

func matches(row provider.Row, query provider.Query) bool {
	if len(query.ContactIDs) == 0 && len(query.LookupKeys) == 0 {
		return true
	}
	return slices.Contains(query.ContactIDs, row.ContactID) ||
		(row.LookupKey != "" && slices.Contains(query.LookupKeys, row.LookupKey))
}

// ApplyBatch implements provider.Repository. Operations are staged and only
// become visible once the whole batch succeeded.
func (r *Repository) ApplyBatch(ctx context.Context, ops []provider.Operation) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if r.ApplyErr != nil {
		return 0, r.ApplyErr
	}
	if len(ops) == 0 {
		return 0, errors.New("storetest: empty batch")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var (
		ids        = make([]int64, len(ops))
		nextID     = r.nextID
		nextDataID = r.nextDataID
		created    = map[int64]*storedContact{}
		order      []int64
		staged     = map[int64]rawContact{}
		appended   = map[int64][]provider.DataRow{}
	)
	contactOf := func(id int64) *storedContact {
		if c, ok := created[id]; ok {
			return c
		}
		for _, c := range r.rows {
			if c.row.ContactID == id {
				return c
			}
		}
		return nil
	}
	rawOf := func(id int64) (rawContact, bool) {
		if raw, ok := staged[id]; ok {
			return raw, true
		}
		raw, ok := r.raws[id]
		return raw, ok
	}

	for i, op := range ops {
		if op.Kind != provider.OperationInsert {
			return 0, fmt.Errorf("storetest: operation %d: unsupported kind %q", i, op.Kind)
		}
		values := map[string]any{}
		for _, cv := range op.Values {
			values[cv.Column] = cv.Value
		}
		for _, ref := range op.BackReferences {
			if ref.Index < 0 || ref.Index >= i {
				return 0, fmt.Errorf("storetest: operation %d: back reference to %d", i, ref.Index)
			}
			values[ref.Column] = ids[ref.Index]
		}
		row := provider.DataRow{Values: values}

		switch op.Table {
		case provider.TableRawContacts:
			id := nextID
			nextID++
			raw := rawContact{contactID: id, accountType: row.String(provider.ColumnAccountType)}
			if values[provider.ColumnContactID] != nil {
				raw.contactID = row.Int(provider.ColumnContactID)
				if contactOf(raw.contactID) == nil {
					return 0, fmt.Errorf("storetest: operation %d: contact %d not found", i, raw.contactID)
				}
			} else {
				created[id] = &storedContact{row: provider.Row{
					ContactID: id,
					LookupKey: contacts.LookupKey(uuid.NewString()),
					IsStarred: row.Int(provider.ColumnStarred) != 0,
				}}
				order = append(order, id)
			}
			staged[id] = raw
			ids[i] = id
		case provider.TableData:
			rawID := row.Int(provider.ColumnRawContactID)
			raw, ok := rawOf(rawID)
			if !ok {
				return 0, fmt.Errorf("storetest: operation %d: raw contact %d not found", i, rawID)
			}
			mimeType := row.String(provider.ColumnMimeType)
			delete(values, provider.ColumnRawContactID)
			delete(values, provider.ColumnMimeType)
			data := provider.DataRow{
				ID:          nextDataID,
				MimeType:    mimeType,
				AccountType: raw.accountType,
				Values:      values,
			}
			nextDataID++
			appended[raw.contactID] = append(appended[raw.contactID], data)
			ids[i] = data.ID
		default:
			return 0, fmt.Errorf("storetest: operation %d: unknown table %q", i, op.Table)
		}
	}

	for _, id := range order {
		r.rows = append(r.rows, created[id])
	}
	for id, rows := range appended {
		owner := contactOf(id)
		owner.row.Data = append(owner.row.Data, rows...)
		for _, data := range rows {
			if data.MimeType == provider.MimeTypeStructuredName && data.AccountType == "" {
				owner.row.DisplayName = data.String(provider.NameDisplayName)
			}
		}
	}
	maps.Copy(r.raws, staged)
	r.nextID = nextID
	r.nextDataID = nextDataID
	r.batches = append(r.batches, slices.Clone(ops))
	return ids[0], nil
}

func cloneRow(row provider.Row) provider.Row {
	out := row
	out.Data = make([]provider.DataRow, 0, len(row.Data))
	for _, data := range row.Data {
		out.Data = append(out.Data, cloneData(data))
	}
	return out
}

func cloneData(data provider.DataRow) provider.DataRow {
	data.Values = maps.Clone(data.Values)
	return data
}
