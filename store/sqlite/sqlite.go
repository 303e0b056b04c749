package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/spachava753/contactstore/contacts"
	"github.com/spachava753/contactstore/provider"
)

// Columns owned by the repository rather than by operations.
const (
	columnID          = "id"
	columnLookupKey   = "lookup_key"
	columnDisplayName = "display_name"
)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS raw_contacts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		contact_id INTEGER,
		lookup_key TEXT NOT NULL UNIQUE,
		display_name TEXT,
		starred INTEGER NOT NULL DEFAULT 0,
		account_type TEXT,
		account_name TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS raw_contacts_contact_id ON raw_contacts (contact_id)`,
	`CREATE TABLE IF NOT EXISTS data (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		raw_contact_id INTEGER NOT NULL REFERENCES raw_contacts (id),
		mimetype TEXT NOT NULL,
		data1, data2, data3, data4, data5, data6,
		data7, data8, data9, data10, data11,
		data15 BLOB
	)`,
	`CREATE INDEX IF NOT EXISTS data_raw_contact_id ON data (raw_contact_id)`,
}

// insertable lists the columns an operation may assign per table.
var insertable = map[string][]string{
	provider.TableRawContacts: {
		provider.ColumnContactID,
		provider.ColumnAccountType,
		provider.ColumnAccountName,
		provider.ColumnStarred,
	},
	provider.TableData: append([]string{
		provider.ColumnRawContactID,
		provider.ColumnMimeType,
	}, provider.DataColumns...),
}

// Repository is a provider.Repository on a SQLite database. Every contact
// is a local raw contact; raw contacts of linked accounts attach to it via
// provider.ColumnContactID.
type Repository struct {
	db     *sql.DB
	logger *slog.Logger
}

var _ provider.Repository = (*Repository)(nil)

// Option configures a [Repository].
type Option func(*Repository)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Repository) {
		r.logger = logger
	}
}

// Open connects to the database described by cfg and, unless it is read
// only, creates the schema when missing.
func Open(ctx context.Context, cfg Config, opts ...Option) (*Repository, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite3", cfg.dsn())
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database failed: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: connecting to database failed: %w", err)
	}

	r := New(db, opts...)
	if !cfg.ReadOnly {
		if err := r.createSchema(ctx); err != nil {
			db.Close()
			return nil, err
		}
	}
	return r, nil
}

// New wraps an open database. The schema must already exist.
func New(db *sql.DB, opts ...Option) *Repository {
	r := &Repository{db: db}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.New(slog.DiscardHandler)
	}
	return r
}

// Close closes the database.
func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) createSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("sqlite: creating schema failed: %w", err)
		}
	}
	r.logger.DebugContext(ctx, "sqlite: schema ready", slog.Int("statements", len(schema)))
	return nil
}

// Fetch implements provider.Repository.
func (r *Repository) Fetch(ctx context.Context, query provider.Query) ([]provider.Row, error) {
	rows, err := r.fetchContacts(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return rows, nil
	}

	mimeTypes := provider.MimeTypes(query.Columns)
	accountTypes := provider.AccountTypes(query.Columns)
	if len(mimeTypes) == 0 && len(accountTypes) == 0 {
		return rows, nil
	}

	index := make(map[int64]int, len(rows))
	ids := make([]int64, 0, len(rows))
	for i, row := range rows {
		index[row.ContactID] = i
		ids = append(ids, row.ContactID)
	}

	kinds := sq.Or{}
	if len(mimeTypes) > 0 {
		// standard columns come from the local raw contact only
		kinds = append(kinds, sq.And{
			sq.Eq{"d." + provider.ColumnMimeType: mimeTypes},
			sq.Or{
				sq.Eq{"r." + provider.ColumnAccountType: nil},
				sq.Eq{"r." + provider.ColumnAccountType: ""},
			},
		})
	}
	if len(accountTypes) > 0 {
		kinds = append(kinds, sq.Eq{"r." + provider.ColumnAccountType: accountTypes})
	}
	selected := []string{"d." + columnID, "r." + provider.ColumnContactID, "d." + provider.ColumnMimeType, "r." + provider.ColumnAccountType}
	for _, column := range provider.DataColumns {
		selected = append(selected, "d."+column)
	}
	stmt, args, err := builder.
		Select(selected...).
		From(provider.TableData+" d").
		Join(provider.TableRawContacts+" r ON r."+columnID+" = d."+provider.ColumnRawContactID).
		Where(sq.Eq{"r." + provider.ColumnContactID: ids}).
		Where(kinds).
		OrderBy("r."+provider.ColumnContactID, "d."+columnID).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("sqlite: building data query failed: %w", err)
	}

	result, err := r.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: querying data failed: %w", err)
	}
	defer result.Close()

	for result.Next() {
		var (
			data        provider.DataRow
			contactID   int64
			accountType sql.NullString
			values      = make([]any, len(provider.DataColumns))
		)
		dest := []any{&data.ID, &contactID, &data.MimeType, &accountType}
		for i := range values {
			dest = append(dest, &values[i])
		}
		if err := result.Scan(dest...); err != nil {
			return nil, fmt.Errorf("sqlite: scanning data row failed: %w", err)
		}
		data.AccountType = accountType.String
		data.Values = make(map[string]any, len(values))
		for i, value := range values {
			if value != nil {
				data.Values[provider.DataColumns[i]] = value
			}
		}
		i, ok := index[contactID]
		if !ok {
			continue
		}
		rows[i].Data = append(rows[i].Data, data)
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating data rows failed: %w", err)
	}
	return rows, nil
}

func (r *Repository) fetchContacts(ctx context.Context, query provider.Query) ([]provider.Row, error) {
	q := builder.
		Select(columnID, columnLookupKey, columnDisplayName, provider.ColumnStarred).
		From(provider.TableRawContacts).
		Where(columnID + " = " + provider.ColumnContactID).
		OrderBy(columnID)

	match := sq.Or{}
	if len(query.ContactIDs) > 0 {
		match = append(match, sq.Eq{columnID: query.ContactIDs})
	}
	if len(query.LookupKeys) > 0 {
		keys := make([]string, 0, len(query.LookupKeys))
		for _, key := range query.LookupKeys {
			keys = append(keys, string(key))
		}
		match = append(match, sq.Eq{columnLookupKey: keys})
	}
	if len(match) > 0 {
		q = q.Where(match)
	}

	stmt, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("sqlite: building contact query failed: %w", err)
	}
	result, err := r.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: querying contacts failed: %w", err)
	}
	defer result.Close()

	var rows []provider.Row
	for result.Next() {
		var (
			row         provider.Row
			lookupKey   string
			displayName sql.NullString
			starred     int64
		)
		if err := result.Scan(&row.ContactID, &lookupKey, &displayName, &starred); err != nil {
			return nil, fmt.Errorf("sqlite: scanning contact failed: %w", err)
		}
		row.LookupKey = contacts.LookupKey(lookupKey)
		row.DisplayName = displayName.String
		row.IsStarred = starred != 0
		rows = append(rows, row)
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating contacts failed: %w", err)
	}
	return rows, nil
}

// ApplyBatch implements provider.Repository. The batch runs in one
// transaction; any failure rolls back every row it inserted.
func (r *Repository) ApplyBatch(ctx context.Context, ops []provider.Operation) (id int64, err error) {
	if len(ops) == 0 {
		return 0, errors.New("sqlite: empty batch")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("sqlite: beginning transaction failed: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				err = errors.Join(err, fmt.Errorf("sqlite: rollback failed: %w", rbErr))
			}
		}
	}()

	ids := make([]int64, len(ops))
	for i, op := range ops {
		ids[i], err = r.apply(ctx, tx, i, op, ids[:i])
		if err != nil {
			return 0, err
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("sqlite: commit failed: %w", err)
	}

	r.logger.DebugContext(ctx, "sqlite: batch applied",
		slog.Int("operations", len(ops)),
		slog.Int64("contact_id", ids[0]))
	return ids[0], nil
}

// apply runs the operation at index i. generated holds the identifiers of
// the operations before it.
func (r *Repository) apply(ctx context.Context, tx *sql.Tx, i int, op provider.Operation, generated []int64) (int64, error) {
	if op.Kind != provider.OperationInsert {
		return 0, fmt.Errorf("sqlite: operation %d: unsupported kind %q", i, op.Kind)
	}
	allowed, ok := insertable[op.Table]
	if !ok {
		return 0, fmt.Errorf("sqlite: operation %d: unknown table %q", i, op.Table)
	}

	values := make(map[string]any, len(op.Values)+len(op.BackReferences))
	for _, cv := range op.Values {
		values[cv.Column] = cv.Value
	}
	for _, ref := range op.BackReferences {
		if ref.Index < 0 || ref.Index >= len(generated) {
			return 0, fmt.Errorf("sqlite: operation %d: back reference to %d", i, ref.Index)
		}
		values[ref.Column] = generated[ref.Index]
	}

	columns := make([]string, 0, len(values)+1)
	for column := range values {
		if !slices.Contains(allowed, column) {
			return 0, fmt.Errorf("sqlite: operation %d: column %q not allowed in %s", i, column, op.Table)
		}
		columns = append(columns, column)
	}
	if op.Table == provider.TableRawContacts {
		if target := values[provider.ColumnContactID]; target != nil {
			if err := r.requireContact(ctx, tx, target); err != nil {
				return 0, fmt.Errorf("sqlite: operation %d: %w", i, err)
			}
		}
		values[columnLookupKey] = uuid.NewString()
		columns = append(columns, columnLookupKey)
	}
	slices.Sort(columns)
	args := make([]any, 0, len(columns))
	for _, column := range columns {
		args = append(args, values[column])
	}

	stmt, stmtArgs, err := builder.Insert(op.Table).Columns(columns...).Values(args...).ToSql()
	if err != nil {
		return 0, fmt.Errorf("sqlite: operation %d: building insert failed: %w", i, err)
	}
	result, err := tx.ExecContext(ctx, stmt, stmtArgs...)
	if err != nil {
		return 0, fmt.Errorf("sqlite: operation %d: insert into %s failed: %w", i, op.Table, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("sqlite: operation %d: reading generated id failed: %w", i, err)
	}

	switch {
	case op.Table == provider.TableRawContacts && values[provider.ColumnContactID] == nil:
		// a raw contact without a target contact is its own contact
		err = r.update(ctx, tx, sq.Eq{columnID: id}, provider.ColumnContactID, id)
	case op.Table == provider.TableData && values[provider.ColumnMimeType] == provider.MimeTypeStructuredName:
		err = r.update(ctx, tx, sq.Eq{columnID: values[provider.ColumnRawContactID]}, columnDisplayName, values[provider.NameDisplayName])
	}
	if err != nil {
		return 0, fmt.Errorf("sqlite: operation %d: %w", i, err)
	}
	return id, nil
}

// requireContact fails unless id names an existing contact.
func (r *Repository) requireContact(ctx context.Context, tx *sql.Tx, id any) error {
	stmt, args, err := builder.
		Select(columnID).
		From(provider.TableRawContacts).
		Where(sq.Eq{columnID: id}).
		Where(columnID + " = " + provider.ColumnContactID).
		ToSql()
	if err != nil {
		return fmt.Errorf("building contact lookup failed: %w", err)
	}
	var found int64
	err = tx.QueryRowContext(ctx, stmt, args...).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("contact %v not found", id)
	}
	if err != nil {
		return fmt.Errorf("looking up contact %v failed: %w", id, err)
	}
	return nil
}

func (r *Repository) update(ctx context.Context, tx *sql.Tx, where sq.Eq, column string, value any) error {
	stmt, args, err := builder.Update(provider.TableRawContacts).Set(column, value).Where(where).ToSql()
	if err != nil {
		return fmt.Errorf("building update failed: %w", err)
	}
	if _, err := tx.ExecContext(ctx, stmt, args...); err != nil {
		return fmt.Errorf("updating %s failed: %w", column, err)
	}
	return nil
}
