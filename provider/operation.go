package provider

import (
	"fmt"

	"github.com/spachava753/contactstore/contacts"
)

// OperationKind is the type of a batch operation.
type OperationKind string

// OperationInsert inserts one row.
const OperationInsert OperationKind = "insert"

// ColumnValue is one column assignment of an operation.
type ColumnValue struct {
	Column string
	Value  any
}

// BackReference sets Column to the identifier generated by the operation
// at Index in the same batch.
type BackReference struct {
	Column string
	Index  int
}

// Operation is one atomic write handed to [Repository.ApplyBatch]. Values
// keep the order they were added in, so compiling the same contact twice
// yields identical operations.
type Operation struct {
	Kind           OperationKind
	Table          string
	Values         []ColumnValue
	BackReferences []BackReference
}

// Value returns the value assigned to column.
func (op Operation) Value(column string) (any, bool) {
	for _, cv := range op.Values {
		if cv.Column == column {
			return cv.Value, true
		}
	}
	return nil, false
}

// MimeType returns the mime type of a data insert, or "".
func (op Operation) MimeType() string {
	v, _ := op.Value(ColumnMimeType)
	s, _ := v.(string)
	return s
}

func (op Operation) String() string {
	return fmt.Sprintf("%s %s %s values=%v refs=%v", op.Kind, op.Table, op.MimeType(), op.Values, op.BackReferences)
}

// insert accumulates the values of one insert operation.
type insert struct {
	op Operation
}

func newInsert(table string) *insert {
	return &insert{op: Operation{Kind: OperationInsert, Table: table}}
}

// newDataInsert starts a data row attached to the raw contact created by the
// operation at index.
func newDataInsert(mimeType string, index int) *insert {
	in := newInsert(TableData)
	in.op.BackReferences = append(in.op.BackReferences, BackReference{Column: ColumnRawContactID, Index: index})
	return in.with(ColumnMimeType, mimeType)
}

func (in *insert) with(column string, value any) *insert {
	in.op.Values = append(in.op.Values, ColumnValue{Column: column, Value: value})
	return in
}

// withLabel writes the type code, plus the label text for custom labels.
func (in *insert) withLabel(kind ValueKind, label contacts.Label) *insert {
	code, text := TypeCode(kind, label)
	in.with(ColumnType, code)
	if code == TypeCustom {
		in.with(ColumnLabel, text)
	}
	return in
}

func (in *insert) build() Operation {
	return in.op
}
