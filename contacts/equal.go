package contacts

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Equal reports whether a and b describe the same contact: same identity,
// starred flag, display name and column set, and equal values for every
// carried column. Two views fetched with different columns are never equal.
func Equal(a, b Contact) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	if a.ContactID() != b.ContactID() ||
		a.LookupKey() != b.LookupKey() ||
		a.IsStarred() != b.IsStarred() ||
		a.DisplayName() != b.DisplayName() {
		return false
	}
	if !sameColumns(a.Columns(), b.Columns()) {
		return false
	}
	for _, column := range groupColumns(a.Columns()) {
		if !reflect.DeepEqual(groupValues(a, column), groupValues(b, column)) {
			return false
		}
	}
	return true
}

// Hash returns a hash consistent with [Equal]: equal contacts hash equally
// regardless of column order.
func Hash(c Contact) uint64 {
	if isNil(c) {
		return 0
	}
	d := xxhash.New()
	fmt.Fprintf(d, "%d|%s|%t|%s|", c.ContactID(), c.LookupKey(), c.IsStarred(), c.DisplayName())

	columns := normalizeColumns(c.Columns())
	slices.Sort(columns)
	for _, column := range columns {
		fmt.Fprintf(d, "%s;", column)
	}
	for _, column := range groupColumns(columns) {
		fmt.Fprintf(d, "%s=%v;", column, groupValues(c, column))
	}
	return d.Sum64()
}

// groupColumns returns the sorted columns to compare, folding every linked
// account column into a single entry since they share one field.
func groupColumns(columns []Column) []Column {
	out := make([]Column, 0, len(columns))
	linked := false
	for _, column := range normalizeColumns(columns) {
		if column.IsLinkedAccount() {
			if linked {
				continue
			}
			linked = true
		}
		out = append(out, column)
	}
	slices.Sort(out)
	return out
}

// groupValues flattens the fields of one column into comparable values.
// Pointers are dereferenced and empty slices collapse to nil.
func groupValues(c Contact, column Column) []any {
	if column.IsLinkedAccount() {
		return []any{orNil(c.LinkedAccountValues())}
	}
	switch column {
	case ColumnNames:
		return []any{
			c.Prefix(), c.FirstName(), c.MiddleName(), c.LastName(), c.Suffix(),
			c.PhoneticFirstName(), c.PhoneticMiddleName(), c.PhoneticLastName(),
			c.FullNameStyle(), c.PhoneticNameStyle(),
		}
	case ColumnPhones:
		return []any{orNil(c.Phones())}
	case ColumnMails:
		return []any{orNil(c.Mails())}
	case ColumnOrganization:
		return []any{c.Organization(), c.JobTitle()}
	case ColumnImage:
		if image := c.ImageData(); image != nil {
			return []any{orNil(image.Raw)}
		}
		return []any{nil}
	case ColumnNote:
		if note := c.Note(); note != nil {
			return []any{note.Raw}
		}
		return []any{nil}
	case ColumnPostalAddresses:
		return []any{orNil(c.PostalAddresses())}
	case ColumnNickname:
		return []any{c.Nickname()}
	case ColumnWebAddresses:
		return []any{orNil(c.WebAddresses())}
	case ColumnGroupMemberships:
		return []any{orNil(c.Groups())}
	case ColumnEvents:
		events := c.Events()
		flat := make([]string, 0, len(events))
		for _, event := range events {
			flat = append(flat, event.Label.String()+"@"+event.Value.String())
		}
		return []any{orNil(flat)}
	case ColumnRelations:
		return []any{orNil(c.Relations())}
	case ColumnImAddresses:
		return []any{orNil(c.ImAddresses())}
	case ColumnSipAddresses:
		return []any{orNil(c.SipAddresses())}
	}
	return nil
}

func orNil[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return s
}

func isNil(c Contact) bool {
	if c == nil {
		return true
	}
	v := reflect.ValueOf(c)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

func describe(c Contact) string {
	columns := make([]string, 0, len(c.Columns()))
	for _, column := range c.Columns() {
		columns = append(columns, string(column))
	}
	return fmt.Sprintf("Contact{id=%d, lookupKey=%q, displayName=%q, starred=%t, columns=[%s]}",
		c.ContactID(), c.LookupKey(), c.DisplayName(), c.IsStarred(), strings.Join(columns, ","))
}
