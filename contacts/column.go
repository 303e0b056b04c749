package contacts

import "strings"

// Column names one attribute group of a contact. Columns are both the unit
// of fetching and the permission to read or write the group's fields.
type Column string

const (
	// ColumnNames covers the structured and phonetic name parts and styles.
	ColumnNames Column = "names"
	// ColumnPhones covers phone numbers.
	ColumnPhones Column = "phones"
	// ColumnMails covers e-mail addresses.
	ColumnMails Column = "mails"
	// ColumnOrganization covers organization and job title.
	ColumnOrganization Column = "organization"
	// ColumnImage covers the contact photo.
	ColumnImage Column = "image"
	// ColumnNote covers the note.
	ColumnNote Column = "note"
	// ColumnPostalAddresses covers postal addresses.
	ColumnPostalAddresses Column = "postal_addresses"
	// ColumnNickname covers the nickname.
	ColumnNickname Column = "nickname"
	// ColumnWebAddresses covers web addresses.
	ColumnWebAddresses Column = "web_addresses"
	// ColumnGroupMemberships covers group memberships.
	ColumnGroupMemberships Column = "group_memberships"
	// ColumnEvents covers event dates such as birthdays.
	ColumnEvents Column = "events"
	// ColumnRelations covers related people.
	ColumnRelations Column = "relations"
	// ColumnImAddresses covers instant-messaging addresses.
	ColumnImAddresses Column = "im_addresses"
	// ColumnSipAddresses covers SIP addresses.
	ColumnSipAddresses Column = "sip_addresses"
)

const linkedAccountPrefix = "linked_account:"

// LinkedAccountColumn returns the column holding the values contributed by
// accounts of the given type. Any linked account column grants access to
// the LinkedAccountValues field.
func LinkedAccountColumn(accountType string) Column {
	return Column(linkedAccountPrefix + accountType)
}

// IsLinkedAccount reports whether c was built by [LinkedAccountColumn].
func (c Column) IsLinkedAccount() bool {
	return strings.HasPrefix(string(c), linkedAccountPrefix)
}

// AccountType returns the account type of a linked account column, or "".
func (c Column) AccountType() string {
	if !c.IsLinkedAccount() {
		return ""
	}
	return strings.TrimPrefix(string(c), linkedAccountPrefix)
}

// StandardColumns returns every column except linked account columns, in
// declaration order.
func StandardColumns() []Column {
	return []Column{
		ColumnNames,
		ColumnPhones,
		ColumnMails,
		ColumnOrganization,
		ColumnImage,
		ColumnNote,
		ColumnPostalAddresses,
		ColumnNickname,
		ColumnWebAddresses,
		ColumnGroupMemberships,
		ColumnEvents,
		ColumnRelations,
		ColumnImAddresses,
		ColumnSipAddresses,
	}
}

// normalizeColumns drops empty and duplicate columns, keeping first-seen order.
func normalizeColumns(columns []Column) []Column {
	out := make([]Column, 0, len(columns))
	for _, column := range columns {
		if column == "" || containsColumn(out, column) {
			continue
		}
		out = append(out, column)
	}
	return out
}

func containsColumn(columns []Column, target Column) bool {
	for _, column := range columns {
		if column == target {
			return true
		}
	}
	return false
}

func containsLinkedAccountColumn(columns []Column) bool {
	for _, column := range columns {
		if column.IsLinkedAccount() {
			return true
		}
	}
	return false
}

// sameColumns compares two column lists as sets.
func sameColumns(a, b []Column) bool {
	a, b = normalizeColumns(a), normalizeColumns(b)
	if len(a) != len(b) {
		return false
	}
	for _, column := range a {
		if !containsColumn(b, column) {
			return false
		}
	}
	return true
}
