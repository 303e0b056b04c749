package contacts

import (
	"errors"
	"fmt"
)

// Field names one attribute of a contact.
type Field string

const (
	// FieldPrefix is the honorific before the name.
	FieldPrefix Field = "prefix"
	// FieldFirstName is the given name.
	FieldFirstName Field = "first_name"
	// FieldMiddleName is the middle name.
	FieldMiddleName Field = "middle_name"
	// FieldLastName is the family name.
	FieldLastName Field = "last_name"
	// FieldSuffix is the honorific after the name.
	FieldSuffix Field = "suffix"
	// FieldPhoneticFirstName is the given name as pronounced.
	FieldPhoneticFirstName Field = "phonetic_first_name"
	// FieldPhoneticMiddleName is the middle name as pronounced.
	FieldPhoneticMiddleName Field = "phonetic_middle_name"
	// FieldPhoneticLastName is the family name as pronounced.
	FieldPhoneticLastName Field = "phonetic_last_name"
	// FieldFullNameStyle is the style used to compose the full name.
	FieldFullNameStyle Field = "full_name_style"
	// FieldPhoneticNameStyle is the style of the phonetic name.
	FieldPhoneticNameStyle Field = "phonetic_name_style"
	// FieldPhones is the list of phone numbers.
	FieldPhones Field = "phones"
	// FieldMails is the list of mail addresses.
	FieldMails Field = "mails"
	// FieldOrganization is the company name.
	FieldOrganization Field = "organization"
	// FieldJobTitle is the title held at the organization.
	FieldJobTitle Field = "job_title"
	// FieldImageData is the contact photo.
	FieldImageData Field = "image_data"
	// FieldNote is the free-text note.
	FieldNote Field = "note"
	// FieldPostalAddresses is the list of postal addresses.
	FieldPostalAddresses Field = "postal_addresses"
	// FieldNickname is the informal name.
	FieldNickname Field = "nickname"
	// FieldWebAddresses is the list of web addresses.
	FieldWebAddresses Field = "web_addresses"
	// FieldGroups is the list of group memberships.
	FieldGroups Field = "groups"
	// FieldEvents is the list of dated events.
	FieldEvents Field = "events"
	// FieldRelations is the list of related people.
	FieldRelations Field = "relations"
	// FieldImAddresses is the list of instant messaging handles.
	FieldImAddresses Field = "im_addresses"
	// FieldSipAddresses is the list of SIP addresses.
	FieldSipAddresses Field = "sip_addresses"
	// FieldLinkedAccountValues is the rows contributed by linked accounts.
	FieldLinkedAccountValues Field = "linked_account_values"
)

// columnFields is the group table: every field belongs to exactly one column.
// FieldLinkedAccountValues is absent on purpose, it is granted by any linked
// account column.
var columnFields = map[Column][]Field{
	ColumnNames: {
		FieldPrefix, FieldFirstName, FieldMiddleName, FieldLastName, FieldSuffix,
		FieldPhoneticFirstName, FieldPhoneticMiddleName, FieldPhoneticLastName,
		FieldFullNameStyle, FieldPhoneticNameStyle,
	},
	ColumnPhones:           {FieldPhones},
	ColumnMails:            {FieldMails},
	ColumnOrganization:     {FieldOrganization, FieldJobTitle},
	ColumnImage:            {FieldImageData},
	ColumnNote:             {FieldNote},
	ColumnPostalAddresses:  {FieldPostalAddresses},
	ColumnNickname:         {FieldNickname},
	ColumnWebAddresses:     {FieldWebAddresses},
	ColumnGroupMemberships: {FieldGroups},
	ColumnEvents:           {FieldEvents},
	ColumnRelations:        {FieldRelations},
	ColumnImAddresses:      {FieldImAddresses},
	ColumnSipAddresses:     {FieldSipAddresses},
}

var fieldColumn = func() map[Field]Column {
	index := make(map[Field]Column)
	for column, fields := range columnFields {
		for _, field := range fields {
			index[field] = column
		}
	}
	return index
}()

// Column returns the column owning f. It returns "" for
// FieldLinkedAccountValues, which any linked account column grants.
func (f Field) Column() Column {
	return fieldColumn[f]
}

// FieldsOf returns the fields owned by column.
func FieldsOf(column Column) []Field {
	if column.IsLinkedAccount() {
		return []Field{FieldLinkedAccountValues}
	}
	return append([]Field(nil), columnFields[column]...)
}

// ErrColumnNotRequested is the sentinel wrapped by [ColumnError].
var ErrColumnNotRequested = errors.New("contacts: column not requested")

// ColumnError is the panic value raised when a field is read or written on a
// contact that does not carry the field's column.
type ColumnError struct {
	Field   Field
	Columns []Column
}

func (e *ColumnError) Error() string {
	if e.Field == FieldLinkedAccountValues {
		return fmt.Sprintf("contacts: field %s requires a linked account column (have %v)", e.Field, e.Columns)
	}
	return fmt.Sprintf("contacts: field %s requires column %s (have %v)", e.Field, e.Field.Column(), e.Columns)
}

func (e *ColumnError) Unwrap() error {
	return ErrColumnNotRequested
}

// allows reports whether columns grant access to f.
func allows(columns []Column, f Field) bool {
	if f == FieldLinkedAccountValues {
		return containsLinkedAccountColumn(columns)
	}
	column, ok := fieldColumn[f]
	return ok && containsColumn(columns, column)
}
