package provider

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/spachava753/contactstore/contacts"
)

// Row is the flat record a [Repository] yields for one contact: identity
// plus the data rows of the requested columns, in storage order. Standard
// columns are served from the local raw contact only; linked account
// columns from the raw contacts of their account type.
type Row struct {
	ContactID   int64
	LookupKey   contacts.LookupKey
	DisplayName string
	IsStarred   bool
	Data        []DataRow
}

// DataRow is one row of the data table.
type DataRow struct {
	ID       int64
	MimeType string
	// AccountType is the account of the raw contact owning the row; empty
	// for local contacts.
	AccountType string
	Values      map[string]any
}

// String returns the text value of column, or "".
func (r DataRow) String(column string) string {
	switch v := r.Values[column].(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}

// Int returns the integer value of column, or 0.
func (r DataRow) Int(column string) int64 {
	switch v := r.Values[column].(type) {
	case int:
		return int64(v)
	case int64:
		return v
	case int32:
		return int64(v)
	case float64:
		return int64(v)
	case string:
		n, _ := strconv.ParseInt(v, 10, 64)
		return n
	case []byte:
		n, _ := strconv.ParseInt(string(v), 10, 64)
		return n
	}
	return 0
}

// Bytes returns the blob value of column, or nil.
func (r DataRow) Bytes(column string) []byte {
	switch v := r.Values[column].(type) {
	case []byte:
		return v
	case string:
		return []byte(v)
	}
	return nil
}

func (r DataRow) label(kind ValueKind) contacts.Label {
	return LabelFor(kind, int(r.Int(ColumnType)), r.String(ColumnLabel))
}

var columnMimeTypes = map[contacts.Column][]string{
	contacts.ColumnNames:            {MimeTypeStructuredName},
	contacts.ColumnPhones:           {MimeTypePhone},
	contacts.ColumnMails:            {MimeTypeEmail},
	contacts.ColumnOrganization:     {MimeTypeOrganization},
	contacts.ColumnImage:            {MimeTypePhoto},
	contacts.ColumnNote:             {MimeTypeNote},
	contacts.ColumnPostalAddresses:  {MimeTypePostal},
	contacts.ColumnNickname:         {MimeTypeNickname},
	contacts.ColumnWebAddresses:     {MimeTypeWebsite},
	contacts.ColumnGroupMemberships: {MimeTypeGroupMembership},
	contacts.ColumnEvents:           {MimeTypeEvent},
	contacts.ColumnRelations:        {MimeTypeRelation},
	contacts.ColumnImAddresses:      {MimeTypeIm},
	contacts.ColumnSipAddresses:     {MimeTypeSipAddress},
}

// MimeTypes returns the data mime types backing the standard columns in
// columns. Linked account columns are selected by account type instead, see
// [AccountTypes].
func MimeTypes(columns []contacts.Column) []string {
	var out []string
	for _, column := range columns {
		out = append(out, columnMimeTypes[column]...)
	}
	return out
}

// AccountTypes returns the account types of the linked account columns in
// columns.
func AccountTypes(columns []contacts.Column) []string {
	var out []string
	for _, column := range columns {
		if column.IsLinkedAccount() {
			out = append(out, column.AccountType())
		}
	}
	return out
}

// DecodeContact builds the contact for a fetched row. The repository is
// trusted to have returned only the requested columns' data; the contact
// carries exactly columns.
func DecodeContact(row Row, columns []contacts.Column) *contacts.PartialContact {
	d := contacts.Data{
		ContactID:   row.ContactID,
		LookupKey:   row.LookupKey,
		DisplayName: row.DisplayName,
		IsStarred:   row.IsStarred,
		Columns:     columns,
	}
	for _, data := range row.Data {
		decodeDataRow(&d, data)
	}
	return contacts.NewPartialContact(d)
}

// isStandardMimeType reports whether mimeType backs a standard column.
func isStandardMimeType(mimeType string) bool {
	for _, mimeTypes := range columnMimeTypes {
		if slices.Contains(mimeTypes, mimeType) {
			return true
		}
	}
	return false
}

// decodeDataRow folds r into d. Rows of linked raw contacts only ever
// become linked account values; standard rows they carry are skipped so
// they cannot replace the local contact's fields.
func decodeDataRow(d *contacts.Data, r DataRow) {
	if r.AccountType != "" {
		if isStandardMimeType(r.MimeType) {
			return
		}
		d.LinkedAccountValues = append(d.LinkedAccountValues, contacts.LinkedAccountValue{
			ID:          r.ID,
			AccountType: r.AccountType,
			MimeType:    r.MimeType,
			Summary:     r.String(LinkedSummary),
			Detail:      r.String(LinkedDetail),
		})
		return
	}
	switch r.MimeType {
	case MimeTypeStructuredName:
		d.Prefix = r.String(NamePrefix)
		d.FirstName = r.String(NameGivenName)
		d.MiddleName = r.String(NameMiddleName)
		d.LastName = r.String(NameFamilyName)
		d.Suffix = r.String(NameSuffix)
		d.PhoneticFirstName = r.String(NamePhoneticGivenName)
		d.PhoneticMiddleName = r.String(NamePhoneticMiddleName)
		d.PhoneticLastName = r.String(NamePhoneticFamilyName)
		d.FullNameStyle = contacts.FullNameStyle(r.Int(NameFullNameStyle))
		d.PhoneticNameStyle = contacts.PhoneticNameStyle(r.Int(NamePhoneticNameStyle))
	case MimeTypePhone:
		d.Phones = append(d.Phones, contacts.Labeled(
			contacts.PhoneNumber{Raw: r.String(PhoneNumber)}, r.label(KindPhone)))
	case MimeTypeEmail:
		d.Mails = append(d.Mails, contacts.Labeled(
			contacts.MailAddress{Raw: r.String(EmailAddress)}, r.label(KindMail)))
	case MimeTypeWebsite:
		d.WebAddresses = append(d.WebAddresses, contacts.Labeled(
			contacts.WebAddress{Raw: r.String(WebsiteURL)}, r.label(KindWebAddress)))
	case MimeTypeEvent:
		date, err := contacts.ParseEventDate(r.String(EventStartDate))
		if err != nil {
			// unparseable dates are dropped rather than guessed
			return
		}
		d.Events = append(d.Events, contacts.Labeled(date, r.label(KindEvent)))
	case MimeTypePostal:
		d.PostalAddresses = append(d.PostalAddresses, contacts.Labeled(contacts.PostalAddress{
			Street:       r.String(PostalStreet),
			POBox:        r.String(PostalPOBox),
			Neighborhood: r.String(PostalNeighborhood),
			City:         r.String(PostalCity),
			Region:       r.String(PostalRegion),
			PostCode:     r.String(PostalPostCode),
			Country:      r.String(PostalCountry),
		}, r.label(KindPostalAddress)))
	case MimeTypeIm:
		d.ImAddresses = append(d.ImAddresses, contacts.Labeled(contacts.ImAddress{
			Raw:      r.String(ImData),
			Protocol: r.String(ImCustomProtocol),
		}, r.label(KindImAddress)))
	case MimeTypeSipAddress:
		d.SipAddresses = append(d.SipAddresses, contacts.Labeled(
			contacts.SipAddress{Raw: r.String(SipAddress)}, r.label(KindSipAddress)))
	case MimeTypeRelation:
		d.Relations = append(d.Relations, contacts.Labeled(
			contacts.Relation{Name: r.String(RelationName)}, r.label(KindRelation)))
	case MimeTypeNote:
		d.Note = &contacts.Note{Raw: r.String(NoteText)}
	case MimeTypeOrganization:
		d.Organization = r.String(OrganizationName)
		d.JobTitle = r.String(OrganizationTitle)
	case MimeTypePhoto:
		if blob := r.Bytes(PhotoBlob); len(blob) > 0 {
			d.ImageData = &contacts.ImageData{Raw: blob}
		}
	case MimeTypeNickname:
		d.Nickname = r.String(NicknameName)
	case MimeTypeGroupMembership:
		d.Groups = append(d.Groups, contacts.GroupMembership{GroupID: r.Int(GroupRowID)})
	}
}
