package storetest

import (
	"maps"
	"slices"

	"github.com/spachava753/contactstore/contacts"
	"github.com/spachava753/contactstore/provider"
)

// WhatsAppAccountType is the account type of the linked account row in the
// Paolo Melendez fixture.
const WhatsAppAccountType = "com.whatsapp"

// WhatsAppMimeType is the mime type of the WhatsApp profile data row.
const WhatsAppMimeType = "vnd.android.cursor.item/vnd.com.whatsapp.profile"

// PaoloMelendezID is the contact ID of the Paolo Melendez fixture.
const PaoloMelendezID int64 = 1

// PaoloMelendezRow returns a snapshot row populating every column.
func PaoloMelendezRow() provider.Row {
	return provider.Row{
		ContactID:   PaoloMelendezID,
		LookupKey:   "paolo-lookup",
		DisplayName: "Paolo Melendez",
		IsStarred:   true,
		Data: []provider.DataRow{
			{ID: 1, MimeType: provider.MimeTypeStructuredName, Values: map[string]any{
				provider.NameDisplayName: "Paolo Melendez",
				provider.NamePrefix:      "Prefix",
				provider.NameGivenName:   "Paolo",
				provider.NameMiddleName:  "Mid",
				provider.NameFamilyName:  "Melendez",
				provider.NameSuffix:      "Suffix",
			}},
			{ID: 2, MimeType: provider.MimeTypePhone, Values: map[string]any{
				provider.PhoneNumber: "555",
				provider.ColumnType:  2,
			}},
			{ID: 3, MimeType: provider.MimeTypeEmail, Values: map[string]any{
				provider.EmailAddress: "hi@mail.com",
				provider.ColumnType:   1,
			}},
			{ID: 4, MimeType: provider.MimeTypeOrganization, Values: map[string]any{
				provider.OrganizationName:  "Organization",
				provider.OrganizationTitle: "Job Title",
			}},
			{ID: 5, MimeType: provider.MimeTypePhoto, Values: map[string]any{
				provider.PhotoBlob: []byte{1, 2, 3},
			}},
			{ID: 6, MimeType: provider.MimeTypeNote, Values: map[string]any{
				provider.NoteText: "Note",
			}},
			{ID: 7, MimeType: provider.MimeTypePostal, Values: map[string]any{
				provider.PostalStreet: "SomeStreet 55",
				provider.ColumnType:   1,
			}},
			{ID: 8, MimeType: provider.MimeTypeNickname, Values: map[string]any{
				provider.NicknameName: "Nickname",
			}},
			{ID: 9, MimeType: provider.MimeTypeWebsite, Values: map[string]any{
				provider.WebsiteURL: "www.web.com",
				provider.ColumnType: 1,
			}},
			{ID: 10, MimeType: provider.MimeTypeGroupMembership, Values: map[string]any{
				provider.GroupRowID: int64(10),
			}},
			{ID: 11, MimeType: provider.MimeTypeEvent, Values: map[string]any{
				provider.EventStartDate: "1990-05-17",
				provider.ColumnType:     3,
			}},
			{ID: 12, MimeType: provider.MimeTypeRelation, Values: map[string]any{
				provider.RelationName: "Maria",
				provider.ColumnType:   0,
				provider.ColumnLabel:  "Boss",
			}},
			{ID: 13, MimeType: provider.MimeTypeIm, Values: map[string]any{
				provider.ImData:           "paolo",
				provider.ImCustomProtocol: "matrix",
				provider.ColumnType:       1,
			}},
			{ID: 14, MimeType: provider.MimeTypeSipAddress, Values: map[string]any{
				provider.SipAddress: "sip:paolo@example.com",
				provider.ColumnType: 2,
			}},
			{ID: 15, MimeType: WhatsAppMimeType, AccountType: WhatsAppAccountType, Values: map[string]any{
				provider.LinkedSummary: "WhatsApp",
				provider.LinkedDetail:  "Message +555",
			}},
		},
	}
}

// PaoloMelendez returns the fixture as it decodes with every standard column
// plus the WhatsApp linked account column.
func PaoloMelendez() contacts.Data {
	year := 1990
	return contacts.Data{
		ContactID:    PaoloMelendezID,
		LookupKey:    "paolo-lookup",
		DisplayName:  "Paolo Melendez",
		IsStarred:    true,
		Columns:      AllColumns(),
		Prefix:       "Prefix",
		FirstName:    "Paolo",
		MiddleName:   "Mid",
		LastName:     "Melendez",
		Suffix:       "Suffix",
		Nickname:     "Nickname",
		Organization: "Organization",
		JobTitle:     "Job Title",
		ImageData:    &contacts.ImageData{Raw: []byte{1, 2, 3}},
		Note:         &contacts.Note{Raw: "Note"},
		Phones: []contacts.LabeledValue[contacts.PhoneNumber]{
			contacts.Labeled(contacts.PhoneNumber{Raw: "555"}, contacts.LabelPhoneNumberMobile),
		},
		Mails: []contacts.LabeledValue[contacts.MailAddress]{
			contacts.Labeled(contacts.MailAddress{Raw: "hi@mail.com"}, contacts.LabelLocationHome),
		},
		Events: []contacts.LabeledValue[contacts.EventDate]{
			contacts.Labeled(contacts.EventDate{Day: 17, Month: 5, Year: &year}, contacts.LabelDateBirthday),
		},
		PostalAddresses: []contacts.LabeledValue[contacts.PostalAddress]{
			contacts.Labeled(contacts.PostalAddress{Street: "SomeStreet 55"}, contacts.LabelLocationHome),
		},
		WebAddresses: []contacts.LabeledValue[contacts.WebAddress]{
			contacts.Labeled(contacts.WebAddress{Raw: "www.web.com"}, contacts.LabelWebsiteHomePage),
		},
		ImAddresses: []contacts.LabeledValue[contacts.ImAddress]{
			contacts.Labeled(contacts.ImAddress{Raw: "paolo", Protocol: "matrix"}, contacts.LabelLocationHome),
		},
		SipAddresses: []contacts.LabeledValue[contacts.SipAddress]{
			contacts.Labeled(contacts.SipAddress{Raw: "sip:paolo@example.com"}, contacts.LabelLocationWork),
		},
		Relations: []contacts.LabeledValue[contacts.Relation]{
			contacts.Labeled(contacts.Relation{Name: "Maria"}, contacts.CustomLabel("Boss")),
		},
		Groups: []contacts.GroupMembership{{GroupID: 10}},
		LinkedAccountValues: []contacts.LinkedAccountValue{{
			ID:          15,
			AccountType: WhatsAppAccountType,
			MimeType:    WhatsAppMimeType,
			Summary:     "WhatsApp",
			Detail:      "Message +555",
		}},
	}
}

// AllColumns returns the standard columns plus the WhatsApp linked account
// column.
func AllColumns() []contacts.Column {
	return append(contacts.StandardColumns(), contacts.LinkedAccountColumn(WhatsAppAccountType))
}

// LinkedAccountOperations returns the batch a sync adapter would apply to
// attach v to an existing contact: a raw contact of v's account type joined
// to contactID, and one data row carrying the summary and detail.
func LinkedAccountOperations(contactID int64, accountName string, v contacts.LinkedAccountValue) []provider.Operation {
	return []provider.Operation{
		{
			Kind:  provider.OperationInsert,
			Table: provider.TableRawContacts,
			Values: []provider.ColumnValue{
				{Column: provider.ColumnContactID, Value: contactID},
				{Column: provider.ColumnAccountType, Value: v.AccountType},
				{Column: provider.ColumnAccountName, Value: accountName},
				{Column: provider.ColumnStarred, Value: 0},
			},
		},
		{
			Kind:  provider.OperationInsert,
			Table: provider.TableData,
			Values: []provider.ColumnValue{
				{Column: provider.ColumnMimeType, Value: v.MimeType},
				{Column: provider.LinkedSummary, Value: v.Summary},
				{Column: provider.LinkedDetail, Value: v.Detail},
			},
			BackReferences: []provider.BackReference{{Column: provider.ColumnRawContactID, Index: 0}},
		},
	}
}

// LinkedDataOperation returns a data insert attached to the raw contact
// created by operation 0 of a [LinkedAccountOperations] batch.
func LinkedDataOperation(mimeType string, values map[string]any) provider.Operation {
	op := provider.Operation{
		Kind:           provider.OperationInsert,
		Table:          provider.TableData,
		Values:         []provider.ColumnValue{{Column: provider.ColumnMimeType, Value: mimeType}},
		BackReferences: []provider.BackReference{{Column: provider.ColumnRawContactID, Index: 0}},
	}
	columns := slices.Sorted(maps.Keys(values))
	for _, column := range columns {
		op.Values = append(op.Values, provider.ColumnValue{Column: column, Value: values[column]})
	}
	return op
}
