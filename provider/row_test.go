package provider_test

import (
	"testing"

	"github.com/nalgeon/be"

	"github.com/spachava753/contactstore/contacts"
	"github.com/spachava753/contactstore/provider"
	"github.com/spachava753/contactstore/storetest"
)

func TestDecodeContact(t *testing.T) {
	got := provider.DecodeContact(storetest.PaoloMelendezRow(), storetest.AllColumns())
	want := contacts.NewPartialContact(storetest.PaoloMelendez())

	be.True(t, contacts.Equal(got, want))
	be.Equal(t, got.LinkedAccountValues(), want.LinkedAccountValues())
	be.Equal(t, got.Relations(), want.Relations())
}

func TestDecodeContactUnknownRows(t *testing.T) {
	row := provider.Row{
		ContactID: 4,
		Data: []provider.DataRow{
			{ID: 1, MimeType: "vnd.example/unknown", Values: map[string]any{provider.ColumnData1: "x"}},
			{ID: 2, MimeType: provider.MimeTypeEvent, Values: map[string]any{
				provider.EventStartDate: "not a date",
				provider.ColumnType:     3,
			}},
			{ID: 3, MimeType: provider.MimeTypeEvent, Values: map[string]any{
				provider.EventStartDate: "--05-17",
				provider.ColumnType:     int64(1),
			}},
			{ID: 4, MimeType: provider.MimeTypePhone, Values: map[string]any{
				provider.PhoneNumber: []byte("555"),
				provider.ColumnType:  "42",
			}},
		},
	}
	columns := []contacts.Column{contacts.ColumnEvents, contacts.ColumnPhones, contacts.LinkedAccountColumn("com.example")}
	c := provider.DecodeContact(row, columns)

	be.Equal(t, c.Events(), []contacts.LabeledValue[contacts.EventDate]{
		contacts.Labeled(contacts.EventDate{Day: 17, Month: 5}, contacts.LabelDateAnniversary),
	})
	be.Equal(t, c.Phones(), []contacts.LabeledValue[contacts.PhoneNumber]{
		contacts.Labeled(contacts.PhoneNumber{Raw: "555"}, contacts.LabelOther),
	})
	be.Equal(t, len(c.LinkedAccountValues()), 0)
	be.Equal(t, c.Columns(), columns)
}

func TestMimeTypesAndAccountTypes(t *testing.T) {
	columns := []contacts.Column{
		contacts.ColumnNames,
		contacts.LinkedAccountColumn("com.whatsapp"),
		contacts.ColumnPhones,
		contacts.LinkedAccountColumn("org.telegram"),
	}
	be.Equal(t, provider.MimeTypes(columns), []string{provider.MimeTypeStructuredName, provider.MimeTypePhone})
	be.Equal(t, provider.AccountTypes(columns), []string{"com.whatsapp", "org.telegram"})

	be.Equal(t, len(provider.MimeTypes(contacts.StandardColumns())), len(contacts.StandardColumns()))
	be.Equal(t, len(provider.AccountTypes(contacts.StandardColumns())), 0)
}

func TestDataRowAccessors(t *testing.T) {
	r := provider.DataRow{Values: map[string]any{
		"text":  "hi",
		"blob":  []byte("yo"),
		"int":   int64(7),
		"float": float64(3),
		"num":   "12",
	}}
	be.Equal(t, r.String("text"), "hi")
	be.Equal(t, r.String("blob"), "yo")
	be.Equal(t, r.String("int"), "7")
	be.Equal(t, r.String("missing"), "")
	be.Equal(t, r.Int("int"), int64(7))
	be.Equal(t, r.Int("float"), int64(3))
	be.Equal(t, r.Int("num"), int64(12))
	be.Equal(t, r.Int("text"), int64(0))
	be.Equal(t, r.Bytes("blob"), []byte("yo"))
	be.Equal(t, r.Bytes("text"), []byte("hi"))
	be.True(t, r.Bytes("int") == nil)
}

func TestDecodeContactSkipsStandardRowsOfLinkedAccounts(t *testing.T) {
	row := provider.Row{
		ContactID:   1,
		DisplayName: "Paolo Melendez",
		Data: []provider.DataRow{
			{ID: 1, MimeType: provider.MimeTypeStructuredName, Values: map[string]any{
				provider.NameGivenName:  "Paolo",
				provider.NameFamilyName: "Melendez",
			}},
			{ID: 2, MimeType: provider.MimeTypeStructuredName, AccountType: "com.whatsapp", Values: map[string]any{
				provider.NameGivenName: "WA",
			}},
			{ID: 3, MimeType: provider.MimeTypeNote, AccountType: "com.whatsapp", Values: map[string]any{
				provider.NoteText: "from whatsapp",
			}},
			{ID: 4, MimeType: storetest.WhatsAppMimeType, AccountType: "com.whatsapp", Values: map[string]any{
				provider.LinkedSummary: "WhatsApp",
			}},
		},
	}
	columns := []contacts.Column{contacts.ColumnNames, contacts.ColumnNote, contacts.LinkedAccountColumn("com.whatsapp")}
	c := provider.DecodeContact(row, columns)

	be.Equal(t, c.FirstName(), "Paolo")
	be.Equal(t, c.LastName(), "Melendez")
	be.True(t, c.Note() == nil)
	be.Equal(t, c.LinkedAccountValues(), []contacts.LinkedAccountValue{{
		ID:          4,
		AccountType: "com.whatsapp",
		MimeType:    storetest.WhatsAppMimeType,
		Summary:     "WhatsApp",
	}})
}
