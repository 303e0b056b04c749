package contacts

import (
	"errors"
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

func recovered(f func()) (v any) {
	defer func() { v = recover() }()
	f()
	return nil
}

func columnErrorOf(f func()) *ColumnError {
	err, _ := recovered(f).(*ColumnError)
	return err
}

var readers = map[Field]func(Contact){
	FieldPrefix:              func(c Contact) { c.Prefix() },
	FieldFirstName:           func(c Contact) { c.FirstName() },
	FieldMiddleName:          func(c Contact) { c.MiddleName() },
	FieldLastName:            func(c Contact) { c.LastName() },
	FieldSuffix:              func(c Contact) { c.Suffix() },
	FieldPhoneticFirstName:   func(c Contact) { c.PhoneticFirstName() },
	FieldPhoneticMiddleName:  func(c Contact) { c.PhoneticMiddleName() },
	FieldPhoneticLastName:    func(c Contact) { c.PhoneticLastName() },
	FieldFullNameStyle:       func(c Contact) { c.FullNameStyle() },
	FieldPhoneticNameStyle:   func(c Contact) { c.PhoneticNameStyle() },
	FieldPhones:              func(c Contact) { c.Phones() },
	FieldMails:               func(c Contact) { c.Mails() },
	FieldOrganization:        func(c Contact) { c.Organization() },
	FieldJobTitle:            func(c Contact) { c.JobTitle() },
	FieldImageData:           func(c Contact) { c.ImageData() },
	FieldNote:                func(c Contact) { c.Note() },
	FieldPostalAddresses:     func(c Contact) { c.PostalAddresses() },
	FieldNickname:            func(c Contact) { c.Nickname() },
	FieldWebAddresses:        func(c Contact) { c.WebAddresses() },
	FieldGroups:              func(c Contact) { c.Groups() },
	FieldEvents:              func(c Contact) { c.Events() },
	FieldRelations:           func(c Contact) { c.Relations() },
	FieldImAddresses:         func(c Contact) { c.ImAddresses() },
	FieldSipAddresses:        func(c Contact) { c.SipAddresses() },
	FieldLinkedAccountValues: func(c Contact) { c.LinkedAccountValues() },
}

func TestGroupTableCoversEveryField(t *testing.T) {
	covered := 0
	for _, column := range StandardColumns() {
		fields := FieldsOf(column)
		be.True(t, len(fields) > 0)
		for _, f := range fields {
			be.Equal(t, f.Column(), column)
			covered++
		}
	}
	be.Equal(t, FieldsOf(LinkedAccountColumn("com.whatsapp")), []Field{FieldLinkedAccountValues})
	be.Equal(t, covered+1, len(readers))
}

func TestPartialContactGatesEveryField(t *testing.T) {
	for _, column := range StandardColumns() {
		c := NewPartialContact(Data{ContactID: 7, Columns: []Column{column}})
		for f, read := range readers {
			err := columnErrorOf(func() { read(c) })
			if f.Column() == column {
				be.True(t, err == nil)
				continue
			}
			be.True(t, err != nil)
			be.Equal(t, err.Field, f)
			be.Equal(t, err.Columns, []Column{column})
		}
	}
}

func TestIdentityIsNeverGated(t *testing.T) {
	c := NewPartialContact(Data{ContactID: 3, LookupKey: "k", DisplayName: "Ada", IsStarred: true})
	be.Equal(t, c.ContactID(), int64(3))
	be.Equal(t, c.LookupKey(), LookupKey("k"))
	be.Equal(t, c.DisplayName(), "Ada")
	be.True(t, c.IsStarred())
	be.Equal(t, len(c.Columns()), 0)
}

func TestLinkedAccountValuesRequireLinkedColumn(t *testing.T) {
	values := []LinkedAccountValue{{ID: 1, AccountType: "com.whatsapp", Summary: "WhatsApp"}}

	standard := NewPartialContact(Data{Columns: StandardColumns(), LinkedAccountValues: values})
	err := columnErrorOf(func() { standard.LinkedAccountValues() })
	be.True(t, err != nil)
	be.True(t, strings.Contains(err.Error(), "requires a linked account column"))

	linked := NewPartialContact(Data{
		Columns:             []Column{LinkedAccountColumn("org.telegram")},
		LinkedAccountValues: values,
	})
	be.Equal(t, linked.LinkedAccountValues(), values)
}

func TestColumnErrorUnwraps(t *testing.T) {
	c := NewPartialContact(Data{Columns: []Column{ColumnNames}})
	v := recovered(func() { c.Phones() })

	err, ok := v.(error)
	be.True(t, ok)
	be.True(t, errors.Is(err, ErrColumnNotRequested))
	be.Equal(t, err.Error(), "contacts: field phones requires column phones (have [names])")
}

func TestPartialContactReturnsCopies(t *testing.T) {
	d := Data{
		Columns:   []Column{ColumnPhones, ColumnImage},
		Phones:    []LabeledValue[PhoneNumber]{Labeled(PhoneNumber{Raw: "555"}, LabelOther)},
		ImageData: &ImageData{Raw: []byte{1, 2, 3}},
	}
	c := NewPartialContact(d)
	d.Phones[0].Value.Raw = "changed"

	phones := c.Phones()
	phones[0].Value.Raw = "mutated"
	image := c.ImageData()
	image.Raw[0] = 9

	be.Equal(t, c.Phones()[0].Value.Raw, "555")
	be.Equal(t, c.ImageData().Raw, []byte{1, 2, 3})
}

func TestMutableContactWritesAreGated(t *testing.T) {
	src := NewPartialContact(Data{ContactID: 5, Columns: []Column{ColumnNames}})
	m := MutableCopy(src)

	m.SetFirstName("Ada")
	m.SetStarred(true)
	be.Equal(t, m.FirstName(), "Ada")
	be.True(t, m.IsStarred())

	writers := map[Field]func(){
		FieldOrganization: func() { m.SetOrganization("Acme") },
		FieldPhones:       func() { m.AddPhone(PhoneNumber{Raw: "555"}, LabelOther) },
		FieldNote:         func() { m.SetNote(&Note{Raw: "x"}) },
		FieldGroups:       func() { m.AddGroup(GroupMembership{GroupID: 1}) },
		FieldNickname:     func() { m.SetNickname("Ace") },
	}
	for f, write := range writers {
		err := columnErrorOf(write)
		be.True(t, err != nil)
		be.Equal(t, err.Field, f)
	}
}

func TestNewMutableContact(t *testing.T) {
	m := NewMutableContact()
	be.Equal(t, m.ContactID(), NewContactID)
	be.Equal(t, m.Columns(), StandardColumns())
	be.Equal(t, m.DisplayName(), "")
	be.Equal(t, m.FullNameStyle(), FullNameStyleUndefined)
	be.Equal(t, len(m.Phones()), 0)

	err := columnErrorOf(func() { m.LinkedAccountValues() })
	be.True(t, err != nil)
}

func TestMutableCopyKeepsColumnsAndResetsOthers(t *testing.T) {
	src := NewPartialContact(Data{
		ContactID:    9,
		LookupKey:    "lk",
		DisplayName:  "Paolo Melendez",
		IsStarred:    true,
		Columns:      []Column{ColumnNames, ColumnPhones},
		FirstName:    "Paolo",
		LastName:     "Melendez",
		Phones:       []LabeledValue[PhoneNumber]{Labeled(PhoneNumber{Raw: "555"}, LabelPhoneNumberMobile)},
		Organization: "Stray Corp",
		JobTitle:     "Stray",
	})

	m := MutableCopy(src)
	be.Equal(t, m.Columns(), []Column{ColumnNames, ColumnPhones})
	be.Equal(t, m.ContactID(), int64(9))
	be.Equal(t, m.LookupKey(), LookupKey("lk"))
	be.True(t, m.IsStarred())
	be.Equal(t, m.FirstName(), "Paolo")
	be.Equal(t, m.Phones(), src.Phones())
	be.True(t, columnErrorOf(func() { m.Organization() }) != nil)

	widened := MutableCopy(src, ColumnOrganization, ColumnNames)
	be.Equal(t, widened.Columns(), []Column{ColumnNames, ColumnPhones, ColumnOrganization})
	be.Equal(t, widened.Organization(), "")
	be.Equal(t, widened.JobTitle(), "")

	m.AddPhone(PhoneNumber{Raw: "556"}, LabelLocationHome)
	be.Equal(t, len(src.Phones()), 1)
	be.Equal(t, len(m.Phones()), 2)
}

func TestMutableCopyOfLinkedColumns(t *testing.T) {
	values := []LinkedAccountValue{{ID: 15, AccountType: "com.whatsapp", Summary: "WhatsApp"}}
	src := NewPartialContact(Data{
		Columns:             []Column{LinkedAccountColumn("com.whatsapp")},
		LinkedAccountValues: values,
	})

	m := MutableCopy(src)
	be.Equal(t, m.LinkedAccountValues(), values)
}

func TestEqualAndHash(t *testing.T) {
	d := Data{
		ContactID:   1,
		LookupKey:   "lk",
		DisplayName: "Ada",
		Columns:     []Column{ColumnNames, ColumnPhones, ColumnImage},
		FirstName:   "Ada",
		ImageData:   &ImageData{Raw: []byte{1}},
		Phones:      []LabeledValue[PhoneNumber]{},
	}
	a := NewPartialContact(d)

	reordered := d
	reordered.Columns = []Column{ColumnImage, ColumnPhones, ColumnNames}
	reordered.Phones = nil
	reordered.ImageData = &ImageData{Raw: []byte{1}}
	b := NewPartialContact(reordered)

	be.True(t, Equal(a, b))
	be.True(t, a.Equal(b))
	be.Equal(t, Hash(a), Hash(b))

	// stray data outside the columns does not count
	stray := d
	stray.Organization = "Acme"
	be.True(t, Equal(a, NewPartialContact(stray)))

	fewer := d
	fewer.Columns = []Column{ColumnNames}
	be.True(t, !Equal(a, NewPartialContact(fewer)))

	renamed := d
	renamed.FirstName = "Grace"
	be.True(t, !Equal(a, NewPartialContact(renamed)))
	be.True(t, Hash(a) != Hash(NewPartialContact(renamed)))

	var nilContact *PartialContact
	be.True(t, !Equal(a, nilContact))
	be.True(t, Equal(nil, nilContact))
}

func TestString(t *testing.T) {
	c := NewPartialContact(Data{ContactID: 2, DisplayName: "Ada", Columns: []Column{ColumnNames, ColumnMails}})
	be.Equal(t, c.String(), `Contact{id=2, lookupKey="", displayName="Ada", starred=false, columns=[names,mails]}`)
}
