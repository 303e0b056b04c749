package provider_test

import (
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/nalgeon/be"

	"github.com/spachava753/contactstore/contacts"
	"github.com/spachava753/contactstore/provider"
	"github.com/spachava753/contactstore/storetest"
)

func recovered(f func()) (v any) {
	defer func() { v = recover() }()
	f()
	return nil
}

func mimeTypes(ops []provider.Operation) []string {
	out := make([]string, 0, len(ops))
	for _, op := range ops {
		if op.Table == provider.TableRawContacts {
			out = append(out, provider.TableRawContacts)
			continue
		}
		out = append(out, op.MimeType())
	}
	return out
}

func opsOf(ops []provider.Operation, mimeType string) []provider.Operation {
	var out []provider.Operation
	for _, op := range ops {
		if op.Table == provider.TableData && op.MimeType() == mimeType {
			out = append(out, op)
		}
	}
	return out
}

func value(op provider.Operation, column string) any {
	v, _ := op.Value(column)
	return v
}

func paoloMelendez() *contacts.MutableContact {
	return contacts.MutableCopy(contacts.NewPartialContact(storetest.PaoloMelendez()))
}

func TestNewContactOperationsOrder(t *testing.T) {
	ops := provider.NewContactOperations(paoloMelendez())

	be.Equal(t, mimeTypes(ops), []string{
		provider.TableRawContacts,
		provider.MimeTypeStructuredName,
		provider.MimeTypePhoto,
		provider.MimeTypePhone,
		provider.MimeTypeEmail,
		provider.MimeTypeWebsite,
		provider.MimeTypeEvent,
		provider.MimeTypePostal,
		provider.MimeTypeIm,
		provider.MimeTypeSipAddress,
		provider.MimeTypeRelation,
		provider.MimeTypeNote,
		provider.MimeTypeOrganization,
		provider.MimeTypeNickname,
		provider.MimeTypeGroupMembership,
	})

	raw := ops[0]
	be.Equal(t, raw.Kind, provider.OperationInsert)
	be.Equal(t, value(raw, provider.ColumnStarred), any(1))
	accountType, ok := raw.Value(provider.ColumnAccountType)
	be.True(t, ok)
	be.True(t, accountType == nil)
	be.Equal(t, len(raw.BackReferences), 0)

	for _, op := range ops[1:] {
		be.Equal(t, op.BackReferences, []provider.BackReference{{
			Column: provider.ColumnRawContactID,
			Index:  provider.NewContactIndex,
		}})
	}
}

func TestNewContactOperationsEmptyContact(t *testing.T) {
	ops := provider.NewContactOperations(contacts.NewMutableContact())

	be.Equal(t, mimeTypes(ops), []string{provider.TableRawContacts, provider.MimeTypeStructuredName})
	be.Equal(t, value(ops[0], provider.ColumnStarred), any(0))
	name := ops[1]
	be.True(t, value(name, provider.NameDisplayName) == nil)
	be.True(t, value(name, provider.NameGivenName) == nil)
	be.Equal(t, value(name, provider.NameFullNameStyle), any(int(contacts.FullNameStyleUndefined)))
}

func TestNewContactOperationsStructuredName(t *testing.T) {
	m := contacts.NewMutableContact()
	m.SetFirstName("Paolo")
	m.SetLastName("Melendez")
	m.SetPhoneticFirstName("Pa")
	m.SetFullNameStyle(contacts.FullNameStyleWestern)

	name := opsOf(provider.NewContactOperations(m), provider.MimeTypeStructuredName)[0]
	be.Equal(t, value(name, provider.NameDisplayName), any("Paolo Melendez"))
	be.Equal(t, value(name, provider.NameGivenName), any("Paolo"))
	be.Equal(t, value(name, provider.NameFamilyName), any("Melendez"))
	be.Equal(t, value(name, provider.NamePhoneticGivenName), any("Pa"))
	be.True(t, value(name, provider.NameMiddleName) == nil)
	be.Equal(t, value(name, provider.NameFullNameStyle), any(int(contacts.FullNameStyleWestern)))
}

func TestNewContactOperationsNameWithoutNamesColumn(t *testing.T) {
	src := contacts.NewPartialContact(contacts.Data{Columns: []contacts.Column{contacts.ColumnOrganization}})
	m := contacts.MutableCopy(src)
	m.SetOrganization("Acme")

	ops := provider.NewContactOperations(m)
	be.Equal(t, mimeTypes(ops), []string{
		provider.TableRawContacts,
		provider.MimeTypeStructuredName,
		provider.MimeTypeOrganization,
	})
	name := ops[1]
	be.Equal(t, value(name, provider.NameDisplayName), any("Acme"))
	_, ok := name.Value(provider.NameGivenName)
	be.True(t, !ok)
}

func TestNewContactOperationsOrganizationOmission(t *testing.T) {
	m := contacts.NewMutableContact()
	m.SetJobTitle("   ")
	be.Equal(t, len(opsOf(provider.NewContactOperations(m), provider.MimeTypeOrganization)), 0)

	m.SetOrganization("Acme")
	orgs := opsOf(provider.NewContactOperations(m), provider.MimeTypeOrganization)
	be.Equal(t, len(orgs), 1)
	be.Equal(t, value(orgs[0], provider.OrganizationName), any("Acme"))

	titled := contacts.NewMutableContact()
	titled.SetJobTitle("Engineer")
	orgs = opsOf(provider.NewContactOperations(titled), provider.MimeTypeOrganization)
	be.Equal(t, len(orgs), 1)
	be.True(t, value(orgs[0], provider.OrganizationName) == nil)
	be.Equal(t, value(orgs[0], provider.OrganizationTitle), any("Engineer"))
}

func TestNewContactOperationsCustomRelation(t *testing.T) {
	m := contacts.NewMutableContact()
	m.AddRelation(contacts.Relation{Name: "Maria"}, contacts.CustomLabel("Boss"))
	m.AddRelation(contacts.Relation{Name: "Luca"}, contacts.LabelRelationBrother)

	relations := opsOf(provider.NewContactOperations(m), provider.MimeTypeRelation)
	be.Equal(t, len(relations), 2)
	be.Equal(t, value(relations[0], provider.RelationName), any("Maria"))
	be.Equal(t, value(relations[0], provider.ColumnType), any(provider.TypeCustom))
	be.Equal(t, value(relations[0], provider.ColumnLabel), any("Boss"))
	be.Equal(t, value(relations[1], provider.ColumnType), any(2))
	_, hasLabel := relations[1].Value(provider.ColumnLabel)
	be.True(t, !hasLabel)
}

func TestNewContactOperationsSkipsAbsentColumns(t *testing.T) {
	src := contacts.NewPartialContact(contacts.Data{
		Columns: []contacts.Column{contacts.ColumnNames, contacts.ColumnPhones},
	})
	m := contacts.MutableCopy(src)
	m.SetFirstName("Ada")
	m.AddPhone(contacts.PhoneNumber{Raw: "555"}, contacts.LabelPhoneNumberMobile)

	be.Equal(t, mimeTypes(provider.NewContactOperations(m)), []string{
		provider.TableRawContacts,
		provider.MimeTypeStructuredName,
		provider.MimeTypePhone,
	})
}

func TestNewContactOperationsIllegalLabelPanics(t *testing.T) {
	m := contacts.NewMutableContact()
	m.AddMail(contacts.MailAddress{Raw: "a@b.c"}, contacts.LabelDateBirthday)

	v := recovered(func() { provider.NewContactOperations(m) })
	labelErr, ok := v.(*provider.LabelError)
	be.True(t, ok)
	be.Equal(t, labelErr.Kind, provider.KindMail)
	be.Equal(t, labelErr.Label, contacts.LabelDateBirthday)
	be.True(t, errors.Is(labelErr, provider.ErrUnsupportedLabel))
	be.Equal(t, labelErr.Error(), "provider: unsupported mail label birthday")
}

func TestNewContactOperationsRoundTrip(t *testing.T) {
	fetched := contacts.NewPartialContact(storetest.PaoloMelendez())
	ops := provider.NewContactOperations(contacts.MutableCopy(fetched))

	phones := opsOf(ops, provider.MimeTypePhone)
	be.Equal(t, len(phones), len(fetched.Phones()))
	for i, phone := range fetched.Phones() {
		be.Equal(t, value(phones[i], provider.PhoneNumber), any(phone.Value.Raw))
		be.Equal(t, labelOf(provider.KindPhone, phones[i]), phone.Label)
	}
	mails := opsOf(ops, provider.MimeTypeEmail)
	be.Equal(t, len(mails), len(fetched.Mails()))
	for i, mail := range fetched.Mails() {
		be.Equal(t, value(mails[i], provider.EmailAddress), any(mail.Value.Raw))
		be.Equal(t, labelOf(provider.KindMail, mails[i]), mail.Label)
	}
	webs := opsOf(ops, provider.MimeTypeWebsite)
	be.Equal(t, len(webs), len(fetched.WebAddresses()))
	for i, web := range fetched.WebAddresses() {
		be.Equal(t, value(webs[i], provider.WebsiteURL), any(web.Value.Raw))
		be.Equal(t, labelOf(provider.KindWebAddress, webs[i]), web.Label)
	}
	events := opsOf(ops, provider.MimeTypeEvent)
	be.Equal(t, len(events), len(fetched.Events()))
	for i, event := range fetched.Events() {
		be.Equal(t, value(events[i], provider.EventStartDate), any(event.Value.String()))
		be.Equal(t, labelOf(provider.KindEvent, events[i]), event.Label)
	}
	postals := opsOf(ops, provider.MimeTypePostal)
	be.Equal(t, len(postals), len(fetched.PostalAddresses()))
	for i, postal := range fetched.PostalAddresses() {
		be.Equal(t, value(postals[i], provider.PostalStreet), any(postal.Value.Street))
		be.Equal(t, labelOf(provider.KindPostalAddress, postals[i]), postal.Label)
	}
	ims := opsOf(ops, provider.MimeTypeIm)
	be.Equal(t, len(ims), len(fetched.ImAddresses()))
	for i, im := range fetched.ImAddresses() {
		be.Equal(t, value(ims[i], provider.ImData), any(im.Value.Raw))
		be.Equal(t, value(ims[i], provider.ImCustomProtocol), any(im.Value.Protocol))
		be.Equal(t, labelOf(provider.KindImAddress, ims[i]), im.Label)
	}
	sips := opsOf(ops, provider.MimeTypeSipAddress)
	be.Equal(t, len(sips), len(fetched.SipAddresses()))
	for i, sip := range fetched.SipAddresses() {
		be.Equal(t, value(sips[i], provider.SipAddress), any(sip.Value.Raw))
		be.Equal(t, labelOf(provider.KindSipAddress, sips[i]), sip.Label)
	}
	relations := opsOf(ops, provider.MimeTypeRelation)
	be.Equal(t, len(relations), len(fetched.Relations()))
	for i, relation := range fetched.Relations() {
		be.Equal(t, value(relations[i], provider.RelationName), any(relation.Value.Name))
		be.Equal(t, labelOf(provider.KindRelation, relations[i]), relation.Label)
	}
}

func labelOf(kind provider.ValueKind, op provider.Operation) contacts.Label {
	code, _ := value(op, provider.ColumnType).(int)
	text, _ := value(op, provider.ColumnLabel).(string)
	return provider.LabelFor(kind, code, text)
}

func TestNewContactOperationsDeterministic(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("compiling twice yields identical batches", prop.ForAll(
		func(first, org string, phones []string, starred bool) bool {
			m := contacts.NewMutableContact()
			m.SetFirstName(first)
			m.SetOrganization(org)
			m.SetStarred(starred)
			for _, phone := range phones {
				m.AddPhone(contacts.PhoneNumber{Raw: phone}, contacts.LabelPhoneNumberMobile)
			}
			a := provider.NewContactOperations(m)
			b := provider.NewContactOperations(m)
			if len(a) != len(b) {
				return false
			}
			for i := range a {
				if a[i].String() != b[i].String() {
					return false
				}
			}
			return len(opsOf(a, provider.MimeTypePhone)) == len(phones)
		},
		gen.AlphaString(),
		gen.AlphaString(),
		gen.SliceOf(gen.NumString()),
		gen.Bool(),
	))

	properties.TestingRun(t)
}
