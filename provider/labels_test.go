package provider_test

import (
	"testing"

	"github.com/nalgeon/be"

	"github.com/spachava753/contactstore/contacts"
	"github.com/spachava753/contactstore/provider"
)

func TestTypeCodeClosure(t *testing.T) {
	for _, kind := range provider.Kinds() {
		for _, label := range provider.Labels(kind) {
			code, text := provider.TypeCode(kind, label)
			be.True(t, code != provider.TypeCustom)
			be.Equal(t, text, "")

			got := provider.LabelFor(kind, code, "")
			if kind == provider.KindRelation && label == contacts.LabelOther {
				// shares the child code
				be.Equal(t, got, contacts.LabelRelationChild)
				continue
			}
			be.Equal(t, got, label)
		}
	}
}

func TestTypeCodeCustomLabel(t *testing.T) {
	for _, kind := range provider.Kinds() {
		code, text := provider.TypeCode(kind, contacts.CustomLabel("Boss"))
		be.Equal(t, code, provider.TypeCustom)
		be.Equal(t, text, "Boss")
		be.Equal(t, provider.LabelFor(kind, code, text), contacts.CustomLabel("Boss"))
	}
}

func TestTypeCodeIllegalLabel(t *testing.T) {
	tests := []struct {
		kind  provider.ValueKind
		label contacts.Label
	}{
		{provider.KindPhone, contacts.LabelDateBirthday},
		{provider.KindMail, contacts.LabelWebsiteBlog},
		{provider.KindEvent, contacts.LabelLocationHome},
		{provider.KindRelation, contacts.LabelLocationWork},
		{provider.KindSipAddress, contacts.LabelPhoneNumberMobile},
		{provider.KindPhone, contacts.Label{}},
	}
	for _, test := range tests {
		v := recovered(func() { provider.TypeCode(test.kind, test.label) })
		err, ok := v.(*provider.LabelError)
		be.True(t, ok)
		be.Equal(t, err.Kind, test.kind)
		be.Equal(t, err.Label, test.label)
	}
}

func TestTypeCodes(t *testing.T) {
	tests := []struct {
		kind  provider.ValueKind
		label contacts.Label
		code  int
	}{
		{provider.KindPhone, contacts.LabelPhoneNumberMobile, 2},
		{provider.KindPhone, contacts.LabelOther, 7},
		{provider.KindPhone, contacts.LabelPhoneNumberMms, 20},
		{provider.KindMail, contacts.LabelPhoneNumberMobile, 4},
		{provider.KindWebAddress, contacts.LabelWebsiteHomePage, 1},
		{provider.KindEvent, contacts.LabelDateBirthday, 3},
		{provider.KindEvent, contacts.LabelOther, 2},
		{provider.KindRelation, contacts.LabelRelationSpouse, 14},
		{provider.KindRelation, contacts.LabelOther, 3},
	}
	for _, test := range tests {
		code, _ := provider.TypeCode(test.kind, test.label)
		be.Equal(t, code, test.code)
	}
}

func TestLabelForUnknownCode(t *testing.T) {
	for _, kind := range provider.Kinds() {
		be.Equal(t, provider.LabelFor(kind, 99, ""), contacts.LabelOther)
		be.Equal(t, provider.LabelFor(kind, -1, "ignored"), contacts.LabelOther)
	}
}
