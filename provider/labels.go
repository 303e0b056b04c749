package provider

import (
	"errors"
	"fmt"

	"github.com/spachava753/contactstore/contacts"
)

// ValueKind names a kind of labeled value. Each kind has its own set of
// legal labels and its own native type codes.
type ValueKind string

const (
	KindPhone         ValueKind = "phone"
	KindMail          ValueKind = "mail"
	KindWebAddress    ValueKind = "web_address"
	KindEvent         ValueKind = "event"
	KindPostalAddress ValueKind = "postal_address"
	KindImAddress     ValueKind = "im_address"
	KindSipAddress    ValueKind = "sip_address"
	KindRelation      ValueKind = "relation"
)

// Kinds lists every labeled value kind in compile order.
func Kinds() []ValueKind {
	return []ValueKind{
		KindPhone, KindMail, KindWebAddress, KindEvent,
		KindPostalAddress, KindImAddress, KindSipAddress, KindRelation,
	}
}

type labelCode struct {
	label contacts.Label
	code  int
}

// labelTables maps each kind's legal labels to native type codes. When two
// labels share a code, the first one wins on decode.
var labelTables = map[ValueKind][]labelCode{
	KindPhone: {
		{contacts.LabelLocationHome, 1},
		{contacts.LabelPhoneNumberMobile, 2},
		{contacts.LabelLocationWork, 3},
		{contacts.LabelPhoneNumberFaxWork, 4},
		{contacts.LabelPhoneNumberFaxHome, 5},
		{contacts.LabelPhoneNumberPager, 6},
		{contacts.LabelOther, 7},
		{contacts.LabelPhoneNumberCallback, 8},
		{contacts.LabelPhoneNumberCar, 9},
		{contacts.LabelPhoneNumberCompanyMain, 10},
		{contacts.LabelPhoneNumberIsdn, 11},
		{contacts.LabelMain, 12},
		{contacts.LabelPhoneNumberOtherFax, 13},
		{contacts.LabelPhoneNumberRadio, 14},
		{contacts.LabelPhoneNumberTelex, 15},
		{contacts.LabelPhoneNumberTtyTdd, 16},
		{contacts.LabelPhoneNumberWorkMobile, 17},
		{contacts.LabelPhoneNumberWorkPager, 18},
		{contacts.LabelPhoneNumberAssistant, 19},
		{contacts.LabelPhoneNumberMms, 20},
	},
	KindMail: {
		{contacts.LabelLocationHome, 1},
		{contacts.LabelLocationWork, 2},
		{contacts.LabelOther, 3},
		{contacts.LabelPhoneNumberMobile, 4},
	},
	KindWebAddress: {
		{contacts.LabelWebsiteHomePage, 1},
		{contacts.LabelWebsiteBlog, 2},
		{contacts.LabelWebsiteProfile, 3},
		{contacts.LabelLocationHome, 4},
		{contacts.LabelLocationWork, 5},
		{contacts.LabelWebsiteFtp, 6},
		{contacts.LabelOther, 7},
	},
	KindEvent: {
		{contacts.LabelDateAnniversary, 1},
		{contacts.LabelOther, 2},
		{contacts.LabelDateBirthday, 3},
	},
	KindPostalAddress: {
		{contacts.LabelLocationHome, 1},
		{contacts.LabelLocationWork, 2},
		{contacts.LabelOther, 3},
	},
	KindImAddress: {
		{contacts.LabelLocationHome, 1},
		{contacts.LabelLocationWork, 2},
		{contacts.LabelOther, 3},
	},
	KindSipAddress: {
		{contacts.LabelLocationHome, 1},
		{contacts.LabelLocationWork, 2},
		{contacts.LabelOther, 3},
	},
	KindRelation: {
		{contacts.LabelPhoneNumberAssistant, 1},
		{contacts.LabelRelationBrother, 2},
		{contacts.LabelRelationChild, 3},
		{contacts.LabelRelationDomesticPartner, 4},
		{contacts.LabelRelationFather, 5},
		{contacts.LabelRelationFriend, 6},
		{contacts.LabelRelationManager, 7},
		{contacts.LabelRelationMother, 8},
		{contacts.LabelRelationParent, 9},
		{contacts.LabelRelationPartner, 10},
		{contacts.LabelRelationReferredBy, 11},
		{contacts.LabelRelationRelative, 12},
		{contacts.LabelRelationSister, 13},
		{contacts.LabelRelationSpouse, 14},
		// the relation schema has no "other" type
		{contacts.LabelOther, 3},
	},
}

// ErrUnsupportedLabel is the sentinel wrapped by [LabelError].
var ErrUnsupportedLabel = errors.New("provider: unsupported label")

// LabelError is the panic value raised when a label is not legal for the
// kind of value it decorates.
type LabelError struct {
	Kind  ValueKind
	Label contacts.Label
}

func (e *LabelError) Error() string {
	return fmt.Sprintf("provider: unsupported %s label %s", e.Kind, e.Label)
}

func (e *LabelError) Unwrap() error {
	return ErrUnsupportedLabel
}

// Labels returns the named labels legal for kind. Custom labels are legal
// for every kind and are not listed.
func Labels(kind ValueKind) []contacts.Label {
	table := labelTables[kind]
	out := make([]contacts.Label, 0, len(table))
	for _, entry := range table {
		out = append(out, entry.label)
	}
	return out
}

// TypeCode maps label to kind's native type code. Custom labels map to
// [TypeCustom] and return their text. Any other label not legal for kind
// panics with a *LabelError.
func TypeCode(kind ValueKind, label contacts.Label) (code int, text string) {
	if text, ok := label.Custom(); ok {
		return TypeCustom, text
	}
	for _, entry := range labelTables[kind] {
		if entry.label == label {
			return entry.code, ""
		}
	}
	panic(&LabelError{Kind: kind, Label: label})
}

// LabelFor maps a stored type code back to a label. Codes the table does not
// know decode to [contacts.LabelOther].
func LabelFor(kind ValueKind, code int, text string) contacts.Label {
	if code == TypeCustom {
		return contacts.CustomLabel(text)
	}
	for _, entry := range labelTables[kind] {
		if entry.code == code {
			return entry.label
		}
	}
	return contacts.LabelOther
}
