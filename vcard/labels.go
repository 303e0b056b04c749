package vcard

import (
	"slices"
	"strings"

	govcard "github.com/emersion/go-vcard"

	"github.com/spachava753/contactstore/contacts"
	"github.com/spachava753/contactstore/provider"
)

// paramLabel carries the text of a custom label.
const paramLabel = "X-LABEL"

type labelTypes struct {
	label contacts.Label
	types []string
}

// typeTables maps each kind's labels to TYPE parameter values. Other is
// written without TYPE. Decoding matches the TYPE set exactly.
var typeTables = map[provider.ValueKind][]labelTypes{
	provider.KindPhone: {
		{contacts.LabelLocationHome, []string{govcard.TypeHome}},
		{contacts.LabelLocationWork, []string{govcard.TypeWork}},
		{contacts.LabelPhoneNumberMobile, []string{govcard.TypeCell}},
		{contacts.LabelPhoneNumberPager, []string{govcard.TypePager}},
		{contacts.LabelPhoneNumberFaxWork, []string{govcard.TypeWork, govcard.TypeFax}},
		{contacts.LabelPhoneNumberFaxHome, []string{govcard.TypeHome, govcard.TypeFax}},
		{contacts.LabelPhoneNumberOtherFax, []string{govcard.TypeFax}},
		{contacts.LabelPhoneNumberWorkMobile, []string{govcard.TypeWork, govcard.TypeCell}},
		{contacts.LabelPhoneNumberWorkPager, []string{govcard.TypeWork, govcard.TypePager}},
		{contacts.LabelPhoneNumberTtyTdd, []string{govcard.TypeTextPhone}},
		{contacts.LabelPhoneNumberCar, []string{"x-car"}},
		{contacts.LabelPhoneNumberCallback, []string{"x-callback"}},
		{contacts.LabelPhoneNumberCompanyMain, []string{"x-company-main"}},
		{contacts.LabelPhoneNumberIsdn, []string{"x-isdn"}},
		{contacts.LabelMain, []string{"x-main"}},
		{contacts.LabelPhoneNumberRadio, []string{"x-radio"}},
		{contacts.LabelPhoneNumberTelex, []string{"x-telex"}},
		{contacts.LabelPhoneNumberAssistant, []string{"x-assistant"}},
		{contacts.LabelPhoneNumberMms, []string{"x-mms"}},
		{contacts.LabelOther, nil},
	},
	provider.KindMail: {
		{contacts.LabelLocationHome, []string{govcard.TypeHome}},
		{contacts.LabelLocationWork, []string{govcard.TypeWork}},
		{contacts.LabelPhoneNumberMobile, []string{"x-mobile"}},
		{contacts.LabelOther, nil},
	},
	provider.KindWebAddress: {
		{contacts.LabelLocationHome, []string{govcard.TypeHome}},
		{contacts.LabelLocationWork, []string{govcard.TypeWork}},
		{contacts.LabelWebsiteHomePage, []string{"x-homepage"}},
		{contacts.LabelWebsiteBlog, []string{"x-blog"}},
		{contacts.LabelWebsiteProfile, []string{"x-profile"}},
		{contacts.LabelWebsiteFtp, []string{"x-ftp"}},
		{contacts.LabelOther, nil},
	},
	provider.KindEvent: {
		// birthdays and anniversaries get their own properties
		{contacts.LabelDateBirthday, nil},
		{contacts.LabelDateAnniversary, nil},
		{contacts.LabelOther, nil},
	},
	provider.KindPostalAddress: locationTypes(),
	provider.KindImAddress:     locationTypes(),
	provider.KindSipAddress:    locationTypes(),
	provider.KindRelation: {
		{contacts.LabelPhoneNumberAssistant, []string{govcard.TypeAgent}},
		{contacts.LabelRelationChild, []string{govcard.TypeChild}},
		{contacts.LabelRelationParent, []string{govcard.TypeParent}},
		{contacts.LabelRelationSpouse, []string{govcard.TypeSpouse}},
		{contacts.LabelRelationFriend, []string{govcard.TypeFriend}},
		{contacts.LabelRelationRelative, []string{govcard.TypeKin}},
		{contacts.LabelRelationPartner, []string{govcard.TypeSweetheart}},
		{contacts.LabelRelationBrother, []string{"x-brother"}},
		{contacts.LabelRelationSister, []string{"x-sister"}},
		{contacts.LabelRelationDomesticPartner, []string{"x-domestic-partner"}},
		{contacts.LabelRelationFather, []string{"x-father"}},
		{contacts.LabelRelationMother, []string{"x-mother"}},
		{contacts.LabelRelationManager, []string{"x-manager"}},
		{contacts.LabelRelationReferredBy, []string{"x-referred-by"}},
		{contacts.LabelOther, nil},
	},
}

func locationTypes() []labelTypes {
	return []labelTypes{
		{contacts.LabelLocationHome, []string{govcard.TypeHome}},
		{contacts.LabelLocationWork, []string{govcard.TypeWork}},
		{contacts.LabelOther, nil},
	}
}

// labelParams returns the parameters describing label. Labels illegal for
// kind panic with a *provider.LabelError, as they do when compiling writes.
func labelParams(kind provider.ValueKind, label contacts.Label) govcard.Params {
	provider.TypeCode(kind, label)

	params := govcard.Params{}
	if text, ok := label.Custom(); ok {
		params.Set(paramLabel, text)
		return params
	}
	for _, entry := range typeTables[kind] {
		if entry.label == label {
			if len(entry.types) > 0 {
				params[govcard.ParamType] = slices.Clone(entry.types)
			}
			break
		}
	}
	return params
}

// fieldLabel reads the label of field back. Unknown TYPE sets decode to
// [contacts.LabelOther].
func fieldLabel(kind provider.ValueKind, field *govcard.Field) contacts.Label {
	if text := field.Params.Get(paramLabel); text != "" {
		return contacts.CustomLabel(text)
	}
	types := fieldTypes(field)
	if len(types) == 0 {
		return contacts.LabelOther
	}
	for _, entry := range typeTables[kind] {
		if len(entry.types) > 0 && sameTypes(entry.types, types) {
			return entry.label
		}
	}
	return contacts.LabelOther
}

// fieldTypes returns the lower-cased TYPE values of field, ignoring
// preference and the vCard 3 defaults.
func fieldTypes(field *govcard.Field) []string {
	var out []string
	for _, value := range field.Params[govcard.ParamType] {
		for _, t := range strings.Split(value, ",") {
			t = strings.ToLower(strings.TrimSpace(t))
			switch t {
			case "", "pref", "voice", "internet":
				continue
			}
			if !slices.Contains(out, t) {
				out = append(out, t)
			}
		}
	}
	return out
}

func sameTypes(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for _, t := range a {
		if !slices.Contains(b, t) {
			return false
		}
	}
	return true
}
