package contacts

import "strings"

// deriveDisplayName walks the fallback chain: structured name, phonetic name,
// nickname, organization, first phone, first mail. It reads d directly, so it
// works whatever columns the contact carries; fields of absent columns are
// empty on a MutableContact.
func deriveDisplayName(d *Data) string {
	candidates := []func() string{
		func() string {
			return joinWords(d.Prefix, d.FirstName, d.MiddleName, d.LastName, d.Suffix)
		},
		func() string {
			return joinWords(d.PhoneticFirstName, d.PhoneticMiddleName, d.PhoneticLastName)
		},
		func() string { return d.Nickname },
		func() string { return d.Organization },
		func() string {
			if len(d.Phones) == 0 {
				return ""
			}
			return d.Phones[0].Value.Raw
		},
		func() string {
			if len(d.Mails) == 0 {
				return ""
			}
			return d.Mails[0].Value.Raw
		},
	}
	for _, candidate := range candidates {
		if name := candidate(); name != "" {
			return name
		}
	}
	return ""
}

// joinWords joins the non-blank parts with single spaces.
func joinWords(parts ...string) string {
	var b strings.Builder
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(part)
	}
	return b.String()
}
