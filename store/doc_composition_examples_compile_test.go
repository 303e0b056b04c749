package store_test

import (
	"context"
	"fmt"

	"golang.org/x/text/language"

	"github.com/spachava753/contactstore/contacts"
	"github.com/spachava753/contactstore/store"
)

func composeAddPhoneToExistingContact(ctx context.Context, s *store.Store, id int64) (int64, error) {
	fetched, err := s.Get(ctx, id, contacts.ColumnNames)
	if err != nil {
		return 0, err
	}

	// fetched carries names only; open the phones column on the copy
	edited := contacts.MutableCopy(fetched, contacts.ColumnPhones)
	edited.AddPhone(contacts.PhoneNumber{Raw: "+1 555 0100"}, contacts.LabelLocationWork)
	return s.Create(ctx, edited)
}

func composeListStarredByName(ctx context.Context, s *store.Store) ([]string, error) {
	var (
		names  []string
		cursor string
	)
	for {
		out, err := s.Find(ctx, store.FindInput{
			Columns: []contacts.Column{contacts.ColumnNames},
			Page:    store.Page{Limit: 100, Cursor: cursor},
			Sort:    store.Sort{By: store.SortByDisplayName, Language: language.English},
		})
		if err != nil {
			return nil, err
		}
		for _, c := range out.Contacts {
			if c.IsStarred() {
				names = append(names, c.DisplayName())
			}
		}
		if out.NextCursor == "" {
			return names, nil
		}
		cursor = out.NextCursor
	}
}

func composeCreateCompanyContact(ctx context.Context, s *store.Store) error {
	c := contacts.NewMutableContact()
	c.SetOrganization("Acme")
	c.AddMail(contacts.MailAddress{Raw: "sales@acme.test"}, contacts.LabelLocationWork)
	c.AddWebAddress(contacts.WebAddress{Raw: "https://acme.test"}, contacts.LabelWebsiteHomePage)

	id, err := s.Create(ctx, c)
	if err != nil {
		return err
	}
	saved, err := s.Get(ctx, id, contacts.ColumnOrganization)
	if err != nil {
		return err
	}
	if saved.DisplayName() != "Acme" {
		return fmt.Errorf("unexpected display name %q", saved.DisplayName())
	}
	return nil
}
