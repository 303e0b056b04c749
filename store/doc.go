// Package store is the contact store facade: it fetches column-scoped
// contacts from a [provider.Repository] and saves new ones as a single
// all-or-nothing batch.
//
// # Reading
//
// Every read names the columns to fetch. Returned contacts carry exactly
// those columns; reading any other field panics:
//
//	s := store.New(repo)
//	c, err := s.Get(ctx, 42, contacts.ColumnNames, contacts.ColumnPhones)
//	if err != nil {
//		return err
//	}
//	fmt.Println(c.DisplayName(), c.Phones())
//
// Find adds paging and sorting. Sorting by display name collates with the
// requested language:
//
//	out, err := s.Find(ctx, store.FindInput{
//		Columns: []contacts.Column{contacts.ColumnNames},
//		Sort:    store.Sort{By: store.SortByDisplayName, Language: language.Swedish},
//		Page:    store.Page{Limit: 20},
//	})
//
// # Writing
//
// Create compiles a [contacts.MutableContact] into a batch of insert
// operations and hands it to the repository:
//
//	c := contacts.NewMutableContact()
//	c.SetFirstName("Paolo")
//	c.AddPhone(contacts.PhoneNumber{Raw: "555"}, contacts.LabelPhoneNumberMobile)
//	id, err := s.Create(ctx, c)
//
// Repository failures are returned as *[Error] with [ErrorCodeRepository]
// and are never retried.
package store
