// Package vcard converts contacts to and from vCard 4.0.
//
// Encoding is column aware: a contact fetched with names and phones only
// produces a card with N, FN and TEL properties and nothing else.
//
//	card := vcard.Encode(c)
//	err := vcard.Write(os.Stdout, c)
//
// Decoding always yields a fresh [contacts.MutableContact] that can be
// handed to a store for creation:
//
//	imported, err := vcard.Read(f)
//	for _, c := range imported {
//		if _, err := s.Create(ctx, c); err != nil {
//			return err
//		}
//	}
//
// Labels travel as TYPE parameters; custom labels use X-LABEL.
package vcard
