package vcard

import (
	"errors"
	"fmt"
	"io"

	govcard "github.com/emersion/go-vcard"

	"github.com/spachava753/contactstore/contacts"
)

// Write encodes every contact as one card on w.
func Write(w io.Writer, cs ...contacts.Contact) error {
	enc := govcard.NewEncoder(w)
	for i, c := range cs {
		if err := enc.Encode(Encode(c)); err != nil {
			return fmt.Errorf("vcard: encoding card %d failed: %w", i, err)
		}
	}
	return nil
}

// Read decodes every card on r into a new contact.
func Read(r io.Reader) ([]*contacts.MutableContact, error) {
	dec := govcard.NewDecoder(r)
	var out []*contacts.MutableContact
	for {
		card, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("vcard: decoding card %d failed: %w", len(out), err)
		}
		c, err := Decode(card)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
}
