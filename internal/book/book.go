// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package book holds the in-memory contact book: validated fields, contact
// records and the ordered collection of records keyed by name.
//
// The package has no global state. Callers own a *ContactBook and persist it
// through a store.SnapshotStore with SaveSnapshot and LoadSnapshot.
package book

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/MKhiriev/go-contact-book/internal/store"
	"github.com/MKhiriev/go-contact-book/models"
)

// ContactBook maps contact names to records and remembers insertion order.
// It is not safe for concurrent use.
type ContactBook struct {
	records map[string]*Record
	order   []string
}

func New() *ContactBook {
	return &ContactBook{records: make(map[string]*Record)}
}

// AddRecord stores r under its name. A record with the same name is
// replaced in place, keeping its position in the book.
func (b *ContactBook) AddRecord(r *Record) {
	key := r.Name().Value()
	if _, ok := b.records[key]; !ok {
		b.order = append(b.order, key)
	}
	b.records[key] = r
}

func (b *ContactBook) Find(name string) (*Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Delete removes the record stored under name. Deleting an absent name is a
// no-op.
func (b *ContactBook) Delete(name string) {
	if _, ok := b.records[name]; !ok {
		return
	}
	delete(b.records, name)
	for i, key := range b.order {
		if key == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

func (b *ContactBook) Len() int { return len(b.order) }

// Records returns every record in book order.
func (b *ContactBook) Records() []*Record {
	records := make([]*Record, len(b.order))
	for i, key := range b.order {
		records[i] = b.records[key]
	}
	return records
}

// Pages yields the records in book order in chunks of size. The last chunk
// may be shorter. A size below 1 is treated as 1. Each range over the
// returned sequence starts from the first record again.
func (b *ContactBook) Pages(size int) iter.Seq[[]*Record] {
	size = max(size, 1)
	return func(yield func([]*Record) bool) {
		for start := 0; start < len(b.order); start += size {
			end := min(start+size, len(b.order))
			page := make([]*Record, 0, end-start)
			for _, key := range b.order[start:end] {
				page = append(page, b.records[key])
			}
			if !yield(page) {
				return
			}
		}
	}
}

// Search returns, in book order, every record whose name contains query
// (case-insensitive) or that has a phone containing query. An empty query
// matches every record.
func (b *ContactBook) Search(query string) []*Record {
	lowered := strings.ToLower(query)

	var found []*Record
	for _, key := range b.order {
		r := b.records[key]
		if strings.Contains(strings.ToLower(key), lowered) || hasPhoneContaining(r, query) {
			found = append(found, r)
		}
	}
	return found
}

func hasPhoneContaining(r *Record, query string) bool {
	for _, p := range r.phones {
		if strings.Contains(p.Value(), query) {
			return true
		}
	}
	return false
}

// Snapshot converts the book into its persisted form.
func (b *ContactBook) Snapshot() models.Snapshot {
	snapshot := models.Snapshot{
		Version:  models.SnapshotVersion,
		Contacts: make([]models.Contact, 0, len(b.order)),
	}
	for _, r := range b.Records() {
		contact := models.Contact{
			Name:   r.Name().Value(),
			Phones: r.PhoneValues(),
		}
		if birthday, ok := r.Birthday(); ok {
			value := birthday.Value()
			contact.Birthday = &value
		}
		snapshot.Contacts = append(snapshot.Contacts, contact)
	}
	return snapshot
}

// FromSnapshot rebuilds a book from its persisted form. Every field is
// validated again; the first invalid one aborts the rebuild with an error
// wrapping ErrValidation.
func FromSnapshot(snapshot models.Snapshot) (*ContactBook, error) {
	b := New()
	for i, contact := range snapshot.Contacts {
		var birthday string
		if contact.Birthday != nil {
			birthday = *contact.Birthday
		}

		r, err := NewRecord(contact.Name, birthday)
		if err != nil {
			return nil, fmt.Errorf("contact at index %d: %w", i, err)
		}
		for _, phone := range contact.Phones {
			if err = r.AddPhone(phone); err != nil {
				return nil, fmt.Errorf("contact %q: %w", contact.Name, err)
			}
		}
		b.AddRecord(r)
	}
	return b, nil
}

// SaveSnapshot writes the whole book to path through s. Any failure is
// reported as ErrIO.
func (b *ContactBook) SaveSnapshot(ctx context.Context, s store.SnapshotStore, path string) error {
	if err := s.Save(ctx, path, b.Snapshot()); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

// LoadSnapshot reads the book stored at path through s. A missing file
// yields an empty book. Content that is not a valid snapshot is reported as
// ErrCorruptData and any other failure as ErrIO.
func LoadSnapshot(ctx context.Context, s store.SnapshotStore, path string) (*ContactBook, error) {
	snapshot, err := s.Load(ctx, path)
	switch {
	case errors.Is(err, store.ErrSnapshotNotFound):
		return New(), nil
	case errors.Is(err, store.ErrCorruptSnapshot):
		return nil, fmt.Errorf("%w: %w", ErrCorruptData, err)
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	b, err := FromSnapshot(snapshot)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptData, err)
	}
	return b, nil
}
