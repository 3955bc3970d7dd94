// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package book

import (
	"fmt"
	"strings"
	"time"
)

// Record is one contact: a name, an ordered list of phones (duplicates
// allowed) and an optional birthday.
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates a record without phones. An optional birthday may be
// passed as the first element of birthday; an empty string means none.
func NewRecord(name string, birthday ...string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}

	r := &Record{name: n}
	if len(birthday) > 0 && birthday[0] != "" {
		if err = r.SetBirthday(birthday[0]); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Record) Name() Name { return r.name }

// Phones returns a copy of the phone list.
func (r *Record) Phones() []Phone {
	phones := make([]Phone, len(r.phones))
	copy(phones, r.phones)
	return phones
}

// PhoneValues returns the phone numbers as plain strings, in order.
func (r *Record) PhoneValues() []string {
	values := make([]string, len(r.phones))
	for i, p := range r.phones {
		values[i] = p.Value()
	}
	return values
}

// Birthday reports the birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// SetBirthday attaches or replaces the birthday.
func (r *Record) SetBirthday(raw string) error {
	b, err := NewBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// AddPhone appends raw to the phone list.
func (r *Record) AddPhone(raw string) error {
	p, err := NewPhone(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes every phone equal to raw. Removing a number the
// record does not have is a no-op; a malformed raw is rejected.
func (r *Record) RemovePhone(raw string) error {
	target, err := NewPhone(raw)
	if err != nil {
		return err
	}

	kept := r.phones[:0]
	for _, p := range r.phones {
		if p != target {
			kept = append(kept, p)
		}
	}
	clear(r.phones[len(kept):])
	r.phones = kept
	return nil
}

// EditPhone replaces the first phone equal to oldRaw with newRaw, keeping
// its position. newRaw is validated before the lookup; oldRaw is only
// compared, so a malformed oldRaw yields ErrNotFound like any other miss.
func (r *Record) EditPhone(oldRaw, newRaw string) error {
	replacement, err := NewPhone(newRaw)
	if err != nil {
		return err
	}

	for i, p := range r.phones {
		if p.Value() == oldRaw {
			r.phones[i] = replacement
			return nil
		}
	}
	return fmt.Errorf("phone %s of %s: %w", oldRaw, r.name, ErrNotFound)
}

// FindPhone returns the first phone equal to raw.
func (r *Record) FindPhone(raw string) (Phone, bool) {
	for _, p := range r.phones {
		if p.Value() == raw {
			return p, true
		}
	}
	return Phone{}, false
}

// DaysToBirthday returns the number of days from now's calendar date to the
// next occurrence of the birthday's month and day; 0 when it is today. A
// February 29 birthday falls on March 1 in non-leap years. The bool is false
// when no birthday is set.
func (r *Record) DaysToBirthday(now time.Time) (int, bool) {
	if r.birthday == nil {
		return 0, false
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	next := time.Date(today.Year(), r.birthday.Month(), r.birthday.Day(), 0, 0, 0, 0, time.UTC)
	if next.Before(today) {
		next = time.Date(today.Year()+1, r.birthday.Month(), r.birthday.Day(), 0, 0, 0, 0, time.UTC)
	}
	return int(next.Sub(today).Hours() / 24), true
}

func (r *Record) String() string {
	var sb strings.Builder
	sb.WriteString("Contact name: ")
	sb.WriteString(r.name.Value())
	sb.WriteString(", phones: ")
	sb.WriteString(strings.Join(r.PhoneValues(), "; "))
	if r.birthday != nil {
		sb.WriteString(", birthday: ")
		sb.WriteString(r.birthday.Value())
	}
	return sb.String()
}
