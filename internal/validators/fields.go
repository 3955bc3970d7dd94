// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"regexp"
	"time"
)

// PhoneLength is the exact number of digits in a valid phone number.
const PhoneLength = 10

// BirthdayLayout is the time layout of a stored birthday.
const BirthdayLayout = "2006-01-02"

var birthdayPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateName accepts any non-empty string.
func ValidateName(raw string) error {
	if raw == "" {
		return ErrEmptyName
	}
	return nil
}

// ValidatePhone accepts exactly PhoneLength ASCII digits.
func ValidatePhone(raw string) error {
	if len(raw) != PhoneLength {
		return ErrInvalidPhone
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return ErrInvalidPhone
		}
	}
	return nil
}

// ValidateBirthday accepts a real calendar date written strictly as
// YYYY-MM-DD (zero-padded month and day).
func ValidateBirthday(raw string) error {
	_, err := ParseBirthday(raw)
	return err
}

// ParseBirthday validates raw like ValidateBirthday and returns the parsed
// date at midnight UTC.
func ParseBirthday(raw string) (time.Time, error) {
	if !birthdayPattern.MatchString(raw) {
		return time.Time{}, ErrInvalidBirthday
	}
	t, err := time.Parse(BirthdayLayout, raw)
	if err != nil {
		return time.Time{}, ErrInvalidBirthday
	}
	return t, nil
}
