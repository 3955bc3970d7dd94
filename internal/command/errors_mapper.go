// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-contact-book/internal/app"
	"github.com/MKhiriev/go-contact-book/internal/book"
	"github.com/MKhiriev/go-contact-book/internal/service"
	"github.com/MKhiriev/go-contact-book/internal/validators"
)

var errClipboard = errors.New("clipboard unavailable")

// snapshotError carries the resolved snapshot path of a failed save or load
// so the message can name the file.
type snapshotError struct {
	path string
	err  error
}

func (e snapshotError) Error() string { return e.path + ": " + e.err.Error() }
func (e snapshotError) Unwrap() error { return e.err }

// errorMessages is checked in order; the first match wins. Messages with a
// %s verb receive the contact name (the first argument) or, for snapshot
// errors, the file path.
var errorMessages = []struct {
	target error
	msg    string
}{
	{service.ErrContactNotFound, app.MsgContactNotFound},
	{book.ErrNotFound, app.MsgPhoneNotFound},
	{service.ErrNoPhones, app.MsgNoPhones},
	{service.ErrNoBirthday, app.MsgNoBirthday},
	{service.ErrNoSnapshotPath, app.MsgNoSnapshotPath},
	{validators.ErrInvalidPhone, app.MsgInvalidPhone},
	{validators.ErrInvalidBirthday, app.MsgInvalidBirthday},
	{validators.ErrEmptyName, app.MsgInvalidName},
	{book.ErrCorruptData, app.MsgCorruptSnapshot},
	{book.ErrIO, app.MsgSnapshotIO},
	{errClipboard, app.MsgClipboardUnavailable},
}

func errorMessage(err error, args []string) string {
	subject := optional(args)
	var snapErr snapshotError
	if errors.As(err, &snapErr) {
		subject = snapErr.path
	}

	for _, m := range errorMessages {
		if !errors.Is(err, m.target) {
			continue
		}
		if !strings.Contains(m.msg, "%s") {
			return m.msg
		}
		return fmt.Sprintf(m.msg, subject)
	}
	return app.MsgInternalError
}
