// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package command

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-contact-book/internal/app"
	"github.com/MKhiriev/go-contact-book/internal/book"
	"github.com/MKhiriev/go-contact-book/internal/service"
)

func (d *Dispatcher) hello(ctx context.Context, args []string) (string, error) {
	return app.MsgHello, nil
}

func (d *Dispatcher) add(ctx context.Context, args []string) (string, error) {
	if err := d.contacts.Add(ctx, args[0], args[1], args[2:]...); err != nil {
		return "", err
	}
	return fmt.Sprintf(app.MsgContactAdded, args[0], args[1]), nil
}

func (d *Dispatcher) addPhone(ctx context.Context, args []string) (string, error) {
	if err := d.contacts.AddPhone(ctx, args[0], args[1]); err != nil {
		return "", err
	}
	return fmt.Sprintf(app.MsgPhoneAdded, args[1], args[0]), nil
}

func (d *Dispatcher) change(ctx context.Context, args []string) (string, error) {
	if err := d.contacts.Change(ctx, args[0], args[1]); err != nil {
		return "", err
	}
	return fmt.Sprintf(app.MsgPhoneChanged, args[0], args[1]), nil
}

func (d *Dispatcher) edit(ctx context.Context, args []string) (string, error) {
	if err := d.contacts.Edit(ctx, args[0], args[1], args[2]); err != nil {
		return "", err
	}
	return fmt.Sprintf(app.MsgPhoneEdited, args[1], args[0], args[2]), nil
}

func (d *Dispatcher) removePhone(ctx context.Context, args []string) (string, error) {
	if err := d.contacts.RemovePhone(ctx, args[0], args[1]); err != nil {
		return "", err
	}
	return fmt.Sprintf(app.MsgPhoneRemoved, args[1], args[0]), nil
}

func (d *Dispatcher) phone(ctx context.Context, args []string) (string, error) {
	phone, err := d.contacts.GetPhone(ctx, args[0])
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(app.MsgPhoneOf, args[0], phone), nil
}

func (d *Dispatcher) copy(ctx context.Context, args []string) (string, error) {
	phone, err := d.contacts.GetPhone(ctx, args[0])
	if err != nil {
		return "", err
	}
	if err = d.clipboard.WriteAll(phone); err != nil {
		return "", fmt.Errorf("%w: %w", errClipboard, err)
	}
	return fmt.Sprintf(app.MsgPhoneCopied, phone, args[0]), nil
}

func (d *Dispatcher) delete(ctx context.Context, args []string) (string, error) {
	if err := d.contacts.Delete(ctx, args[0]); err != nil {
		return "", err
	}
	return fmt.Sprintf(app.MsgContactDeleted, args[0]), nil
}

func (d *Dispatcher) birthday(ctx context.Context, args []string) (string, error) {
	if err := d.contacts.SetBirthday(ctx, args[0], args[1]); err != nil {
		return "", err
	}
	return fmt.Sprintf(app.MsgBirthdaySet, args[0], args[1]), nil
}

func (d *Dispatcher) days(ctx context.Context, args []string) (string, error) {
	days, err := d.contacts.DaysToBirthday(ctx, args[0])
	if err != nil {
		return "", err
	}
	if days == 0 {
		return fmt.Sprintf(app.MsgBirthdayToday, args[0]), nil
	}
	return fmt.Sprintf(app.MsgDaysToBirthday, days, args[0]), nil
}

func (d *Dispatcher) showAll(ctx context.Context, args []string) (string, error) {
	records := d.contacts.ListAll(ctx)
	if len(records) == 0 {
		return app.MsgNoContacts, nil
	}
	return renderRecords(app.MsgContactsHeader, records), nil
}

func (d *Dispatcher) page(ctx context.Context, args []string) (string, error) {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		n = 0
	}

	records, total, err := d.contacts.Page(ctx, d.pageSize, n)
	switch {
	case errors.Is(err, service.ErrPageOutOfRange) && total == 0:
		return app.MsgNoContacts, nil
	case errors.Is(err, service.ErrPageOutOfRange):
		return fmt.Sprintf(app.MsgInvalidPage, args[0], total), nil
	case err != nil:
		return "", err
	}
	return renderRecords(fmt.Sprintf(app.MsgPageHeader, n, total), records), nil
}

func (d *Dispatcher) find(ctx context.Context, args []string) (string, error) {
	records := d.contacts.Find(ctx, strings.Join(args, " "))
	if len(records) == 0 {
		return app.MsgNoMatches, nil
	}
	return renderRecords("", records), nil
}

func (d *Dispatcher) save(ctx context.Context, args []string) (string, error) {
	path, err := d.contacts.Save(ctx, optional(args))
	if err != nil {
		return "", snapshotError{path: path, err: err}
	}
	return fmt.Sprintf(app.MsgSaved, path), nil
}

func (d *Dispatcher) load(ctx context.Context, args []string) (string, error) {
	path, err := d.contacts.Load(ctx, optional(args))
	if err != nil {
		return "", snapshotError{path: path, err: err}
	}
	return fmt.Sprintf(app.MsgLoaded, path), nil
}

func (d *Dispatcher) version(ctx context.Context, args []string) (string, error) {
	return d.appInfo.GetAppInfo(ctx).String(), nil
}

func (d *Dispatcher) help(ctx context.Context, args []string) (string, error) {
	var sb strings.Builder
	sb.WriteString("Commands:")
	for _, word := range d.order {
		sb.WriteString("\n  ")
		sb.WriteString(d.commands[word].usage)
	}
	return sb.String(), nil
}

func renderRecords(header string, records []*book.Record) string {
	lines := make([]string, 0, len(records)+1)
	if header != "" {
		lines = append(lines, header)
	}
	for _, r := range records {
		lines = append(lines, r.String())
	}
	return strings.Join(lines, "\n")
}

func optional(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
