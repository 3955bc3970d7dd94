// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package command

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-contact-book/internal/app"
	"github.com/MKhiriev/go-contact-book/internal/book"
	"github.com/MKhiriev/go-contact-book/internal/config"
	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/internal/mock"
	"github.com/MKhiriev/go-contact-book/internal/service"
	"github.com/MKhiriev/go-contact-book/internal/store"
	"github.com/MKhiriev/go-contact-book/models"
)

// fakeClipboard records the last written text.
type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func newTestDispatcher(t *testing.T, ctrl *gomock.Controller) (*Dispatcher, *mock.MockContactService, *fakeClipboard) {
	t.Helper()
	contacts := mock.NewMockContactService(ctrl)
	clip := &fakeClipboard{}
	services := &service.Services{
		ContactService: contacts,
		AppInfoService: service.NewAppInfoService(models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop()),
	}
	return NewDispatcher(services, clip, config.ClientApp{PageSize: 2}, logger.Nop()), contacts, clip
}

func record(t *testing.T, name string, phones ...string) *book.Record {
	t.Helper()
	r, err := book.NewRecord(name)
	require.NoError(t, err)
	for _, p := range phones {
		require.NoError(t, r.AddPhone(p))
	}
	return r
}

// ── parsing ──────────────────────────────────────────────────────────────────

func TestSplit(t *testing.T) {
	tests := []struct {
		line     string
		wantWord string
		wantArgs []string
	}{
		{"", "", nil},
		{"   ", "", nil},
		{"hello", "hello", []string{}},
		{"  ADD  John   1234567890 ", "add", []string{"John", "1234567890"}},
		{"Show ALL", "show all", []string{}},
		{"good Bye", "good bye", []string{}},
		{"show John", "show", []string{"John"}},
		{"find Anna Maria", "find", []string{"Anna", "Maria"}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			word, args := split(tt.line)
			assert.Equal(t, tt.wantWord, word)
			if tt.wantArgs == nil {
				assert.Nil(t, args)
			} else {
				assert.Equal(t, tt.wantArgs, args)
			}
		})
	}
}

func TestDispatcher_BasicReplies(t *testing.T) {
	ctrl := gomock.NewController(t)
	d, _, _ := newTestDispatcher(t, ctrl)
	ctx := context.Background()

	assert.Equal(t, Result{}, d.Execute(ctx, "  "))
	assert.Equal(t, Result{Output: app.MsgHello}, d.Execute(ctx, "HELLO"))
	assert.Equal(t, Result{Output: app.MsgInvalidCommand}, d.Execute(ctx, "dance"))
	assert.Equal(t, Result{Output: fmt.Sprintf(app.MsgUsage, "phone <name>")}, d.Execute(ctx, "phone"))
	assert.Equal(t, Result{Output: fmt.Sprintf(app.MsgUsage, "add <name> <phone> [YYYY-MM-DD]")}, d.Execute(ctx, "add John"))

	for _, line := range []string{"good bye", "Close", "EXIT"} {
		assert.Equal(t, Result{Output: app.MsgGoodBye, Quit: true}, d.Execute(ctx, line), line)
	}

	version := d.Execute(ctx, "version").Output
	assert.Contains(t, version, "Build version: 1.0.0")

	help := d.Execute(ctx, "help").Output
	assert.Contains(t, help, "add <name> <phone> [YYYY-MM-DD]")
	assert.Contains(t, help, "good bye | close | exit")
}

// ── contact commands ─────────────────────────────────────────────────────────

func TestDispatcher_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	d, contacts, _ := newTestDispatcher(t, ctrl)
	ctx := context.Background()

	contacts.EXPECT().Add(ctx, "John", "1234567890").Return(nil)
	contacts.EXPECT().Add(ctx, "Jane", "9876543210", "1990-07-04").Return(nil)

	assert.Equal(t, "Contact 'John' with phone '1234567890' added successfully.", d.Execute(ctx, "add John 1234567890").Output)
	assert.Equal(t, "Contact 'Jane' with phone '9876543210' added successfully.", d.Execute(ctx, "Add Jane 9876543210 1990-07-04").Output)
}

func TestDispatcher_ErrorMessages(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		setup func(m *mock.MockContactService)
		want  string
	}{
		{
			name: "invalid phone",
			line: "add John 123",
			setup: func(m *mock.MockContactService) {
				_, err := book.NewPhone("123")
				m.EXPECT().Add(gomock.Any(), "John", "123").Return(err)
			},
			want: app.MsgInvalidPhone,
		},
		{
			name: "invalid birthday",
			line: "birthday John 04.07.1990",
			setup: func(m *mock.MockContactService) {
				_, err := book.NewBirthday("04.07.1990")
				m.EXPECT().SetBirthday(gomock.Any(), "John", "04.07.1990").Return(err)
			},
			want: app.MsgInvalidBirthday,
		},
		{
			name: "missing contact",
			line: "phone Ghost",
			setup: func(m *mock.MockContactService) {
				m.EXPECT().GetPhone(gomock.Any(), "Ghost").Return("", fmt.Errorf("%w: Ghost", service.ErrContactNotFound))
			},
			want: "Contact 'Ghost' not found.",
		},
		{
			name: "missing phone",
			line: "edit John 5555555555 1112223333",
			setup: func(m *mock.MockContactService) {
				m.EXPECT().Edit(gomock.Any(), "John", "5555555555", "1112223333").Return(fmt.Errorf("contact John: %w", book.ErrNotFound))
			},
			want: "Phone not found for 'John'.",
		},
		{
			name: "no phones",
			line: "change John 1112223333",
			setup: func(m *mock.MockContactService) {
				m.EXPECT().Change(gomock.Any(), "John", "1112223333").Return(service.ErrNoPhones)
			},
			want: "Contact 'John' has no phones.",
		},
		{
			name: "no birthday",
			line: "days John",
			setup: func(m *mock.MockContactService) {
				m.EXPECT().DaysToBirthday(gomock.Any(), "John").Return(0, service.ErrNoBirthday)
			},
			want: "Contact 'John' has no birthday.",
		},
		{
			name: "corrupt snapshot",
			line: "load broken.json",
			setup: func(m *mock.MockContactService) {
				m.EXPECT().Load(gomock.Any(), "broken.json").Return("broken.json", book.ErrCorruptData)
			},
			want: "File broken.json is not a valid contact book.",
		},
		{
			name: "io failure on default path",
			line: "save",
			setup: func(m *mock.MockContactService) {
				m.EXPECT().Save(gomock.Any(), "").Return("contacts.json", book.ErrIO)
			},
			want: "Could not access file contacts.json.",
		},
		{
			name: "unknown error",
			line: "delete John",
			setup: func(m *mock.MockContactService) {
				m.EXPECT().Delete(gomock.Any(), "John").Return(errors.New("boom"))
			},
			want: app.MsgInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			d, contacts, _ := newTestDispatcher(t, ctrl)
			tt.setup(contacts)

			res := d.Execute(context.Background(), tt.line)
			assert.Equal(t, tt.want, res.Output)
			assert.False(t, res.Quit)
		})
	}
}

func TestDispatcher_Days(t *testing.T) {
	ctrl := gomock.NewController(t)
	d, contacts, _ := newTestDispatcher(t, ctrl)
	ctx := context.Background()

	contacts.EXPECT().DaysToBirthday(ctx, "John").Return(12, nil)
	contacts.EXPECT().DaysToBirthday(ctx, "Jane").Return(0, nil)

	assert.Equal(t, "12 day(s) until the birthday of 'John'.", d.Execute(ctx, "days John").Output)
	assert.Equal(t, "Today is the birthday of 'Jane'!", d.Execute(ctx, "days Jane").Output)
}

func TestDispatcher_Copy(t *testing.T) {
	ctrl := gomock.NewController(t)
	d, contacts, clip := newTestDispatcher(t, ctrl)
	ctx := context.Background()

	contacts.EXPECT().GetPhone(ctx, "John").Return("1234567890", nil).Times(2)

	assert.Equal(t, "Phone '1234567890' of 'John' copied to clipboard.", d.Execute(ctx, "copy John").Output)
	assert.Equal(t, "1234567890", clip.text)

	clip.err = errors.New("no display")
	assert.Equal(t, app.MsgClipboardUnavailable, d.Execute(ctx, "copy John").Output)
}

// ── listings ─────────────────────────────────────────────────────────────────

func TestDispatcher_ShowAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	d, contacts, _ := newTestDispatcher(t, ctrl)
	ctx := context.Background()

	contacts.EXPECT().ListAll(ctx).Return(nil)
	assert.Equal(t, app.MsgNoContacts, d.Execute(ctx, "show all").Output)

	contacts.EXPECT().ListAll(ctx).Return([]*book.Record{
		record(t, "John", "1234567890", "5555555555"),
		record(t, "Jane", "9876543210"),
	})
	assert.Equal(t,
		"Contacts:\nContact name: John, phones: 1234567890; 5555555555\nContact name: Jane, phones: 9876543210",
		d.Execute(ctx, "SHOW all").Output)
}

func TestDispatcher_Page(t *testing.T) {
	ctrl := gomock.NewController(t)
	d, contacts, _ := newTestDispatcher(t, ctrl)
	ctx := context.Background()

	contacts.EXPECT().Page(ctx, 2, 2).Return([]*book.Record{record(t, "Zed", "0000000000")}, 2, nil)
	contacts.EXPECT().Page(ctx, 2, 5).Return(nil, 2, service.ErrPageOutOfRange)
	contacts.EXPECT().Page(ctx, 2, 0).Return(nil, 2, service.ErrPageOutOfRange)
	contacts.EXPECT().Page(ctx, 2, 1).Return(nil, 0, service.ErrPageOutOfRange)

	assert.Equal(t, "Contacts (page 2 of 2):\nContact name: Zed, phones: 0000000000", d.Execute(ctx, "page 2").Output)
	assert.Equal(t, "Page 5 does not exist (2 page(s) in total).", d.Execute(ctx, "page 5").Output)
	assert.Equal(t, "Page two does not exist (2 page(s) in total).", d.Execute(ctx, "page two").Output)
	assert.Equal(t, app.MsgNoContacts, d.Execute(ctx, "page 1").Output)
}

func TestDispatcher_Find(t *testing.T) {
	ctrl := gomock.NewController(t)
	d, contacts, _ := newTestDispatcher(t, ctrl)
	ctx := context.Background()

	contacts.EXPECT().Find(ctx, "Anna Maria").Return([]*book.Record{record(t, "Anna", "5555555555")})
	contacts.EXPECT().Find(ctx, "zzz").Return(nil)

	assert.Equal(t, "Contact name: Anna, phones: 5555555555", d.Execute(ctx, "find Anna Maria").Output)
	assert.Equal(t, app.MsgNoMatches, d.Execute(ctx, "find zzz").Output)
}

// ── end to end ───────────────────────────────────────────────────────────────

func TestDispatcher_Session(t *testing.T) {
	snapshots, err := store.NewSnapshotStore(config.ClientStorage{Format: config.FormatAuto}, logger.Nop())
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "contacts.json")

	storage := config.ClientStorage{SnapshotPath: path}
	newSession := func() *Dispatcher {
		services := &service.Services{
			ContactService: service.NewContactService(book.New(), snapshots, storage, logger.Nop()),
			AppInfoService: service.NewAppInfoService(models.NewAppBuildInfo("", "", ""), logger.Nop()),
		}
		return NewDispatcher(services, &fakeClipboard{}, config.ClientApp{PageSize: 5}, logger.Nop())
	}
	ctx := context.Background()

	d := newSession()
	steps := []struct {
		line string
		want string
	}{
		{"add John 1234567890", "Contact 'John' with phone '1234567890' added successfully."},
		{"add-phone John 5555555555", "Phone '5555555555' added to 'John'."},
		{"add Anna 9876543210 1990-07-04", "Contact 'Anna' with phone '9876543210' added successfully."},
		{"find 555", "Contact name: John, phones: 1234567890; 5555555555"},
		{"find ann", "Contact name: Anna, phones: 9876543210, birthday: 1990-07-04"},
		{"edit John 1234567890 1112223333", "Phone '1234567890' of 'John' replaced with '1112223333'."},
		{"phone John", "The phone number for 'John' is '1112223333'."},
		{"save", "Address book saved to " + path},
	}
	for _, s := range steps {
		assert.Equal(t, s.want, d.Execute(ctx, s.line).Output, s.line)
	}

	restored := newSession()
	assert.Equal(t, "Address book loaded from "+path, restored.Execute(ctx, "load").Output)
	listing := restored.Execute(ctx, "show all").Output
	assert.Equal(t, 3, len(strings.Split(listing, "\n")))
	assert.Contains(t, listing, "Contact name: John, phones: 1112223333; 5555555555")

	assert.Equal(t, "Contact 'John' deleted.", restored.Execute(ctx, "delete John").Output)
	assert.Equal(t, "Contact 'John' not found.", restored.Execute(ctx, "phone John").Output)
}
