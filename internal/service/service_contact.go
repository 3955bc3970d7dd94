// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-contact-book/internal/book"
	"github.com/MKhiriev/go-contact-book/internal/config"
	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/internal/store"
)

type contactService struct {
	mu        sync.Mutex
	book      *book.ContactBook
	snapshots store.SnapshotStore
	path      string
	now       func() time.Time

	logger *logger.Logger
}

func NewContactService(b *book.ContactBook, snapshots store.SnapshotStore, cfg config.ClientStorage, logger *logger.Logger) ContactService {
	return &contactService{
		book:      b,
		snapshots: snapshots,
		path:      cfg.SnapshotPath,
		now:       time.Now,
		logger:    logger,
	}
}

func (s *contactService) Add(ctx context.Context, name, phone string, birthday ...string) error {
	log := s.log(ctx)

	record, err := book.NewRecord(name, birthday...)
	if err != nil {
		log.Err(err).Str("func", "contactService.Add").Str("name", name).Msg("invalid contact")
		return fmt.Errorf("create contact: %w", err)
	}
	if err = record.AddPhone(phone); err != nil {
		log.Err(err).Str("func", "contactService.Add").Str("name", name).Msg("invalid phone")
		return fmt.Errorf("add phone: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.book.AddRecord(record)

	log.Debug().Str("func", "contactService.Add").Str("name", name).Msg("contact added")
	return nil
}

func (s *contactService) AddPhone(ctx context.Context, name, phone string) error {
	return s.update(ctx, "contactService.AddPhone", name, func(r *book.Record) error {
		return r.AddPhone(phone)
	})
}

func (s *contactService) RemovePhone(ctx context.Context, name, phone string) error {
	return s.update(ctx, "contactService.RemovePhone", name, func(r *book.Record) error {
		return r.RemovePhone(phone)
	})
}

func (s *contactService) Edit(ctx context.Context, name, oldPhone, newPhone string) error {
	return s.update(ctx, "contactService.Edit", name, func(r *book.Record) error {
		return r.EditPhone(oldPhone, newPhone)
	})
}

func (s *contactService) Change(ctx context.Context, name, newPhone string) error {
	return s.update(ctx, "contactService.Change", name, func(r *book.Record) error {
		phones := r.Phones()
		if len(phones) == 0 {
			return ErrNoPhones
		}
		return r.EditPhone(phones[0].Value(), newPhone)
	})
}

func (s *contactService) SetBirthday(ctx context.Context, name, date string) error {
	return s.update(ctx, "contactService.SetBirthday", name, func(r *book.Record) error {
		return r.SetBirthday(date)
	})
}

func (s *contactService) GetPhone(ctx context.Context, name string) (string, error) {
	var phone string
	err := s.view(ctx, "contactService.GetPhone", name, func(r *book.Record) error {
		phones := r.Phones()
		if len(phones) == 0 {
			return ErrNoPhones
		}
		phone = phones[0].Value()
		return nil
	})
	return phone, err
}

func (s *contactService) DaysToBirthday(ctx context.Context, name string) (int, error) {
	var days int
	err := s.view(ctx, "contactService.DaysToBirthday", name, func(r *book.Record) error {
		d, ok := r.DaysToBirthday(s.now())
		if !ok {
			return ErrNoBirthday
		}
		days = d
		return nil
	})
	return days, err
}

func (s *contactService) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.book.Find(name); !ok {
		return fmt.Errorf("%w: %s", ErrContactNotFound, name)
	}
	s.book.Delete(name)

	s.log(ctx).Debug().Str("func", "contactService.Delete").Str("name", name).Msg("contact deleted")
	return nil
}

func (s *contactService) ListAll(ctx context.Context) []*book.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.book.Records()
}

func (s *contactService) Page(ctx context.Context, size, n int) ([]*book.Record, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	size = max(size, 1)
	total := (s.book.Len() + size - 1) / size
	if n < 1 || n > total {
		return nil, total, fmt.Errorf("page %d of %d: %w", n, total, ErrPageOutOfRange)
	}

	current := 0
	for page := range s.book.Pages(size) {
		current++
		if current == n {
			return page, total, nil
		}
	}
	return nil, total, fmt.Errorf("page %d of %d: %w", n, total, ErrPageOutOfRange)
}

func (s *contactService) Find(ctx context.Context, query string) []*book.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.book.Search(query)
}

func (s *contactService) Save(ctx context.Context, path string) (string, error) {
	log := s.log(ctx)

	path, err := s.resolvePath(path)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err = s.book.SaveSnapshot(ctx, s.snapshots, path); err != nil {
		log.Err(err).Str("func", "contactService.Save").Str("path", path).Msg("error saving contact book")
		return path, fmt.Errorf("save contact book: %w", err)
	}

	log.Info().Str("func", "contactService.Save").Str("path", path).Int("contacts", s.book.Len()).Msg("contact book saved")
	return path, nil
}

func (s *contactService) Load(ctx context.Context, path string) (string, error) {
	log := s.log(ctx)

	path, err := s.resolvePath(path)
	if err != nil {
		return "", err
	}

	loaded, err := book.LoadSnapshot(ctx, s.snapshots, path)
	if err != nil {
		log.Err(err).Str("func", "contactService.Load").Str("path", path).Msg("error loading contact book")
		return path, fmt.Errorf("load contact book: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.book = loaded

	log.Info().Str("func", "contactService.Load").Str("path", path).Int("contacts", loaded.Len()).Msg("contact book loaded")
	return path, nil
}

// log prefers the request-scoped logger and falls back to the one the
// service was built with.
func (s *contactService) log(ctx context.Context) *logger.Logger {
	return logger.FromContextOr(ctx, s.logger)
}

func (s *contactService) resolvePath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	if s.path == "" {
		return "", ErrNoSnapshotPath
	}
	return s.path, nil
}

// update runs fn on the record stored under name while holding the lock.
func (s *contactService) update(ctx context.Context, funcName, name string, fn func(r *book.Record) error) error {
	err := s.view(ctx, funcName, name, fn)
	if err == nil {
		s.log(ctx).Debug().Str("func", funcName).Str("name", name).Msg("contact updated")
	}
	return err
}

func (s *contactService) view(ctx context.Context, funcName, name string, fn func(r *book.Record) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.book.Find(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrContactNotFound, name)
	}
	if err := fn(record); err != nil {
		s.log(ctx).Err(err).Str("func", funcName).Str("name", name).Msg("contact operation failed")
		return fmt.Errorf("contact %s: %w", name, err)
	}
	return nil
}
