// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package book_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-contact-book/internal/book"
	"github.com/MKhiriev/go-contact-book/internal/mock"
	"github.com/MKhiriev/go-contact-book/internal/store"
	"github.com/MKhiriev/go-contact-book/models"
)

func TestSaveSnapshot_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mock.NewMockSnapshotStore(ctrl)
	ctx := context.Background()

	b := book.New()
	record, err := book.NewRecord("John")
	require.NoError(t, err)
	require.NoError(t, record.AddPhone("1234567890"))
	b.AddRecord(record)
	s.EXPECT().Save(ctx, "book.json", b.Snapshot()).Return(store.ErrWritingFile)

	err = b.SaveSnapshot(ctx, s, "book.json")
	require.ErrorIs(t, err, book.ErrIO)
	require.ErrorIs(t, err, store.ErrWritingFile)
}

func TestLoadSnapshot_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		storeErr error
		wantErr  error
	}{
		{"corrupt", store.ErrCorruptSnapshot, book.ErrCorruptData},
		{"wrapped corrupt", errors.Join(errors.New("decode"), store.ErrCorruptSnapshot), book.ErrCorruptData},
		{"open failure", store.ErrOpeningFile, book.ErrIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			s := mock.NewMockSnapshotStore(ctrl)
			s.EXPECT().Load(gomock.Any(), "book.json").Return(models.Snapshot{}, tt.storeErr)

			_, err := book.LoadSnapshot(context.Background(), s, "book.json")
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadSnapshot_InvalidContentIsCorrupt(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mock.NewMockSnapshotStore(ctrl)
	s.EXPECT().Load(gomock.Any(), gomock.Any()).Return(models.Snapshot{
		Version:  models.SnapshotVersion,
		Contacts: []models.Contact{{Name: ""}},
	}, nil)

	_, err := book.LoadSnapshot(context.Background(), s, "book.json")
	require.ErrorIs(t, err, book.ErrCorruptData)
}
