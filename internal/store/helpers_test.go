// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-contact-book/models"

func ptr(s string) *string { return &s }

func sampleSnapshot() models.Snapshot {
	return models.Snapshot{
		Version: models.SnapshotVersion,
		Contacts: []models.Contact{
			{Name: "John", Phones: []string{"1234567890", "5555555555"}},
			{Name: "Jane", Phones: []string{"9876543210"}, Birthday: ptr("1990-07-04")},
			{Name: "Nobody", Phones: []string{}},
			{Name: "Twins", Phones: []string{"1112223333", "1112223333"}, Birthday: ptr("2000-02-29")},
		},
	}
}
