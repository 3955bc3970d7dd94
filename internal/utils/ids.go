// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the storage layer.
package utils

import "github.com/google/uuid"

// IDGenerator produces unique string identifiers.
type IDGenerator interface {
	Generate() string
}

// UUIDGenerator yields time-ordered UUIDv7 strings, so rows inserted in
// book order also sort in book order by primary key.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate falls back to a random v4 UUID if the v7 clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// SequenceGenerator returns the given ids in turn, then repeats the last
// one. Used where deterministic identifiers are needed.
type SequenceGenerator struct {
	ids []string
	pos int
}

func NewSequenceGenerator(ids ...string) *SequenceGenerator {
	return &SequenceGenerator{ids: ids}
}

func (g *SequenceGenerator) Generate() string {
	if len(g.ids) == 0 {
		return ""
	}
	id := g.ids[min(g.pos, len(g.ids)-1)]
	g.pos++
	return id
}
