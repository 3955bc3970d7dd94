// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package command parses the contact book command language and runs each
// command against the service layer.
//
// A command line is split on whitespace. The command word is matched
// case-insensitively; arguments keep their case. Every outcome, including
// errors, is turned into a user-facing message from package app, so a bad
// command never ends the session.
package command
