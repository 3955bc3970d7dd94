// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// contact book command dispatcher and user interfaces.
//
// All Msg* constants are human-readable strings printed back to the user.
// Those containing %s or %d verbs are format strings for fmt.Sprintf.
// Keeping them in one place ensures consistent wording in the TUI and the
// plain line mode.
package app

const (
	// MsgHello answers the greeting command.
	MsgHello = "How can I help you?"

	// MsgGoodBye is printed when the session ends.
	MsgGoodBye = "Good bye!"

	// MsgInvalidCommand is returned for an unknown command word.
	MsgInvalidCommand = "Invalid command. Please try again."

	// MsgUsage is returned when a known command gets the wrong number of
	// arguments; the verb is the expected syntax.
	MsgUsage = "Usage: %s"

	// MsgContactAdded confirms the add command.
	MsgContactAdded = "Contact '%s' with phone '%s' added successfully."

	// MsgPhoneAdded confirms adding another phone to a contact.
	MsgPhoneAdded = "Phone '%s' added to '%s'."

	// MsgPhoneRemoved confirms the remove-phone command.
	MsgPhoneRemoved = "Phone '%s' removed from '%s'."

	// MsgPhoneChanged confirms the change command.
	MsgPhoneChanged = "Phone number for '%s' updated to '%s'."

	// MsgPhoneEdited confirms the edit command.
	MsgPhoneEdited = "Phone '%s' of '%s' replaced with '%s'."

	// MsgPhoneOf answers the phone command.
	MsgPhoneOf = "The phone number for '%s' is '%s'."

	// MsgPhoneCopied confirms the copy command.
	MsgPhoneCopied = "Phone '%s' of '%s' copied to clipboard."

	// MsgContactDeleted confirms the delete command.
	MsgContactDeleted = "Contact '%s' deleted."

	// MsgBirthdaySet confirms the birthday command.
	MsgBirthdaySet = "Birthday of '%s' set to %s."

	// MsgDaysToBirthday answers the days command.
	MsgDaysToBirthday = "%d day(s) until the birthday of '%s'."

	// MsgBirthdayToday answers the days command on the birthday itself.
	MsgBirthdayToday = "Today is the birthday of '%s'!"

	// MsgContactsHeader starts the show all and page listings.
	MsgContactsHeader = "Contacts:"

	// MsgPageHeader starts a page listing.
	MsgPageHeader = "Contacts (page %d of %d):"

	// MsgNoContacts is returned when the book is empty.
	MsgNoContacts = "No contacts found."

	// MsgNoMatches is returned when find yields nothing.
	MsgNoMatches = "No matching contacts found."

	// MsgSaved confirms the save command.
	MsgSaved = "Address book saved to %s"

	// MsgLoaded confirms the load command.
	MsgLoaded = "Address book loaded from %s"
)

// Error messages. Each one corresponds to an error kind reported by the
// service layer.
const (
	// MsgContactNotFound is returned when the named contact does not exist.
	MsgContactNotFound = "Contact '%s' not found."

	// MsgPhoneNotFound is returned when edit cannot find the old phone.
	MsgPhoneNotFound = "Phone not found for '%s'."

	// MsgNoPhones is returned when a contact without phones is asked for one.
	MsgNoPhones = "Contact '%s' has no phones."

	// MsgNoBirthday is returned by days for a contact without a birthday.
	MsgNoBirthday = "Contact '%s' has no birthday."

	// MsgInvalidPhone is returned for a phone that is not exactly 10 digits.
	MsgInvalidPhone = "Invalid phone number format: a phone must be exactly 10 digits."

	// MsgInvalidBirthday is returned for a date that is not YYYY-MM-DD.
	MsgInvalidBirthday = "Invalid birthday format: use YYYY-MM-DD."

	// MsgInvalidName is returned for an empty contact name.
	MsgInvalidName = "Enter user name"

	// MsgInvalidPage is returned for a page number that does not exist.
	MsgInvalidPage = "Page %s does not exist (%d page(s) in total)."

	// MsgNoSnapshotPath is returned by save and load when no path is known.
	MsgNoSnapshotPath = "No file path given and no default snapshot path configured."

	// MsgCorruptSnapshot is returned when a snapshot file cannot be read
	// as a contact book.
	MsgCorruptSnapshot = "File %s is not a valid contact book."

	// MsgSnapshotIO is returned when a snapshot file cannot be read or written.
	MsgSnapshotIO = "Could not access file %s."

	// MsgClipboardUnavailable is returned when the system clipboard cannot
	// be written.
	MsgClipboardUnavailable = "Clipboard is not available."

	// MsgInternalError is returned for failures with no dedicated message.
	MsgInternalError = "Something went wrong. Please try again."
)
