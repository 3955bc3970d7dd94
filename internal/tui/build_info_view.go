// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-contact-book/models"
)

func renderBuildInfoWindow(name string, info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: ")
	b.WriteString(name)
	b.WriteString("\n")
	b.WriteString(info.String())
	b.WriteString("\n\nesc / f1: back")

	return overlayBoxStyle.Render(b.String())
}
