// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-video-notes/models"
)

// renderAbout lists the linker-stamped build values of the client.
func renderAbout(info models.AppBuildInfo) string {
	rows := [][2]string{
		{"Version", info.BuildVersion()},
		{"Built", info.BuildDate()},
		{"Commit", info.BuildCommit()},
	}

	var b strings.Builder
	b.WriteString("Video Notes terminal client\n\n")
	for _, row := range rows {
		b.WriteString(padRight(row[0]+":", 9))
		b.WriteString(orNA(row[1]))
		b.WriteByte('\n')
	}

	return renderPage("ABOUT", strings.TrimRight(b.String(), "\n"), "esc/v: back")
}

func orNA(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return "N/A"
	}
	return v
}
