// Package ics renders a day's activities as an iCalendar document.
package ics

import (
	"strings"

	"worktrack/internal/model"
)

const (
	// TZID emitted for every event; transition rules are fixed below.
	TimezoneID = "Europe/Belgrade"

	crlf = "\r\n"
)

// timePart turns "09:00" or "09:00:00" into the "090000" form DTSTART wants.
func timePart(t string) string {
	s := strings.ReplaceAll(t, ":", "")
	for len(s) < 6 {
		s += "0"
	}
	return s
}

func flatten(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// Build produces a VCALENDAR with one timed VEVENT per activity, all local
// to TimezoneID on the given date ("YYYY-MM-DD"). An empty activity list
// yields a valid calendar with zero events.
func Build(date string, activities []model.Activity) string {
	yyyymmdd := strings.ReplaceAll(date, "-", "")

	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR" + crlf)
	b.WriteString("VERSION:2.0" + crlf)
	b.WriteString("PRODID:-//worktrack//Activities//EN" + crlf)
	b.WriteString("CALSCALE:GREGORIAN" + crlf)
	b.WriteString("BEGIN:VTIMEZONE" + crlf)
	b.WriteString("TZID:" + TimezoneID + crlf)
	b.WriteString("BEGIN:STANDARD" + crlf)
	b.WriteString("TZOFFSETFROM:+0200" + crlf)
	b.WriteString("TZOFFSETTO:+0100" + crlf)
	b.WriteString("DTSTART:19701025T030000" + crlf)
	b.WriteString("RRULE:FREQ=YEARLY;BYMONTH=10;BYDAY=-1SU" + crlf)
	b.WriteString("END:STANDARD" + crlf)
	b.WriteString("BEGIN:DAYLIGHT" + crlf)
	b.WriteString("TZOFFSETFROM:+0100" + crlf)
	b.WriteString("TZOFFSETTO:+0200" + crlf)
	b.WriteString("DTSTART:19700329T020000" + crlf)
	b.WriteString("RRULE:FREQ=YEARLY;BYMONTH=3;BYDAY=-1SU" + crlf)
	b.WriteString("END:DAYLIGHT" + crlf)
	b.WriteString("END:VTIMEZONE" + crlf)

	for _, a := range activities {
		desc := ""
		if a.Description != nil {
			desc = *a.Description
		}
		b.WriteString("BEGIN:VEVENT" + crlf)
		b.WriteString("DTSTART;TZID=" + TimezoneID + ":" + yyyymmdd + "T" + timePart(a.StartTime) + crlf)
		b.WriteString("DTEND;TZID=" + TimezoneID + ":" + yyyymmdd + "T" + timePart(a.EndTime) + crlf)
		b.WriteString("SUMMARY:" + flatten(a.Title) + crlf)
		b.WriteString("DESCRIPTION:" + flatten(desc) + crlf)
		b.WriteString("END:VEVENT" + crlf)
	}

	b.WriteString("END:VCALENDAR" + crlf)
	return b.String()
}

// Filename names the download, marking exports restricted to a selection.
func Filename(date string, selected bool) string {
	if selected {
		return "activities_selected_" + date + ".ics"
	}
	return "activities_" + date + ".ics"
}
