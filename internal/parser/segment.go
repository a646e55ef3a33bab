// Package parser recovers structured orders from exported chat text.
//
// The export has no schema the service controls: field presence and order vary
// by sender, timestamps follow Colombian chat conventions, and the same
// message may appear more than once. The package is a pure computation over an
// in-memory string. Each call owns its own state, so concurrent calls need no
// coordination.
package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Message is one sender-attributed, timestamped unit of raw text between two
// recognized headers.
type Message struct {
	Date       string `json:"date"`     // YYYY-MM-DD
	Datetime   string `json:"datetime"` // YYYY-MM-DD HH:MM:SS, 24-hour
	SenderName string `json:"sender_name"`
	Body       string `json:"body"`
}

// DaySection groups the messages under one "PEDIDOS <día>" heading of the
// export. Sections without any recognized message header keep an empty list.
type DaySection struct {
	Label    string    `json:"label"`
	Messages []Message `json:"messages"`
}

// headerPattern matches both header shapes seen in exports:
//
//	[21/10/25, 8:41:55 a.m.] Jane Doe:
//	21/10/2025, 8:41 p. m. - Jane Doe:
//
// Day/month ordering is Colombian, the clock is 12-hour, seconds are
// optional, and the a.m./p.m. marker may be padded with regular, no-break, or
// narrow no-break spaces.
var headerPattern = regexp.MustCompile(
	`(?i)\[?\s*(\d{1,2})/(\d{1,2})/(\d{2,4}),[ \x{00a0}\x{202f}]*` +
		`(\d{1,2}):(\d{2})(?::(\d{2}))?[ \x{00a0}\x{202f}]*` +
		`([ap])\.?[ \x{00a0}\x{202f}]?m\.?` +
		`[ \x{00a0}\x{202f}]*\]?[ \x{00a0}\x{202f}]*-?[ \x{00a0}\x{202f}]*([^:\n]+):`)

// sectionPattern matches the day-of-week headings some senders insert between
// batches, e.g. "⚠️ *PEDIDOS LUNES*".
var sectionPattern = regexp.MustCompile(
	`(?im)^[^\n]*?PEDIDOS[ \t\x{00a0}]+` +
		`(LUNES|MARTES|MI[EÉ]RCOLES|JUEVES|VIERNES|S[AÁ]BADO|DOMINGO)[^\n]*$`)

// Segment splits raw export text into an ordered sequence of message blocks.
// Text outside any recognized header is ignored; a trailing header with an
// empty body still yields a block, which the extractor later drops.
func Segment(raw string) []Message {
	spans := headerPattern.FindAllStringSubmatchIndex(raw, -1)
	messages := make([]Message, 0, len(spans))

	for i, span := range spans {
		bodyEnd := len(raw)
		if i+1 < len(spans) {
			bodyEnd = spans[i+1][0]
		}

		group := func(n int) string {
			start, end := span[2*n], span[2*n+1]
			if start < 0 {
				return ""
			}
			return raw[start:end]
		}

		date := resolveDate(group(1), group(2), group(3))
		messages = append(messages, Message{
			Date:       date,
			Datetime:   date + " " + resolveClock(group(4), group(5), group(6), group(7)),
			SenderName: strings.TrimSpace(group(8)),
			Body:       raw[span[1]:bodyEnd],
		})
	}

	return messages
}

// Sections splits raw text on day headings first and segments within each.
// Without any heading the whole text becomes a single unlabeled section.
//
// Parse ignores the grouping because the dedup key already carries the date;
// Sections is for callers that want per-day batches, such as a review screen
// mirroring the export's own headings.
func Sections(raw string) []DaySection {
	spans := sectionPattern.FindAllStringSubmatchIndex(raw, -1)
	if len(spans) == 0 {
		return []DaySection{{Messages: Segment(raw)}}
	}

	sections := make([]DaySection, 0, len(spans))
	for i, span := range spans {
		textEnd := len(raw)
		if i+1 < len(spans) {
			textEnd = spans[i+1][0]
		}

		sections = append(sections, DaySection{
			Label:    strings.ToLower(raw[span[2]:span[3]]),
			Messages: Segment(raw[span[1]:textEnd]),
		})
	}

	return sections
}

// resolveDate builds a YYYY-MM-DD date from header fields. Two-digit years
// belong to the 2000s. Impossible calendar dates fall back to today so the
// date invariant holds even for malformed headers.
func resolveDate(dayStr, monthStr, yearStr string) string {
	day, _ := strconv.Atoi(dayStr)
	month, _ := strconv.Atoi(monthStr)
	year, _ := strconv.Atoi(yearStr)
	if year < 100 {
		year += 2000
	}

	if month < 1 || month > 12 || day < 1 {
		return time.Now().Format("2006-01-02")
	}
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Day() != day || date.Month() != time.Month(month) {
		// Normalization rolled the date over, e.g. 31/2.
		return time.Now().Format("2006-01-02")
	}

	return date.Format("2006-01-02")
}

// resolveClock converts the 12-hour header clock to HH:MM:SS.
func resolveClock(hourStr, minuteStr, secondStr, marker string) string {
	hour, _ := strconv.Atoi(hourStr)
	minute, _ := strconv.Atoi(minuteStr)
	second := 0
	if secondStr != "" {
		second, _ = strconv.Atoi(secondStr)
	}

	switch strings.ToLower(marker) {
	case "p":
		if hour != 12 {
			hour += 12
		}
	case "a":
		if hour == 12 {
			hour = 0
		}
	}

	return fmt.Sprintf("%02d:%02d:%02d", hour, minute, second)
}
