package parser

import (
	"regexp"
	"strconv"
	"strings"

	"rotulos/internal/domain/entity"
)

var (
	paragraphSeparator = regexp.MustCompile(`\r?\n(?:[ \t]*\r?\n)+`)
	digitRun           = regexp.MustCompile(`\d+`)
)

// Extract maps one message body to at most one order.
//
// Paragraphs separated by blank lines fill fixed slots: name, identity line,
// address, city/region, product line, then free-form notes. The identity line
// is disambiguated by the mobile-number test: a line that does not normalize
// is a national ID, and the phone is looked for one slot further down. When
// that slot fails validation too, its digits are kept as the phone rather
// than shifting the remaining fields.
//
// Extraction never fails on malformed content: missing optional fields
// degrade to placeholders and only bodies without the minimum four
// paragraphs, or without a name, are rejected.
func Extract(body, date string) (*entity.Order, bool) {
	paragraphs := splitParagraphs(body)
	if len(paragraphs) < 4 {
		return nil, false
	}

	name := paragraphs[0]
	if name == "" {
		return nil, false
	}

	var phone, nationalID string
	next := 1
	if mobile, ok := NormalizeMobile(paragraphs[1]); ok {
		phone = mobile
		next = 2
	} else {
		nationalID = Digits(paragraphs[1])
		if mobile, ok := NormalizeMobile(paragraphs[2]); ok {
			phone = mobile
		} else {
			phone = Digits(paragraphs[2])
		}
		next = 3
	}

	take := func() string {
		if next < len(paragraphs) {
			value := paragraphs[next]
			next++

			return value
		}
		next++

		return ""
	}

	address := take()
	cityRegion := take()
	product := take()

	var notes string
	if next < len(paragraphs) {
		notes = strings.Join(paragraphs[next:], " ")
	}

	// The quantity is read from the product line but never stripped from it:
	// printed labels show the line as the sender wrote it.
	quantity := 0
	if digits := digitRun.FindString(product); digits != "" {
		quantity, _ = strconv.Atoi(digits)
	}

	if phone == "" {
		phone = entity.PlaceholderPhone
	}
	if address == "" {
		address = entity.PlaceholderAddress
	}
	if cityRegion == "" {
		cityRegion = entity.PlaceholderCityRegion
	}
	if product == "" {
		product = entity.PlaceholderProduct
	}

	return &entity.Order{
		ID:         entity.Key(date, name, phone, product),
		Date:       date,
		Name:       name,
		NationalID: nationalID,
		Phone:      phone,
		Address:    address,
		CityRegion: cityRegion,
		Product:    product,
		Quantity:   quantity,
		Notes:      notes,
	}, true
}

// Parse is the primary entry point: segment the raw export, extract an order
// per message, and drop duplicates. The first occurrence of a derived key
// wins, so re-ingesting the same export yields the same record set.
func Parse(raw string) []*entity.Order {
	messages := Segment(raw)
	seen := make(map[string]struct{}, len(messages))
	orders := make([]*entity.Order, 0, len(messages))

	for _, message := range messages {
		order, ok := Extract(message.Body, message.Date)
		if !ok {
			continue
		}
		if _, duplicate := seen[order.ID]; duplicate {
			continue
		}
		seen[order.ID] = struct{}{}
		orders = append(orders, order)
	}

	return orders
}

// splitParagraphs cuts the body on blank-line boundaries, trimming each
// paragraph and discarding empty ones.
func splitParagraphs(body string) []string {
	blocks := paragraphSeparator.Split(body, -1)
	paragraphs := make([]string, 0, len(blocks))
	for _, block := range blocks {
		if trimmed := strings.TrimSpace(block); trimmed != "" {
			paragraphs = append(paragraphs, trimmed)
		}
	}

	return paragraphs
}
