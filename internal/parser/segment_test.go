package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegment_BracketedHeader(t *testing.T) {
	raw := "[21/10/25, 8:41:55 a.m.] Jane Doe: hola\nresto del mensaje\n"

	messages := Segment(raw)
	require.Len(t, messages, 1)
	assert.Equal(t, "2025-10-21", messages[0].Date)
	assert.Equal(t, "2025-10-21 08:41:55", messages[0].Datetime)
	assert.Equal(t, "Jane Doe", messages[0].SenderName)
	assert.Contains(t, messages[0].Body, "resto del mensaje")
}

func TestSegment_DashedHeader(t *testing.T) {
	raw := "21/10/2025, 8:41 p. m. - Daniel Jimenez: cuerpo"

	messages := Segment(raw)
	require.Len(t, messages, 1)
	assert.Equal(t, "2025-10-21", messages[0].Date)
	assert.Equal(t, "2025-10-21 20:41:00", messages[0].Datetime)
	assert.Equal(t, "Daniel Jimenez", messages[0].SenderName)
}

func TestSegment_TwelveHourEdgeCases(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"midnight", "[1/1/25, 12:00:00 a.m.] Ana: x", "00:00:00"},
		{"noon", "[1/1/25, 12:00:00 p.m.] Ana: x", "12:00:00"},
		{"morning", "[1/1/25, 8:05:09 a.m.] Ana: x", "08:05:09"},
		{"afternoon", "[1/1/25, 1:30:00 p.m.] Ana: x", "13:30:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			messages := Segment(tt.raw)
			require.Len(t, messages, 1)
			assert.Equal(t, "2025-01-01 "+tt.want, messages[0].Datetime)
		})
	}
}

func TestSegment_NarrowSpaceAroundMarker(t *testing.T) {
	// WhatsApp exports pad the a.m. marker with U+202F.
	raw := "[21/10/25, 8:41:55 a. m.] Jane Doe: hola"

	messages := Segment(raw)
	require.Len(t, messages, 1)
	assert.Equal(t, "2025-10-21 08:41:55", messages[0].Datetime)
}

func TestSegment_MultipleMessagesAndBodyBounds(t *testing.T) {
	raw := "[1/2/25, 9:00:00 a.m.] Ana: primero\n\n" +
		"[1/2/25, 9:05:00 a.m.] Luis: segundo\ncon dos líneas\n"

	messages := Segment(raw)
	require.Len(t, messages, 2)
	assert.Contains(t, messages[0].Body, "primero")
	assert.NotContains(t, messages[0].Body, "segundo")
	assert.Equal(t, "Luis", messages[1].SenderName)
	assert.Contains(t, messages[1].Body, "con dos líneas")
}

func TestSegment_TextWithoutHeaderIsIgnored(t *testing.T) {
	assert.Empty(t, Segment("texto suelto sin encabezado\nmás texto"))
}

func TestSegment_TrailingHeaderEmptyBody(t *testing.T) {
	messages := Segment("[1/2/25, 9:00:00 a.m.] Ana:")
	require.Len(t, messages, 1)
	assert.Empty(t, messages[0].Body)
}

func TestSegment_MalformedDateFallsBackToToday(t *testing.T) {
	messages := Segment("[31/2/25, 9:00:00 a.m.] Ana: x")
	require.Len(t, messages, 1)
	assert.Equal(t, time.Now().Format("2006-01-02"), messages[0].Date)
}

func TestSections_GroupsByDayHeading(t *testing.T) {
	raw := "⚠️ *PEDIDOS LUNES*\n" +
		"[20/10/25, 9:00:00 a.m.] Ana: uno\n" +
		"*PEDIDOS MARTES*\n" +
		"[21/10/25, 9:00:00 a.m.] Luis: dos\n" +
		"PEDIDOS MIÉRCOLES\n" +
		"nada reconocible aquí\n"

	sections := Sections(raw)
	require.Len(t, sections, 3)

	assert.Equal(t, "lunes", sections[0].Label)
	require.Len(t, sections[0].Messages, 1)
	assert.Equal(t, "Ana", sections[0].Messages[0].SenderName)

	assert.Equal(t, "martes", sections[1].Label)
	require.Len(t, sections[1].Messages, 1)

	// A heading without any order header still yields a section.
	assert.Equal(t, "miércoles", sections[2].Label)
	assert.Empty(t, sections[2].Messages)
}

func TestSections_NoHeadingsYieldsSingleSection(t *testing.T) {
	raw := "[20/10/25, 9:00:00 a.m.] Ana: uno"

	sections := Sections(raw)
	require.Len(t, sections, 1)
	assert.Empty(t, sections[0].Label)
	assert.Len(t, sections[0].Messages, 1)
}
