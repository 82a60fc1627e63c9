package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want time.Time
		ok   bool
	}{
		{
			"numeric date",
			"firmado el 15 de enero de 2020 en la notaría",
			date(2020, time.January, 15), true,
		},
		{
			"spelled long form uppercase",
			"EL DIA PRIMERO DE MARZO DEL DOS MIL VEINTE",
			date(2020, time.March, 1), true,
		},
		{
			"spelled day with year word",
			"el quince de enero del dos mil cinco",
			date(2005, time.January, 15), true,
		},
		{
			"compound spelled day",
			"el treinta y uno de enero de dos mil",
			date(2000, time.January, 31), true,
		},
		{
			"spelled year followed by conjunction",
			"firmado el quince de enero del dos mil veinte y el vendedor compareció",
			date(2020, time.January, 15), true,
		},
		{
			"compound year followed by conjunction",
			"el dos de marzo del dos mil veinte y cinco y los testigos presentes",
			date(2025, time.March, 2), true,
		},
		{
			"year with ano word",
			"veintiuno de junio del año dos mil diez",
			date(2010, time.June, 21), true,
		},
		{
			"no year defaults to era base",
			"celebrado el 5 de mayo en esta ciudad",
			date(2000, time.May, 5), true,
		},
		{
			"numeric date without de",
			"3 enero 2020",
			date(2020, time.January, 3), true,
		},
		{
			"setiembre variant",
			"2 de setiembre de 1999",
			date(1999, time.September, 2), true,
		},
		{
			"no date phrase",
			"no mention of dates here",
			time.Time{}, false,
		},
		{
			"empty text",
			"",
			time.Time{}, false,
		},
		{
			"invalid calendar date",
			"el 31 de abril de 2021",
			time.Time{}, false,
		},
		{
			"day out of range",
			"el 32 de mayo de 2021",
			time.Time{}, false,
		},
		{
			"unknown month name",
			"el 15 de eneroo de 2020",
			time.Time{}, false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Extract(tt.text)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

// Only the first matching pattern decides; a later, plainer date in the same
// text never overrides it.
func TestExtractFirstMatchWins(t *testing.T) {
	got, ok := Extract("el quince de enero del dos mil cinco, y luego el 20 de marzo de 1999")
	require.True(t, ok)
	assert.Equal(t, date(2005, time.January, 15), got)
}

// A matched phrase that fails to resolve reports no date instead of falling
// through to later patterns.
func TestExtractNoFallthroughAfterMatch(t *testing.T) {
	// 31 de abril matches the numeric pattern but is not a real date; the
	// year-less pattern would also match and must not be consulted.
	_, ok := Extract("el 31 de abril de 2021")
	assert.False(t, ok)
}

func TestSpelledNumber(t *testing.T) {
	tests := []struct {
		tok  string
		want int
		ok   bool
	}{
		{"primero", 1, true},
		{"PRIMERO", 1, true},
		{"dieciséis", 16, true},
		{"veintinueve", 29, true},
		{"treinta", 30, true},
		{"treinta y uno", 31, true},
		{"veinte y cinco", 25, true},
		{"mil", 0, false},
		{"treinta o uno", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.tok, func(t *testing.T) {
			got, ok := spelledNumber(tt.tok)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
