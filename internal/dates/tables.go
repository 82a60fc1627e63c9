package dates

import "time"

// Spelled-number table for day and year-tens phrases written as words,
// covering 1-31 with the irregular forms. Keys are lowercase and
// accent-folded before lookup.
var numberWords = map[string]int{
	"primero":      1,
	"uno":          1,
	"dos":          2,
	"tres":         3,
	"cuatro":       4,
	"cinco":        5,
	"seis":         6,
	"siete":        7,
	"ocho":         8,
	"nueve":        9,
	"diez":         10,
	"once":         11,
	"doce":         12,
	"trece":        13,
	"catorce":      14,
	"quince":       15,
	"dieciseis":    16,
	"diecisiete":   17,
	"dieciocho":    18,
	"diecinueve":   19,
	"veinte":       20,
	"veintiuno":    21,
	"veintidos":    22,
	"veintitres":   23,
	"veinticuatro": 24,
	"veinticinco":  25,
	"veintiseis":   26,
	"veintisiete":  27,
	"veintiocho":   28,
	"veintinueve":  29,
	"treinta":      30,
}

// monthNames maps Spanish month names to calendar months. Lookup is
// case-insensitive and accent-insensitive; an unmatched name fails the
// whole extraction.
var monthNames = map[string]time.Month{
	"enero":      time.January,
	"febrero":    time.February,
	"marzo":      time.March,
	"abril":      time.April,
	"mayo":       time.May,
	"junio":      time.June,
	"julio":      time.July,
	"agosto":     time.August,
	"septiembre": time.September,
	"setiembre":  time.September,
	"octubre":    time.October,
	"noviembre":  time.November,
	"diciembre":  time.December,
}
