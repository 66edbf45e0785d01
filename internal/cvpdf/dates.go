package cvpdf

import (
	"fmt"
	"time"
)

const presentMarker = "Presente"

var (
	monthAbbr = [...]string{"Ene", "Feb", "Mar", "Abr", "May", "Jun", "Jul", "Ago", "Sep", "Oct", "Nov", "Dic"}
	monthName = [...]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"}
)

func monthYear(t time.Time) string {
	return fmt.Sprintf("%s %d", monthAbbr[t.Month()-1], t.Year())
}

func longDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), monthName[t.Month()-1], t.Year())
}

// dateRange renders "Ene 2020 - Mar 2022", or "Ene 2020 - Presente" for an open range.
func dateRange(start time.Time, end *time.Time) string {
	from := ""
	if !start.IsZero() {
		from = monthYear(start)
	}
	to := presentMarker
	if end != nil && !end.IsZero() {
		to = monthYear(*end)
	}
	return from + " - " + to
}
