package extract

import (
	"regexp"
	"strconv"
	"time"
)

// months maps every Portuguese month name to exactly one month.
var months = map[string]time.Month{
	"janeiro":   time.January,
	"fevereiro": time.February,
	"marco":     time.March,
	"abril":     time.April,
	"maio":      time.May,
	"junho":     time.June,
	"julho":     time.July,
	"agosto":    time.August,
	"setembro":  time.September,
	"outubro":   time.October,
	"novembro":  time.November,
	"dezembro":  time.December,
}

var weekdays = map[string]time.Weekday{
	"domingo": time.Sunday,
	"segunda": time.Monday,
	"terca":   time.Tuesday,
	"quarta":  time.Wednesday,
	"quinta":  time.Thursday,
	"sexta":   time.Friday,
	"sabado":  time.Saturday,
}

const monthNames = `(janeiro|fevereiro|marco|abril|maio|junho|julho|agosto|setembro|outubro|novembro|dezembro)`

var (
	twoDaysAgo   = regexp.MustCompile(`\bante\s*-?\s*ontem\b`)
	yesterday    = wordMatcher("ontem")
	weekdayRe    = regexp.MustCompile(`\b(segunda|terca|quarta|quinta|sexta|sabado|domingo)\b(\s+parcela)?`)
	dayOfMonthRe = regexp.MustCompile(`\b(?:dia\s+)?(\d{1,2})\s+de\s+` + monthNames + `\b(?:\s+de\s+(\d{4}))?`)
	monthAloneRe = regexp.MustCompile(`\b` + monthNames + `\b`)
	bareDayRe    = regexp.MustCompile(`\bdia\s+(\d{1,2})\b`)
	numericRe    = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})(?:/(\d{2}|\d{4}))?\b`)
	todayRe      = wordMatcher("hoje")
	afterTomRe   = regexp.MustCompile(`\bdepois\s+de\s+amanha\b`)
	tomorrowRe   = wordMatcher("amanha")

	pastMarkers = wordPrefixMatchers([]string{
		"gastei", "comprei", "paguei", "adquiri", "recebi", "ganhei", "vendi", "entrou",
		"passado", "passada", "ultimo", "ultima", "retrasad",
	})
)

// Date resolves the calendar date mentioned in normalized text relative to today.
// It returns nil when the text names no date.
func Date(normalized string, today time.Time) *time.Time {
	today = startOfDay(today)

	for _, resolve := range dateRules {
		if d, ok := resolve(normalized, today); ok {
			return &d
		}
	}

	return nil
}

type dateRule func(text string, today time.Time) (time.Time, bool)

// dateRules are tried in priority order.
var dateRules = []dateRule{
	relativeDay,
	weekday,
	dayOfMonth,
	monthAlone,
	bareDay,
	numericDate,
	todayOrTomorrow,
}

func relativeDay(text string, today time.Time) (time.Time, bool) {
	if twoDaysAgo.MatchString(text) {
		return today.AddDate(0, 0, -2), true
	}

	if yesterday.MatchString(text) {
		return today.AddDate(0, 0, -1), true
	}

	return time.Time{}, false
}

// weekday resolves to the most recent past occurrence; the same weekday as today
// means a week ago. "segunda parcela" is an ordinal, not a weekday.
func weekday(text string, today time.Time) (time.Time, bool) {
	for _, m := range weekdayRe.FindAllStringSubmatch(text, -1) {
		if m[2] != "" {
			continue
		}

		offset := (int(today.Weekday()) - int(weekdays[m[1]]) + 7) % 7
		if offset == 0 {
			offset = 7
		}

		return today.AddDate(0, 0, -offset), true
	}

	return time.Time{}, false
}

func dayOfMonth(text string, today time.Time) (time.Time, bool) {
	m := dayOfMonthRe.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}

	day, _ := strconv.Atoi(m[1])
	month := months[m[2]]

	year := today.Year()
	explicitYear := m[3] != ""

	if explicitYear {
		year, _ = strconv.Atoi(m[3])
	}

	d, ok := calendarDate(year, month, day, today.Location())
	if !ok {
		return time.Time{}, false
	}

	if !explicitYear && d.Before(today) {
		d = d.AddDate(1, 0, 0)
	}

	return d, true
}

func monthAlone(text string, today time.Time) (time.Time, bool) {
	m := monthAloneRe.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}

	d := time.Date(today.Year(), months[m[1]], 15, 0, 0, 0, 0, today.Location())
	if d.Before(today) {
		d = d.AddDate(1, 0, 0)
	}

	return d, true
}

func bareDay(text string, today time.Time) (time.Time, bool) {
	m := bareDayRe.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}

	day, _ := strconv.Atoi(m[1])

	d, ok := calendarDate(today.Year(), today.Month(), day, today.Location())
	if !ok {
		return time.Time{}, false
	}

	if d.Before(today) && !hasPastMarker(text) {
		next := today.AddDate(0, 0, 1-today.Day()).AddDate(0, 1, 0)
		if nd, ok := calendarDate(next.Year(), next.Month(), day, today.Location()); ok {
			return nd, true
		}
	}

	return d, true
}

func numericDate(text string, today time.Time) (time.Time, bool) {
	for _, m := range numericRe.FindAllStringSubmatch(text, -1) {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])

		if month < 1 || month > 12 {
			continue
		}

		year := today.Year()
		explicitYear := m[3] != ""

		if explicitYear {
			year, _ = strconv.Atoi(m[3])
			if len(m[3]) == 2 {
				year += 2000
			}
		}

		d, ok := calendarDate(year, time.Month(month), day, today.Location())
		if !ok {
			continue
		}

		if !explicitYear && d.Before(today) && !hasPastMarker(text) {
			d = d.AddDate(1, 0, 0)
		}

		return d, true
	}

	return time.Time{}, false
}

func todayOrTomorrow(text string, today time.Time) (time.Time, bool) {
	switch {
	case todayRe.MatchString(text):
		return today, true
	case afterTomRe.MatchString(text):
		return today.AddDate(0, 0, 2), true
	case tomorrowRe.MatchString(text):
		return today.AddDate(0, 0, 1), true
	}

	return time.Time{}, false
}

func hasPastMarker(text string) bool {
	for _, re := range pastMarkers {
		if re.MatchString(text) {
			return true
		}
	}

	return false
}

// calendarDate builds a date and rejects overflowing days such as 31/02.
func calendarDate(year int, month time.Month, day int, loc *time.Location) (time.Time, bool) {
	if day < 1 || day > 31 {
		return time.Time{}, false
	}

	d := time.Date(year, month, day, 0, 0, 0, 0, loc)
	if d.Month() != month || d.Day() != day {
		return time.Time{}, false
	}

	return d, true
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
