package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Parser converts relative date strings to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Kolkata"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

var (
	inDurationRe  = regexp.MustCompile(`in (\d+) (day|days|week|weeks|month|months|din|hafte|mahine)`)
	afterDaysRe   = regexp.MustCompile(`(\d+) (din|days) baad`)
	detectPhrases = []string{
		"day after tomorrow", "day before yesterday",
		"tomorrow", "yesterday", "today",
		"parso", "kal", "aaj",
	}
	detectPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\bin \d+ (days?|weeks?|months?|din|hafte|mahine)\b`),
		regexp.MustCompile(`\b\d+ (din|days) baad\b`),
		regexp.MustCompile(`\bnext (monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`),
	}
)

// dayOffsets maps fixed relative words, English and Hinglish, to a day offset.
// "kal" is read as tomorrow.
var dayOffsets = map[string]int{
	"today":                0,
	"aaj":                  0,
	"tomorrow":             1,
	"kal":                  1,
	"yesterday":            -1,
	"day after tomorrow":   2,
	"parso":                2,
	"day before yesterday": -2,
}

// Parse converts a relative date string to an absolute time.Time.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	if offset, ok := dayOffsets[relative]; ok {
		return p.startOfDay(baseTime.AddDate(0, 0, offset)), nil
	}

	// Handle "in X days/weeks/months"
	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	// Handle "X din baad"
	if strings.HasSuffix(relative, " baad") {
		return p.parseAfterDays(relative, baseTime)
	}

	// Handle "next <weekday>"
	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, baseTime)
	}

	// Fallback: treat unknown as today
	return p.startOfDay(baseTime), nil
}

// Detect finds the first relative date expression inside a sentence and
// returns it in a form Parse accepts.
func Detect(text string) (string, bool) {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	lower := " " + strings.Join(words, " ") + " "

	for _, re := range detectPatterns {
		if m := re.FindString(lower); m != "" {
			return m, true
		}
	}
	for _, phrase := range detectPhrases {
		if strings.Contains(lower, " "+phrase+" ") {
			return phrase, true
		}
	}
	return "", false
}

// IsToday reports whether relative names the base day itself.
func IsToday(relative string) bool {
	offset, ok := dayOffsets[strings.ToLower(strings.TrimSpace(relative))]
	return ok && offset == 0
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"), unit == "din":
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"), unit == "hafte":
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"), unit == "mahine":
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}

	return baseTime, fmt.Errorf("unknown time unit: %q", unit)
}

// parseAfterDays handles the Hinglish "3 din baad".
func (p *Parser) parseAfterDays(relative string, baseTime time.Time) (time.Time, error) {
	matches := afterDaysRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}
	amount, _ := strconv.Atoi(matches[1])
	return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	weekdays := map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}

	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}

	currentWeekday := baseTime.In(p.location).Weekday()
	daysUntil := int(targetWeekday - currentWeekday)
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
