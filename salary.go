package jobpage

import (
	"regexp"
	"strings"
)

// DefaultCurrency is reported when a salary names no known currency.
const DefaultCurrency = "USD"

// Salary is the best-effort reading of a free-text salary.
type Salary struct {
	Currency string `json:"currency"`
	Unit     string `json:"unit"`
	Value    string `json:"value"`
}

// currencyMarkers is checked in order; the first marker found wins. Letter
// codes only match as whole tokens so "PERMANENT" is not read as ringgit.
var currencyMarkers = []struct {
	re   *regexp.Regexp
	code string
}{
	{regexp.MustCompile(`£`), "GBP"},
	{regexp.MustCompile(`€`), "EUR"},
	{regexp.MustCompile(`¥`), "JPY"},
	{regexp.MustCompile(`₹`), "INR"},
	{codeMarker(`RM|MYR`), "MYR"},
	{codeMarker(`AU\$`), "AUD"},
	{codeMarker(`Rp|IDR`), "IDR"},
	{codeMarker(`S\$`), "SGD"},
	{regexp.MustCompile(`₩`), "KRW"},
}

// codeMarker matches alternatives not preceded or followed by a letter.
func codeMarker(alt string) *regexp.Regexp {
	return regexp.MustCompile(`(?:^|[^A-Za-z])(?:` + alt + `)(?:[^A-Za-z]|$)`)
}

// unitPatterns is checked in order; the first match wins.
var unitPatterns = []struct {
	re   *regexp.Regexp
	unit string
}{
	{regexp.MustCompile(`(?i)\b(?:per\s+hour|an?\s+hour|hourly|hours?|hrs?|ph)\b`), UnitHour},
	{regexp.MustCompile(`(?i)\b(?:per\s+annum|per\s+year|an?\s+year|yearly|annually|years?|yrs?|pa)\b`), UnitYear},
	{regexp.MustCompile(`(?i)\b(?:per\s+month|an?\s+month|monthly|months?|mo|pm)\b`), UnitMonth},
	{regexp.MustCompile(`(?i)\b(?:per\s+week|an?\s+week|weekly|weeks?|wk|pw)\b`), UnitWeek},
}

// ParseSalary infers currency, time unit and numeric value from salary
// text. Unrecognized text degrades to DefaultCurrency, defaultUnit and an
// empty value.
func ParseSalary(s, defaultUnit string) Salary {
	return Salary{
		Currency: SalaryCurrency(s),
		Unit:     salaryUnit(s, defaultUnit),
		Value:    SalaryValue(s),
	}
}

// SalaryCurrency returns the ISO code of the first currency marker in s.
func SalaryCurrency(s string) string {
	for _, c := range currencyMarkers {
		if c.re.MatchString(s) {
			return c.code
		}
	}
	return DefaultCurrency
}

func salaryUnit(s, defaultUnit string) string {
	for _, p := range unitPatterns {
		if p.re.MatchString(s) {
			return p.unit
		}
	}
	return defaultUnit
}

// SalaryValue extracts the numeric part of s: digits, a "K" multiplier
// following a digit, a decimal point between digits and range hyphens.
// "£50K–£60K a year" becomes "50K-60K".
func SalaryValue(s string) string {
	for _, p := range unitPatterns {
		s = p.re.ReplaceAllString(s, " ")
	}

	runes := []rune(s)
	isDigit := func(i int) bool { return i >= 0 && i < len(runes) && runes[i] >= '0' && runes[i] <= '9' }

	var b strings.Builder
	var last rune
	for i, r := range runes {
		switch {
		case r >= '0' && r <= '9':
		case (r == 'k' || r == 'K') && isDigit(i-1):
			r = 'K'
		case r == '.' && isDigit(i-1) && isDigit(i+1):
		case (r == '-' || r == '–' || r == '—') && last != 0 && last != '-':
			r = '-'
		default:
			continue
		}
		b.WriteRune(r)
		last = r
	}
	return strings.Trim(b.String(), "-")
}
