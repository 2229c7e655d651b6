package playground

import (
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// formatNumber renders v the way a browser renders a number inside a template string:
// shortest decimal that round-trips, no trailing zeros, no exponent for the ranges used here.
func formatNumber(v float64) string {
	if v == 0 {
		// normalises -0
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func px(v int) string {
	return strconv.Itoa(v) + "px"
}

func pxFloat(v float64) string {
	return formatNumber(v) + "px"
}

// TitleLabel turns a CSS keyword into a button label: "space-between" becomes "Space Between".
func TitleLabel(value string) string {
	caser := cases.Title(language.English)
	words := strings.Split(value, "-")
	for i, word := range words {
		words[i] = caser.String(word)
	}
	return strings.Join(words, " ")
}

// sentenceLabel capitalises the first letter and turns the first dash into a space:
// "row-reverse" becomes "Row reverse".
func sentenceLabel(value string) string {
	if value == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(value)
	return string(unicode.ToUpper(r)) + strings.Replace(value[size:], "-", " ", 1)
}

func decimals(step float64) int {
	s := strconv.FormatFloat(step, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

func roundTo(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
