package currency

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownLocale is returned by Lookup for tags with no registered profile.
var ErrUnknownLocale = errors.New("unknown locale")

// Locale holds the display conventions for an amount.
type Locale struct {
	Symbol  string
	Decimal string
	Group   string
}

var (
	// US renders amounts as $1,234.50.
	US = Locale{Symbol: "$", Decimal: ".", Group: ","}
	// PtBR renders amounts as R$1.234,50.
	PtBR = Locale{Symbol: "R$", Decimal: ",", Group: "."}
)

// DefaultTag is the locale used when none is configured.
const DefaultTag = "pt-br"

var locales = map[string]Locale{
	"us":    US,
	"pt-br": PtBR,
}

var localeAliases = map[string]string{
	"en-us": "us",
	"en":    "us",
	"usd":   "us",
	"pt_br": "pt-br",
	"ptbr":  "pt-br",
	"pt":    "pt-br",
	"brl":   "pt-br",
}

// NormalizeTag lowers the tag and resolves aliases.
func NormalizeTag(tag string) string {
	n := strings.ToLower(strings.TrimSpace(tag))
	if mapped, ok := localeAliases[n]; ok {
		return mapped
	}
	return n
}

// Lookup returns the profile registered for tag.
func Lookup(tag string) (Locale, error) {
	if l, ok := locales[NormalizeTag(tag)]; ok {
		return l, nil
	}
	return Locale{}, fmt.Errorf("%w: %q. Try one of: %s", ErrUnknownLocale, tag, strings.Join(Tags(), ", "))
}

// Tags returns the canonical locale tags.
func Tags() []string {
	tags := make([]string, 0, len(locales))
	for k := range locales {
		tags = append(tags, k)
	}
	sort.Strings(tags)
	return tags
}

// zero is the rendering of an empty amount.
func (l Locale) zero() string { return "0" + l.Decimal + "00" }
