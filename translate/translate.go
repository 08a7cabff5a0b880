package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer *message.Printer

// Languages with messages. The first is used when nothing matches.
var supported = language.NewMatcher([]language.Tag{
	language.AmericanEnglish,
	language.Japanese,
})

func init() {
	registerCatalog()

	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("hackvm: locale: %v", err)
	}

	SetLocale(locales...)
}

// SetLocale selects the message printer best matching the locales given,
// in order of preference. With no match, en-US is used.
func SetLocale(locales ...string) {
	tag, _ := language.MatchStrings(supported, locales...)

	printer = message.NewPrinter(tag)
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// Error is an en-US error message, translated each time it is formatted.
// Errors compare equal when their messages are equal.
type Error string

func (err Error) Error() string {
	return From(string(err))
}
