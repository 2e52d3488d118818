// Package translate localizes the user-visible messages of the LS-8 tools.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Fallback is the language used when the host reports no locale.
const Fallback = "en-US"

var (
	printer     *message.Printer
	printerOnce sync.Once
)

// hostLocales returns the host's preferred locales, most preferred first.
func hostLocales() (locales []string) {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("ls8: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{Fallback}
	}

	return
}

func current() *message.Printer {
	printerOnce.Do(func() {
		if printer == nil {
			printer = message.NewPrinter(message.MatchLanguage(hostLocales()...))
		}
	})
	return printer
}

// SetLanguage overrides the host locale for all later messages.
func SetLanguage(tag language.Tag) {
	printerOnce.Do(func() {})
	printer = message.NewPrinter(tag)
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return current().Sprintf(key, args...)
}
