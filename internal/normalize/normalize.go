package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Name trims and collapses whitespace and brings the name to NFC form.
func Name(name string) string {
	return norm.NFC.String(strings.Join(strings.Fields(name), " "))
}
