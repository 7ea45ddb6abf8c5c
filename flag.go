package converter

import (
	"fmt"
	"strings"
)

const flagURLTemplate = "https://flagcdn.com/w40/%s.png"

// FlagURL builds the flag image URL for a currency from the country part of its code.
func FlagURL(c Currency) string {
	code := string(c)
	if code == "" {
		code = "USD"
	}
	if len(code) > 2 {
		code = code[:2]
	}
	return fmt.Sprintf(flagURLTemplate, strings.ToLower(code))
}
