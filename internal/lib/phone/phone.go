package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// Normalize parses a phone number and formats it as E.164. Numbers without
// a country code are assumed to be US numbers.
func Normalize(raw string) (string, error) {
	raw = strings.TrimSpace(raw)

	num, err := phonenumbers.Parse(raw, "US")
	if err != nil {
		return "", err
	}

	if !phonenumbers.IsValidNumber(num) {
		return "", phonenumbers.ErrNotANumber
	}

	return phonenumbers.Format(num, phonenumbers.E164), nil
}
