package validation

import "unicode/utf8"

const (
	MinAliasLength = 5
	MaxAliasLength = 32
	MaxSuggestions = 10
)

// reservedAliases collide with fixed routes served next to /:id.
var reservedAliases = map[string]bool{
	"health": true,
}

type AliasValidator struct{}

func NewAliasValidator() *AliasValidator {
	return &AliasValidator{}
}

// ValidateAlias applies the rule shared by custom names, availability checks
// and generated suggestions.
func (v *AliasValidator) ValidateAlias(alias string) error {
	n := utf8.RuneCountInString(alias)
	if n < MinAliasLength || n > MaxAliasLength {
		return ErrAliasLength
	}
	for i := 0; i < len(alias); i++ {
		if !isAliasByte(alias[i]) {
			return ErrAliasCharset
		}
	}
	if reservedAliases[alias] {
		return ErrAliasReserved
	}
	return nil
}

func isAliasByte(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '_' || c == '-'
}

func ValidateCount(n int) error {
	if n < 1 || n > MaxSuggestions {
		return ErrInvalidCount
	}
	return nil
}
