package record

import (
	"net/mail"
	"regexp"
	"strings"
)

var (
	orcidRegex      = regexp.MustCompile(`\d{4}-\d{4}-\d{4}-\d{3}[\dX]`)
	orcidExactRegex = regexp.MustCompile(`^\d{4}-\d{4}-\d{4}-\d{3}[\dX]$`)
)

// ExtractORCID pulls a bare ORCID iD out of a raw source value. URL forms
// ("https://orcid.org/0000-...") yield the embedded identifier; anything
// else is returned trimmed and is validated later by ValidORCID.
func ExtractORCID(value string) string {
	value = strings.TrimSpace(value)
	if strings.Contains(value, "orcid.org") {
		if match := orcidRegex.FindString(value); match != "" {
			return match
		}
	}
	return value
}

// ValidORCID reports whether s is a structurally valid ORCID iD: four
// hyphen-separated groups with a correct ISO 7064 MOD 11-2 check character.
func ValidORCID(s string) bool {
	if !orcidExactRegex.MatchString(s) {
		return false
	}
	return orcidChecksum(s) == s[len(s)-1]
}

// orcidChecksum computes the expected check character over the first 15
// digits of a hyphenated ORCID iD.
func orcidChecksum(s string) byte {
	total := 0
	digits := 0
	for i := 0; i < len(s) && digits < 15; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			continue
		}
		total = (total + int(c-'0')) * 2
		digits++
	}
	result := (12 - total%11) % 11
	if result == 10 {
		return 'X'
	}
	return byte('0' + result)
}

// ValidEmail reports whether s is a syntactically valid bare email address
// with a dotted domain.
func ValidEmail(s string) bool {
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	at := strings.LastIndex(s, "@")
	if at < 0 {
		return false
	}
	return strings.Contains(s[at+1:], ".")
}
