package Records

import "regexp"

var phonePattern = regexp.MustCompile(`^(078|079)\d{7}$`)

// IsValidPhone reports whether s is a 10 digit number starting with 078 or 079.
func IsValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// IsTenDigitPhone reports whether s consists of exactly 10 ASCII digits, with
// no prefix requirement.
func IsTenDigitPhone(s string) bool {
	if len(s) != 10 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
