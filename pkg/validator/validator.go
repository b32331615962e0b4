package validator

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	cpfLength       = 11
	birthDateLength = 10
	minNameLength   = 3
	minBirthYear    = 1900
)

var demoCPFs = map[string]struct{}{
	"12345678901": {},
	"11111111111": {},
	"00000000000": {},
	"12312312312": {},
}

var (
	cpfGroupRegex = regexp.MustCompile(`(\d{3})(\d)`)
	cpfTailRegex  = regexp.MustCompile(`(\d{3})(\d{1,2})$`)
)

// DigitsOnly drops every character that is not an ASCII digit.
func DigitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// ValidateCPF checks the two CPF check digits. Demo numbers are always accepted.
func ValidateCPF(cpf string) bool {
	digits := DigitsOnly(cpf)

	if _, ok := demoCPFs[digits]; ok {
		return true
	}

	if len(digits) != cpfLength {
		return false
	}

	if strings.Count(digits, digits[:1]) == cpfLength {
		return false
	}

	return checkDigit(digits, 9) == int(digits[9]-'0') &&
		checkDigit(digits, 10) == int(digits[10]-'0')
}

// checkDigit computes the verifier for the first n digits.
func checkDigit(digits string, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(digits[i]-'0') * (n + 1 - i)
	}
	d := (sum * 10) % 11
	if d == 10 {
		return 0
	}
	return d
}

// ValidateBirthDate accepts a real DD/MM/YYYY calendar date between 1900 and now.
func ValidateBirthDate(date string, now time.Time) bool {
	if len(date) != birthDateLength {
		return false
	}

	parts := strings.Split(date, "/")
	if len(parts) != 3 || len(parts[0]) != 2 || len(parts[1]) != 2 || len(parts[2]) != 4 {
		return false
	}

	for _, part := range parts {
		if DigitsOnly(part) != part {
			return false
		}
	}

	day, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	year, _ := strconv.Atoi(parts[2])

	if day < 1 || day > 31 || month < 1 || month > 12 {
		return false
	}
	if year < minBirthYear || year > now.Year() {
		return false
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location())
	if t.Day() != day || int(t.Month()) != month || t.Year() != year {
		return false
	}

	return !t.After(now)
}

func ValidateName(name string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(name)) >= minNameLength
}

// FormatCPF applies the progressive 000.000.000-00 mask to whatever digits were typed.
func FormatCPF(cpf string) string {
	digits := DigitsOnly(cpf)
	if len(digits) > cpfLength {
		digits = digits[:cpfLength]
	}

	masked := replaceFirst(cpfGroupRegex, digits, "${1}.${2}")
	masked = replaceFirst(cpfGroupRegex, masked, "${1}.${2}")
	return replaceFirst(cpfTailRegex, masked, "${1}-${2}")
}

// FormatBirthDate applies the progressive DD/MM/YYYY mask.
func FormatBirthDate(date string) string {
	v := DigitsOnly(date)
	if len(v) >= 2 {
		v = v[:2] + "/" + v[2:]
	}
	if len(v) >= 5 {
		end := len(v)
		if end > 9 {
			end = 9
		}
		v = v[:5] + "/" + v[5:end]
	}
	return v
}

func FormatName(name string) string {
	return strings.ToUpper(SanitizeString(name))
}

func SanitizeString(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '<' || r == '>' || r == '&' || r == '"' || r == '\'' || r == '`' || r == ';' {
			return -1
		}
		return r
	}, s)
}

func replaceFirst(re *regexp.Regexp, s, template string) string {
	m := re.FindStringSubmatchIndex(s)
	if m == nil {
		return s
	}
	dst := re.ExpandString(nil, template, s, m)
	return s[:m[0]] + string(dst) + s[m[1]:]
}
