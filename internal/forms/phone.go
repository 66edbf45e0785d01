package forms

import (
	"sort"
	"strings"
)

// MaxPhoneDigits is the longest local number accepted by the phone field.
const MaxPhoneDigits = 12

type CountryCode struct {
	Code    string `json:"code"`
	Country string `json:"country"`
}

// Label is the text shown in the code selector, "+593 Ecuador".
func (c CountryCode) Label() string { return c.Code + " " + c.Country }

// PhoneField maps a stored "<code> <digits>" string to its two form inputs and back.
type PhoneField struct {
	codes   []CountryCode
	longest []string // codes ordered longest first for prefix matching
}

func NewPhoneField(codes []CountryCode) *PhoneField {
	longest := make([]string, 0, len(codes))
	for _, c := range codes {
		longest = append(longest, c.Code)
	}
	sort.SliceStable(longest, func(i, j int) bool { return len(longest[i]) > len(longest[j]) })
	return &PhoneField{codes: codes, longest: longest}
}

// DefaultPhoneField uses the full CountryCodes list.
func DefaultPhoneField() *PhoneField { return NewPhoneField(CountryCodes) }

func (f *PhoneField) Codes() []CountryCode { return f.codes }

// Decompose splits a stored value into calling code and number for display.
func (f *PhoneField) Decompose(value string) (code, number string) {
	if value == "" {
		return "", ""
	}
	if i := strings.IndexByte(value, ' '); i >= 0 {
		return value[:i], value[i+1:]
	}
	for _, c := range f.longest {
		if strings.HasPrefix(value, c) {
			return c, value[len(c):]
		}
	}
	return "", value
}

// Compose joins a calling code and the digits of number into the stored form.
func (f *PhoneField) Compose(code, number string) string {
	return strings.TrimSpace(code + " " + digitsOnly(number))
}

// Normalize is Compose(Decompose(value)).
func (f *PhoneField) Normalize(value string) string {
	return f.Compose(f.Decompose(value))
}

// Clean validates the two inputs and returns the value to store.
// A code without any digits stores nothing.
func (f *PhoneField) Clean(code, number string) (string, error) {
	code = strings.TrimSpace(code)
	if code != "" && !f.known(code) {
		return "", &ValidationError{Field: "phone", Message: msgInvalidChoice}
	}
	digits := digitsOnly(number)
	if len(digits) > MaxPhoneDigits {
		return "", &ValidationError{Field: "phone", Message: msgPhoneTooLong}
	}
	if digits == "" {
		return "", nil
	}
	return f.Compose(code, digits), nil
}

func (f *PhoneField) known(code string) bool {
	for _, c := range f.codes {
		if c.Code == code {
			return true
		}
	}
	return false
}

func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
