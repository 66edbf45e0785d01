package forms

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhoneFieldDecompose(t *testing.T) {
	f := DefaultPhoneField()

	tests := []struct {
		name       string
		value      string
		wantCode   string
		wantNumber string
	}{
		{"empty", "", "", ""},
		{"split on first space", "+593 0991234567", "+593", "0991234567"},
		{"only first space splits", "+1 555 0100", "+1", "555 0100"},
		{"prefix without space", "+5930991234567", "+593", "0991234567"},
		{"single digit code", "+15550100", "+1", "5550100"},
		{"no known prefix", "0991234567", "", "0991234567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, number := f.Decompose(tt.value)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantNumber, number)
		})
	}
}

func TestPhoneFieldLongestPrefixWins(t *testing.T) {
	f := NewPhoneField([]CountryCode{{Code: "+1"}, {Code: "+123"}})

	code, number := f.Decompose("+1234567")
	assert.Equal(t, "+123", code)
	assert.Equal(t, "4567", number)

	// order of the list must not matter
	f = NewPhoneField([]CountryCode{{Code: "+123"}, {Code: "+1"}})
	code, _ = f.Decompose("+1234567")
	assert.Equal(t, "+123", code)
}

func TestPhoneFieldCompose(t *testing.T) {
	f := DefaultPhoneField()

	tests := []struct {
		name   string
		code   string
		number string
		want   string
	}{
		{"empty input", "", "", ""},
		{"strips non digits", "+593", "(099) 123-4567", "+593 0991234567"},
		{"no code", "", "099 123", "099123"},
		{"code only", "+593", "", "+593"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Compose(tt.code, tt.number))
		})
	}
}

func TestPhoneFieldRoundTrip(t *testing.T) {
	f := DefaultPhoneField()

	values := []string{
		"",
		"+593 0991234567",
		"+593 099-123-4567",
		"+5930991234567",
		"+44 20 7946 0958",
		"0991234567",
		" +1 555.0100 ",
	}
	want := map[string]string{
		"":                  "",
		"+593 0991234567":   "+593 0991234567",
		"+593 099-123-4567": "+593 0991234567",
		"+5930991234567":    "+593 0991234567",
		"+44 20 7946 0958":  "+44 2079460958",
		"0991234567":        "0991234567",
		" +1 555.0100 ":     "15550100",
	}

	for _, v := range values {
		t.Run(v, func(t *testing.T) {
			got := f.Compose(f.Decompose(v))
			assert.Equal(t, want[v], got)
			assert.Equal(t, got, f.Normalize(got), "normalizing twice must be stable")
		})
	}
}

func TestPhoneFieldCleanDigitLimit(t *testing.T) {
	f := DefaultPhoneField()

	got, err := f.Clean("+593", strings.Repeat("9", 12))
	require.NoError(t, err)
	assert.Equal(t, "+593 999999999999", got)

	_, err = f.Clean("+593", strings.Repeat("9", 13))
	require.Error(t, err)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "phone", ve.Field)
	assert.Equal(t, msgPhoneTooLong, ve.Message)

	// separators do not count as digits
	_, err = f.Clean("+593", "099-123-456-789")
	assert.NoError(t, err)
}

func TestPhoneFieldCleanRejectsUnknownCode(t *testing.T) {
	_, err := DefaultPhoneField().Clean("+999", "123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), msgInvalidChoice)
}

func TestPhoneFieldCleanWithoutDigits(t *testing.T) {
	got, err := DefaultPhoneField().Clean("+593", "  ")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCountryCodesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range CountryCodes {
		require.False(t, seen[c.Code], "duplicate code %s", c.Code)
		require.True(t, strings.HasPrefix(c.Code, "+"))
		seen[c.Code] = true
	}
	assert.Equal(t, "+593 Ecuador", CountryCode{Code: "+593", Country: "Ecuador"}.Label())
}
