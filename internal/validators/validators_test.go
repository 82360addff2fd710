package validators

import "testing"

func TestCheckEmail(t *testing.T) {
	testCases := map[string]bool{
		"customer@example.com":      true,
		"first.last+blinds@shop.co": true,
		"not-an-email":              false,
		"":                          false,
		"John <john@example.com>":   false,
		"missing-domain@":           false,
		"  spaced@example.com  ":    true,
	}
	for email, expected := range testCases {
		if got := CheckEmail(email); got != expected {
			t.Errorf("CheckEmail(%q): expected %v, got %v", email, expected, got)
		}
	}
}

func TestCheckURL(t *testing.T) {
	testCases := map[string]bool{
		"https://competitor.example/blinds/42": true,
		"http://shop.example":                  true,
		"ftp://files.example/item":             false,
		"competitor.example/item":              false,
		"not a url":                            false,
		"https://":                             false,
	}
	for raw, expected := range testCases {
		if got := CheckURL(raw); got != expected {
			t.Errorf("CheckURL(%q): expected %v, got %v", raw, expected, got)
		}
	}
}

func TestCheckPhone(t *testing.T) {
	testCases := map[string]bool{
		"":                  true,
		"+1 (555) 010-2030": true,
		"12345":             false,
		"call me maybe":     false,
	}
	for phone, expected := range testCases {
		if got := CheckPhone(phone); got != expected {
			t.Errorf("CheckPhone(%q): expected %v, got %v", phone, expected, got)
		}
	}
}

func TestCheckOrderNumber(t *testing.T) {
	testCases := map[string]bool{
		"BC-100245": true,
		"12345":     true,
		"a":         false,
		"../etc":    false,
		"":          false,
	}
	for number, expected := range testCases {
		if got := CheckOrderNumber(number); got != expected {
			t.Errorf("CheckOrderNumber(%q): expected %v, got %v", number, expected, got)
		}
	}
}
