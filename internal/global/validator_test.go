package global

import (
	"testing"
)

type xssSubject struct {
	Content string `validate:"no_xss"`
}

type passwordSubject struct {
	Password string `validate:"strong_password"`
}

func TestNoXSS(t *testing.T) {
	InitValidator()

	ok := []string{
		"Plain announcement text",
		"Donations fund our health camps & school kits",
		"Visit https://example.org for details",
	}
	for _, content := range ok {
		if err := Validate.Struct(xssSubject{Content: content}); err != nil {
			t.Errorf("%q rejected: %v", content, err)
		}
	}

	bad := []string{
		"<script>alert(1)</script>",
		"<SCRIPT src=x>",
		"javascript:alert(1)",
		"<img src=x onerror=alert(1)>",
		"<iframe src=evil>",
		"eval(payload)",
	}
	for _, content := range bad {
		if err := Validate.Struct(xssSubject{Content: content}); err == nil {
			t.Errorf("%q accepted", content)
		}
	}
}

func TestStrongPassword(t *testing.T) {
	InitValidator()

	ok := []string{
		"Abcdef12",
		"changeMe123",
		"all-lower-1234",
		"NOUPPER?no1",
	}
	for _, password := range ok {
		if err := Validate.Struct(passwordSubject{Password: password}); err != nil {
			t.Errorf("%q rejected: %v", password, err)
		}
	}

	bad := []string{
		"short1A",      // under 8 chars
		"alllowercase", // one class
		"12345678",     // one class
		"abcdefgh1",    // two classes
	}
	for _, password := range bad {
		if err := Validate.Struct(passwordSubject{Password: password}); err == nil {
			t.Errorf("%q accepted", password)
		}
	}
}
