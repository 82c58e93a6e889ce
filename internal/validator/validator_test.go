package validator

import "testing"

func TestCheckNotBlank(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"value present", "hello", true},
		{"empty string", "", false},
		{"whitespace only", "   \t", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.CheckNotBlank(tt.value, "field", "must be provided")
			if v.IsValid() != tt.valid {
				t.Errorf("IsValid() = %v, want %v", v.IsValid(), tt.valid)
			}
		})
	}
}

func TestCheckEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"someone@example.com", true},
		{"a@b.co", true},
		{"not-an-email", false},
		{"missing@tld", false},
		{"", false},
	}

	for _, tt := range tests {
		v := New()
		v.CheckEmail(tt.email, "must be a valid email address")
		if v.IsValid() != tt.valid {
			t.Errorf("CheckEmail(%q): IsValid() = %v, want %v", tt.email, v.IsValid(), tt.valid)
		}
	}
}

func TestCheckOneOf(t *testing.T) {
	allowed := []string{"technical", "tools", "soft"}

	v := New()
	v.CheckOneOf("tools", "category", allowed, "must be a valid category")
	if !v.IsValid() {
		t.Errorf("expected %q to be accepted", "tools")
	}

	v = New()
	v.CheckOneOf("hardware", "category", allowed, "must be a valid category")
	if v.IsValid() {
		t.Errorf("expected %q to be rejected", "hardware")
	}
	if msg := v.Errors["category"]; msg != "must be a valid category" {
		t.Errorf("Errors[%q] = %q, want %q", "category", msg, "must be a valid category")
	}
}

func TestAddErrorKeepsFirstMessage(t *testing.T) {
	v := New()
	v.AddError("title", "first")
	v.AddError("title", "second")

	if msg := v.Errors["title"]; msg != "first" {
		t.Errorf("Errors[%q] = %q, want %q", "title", msg, "first")
	}
}
