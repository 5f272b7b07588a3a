package domain

import (
	"testing"

	"jumpscared-api/core/errors"
)

func TestURLValidator_Validate(t *testing.T) {
	validator := NewURLValidator("wheresthejump.com")

	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "valid content page", raw: "https://wheresthejump.com/jump-scares-in-the-conjuring-2013/"},
		{name: "host is case-insensitive", raw: "https://WheresTheJump.com/jump-scares-in-it-2017/"},
		{name: "surrounding whitespace", raw: "  https://wheresthejump.com/jump-scares-in-x/  "},
		{name: "empty", raw: "", wantErr: true},
		{name: "relative path", raw: "/jump-scares-in-x/", wantErr: true},
		{name: "plain http", raw: "http://wheresthejump.com/jump-scares-in-x/", wantErr: true},
		{name: "other scheme", raw: "ftp://wheresthejump.com/jump-scares-in-x/", wantErr: true},
		{name: "different host", raw: "https://evil.example.com/jump-scares-in-x", wantErr: true},
		{name: "subdomain", raw: "https://evil.wheresthejump.com/jump-scares-in-x/", wantErr: true},
		{name: "suffix look-alike", raw: "https://notwheresthejump.com/jump-scares-in-x/", wantErr: true},
		{name: "host as userinfo", raw: "https://wheresthejump.com@evil.example.com/x", wantErr: true},
		{name: "userinfo on real host", raw: "https://user@wheresthejump.com/x", wantErr: true},
		{name: "explicit port", raw: "https://wheresthejump.com:8443/x", wantErr: true},
		{name: "unparseable", raw: "https://wheresthejump.com/%zz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validator.Validate(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Validate(%q) = %v, want error", tt.raw, got)
				}
				if !errors.IsValidation(err) {
					t.Errorf("Validate(%q) error = %T, want ValidationError", tt.raw, err)
				}
				if !got.IsZero() {
					t.Error("rejected URL should be the zero CanonicalURL")
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate(%q) returned error: %v", tt.raw, err)
			}
			if got.IsZero() {
				t.Error("accepted URL should not be zero")
			}
		})
	}
}

func TestCanonicalURL_NormalizesHost(t *testing.T) {
	validator := NewURLValidator("wheresthejump.com")

	got, err := validator.Validate("HTTPS://WheresTheJump.com/jump-scares-in-it-2017/")
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if got.String() != "https://wheresthejump.com/jump-scares-in-it-2017/" {
		t.Errorf("String() = %v", got.String())
	}
}

func TestCanonicalURL_Slug(t *testing.T) {
	validator := NewURLValidator("wheresthejump.com")

	tests := []struct {
		raw    string
		slug   string
		wantOK bool
	}{
		{raw: "https://wheresthejump.com/jump-scares-in-it-2017/", slug: "jump-scares-in-it-2017", wantOK: true},
		{raw: "https://wheresthejump.com/jump-scares-in-it-2017", slug: "jump-scares-in-it-2017", wantOK: true},
		{raw: "https://wheresthejump.com/a/b//", slug: "b", wantOK: true},
		{raw: "https://wheresthejump.com/", wantOK: false},
		{raw: "https://wheresthejump.com", wantOK: false},
	}

	for _, tt := range tests {
		u, err := validator.Validate(tt.raw)
		if err != nil {
			t.Fatalf("Validate(%q) returned error: %v", tt.raw, err)
		}
		slug, ok := u.Slug()
		if ok != tt.wantOK || slug != tt.slug {
			t.Errorf("Slug(%q) = (%q, %v), want (%q, %v)", tt.raw, slug, ok, tt.slug, tt.wantOK)
		}
	}
}

func TestCanonicalURL_ZeroValue(t *testing.T) {
	var zero CanonicalURL
	if zero.String() != "" {
		t.Error("zero CanonicalURL should serialize to empty string")
	}
	if _, ok := zero.Slug(); ok {
		t.Error("zero CanonicalURL should have no slug")
	}
}
