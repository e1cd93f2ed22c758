package htmlsanitize_test

import (
	"testing"

	"github.com/dalemusser/tendadmin/internal/app/system/htmlsanitize"
)

func TestPlainText_Empty(t *testing.T) {
	if got := htmlsanitize.PlainText(""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestPlainText_Unchanged(t *testing.T) {
	for _, in := range []string{"active", "blocked", "on-hold", "a & b", "it's fine"} {
		if got := htmlsanitize.PlainText(in); got != in {
			t.Errorf("PlainText(%q) = %q, want unchanged", in, got)
		}
	}
}

func TestPlainText_StripsTags(t *testing.T) {
	if got := htmlsanitize.PlainText("<b>vip</b>"); got != "vip" {
		t.Errorf("expected tags stripped, got %q", got)
	}
}

func TestPlainText_RemovesScript(t *testing.T) {
	if got := htmlsanitize.PlainText("<script>alert('xss')</script>active"); got != "active" {
		t.Errorf("expected script removed, got %q", got)
	}
}

func TestPlainTextOrTrimmed(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"active", "active"},
		{"<b>vip</b>", "vip"},
		{"<b></b>", "<b></b>"},
		{"  <script>x</script> ", "<script>x</script>"},
		{"   ", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := htmlsanitize.PlainTextOrTrimmed(tt.in); got != tt.want {
			t.Errorf("PlainTextOrTrimmed(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
