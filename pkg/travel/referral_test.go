package travel

import "testing"

func TestReferralLink(t *testing.T) {
	segments := []string{"TR", "TRY", "tr-TR", "SAW", "DLM", "2024-05-01", ""}

	got := ReferralLink(segments, "")
	want := ReferralBaseURL + "TR/TRY/tr-TR/SAW/DLM/2024-05-01"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestReferralLink_APIKeyClipped(t *testing.T) {
	key := "0123456789abcdef0123456789abcdef" // 32 chars
	got := ReferralLink([]string{"TR", "TRY", "tr-TR", "SAW", "DLM", "2024-05-01"}, key)
	want := ReferralBaseURL + "TR/TRY/tr-TR/SAW/DLM/2024-05-01?apiKey=0123456789abcdef"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestReferralLink_ZeroSegmentKept(t *testing.T) {
	got := ReferralLink([]string{"TR", "0", "tr-TR"}, "")
	want := ReferralBaseURL + "TR/0/tr-TR"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestReferralLink_ShortKeyNotPadded(t *testing.T) {
	got := ReferralLink([]string{"GB"}, "shortkey")
	want := ReferralBaseURL + "GB?apiKey=shortkey"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
