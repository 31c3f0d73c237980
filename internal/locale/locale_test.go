package locale

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"sw", Swahili, true},
		{"SW", Swahili, true},
		{"sw-KE", Swahili, true},
		{"Kiswahili", Swahili, true},
		{"en-GB", English, true},
		{"english", English, true},
		{"", English, false},
		{"fr", English, false},
		{"not a tag!", English, false},
	}

	for _, tc := range cases {
		got, ok := Normalize(tc.in)
		if got != tc.want || ok != tc.wantOK {
			t.Fatalf("Normalize(%q) = %q, %v, want %q, %v", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestTranslate(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"single word", "job", "kazi"},
		{"capitalized", "Driver needed", "Dereva needed"},
		{"case-insensitive", "FARM", "Shamba"},
		{"phrase beats words", "Farm Worker in Nakuru", "Mfanyakazi wa shamba in Nakuru"},
		{"whole words only", "farmhouse jobless", "farmhouse jobless"},
		{"punctuation boundaries", "salary: 500/day.", "mshahara: 500/siku."},
		{"no double substitution", "work and jobs", "kazi na kazi"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Translate(tc.in, "sw"); got != tc.want {
				t.Fatalf("Translate(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestTranslateUnchanged(t *testing.T) {
	text := "Farm Worker"
	for _, target := range []string{"en", "fr", "", "en-US"} {
		if got := Translate(text, target); got != text {
			t.Fatalf("Translate(%q, %q) = %q, want unchanged", text, target, got)
		}
	}
	if got := Translate("", "sw"); got != "" {
		t.Fatalf("Translate(empty) = %q", got)
	}
}

func TestMessage(t *testing.T) {
	if got := Message("sw", "jobs.match", 3); got != "Kazi 3 zinalingana na ujuzi wako" {
		t.Fatalf("Message(sw) = %q", got)
	}
	if got := Message("en", "jobs.match", 3); got != "3 jobs match your skills" {
		t.Fatalf("Message(en) = %q", got)
	}
	if got := Message("fr", "apply.already"); got != "You have already applied for this job." {
		t.Fatalf("Message(fr) = %q, want English fallback", got)
	}
	if got := Message("sw", "missing.key"); got != "missing.key" {
		t.Fatalf("Message(missing) = %q, want key", got)
	}
}

func TestCataloguesAreComplete(t *testing.T) {
	for key := range messages[English] {
		if _, ok := messages[Swahili][key]; !ok {
			t.Fatalf("Swahili catalogue is missing %q", key)
		}
	}
	if !Has("apply.already") || Has("nope") {
		t.Fatalf("Has() returned unexpected results")
	}
}
