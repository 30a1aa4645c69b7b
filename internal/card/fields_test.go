package card

import (
	"encoding/json"
	"testing"
)

func TestDefaultWeddingMonogram(t *testing.T) {
	f := DefaultWeddingFields()
	if got := f.Monogram(); got != "أ & ف" {
		t.Fatalf("unexpected default monogram: %q", got)
	}
}

func TestMonogramCustomOverride(t *testing.T) {
	f := DefaultWeddingFields()
	f.CustomMonogram = "A ♥ B"
	if got := f.Monogram(); got != "A ♥ B" {
		t.Fatalf("custom monogram ignored: %q", got)
	}
}

func TestMonogramFallbackInitials(t *testing.T) {
	f := WeddingFields{}
	if got := f.Monogram(); got != "ع & ز" {
		t.Fatalf("unexpected fallback monogram: %q", got)
	}
}

func TestWithRenderDefaultsFillsBlanks(t *testing.T) {
	f := WeddingFields{}.WithRenderDefaults()
	if f.EventTitle != DefaultEventTitle {
		t.Fatalf("event title not defaulted: %q", f.EventTitle)
	}
	if f.Venue != DefaultRenderVenue {
		t.Fatalf("venue not defaulted: %q", f.Venue)
	}
	if f.OMTNumber != DefaultOMTNumber || f.WishMoneyUsername != DefaultWishMoneyUsername {
		t.Fatal("payment slots not defaulted")
	}
	if f.AnimationStyle != AnimationGentle {
		t.Fatalf("animation style not defaulted: %q", f.AnimationStyle)
	}
}

func TestWithRenderDefaultsKeepsValues(t *testing.T) {
	f := WeddingFields{EventTitle: "حفل خاص", Venue: "قصرنا"}.WithRenderDefaults()
	if f.EventTitle != "حفل خاص" || f.Venue != "قصرنا" {
		t.Fatal("explicit values were overwritten")
	}
}

func TestParseWeddingIgnoresUnknownKeys(t *testing.T) {
	raw := []byte(`{"groomName":"سامي","legacyKey":123,"colors":{"titleBorder":"#111111"}}`)
	f, errParse := ParseWedding(raw)
	if errParse != nil {
		t.Fatalf("parse: %v", errParse)
	}
	if f.GroomName != "سامي" {
		t.Fatalf("groom name lost: %q", f.GroomName)
	}
	if f.Colors.Resolve(SlotTitleBorder) != "#111111" {
		t.Fatal("colors overlay lost")
	}
}

func TestDefaultFieldsJSONRoundTrip(t *testing.T) {
	data, errDefaults := DefaultFieldsJSON("wedding")
	if errDefaults != nil {
		t.Fatalf("defaults: %v", errDefaults)
	}
	f, errParse := ParseWedding(data)
	if errParse != nil {
		t.Fatalf("parse: %v", errParse)
	}
	if f.GroomName != DefaultGroomName || f.BrideName != DefaultBrideName {
		t.Fatalf("defaults lost in round trip: %+v", f)
	}
	if !f.AnimationsEnabled() {
		t.Fatal("animations should default on")
	}

	bday, errBday := DefaultFieldsJSON("birthday")
	if errBday != nil {
		t.Fatalf("birthday defaults: %v", errBday)
	}
	var bf BirthdayFields
	if errDecode := json.Unmarshal(bday, &bf); errDecode != nil {
		t.Fatalf("decode birthday: %v", errDecode)
	}
	if bf.Age != "25" {
		t.Fatalf("unexpected birthday defaults: %+v", bf)
	}
}

func TestMapURLFallbackCoordinate(t *testing.T) {
	f := WeddingFields{}
	want := "https://www.google.com/maps/search/?api=1&query=24.7136,46.6753"
	if got := f.MapURL(); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	f.Coordinates = "33.8938,35.5018"
	if got := f.MapURL(); got != "https://www.google.com/maps/search/?api=1&query=33.8938,35.5018" {
		t.Fatalf("got %q", got)
	}
}

func TestAnimationClass(t *testing.T) {
	off := false
	cases := []struct {
		fields WeddingFields
		want   string
	}{
		{WeddingFields{}, "gentle-animations"},
		{WeddingFields{AnimationStyle: AnimationFestive}, "festive-animations"},
		{WeddingFields{AnimationStyle: AnimationRomantic}, "romantic-animations"},
		{WeddingFields{AnimationStyle: "unknown"}, "gentle-animations"},
		{WeddingFields{EnableAnimations: &off, AnimationStyle: AnimationElegant}, ""},
	}
	for _, tc := range cases {
		if got := tc.fields.AnimationClass(); got != tc.want {
			t.Fatalf("style %q enabled=%v: got %q want %q", tc.fields.AnimationStyle, tc.fields.EnableAnimations, got, tc.want)
		}
	}
}

func TestSummarizeWedding(t *testing.T) {
	data, _ := DefaultFieldsJSON("wedding")
	s := Summarize("wedding", data)
	if s.Title != DefaultEventTitle || s.Icon != "💍" {
		t.Fatalf("unexpected summary: %+v", s)
	}
	if s.Subtitle != DefaultGroomName+" & "+DefaultBrideName {
		t.Fatalf("unexpected subtitle: %q", s.Subtitle)
	}
}

func TestSummarizeBirthdayEmptyFields(t *testing.T) {
	s := Summarize("birthday", nil)
	if s.Icon != "🎂" || s.Subtitle == "" || s.Date == "" {
		t.Fatalf("unexpected summary: %+v", s)
	}
}
