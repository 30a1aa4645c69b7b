package card

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Default placeholder values for the wedding template.
const (
	DefaultEventTitle = "دعوة زفاف"
	DefaultQuranVerse = "وَمِنْ آيَاتِهِ أَنْ خَلَقَ لَكُم مِّنْ أَنفُسِكُمْ أَزْوَاجًا لِّتَسْكُنُوا إِلَيْهَا وَجَعَلَ بَيْنَكُم مَّوَدَّةً وَرَحْمَةً ۚ إِنَّ فِي ذَٰلِكَ لَآيَاتٍ لِّقَوْمٍ يَتَفَكَّرُونَ"
	DefaultDescription = "بكل حب وتقدير، نتشرف بدعوتكم لحضور حفل زفافنا المبارك، ونسأل الله أن يجمعنا على خير في هذه المناسبة السعيدة"

	DefaultGroomName   = "أحمد محمد"
	DefaultBrideName   = "فاطمة علي"
	DefaultGroomFather = "محمد أحمد"
	DefaultBrideFather = "علي حسن"

	DefaultWeddingDate = "2025-06-15"
	DefaultWeddingTime = "20:00"
	DefaultWeddingDay  = "يوم السبت"

	DefaultVenue       = "قاعة الاحتفالات الكبرى"
	DefaultRenderVenue = "قاعة الاحتفالات"
	DefaultLocation    = "الرياض، المملكة العربية السعودية"
	DefaultCoordinates = "24.7136,46.6753"

	DefaultOMTNumber         = "Acc# 03221097"
	DefaultWishMoneyUsername = "@username"
)

// Render-time name placeholders shown when a party name is blank.
const (
	placeholderGroomName = "اسم العريس"
	placeholderBrideName = "اسم العروس"
	placeholderGroomDad  = "والد العريس"
	placeholderBrideDad  = "والد العروس"

	fallbackGroomInitial = "ع"
	fallbackBrideInitial = "ز"
)

// Animation styles selectable in the editor.
const (
	AnimationGentle   = "gentle"
	AnimationElegant  = "elegant"
	AnimationFestive  = "festive"
	AnimationRomantic = "romantic"
)

// WeddingFields is the typed field record for the wedding template.
// Every member is optional in the stored document; zero values defer
// to the render-time defaults.
type WeddingFields struct {
	Logo               string `json:"logo,omitempty"`
	CustomMonogram     string `json:"customMonogram,omitempty"`
	EventTitle         string `json:"eventTitle,omitempty"`
	QuranVerse         string `json:"quranVerse,omitempty"`
	DescriptionMessage string `json:"descriptionMessage,omitempty"`

	GroomName   string `json:"groomName,omitempty"`
	BrideName   string `json:"brideName,omitempty"`
	GroomFather string `json:"groomFather,omitempty"`
	BrideFather string `json:"brideFather,omitempty"`

	WeddingDate string `json:"weddingDate,omitempty"`
	WeddingTime string `json:"weddingTime,omitempty"`
	WeddingDay  string `json:"weddingDay,omitempty"`

	Venue       string `json:"venue,omitempty"`
	Location    string `json:"location,omitempty"`
	Coordinates string `json:"coordinates,omitempty"`

	OMTNumber         string `json:"omtNumber,omitempty"`
	WishMoneyUsername string `json:"wishMoneyUsername,omitempty"`

	BackgroundMusic string `json:"backgroundMusic,omitempty"`
	MusicFileName   string `json:"musicFileName,omitempty"`

	EnableAnimations *bool  `json:"enableAnimations,omitempty"`
	AnimationStyle   string `json:"animationStyle,omitempty"`

	Colors Theme `json:"colors,omitempty"`
}

// BirthdayFields is the typed field record for the birthday template.
type BirthdayFields struct {
	CelebrantName  string `json:"celebrantName,omitempty"`
	BirthdayDate   string `json:"birthdayDate,omitempty"`
	BirthdayTime   string `json:"birthdayTime,omitempty"`
	Venue          string `json:"venue,omitempty"`
	Location       string `json:"location,omitempty"`
	Age            string `json:"age,omitempty"`
	PhoneNumber    string `json:"phoneNumber,omitempty"`
	AdditionalInfo string `json:"additionalInfo,omitempty"`
}

// DefaultWeddingFields seeds a new wedding card.
func DefaultWeddingFields() WeddingFields {
	enabled := true
	return WeddingFields{
		EventTitle:         DefaultEventTitle,
		QuranVerse:         DefaultQuranVerse,
		DescriptionMessage: DefaultDescription,
		GroomName:          DefaultGroomName,
		BrideName:          DefaultBrideName,
		GroomFather:        DefaultGroomFather,
		BrideFather:        DefaultBrideFather,
		WeddingDate:        DefaultWeddingDate,
		WeddingTime:        DefaultWeddingTime,
		WeddingDay:         DefaultWeddingDay,
		Venue:              DefaultVenue,
		Location:           DefaultLocation,
		Coordinates:        DefaultCoordinates,
		OMTNumber:          DefaultOMTNumber,
		WishMoneyUsername:  DefaultWishMoneyUsername,
		EnableAnimations:   &enabled,
		AnimationStyle:     AnimationGentle,
		Colors: Theme{
			SlotTitleBackground:     "#ffffff",
			SlotTitleBorder:         "#d4af37",
			SlotQuranBackground:     "#ffffff",
			SlotQuranBorder:         "#d4af37",
			SlotLogoBackground:      "#d4af37",
			SlotLogoBorder:          "#f4e4bc",
			SlotOMTBackground:       "#ffffff",
			SlotOMTBorder:           "#d4af37",
			SlotWishMoneyBackground: "#ffffff",
			SlotWishMoneyBorder:     "#d4af37",
			SlotAccentColor:         "#d4af37",
			SlotSecondaryAccent:     "#f4e4bc",
		},
	}
}

// DefaultBirthdayFields seeds a new birthday card.
func DefaultBirthdayFields() BirthdayFields {
	return BirthdayFields{
		CelebrantName:  "اسم المحتفل به",
		BirthdayDate:   "2025-01-01",
		BirthdayTime:   "18:00",
		Venue:          "مكان الاحتفال",
		Location:       DefaultLocation,
		Age:            "25",
		PhoneNumber:    "+966xxxxxxxxx",
		AdditionalInfo: "تفاصيل إضافية",
	}
}

// DefaultFieldsJSON returns the seed field document for a card type.
func DefaultFieldsJSON(cardType string) ([]byte, error) {
	switch cardType {
	case "wedding":
		return json.Marshal(DefaultWeddingFields())
	case "birthday":
		return json.Marshal(DefaultBirthdayFields())
	default:
		return []byte("{}"), nil
	}
}

// ParseWedding decodes a stored field document into the wedding record.
// Unknown keys are ignored so older documents keep loading.
func ParseWedding(data []byte) (WeddingFields, error) {
	var f WeddingFields
	if len(data) == 0 {
		return f, nil
	}
	if err := json.Unmarshal(data, &f); err != nil {
		return WeddingFields{}, fmt.Errorf("card: decode wedding fields: %w", err)
	}
	return f, nil
}

// ParseBirthday decodes a stored field document into the birthday record.
func ParseBirthday(data []byte) (BirthdayFields, error) {
	var f BirthdayFields
	if len(data) == 0 {
		return f, nil
	}
	if err := json.Unmarshal(data, &f); err != nil {
		return BirthdayFields{}, fmt.Errorf("card: decode birthday fields: %w", err)
	}
	return f, nil
}

// WithRenderDefaults fills every blank display field with its
// render-time fallback so no block renders empty.
func (f WeddingFields) WithRenderDefaults() WeddingFields {
	orDefault := func(v, def string) string {
		if strings.TrimSpace(v) == "" {
			return def
		}
		return v
	}
	f.EventTitle = orDefault(f.EventTitle, DefaultEventTitle)
	f.QuranVerse = orDefault(f.QuranVerse, DefaultQuranVerse)
	f.DescriptionMessage = orDefault(f.DescriptionMessage, DefaultDescription)
	f.GroomName = orDefault(f.GroomName, placeholderGroomName)
	f.BrideName = orDefault(f.BrideName, placeholderBrideName)
	f.GroomFather = orDefault(f.GroomFather, placeholderGroomDad)
	f.BrideFather = orDefault(f.BrideFather, placeholderBrideDad)
	f.WeddingDate = orDefault(f.WeddingDate, DefaultWeddingDate)
	f.WeddingTime = orDefault(f.WeddingTime, DefaultWeddingTime)
	f.WeddingDay = orDefault(f.WeddingDay, DefaultWeddingDay)
	f.Venue = orDefault(f.Venue, DefaultRenderVenue)
	f.Location = orDefault(f.Location, DefaultLocation)
	f.Coordinates = orDefault(f.Coordinates, DefaultCoordinates)
	f.OMTNumber = orDefault(f.OMTNumber, DefaultOMTNumber)
	f.WishMoneyUsername = orDefault(f.WishMoneyUsername, DefaultWishMoneyUsername)
	if f.AnimationStyle == "" {
		f.AnimationStyle = AnimationGentle
	}
	return f
}

// Monogram returns the monogram to display: the explicit custom value
// when set, else the first letter of each party name joined as "x & y".
func (f WeddingFields) Monogram() string {
	if m := strings.TrimSpace(f.CustomMonogram); m != "" {
		return m
	}
	return firstRune(f.GroomName, fallbackGroomInitial) + " & " + firstRune(f.BrideName, fallbackBrideInitial)
}

func firstRune(s, fallback string) string {
	s = strings.TrimSpace(s)
	for _, r := range s {
		return string(r)
	}
	return fallback
}

// AnimationsEnabled reports whether animations are on; the editor
// treats every value except explicit false as on.
func (f WeddingFields) AnimationsEnabled() bool {
	return f.EnableAnimations == nil || *f.EnableAnimations
}

// AnimationClass maps the animation style to its CSS class hook.
func (f WeddingFields) AnimationClass() string {
	if !f.AnimationsEnabled() {
		return ""
	}
	switch f.AnimationStyle {
	case AnimationElegant:
		return "elegant-animations"
	case AnimationFestive:
		return "festive-animations"
	case AnimationRomantic:
		return "romantic-animations"
	default:
		return "gentle-animations"
	}
}

// MapURL builds the external map link for the venue coordinates,
// falling back to the fixed default coordinate.
func (f WeddingFields) MapURL() string {
	coords := strings.TrimSpace(f.Coordinates)
	if coords == "" {
		coords = DefaultCoordinates
	}
	return "https://www.google.com/maps/search/?api=1&query=" + coords
}
