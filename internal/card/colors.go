package card

// Theme is a partial color overlay keyed by slot name. Keys absent
// from the overlay resolve to the per-slot defaults at render time.
type Theme map[string]string

// Color slot names used by the wedding template.
const (
	SlotTitleBackground     = "titleBackground"
	SlotTitleBorder         = "titleBorder"
	SlotQuranBackground     = "quranBackground"
	SlotQuranBorder         = "quranBorder"
	SlotLogoBackground      = "logoBackground"
	SlotLogoBorder          = "logoBorder"
	SlotOMTBackground       = "omtBackground"
	SlotOMTBorder           = "omtBorder"
	SlotWishMoneyBackground = "wishMoneyBackground"
	SlotWishMoneyBorder     = "wishMoneyBorder"
	SlotEventBackground     = "eventBackground"
	SlotEventBorder         = "eventBorder"
	SlotGiftsBackground     = "giftsBackground"
	SlotGiftsBorder         = "giftsBorder"
	SlotDateBgStart         = "dateBgStart"
	SlotDateBgEnd           = "dateBgEnd"
	SlotDateBorder          = "dateBorder"
	SlotWeddingDateColor    = "weddingDateColor"
	SlotCountdownNumbers    = "countdownNumbers"
	SlotCountdownLabels     = "countdownLabels"
	SlotAccentColor         = "accentColor"
	SlotSecondaryAccent     = "secondaryAccent"
)

// slotDefaults are the hard-coded fallback colors used when a slot is
// absent from a card's overlay.
var slotDefaults = Theme{
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
	SlotEventBackground:     "#ffffff",
	SlotEventBorder:         "#d4af37",
	SlotGiftsBackground:     "#ffffff",
	SlotGiftsBorder:         "#d4af37",
	SlotDateBgStart:         "#d4af37",
	SlotDateBgEnd:           "#f4e4bc",
	SlotDateBorder:          "rgba(255,255,255,0.3)",
	SlotWeddingDateColor:    "#ffffff",
	SlotCountdownNumbers:    "#ffffff",
	SlotCountdownLabels:     "#ffffff",
	SlotAccentColor:         "#d4af37",
	SlotSecondaryAccent:     "#f4e4bc",
}

// SlotNames returns every known color slot name.
func SlotNames() []string {
	names := make([]string, 0, len(slotDefaults))
	for name := range slotDefaults {
		names = append(names, name)
	}
	return names
}

// SlotDefault returns the fallback color for a slot, or "" for an
// unknown slot.
func SlotDefault(slot string) string {
	return slotDefaults[slot]
}

// Resolve returns the effective color for a slot: the overlay value
// when present and non-empty, else the slot default.
func (t Theme) Resolve(slot string) string {
	if t != nil {
		if v, ok := t[slot]; ok && v != "" {
			return v
		}
	}
	return slotDefaults[slot]
}

// ResolveAll returns a complete theme with every known slot filled.
func (t Theme) ResolveAll() Theme {
	out := make(Theme, len(slotDefaults))
	for slot := range slotDefaults {
		out[slot] = t.Resolve(slot)
	}
	return out
}

// Clone returns an independent copy of the theme.
func (t Theme) Clone() Theme {
	out := make(Theme, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// Preset is a named full color theme.
type Preset struct {
	Name   string `json:"name"`
	Colors Theme  `json:"colors"`
}

// Presets lists the five fixed color presets. Applying one replaces a
// card's entire overlay; prior per-slot customization is discarded.
var Presets = []Preset{
	{
		Name: "Classic Gold",
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
			SlotEventBackground:     "#ffffff",
			SlotEventBorder:         "#d4af37",
			SlotGiftsBackground:     "#ffffff",
			SlotGiftsBorder:         "#d4af37",
			SlotDateBgStart:         "#d4af37",
			SlotDateBgEnd:           "#f4e4bc",
			SlotDateBorder:          "rgba(255,255,255,0.3)",
			SlotWeddingDateColor:    "#ffffff",
			SlotCountdownNumbers:    "#ffffff",
			SlotCountdownLabels:     "#ffffff",
			SlotAccentColor:         "#d4af37",
			SlotSecondaryAccent:     "#f4e4bc",
		},
	},
	{
		Name: "Royal Purple",
		Colors: Theme{
			SlotTitleBackground:     "#f8f6ff",
			SlotTitleBorder:         "#7c3aed",
			SlotQuranBackground:     "#faf5ff",
			SlotQuranBorder:         "#8b5cf6",
			SlotLogoBackground:      "#7c3aed",
			SlotLogoBorder:          "#a78bfa",
			SlotOMTBackground:       "#f3f4f6",
			SlotOMTBorder:           "#7c3aed",
			SlotWishMoneyBackground: "#f3f4f6",
			SlotWishMoneyBorder:     "#7c3aed",
			SlotEventBackground:     "#f3f4f6",
			SlotEventBorder:         "#7c3aed",
			SlotGiftsBackground:     "#f3f4f6",
			SlotGiftsBorder:         "#7c3aed",
			SlotDateBgStart:         "#7c3aed",
			SlotDateBgEnd:           "#a78bfa",
			SlotDateBorder:          "rgba(255,255,255,0.3)",
			SlotWeddingDateColor:    "#ffffff",
			SlotCountdownNumbers:    "#ffffff",
			SlotCountdownLabels:     "#ffffff",
			SlotAccentColor:         "#7c3aed",
			SlotSecondaryAccent:     "#a78bfa",
		},
	},
	{
		Name: "Rose Gold",
		Colors: Theme{
			SlotTitleBackground:     "#fdf2f8",
			SlotTitleBorder:         "#e11d48",
			SlotQuranBackground:     "#fff1f2",
			SlotQuranBorder:         "#f43f5e",
			SlotLogoBackground:      "#e11d48",
			SlotLogoBorder:          "#fb7185",
			SlotOMTBackground:       "#f9fafb",
			SlotOMTBorder:           "#e11d48",
			SlotWishMoneyBackground: "#f9fafb",
			SlotWishMoneyBorder:     "#e11d48",
			SlotEventBackground:     "#f9fafb",
			SlotEventBorder:         "#e11d48",
			SlotGiftsBackground:     "#f9fafb",
			SlotGiftsBorder:         "#e11d48",
			SlotDateBgStart:         "#e11d48",
			SlotDateBgEnd:           "#fb7185",
			SlotDateBorder:          "rgba(255,255,255,0.3)",
			SlotWeddingDateColor:    "#ffffff",
			SlotCountdownNumbers:    "#ffffff",
			SlotCountdownLabels:     "#ffffff",
			SlotAccentColor:         "#e11d48",
			SlotSecondaryAccent:     "#fb7185",
		},
	},
	{
		Name: "Emerald Green",
		Colors: Theme{
			SlotTitleBackground:     "#f0fdf4",
			SlotTitleBorder:         "#059669",
			SlotQuranBackground:     "#ecfdf5",
			SlotQuranBorder:         "#10b981",
			SlotLogoBackground:      "#059669",
			SlotLogoBorder:          "#34d399",
			SlotOMTBackground:       "#f9fafb",
			SlotOMTBorder:           "#059669",
			SlotWishMoneyBackground: "#f9fafb",
			SlotWishMoneyBorder:     "#059669",
			SlotEventBackground:     "#f9fafb",
			SlotEventBorder:         "#059669",
			SlotGiftsBackground:     "#f9fafb",
			SlotGiftsBorder:         "#059669",
			SlotDateBgStart:         "#059669",
			SlotDateBgEnd:           "#34d399",
			SlotDateBorder:          "rgba(255,255,255,0.3)",
			SlotWeddingDateColor:    "#ffffff",
			SlotCountdownNumbers:    "#ffffff",
			SlotCountdownLabels:     "#ffffff",
			SlotAccentColor:         "#059669",
			SlotSecondaryAccent:     "#34d399",
		},
	},
	{
		Name: "Ocean Blue",
		Colors: Theme{
			SlotTitleBackground:     "#eff6ff",
			SlotTitleBorder:         "#2563eb",
			SlotQuranBackground:     "#f0f9ff",
			SlotQuranBorder:         "#3b82f6",
			SlotLogoBackground:      "#2563eb",
			SlotLogoBorder:          "#60a5fa",
			SlotOMTBackground:       "#f8fafc",
			SlotOMTBorder:           "#2563eb",
			SlotWishMoneyBackground: "#f8fafc",
			SlotWishMoneyBorder:     "#2563eb",
			SlotEventBackground:     "#f8fafc",
			SlotEventBorder:         "#2563eb",
			SlotGiftsBackground:     "#f8fafc",
			SlotGiftsBorder:         "#2563eb",
			SlotDateBgStart:         "#2563eb",
			SlotDateBgEnd:           "#60a5fa",
			SlotDateBorder:          "rgba(255,255,255,0.3)",
			SlotWeddingDateColor:    "#ffffff",
			SlotCountdownNumbers:    "#ffffff",
			SlotCountdownLabels:     "#ffffff",
			SlotAccentColor:         "#2563eb",
			SlotSecondaryAccent:     "#60a5fa",
		},
	},
}

// PresetByName returns the preset matching name.
func PresetByName(name string) (Preset, bool) {
	for _, p := range Presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
