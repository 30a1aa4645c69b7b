package card

import "encoding/json"

// Summary is the compact preview of a card shown in the dashboard list.
type Summary struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Date     string `json:"date"`
	Icon     string `json:"icon"`
}

// Summarize builds the list preview for a card from its type and
// stored field document. Blank fields fall back the same way the
// renderer does.
func Summarize(cardType string, fields json.RawMessage) Summary {
	if cardType == "wedding" {
		f, errParse := ParseWedding(fields)
		if errParse != nil {
			f = WeddingFields{}
		}
		f = f.WithRenderDefaults()
		return Summary{
			Title:    f.EventTitle,
			Subtitle: f.GroomName + " & " + f.BrideName,
			Date:     f.WeddingDate,
			Icon:     "💍",
		}
	}

	f, errParse := ParseBirthday(fields)
	if errParse != nil {
		f = BirthdayFields{}
	}
	celebrant := f.CelebrantName
	if celebrant == "" {
		celebrant = "المحتفل به"
	}
	date := f.BirthdayDate
	if date == "" {
		date = "2025-01-01"
	}
	return Summary{
		Title:    "دعوة عيد ميلاد",
		Subtitle: celebrant,
		Date:     date,
		Icon:     "🎂",
	}
}
