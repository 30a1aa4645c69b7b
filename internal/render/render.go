// Package render turns a card document into its HTML visual tree.
// Rendering is a pure function of the card's type, field mapping,
// color overlay, width, background, and the editing-mode flag; the
// only time-dependent part is the countdown block, which is computed
// from the clock passed in and kept ticking client-side.
package render

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"regexp"
	"time"

	"github.com/dawati-cards/dawati/internal/card"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Input describes one card to render.
type Input struct {
	Type            string          // wedding, birthday or custom.
	Title           string          // Card display title.
	Fields          json.RawMessage // Stored field document.
	BackgroundImage string          // Optional background image URL.
	Width           int             // Render width in pixels.
	Editing         bool            // Editable blocks emit contenteditable hooks.
	Now             time.Time       // Clock for the countdown block.
	Location        *time.Location  // Zone the event date/time is interpreted in.
}

// Renderer renders card fragments and share pages from the embedded
// template set.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("render: parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// weddingView is the data handed to the wedding template.
type weddingView struct {
	Width           int
	Editing         bool
	BackgroundImage string
	AnimationClass  string
	Monogram        string
	HasLogo         bool
	HasMusic        bool
	Fields          card.WeddingFields
	Colors          map[string]template.CSS
	Countdown       card.Countdown
	CountdownTarget int64 // Unix milliseconds; zero when the date is unparseable.
	MapURL          string
}

// cssColorPattern admits hex, named, and functional color notations.
// Anything else falls back to the slot default so a stored document
// can never smuggle markup into a style attribute.
var cssColorPattern = regexp.MustCompile(`^[#a-zA-Z0-9(),.% -]+$`)

// safeColors resolves the overlay into template-ready CSS values.
func safeColors(overlay card.Theme) map[string]template.CSS {
	resolved := overlay.ResolveAll()
	out := make(map[string]template.CSS, len(resolved))
	for slot, value := range resolved {
		if !cssColorPattern.MatchString(value) {
			value = card.SlotDefault(slot)
		}
		out[slot] = template.CSS(value)
	}
	return out
}

// birthdayView is the data handed to the birthday template.
type birthdayView struct {
	Width           int
	Editing         bool
	BackgroundImage string
	Fields          card.BirthdayFields
}

// Card renders the visual tree for one card.
func (r *Renderer) Card(in Input) (template.HTML, error) {
	if in.Width == 0 {
		in.Width = 400
	}
	if in.Now.IsZero() {
		in.Now = time.Now()
	}
	switch in.Type {
	case "wedding":
		return r.weddingCard(in)
	default:
		return r.birthdayCard(in)
	}
}

func (r *Renderer) weddingCard(in Input) (template.HTML, error) {
	fields, errParse := card.ParseWedding(in.Fields)
	if errParse != nil {
		// A corrupt document still renders; every slot falls back.
		fields = card.WeddingFields{}
	}
	overlay := fields.Colors
	fields = fields.WithRenderDefaults()

	view := weddingView{
		Width:           in.Width,
		Editing:         in.Editing,
		BackgroundImage: in.BackgroundImage,
		AnimationClass:  fields.AnimationClass(),
		Monogram:        fields.Monogram(),
		HasLogo:         fields.Logo != "",
		HasMusic:        fields.BackgroundMusic != "",
		Fields:          fields,
		Colors:          safeColors(overlay),
		MapURL:          fields.MapURL(),
	}
	if target, errTime := card.EventTime(fields.WeddingDate, fields.WeddingTime, in.Location); errTime == nil {
		view.Countdown = card.Until(target, in.Now)
		view.CountdownTarget = target.UnixMilli()
	}

	var buf bytes.Buffer
	if errExec := r.tmpl.ExecuteTemplate(&buf, "card_wedding.tmpl", view); errExec != nil {
		return "", fmt.Errorf("render: wedding card: %w", errExec)
	}
	return template.HTML(buf.String()), nil
}

func (r *Renderer) birthdayCard(in Input) (template.HTML, error) {
	fields, errParse := card.ParseBirthday(in.Fields)
	if errParse != nil {
		fields = card.BirthdayFields{}
	}
	if fields.CelebrantName == "" {
		fields.CelebrantName = card.DefaultBirthdayFields().CelebrantName
	}

	view := birthdayView{
		Width:           in.Width,
		Editing:         in.Editing,
		BackgroundImage: in.BackgroundImage,
		Fields:          fields,
	}
	var buf bytes.Buffer
	if errExec := r.tmpl.ExecuteTemplate(&buf, "card_birthday.tmpl", view); errExec != nil {
		return "", fmt.Errorf("render: birthday card: %w", errExec)
	}
	return template.HTML(buf.String()), nil
}

// SharePageData is the data for the public share page wrapper.
type SharePageData struct {
	Title string
	Width int
	Card  template.HTML
}

// SharePage renders the standalone public viewer page around an
// already rendered card fragment.
func (r *Renderer) SharePage(data SharePageData) ([]byte, error) {
	var buf bytes.Buffer
	if errExec := r.tmpl.ExecuteTemplate(&buf, "share_page.tmpl", data); errExec != nil {
		return nil, fmt.Errorf("render: share page: %w", errExec)
	}
	return buf.Bytes(), nil
}

// ErrorPageData is the data for the share error page.
type ErrorPageData struct {
	Icon    string
	Heading string
	Message string
}

// ErrorPage renders the public viewer failure page with a home action.
func (r *Renderer) ErrorPage(data ErrorPageData) ([]byte, error) {
	var buf bytes.Buffer
	if errExec := r.tmpl.ExecuteTemplate(&buf, "share_error.tmpl", data); errExec != nil {
		return nil, fmt.Errorf("render: error page: %w", errExec)
	}
	return buf.Bytes(), nil
}
