package site

import (
	"html/template"
	"strings"

	"github.com/rs/zerolog/log"
)

// Hero is the banner at the top of the public page.
type Hero struct {
	Title      string  `json:"title"`
	Subtitle   string  `json:"subtitle"`
	CTA        string  `json:"cta"`
	Image      string  `json:"image"`
	ImagePosX  string  `json:"imagePosX"`
	ImagePosY  string  `json:"imagePosY"`
	ImageScale float64 `json:"imageScale"`
}

// About is the studio presentation.
type About struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Contact lists the studio contact channels.
type Contact struct {
	Instagram string `json:"instagram"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// Theme drives the CSS custom properties of the public page.
type Theme struct {
	Bg            string `json:"bg"`
	BgSoft        string `json:"bgSoft"`
	Ink           string `json:"ink"`
	Muted         string `json:"muted"`
	Accent        string `json:"accent"`
	AccentDark    string `json:"accentDark"`
	Card          string `json:"card"`
	Radius        string `json:"radius"`
	Shadow        string `json:"shadow"`
	HeadingFont   string `json:"headingFont"`
	BodyFont      string `json:"bodyFont"`
	H1Size        string `json:"h1Size"`
	H2Size        string `json:"h2Size"`
	BodySize      string `json:"bodySize"`
	ButtonSize    string `json:"buttonSize"`
	BgImage       string `json:"bgImage"`
	BgPosX        string `json:"bgPosX"`
	BgPosY        string `json:"bgPosY"`
	BgScale       string `json:"bgScale"`
	ShowFrame     bool   `json:"showFrame"`
	ShowAngels    bool   `json:"showAngels"`
	ShowHearts    bool   `json:"showHearts"`
	HeartsOpacity string `json:"heartsOpacity"`
	HeartsCount   int    `json:"heartsCount"`
}

// CSSVar is one custom property of the page root.
type CSSVar struct {
	Name  string
	Value string
}

// Declaration renders "name: value;" for a style element. A value that
// could leave the declaration renders nothing.
func (v CSSVar) Declaration() template.CSS {
	if !safeCSSValue(v.Name) || !safeCSSValue(v.Value) {
		return ""
	}

	return template.CSS(v.Name + ": " + v.Value + ";") //nolint:gosec // both parts checked by safeCSSValue
}

// safeCSSValue rejects values able to end the declaration, the rule or the
// style element they are written into.
func safeCSSValue(v string) bool {
	return !strings.ContainsAny(v, "<>{};\\\n\r\x00") && !strings.Contains(v, "/*")
}

// safeURL rejects image urls that cannot be quoted inside url("...").
func safeURL(v string) bool {
	return safeCSSValue(v) && !strings.ContainsAny(v, `"'()`)
}

// CSSVariables returns the custom properties set on the page root. Stored
// values that fail the safety check are replaced by the default theme value.
func (t Theme) CSSVariables() []CSSVar {
	def := DefaultTheme()

	pick := func(value, fallback string) string {
		if safeCSSValue(value) {
			return value
		}

		log.Warn().Str("value", value).Msg("unsafe theme value replaced by default")

		return fallback
	}

	bgImage := "none"

	switch {
	case t.BgImage == "":
	case safeURL(t.BgImage):
		bgImage = `url("` + t.BgImage + `")`
	default:
		log.Warn().Str("value", t.BgImage).Msg("unsafe theme image replaced by default")

		bgImage = `url("` + def.BgImage + `")`
	}

	return []CSSVar{
		{"--bg", pick(t.Bg, def.Bg)},
		{"--bg-soft", pick(t.BgSoft, def.BgSoft)},
		{"--ink", pick(t.Ink, def.Ink)},
		{"--muted", pick(t.Muted, def.Muted)},
		{"--accent", pick(t.Accent, def.Accent)},
		{"--accent-dark", pick(t.AccentDark, def.AccentDark)},
		{"--card", pick(t.Card, def.Card)},
		{"--radius", pick(t.Radius, def.Radius)},
		{"--shadow", pick(t.Shadow, def.Shadow)},
		{"--heading-font", pick(t.HeadingFont, def.HeadingFont)},
		{"--body-font", pick(t.BodyFont, def.BodyFont)},
		{"--h1-size", pick(t.H1Size, def.H1Size)},
		{"--h2-size", pick(t.H2Size, def.H2Size)},
		{"--body-size", pick(t.BodySize, def.BodySize)},
		{"--button-size", pick(t.ButtonSize, def.ButtonSize)},
		{"--bg-image", bgImage},
		{"--bg-pos-x", pick(t.BgPosX, def.BgPosX)},
		{"--bg-pos-y", pick(t.BgPosY, def.BgPosY)},
		{"--bg-scale", pick(t.BgScale, def.BgScale)},
		{"--hearts-opacity", pick(t.HeartsOpacity, def.HeartsOpacity)},
	}
}

// DefaultHero is shown until a hero document is stored.
func DefaultHero() Hero {
	return Hero{
		Title:      "Talleres creativos con alma artesanal",
		Subtitle:   "Aprende oficios, conoce artistas y crea piezas que cuentan historias.",
		CTA:        "Reservar ahora",
		Image:      "https://images.unsplash.com/photo-1500530855697-b586d89ba3ee?q=80&w=1400&auto=format&fit=crop",
		ImagePosX:  "50%",
		ImagePosY:  "50%",
		ImageScale: 1,
	}
}

// DefaultAbout is shown until an about document is stored.
func DefaultAbout() About {
	return About{
		Title: "Somos Artes y Oficios",
		Text: "Una comunidad de talleres donde la creatividad se vuelve oficio. Diseñamos experiencias " +
			"presenciales con materiales premium, guías expertas y un ritmo cercano.",
	}
}

// DefaultContact is shown until a contact document is stored.
func DefaultContact() Contact {
	return Contact{
		Instagram: "@artes_oficios_",
		Email:     "hola@artesyoficios.mx",
		Phone:     "+52 55 0000 0000",
		Address:   "Ciudad de México",
	}
}

// DefaultTheme is used until a theme document is stored.
func DefaultTheme() Theme {
	return Theme{
		Bg:            "#f7f2ec",
		BgSoft:        "#f1ebe4",
		Ink:           "#1a1a1a",
		Muted:         "#5a544d",
		Accent:        "#d87a4b",
		AccentDark:    "#b85c33",
		Card:          "#ffffff",
		Radius:        "22px",
		Shadow:        "0 12px 30px rgba(17, 16, 15, 0.12)",
		HeadingFont:   `"Playfair Display", serif`,
		BodyFont:      `"Manrope", sans-serif`,
		H1Size:        "30px",
		H2Size:        "26px",
		BodySize:      "16px",
		ButtonSize:    "14px",
		BgImage:       "/uploads/banner-theme.png",
		BgPosX:        "50%",
		BgPosY:        "0%",
		BgScale:       "100%",
		ShowFrame:     true,
		ShowAngels:    true,
		ShowHearts:    true,
		HeartsOpacity: "0.5",
		HeartsCount:   6, //nolint:mnd
	}
}
