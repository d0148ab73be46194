// Package report renders a reading as a shareable PNG card. Myanmar text
// needs the Padauk font; without it the generator refuses to render rather
// than produce tofu boxes.
package report

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/kyawzl/mahabote-bot/internal/mahabote"
)

const (
	cardWidth  = 1000
	cardHeight = 2650
	marginX    = 60
)

// Brand colors, matching the chat UI header.
var (
	headerColor = color.RGBA{R: 88, G: 28, B: 135, A: 255}
	accentColor = color.RGBA{R: 139, G: 92, B: 246, A: 255}
	textColor   = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	mutedColor  = color.RGBA{R: 110, G: 110, B: 110, A: 255}
)

// Generator renders report cards into outDir.
type Generator struct {
	fontPath string
	boldPath string
	outDir   string
}

func NewGenerator(fontPath, boldPath, outDir string) *Generator {
	return &Generator{fontPath: fontPath, boldPath: boldPath, outDir: outDir}
}

// Generate renders the reading plus forecast and returns the written path.
func (g *Generator) Generate(r *mahabote.Reading, entries []mahabote.ForecastEntry, lang mahabote.Language) (string, error) {
	titleFace, err := g.loadFace(g.boldOrRegular(), 34)
	if err != nil {
		return "", err
	}
	sectionFace, err := g.loadFace(g.boldOrRegular(), 26)
	if err != nil {
		return "", err
	}
	bodyFace, err := g.loadFace(g.fontPath, 20)
	if err != nil {
		return "", err
	}

	dc := gg.NewContext(cardWidth, cardHeight)
	dc.SetColor(color.White)
	dc.Clear()

	// Header band with accent strip, matching the web UI.
	dc.SetColor(headerColor)
	dc.DrawRectangle(0, 0, cardWidth, 140)
	dc.Fill()
	dc.SetColor(accentColor)
	dc.DrawRectangle(0, 140, cardWidth, 10)
	dc.Fill()

	dc.SetFontFace(titleFace)
	dc.SetColor(color.White)
	title := "Su Mon Myint Oo မဟာဘုတ် ဗေဒင် & Tarot"
	if lang == mahabote.LangEnglish {
		title = "Su Mon Myint Oo Mahabote Astrology & Tarot"
	}
	dc.DrawStringAnchored(title, cardWidth/2, 75, 0.5, 0.5)

	y := 210.0

	dc.SetFontFace(sectionFace)
	dc.SetColor(textColor)
	heading := fmt.Sprintf("%s ၏ မဟာဘုတ် ဟောစာတမ်း", r.Name)
	if lang == mahabote.LangEnglish {
		heading = fmt.Sprintf("Mahabote Reading for %s", r.Name)
	}
	dc.DrawString(heading, marginX, y)
	y += 50

	dc.SetFontFace(bodyFace)
	for _, row := range infoRows(r, lang) {
		dc.SetColor(mutedColor)
		dc.DrawString(row[0], marginX, y)
		dc.SetColor(textColor)
		dc.DrawString(row[1], marginX+290, y)
		y += 36
	}
	y += 20

	y = g.section(dc, sectionFace, sectionLabel(lang, "ကိုယ်ရည်ကိုယ်သွေး", "Personality"), y)
	dc.SetFontFace(bodyFace)
	dc.SetColor(textColor)
	personality := r.House.PersonalityMM
	if lang == mahabote.LangEnglish {
		personality = r.House.PersonalityEN
	}
	wrapped := dc.WordWrap(personality, cardWidth-2*marginX)
	for _, line := range wrapped {
		dc.DrawString(line, marginX, y)
		y += 32
	}
	y += 20

	y = g.section(dc, sectionFace, sectionLabel(lang, "အားသာချက်များ", "Strengths"), y)
	dc.SetFontFace(bodyFace)
	dc.SetColor(textColor)
	strengths := r.House.StrengthsMM
	if lang == mahabote.LangEnglish {
		strengths = r.House.StrengthsEN
	}
	for _, s := range strengths {
		dc.DrawString("• "+s, marginX, y)
		y += 34
	}
	y += 20

	y = g.section(dc, sectionFace, sectionLabel(lang, "သတိထားရန်", "Caution"), y)
	dc.SetFontFace(bodyFace)
	dc.SetColor(textColor)
	for _, c := range cautionItems(r, lang) {
		dc.DrawString("• "+c, marginX, y)
		y += 34
	}
	y += 20

	y = g.section(dc, sectionFace, sectionLabel(lang, "ယခုနှစ်ကံကြမ္မာ", "Current Year Fortune"), y)
	dc.SetFontFace(bodyFace)
	dc.SetColor(textColor)
	for _, line := range dc.WordWrap(currentYearText(r, lang), cardWidth-2*marginX) {
		dc.DrawString(line, marginX, y)
		y += 32
	}
	y += 20

	y = g.section(dc, sectionFace, sectionLabel(lang, "၆ လ ဟောစာတမ်း", "6-Month Forecast"), y)
	dc.SetFontFace(bodyFace)
	for _, e := range entries {
		dc.SetColor(accentColor)
		dc.DrawString(e.MonthLabel, marginX, y)
		y += 32
		dc.SetColor(textColor)
		for _, line := range dc.WordWrap("✓ "+e.Do, cardWidth-2*marginX) {
			dc.DrawString(line, marginX+20, y)
			y += 30
		}
		for _, line := range dc.WordWrap("✗ "+e.Dont, cardWidth-2*marginX) {
			dc.DrawString(line, marginX+20, y)
			y += 30
		}
		y += 14
	}

	dc.SetColor(mutedColor)
	dc.DrawStringAnchored(time.Now().Format("2006-01-02"), cardWidth/2, cardHeight-40, 0.5, 0.5)

	if err := os.MkdirAll(g.outDir, 0755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	path := filepath.Join(g.outDir, reportFilename(r.Name))
	if err := dc.SavePNG(path); err != nil {
		return "", fmt.Errorf("save report: %w", err)
	}
	return path, nil
}

func (g *Generator) section(dc *gg.Context, face font.Face, label string, y float64) float64 {
	dc.SetColor(accentColor)
	dc.DrawRectangle(marginX-10, y-30, cardWidth-2*(marginX-10), 44)
	dc.Fill()
	dc.SetFontFace(face)
	dc.SetColor(color.White)
	dc.DrawString(label, marginX, y)
	return y + 50
}

func (g *Generator) boldOrRegular() string {
	if g.boldPath != "" {
		return g.boldPath
	}
	return g.fontPath
}

func (g *Generator) loadFace(path string, size float64) (font.Face, error) {
	if path == "" {
		return nil, fmt.Errorf("myanmar font not configured")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", path, err)
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	}), nil
}

// cautionItems lists the birth house weaknesses for the Caution section.
func cautionItems(r *mahabote.Reading, lang mahabote.Language) []string {
	if lang == mahabote.LangEnglish {
		return r.House.WeaknessesEN
	}
	return r.House.WeaknessesMM
}

// currentYearText is the thet-yauk house personality, the card's read on the
// year now in effect.
func currentYearText(r *mahabote.Reading, lang mahabote.Language) string {
	if lang == mahabote.LangEnglish {
		return r.CurrentHouse.PersonalityEN
	}
	return r.CurrentHouse.PersonalityMM
}

func sectionLabel(lang mahabote.Language, mm, en string) string {
	if lang == mahabote.LangEnglish {
		return en
	}
	return mm
}

func infoRows(r *mahabote.Reading, lang mahabote.Language) [][2]string {
	if lang == mahabote.LangEnglish {
		return [][2]string{
			{"Birth Date", r.BirthDate.Format("2006-01-02")},
			{"Myanmar Era", fmt.Sprintf("%d ME (remainder %d)", r.EraYear, r.YearRemainder)},
			{"Birth Day", fmt.Sprintf("%s (%s)", r.BirthDay.NameEN, r.BirthDay.PlanetEN)},
			{"House", fmt.Sprintf("%s (%s)", r.House.NameEN, r.House.Nature)},
			{"Current Age", fmt.Sprintf("%d years (ME %d)", r.CurrentAge, r.CurrentEraYear)},
			{"Current House", fmt.Sprintf("%s (%s)", r.CurrentHouse.NameEN, r.CurrentHouse.Nature)},
			{"Lucky Direction", r.BirthDay.DirectionEN},
		}
	}
	return [][2]string{
		{"မွေးနေ့", r.BirthDate.Format("2006-01-02")},
		{"မြန်မာသက္ကရာဇ်", fmt.Sprintf("%d (ကြွင်း %d)", r.EraYear, r.YearRemainder)},
		{"မွေးနေ့နံ", fmt.Sprintf("%s (%s)", r.BirthDay.NameMM, r.BirthDay.PlanetMM)},
		{"မဟာဘုတ်အိမ်", fmt.Sprintf("%s (%s)", r.House.NameMM, r.House.NameEN)},
		{"လက်ရှိအသက်", fmt.Sprintf("%d နှစ် (မြန်မာသက္ကရာဇ် %d)", r.CurrentAge, r.CurrentEraYear)},
		{"သက်ရောက်အိမ်", fmt.Sprintf("%s (%s)", r.CurrentHouse.NameMM, r.CurrentHouse.NameEN)},
		{"ကံကောင်းသောဦးတည်ရာ", r.BirthDay.DirectionMM},
	}
}

var unsafeFilename = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

func reportFilename(name string) string {
	slug := unsafeFilename.ReplaceAllString(strings.TrimSpace(name), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "reading"
	}
	return fmt.Sprintf("%s-%d.png", slug, time.Now().Unix())
}
