package offers

import (
	"html"
	"html/template"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

var (
	descriptionPolicy = bluemonday.UGCPolicy()
	plainPolicy       = bluemonday.StrictPolicy()
)

// Offer is a job offer as published upstream. ID is the upstream identifier.
type Offer struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Company      string     `json:"company"`
	Location     string     `json:"location"`
	ContractType string     `json:"contract_type"`
	RomeCode     string     `json:"rome_code"`
	RomeLabel    string     `json:"rome_label"`
	URL          string     `json:"url"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// SafeDescription returns the description with unsafe markup removed.
// Plain-text descriptions keep their line breaks.
func (o Offer) SafeDescription() template.HTML {
	desc := o.Description
	if !strings.Contains(desc, "<") {
		desc = strings.ReplaceAll(template.HTMLEscapeString(desc), "\n", "<br>")
	}
	return template.HTML(descriptionPolicy.Sanitize(desc))
}

// Excerpt returns the description as plain text, cut to at most n runes.
func (o Offer) Excerpt(n int) string {
	text := strings.Join(strings.Fields(stripMarkup(o.Description)), " ")
	if utf8.RuneCountInString(text) <= n {
		return text
	}
	runes := []rune(text)
	return strings.TrimSpace(string(runes[:n])) + "…"
}

// PlainText returns the title and description with all markup removed.
func (o Offer) PlainText() string {
	return stripMarkup(o.Title + " " + o.Description)
}

func stripMarkup(s string) string {
	return html.UnescapeString(plainPolicy.Sanitize(s))
}

// Validate checks the fields required to store an offer.
func (o Offer) Validate() error {
	if err := ValidateID(o.ID); err != nil {
		return err
	}
	if strings.TrimSpace(o.Title) == "" {
		return ErrInvalidOffer
	}
	return nil
}

// ValidateID checks that id looks like an upstream offer identifier:
// 1 to 32 ASCII letters, digits, '-' or '_'.
func ValidateID(id string) error {
	if id == "" || len(id) > 32 {
		return ErrInvalidID
	}
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return ErrInvalidID
		}
	}
	return nil
}
