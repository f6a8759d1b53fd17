// Package content holds the fixed copy of the Last Look Events site: service
// tiers, process steps, service areas, FAQ entries and contact details.
//
// Every record is a plain value. Default returns a fresh Catalog on each
// call, so nothing a caller does to its copy leaks into another render.
package content

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// TierID identifies a service package.
type TierID string

const (
	TierFreshStart TierID = "fresh-start"
	TierKeepsake   TierID = "keepsake"
	TierAfterglow  TierID = "afterglow"
)

// ServiceTier is a named cleanup package offered at a starting price.
type ServiceTier struct {
	ID            TierID   `yaml:"id" validate:"required,oneof=fresh-start keepsake afterglow"`
	Name          string   `yaml:"name" validate:"required"`
	Icon          string   `yaml:"icon" validate:"required"`
	StartingPrice int      `yaml:"starting_price" validate:"gt=0"`
	Bullets       []string `yaml:"bullets" validate:"min=1,dive,required"`
	Highlight     bool     `yaml:"highlight,omitempty"`
}

var priceLabels = message.NewPrinter(language.AmericanEnglish)

// PriceLabel renders the starting price the way it is shown on the card,
// e.g. "Starting at $1,200".
func (t ServiceTier) PriceLabel() string {
	return priceLabels.Sprintf("Starting at $%d", t.StartingPrice)
}

// ProcessStep is one stage of the booking workflow. IDs are 1-based and
// shown as the step badge.
type ProcessStep struct {
	ID    int    `yaml:"id" validate:"gt=0"`
	Title string `yaml:"title" validate:"required"`
	Body  string `yaml:"body" validate:"required"`
}

// FAQItem is a single question and answer.
type FAQItem struct {
	ID       string `yaml:"id" validate:"required"`
	Question string `yaml:"question" validate:"required"`
	Answer   string `yaml:"answer" validate:"required"`
}

// ContactInfo is a labelled contact detail with an optional link target.
type ContactInfo struct {
	Label string `yaml:"label" validate:"required"`
	Value string `yaml:"value" validate:"required"`
	Href  string `yaml:"href,omitempty" validate:"omitempty,contacthref"`
}

// HasLink reports whether the entry should render as an anchor.
func (c ContactInfo) HasLink() bool {
	return c.Href != ""
}

// Link is a text/target pair used for external credits.
type Link struct {
	Text string `yaml:"text" validate:"required"`
	Href string `yaml:"href" validate:"required,url"`
}

// Business is the identity shown in the header, footer and page metadata.
type Business struct {
	Name          string `yaml:"name" validate:"required"`
	Tagline       string `yaml:"tagline" validate:"required"`
	Description   string `yaml:"description" validate:"required"`
	LocationBadge string `yaml:"location_badge" validate:"required"`
	City          string `yaml:"city" validate:"required"`
	Region        string `yaml:"region" validate:"required"`
	Email         string `yaml:"email" validate:"required,email"`
	Phone         string `yaml:"phone" validate:"required"`
	PhoneHref     string `yaml:"phone_href" validate:"required,contacthref"`
	LogoPath      string `yaml:"logo_path" validate:"required"`
	LogoAlt       string `yaml:"logo_alt" validate:"required"`
	Copyright     int    `yaml:"copyright_year" validate:"gt=0"`
	Credit        Link   `yaml:"credit"`
}

// Testimonial is the client note shown beside the service area.
type Testimonial struct {
	Quote       string `yaml:"quote" validate:"required"`
	Attribution string `yaml:"attribution" validate:"required"`
}

// QuoteEmail is the pre-filled message opened by the quote mailto link.
type QuoteEmail struct {
	Subject string `yaml:"subject" validate:"required"`
	Body    string `yaml:"body" validate:"required"`
}

// Catalog is everything the page renders.
type Catalog struct {
	Business       Business      `yaml:"business"`
	HeroHighlights []string      `yaml:"hero_highlights" validate:"dive,required"`
	HeroChecklist  []string      `yaml:"hero_checklist" validate:"dive,required"`
	EventTypes     []string      `yaml:"event_types" validate:"dive,required"`
	Services       []ServiceTier `yaml:"services" validate:"min=1,unique=ID,dive"`
	AddOnsNote     string        `yaml:"add_ons_note" validate:"required"`
	Steps          []ProcessStep `yaml:"steps" validate:"min=1,dive"`
	ProcessNote    string        `yaml:"process_note" validate:"required"`
	Areas          []string      `yaml:"areas" validate:"min=1,unique,dive,required"`
	Testimonial    Testimonial   `yaml:"testimonial"`
	FAQ            []FAQItem     `yaml:"faq" validate:"unique=ID,dive"`
	Contact        []ContactInfo `yaml:"contact" validate:"dive"`
	Quote          QuoteEmail    `yaml:"quote_email"`
}
