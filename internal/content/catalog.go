package content

import "slices"

const (
	primaryEmail = "lastlookllc25@gmail.com"
	phoneDisplay = "(706) 973-0371"
	phoneHref    = "tel:17069730371"
)

var business = Business{
	Name:          "Last Look Events",
	Tagline:       "Post-Wedding Cleanup & Décor Care",
	Description:   "Post-wedding cleanup, décor collection, and short-term storage for venues in and around Peachtree City, Georgia.",
	LocationBadge: "Peachtree City & surrounding venues",
	City:          "Peachtree City",
	Region:        "GA",
	Email:         primaryEmail,
	Phone:         phoneDisplay,
	PhoneHref:     phoneHref,
	LogoPath:      "/static/img/logo.svg",
	LogoAlt:       "Last Look Events logo",
	Copyright:     2025,
	Credit: Link{
		Text: "Spartan Martin Web Design Studio",
		Href: "https://spartanmartinwds.netlify.app/",
	},
}

var heroHighlights = []string{
	"✨ Evenings & late-night cleanups",
	"🏡 Ideal for golf club & barn venues",
	"💌 Décor stored & returned on your schedule",
}

var heroChecklist = []string{
	"End-of-night venue reset & trash removal",
	"Décor, signage, and sentimental items packed & labeled",
	"Short-term storage and scheduled delivery",
}

var eventTypes = []string{
	"Weddings & rehearsal dinners",
	"Engagement parties & showers",
	"Anniversary & milestone events",
	"Corporate celebrations",
	"Small private events & backyard weddings",
	"Golf club & country club venues",
}

var services = []ServiceTier{
	{
		ID:            TierFreshStart,
		Name:          "The Fresh Start",
		Icon:          "🧼",
		StartingPrice: 350,
		Bullets: []string{
			"End-of-night venue cleanup only",
			"Trash removal & basic reset of space",
			"Tabletop items consolidated for pickup",
			"Ideal for smaller events or DIY weddings",
		},
	},
	{
		ID:            TierKeepsake,
		Name:          "The Keepsake Package",
		Icon:          "🎁",
		StartingPrice: 600,
		Bullets: []string{
			"Full venue cleanup & breakdown",
			"Décor, signage, and keepsakes packed & labeled",
			"Next-day delivery to your home or location",
			"Perfect for couples leaving early or traveling",
		},
		Highlight: true,
	},
	{
		ID:            TierAfterglow,
		Name:          "The Afterglow Experience",
		Icon:          "✨",
		StartingPrice: 950,
		Bullets: []string{
			"Everything in The Keepsake Package",
			"Up to 30 days of secure décor storage",
			"Flexible scheduled delivery when you’re ready",
			"Great for honeymoons right after the wedding",
		},
	},
}

const addOnsNote = "Brunch or day-after cleanup, décor setup, additional storage time, multiple drop-off locations, holiday-weekend events, and more. Mention your needs in your quote request and we’ll build a custom package."

var steps = []ProcessStep{
	{
		ID:    1,
		Title: "Share your details",
		Body:  "Tell us your venue, date, estimated guest count, and general décor plan. We’ll review venue guidelines and send a custom quote with clear expectations.",
	},
	{
		ID:    2,
		Title: "Event-day coordination",
		Body:  "We arrive at the agreed-upon time and quietly prepare for breakdown. You focus on your send-off—we’ll handle the checklist.",
	},
	{
		ID:    3,
		Title: "Aftercare & delivery",
		Body:  "Décor and keepsakes are packed, labeled, and either left with your person, delivered the next day, or stored with us.",
	},
}

const processNote = "Need help earlier in the day? Ask about adding light décor setup or room flips between ceremony and reception."

var areas = []string{
	"Peachtree City",
	"Fayetteville",
	"Newnan",
	"Tyrone",
	"Senoia",
	"Sharpsburg",
	"Golf club & course venues",
	"Barn & farm venues",
}

var testimonial = Testimonial{
	Quote:       "“We left our reception when the sparkler tunnel ended—and that was it. The next morning, everything was boxed, labeled, and waiting for us. It was the easiest part of the whole wedding.”",
	Attribution: "— Future Last Look Events couple (your review here!)",
}

var faq = []FAQItem{
	{
		ID:       "start-cleanup",
		Question: "When do you typically start cleanup?",
		Answer:   "Most couples hire us to arrive near the end of the reception, once formal events are finished. We’ll coordinate a specific time based on your timeline and venue rules.",
	},
	{
		ID:       "venue-planner",
		Question: "Do you work directly with our venue or planner?",
		Answer:   "Yes. We’re happy to communicate with your venue coordinator or planner so everyone is on the same page about access, end times, and what needs to be done.",
	},
	{
		ID:       "storage",
		Question: "Can you store our décor while we’re on our honeymoon?",
		Answer:   "Absolutely. Our Afterglow Experience includes up to 30 days of short-term storage with scheduled delivery when you’re back and ready to unpack.",
	},
	{
		ID:       "pricing",
		Question: "Are your prices fixed?",
		Answer:   "Package pricing is a starting point. Final quotes consider guest count, complexity of décor, travel, and venue policies—you’ll always receive a clear breakdown before booking.",
	},
	{
		ID:       "booking-time",
		Question: "How far in advance should we book?",
		Answer:   "As soon as you have a date and venue, reach out. Popular wedding weekends and holidays book quickly, especially in peak seasons.",
	},
}

var contact = []ContactInfo{
	{Label: "Primary email", Value: primaryEmail, Href: "mailto:" + primaryEmail},
	{Label: "Alternate email", Value: primaryEmail, Href: "mailto:" + primaryEmail},
	{Label: "Phone", Value: phoneDisplay, Href: phoneHref},
	{Label: "Typical response time", Value: "Within 1–2 business days"},
}

var quoteEmail = QuoteEmail{
	Subject: "Last Look Events Quote Request",
	Body: "Hi Last Look Events,\r\n\r\n" +
		"We’d love a quote for post-event cleanup services. Here are our details:\r\n\r\n" +
		"- Names:\r\n" +
		"- Event type (wedding, reception, etc.):\r\n" +
		"- Date:\r\n" +
		"- Venue name and city:\r\n" +
		"- Estimated guest count:\r\n" +
		"- Requested package (Fresh Start, Keepsake, Afterglow, or custom):\r\n" +
		"- Any special notes or add-ons:\r\n\r\n" +
		"Thank you!",
}

// Default returns the site catalog. Slices are cloned so callers may modify
// their copy freely.
func Default() Catalog {
	svc := make([]ServiceTier, len(services))
	for i, s := range services {
		s.Bullets = slices.Clone(s.Bullets)
		svc[i] = s
	}
	return Catalog{
		Business:       business,
		HeroHighlights: slices.Clone(heroHighlights),
		HeroChecklist:  slices.Clone(heroChecklist),
		EventTypes:     slices.Clone(eventTypes),
		Services:       svc,
		AddOnsNote:     addOnsNote,
		Steps:          slices.Clone(steps),
		ProcessNote:    processNote,
		Areas:          slices.Clone(areas),
		Testimonial:    testimonial,
		FAQ:            slices.Clone(faq),
		Contact:        slices.Clone(contact),
		Quote:          quoteEmail,
	}
}
