package content

import "wheelstreet/internal/domain"

// FallbackSections is the copy baked into the binary. It is served when
// the store is unreachable or holds no content, so the public site
// renders instead of erroring.
func FallbackSections() []domain.PageSection {
	return []domain.PageSection{
		{
			SectionType: "hero",
			Title:       "Your next car, without the hassle",
			Subtitle:    "WheelStreet finds, checks and delivers it",
			Description: "We source vehicles across Europe, handle the paperwork and hand you the keys.",
			CTAText:     "Get an offer",
			CTALink:     "/contact",
			SortOrder:   1,
			Active:      true,
		},
		{
			SectionType: "services",
			Title:       "What we do",
			SortOrder:   2,
			Active:      true,
			Tabs:        FallbackServiceTabs(),
		},
		{
			SectionType: "about",
			Title:       "About WheelStreet",
			Description: "A small team of car people who got tired of watching buyers get a bad deal.",
			SortOrder:   3,
			Active:      true,
		},
	}
}

// FallbackServiceTabs matches the four offerings the services section
// ships with before any admin edit.
func FallbackServiceTabs() []domain.ServiceTab {
	return []domain.ServiceTab{
		{
			TabID:            "acquisition",
			Title:            "Vehicle acquisition",
			ShortDescription: "We find and inspect the right car for you",
			Icon:             "search",
			Benefits:         []string{"Europe-wide sourcing", "Independent inspection", "Price negotiation"},
			SortOrder:        1,
			Active:           true,
		},
		{
			TabID:            "financing",
			Title:            "Financing",
			ShortDescription: "Leasing and loan offers from partner banks",
			Icon:             "credit-card",
			Benefits:         []string{"Multiple bank offers", "Fast approval", "Flexible terms"},
			SortOrder:        2,
			Active:           true,
		},
		{
			TabID:            "insurance",
			Title:            "Insurance",
			ShortDescription: "Coverage arranged before you drive off",
			Icon:             "shield",
			Benefits:         []string{"Comparable quotes", "Full casco options"},
			SortOrder:        3,
			Active:           true,
		},
		{
			TabID:            "ev",
			Title:            "Electric vehicles",
			ShortDescription: "Advice and sourcing for going electric",
			Icon:             "zap",
			Benefits:         []string{"Range and charging guidance", "Subsidy paperwork"},
			SortOrder:        4,
			Active:           true,
		},
	}
}
