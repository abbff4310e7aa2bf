package team

import "wheelstreet/internal/domain"

// FallbackRoster is the static team listing served when the store is
// unreachable, so the public team page degrades instead of erroring.
func FallbackRoster() []domain.TeamMember {
	return []domain.TeamMember{
		{
			ID:       1,
			Slug:     "mantas-urbonas",
			Name:     "Mantas Urbonas",
			Position: "Founder & CEO",
			Image:    "/images/team/mantas.jpg",
			Bio: []string{
				"Mantas founded WheelStreet after a decade in vehicle sourcing and fleet sales.",
			},
		},
		{
			ID:       2,
			Slug:     "greta-petrauskaite",
			Name:     "Greta Petrauskaitė",
			Position: "Head of Sales",
			Image:    "/images/team/greta.jpg",
			Bio: []string{
				"Greta leads the sales team and looks after every client from first call to handover.",
			},
		},
		{
			ID:       3,
			Slug:     "tomas-kazlauskas",
			Name:     "Tomas Kazlauskas",
			Position: "Financing Specialist",
			Image:    "/images/team/tomas.jpg",
			Bio: []string{
				"Tomas matches buyers with leasing and financing offers from partner banks.",
			},
		},
	}
}
