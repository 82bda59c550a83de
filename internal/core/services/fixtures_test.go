package services

import (
	"github.com/ictam/agmsite/internal/adapters/driven/storage/memory"
	"github.com/ictam/agmsite/internal/core/domain"
)

// testContent is a small conference with two days.
func testContent() *domain.Content {
	return &domain.Content{
		Speakers: []domain.Speaker{
			{Name: "Dr. Jane Ansah SC.", Title: "Legal Counsel", Topic: "Digital Regulation"},
			{Name: "Kwame Boateng", Title: "CTO, Hubtel", Topic: "AI in Public Services"},
		},
		Sponsors: []domain.Sponsor{
			{ID: "acme", Name: "Acme Corp", Tier: domain.TierGold},
			{ID: "mtn", Name: "MTN Ghana", Tier: domain.TierPlatinum},
		},
		Programme: domain.Programme{
			Event: "ICTAM AGM 2025",
			Venue: "Accra",
			Schedule: []domain.ProgrammeDay{
				{
					Day: "Wednesday, 19 November 2025",
					Sessions: []domain.Session{
						{Title: "Opening Ceremony", Time: "08:00", Type: "Ceremony", Venue: "Main Hall"},
						{Title: "AI & Digital Innovation Keynotes", Time: "10:00", Type: "Keynote", Speaker: "Kwame Boateng"},
						{Title: "Networking Lunch", Time: "13:00", Type: "Break"},
					},
				},
				{
					Day: "Thursday, 20 November 2025",
					Sessions: []domain.Session{
						{Title: "Keynote: Sustainable Development", Time: "09:00", Type: "Keynote", Speaker: "Dr. Jane Ansah SC."},
						{Title: "Panel: Cyber Security", Time: "11:00", Type: "Panel", Venue: "Room B"},
					},
				},
			},
		},
		Links: []domain.Link{
			{Title: "ICTAM Website", Description: "Official association site", URL: "https://ictam.org", Category: "Association"},
			{Title: "Contact Us", Description: "Get in touch", URL: "/#contact", Category: "Site"},
		},
	}
}

func newTestCache() (*ContentCache, *memory.ContentSource) {
	src := memory.NewContentSource(testContent())
	return NewContentCache(src), src
}
