package catalog

import "gpsshowcase/models"

// Seed returns the six sample restaurants of the demo dashboard.
func Seed() []models.Restaurant {
	return []models.Restaurant{
		{
			ID:          1,
			Name:        "Neon Bistro",
			Category:    models.FastCasual,
			Description: "A modern fast-casual restaurant serving innovative fusion cuisine with a neon-inspired atmosphere.",
			Address:     "1501 Pike Place, Seattle, WA 98101",
			Hours:       "Open until 10 PM",
			Status:      models.StatusOpen,
			Rating:      4.5,
			ReviewCount: 328,
			Theme:       "emerald",
		},
		{
			ID:          2,
			Name:        "Azure Fine Dining",
			Category:    models.FineDining,
			Description: "An exquisite fine dining experience featuring artisanal cuisine prepared with the finest ingredients.",
			Address:     "2010 4th Ave, Seattle, WA 98121",
			Hours:       "Open until 11 PM",
			Status:      models.StatusClosingSoon,
			Rating:      4.8,
			ReviewCount: 512,
			Theme:       "violet",
		},
		{
			ID:          3,
			Name:        "Urban Kitchen",
			Category:    models.CasualDining,
			Description: "A cozy casual dining spot offering comfort food with a modern twist.",
			Address:     "400 Broad St, Seattle, WA 98109",
			Hours:       "Open until 9 PM",
			Status:      models.StatusOpen,
			Rating:      4.2,
			ReviewCount: 215,
			Theme:       "amber",
		},
		{
			ID:          4,
			Name:        "Spice Route",
			Category:    models.EthnicCuisine,
			Description: "Authentic ethnic cuisine bringing the flavors of the world to your plate.",
			Address:     "608 1st Ave, Seattle, WA 98104",
			Hours:       "Closed - Opens at 11 AM",
			Status:      models.StatusClosed,
			Rating:      4.6,
			ReviewCount: 441,
			Theme:       "crimson",
		},
		{
			ID:          5,
			Name:        "Street Eats Express",
			Category:    models.FoodTrucks,
			Description: "Gourmet food truck experience with creative street food offerings.",
			Address:     "1200 Western Ave, Seattle, WA 98101",
			Hours:       "Open until 8 PM",
			Status:      models.StatusOpen,
			Rating:      4.3,
			ReviewCount: 189,
			Theme:       "ocean",
		},
		{
			ID:          6,
			Name:        "Velocity Lounge",
			Category:    models.FineDining,
			Description: "Premium destination with expert mixologists and refined cuisine.",
			Address:     "88 Yesler Way, Seattle, WA 98104",
			Hours:       "Open until 2 AM",
			Status:      models.StatusClosingSoon,
			Rating:      4.4,
			ReviewCount: 376,
			Theme:       "indigo",
		},
	}
}
