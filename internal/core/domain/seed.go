package domain

import "time"

// SeedCampaigns returns the sample campaigns used to initialise an empty
// store on first run. Each call returns fresh copies so callers can mutate
// the result freely. Deadlines are relative to now; everything else is
// fixed, so repeated seeding produces the same collection.
func SeedCampaigns() []Campaign {
	now := time.Now().UTC()
	return []Campaign{
		{
			ID:          "1",
			CreatorName: "Elena Stark",
			Title:       "EcoDrone: Reforestation AI",
			Tagline:     "Autonomous drones planting 10,000 trees a day.",
			Description: "EcoDrone utilizes advanced computer vision and swarm robotics to identify " +
				"optimal planting locations and deploy biodegradable seed pods. Help us restore " +
				"the planet's lungs with technology.",
			Category:      CategoryTechnology,
			ImageURL:      "https://picsum.photos/800/450?random=1",
			TargetAmount:  50000,
			CurrentAmount: 34500,
			Deadline:      now.AddDate(0, 0, 20),
			CreatedAt:     now,
			Status:        StatusActive,
			Tiers: []Tier{
				{ID: "t1", Title: "Seedling Supporter", Amount: 25, Description: "Digital thank you card + tree planted in your name."},
				{ID: "t2", Title: "Forest Guardian", Amount: 100, Description: "T-shirt + 10 trees planted + GPS coords."},
			},
			AIAnalysis: &AIAnalysis{
				TargetAudience:     "Environmental activists, tech enthusiasts, green investors.",
				MarketingCopy:      "Join the green revolution from the sky.",
				SuccessProbability: 85,
			},
		},
		{
			ID:          "2",
			CreatorName: "Pixel Studio",
			Title:       "Neon Nights: Cyberpunk RPG",
			Tagline:     "An open-world RPG set in a procedurally generated mega-city.",
			Description: "Explore the depths of Neo-Tokyo in this immersive RPG. Featuring a unique " +
				"synth-wave soundtrack and deep character customization powered by generative AI.",
			Category:      CategoryGames,
			ImageURL:      "https://picsum.photos/800/450?random=2",
			TargetAmount:  20000,
			CurrentAmount: 4500,
			Deadline:      now.AddDate(0, 0, 45),
			CreatedAt:     now,
			Status:        StatusActive,
			Tiers: []Tier{
				{ID: "t1", Title: "Digital Copy", Amount: 30, Description: "Steam key on launch."},
				{ID: "t2", Title: "Beta Access", Amount: 60, Description: "Play 6 months early + Digital Artbook."},
			},
		},
	}
}
