package database

import (
	"context"
	"time"

	"beautymatch/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// demoProfiles are the development fixtures used when SEED_DEMO_DATA is set.
var demoProfiles = []models.ProfessionalProfile{
	{
		ID:           "pro_1",
		Email:        "jasmine.lee@example.com",
		Name:         "Jasmine Lee",
		Specialty:    "Nail Artistry",
		Bio:          "Award-winning nail artist with a passion for intricate designs and healthy nails. From classic manicures to detailed gel-x art, I create tiny masterpieces.",
		Location:     "Dublin 1 (D01)",
		Availability: models.AvailabilityAvailable,
		Reviews: []models.Review{
			{Author: "Chloe T.", Rating: 5, Comment: "Jasmine is a true artist! My nails have never looked better."},
			{Author: "Brenda M.", Rating: 5, Comment: "Such a clean and professional setup. Loved the experience."},
		},
		Services: []models.Service{
			{Name: "Gel Manicure", Price: 55, Duration: 60, Category: "Nails"},
			{Name: "Nail Art (per nail)", Price: 10, Duration: 15, Category: "Nails"},
			{Name: "Gel-X Extensions", Price: 90, Duration: 120, Category: "Nails"},
		},
		TikTokURLs: []string{
			"https://www.tiktok.com/@vbeautypure/video/7343997426145332522",
			"https://www.tiktok.com/@sansungnails/video/7354999954030431534",
		},
		InstagramURLs: []string{
			"https://www.instagram.com/p/C2A9g2kRP3k/",
			"https://www.instagram.com/p/C8R8X-yS4AS/",
		},
		Socials:           models.SocialLinks{Instagram: "@jasmine.nails", TikTok: "@jasminenailart"},
		TravelPolicy:      models.TravelPolicy{Locations: []string{"Dublin 1 (D01)", "Dublin 2 (D02)", "Dublin 7 (D07)"}},
		IsProfileComplete: true,
	},
	{
		ID:           "pro_2",
		Email:        "marco.reyes@example.com",
		Name:         "Marco Reyes",
		Specialty:    "Hair Colorist & Stylist",
		Bio:          "Expert in balayage, vivid colors, and precision cuts. With 10+ years of experience, I am here to help you achieve your hair goals in a relaxed, private studio setting.",
		Location:     "Dublin 6 (D06)",
		Availability: models.AvailabilityAvailable,
		Reviews: []models.Review{
			{Author: "Alex D.", Rating: 5, Comment: "Marco transformed my hair! The color is stunning."},
			{Author: "Samantha P.", Rating: 5, Comment: "Finally found a stylist who listens. Highly recommend!"},
		},
		Services: []models.Service{
			{Name: "Balayage", Price: 250, Duration: 180, Category: "Hair"},
			{Name: "Haircut & Style", Price: 85, Duration: 60, Category: "Hair"},
			{Name: "Vivid Color Session", Price: 300, Duration: 240, Category: "Hair"},
		},
		Socials:           models.SocialLinks{Instagram: "@marco.reyes.hair", TikTok: "@marcoreyeshair"},
		IsProfileComplete: true,
	},
	{
		ID:           "pro_3",
		Email:        "isabelle.chen@example.com",
		Name:         "Isabelle Chen",
		Specialty:    "Lash & Brow Expert",
		Bio:          "Certified in lash extensions, lifts, and brow lamination. My goal is to enhance your natural beauty and simplify your morning routine.",
		Location:     "Dublin 4 (D04)",
		Availability: models.AvailabilityAvailable,
		Services: []models.Service{
			{Name: "Classic Lash Set", Price: 120, Duration: 120, Category: "Lashes & Brows"},
			{Name: "Lash Lift & Tint", Price: 95, Duration: 75, Category: "Lashes & Brows"},
			{Name: "Brow Lamination", Price: 80, Duration: 60, Category: "Lashes & Brows"},
		},
		IsProfileComplete: false,
	},
	{
		ID:           "pro_4",
		Email:        "david.kim@example.com",
		Name:         "David Kim",
		Specialty:    "Makeup Artist",
		Bio:          "From natural glow to full glam for special events. With a background in editorial and bridal makeup, I create a look that lasts and photographs beautifully.",
		Location:     "Dublin 2 (D02)",
		Availability: models.AvailabilityAvailable,
		Reviews: []models.Review{
			{Author: "Olivia W.", Rating: 5, Comment: "David did my wedding makeup and it was flawless all night!"},
		},
		Services: []models.Service{
			{Name: "Event Makeup", Price: 150, Duration: 90, Category: "Makeup"},
			{Name: "Bridal Makeup Trial", Price: 100, Duration: 90, Category: "Makeup"},
			{Name: "Makeup Lesson", Price: 200, Duration: 120, Category: "Makeup"},
		},
		IsProfileComplete: true,
	},
}

// SeedDemoProfiles inserts the demo profiles if the collection is empty.
func SeedDemoProfiles(logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	coll := Collection("profiles")
	count, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		logger.Warn("seed: failed to count profiles", zap.Error(err))
		return
	}
	if count > 0 {
		return
	}

	now := time.Now()
	docs := make([]interface{}, 0, len(demoProfiles))
	for _, p := range demoProfiles {
		p.CreatedAt = now
		p.UpdatedAt = now
		docs = append(docs, p)
		now = now.Add(time.Millisecond) // keep insertion order stable under the createdAt sort
	}
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		logger.Warn("seed: failed to insert demo profiles", zap.Error(err))
		return
	}
	logger.Info("seed: inserted demo profiles", zap.Int("count", len(docs)))
}
