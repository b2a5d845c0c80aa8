package main

import (
	"log"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/model"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/pkg/database"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	seedBlogPosts(db)
}

func seedBlogPosts(db *gorm.DB) {
	now := time.Now()
	posts := []model.BlogPost{
		{
			Slug:        "top-5-weekend-getaways-from-accra",
			Title:       "Top 5 Weekend Getaways from Accra",
			Excerpt:     "Short hops that pack a full holiday into two days.",
			Body:        "From the beaches of Busua to the hills of Aburi, here are five trips you can book before Friday...",
			Author:      "Melcom Travels Editorial",
			Tags:        datatypes.JSON([]byte(`["ghana","weekend","beach"]`)),
			Published:   true,
			PublishedAt: &now,
		},
		{
			Slug:        "how-to-read-a-flight-fare",
			Title:       "How to Read a Flight Fare",
			Excerpt:     "Refundable, flexible, basic: what fare labels actually promise.",
			Body:        "Airlines sell the same seat under many names. Here is what each fare family includes and when paying more pays off...",
			Author:      "Melcom Travels Editorial",
			Tags:        datatypes.JSON([]byte(`["flights","fares","tips"]`)),
			Published:   true,
			PublishedAt: &now,
		},
		{
			Slug:        "multi-city-trips-made-simple",
			Title:       "Multi-City Trips Made Simple",
			Excerpt:     "Stack three cities in one itinerary without tripling the price.",
			Body:        "Open-jaw and multi-city bookings look intimidating, but with the right segment order they often undercut two separate round trips...",
			Author:      "Melcom Travels Editorial",
			Tags:        datatypes.JSON([]byte(`["multi-city","planning"]`)),
			Published:   true,
			PublishedAt: &now,
		},
	}

	success := color.New(color.FgGreen).PrintfFunc()
	skip := color.New(color.FgYellow).PrintfFunc()

	for _, post := range posts {
		var existing model.BlogPost
		err := db.Where("slug = ?", post.Slug).First(&existing).Error
		if err == nil {
			skip("skip  %s (already seeded)\n", post.Slug)
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("Error: Lookup failed for %s: %v", post.Slug, err)
		}

		if err := db.Create(&post).Error; err != nil {
			log.Fatalf("Error: Failed to seed %s: %v", post.Slug, err)
		}
		success("seed  %s\n", post.Slug)
	}
}
