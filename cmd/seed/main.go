package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/pgvector/pgvector-go"

	"github.com/KP-365/TheWearDeck/config"
	"github.com/KP-365/TheWearDeck/models"
	"github.com/KP-365/TheWearDeck/services"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

func str(s string) *string { return &s }

// sampleProducts is a small starter catalog covering every wardrobe slot
// so the feed can assemble complete outfits out of the box.
var sampleProducts = []models.Product{
	{Name: "Relaxed Linen Shirt", Price: 45, Category: "tops", Brand: str("Arket"), Color: str("white"), Size: str("M"), Description: str("Breathable relaxed-fit linen shirt")},
	{Name: "Ribbed Knit Sweater", Price: 60, Category: "sweater", Brand: str("COS"), Color: str("cream"), Size: str("S")},
	{Name: "Boxy Cotton T-Shirt", Price: 25, Category: "t-shirt", Brand: str("Uniqlo"), Color: str("black"), Size: str("M")},
	{Name: "Silk Button Blouse", Price: 85, Category: "blouse", Brand: str("Everlane"), Color: str("ivory"), Size: str("S")},
	{Name: "High-Rise Straight Jeans", Price: 70, Category: "jeans", Brand: str("Levi's"), Color: str("indigo"), Size: str("28")},
	{Name: "Pleated Midi Skirt", Price: 55, Category: "skirt", Brand: str("Zara"), Color: str("emerald"), Size: str("S")},
	{Name: "Tailored Wool Trousers", Price: 95, Category: "pants", Brand: str("COS"), Color: str("charcoal"), Size: str("M")},
	{Name: "Slip Satin Midi Dress", Price: 110, Category: "dress", Brand: str("Reformation"), Color: str("black"), Size: str("S")},
	{Name: "Wrap Jersey Dress", Price: 75, Category: "dresses", Brand: str("& Other Stories"), Color: str("rust"), Size: str("M")},
	{Name: "Wide-Leg Jumpsuit", Price: 90, Category: "jumpsuit", Brand: str("Mango"), Color: str("navy"), Size: str("S")},
	{Name: "Leather Chelsea Boots", Price: 140, Category: "boots", Brand: str("Dr. Martens"), Color: str("black"), Size: str("38")},
	{Name: "Canvas Low-Top Sneakers", Price: 55, Category: "sneakers", Brand: str("Veja"), Color: str("white"), Size: str("39")},
	{Name: "Strappy Block Heels", Price: 80, Category: "heels", Brand: str("Aldo"), Color: str("tan"), Size: str("38")},
	{Name: "Woven Leather Belt", Price: 30, Category: "belt", Brand: str("Madewell"), Color: str("brown")},
	{Name: "Structured Crossbody Bag", Price: 120, Category: "bag", Brand: str("Polene"), Color: str("camel")},
	{Name: "Gold Hoop Earrings", Price: 40, Category: "jewelry", Brand: str("Mejuri"), Color: str("gold")},
	{Name: "Silk Twill Scarf", Price: 35, Category: "scarf", Brand: str("& Other Stories"), Color: str("floral")},
}

// main migrates the schema and seeds a starter catalog.
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application.
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("WEARDECK - Catalog Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	ctx := context.Background()
	dbs, err := config.InitDB(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbs.Close()
	log.Println("✓ Connected to database")

	// The vector extension must exist before AutoMigrate sees the
	// vector(512) columns.
	if err := dbs.Gorm.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		log.Fatalf("Failed to enable pgvector extension: %v", err)
	}
	log.Println("✓ pgvector extension enabled")

	if err := dbs.Gorm.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.UserAction{},
		&models.InspoImage{},
	); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("✓ Schema migrated")

	embed := services.NewEmbeddingService()

	created := 0
	for _, product := range sampleProducts {
		var count int64
		dbs.Gorm.Model(&models.Product{}).Where("name = ?", product.Name).Count(&count)
		if count > 0 {
			continue
		}

		desc := product.Name
		if product.Description != nil {
			desc = *product.Description
		}
		embedding := pgvector.NewVector(embed.GenerateFromText(desc))
		product.Embedding = &embedding

		if err := dbs.Gorm.Create(&product).Error; err != nil {
			log.Fatalf("Failed to seed product %q: %v", product.Name, err)
		}
		created++
	}

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("✅ Seeded %d products (%d already present)\n", created, len(sampleProducts)-created)
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the API server: go run main.go")
	fmt.Println("2. Sign up at POST /api/v1/auth/signup")
	fmt.Println("3. Fetch outfits at GET /api/v1/feed")
	fmt.Println()
}
