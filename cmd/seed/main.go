// Command seed wipes the database and loads the demo accounts and catalog.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"golang.org/x/crypto/bcrypt"

	"github.com/sweetshop/backend/internal/migrations"
	"github.com/sweetshop/backend/internal/models"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type seedSweet struct {
	name     string
	category string
	price    float64
	quantity int
}

var catalog = []seedSweet{
	// Chocolates
	{"Dark Chocolate Truffle", "Chocolate", 3.99, 45},
	{"Milk Chocolate Hearts", "Chocolate", 2.50, 60},
	{"White Chocolate Roses", "Chocolate", 4.25, 30},
	{"Belgian Chocolate Pralines", "Chocolate", 5.99, 25},
	{"Hazelnut Chocolate Bars", "Chocolate", 3.75, 40},

	// Gummies
	{"Rainbow Gummy Bears", "Gummy", 1.99, 80},
	{"Sour Gummy Worms", "Gummy", 2.25, 70},
	{"Peach Gummy Rings", "Gummy", 2.50, 55},
	{"Cola Gummy Bottles", "Gummy", 2.75, 65},
	{"Tropical Fruit Gummies", "Gummy", 3.00, 50},

	// Hard Candy
	{"Strawberry Lollipops", "Hard Candy", 1.50, 90},
	{"Peppermint Candy Canes", "Hard Candy", 0.99, 120},
	{"Butterscotch Drops", "Hard Candy", 2.00, 75},
	{"Lemon Drops", "Hard Candy", 1.75, 85},
	{"Cinnamon Hard Candy", "Hard Candy", 2.25, 60},

	// Caramels
	{"Sea Salt Caramels", "Caramel", 4.50, 35},
	{"Vanilla Caramel Squares", "Caramel", 3.25, 50},
	{"Chocolate Covered Caramels", "Caramel", 4.99, 28},
	{"Apple Caramel Chews", "Caramel", 3.50, 42},

	// Marshmallows
	{"Vanilla Marshmallows", "Marshmallow", 2.99, 65},
	{"Strawberry Marshmallow Hearts", "Marshmallow", 3.25, 45},
	{"Coconut Marshmallow Cubes", "Marshmallow", 3.75, 35},

	// Fudge
	{"Classic Chocolate Fudge", "Fudge", 5.25, 20},
	{"Peanut Butter Fudge", "Fudge", 5.50, 18},
	{"Maple Walnut Fudge", "Fudge", 6.00, 15},

	// Licorice
	{"Red Strawberry Licorice", "Licorice", 2.75, 55},
	{"Black Licorice Wheels", "Licorice", 2.50, 40},

	// Mints
	{"Chocolate Mints", "Mint", 3.99, 45},
	{"Peppermint Patties", "Mint", 2.99, 60},
	{"Spearmint Leaves", "Mint", 2.25, 70},

	// Taffy
	{"Salt Water Taffy Mix", "Taffy", 4.25, 35},
	{"Banana Taffy", "Taffy", 2.75, 50},
	{"Cherry Taffy", "Taffy", 2.75, 48},

	// Premium items, low stock
	{"Gold Leaf Chocolate", "Premium", 15.99, 8},
	{"Truffle Collection Box", "Premium", 24.99, 5},
	{"Artisan Honey Candy", "Premium", 8.75, 12},

	// Out of stock items
	{"Limited Edition Rainbow Fudge", "Fudge", 7.99, 0},
	{"Seasonal Pumpkin Spice Candy", "Seasonal", 4.50, 0},
}

func main() {
	configPath := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()

	if err := run(context.Background(), *configPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
}

func run(ctx context.Context, configPath string) error {
	_ = godotenv.Load(configPath)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	pgPort, err := strconv.Atoi(getEnv("POSTGRES_PORT", "5432"))
	if err != nil {
		return err
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		getEnv("POSTGRES_USER", "user"),
		getEnv("POSTGRES_PASSWORD", "password"),
		getEnv("POSTGRES_HOST", "localhost"),
		pgPort,
		getEnv("POSTGRES_DB", "sweetshop"),
	)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db.DB, "."); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	// Clear existing data
	if _, err := db.ExecContext(ctx, `TRUNCATE TABLE users, sweets`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}
	log.Println("cleared existing data")

	// Demo accounts
	if err := insertUser(ctx, db, "admin", "admin123", true); err != nil {
		return err
	}
	log.Println("created admin user (username: admin, password: admin123)")

	if err := insertUser(ctx, db, "user", "user123", false); err != nil {
		return err
	}
	log.Println("created regular user (username: user, password: user123)")

	// Catalog
	totalStock := 0
	for _, s := range catalog {
		sweet := models.SweetDB{
			ID:       uuid.NewString(),
			Name:     s.name,
			Category: s.category,
			Price:    s.price,
			Quantity: s.quantity,
		}
		if _, err := db.ExecContext(ctx,
			`INSERT INTO sweets (id, name, category, price, quantity, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, NOW(), NOW())`,
			sweet.ID, sweet.Name, sweet.Category, sweet.Price, sweet.Quantity,
		); err != nil {
			return fmt.Errorf("insert sweet %q: %w", s.name, err)
		}
		totalStock += s.quantity
	}

	log.Printf("inserted %d sweet varieties, %d items total", len(catalog), totalStock)
	return nil
}

func insertUser(ctx context.Context, db *sqlx.DB, username, password string, isAdmin bool) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx,
		`INSERT INTO users (id, username, password_hash, is_admin, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, NOW(), NOW())`,
		uuid.NewString(), username, string(hash), isAdmin,
	)
	if err != nil {
		return fmt.Errorf("insert user %q: %w", username, err)
	}
	return nil
}
