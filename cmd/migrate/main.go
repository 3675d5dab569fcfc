package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/oryizon/storefront/internal/domain/catalog"
	"github.com/oryizon/storefront/internal/domain/shared"
	"github.com/oryizon/storefront/internal/domain/shop"
	"github.com/oryizon/storefront/internal/infrastructure/config"
	"github.com/oryizon/storefront/internal/infrastructure/logger"
	"github.com/oryizon/storefront/internal/infrastructure/persistence"
)

func main() {
	var logLevel string
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}
	command := args[0]

	log, err := logger.New(&logger.Config{
		Level:      logLevel,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	switch command {
	case "up":
		if err := migrate(db.DB); err != nil {
			log.Fatal("Migration failed", zap.Error(err))
		}
		log.Info("Schema migrated")
	case "seed":
		if err := migrate(db.DB); err != nil {
			log.Fatal("Migration failed", zap.Error(err))
		}
		if err := seed(context.Background(), db.DB, log); err != nil {
			log.Fatal("Seeding failed", zap.Error(err))
		}
		log.Info("Seed data applied")
	default:
		printUsage()
		os.Exit(1)
	}
}

// migrate brings the schema up to date for all storefront models.
func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&catalog.Product{},
		&catalog.BlogPost{},
		&catalog.ContactInfo{},
		&shop.Order{},
		&shop.ContactMessage{},
	)
}

// seed inserts the launch catalog, blog posts and contact details.
// Existing rows are left untouched so seeding is safe to re-run.
func seed(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
	productRepo := persistence.NewGormProductRepository(db)
	for _, product := range catalog.SeedProducts() {
		p := product
		if _, err := productRepo.FindByID(ctx, p.ID); err == nil {
			continue
		} else if !isNotFound(err) {
			return err
		}
		if err := productRepo.Save(ctx, &p); err != nil {
			return err
		}
		log.Info("Seeded product", zap.String("id", p.ID), zap.String("name", p.Name))
	}

	blogRepo := persistence.NewGormBlogRepository(db)
	for _, post := range catalog.SeedBlogPosts() {
		b := post
		if _, err := blogRepo.FindByID(ctx, b.ID); err == nil {
			continue
		} else if !isNotFound(err) {
			return err
		}
		if err := blogRepo.Save(ctx, &b); err != nil {
			return err
		}
		log.Info("Seeded blog post", zap.String("id", b.ID), zap.String("title", b.Title))
	}

	contactRepo := persistence.NewGormContactInfoRepository(db)
	if _, err := contactRepo.Get(ctx); err != nil {
		if !isNotFound(err) {
			return err
		}
		info := catalog.DefaultContactInfo()
		if err := contactRepo.Upsert(ctx, &info); err != nil {
			return err
		}
		log.Info("Seeded contact info", zap.String("email", info.Email))
	}

	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, shared.ErrNotFound)
}

func printUsage() {
	fmt.Println("Usage: migrate [-log-level <level>] <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  up    Migrate the database schema")
	fmt.Println("  seed  Migrate the schema and insert launch data")
}
