package bootstrap

import (
	"log"
	"os"

	"github.com/gesscam/community-portal/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Migrate runs the schema migration for every model, join tables included.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.NewsPost{},
		&model.NewsPostCategory{},
		&model.GalleryImage{},
		&model.GalleryImageCategory{},
		&model.Comment{},
		&model.PageContent{},
		&model.ExecMember{},
		&model.AboutPost{},
		&model.HomePost{},
	)
}

// Seed fills in the baseline content every deployment needs: the page hero
// rows the frontend renders unconditionally, the starter categories, and the
// admin account. It is safe to run on every boot.
func Seed(db *gorm.DB) error {
	if err := seedPages(db); err != nil {
		return err
	}
	if err := seedCategories(db); err != nil {
		return err
	}
	return seedUsers(db)
}

func seedPages(db *gorm.DB) error {
	pages := []model.PageContent{
		{PageSlug: "home", Title: "Welcome to GESSCAM", HeroImage: "/images/hero-home.jpg", Content: "The Gambian Ethnic Social & Sports Community Association of Manitoba."},
		{PageSlug: "about", Title: "About Us", HeroImage: "/images/hero-about.jpg", Content: "Who we are and what we do."},
		{PageSlug: "news", Title: "News & Events", HeroImage: "/images/hero-news.jpg", Content: "The latest from our community."},
		{PageSlug: "gallery", Title: "Gallery", HeroImage: "/images/hero-gallery.jpg", Content: "Moments from our events."},
		{PageSlug: "exec-body", Title: "Executive Body", HeroImage: "/images/hero-exec.jpg", Content: "Meet the team."},
	}

	for _, page := range pages {
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "page_slug"}},
			DoNothing: true,
		}).Create(&page).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedCategories(db *gorm.DB) error {
	categories := []model.Category{
		{Name: "Community Events", Slug: "community-events"},
		{Name: "Cultural News", Slug: "cultural-news"},
		{Name: "Sports", Slug: "sports"},
		{Name: "Fundraising", Slug: "fundraising"},
		{Name: "Workshops", Slug: "workshops"},
	}

	for _, category := range categories {
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoNothing: true,
		}).Create(&category).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedUsers(db *gorm.DB) error {
	if err := seedUser(db,
		getEnv("ADMIN_USERNAME", "admin"),
		getEnv("ADMIN_EMAIL", "admin@gesscam.org"),
		getEnv("ADMIN_PASSWORD", "admin123"),
		model.RoleAdmin,
	); err != nil {
		return err
	}

	// A demo user is handy locally but has no business in production.
	if os.Getenv("APP_ENV") == "development" {
		return seedUser(db, "demo", "demo@gesscam.org", "demo1234", model.RoleUser)
	}
	return nil
}

func seedUser(db *gorm.DB, username, email, password, role string) error {
	var count int64
	if err := db.Model(&model.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := model.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}
	log.Printf("seeded %s account %s", role, email)
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
