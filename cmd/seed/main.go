package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"wheelstreet/internal/config"
	"wheelstreet/internal/database"
	"wheelstreet/internal/domain"
	"wheelstreet/internal/modules/content"
	"wheelstreet/internal/modules/team"
	"wheelstreet/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM service_tabs")
	db.Exec("DELETE FROM page_sections")
	db.Exec("DELETE FROM legal_pages")
	db.Exec("DELETE FROM team_members")
	db.Exec("DELETE FROM leads")
	db.Exec("DELETE FROM users")

	ctx := context.Background()

	// ================== ADMIN USER ==================
	log.Println("Creating admin user...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@wheelstreet.lt",
		PasswordHash: string(adminHash),
		Name:         "Administrator",
		Role:         domain.RoleAdmin,
	}
	if err := repository.NewUserRepository(db).Create(ctx, &admin); err != nil {
		log.Fatal("seed admin:", err)
	}

	// ================== TEAM ==================
	log.Println("Creating team members...")

	teamRepo := repository.NewTeamMemberRepository(db)
	for _, member := range team.FallbackRoster() {
		m := member
		m.ID = 0
		if err := teamRepo.Create(ctx, &m); err != nil {
			log.Fatal("seed team member:", err)
		}
	}

	// ================== PAGE CONTENT ==================
	log.Println("Creating page sections...")

	sectionRepo := repository.NewSectionRepository(db)
	for _, section := range content.FallbackSections() {
		s := section
		tabs := s.Tabs
		s.ID = 0
		s.Tabs = nil
		if err := sectionRepo.CreateSection(ctx, &s); err != nil {
			log.Fatal("seed section:", err)
		}
		for _, tab := range tabs {
			t := tab
			t.ID = 0
			t.SectionID = s.ID
			if err := sectionRepo.CreateTab(ctx, &t); err != nil {
				log.Fatal("seed service tab:", err)
			}
		}
	}

	// ================== LEGAL PAGES ==================
	log.Println("Creating legal pages...")

	legalRepo := repository.NewLegalPageRepository(db)
	pages := []domain.LegalPage{
		{
			PageType: "privacy",
			Title:    "Privacy Policy",
			Content:  "<h2>Privacy Policy</h2><p>WheelStreet stores the contact details you submit through the enquiry form and uses them only to respond to your request.</p>",
			Active:   true,
		},
		{
			PageType: "terms",
			Title:    "Terms of Service",
			Content:  "<h2>Terms of Service</h2><p>Offers published on this site are informational and do not constitute a binding quote until confirmed in writing.</p>",
			Active:   true,
		},
		{
			PageType: "cookies",
			Title:    "Cookie Policy",
			Content:  "<h2>Cookie Policy</h2><p>We use only functional cookies required for the site to operate.</p>",
			Active:   true,
		},
	}
	for _, page := range pages {
		p := page
		if err := legalRepo.Create(ctx, &p); err != nil {
			log.Fatal("seed legal page:", err)
		}
	}

	log.Println("Seed complete.")
	log.Println("Admin login: admin@wheelstreet.lt / admin123")
}
