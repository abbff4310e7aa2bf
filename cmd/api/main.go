package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"wheelstreet/internal/config"
	"wheelstreet/internal/database"
	"wheelstreet/internal/middleware"
	"wheelstreet/internal/modules/auth"
	"wheelstreet/internal/modules/content"
	"wheelstreet/internal/modules/lead"
	"wheelstreet/internal/modules/legal"
	"wheelstreet/internal/modules/team"
	"wheelstreet/internal/pkg/contentcache"
	jwtsvc "wheelstreet/internal/pkg/jwt"
	"wheelstreet/internal/pkg/notify"
	"wheelstreet/internal/repository"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	teamRepo := repository.NewTeamMemberRepository(db)
	sectionRepo := repository.NewSectionRepository(db)
	legalRepo := repository.NewLegalPageRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	teamService := team.NewService(teamRepo)
	teamHandler := team.NewHandler(teamService)

	leadService := lead.NewService(leadRepo, teamRepo, notify.FromConfig(cfg.SMTP))
	leadHandler := lead.NewHandler(leadService)

	contentService := content.NewService(sectionRepo, contentcache.New(cfg.CacheTTL))
	contentHandler := content.NewHandler(contentService)

	legalService := legal.NewService(legalRepo)
	legalHandler := legal.NewHandler(legalService)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.Metrics())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)
		leadHandler.RegisterPublicRoutes(v1)
		teamHandler.RegisterPublicRoutes(v1)
		contentHandler.RegisterPublicRoutes(v1)
		legalHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
		}

		admin := v1.Group("/admin")
		admin.Use(middleware.JWTAuth(j), middleware.AdminOnly())
		{
			leadHandler.RegisterAdminRoutes(admin)
			teamHandler.RegisterAdminRoutes(admin)
			contentHandler.RegisterAdminRoutes(admin)
			legalHandler.RegisterAdminRoutes(admin)
		}
	}

	log.Printf("listening on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
