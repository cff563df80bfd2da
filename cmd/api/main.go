package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"marcus/internal/config"
	"marcus/internal/database"
	"marcus/internal/domain"
	"marcus/internal/middleware"
	"marcus/internal/modules/auth"
	"marcus/internal/modules/movies"
	"marcus/internal/modules/music"
	jwtsvc "marcus/internal/pkg/jwt"
	"marcus/internal/repository"
	"marcus/internal/tmdb"
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
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.AccessTTL, cfg.RefreshTTL)
	tmdbClient := tmdb.New(cfg.TMDBBaseURL, cfg.TMDBAPIKey, cfg.TMDBLanguage)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	moviesService := movies.NewService(
		repository.NewMovieReactionRepository[domain.MovieMasterpiece](db),
		repository.NewMovieReactionRepository[domain.MovieWatchlist](db),
		repository.NewMovieReactionRepository[domain.MovieVote](db),
		repository.NewMovieReactionRepository[domain.MovieCritic](db),
	)
	moviesHandler := movies.NewHandler(moviesService, tmdbClient)

	musicService := music.NewService(
		repository.NewMusicReactionRepository[domain.MusicMasterpiece](db),
		repository.NewMusicReactionRepository[domain.MusicPlaylist](db),
		repository.NewMusicReactionRepository[domain.MusicVote](db),
		repository.NewMusicReactionRepository[domain.MusicCritic](db),
	)
	musicHandler := music.NewHandler(musicService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	api := r.Group("/api")
	protected := api.Group("")
	protected.Use(middleware.JWTAuth(j))

	authHandler.RegisterRoutes(api, protected)
	moviesHandler.RegisterRoutes(api, protected)

	musicPublic := api.Group("/music")
	musicProtected := protected.Group("/music")
	musicHandler.RegisterRoutes(musicPublic, musicProtected)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
