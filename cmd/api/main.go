package main

import (
	"database/sql"
	"html/template"
	"log/slog"
	"os"
	"time"

	"github.com/apiflux/blogapi/internal/blogservice"
	"github.com/apiflux/blogapi/internal/common"
	"github.com/apiflux/blogapi/internal/userservice"
)

type application struct {
	config      *Config
	logger      *slog.Logger
	db          *sql.DB
	tokens      *userservice.TokenMaker
	userService *userservice.UserService
	blogService *blogservice.BlogService
	templates   map[string]*template.Template
	started     time.Time
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := loadConfig(".env")
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Schema initialization is idempotent; a database that is already
	// up to date is left untouched.
	if err := common.MigrateDB(cfg.DB.DSN); err != nil {
		logger.Error("failed to initialize the database schema", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db, err := common.NewDB(cfg.DB.DSN, 10, 5, 15*time.Minute)
	if err != nil {
		logger.Error("failed to connect to the database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer common.CloseDB(db)

	templates, err := newTemplateCache()
	if err != nil {
		logger.Error("failed to build the template cache", slog.String("error", err.Error()))
		os.Exit(1)
	}

	tokens := userservice.NewTokenMaker(cfg.JWT.Secret)

	app := &application{
		config:      cfg,
		logger:      logger,
		db:          db,
		tokens:      tokens,
		userService: userservice.NewUserService(db, tokens),
		blogService: blogservice.NewBlogService(db),
		templates:   templates,
		started:     time.Now(),
	}

	if err := app.serve(cfg.Port); err != nil {
		logger.Error("failed to start the server", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
