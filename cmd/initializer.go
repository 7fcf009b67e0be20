package main

import (
	"database/sql"
	"log"
	"net/http"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"xdimension/internal/config"
	"xdimension/internal/handlers"
	"xdimension/internal/repositories"
	"xdimension/internal/services"
	"xdimension/utils"
)

type application struct {
	errorLog       *log.Logger
	infoLog        *log.Logger
	db             *sql.DB
	jwtSecret      string
	itemHandler    *handlers.GameItemHandler
	itemRepo       *repositories.GameItemRepository
	commentHandler *handlers.CommentHandler
	commentRepo    *repositories.CommentRepository
	proxyHandler   *handlers.ItemsProxyHandler
	uploadHandler  *handlers.UploadHandler
}

func initializeApp(db *sql.DB, cfg config.Config, errorLog, infoLog *log.Logger) *application {
	// Repositories
	itemRepo := repositories.GameItemRepository{DB: db}
	commentRepo := repositories.CommentRepository{DB: db}

	// Services
	itemService := &services.GameItemService{ItemRepo: &itemRepo}
	commentService := &services.CommentService{CommentRepo: &commentRepo}
	upstreamClient := services.NewUpstreamClient(
		&http.Client{Timeout: 30 * time.Second},
		cfg.Upstream.BaseURL,
		cfg.Upstream.APIKey,
		cfg.Upstream.ListShape,
		cfg.Upstream.SearchShape,
	)
	storage := utils.NewStorage(
		cfg.S3.AccessKey, cfg.S3.SecretKey,
		cfg.S3.Bucket, cfg.S3.Region, cfg.S3.Endpoint, cfg.S3.PublicURL,
	)

	// Handlers
	itemHandler := &handlers.GameItemHandler{Service: itemService}
	commentHandler := &handlers.CommentHandler{Service: commentService}
	proxyHandler := &handlers.ItemsProxyHandler{Client: upstreamClient}
	uploadHandler := &handlers.UploadHandler{Storage: storage}

	return &application{
		errorLog:       errorLog,
		infoLog:        infoLog,
		db:             db,
		jwtSecret:      cfg.JWT.Secret,
		itemHandler:    itemHandler,
		itemRepo:       &itemRepo,
		commentHandler: commentHandler,
		commentRepo:    &commentRepo,
		proxyHandler:   proxyHandler,
		uploadHandler:  uploadHandler,
	}
}

func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Printf("Failed to open DB: %v", err)
		return nil, err
	}
	if err = db.Ping(); err != nil {
		log.Printf("Failed to ping DB: %v", err)
		return nil, err
	}
	db.SetMaxIdleConns(35)
	log.Println("Successfully connected to database")
	return db, nil
}

func addSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cross-Origin-Opener-Policy", "same-origin")
		w.Header().Set("Cross-Origin-Resource-Policy", "same-origin")
		next.ServeHTTP(w, r)
	})
}
