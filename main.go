package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"Dogbone/internal/account"
	"Dogbone/internal/auth"
	"Dogbone/internal/calc/autodesign"
	"Dogbone/internal/calc/batch"
	"Dogbone/internal/calc/design"
	"Dogbone/internal/calc/importer"
	"Dogbone/internal/calc/recommend"
	"Dogbone/internal/calc/report"
	"Dogbone/internal/repo"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB) {
	userRepo := repo.NewPostgresDB(db)
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Env{JWTKey: []byte(tokenKey), Repo: userRepo}
	accountH := &account.Handler{Repo: userRepo}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.LoginHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	secureApi.HandleFunc("/profile", accountH.GetProfile).Methods("GET")
	secureApi.HandleFunc("/profile", accountH.UpdateProfile).Methods("PATCH", "PUT")
	secureApi.HandleFunc("/designs", accountH.ListDesigns).Methods("GET")
	secureApi.HandleFunc("/designs", accountH.SaveDesign).Methods("POST")
	secureApi.HandleFunc("/designs/{id:[0-9]+}", accountH.GetDesign).Methods("GET")

	designH := design.NewHandler()
	reportH := &report.Handler{}
	batchH := &batch.Handler{}
	importerH := &importer.Handler{}
	autodesignH := &autodesign.Handler{}
	recommendH := &recommend.Handler{}

	secureApi.HandleFunc("/tools/specimen/calc", designH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/specimen/validate", designH.Validate).Methods("POST")
	secureApi.HandleFunc("/tools/specimen/estimate", designH.Estimate).Methods("POST")
	secureApi.HandleFunc("/tools/specimen/stl", designH.STL).Methods("POST")
	secureApi.HandleFunc("/tools/specimen/preview", designH.PreviewSubmit).Methods("POST")
	secureApi.HandleFunc("/tools/specimen/preview", designH.PreviewLatest).Methods("GET")
	secureApi.HandleFunc("/tools/specimen/batch", batchH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/specimen/import", importerH.Specimens).Methods("POST")
	secureApi.HandleFunc("/tools/specimen/autodesign", autodesignH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/specimen/recommend", recommendH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")

	mux.PathPrefix("/").
		Handler(http.FileServer(http.Dir("./static/main")))
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment directly")
	}

	db := auth.InitDB()
	defer db.Close()

	router := mux.NewRouter()
	HandleList(router, db)
	handler := CORS(router)

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}
	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	log.Println("Starting server on", addr)
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received, closing active connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
