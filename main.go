package main

import (
	auth "Clarifier/internal/auth"
	basin "Clarifier/internal/calc/basin"
	geometry "Clarifier/internal/calc/geometry"
	autodesign "Clarifier/internal/calc/premium/autodesign"
	batch "Clarifier/internal/calc/premium/batch"
	importer "Clarifier/internal/calc/premium/importer"
	recommend "Clarifier/internal/calc/premium/recommend"
	report "Clarifier/internal/calc/report"
	summary "Clarifier/internal/calc/summary"
	designs "Clarifier/internal/designs"
	profile "Clarifier/internal/profile"
	repo "Clarifier/internal/repo"
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
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
		logrus.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: userRepo}
	profileH := &profile.ProfileHandler{Repo: userRepo}
	designsH := &designs.Handler{Repo: userRepo}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	secureApi.HandleFunc("/profile", profileH.GetProfile).Methods("GET")
	secureApi.HandleFunc("/profile", profileH.UpdateProfile).Methods("PATCH", "PUT")

	secureApi.HandleFunc("/designs", designsH.Save).Methods("POST")
	secureApi.HandleFunc("/designs", designsH.List).Methods("GET")
	secureApi.HandleFunc("/designs/{id:[0-9]+}", designsH.Get).Methods("GET")
	secureApi.HandleFunc("/designs/{id:[0-9]+}", designsH.Delete).Methods("DELETE")

	basinH := &basin.Handler{}
	geometryH := &geometry.Handler{}
	summaryH := &summary.Handler{}
	reportH := &report.Handler{}
	batchH := &batch.Handler{}
	importerH := &importer.Handler{}
	autodesignH := &autodesign.Handler{}
	recommendH := &recommend.Handler{}

	secureApi.HandleFunc("/tools/basin/calc", basinH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/basin/geometry", geometryH.Build).Methods("POST")
	secureApi.HandleFunc("/tools/basin/summary", summaryH.Table).Methods("POST")
	secureApi.HandleFunc("/tools/basin/export/csv", summaryH.ExportCSV).Methods("POST")
	secureApi.HandleFunc("/tools/basin/export/xlsx", summaryH.ExportXLSX).Methods("POST")
	secureApi.HandleFunc("/tools/basin/report/pdf", reportH.Generate).Methods("POST")
	secureApi.HandleFunc("/tools/basin/batch", batchH.Basin).Methods("POST")
	secureApi.HandleFunc("/tools/basin/import", importerH.Basin).Methods("POST")
	secureApi.HandleFunc("/tools/basin/autodesign", autodesignH.Basin).Methods("POST")
	secureApi.HandleFunc("/tools/basin/recommend/weir", recommendH.Weir).Methods("POST")

	mainFileServer := http.FileServer(http.Dir("./static/main"))
	mux.PathPrefix("/").
		Handler(mainFileServer)
}

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("no .env file, relying on environment")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := auth.InitDB()
	defer db.Close()

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}

	mux := mux.NewRouter()
	HandleList(mux, db)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		logrus.WithField("addr", addr).Info("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("server error")
		}
	}()

	<-ctx.Done()
	logrus.Info("shutdown signal received, closing active connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Fatal("server shutdown")
	}
	logrus.Info("server stopped")

	wg.Wait()
}
