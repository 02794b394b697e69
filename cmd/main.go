package main

import (
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/homeseek/backend/internal/app"
	"github.com/homeseek/backend/internal/config"
	"github.com/homeseek/backend/internal/controllers"
	"github.com/homeseek/backend/internal/middleware"
	"github.com/homeseek/backend/internal/repositories"
	"github.com/homeseek/backend/internal/routes"
	"github.com/homeseek/backend/internal/services"
	"github.com/homeseek/backend/internal/sessions"
	"github.com/homeseek/backend/internal/uploads"
	"github.com/homeseek/backend/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize app:", err)
	}
	defer application.Close()

	// Repositories
	ownerRepo := repositories.NewOwnerRepository(application.DB)
	rentPropertyRepo := repositories.NewRentPropertyRepository(application.DB)
	salePropertyRepo := repositories.NewSalePropertyRepository(application.DB)
	rentTransactionRepo := repositories.NewRentTransactionRepository(application.DB)
	saleTransactionRepo := repositories.NewSaleTransactionRepository(application.DB)
	userRepo := repositories.NewUserRepository(application.DB)

	// Session store: the single in-process shared mutable resource,
	// constructed once and injected everywhere.
	sessionStore := sessions.NewStore(cfg.SessionTTL)
	pictureSaver := uploads.NewSaver(cfg.UploadDir)

	// Services
	ownerService := services.NewOwnerService(ownerRepo)
	rentService := services.NewRentService(cfg, rentPropertyRepo, rentTransactionRepo,
		pictureSaver, services.NewFlatPeriodCalculator())
	saleService := services.NewSaleService(cfg, salePropertyRepo, saleTransactionRepo,
		pictureSaver, services.NewAmortizationCalculator())
	userService := services.NewUserService(userRepo, sessionStore)

	// Controllers
	healthController := controllers.NewHealthController(application)
	ownerController := controllers.NewOwnerController(ownerService)
	rentPropertyController := controllers.NewRentPropertyController(rentService)
	salePropertyController := controllers.NewSalePropertyController(saleService)
	rentTransactionController := controllers.NewRentTransactionController(rentService)
	saleTransactionController := controllers.NewSaleTransactionController(saleService)
	userController := controllers.NewUserController(userService, sessionStore)

	// Router setup
	router := mux.NewRouter()

	// Public routes
	router.HandleFunc(routes.Health, healthController.HealthCheckHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Owners, ownerController.ListOwnersHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.OwnerByID, ownerController.GetOwnerHandler).Methods(http.MethodGet)

	router.HandleFunc(routes.RentProperties, rentPropertyController.CreateRentPropertyHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.RentProperties, rentPropertyController.ListRentPropertiesHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.RentPropertyByID, rentPropertyController.GetRentPropertyHandler).Methods(http.MethodGet)

	router.HandleFunc(routes.SaleProperties, salePropertyController.CreateSalePropertyHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.SaleProperties, salePropertyController.ListSalePropertiesHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.SalePropertyByID, salePropertyController.GetSalePropertyHandler).Methods(http.MethodGet)

	router.HandleFunc(routes.Register, userController.RegisterHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.Login, userController.LoginHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.Logout, userController.LogoutHandler).Methods(http.MethodGet)

	// Secured routes
	secured := router.NewRoute().Subrouter()
	secured.Use(middleware.SessionMiddleware(sessionStore))
	secured.HandleFunc(routes.RentTransactions, rentTransactionController.BookRentHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.RentTransactionByID, rentTransactionController.GetRentTransactionHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.MyRentTransactions, rentTransactionController.MyRentTransactionsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.PayRent, rentTransactionController.PayRentHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.SaleTransactions, saleTransactionController.BookSaleHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.SaleTransactionByID, saleTransactionController.GetSaleTransactionHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.MySaleTransactions, saleTransactionController.MySaleTransactionsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.PaySale, saleTransactionController.PaySaleHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.Profile, userController.ProfileHandler).Methods(http.MethodGet)

	// Uploaded pictures, served back under static prefixes
	router.PathPrefix(routes.RentPicturesPrefix).Handler(http.StripPrefix(routes.RentPicturesPrefix,
		http.FileServer(http.Dir(filepath.Join(cfg.UploadDir, uploads.KindRent)))))
	router.PathPrefix(routes.SalePicturesPrefix).Handler(http.StripPrefix(routes.SalePicturesPrefix,
		http.FileServer(http.Dir(filepath.Join(cfg.UploadDir, uploads.KindSale)))))

	co := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "session_id"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		utils.Logger.Fatal("Server failed to start:", err)
	}
}
