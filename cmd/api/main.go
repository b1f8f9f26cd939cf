package main

import (
	"context"
	"log"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"campuscart/internal/adapter/api"
	"campuscart/internal/adapter/api/handler"
	apimiddleware "campuscart/internal/adapter/api/middleware"
	"campuscart/internal/adapter/api/router"
	"campuscart/internal/adapter/repository"
	"campuscart/internal/infrastructure/firebase"
	"campuscart/internal/usecase"
	"campuscart/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption
	if cfg.ServiceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(cfg.ServiceAccountJSON))
	} else if cfg.ServiceAccountPath != "" {
		opt = option.WithCredentialsFile(cfg.ServiceAccountPath)
	} else {
		log.Fatal("FIREBASE_SERVICE_ACCOUNT_JSON or FIREBASE_SERVICE_ACCOUNT_PATH must be set")
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	addressRepo := repository.NewFirestoreAddressRepository(firestoreClient)
	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	cartRepo := repository.NewFirestoreCartRepository(firestoreClient)
	orderRepo := repository.NewFirestoreOrderRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)

	authUseCase := usecase.NewAuthUseCase(userRepo, firebaseAuthClient)
	userUseCase := usecase.NewUserUseCase(userRepo, firebaseAuthClient)
	productUseCase := usecase.NewProductUseCase(productRepo, userRepo)
	cartUseCase := usecase.NewCartUseCase(cartRepo, productRepo)
	checkoutUseCase := usecase.NewCheckoutUseCase(cartRepo, addressRepo, userRepo, orderRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo)
	addressUseCase := usecase.NewAddressUseCase(addressRepo)

	handler.Setup(
		authUseCase,
		userUseCase,
		productUseCase,
		cartUseCase,
		checkoutUseCase,
		orderUseCase,
		addressUseCase,
	)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	roleMiddleware := apimiddleware.NewRoleMiddleware(userRepo)

	router.Setup(e, authMiddleware, roleMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
