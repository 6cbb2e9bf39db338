package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"remontkz/internal/adapter/api"
	"remontkz/internal/adapter/api/handler"
	apimiddleware "remontkz/internal/adapter/api/middleware"
	"remontkz/internal/adapter/api/router"
	"remontkz/internal/adapter/repository"
	"remontkz/internal/infrastructure/firebase"
	"remontkz/internal/infrastructure/storage"
	"remontkz/internal/infrastructure/websocket"
	"remontkz/internal/usecase"
	"remontkz/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption
	credentialsPath := ""

	// Service account JSON from the environment in production, a key file
	// path for local development.
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		credentialsPath = os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if credentialsPath == "" {
			credentialsPath = "./service-account.json"
		}

		if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", credentialsPath)
		}

		opt = option.WithCredentialsFile(credentialsPath)
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

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, cfg.FirebaseProject, credentialsPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	listingRepo := repository.NewFirestoreListingRepository(firestoreClient)
	requestRepo := repository.NewFirestoreRequestRepository(firestoreClient)
	messageRepo := repository.NewFirestoreMessageRepository(firestoreClient)
	reviewRepo := repository.NewFirestoreReviewRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	authUseCase := usecase.NewAuthUseCase(userRepo, firebaseAuthClient)
	listingUseCase := usecase.NewListingUseCase(listingRepo)
	requestUseCase := usecase.NewRequestUseCase(requestRepo, listingRepo)
	conversationUseCase := usecase.NewConversationUseCase(messageRepo, requestRepo, userRepo, wsManager)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, listingRepo)

	handler.Setup(authUseCase, listingUseCase, requestUseCase, conversationUseCase, reviewUseCase)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	roleMiddleware := apimiddleware.NewRoleMiddleware(userRepo)

	mediaHandler := handler.NewMediaHandler(storageClient, cfg.MaxUploadBytes)
	wsHandler := handler.NewWebSocketHandler(wsManager)
	healthHandler := handler.NewHealthHandler(firestoreClient, cfg.Environment)

	router.Setup(e, authMiddleware, roleMiddleware, mediaHandler, wsHandler, healthHandler)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
