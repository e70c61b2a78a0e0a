package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	firebase "firebase.google.com/go/v4"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"

	dbschema "github.com/ad92co/FKMap/api/db"
	"github.com/ad92co/FKMap/api/geo"
	"github.com/ad92co/FKMap/api/models"
	"github.com/ad92co/FKMap/api/repositories"
	"github.com/ad92co/FKMap/api/router"
	"github.com/ad92co/FKMap/api/session"
)

// Default viewport: Paris, the app's original home.
var defaultRegion = models.Region{
	Latitude:       48.8566,
	Longitude:      2.3522,
	LatitudeDelta:  0.0922,
	LongitudeDelta: 0.0421,
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	dsn := os.Getenv("DB_SOURCE")
	if dsn == "" {
		log.Fatal("DB_SOURCE is not set")
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Robust retry: wait up to ~60s for DB to be ready
	if err := waitForDB(db, 60*time.Second); err != nil {
		log.Fatalf("cannot ping database after retries: %v", err)
	}
	fmt.Println("Successfully connected to PostgreSQL!")

	if err := dbschema.CreateSchema(db); err != nil {
		log.Fatalf("failed to create schema: %v", err)
	}

	userRepo := repositories.NewUserRepository(db)
	sessions := session.NewManager()

	ctx := context.Background()
	pinStore, err := setupPinStore(ctx, sessions)
	if err != nil {
		log.Fatalf("failed to set up pin store: %v", err)
	}

	geocoderURL := os.Getenv("GEOCODER_URL")
	if geocoderURL == "" {
		geocoderURL = "https://nominatim.openstreetmap.org"
	}
	geocoder := geo.NewNominatimGeocoder(geocoderURL, "fkmap/1.0")
	selector := geo.NewSelector(defaultRegion, geo.GrantedPermissions{}, geocoder)

	log.Println("Server running on :8080")
	log.Fatal(http.ListenAndServe(":8080", router.CreateRouter(userRepo, pinStore, selector, sessions)))
}

// setupPinStore picks the store variant: a Firestore live mirror when
// credentials are configured, an in-memory store otherwise.
func setupPinStore(ctx context.Context, sessions *session.Manager) (repositories.PinStore, error) {
	credentialsPath := os.Getenv("FIREBASE_CREDENTIALS_PATH")
	if credentialsPath == "" {
		log.Println("FIREBASE_CREDENTIALS_PATH not set, pins are kept in memory")
		return repositories.NewMemoryPinStore(), nil
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, err
	}
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, err
	}

	store := repositories.NewFirestorePinStore(client)
	go store.Watch(ctx, sessions.Subscribe())
	log.Println("Successfully connected to Firestore!")
	return store, nil
}

// waitForDB attempts to Ping the DB with exponential backoff until the timeout elapses.
func waitForDB(db *sql.DB, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	backoff := 500 * time.Millisecond
	for {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := db.PingContext(ctx)
		cancel()
		if err == nil {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("timeout waiting for DB: %w", err)
		}
		log.Printf("Waiting for database... (%v)\n", err)
		time.Sleep(backoff)
		if backoff < 5*time.Second {
			backoff *= 2
		}
	}
}
