package main

import (
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/vidhi3000/project-harmony-main/handlers"
	"github.com/vidhi3000/project-harmony-main/logging"
	"github.com/vidhi3000/project-harmony-main/session"
	"github.com/vidhi3000/project-harmony-main/store"
)

func main() {
	logging.InitLogger()
	logging.Logger.Info("Event ID: SERVICE_START, Description: Starting Harmony...")

	if err := godotenv.Load(".env"); err != nil {
		logging.Logger.Warnf("Event ID: ENV_LOAD_SKIPPED, Description: No .env file loaded: %v", err)
	}

	appStore := store.New().Seed()

	authURL := os.Getenv("AUTH_URL")
	if authURL != "" {
		anonKey := os.Getenv("AUTH_ANON_KEY")
		jwtSecret := os.Getenv("JWT_SECRET")
		if jwtSecret == "" {
			logging.Logger.Fatal("Event ID: CONFIG_MISSING, Description: JWT_SECRET must be set when AUTH_URL is configured")
		}

		interval := 30 * time.Second
		if raw := os.Getenv("SESSION_POLL_INTERVAL"); raw != "" {
			parsed, err := time.ParseDuration(raw)
			if err != nil {
				logging.Logger.Fatalf("Event ID: CONFIG_INVALID, Description: Bad SESSION_POLL_INTERVAL %q: %v", raw, err)
			}
			interval = parsed
		}

		watcher := session.NewWatcher(appStore, session.NewClient(authURL, anonKey), jwtSecret, interval)
		watcher.Start()
		defer watcher.Stop()
		logging.Logger.Infof("Event ID: SESSION_WATCHER_STARTED, Description: Watching identity provider at %s every %s", authURL, interval)
	} else {
		// Demo mode: no identity provider configured, sign in as the
		// seeded admin so the API is usable out of the box.
		admin := appStore.User("1")
		appStore.SetCurrentUser(admin)
		appStore.SetAuthenticated(true)
		logging.Logger.Warn("Event ID: DEMO_SESSION, Description: AUTH_URL not set, using the seeded admin session")
	}

	router := handlers.NewRouter(appStore)
	corsRouter := handlers.EnableCORS(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	serverAddress := ":" + port

	logging.Logger.Infof("Event ID: SERVER_LISTENING, Description: Harmony listening on %s", serverAddress)
	if err := http.ListenAndServe(serverAddress, corsRouter); err != nil {
		logging.Logger.Fatalf("Event ID: SERVER_FAILED, Description: Server stopped: %v", err)
	}
}
