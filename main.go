package main

import (
	"log"
	"net/http"
	"os"

	"civicdispatch-be/config"
	"civicdispatch-be/controllers"
	"civicdispatch-be/notify"
	"civicdispatch-be/routes"
	"civicdispatch-be/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func buildStore() store.Store {
	switch os.Getenv("STORE_BACKEND") {
	case "file":
		path := os.Getenv("STORE_FILE")
		if path == "" {
			path = "civic_issues.json"
		}
		log.Printf("Using file store at %s", path)
		return store.NewFileStore(path)
	case "", "mongo":
		return store.NewMongoStore(config.GetCollection("issues"))
	default:
		log.Fatalf("Unknown STORE_BACKEND %q (want mongo or file)", os.Getenv("STORE_BACKEND"))
		return nil
	}
}

func buildNotifier() notify.Notifier {
	if os.Getenv("REDIS_ADDRESS") == "" {
		log.Println("No REDIS_ADDRESS set, change notifications stay in-process")
		return notify.NewLocal()
	}
	config.ConnectRedis()
	return notify.NewRedis(config.RedisClient)
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	issueStore := buildStore()
	notifier := buildNotifier()

	policy, err := config.DispatchPolicy()
	if err != nil {
		log.Fatalf("Failed to configure dispatch policy: %v", err)
	}

	viewerID := uuid.NewString()
	if err := controllers.Setup(issueStore, policy, notifier, viewerID); err != nil {
		log.Fatalf("Failed to subscribe to change notifications: %v", err)
	}
	log.Printf("Viewer %s ready", viewerID)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	routes.AuthRoutes(r)
	routes.IssueRoutes(r)
	routes.DashboardRoutes(r)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	if err := r.Run(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
