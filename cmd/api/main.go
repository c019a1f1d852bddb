package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nahid-mahmud/diacare-server/internal/config"
	"github.com/nahid-mahmud/diacare-server/internal/handlers"
	"github.com/nahid-mahmud/diacare-server/internal/middleware"
	"github.com/nahid-mahmud/diacare-server/internal/services"
)

func main() {
	cfg := config.Load()

	// --- Database Connection ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}
	db := client.Database(cfg.MongoDatabase)
	log.Println("Successfully connected to MongoDB!")

	// --- Initialize Services ---
	paymentSvc := services.NewPaymentService(cfg.StripeSecretKey)

	// --- Initialize Handlers with DB and Services ---
	secret := []byte(cfg.AccessTokenSecret)
	h := handlers.NewHandler(db, paymentSvc, secret)

	// --- Gin Router ---
	r := gin.Default()

	// --- Middleware ---
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
	}))

	requireToken := middleware.RequireToken(secret)
	requireAdmin := middleware.RequireAdmin(h.IsAdmin)

	// --- Routes ---
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "diacare server is running")
	})

	r.POST("/jwt", h.IssueToken)

	r.GET("/recommendation", h.GetRecommendations)
	r.POST("/recommendation", h.CreateRecommendation)

	r.GET("/banner", h.GetBanners)
	r.POST("/banner", h.CreateBanner)
	r.PATCH("/banner/updateStatus", h.UpdateBannerStatus)

	r.GET("/tests", h.GetTests)
	r.POST("/tests", h.CreateTest)
	r.GET("/test/:id", h.GetTest)
	r.PATCH("/test/:id", h.UpdateTest)
	r.GET("/testsCount", h.CountTests)
	r.DELETE("/test/:id", requireToken, requireAdmin, h.DeleteTest)

	r.GET("/users", h.GetUsers)
	r.POST("/users", h.RegisterUser)
	r.GET("/users/update/:id", h.GetUserProfile)
	r.PATCH("/users/update/:id", h.UpdateUserProfile)
	r.GET("/users/:email", requireToken, middleware.RequireSelf("email"), h.GetUserByEmail)
	r.GET("/users/admin/:email", requireToken, middleware.RequireSelf("email"), h.GetAdminFlag)
	r.GET("/users/status/:email", requireToken, middleware.RequireSelf("email"), h.GetActiveFlag)
	r.PATCH("/users/role/:id", requireToken, requireAdmin, h.UpdateUserRole)
	r.PATCH("/users/status/:id", requireToken, requireAdmin, h.UpdateUserStatus)
	r.DELETE("/users/:id", requireToken, requireAdmin, h.DeleteUser)

	r.GET("/bookedTests", requireToken, requireAdmin, h.GetBookedTests)
	r.GET("/bookedTest", requireToken, h.GetBookedTestsByEmail)
	r.POST("/bookedTests", h.CreateBookedTest)
	r.PATCH("/bookedTests/:id", requireToken, requireAdmin, h.AttachReport)
	r.DELETE("/bookedTest/:id", requireToken, h.DeleteBookedTest)

	r.POST("/create-payment-intent", h.CreatePaymentIntent)
	r.GET("/featured-tests", h.GetFeaturedTests)
	r.POST("/upload", h.UploadFile)

	log.Printf("Starting server on port %s", cfg.Port)
	r.Run(":" + cfg.Port)
}
