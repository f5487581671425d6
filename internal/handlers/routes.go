package handlers

import (
	"net/http"

	"github.com/developia-II/jewellery-storefront/internal/adapters/repository"
	"github.com/developia-II/jewellery-storefront/internal/middleware"
	"github.com/developia-II/jewellery-storefront/internal/models"
	"github.com/developia-II/jewellery-storefront/internal/notify"
	"github.com/developia-II/jewellery-storefront/internal/services/importer"
	"github.com/developia-II/jewellery-storefront/internal/services/media"
	"github.com/developia-II/jewellery-storefront/internal/services/vision"
	"github.com/developia-II/jewellery-storefront/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

type Repositories struct {
	Products     repository.ProductRepository
	Categories   repository.CategoryRepository
	Collections  repository.CollectionRepository
	Testimonials repository.TestimonialRepository
	Contacts     repository.ContactRepository
	HomePage     repository.HomePageRepository
	Catalogs     repository.CatalogRepository
	Users        repository.UserRepository
}

func NewRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		Products:     repository.NewProductRepository(db),
		Categories:   repository.NewCategoryRepository(db),
		Collections:  repository.NewCollectionRepository(db),
		Testimonials: repository.NewTestimonialRepository(db),
		Contacts:     repository.NewContactRepository(db),
		HomePage:     repository.NewHomePageRepository(db),
		Catalogs:     repository.NewCatalogRepository(db),
		Users:        repository.NewUserRepository(db),
	}
}

// Options wires SetupRoutes. Repos is nil when the database is unreachable.
// Assets, Analyzer and Notifier may be nil when not configured.
type Options struct {
	Repos         *Repositories
	Assets        media.AssetHost
	Analyzer      vision.Analyzer
	Notifier      notify.Notifier
	JWTSecret     string
	AutoProvision bool
	MediaFolder   string
	CORSOrigins   []string
	ServiceName   string
}

func SetupRoutes(router *gin.Engine, opts Options) {
	logrus.Info("Setting up routes...")

	router.Use(cors.New(corsConfig(opts.CORSOrigins)))
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, utils.ErrorResponse("Method not allowed"))
	})
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, utils.ErrorResponse("Route not found"))
	})

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Server is running!",
			"status":  "ok",
		})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"service":  opts.ServiceName,
			"database": opts.Repos != nil,
		})
	})

	if opts.Repos == nil {
		logrus.Warn("Database not connected - running with limited functionality")
		router.Any("/api/*path", func(c *gin.Context) {
			c.JSON(http.StatusServiceUnavailable, utils.ErrorResponse(
				"The server is running but could not connect to the database. Please check server logs."))
		})
		return
	}

	logrus.Info("Database connected - setting up database routes")
	repos := opts.Repos
	authHandler := NewAuthHandler(repos.Users, opts.JWTSecret, opts.AutoProvision)
	productHandler := NewProductHandler(repos.Products)
	categoryHandler := NewCategoryHandler(repos.Categories)
	collectionHandler := NewCollectionHandler(repos.Collections)
	testimonialHandler := NewTestimonialHandler(repos.Testimonials)
	catalogHandler := NewCatalogHandler(repos.Catalogs)
	contactHandler := NewContactHandler(repos.Contacts, opts.Notifier)
	homePageHandler := NewHomePageHandler(repos.HomePage)
	mediaHandler := NewMediaHandler(opts.Assets, repos.Products, opts.MediaFolder)
	importHandler := NewImportHandler(importer.NewService(opts.Analyzer, repos.Categories, repos.Products))

	requireAdmin := []gin.HandlerFunc{
		middleware.AuthMiddleware(opts.JWTSecret),
		middleware.RoleMiddleware(models.RoleAdmin),
	}
	admin := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, requireAdmin...), h)
	}

	api := router.Group("/api")

	api.POST("/auth/login", authHandler.LoginUser)

	products := api.Group("/products")
	{
		products.GET("", productHandler.ListProducts)
		products.POST("", admin(productHandler.CreateProduct)...)
		products.PUT("", admin(productHandler.UpdateProduct)...)
		products.DELETE("", admin(productHandler.DeleteProduct)...)
	}

	categories := api.Group("/categories")
	{
		categories.GET("", categoryHandler.GetAllProductCategories)
		categories.POST("", admin(categoryHandler.CreateProductCategory)...)
		categories.PUT("", admin(categoryHandler.UpdateProductCategory)...)
		categories.DELETE("", admin(categoryHandler.DeleteProductCategory)...)
	}

	collections := api.Group("/collections")
	{
		collections.GET("", collectionHandler.ListCollections)
		collections.POST("", admin(collectionHandler.CreateCollection)...)
		collections.PUT("", admin(collectionHandler.UpdateCollection)...)
		collections.DELETE("", admin(collectionHandler.DeleteCollection)...)
	}

	testimonials := api.Group("/testimonials")
	{
		testimonials.GET("", testimonialHandler.ListTestimonials)
		testimonials.POST("", admin(testimonialHandler.CreateTestimonial)...)
		testimonials.PUT("", admin(testimonialHandler.UpdateTestimonial)...)
		testimonials.DELETE("", admin(testimonialHandler.DeleteTestimonial)...)
	}

	catalogs := api.Group("/catalogs")
	{
		catalogs.GET("", catalogHandler.ListCatalogs)
		catalogs.POST("", admin(catalogHandler.CreateCatalog)...)
		catalogs.PUT("", admin(catalogHandler.UpdateCatalog)...)
		catalogs.DELETE("", admin(catalogHandler.DeleteCatalog)...)
	}

	contact := api.Group("/contact")
	{
		contact.POST("", contactHandler.SubmitContact)
		contact.GET("", admin(contactHandler.ListContacts)...)
		contact.PUT("", admin(contactHandler.UpdateContactStatus)...)
	}

	homepage := api.Group("/homepage")
	{
		homepage.GET("", homePageHandler.GetHomePage)
		homepage.PUT("", admin(homePageHandler.UpdateHomePage)...)
	}

	mediaRoutes := api.Group("/media")
	mediaRoutes.Use(requireAdmin...)
	{
		mediaRoutes.POST("/upload-signature", mediaHandler.UploadSignature)
		mediaRoutes.GET("/list", mediaHandler.ListMedia)
		mediaRoutes.POST("/delete", mediaHandler.DeleteMedia)
		mediaRoutes.POST("/upload", mediaHandler.UploadImage)
		mediaRoutes.POST("/analyze-and-import", importHandler.AnalyzeAndImport)
		mediaRoutes.POST("/import", importHandler.ImportProducts)
	}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	return cfg
}
