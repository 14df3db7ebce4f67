package routers

import (
	"time"

	"comparehubapi/catalog"
	"comparehubapi/comparison"
	"comparehubapi/config"
	"comparehubapi/controllers"
	"comparehubapi/middlewares"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

func Route(cfg *config.Config, logger *logrus.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(CORS())
	router.Use(middlewares.RequestID())
	router.Use(middlewares.RequestLogger(logger))

	api := controllers.NewAPI()

	client := catalog.NewClient(cfg.CatalogBaseURL, cfg.CatalogPageLimit, nil)
	cache := catalog.NewCache(nil)
	api.Catalog = catalog.NewService(client, cache, time.Duration(cfg.CacheTTLSeconds)*time.Second)

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.RedisHost + ":" + cfg.RedisPort,
		DB:   0,
	})
	api.Comparison = comparison.NewSet(comparison.NewRedisStore(redisClient, comparison.DefaultStorageKey))

	products := router.Group("/api/products")
	{
		products.GET("", api.GetProducts)
		products.GET("/metadata", api.GetProductMetadata)
		products.GET("/:id", api.GetProduct)
	}

	compare := router.Group("/api/comparison")
	{
		compare.GET("", api.GetComparison)
		compare.POST("", api.AddToComparison)
		compare.POST("/toggle", api.ToggleComparison)
		compare.DELETE("/:id", api.RemoveFromComparison)
		compare.DELETE("", api.ClearComparison)
		compare.GET("/share", api.ShareComparison)
		compare.GET("/resolve", api.ResolveComparison)
		compare.GET("/export", api.ExportComparison)
	}

	return router
}

// CORS Cross Origin Resource Sharing
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, "+
			"Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
