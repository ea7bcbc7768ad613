package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	bloghandler "github.com/contentforge/content-api/internal/blog/handler"
	blogrepo "github.com/contentforge/content-api/internal/blog/repository"
	blogservice "github.com/contentforge/content-api/internal/blog/service"
	"github.com/contentforge/content-api/internal/config"
	"github.com/contentforge/content-api/internal/database"
	producthandler "github.com/contentforge/content-api/internal/product/handler"
	productrepo "github.com/contentforge/content-api/internal/product/repository"
	productservice "github.com/contentforge/content-api/internal/product/service"
	"github.com/contentforge/content-api/internal/uploads"
	"github.com/contentforge/content-api/pkg/logger"
	"github.com/contentforge/content-api/pkg/metrics"
	"github.com/contentforge/content-api/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// logging level is controlled with LOG_LEVEL env: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: mongo=%v redis=%v uploads=%s", cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.Uploads.Backend)

	r := gin.New()

	// Lightweight CORS middleware for dev/test: set common headers and respond
	// to OPTIONS. Production should sit behind a stricter policy.
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	r.Use(gin.Logger(), gin.Recovery())

	// Connect to Redis early so the rate limiter can use it when configured
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		} else {
			logger.Infof("Connected to Redis: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimit(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	// Upload sink selection: local disk by default, MinIO when configured
	var sink uploads.Sink
	switch cfg.Uploads.Backend {
	case "minio":
		s, err := uploads.NewMinIOSink(uploads.MinIOOptions{
			Endpoint:      cfg.MinIO.Endpoint,
			AccessKey:     cfg.MinIO.AccessKey,
			SecretKey:     cfg.MinIO.SecretKey,
			UseSSL:        cfg.MinIO.UseSSL,
			Bucket:        cfg.MinIO.Bucket,
			PublicBaseURL: cfg.Uploads.PublicBaseURL,
		})
		if err != nil {
			logger.Fatalf("failed to initialize minio sink: %v", err)
		}
		sink = s
	default:
		s, err := uploads.NewDiskSink(cfg.Uploads.Dir, cfg.Uploads.PublicBaseURL)
		if err != nil {
			logger.Fatalf("failed to initialize disk sink: %v", err)
		}
		sink = s
		// serve the flat upload directory so stored URLs resolve
		r.Static("/uploads", s.Dir())
	}

	// Connect to MongoDB with retry/backoff to tolerate startup races
	ctx := context.Background()
	const maxAttempts = 5
	backoff := time.Second
	var client *mongo.Client
	var errConn error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		client, errConn = database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
		if errConn == nil {
			break
		}
		logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, errConn)
		if attempt < maxAttempts {
			time.Sleep(backoff)
			backoff *= 2
		}
	}
	if errConn != nil {
		logger.Fatalf("could not connect to MongoDB after %d attempts: %v", maxAttempts, errConn)
	}
	defer func() { _ = client.Disconnect(ctx) }()
	db := client.Database(cfg.MongoDB.Database)

	blogSvc := blogservice.New(blogrepo.NewMongoRepo(db.Collection("blogs")), sink)
	bloghandler.New(blogSvc, sink, cfg.Uploads.MaxBlogImages).Register(r)

	productSvc := productservice.New(productrepo.NewMongoRepo(db.Collection("products")), sink)
	producthandler.New(productSvc, sink).Register(r)

	uploads.RegisterUploadRoutes(r, sink)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness: 200 only when critical dependencies respond
	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := map[string]bool{}

		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		deps["mongo"] = client.Ping(pingCtx, nil) == nil
		if !deps["mongo"] {
			ready = false
		}

		if cfg.Redis.Host != "" && cfg.RateLimit.UseRedis {
			deps["redis"] = redisClient != nil && redisClient.Ping(pingCtx).Err() == nil
			if !deps["redis"] {
				ready = false
			}
		} else {
			deps["redis"] = true
		}

		status := http.StatusOK
		label := "ready"
		if !ready {
			status = http.StatusServiceUnavailable
			label = "not_ready"
		}
		c.JSON(status, gin.H{"status": label, "deps": deps, "uptime": fmt.Sprintf("%s", time.Since(startTime))})
	})

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Starting content API on %s (env=%s)", addr, cfg.Server.Environment)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
