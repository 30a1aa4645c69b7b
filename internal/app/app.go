// Package app wires configuration, storage, rendering and HTTP routing
// into the runnable server.
package app

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/dawati-cards/dawati/internal/config"
	"github.com/dawati-cards/dawati/internal/db"
	"github.com/dawati-cards/dawati/internal/http/api/front"
	"github.com/dawati-cards/dawati/internal/http/web"
	"github.com/dawati-cards/dawati/internal/logging"
	"github.com/dawati-cards/dawati/internal/render"
	"github.com/dawati-cards/dawati/internal/storage"
	"github.com/dawati-cards/dawati/internal/webui"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Migrate opens the database and runs migrations.
func Migrate(ctx context.Context, cfg config.AppConfig) error {
	configPath := config.ResolveConfigPath(cfg.ConfigPath)
	conf, errLoad := config.Load(configPath)
	if errLoad != nil {
		return errLoad
	}
	conn, errOpen := db.Open(conf.Database.DSN)
	if errOpen != nil {
		return errOpen
	}
	return db.Migrate(conn)
}

// RunServer boots the invitation card server.
func RunServer(ctx context.Context, cfg config.AppConfig) error {
	configPath := config.ResolveConfigPath(cfg.ConfigPath)
	conf, errLoad := config.Load(configPath)
	if errLoad != nil {
		return errLoad
	}
	logging.Setup(conf.Log)

	webBundle, errBundle := webui.Load()
	if errBundle != nil {
		return errBundle
	}

	conn, errOpen := db.Open(conf.Database.DSN)
	if errOpen != nil {
		return errOpen
	}
	if errMigrate := db.Migrate(conn); errMigrate != nil {
		return errMigrate
	}

	store, errStore := storage.New(conf.Storage.Dir, conf.Server.BaseURL)
	if errStore != nil {
		return errStore
	}
	renderer, errRender := render.New()
	if errRender != nil {
		return errRender
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogMiddleware(), webUIRootMiddleware(webBundle.IndexHTML))

	front.RegisterFrontRoutes(engine, conn, conf, store, renderer)
	web.RegisterWebRoutes(engine, conn, renderer, conf.Storage.Dir)
	engine.StaticFS("/assets", webBundle.AssetsFS)
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	distFS := webBundle.DistFS
	fileServer := http.FileServer(http.FS(distFS))
	engine.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.Status(http.StatusNotFound)
			return
		}
		requestPath := c.Request.URL.Path
		if isAPIRoute(requestPath) {
			c.Status(http.StatusNotFound)
			return
		}
		cleanedPath := path.Clean("/" + requestPath)
		filePath := strings.TrimPrefix(cleanedPath, "/")
		if filePath != "" {
			fileInfo, errStat := fs.Stat(distFS, filePath)
			if errStat == nil && !fileInfo.IsDir() {
				fileServer.ServeHTTP(c.Writer, c.Request)
				return
			}
			if requestPath == "/assets" || strings.HasPrefix(requestPath, "/assets/") || strings.Contains(path.Base(filePath), ".") {
				c.Status(http.StatusNotFound)
				return
			}
		}
		// Client-side routes fall through to the app shell.
		c.Data(http.StatusOK, "text/html; charset=utf-8", webBundle.IndexHTML)
	})

	server := &http.Server{
		Addr:              conf.Server.Addr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("starting server addr=%s config=%s", conf.Server.Addr, configPath)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if errShutdown := server.Shutdown(shutdownCtx); errShutdown != nil {
			return errShutdown
		}
		return nil
	case errServe := <-errCh:
		if errors.Is(errServe, http.ErrServerClosed) {
			return nil
		}
		return errServe
	}
}

// requestLogMiddleware logs one line per completed request.
func requestLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(log.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Debug("request")
	}
}

// webUIRootMiddleware serves the index HTML at the root path.
func webUIRootMiddleware(indexHTML []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			return
		}
		if c.Request.URL.Path != "/" {
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
		c.Abort()
	}
}

// isAPIRoute reports whether a path targets API endpoints.
func isAPIRoute(requestPath string) bool {
	if requestPath == "/healthz" || strings.HasPrefix(requestPath, "/healthz/") {
		return true
	}
	apiPrefixes := []string{"/v0", "/card", "/uploads"}
	for _, prefix := range apiPrefixes {
		if requestPath == prefix || strings.HasPrefix(requestPath, prefix+"/") {
			return true
		}
	}
	return false
}
