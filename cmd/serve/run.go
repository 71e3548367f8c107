package serve

import (
	"fmt"

	"github.com/bgraf/figurekit/config"
	"github.com/bgraf/figurekit/document"
	"github.com/bgraf/figurekit/render"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Run loads the content directory and serves the API until the listener
// fails.
func Run(logger *zap.Logger) error {
	if !config.HasContentDirectory() {
		return fmt.Errorf("no content directory configured")
	}

	rootDirectory := config.ContentDirectory()

	store, err := document.NewStore(rootDirectory, logger)
	if err != nil {
		return err
	}

	templates, err := render.ReadTemplates(render.NewTagSet(), config.DateLocale())
	if err != nil {
		return err
	}

	gin.SetMode(gin.ReleaseMode)

	api := NewAPI(store, templates, render.Options{
		MediaPrefix:      config.MediaPrefix(),
		ContentDirectory: rootDirectory,
	}, logger)

	addr := config.ListenAddress()
	logger.Info("serving",
		zap.String("addr", addr),
		zap.String("root", rootDirectory),
		zap.Int("documents", len(store.Documents())))

	return api.Router().Run(addr)
}

// requestLogger logs one line per request through zap.
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		if c.Writer.Status() >= 500 {
			logger.Error("request", fields...)
		} else {
			logger.Debug("request", fields...)
		}
	}
}
