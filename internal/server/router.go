package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/dhabedank/recipe-gpt/internal/core"
)

// Generator produces one validated recipe per description.
// core.Generator satisfies it.
type Generator interface {
	Generate(ctx context.Context, description string) (*core.Recipe, error)
}

// Options configures the router.
type Options struct {
	// AllowOrigins lists CORS origins; "*" allows any.
	AllowOrigins []string
}

// NewRouter builds the engine serving GET /recipe.
func NewRouter(gen Generator, log logrus.FieldLogger, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger(log))
	r.Use(cors.New(corsConfig(opts.AllowOrigins)))

	h := &recipeHandler{gen: gen}
	r.GET("/recipe", h.get)

	return r
}

func corsConfig(origins []string) cors.Config {
	config := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", RequestIDHeader},
		ExposeHeaders: []string{RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || contains(origins, "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = origins
	}
	return config
}

type recipeHandler struct {
	gen Generator
}

// get answers GET /recipe?prompt=<text> with the recipe JSON, or 400 and
// the generic message for any failure, a missing prompt included.
func (h *recipeHandler) get(c *gin.Context) {
	log := Logger(c)

	prompt, ok := c.GetQuery("prompt")
	if !ok {
		log.WithField("kind", "missing_prompt").Warn("recipe request rejected")
		c.String(http.StatusBadRequest, core.RequestFailedMessage)
		return
	}

	recipe, err := h.gen.Generate(c.Request.Context(), prompt)
	if err != nil {
		log.WithFields(logrus.Fields{
			"kind":  core.FailureKind(err),
			"error": err,
		}).Warn("recipe request failed")
		c.String(http.StatusBadRequest, core.RequestFailedMessage)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
