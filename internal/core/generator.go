package core

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dhabedank/recipe-gpt/internal/logging"
)

// Generator runs the recipe pipeline: prompt, model call, validation, persistence.
type Generator struct {
	gateway Gateway
	store   RecipeStore // nil disables persistence
	log     logrus.FieldLogger
}

// NewGenerator creates a generator. A nil store skips persistence.
func NewGenerator(gateway Gateway, store RecipeStore, log logrus.FieldLogger) *Generator {
	if log == nil {
		log = logging.Discard()
	}
	return &Generator{
		gateway: gateway,
		store:   store,
		log:     log,
	}
}

// Generate turns a dish description into a validated, stored Recipe.
//
// Exactly one model call and one validation attempt are made. The returned
// error is one of ErrEmptyPrompt, *GatewayError, *ParseError, *ShapeError or
// *StoreError; front ends collapse all of them into one message.
func (g *Generator) Generate(ctx context.Context, description string) (*Recipe, error) {
	if strings.TrimSpace(description) == "" {
		g.log.WithField("kind", FailureKind(ErrEmptyPrompt)).Warn("recipe generation rejected")
		return nil, ErrEmptyPrompt
	}

	prompt := BuildPrompt(description)
	log := g.log.WithFields(logrus.Fields{
		"gateway":      g.gateway.Name(),
		"prompt_chars": len(prompt.User),
	})

	start := time.Now()
	raw, err := g.gateway.Complete(ctx, prompt.System, prompt.User)
	if err != nil {
		err = &GatewayError{Adapter: g.gateway.Name(), Err: err}
		log.WithError(err).WithField("kind", FailureKind(err)).Error("recipe generation failed")
		return nil, err
	}
	log = log.WithFields(logrus.Fields{
		"response_chars": len(raw),
		"elapsed":        time.Since(start).Truncate(time.Millisecond).String(),
	})

	recipe, err := ValidateRecipe(raw)
	if err != nil {
		log.WithError(err).WithField("kind", FailureKind(err)).Warn("recipe rejected")
		return nil, err
	}

	if g.store != nil {
		id, err := g.store.Insert(recipe)
		if err != nil {
			err = &StoreError{Op: "insert", Err: err}
			log.WithError(err).WithField("kind", FailureKind(err)).Error("recipe not saved")
			return nil, err
		}
		log = log.WithFields(logrus.Fields{"store": g.store.Name(), "id": id})
	}

	log.WithField("title", recipe.Title).Info("recipe generated")
	return recipe, nil
}
