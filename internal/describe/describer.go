package describe

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dmitrijs2005/imob/internal/logging"
)

// Fallback is returned whenever no description could be generated.
const Fallback = "Descrição indisponível no momento. Por favor, escreva manualmente."

var errEmptyAnswer = errors.New("empty answer")

// Generator turns a prompt into text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Describer interface {
	Describe(ctx context.Context, req Request) string
}

type describer struct {
	gen     Generator
	timeout time.Duration
	log     logging.Logger
}

// New returns a Describer backed by gen. A positive timeout bounds each
// generation call.
func New(gen Generator, timeout time.Duration, log logging.Logger) Describer {
	if log == nil {
		log = logging.Discard()
	}
	return &describer{gen: gen, timeout: timeout, log: log}
}

func (d *describer) Describe(ctx context.Context, req Request) string {
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	text, err := d.gen.Generate(ctx, req.Prompt())
	if err == nil {
		text = strings.TrimSpace(text)
		if text == "" {
			err = errEmptyAnswer
		}
	}
	if err != nil {
		d.log.Warn(ctx, "description generation failed", "error", err)
		return Fallback
	}
	return text
}
