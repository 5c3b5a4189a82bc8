package narration

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ericogr/mythic-arena/internal/constants"
	"github.com/ericogr/mythic-arena/internal/logging"
)

// DefaultTimeout bounds a single AI narration attempt.
const DefaultTimeout = 20 * time.Second

// Source values reported by Resilient.Narrate.
const (
	SourceAI       = "ai"
	SourceTemplate = "template"
)

// Resilient runs the primary narrator under a timeout and falls back to the
// template whenever the primary is disabled, fails, times out or returns
// blank text.
type Resilient struct {
	primary  Narrator
	fallback Narrator
	timeout  time.Duration
}

// NewResilient wraps primary. A nil primary means template only; a
// non-positive timeout selects DefaultTimeout.
func NewResilient(primary Narrator, timeout time.Duration) *Resilient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Resilient{primary: primary, fallback: Template{}, timeout: timeout}
}

// Narrate always returns non-empty prose along with the narrator that
// produced it.
func (r *Resilient) Narrate(ctx context.Context, req Request) (string, string) {
	if req.UseAI && r.primary != nil {
		text, err := r.tryPrimary(ctx, req)
		if err == nil {
			return text, SourceAI
		}
		logging.Error("narration falling back to template", err, logging.Fields{constants.LogFieldSource: SourceTemplate})
	}
	text, err := r.fallback.Narrate(ctx, req)
	if err != nil || strings.TrimSpace(text) == "" {
		text = Render(req)
	}
	return text, SourceTemplate
}

func (r *Resilient) tryPrimary(ctx context.Context, req Request) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	text, err := r.primary.Narrate(ctx, req)
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", errors.New("narrator returned empty text")
	}
	return text, nil
}
