package narration

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ericogr/mythic-arena/internal/constants"
	"github.com/ericogr/mythic-arena/internal/dedupe"
	"github.com/ericogr/mythic-arena/internal/keys"
	"github.com/ericogr/mythic-arena/internal/logging"
)

// DefaultPromptTemplate is used when the configuration does not provide
// one. Tokens: {{style}}, {{arena}}, {{combatants}}, {{log}}.
const DefaultPromptTemplate = "Write a {{style}} narration, at most three short paragraphs, of a battle fought in {{arena}} between {{combatants}}. " +
	"Follow this combat log exactly, in order, without inventing a different outcome:\n{{log}}"

const systemPrompt = "You are a storyteller who narrates mythological battles."

// ChatClient is the subset of the OpenAI client the narrator needs.
type ChatClient interface {
	ChatCompletion(ctx context.Context, system, user string) (string, error)
}

// OpenAI narrates battles through a chat completion model. Identical
// concurrent requests share a single upstream call.
type OpenAI struct {
	client   ChatClient
	model    string
	template string
}

// NewOpenAI builds an AI narrator. An empty template selects
// DefaultPromptTemplate; model only feeds the dedupe key.
func NewOpenAI(client ChatClient, model, template string) *OpenAI {
	template = strings.TrimSpace(template)
	if template == "" {
		template = DefaultPromptTemplate
	}
	return &OpenAI{client: client, model: model, template: template}
}

// Prompt renders the user prompt for req.
func (o *OpenAI) Prompt(req Request) string {
	arena := strings.TrimSpace(req.Arena)
	if arena == "" {
		arena = defaultArena
	}
	r := strings.NewReplacer(
		"{{style}}", string(req.Style),
		"{{arena}}", arena,
		"{{combatants}}", combatantsLine(req),
		"{{log}}", logLines(req),
	)
	return r.Replace(o.template)
}

func (o *OpenAI) Narrate(ctx context.Context, req Request) (string, error) {
	if o.client == nil {
		return "", errors.New("openai narrator has no client")
	}
	prompt := o.Prompt(req)
	key := keys.NarrationKey(o.model, prompt)

	ch := dedupe.NarrationGroup.DoChan(key, func() (interface{}, error) {
		// Detached from the first caller so a cancelled waiter does not
		// fail everyone else sharing the call; bounded by the client timeout.
		text, err := o.client.ChatCompletion(context.WithoutCancel(ctx), systemPrompt, prompt)
		if err != nil {
			logging.Error("narration openai failed", err, logging.Fields{constants.LogFieldKey: key})
			return "", err
		}
		logging.Info("narration openai success", logging.Fields{constants.LogFieldKey: key})
		return text, nil
	})

	select {
	case r := <-ch:
		if r.Err != nil {
			return "", r.Err
		}
		text, ok := r.Val.(string)
		if !ok {
			return "", fmt.Errorf("unexpected result type from singleflight")
		}
		return text, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func combatantsLine(req Request) string {
	return fmt.Sprintf("%s (%s, %d HP) and %s (%s, %d HP)",
		req.Combatant1.Name, req.Combatant1.Kind, req.Combatant1.Stats.MaxHP,
		req.Combatant2.Name, req.Combatant2.Kind, req.Combatant2.Stats.MaxHP)
}

func logLines(req Request) string {
	var b strings.Builder
	for _, act := range req.Log {
		fmt.Fprintf(&b, "Round %d: %s\n", act.Round, act.Description)
	}
	if w := req.winnerName(); w != "" {
		fmt.Fprintf(&b, "Winner: %s", w)
	} else {
		b.WriteString("Result: draw")
	}
	return b.String()
}
