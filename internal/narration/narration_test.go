package narration

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericogr/mythic-arena/internal/battle"
)

func strPtr(s string) *string { return &s }

func sampleRequest(style battle.Style, winner string) Request {
	req := Request{
		Combatant1: battle.Snapshot{ID: "1", Name: "Perseus", Kind: battle.KindCharacter, Stats: battle.CombatStats{MaxHP: 100}},
		Combatant2: battle.Snapshot{ID: "2", Name: "Medusa", Kind: battle.KindCreature, Stats: battle.CombatStats{MaxHP: 90}},
		Log: []battle.CombatAction{
			{Round: 1, AttackerName: "Perseus", DefenderName: "Medusa", Description: "Perseus strikes Medusa for 20 damage."},
			{Round: 2, AttackerName: "Medusa", DefenderName: "Perseus", Description: "Medusa attacks Perseus, but Perseus dodges the blow!"},
			{Round: 3, AttackerName: "Perseus", DefenderName: "Medusa", Description: "Perseus lands a critical hit on Medusa for 70 damage! Medusa is defeated!"},
		},
		Style:      style,
		BattleType: battle.TypeDuel,
		Arena:      "the Gorgon's cave",
	}
	if winner != "" {
		req.Winner = battle.Winner{ID: strPtr("1"), Name: strPtr(winner), Kind: battle.KindCharacter}
	}
	return req
}

func TestTemplate_Deterministic(t *testing.T) {
	req := sampleRequest(battle.StyleEpic, "Perseus")
	a, err := Template{}.Narrate(context.Background(), req)
	require.NoError(t, err)
	b, _ := Template{}.Narrate(context.Background(), req)
	assert.Equal(t, a, b)

	assert.True(t, strings.HasPrefix(a, "In the Gorgon's cave, Perseus and Medusa"), a)
	for _, act := range req.Log {
		assert.Contains(t, a, act.Description)
	}
	assert.Contains(t, a, "Perseus stands triumphant")
}

func TestTemplate_AllStylesAndDraw(t *testing.T) {
	for _, style := range []battle.Style{battle.StyleEpic, battle.StyleComedic, battle.StyleTragic, battle.StyleDramatic, battle.StylePoetic} {
		out := Render(sampleRequest(style, ""))
		assert.NotEmpty(t, out, "style %s", style)
		assert.Contains(t, out, "3", "style %s should mention the round count", style)
		assert.NotContains(t, out, "%!", "style %s has a broken format verb", style)
	}
}

func TestTemplate_EmptyLogAndArena(t *testing.T) {
	req := sampleRequest(battle.StyleDramatic, "")
	req.Log = nil
	req.Arena = "  "
	out := Render(req)
	assert.Contains(t, out, defaultArena)
	assert.NotEmpty(t, strings.TrimSpace(out))
}

type stubNarrator struct {
	text  string
	err   error
	delay time.Duration
	calls int32
}

func (s *stubNarrator) Narrate(ctx context.Context, _ Request) (string, error) {
	atomic.AddInt32(&s.calls, 1)
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return s.text, s.err
}

func TestResilient_UsesPrimary(t *testing.T) {
	primary := &stubNarrator{text: "  A song of bronze.  "}
	req := sampleRequest(battle.StyleEpic, "Perseus")
	req.UseAI = true

	text, source := NewResilient(primary, time.Second).Narrate(context.Background(), req)
	assert.Equal(t, "A song of bronze.", text)
	assert.Equal(t, SourceAI, source)
}

func TestResilient_FallsBack(t *testing.T) {
	req := sampleRequest(battle.StylePoetic, "Perseus")
	req.UseAI = true
	want := Render(req)

	cases := map[string]*stubNarrator{
		"error":   {err: errors.New("upstream down")},
		"empty":   {text: "   "},
		"timeout": {text: "too late", delay: time.Second},
	}
	for name, primary := range cases {
		t.Run(name, func(t *testing.T) {
			text, source := NewResilient(primary, 20*time.Millisecond).Narrate(context.Background(), req)
			assert.Equal(t, want, text)
			assert.Equal(t, SourceTemplate, source)
		})
	}
}

func TestResilient_AIDisabled(t *testing.T) {
	primary := &stubNarrator{text: "unused"}
	req := sampleRequest(battle.StyleComedic, "")

	text, source := NewResilient(primary, time.Second).Narrate(context.Background(), req)
	assert.Equal(t, Render(req), text)
	assert.Equal(t, SourceTemplate, source)
	assert.Zero(t, atomic.LoadInt32(&primary.calls))

	req.UseAI = true
	text, source = NewResilient(nil, 0).Narrate(context.Background(), req)
	assert.NotEmpty(t, text)
	assert.Equal(t, SourceTemplate, source)
}

type chatStub struct {
	mu      sync.Mutex
	prompts []string
	calls   int32
	release chan struct{}
	reply   string
	err     error
}

func (c *chatStub) ChatCompletion(_ context.Context, _, user string) (string, error) {
	atomic.AddInt32(&c.calls, 1)
	c.mu.Lock()
	c.prompts = append(c.prompts, user)
	c.mu.Unlock()
	if c.release != nil {
		<-c.release
	}
	return c.reply, c.err
}

func TestOpenAI_PromptTokens(t *testing.T) {
	o := NewOpenAI(&chatStub{}, "m", "{{style}}|{{arena}}|{{combatants}}|{{log}}")
	p := o.Prompt(sampleRequest(battle.StyleTragic, "Perseus"))

	parts := strings.SplitN(p, "|", 4)
	require.Len(t, parts, 4)
	assert.Equal(t, "tragic", parts[0])
	assert.Equal(t, "the Gorgon's cave", parts[1])
	assert.Equal(t, "Perseus (character, 100 HP) and Medusa (creature, 90 HP)", parts[2])
	assert.Contains(t, parts[3], "Round 1: Perseus strikes Medusa for 20 damage.")
	assert.True(t, strings.HasSuffix(parts[3], "Winner: Perseus"))
}

func TestOpenAI_DefaultTemplate(t *testing.T) {
	o := NewOpenAI(&chatStub{}, "m", "  ")
	p := o.Prompt(sampleRequest(battle.StyleEpic, ""))
	assert.Contains(t, p, "epic narration")
	assert.Contains(t, p, "Result: draw")
}

func TestOpenAI_DedupesConcurrentRequests(t *testing.T) {
	stub := &chatStub{reply: "One tale for all.", release: make(chan struct{})}
	o := NewOpenAI(stub, "dedupe-test", "")
	req := sampleRequest(battle.StyleEpic, "Perseus")
	req.Arena = "dedupe arena"

	const n = 5
	var wg sync.WaitGroup
	results := make([]string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			text, err := o.Narrate(context.Background(), req)
			assert.NoError(t, err)
			results[i] = text
		}(i)
	}
	// Let the goroutines join the in-flight call before releasing it.
	time.Sleep(50 * time.Millisecond)
	close(stub.release)
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, "One tale for all.", r)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&stub.calls))
}

func TestOpenAI_PropagatesErrors(t *testing.T) {
	o := NewOpenAI(&chatStub{err: errors.New("quota")}, "err-test", "")
	_, err := o.Narrate(context.Background(), sampleRequest(battle.StyleEpic, "Perseus"))
	assert.EqualError(t, err, "quota")
}
