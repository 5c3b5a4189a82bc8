package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ericogr/mythic-arena/internal/battle"
	"github.com/ericogr/mythic-arena/internal/constants"
	"github.com/ericogr/mythic-arena/internal/keys"
	"github.com/ericogr/mythic-arena/internal/logging"
	"github.com/ericogr/mythic-arena/internal/narration"
	"github.com/ericogr/mythic-arena/internal/storage"
)

var (
	ErrCombatantNotFound = errors.New("combatant not found")
	ErrBattleNotFound    = errors.New("battle not found")
	ErrNotBattleOwner    = errors.New("battle belongs to another user")
)

// BattleRepo is the minimal repository interface required by RunBattle.
type BattleRepo interface {
	GetCombatant(kind battle.Kind, id uint) (battle.Combatant, error)
	SaveBattle(rec *battle.Record) error
	RecordOutcome(res *battle.Result) error
}

// Simulator runs the battle engine.
type Simulator interface {
	Run(a, b battle.Combatant, cfg battle.Config) (*battle.Result, error)
}

// Narrator attaches prose to a result and reports which narrator wrote it.
type Narrator interface {
	Narrate(ctx context.Context, req narration.Request) (string, string)
}

// CombatantRef identifies one side of a battle request.
type CombatantRef struct {
	Type string
	ID   string
}

type RunBattleRequest struct {
	UserEmail  string
	Combatant1 CombatantRef
	Combatant2 CombatantRef
	Config     battle.Config
}

// BattleService runs, narrates and persists battles.
type BattleService struct {
	repo     BattleRepo
	sim      Simulator
	narrator Narrator
	now      func() time.Time
	newID    func() string
}

func NewBattleService(repo BattleRepo, sim Simulator, narrator Narrator) *BattleService {
	return &BattleService{
		repo:     repo,
		sim:      sim,
		narrator: narrator,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

type resolvedRef struct {
	kind battle.Kind
	id   uint
}

func parseRef(field string, ref CombatantRef) (resolvedRef, error) {
	kind, err := battle.ParseKind(ref.Type)
	if err != nil {
		return resolvedRef{}, err
	}
	id, err := strconv.ParseUint(strings.TrimSpace(ref.ID), 10, 64)
	if err != nil || id == 0 {
		return resolvedRef{}, &battle.ValidationError{Field: field + " id", Value: ref.ID, Reason: "must be a positive integer"}
	}
	return resolvedRef{kind: kind, id: uint(id)}, nil
}

func (r resolvedRef) placeholder() battle.Combatant {
	return battle.Combatant{Kind: r.kind, ID: strconv.FormatUint(uint64(r.id), 10)}
}

// RunBattle validates the request, loads both combatants, runs the engine,
// narrates the outcome and stores the record. Every validation happens
// before the engine runs.
func (s *BattleService) RunBattle(ctx context.Context, req RunBattleRequest) (*battle.Record, error) {
	ref1, err := parseRef("combatant1", req.Combatant1)
	if err != nil {
		return nil, err
	}
	ref2, err := parseRef("combatant2", req.Combatant2)
	if err != nil {
		return nil, err
	}
	if err := battle.ValidatePair(ref1.placeholder(), ref2.placeholder(), req.Config); err != nil {
		return nil, err
	}

	a, err := s.load(ref1)
	if err != nil {
		return nil, err
	}
	b, err := s.load(ref2)
	if err != nil {
		return nil, err
	}

	res, err := s.sim.Run(a, b, req.Config)
	if err != nil {
		return nil, err
	}
	text, source := s.narrator.Narrate(ctx, narration.NewRequest(res, req.Config))
	res.Narration = text

	key1 := keys.EntityKey(string(a.Kind), a.ID)
	key2 := keys.EntityKey(string(b.Kind), b.ID)
	rec := &battle.Record{
		ID:         s.newID(),
		CreatedAt:  s.now().UTC(),
		UserEmail:  req.UserEmail,
		MatchupKey: keys.MatchupKey(key1, key2),
		BattleType: res.BattleType,
		Result:     *res,
	}
	if !res.Winner.IsDraw() {
		rec.WinnerKey = keys.EntityKey(string(res.Winner.Kind), *res.Winner.ID)
	}
	if err := s.repo.SaveBattle(rec); err != nil {
		return nil, fmt.Errorf("save battle: %w", err)
	}
	// Counters are cosmetic; a failure here must not fail the battle.
	if err := s.repo.RecordOutcome(res); err != nil {
		logging.Error("failed to update win/loss counters", err, logging.Fields{constants.LogFieldBattleID: rec.ID})
	}

	logging.Info("battle finished", logging.Fields{
		constants.LogFieldBattleID:   rec.ID,
		constants.LogFieldUser:       rec.UserEmail,
		constants.LogFieldBattleType: string(res.BattleType),
		constants.LogFieldMatchup:    rec.MatchupKey,
		constants.LogFieldWinner:     rec.WinnerKey,
		constants.LogFieldRounds:     res.TotalRounds,
		constants.LogFieldSeed:       res.Seed,
		constants.LogFieldSource:     source,
	})
	return rec, nil
}

func (s *BattleService) load(ref resolvedRef) (battle.Combatant, error) {
	c, err := s.repo.GetCombatant(ref.kind, ref.id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return battle.Combatant{}, fmt.Errorf("%s %d: %w", ref.kind, ref.id, ErrCombatantNotFound)
		}
		return battle.Combatant{}, fmt.Errorf("load %s %d: %w", ref.kind, ref.id, err)
	}
	return c, nil
}
