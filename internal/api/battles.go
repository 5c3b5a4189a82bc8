package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ericogr/mythic-arena/internal/battle"
	"github.com/ericogr/mythic-arena/internal/constants"
	"github.com/ericogr/mythic-arena/internal/logging"
	"github.com/ericogr/mythic-arena/internal/service"
)

type combatantRef struct {
	Type string      `json:"type" binding:"required"`
	ID   json.Number `json:"id" binding:"required"`
}

type createBattleRequest struct {
	Combatant1       combatantRef `json:"combatant1" binding:"required"`
	Combatant2       combatantRef `json:"combatant2" binding:"required"`
	BattleType       battle.Type  `json:"battleType" binding:"required"`
	NarrationStyle   battle.Style `json:"narrationStyle" binding:"required"`
	ArenaDescription string       `json:"arenaDescription"`
	UseAINarration   bool         `json:"useAiNarration"`
	RNGSeed          string       `json:"rngSeed"`
}

type battleResponse struct {
	ID        string        `json:"id"`
	CreatedAt time.Time     `json:"created_at"`
	Result    battle.Result `json:"result"`
}

func toResponse(rec *battle.Record) battleResponse {
	return battleResponse{ID: rec.ID, CreatedAt: rec.CreatedAt, Result: rec.Result}
}

// writeError maps service and validation errors to HTTP status codes.
func writeError(c *gin.Context, err error, fallback string) {
	var verr *battle.ValidationError
	switch {
	case errors.Is(err, battle.ErrSelfBattle):
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrSelfBattle})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: verr.Error()})
	case errors.Is(err, service.ErrCombatantNotFound):
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrCombatantNotFound})
	case errors.Is(err, service.ErrBattleNotFound):
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrBattleNotFound})
	case errors.Is(err, service.ErrNotBattleOwner):
		c.JSON(http.StatusForbidden, gin.H{constants.JSONKeyError: constants.ErrNotBattleOwner})
	default:
		logging.Error(fallback, err, logging.Fields{constants.LogFieldPath: c.FullPath()})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: fallback})
	}
}

// CreateBattle runs a battle between two stored combatants and saves it.
func (h *BattleHandler) CreateBattle(c *gin.Context) {
	var req createBattleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest, constants.JSONKeyDetails: err.Error()})
		return
	}

	rec, err := h.battles.RunBattle(c.Request.Context(), service.RunBattleRequest{
		UserEmail:  userEmail(c),
		Combatant1: service.CombatantRef{Type: req.Combatant1.Type, ID: req.Combatant1.ID.String()},
		Combatant2: service.CombatantRef{Type: req.Combatant2.Type, ID: req.Combatant2.ID.String()},
		Config: battle.Config{
			BattleType:       req.BattleType,
			NarrationStyle:   req.NarrationStyle,
			ArenaDescription: req.ArenaDescription,
			UseAINarration:   req.UseAINarration,
			RNGSeed:          req.RNGSeed,
		},
	})
	if err != nil {
		writeError(c, err, constants.ErrFailedRunBattle)
		return
	}
	c.JSON(http.StatusCreated, toResponse(rec))
}

// ListBattles returns the caller's battle history, newest first.
func (h *BattleHandler) ListBattles(c *gin.Context) {
	limit := 0
	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidLimit})
			return
		}
		limit = n
	}
	recs, err := service.ListBattles(h.repo, userEmail(c), limit)
	if err != nil {
		writeError(c, err, constants.ErrFailedFetchBattles)
		return
	}
	out := make([]battleResponse, 0, len(recs))
	for i := range recs {
		out = append(out, toResponse(&recs[i]))
	}
	c.JSON(http.StatusOK, out)
}

// GetBattle returns one stored battle owned by the caller.
func (h *BattleHandler) GetBattle(c *gin.Context) {
	rec, err := service.GetBattle(h.repo, c.Param("battleID"), userEmail(c))
	if err != nil {
		writeError(c, err, constants.ErrFailedFetchBattles)
		return
	}
	c.JSON(http.StatusOK, toResponse(rec))
}
