package api

import (
	"github.com/ericogr/mythic-arena/internal/service"
	"github.com/ericogr/mythic-arena/internal/storage"
)

// BattleHandler groups the roster and battle HTTP handlers.
type BattleHandler struct {
	repo    storage.Repository
	battles *service.BattleService
}

// NewBattleHandler creates a BattleHandler backed by repo and the battle
// service.
func NewBattleHandler(repo storage.Repository, battles *service.BattleService) *BattleHandler {
	return &BattleHandler{repo: repo, battles: battles}
}
