package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ericogr/mythic-arena/internal/constants"
)

// ListCharacters returns all stored characters.
func (h *BattleHandler) ListCharacters(c *gin.Context) {
	chars, err := h.repo.ListCharacters()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchCharacters})
		return
	}
	out, err := MarshalIntoSnakeKeys(chars)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchCharacters})
		return
	}
	c.JSON(http.StatusOK, out)
}

// ListCreatures returns all stored creatures.
func (h *BattleHandler) ListCreatures(c *gin.Context) {
	creatures, err := h.repo.ListCreatures()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchCreatures})
		return
	}
	out, err := MarshalIntoSnakeKeys(creatures)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchCreatures})
		return
	}
	c.JSON(http.StatusOK, out)
}
