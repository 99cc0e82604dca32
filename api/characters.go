package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s Server) CreateCharacter(c *gin.Context) {
	userID, ok := subject(c)
	if !ok {
		return
	}
	var req CreateCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := s.CharacterService.Create(c.Request.Context(), userID, toCharacter(req))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s Server) ListCharacters(c *gin.Context) {
	userID, ok := subject(c)
	if !ok {
		return
	}
	characters, err := s.CharacterService.GetAllByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, characters)
}

func (s Server) GetCharacter(c *gin.Context) {
	ch, err := s.CharacterService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ch)
}

// ownCharacter loads the character and rejects callers that don't own it.
func (s Server) ownCharacter(c *gin.Context, characterID string) bool {
	userID, ok := subject(c)
	if !ok {
		return false
	}
	ch, err := s.CharacterService.Get(c.Request.Context(), characterID)
	if err != nil {
		respondError(c, err)
		return false
	}
	if ch.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not your character"})
		return false
	}
	return true
}

func (s Server) UpdateCharacter(c *gin.Context) {
	id := c.Param("id")
	if !s.ownCharacter(c, id) {
		return
	}
	var req UpdateCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.CharacterService.Update(c.Request.Context(), id, toCharacterUpdate(req)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s Server) DeleteCharacter(c *gin.Context) {
	id := c.Param("id")
	if !s.ownCharacter(c, id) {
		return
	}
	if err := s.CharacterService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s Server) AddCharacterImage(c *gin.Context) {
	id := c.Param("id")
	if !s.ownCharacter(c, id) {
		return
	}
	url, err := s.CharacterService.AddImage(c.Request.Context(), id, c.Request.Body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, UploadResponse{URL: url})
}

func (s Server) SetCharacterProfileImage(c *gin.Context) {
	id := c.Param("id")
	if !s.ownCharacter(c, id) {
		return
	}
	url, err := s.CharacterService.SetProfileImage(c.Request.Context(), id, c.Request.Body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, UploadResponse{URL: url})
}
