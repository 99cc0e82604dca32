package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"shadowWisper/services/quest"
)

func (s Server) CreateQuest(c *gin.Context) {
	userID, ok := subject(c)
	if !ok {
		return
	}
	var req CreateQuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := s.QuestService.Create(c.Request.Context(), userID, toQuest(req))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toQuestView(*created))
}

// ListQuests returns the quests visible to the caller, split into their own
// and the ones assigned to their characters. Optional query parameters:
// status (open, in-progress, done, all), start and end (RFC 3339, half-open
// window on createdAt).
func (s Server) ListQuests(c *gin.Context) {
	userID, ok := subject(c)
	if !ok {
		return
	}

	f := quest.Filter{Status: quest.StatusAll}
	if v := c.Query("status"); v != "" {
		f.Status = quest.Status(v)
		if f.Status != quest.StatusAll && !f.Status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
			return
		}
	}
	var err error
	if f.Start, err = parseTimeParam(c.Query("start")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start"})
		return
	}
	if f.End, err = parseTimeParam(c.Query("end")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end"})
		return
	}

	characters, err := s.CharacterService.GetAllByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	characterIDs := make([]string, 0, len(characters))
	for _, ch := range characters {
		characterIDs = append(characterIDs, ch.ID)
	}

	visible, err := s.QuestService.GetVisible(c.Request.Context(), userID, characterIDs, f)
	if err != nil {
		respondError(c, err)
		return
	}
	mine, assigned := quest.Partition(visible, userID)
	c.JSON(http.StatusOK, QuestListResponse{
		Mine:     toQuestViews(mine),
		Assigned: toQuestViews(assigned),
	})
}

func parseTimeParam(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, v)
}

func (s Server) GetQuest(c *gin.Context) {
	q, err := s.QuestService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toQuestView(*q))
}

// ownQuest loads the quest and rejects callers that don't own it.
func (s Server) ownQuest(c *gin.Context, questID string) bool {
	userID, ok := subject(c)
	if !ok {
		return false
	}
	q, err := s.QuestService.Get(c.Request.Context(), questID)
	if err != nil {
		respondError(c, err)
		return false
	}
	if q.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not your quest"})
		return false
	}
	return true
}

func (s Server) UpdateQuest(c *gin.Context) {
	id := c.Param("id")
	if !s.ownQuest(c, id) {
		return
	}
	var req UpdateQuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.QuestService.Update(c.Request.Context(), id, toQuestUpdate(req)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s Server) DeleteQuest(c *gin.Context) {
	id := c.Param("id")
	if !s.ownQuest(c, id) {
		return
	}
	if err := s.QuestService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s Server) AssignQuestCharacters(c *gin.Context) {
	id := c.Param("id")
	if !s.ownQuest(c, id) {
		return
	}
	var req AssignCharactersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.QuestService.AssignCharacters(c.Request.Context(), id, req.CharacterIDs); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s Server) AddQuestImage(c *gin.Context) {
	id := c.Param("id")
	if !s.ownQuest(c, id) {
		return
	}
	url, err := s.QuestService.AddImage(c.Request.Context(), id, c.Request.Body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, UploadResponse{URL: url})
}
