package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shadowWisper/services/chat"
)

func (s Server) CreateChat(c *gin.Context) {
	var req CreateChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// The caller may only open chats as a character they own.
	if !s.ownCharacter(c, req.CreatorCharacterID) {
		return
	}
	// Dedup via the sorted participant key: callers get the existing chat
	// back when one already covers this participant set.
	created, err := s.ChatService.CreateChat(
		c.Request.Context(),
		req.CreatorCharacterID,
		req.Participants,
		req.InitialMessage,
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, created)
}

func (s Server) ListChats(c *gin.Context) {
	characterID := c.Query("characterId")
	if characterID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "characterId is required"})
		return
	}
	if !s.ownCharacter(c, characterID) {
		return
	}
	chats, err := s.ChatService.ChatsForCharacter(c.Request.Context(), characterID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, chats)
}

func (s Server) ListMessages(c *gin.Context) {
	chatID := c.Param("id")
	thread, err := s.ChatService.Get(c.Request.Context(), chatID)
	if err != nil {
		respondError(c, err)
		return
	}
	messages, err := s.ChatService.Messages(c.Request.Context(), chatID)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := MessagesResponse{Messages: toMessageViews(messages, thread.Participants)}
	if viewerID := c.Query("viewerId"); viewerID != "" {
		resp.Unread = chat.Unread(messages, viewerID)
	}
	c.JSON(http.StatusOK, resp)
}

func (s Server) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// The caller may only send as a character they own.
	if !s.ownCharacter(c, req.SenderID) {
		return
	}
	msg, err := s.ChatService.SendMessage(c.Request.Context(), c.Param("id"), req.SenderID, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

func (s Server) MarkMessageRead(c *gin.Context) {
	var req MarkReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// Read receipts carry the viewer's character id; only the owner may
	// stamp them.
	if !s.ownCharacter(c, req.ViewerCharacterID) {
		return
	}
	err := s.ChatService.MarkRead(
		c.Request.Context(),
		c.Param("id"),
		c.Param("messageId"),
		req.ViewerCharacterID,
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
