package api

import (
	"errors"
	"net/http"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"shadowWisper/services/character"
	"shadowWisper/services/chat"
	"shadowWisper/services/quest"
	"shadowWisper/services/user"
	"shadowWisper/services/video"
	"shadowWisper/validator"
)

type Server struct {
	DB               *firestore.Client
	CharacterService character.Service
	QuestService     quest.Service
	ChatService      chat.Service
	UserService      user.Service
	VideoService     video.Service
}

func NewServer(
	db *firestore.Client,
	characterService character.Service,
	questService quest.Service,
	chatService chat.Service,
	userService user.Service,
	videoService video.Service,
) Server {
	return Server{
		DB:               db,
		CharacterService: characterService,
		QuestService:     questService,
		ChatService:      chatService,
		UserService:      userService,
		VideoService:     videoService,
	}
}

func RegisterHandlers(r *gin.Engine, s Server) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authed := r.Group("/", validator.Authenticate())

	authed.GET("/profile", s.GetProfile)
	authed.POST("/profile", s.CreateProfile)
	authed.PUT("/profile", s.UpdateProfile)
	authed.DELETE("/profile", s.DeleteProfile)

	authed.POST("/characters", s.CreateCharacter)
	authed.GET("/characters", s.ListCharacters)
	authed.GET("/characters/:id", s.GetCharacter)
	authed.PUT("/characters/:id", s.UpdateCharacter)
	authed.DELETE("/characters/:id", s.DeleteCharacter)
	authed.POST("/characters/:id/images", s.AddCharacterImage)
	authed.PUT("/characters/:id/profile-image", s.SetCharacterProfileImage)

	authed.POST("/quests", s.CreateQuest)
	authed.GET("/quests", s.ListQuests)
	authed.GET("/quests/:id", s.GetQuest)
	authed.PUT("/quests/:id", s.UpdateQuest)
	authed.DELETE("/quests/:id", s.DeleteQuest)
	authed.PUT("/quests/:id/characters", s.AssignQuestCharacters)
	authed.POST("/quests/:id/images", s.AddQuestImage)

	authed.POST("/chats", s.CreateChat)
	authed.GET("/chats", s.ListChats)
	authed.GET("/chats/:id/messages", s.ListMessages)
	authed.POST("/chats/:id/messages", s.SendMessage)
	authed.POST("/chats/:id/messages/:messageId/read", s.MarkMessageRead)

	authed.GET("/videos/search", s.SearchVideos)

	authed.GET("/live/:stream", s.LiveStream)
}

// subject returns the authenticated caller's user id. Authenticate always
// runs first on these routes, so a miss means a wiring bug.
func subject(c *gin.Context) (string, bool) {
	access, ok := validator.FromGin(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing access token"})
		return "", false
	}
	return access.Subject, true
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, character.NotFound),
		errors.Is(err, quest.NotFound),
		errors.Is(err, chat.NotFound),
		errors.Is(err, user.NotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, video.ErrEmptyKeyword):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
