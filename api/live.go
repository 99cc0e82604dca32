package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"shadowWisper/services/character"
	"shadowWisper/services/chat"
	"shadowWisper/services/quest"
	"shadowWisper/stream"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		// Browsers talking to the journaling app are already behind CORS on
		// the REST surface; origin pinning for the relay is a deployment
		// concern.
		return true
	},
}

// LiveStream upgrades the connection and relays one subscription stream:
// every time the backing query snapshot changes, the client receives the
// complete new list as a JSON array. Attach happens on open, detach on
// close; the per-connection manager guarantees one subscription per stream.
//
// Streams: quests, characters, chats?characterId=…, messages?chatId=…
func (s Server) LiveStream(c *gin.Context) {
	userID, ok := subject(c)
	if !ok {
		return
	}
	streamName := c.Param("stream")

	// Validate parameters before upgrading; after the upgrade there is no
	// HTTP status left to send.
	characterID := c.Query("characterId")
	chatID := c.Query("chatId")
	switch streamName {
	case "quests", "characters":
	case "chats":
		if characterID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "characterId is required"})
			return
		}
	case "messages":
		if chatID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "chatId is required"})
			return
		}
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown stream"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	// The reader only watches for the client going away.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	m := stream.NewManager()
	defer m.DetachAll()

	// Subscribe before attaching so the first snapshot is never missed.
	switch streamName {
	case "quests":
		r := stream.NewReducer[quest.Quest]()
		updates, cancelSub := r.Subscribe()
		defer cancelSub()
		stream.Listen(ctx, m, stream.QuestList, quest.AllQuestsQuery(s.DB), r)
		relay(ctx, conn, updates)
	case "characters":
		r := stream.NewReducer[character.Character]()
		updates, cancelSub := r.Subscribe()
		defer cancelSub()
		stream.Listen(ctx, m, stream.CharacterList(userID), character.ByUserQuery(s.DB, userID), r)
		relay(ctx, conn, updates)
	case "chats":
		r := stream.NewReducer[chat.Chat]()
		updates, cancelSub := r.Subscribe()
		defer cancelSub()
		stream.Listen(ctx, m, stream.ChatList, chat.ChatsForCharacterQuery(s.DB, characterID), r)
		relay(ctx, conn, updates)
	case "messages":
		r := stream.NewReducer[chat.ChatMessage]()
		updates, cancelSub := r.Subscribe()
		defer cancelSub()
		stream.Listen(ctx, m, stream.MessageThread(chatID), chat.MessagesQuery(s.DB, chatID), r)
		relay(ctx, conn, updates)
	}
}

func relay[T any](ctx context.Context, conn *websocket.Conn, updates <-chan []T) {
	for {
		select {
		case <-ctx.Done():
			return
		case items := <-updates:
			if err := conn.WriteJSON(items); err != nil {
				return
			}
		}
	}
}
