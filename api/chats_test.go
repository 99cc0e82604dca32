package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lestrrat-go/jwx/jwa"
	"github.com/lestrrat-go/jwx/jwt"

	"shadowWisper/services/character"
	"shadowWisper/services/chat"
)

// stubCharacterService serves a fixed character map; everything else is
// unused by the chat handlers.
type stubCharacterService struct {
	characters map[string]*character.Character
}

var _ character.Service = (*stubCharacterService)(nil)

func (s *stubCharacterService) Create(context.Context, string, *character.Character) (*character.Character, error) {
	return nil, nil
}

func (s *stubCharacterService) Get(_ context.Context, characterID string) (*character.Character, error) {
	ch, ok := s.characters[characterID]
	if !ok {
		return nil, character.NotFound
	}
	return ch, nil
}

func (s *stubCharacterService) GetAllByUser(context.Context, string) ([]character.Character, error) {
	return nil, nil
}

func (s *stubCharacterService) Update(context.Context, string, character.Update) error {
	return nil
}

func (s *stubCharacterService) Delete(context.Context, string) error { return nil }

func (s *stubCharacterService) AddImage(context.Context, string, io.Reader) (string, error) {
	return "", nil
}

func (s *stubCharacterService) SetProfileImage(context.Context, string, io.Reader) (string, error) {
	return "", nil
}

// stubChatService records mutating calls so tests can assert whether a
// rejected request reached the service.
type stubChatService struct {
	chats       map[string]*chat.Chat
	messages    map[string][]chat.ChatMessage
	createCalls int
	sendCalls   int
	markCalls   int
}

var _ chat.Service = (*stubChatService)(nil)

func (s *stubChatService) CreateChat(_ context.Context, creatorID string, participants []string, _ string) (*chat.Chat, error) {
	s.createCalls++
	return &chat.Chat{ID: "chat-1", Participants: participants}, nil
}

func (s *stubChatService) Get(_ context.Context, chatID string) (*chat.Chat, error) {
	c, ok := s.chats[chatID]
	if !ok {
		return nil, chat.NotFound
	}
	return c, nil
}

func (s *stubChatService) ChatsForCharacter(context.Context, string) ([]chat.Chat, error) {
	return nil, nil
}

func (s *stubChatService) SendMessage(_ context.Context, chatID, senderID, text string) (*chat.ChatMessage, error) {
	s.sendCalls++
	return &chat.ChatMessage{ID: "msg-1", SenderID: senderID, Text: text}, nil
}

func (s *stubChatService) MarkRead(context.Context, string, string, string) error {
	s.markCalls++
	return nil
}

func (s *stubChatService) Messages(_ context.Context, chatID string) ([]chat.ChatMessage, error) {
	return s.messages[chatID], nil
}

func bearerToken(t *testing.T, subject string) string {
	t.Helper()
	token := jwt.New()
	if err := token.Set(jwt.SubjectKey, subject); err != nil {
		t.Fatal(err)
	}
	signed, err := jwt.Sign(token, jwa.HS256, []byte("test-secret"))
	if err != nil {
		t.Fatal(err)
	}
	return "Bearer " + string(signed)
}

func newChatTestServer(chats *stubChatService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	s := Server{
		CharacterService: &stubCharacterService{
			characters: map[string]*character.Character{
				"char-A": {ID: "char-A", UserID: "user-1"},
				"char-B": {ID: "char-B", UserID: "user-2"},
			},
		},
		ChatService: chats,
	}
	r := gin.New()
	RegisterHandlers(r, s)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, subject, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerToken(t, subject))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateChatRequiresOwnedCreator(t *testing.T) {
	chats := &stubChatService{}
	r := newChatTestServer(chats)

	// user-1 posing as user-2's character is rejected before the service
	// is touched.
	w := doJSON(t, r, http.MethodPost, "/chats", "user-1",
		`{"creatorCharacterId":"char-B","participants":["char-A","char-B"]}`)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
	if chats.createCalls != 0 {
		t.Errorf("createCalls = %d, want 0", chats.createCalls)
	}

	w = doJSON(t, r, http.MethodPost, "/chats", "user-1",
		`{"creatorCharacterId":"char-A","participants":["char-A","char-B"]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if chats.createCalls != 1 {
		t.Errorf("createCalls = %d, want 1", chats.createCalls)
	}
}

func TestSendMessageRequiresOwnedSender(t *testing.T) {
	chats := &stubChatService{}
	r := newChatTestServer(chats)

	w := doJSON(t, r, http.MethodPost, "/chats/chat-1/messages", "user-1",
		`{"senderId":"char-B","text":"hi"}`)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
	if chats.sendCalls != 0 {
		t.Errorf("sendCalls = %d, want 0", chats.sendCalls)
	}

	w = doJSON(t, r, http.MethodPost, "/chats/chat-1/messages", "user-1",
		`{"senderId":"char-A","text":"hi"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}
	if chats.sendCalls != 1 {
		t.Errorf("sendCalls = %d, want 1", chats.sendCalls)
	}
}

func TestMarkMessageReadRequiresOwnedViewer(t *testing.T) {
	chats := &stubChatService{}
	r := newChatTestServer(chats)

	w := doJSON(t, r, http.MethodPost, "/chats/chat-1/messages/msg-1/read", "user-1",
		`{"viewerCharacterId":"char-B"}`)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
	if chats.markCalls != 0 {
		t.Errorf("markCalls = %d, want 0", chats.markCalls)
	}

	w = doJSON(t, r, http.MethodPost, "/chats/chat-1/messages/msg-1/read", "user-1",
		`{"viewerCharacterId":"char-A"}`)
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}
	if chats.markCalls != 1 {
		t.Errorf("markCalls = %d, want 1", chats.markCalls)
	}
}

func TestListChatsRequiresOwnedCharacter(t *testing.T) {
	r := newChatTestServer(&stubChatService{})

	w := doJSON(t, r, http.MethodGet, "/chats?characterId=char-B", "user-1", "")
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/chats?characterId=char-A", "user-1", "")
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestListMessagesReadReceipts(t *testing.T) {
	now := time.Now()
	chats := &stubChatService{
		chats: map[string]*chat.Chat{
			"chat-1": {ID: "chat-1", Participants: []string{"char-A", "char-B"}},
		},
		messages: map[string][]chat.ChatMessage{
			"chat-1": {
				{ID: "m1", SenderID: "char-A", Text: "hi", CreatedAt: now, ReadBy: []string{"char-A", "char-B"}},
				{ID: "m2", SenderID: "char-A", Text: "there?", CreatedAt: now, ReadBy: []string{"char-A"}},
			},
		},
	}
	r := newChatTestServer(chats)

	w := doJSON(t, r, http.MethodGet, "/chats/chat-1/messages?viewerId=char-B", "user-1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp MessagesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Messages) != 2 {
		t.Fatalf("messages = %d, want 2", len(resp.Messages))
	}
	if !resp.Messages[0].ReadByAll {
		t.Error("m1 should be read by all participants")
	}
	if resp.Messages[1].ReadByAll {
		t.Error("m2 is not read by all participants")
	}
	if got := resp.Messages[1].PendingReaders; len(got) != 1 || got[0] != "char-B" {
		t.Errorf("m2 pendingReaders = %v, want [char-B]", got)
	}
	if resp.Unread != 1 {
		t.Errorf("unread = %d, want 1", resp.Unread)
	}
}
