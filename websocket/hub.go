package websocket

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"github.com/mkobay/tutor_manage/database"
	"github.com/mkobay/tutor_manage/models"
)

type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
}

type MessagePayload struct {
	ConversationID string `json:"conversation_id"`
	Content        string `json:"content"`
}

var (
	clients   = make(map[uuid.UUID]*websocket.Conn)
	clientsMu sync.RWMutex

	Register   = make(chan *Client)
	Unregister = make(chan *Client)
	Broadcast  = make(chan *models.Message)
)

// RunHub owns the connection registry and fans saved messages out to the
// other participants of the conversation. One goroutine, started from main.
func RunHub() {
	for {
		select {
		case client := <-Register:
			clientsMu.Lock()
			clients[client.UserID] = client.Conn
			clientsMu.Unlock()
			log.Printf("ws connected: %s", client.UserID)

		case client := <-Unregister:
			clientsMu.Lock()
			if conn, ok := clients[client.UserID]; ok && conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
			log.Printf("ws disconnected: %s", client.UserID)

		case message := <-Broadcast:
			deliver(message)
		}
	}
}

func deliver(message *models.Message) {
	recipients, err := conversationMembers(message.ConversationID)
	if err != nil {
		log.Printf("ws: cannot resolve conversation %s members: %v", message.ConversationID, err)
		return
	}

	var stale []uuid.UUID
	clientsMu.RLock()
	for _, userID := range recipients {
		if userID == message.SenderID {
			continue
		}
		conn, ok := clients[userID]
		if !ok {
			continue
		}
		if err := conn.WriteJSON(message); err != nil {
			log.Printf("ws: write to %s failed: %v", userID, err)
			conn.Close()
			stale = append(stale, userID)
		}
	}
	clientsMu.RUnlock()

	if len(stale) > 0 {
		clientsMu.Lock()
		for _, userID := range stale {
			delete(clients, userID)
		}
		clientsMu.Unlock()
	}
}

func conversationMembers(conversationID uuid.UUID) ([]uuid.UUID, error) {
	var userIDs []uuid.UUID
	err := database.DB.
		Table("conversation_participants").
		Where("conversation_id = ?", conversationID).
		Pluck("user_id", &userIDs).Error
	return userIDs, err
}
