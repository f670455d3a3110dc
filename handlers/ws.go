package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gestion-bailleurs/bailleur-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

const sessionUserKey = "user_id"

// WSHandler pousse les mises à jour temps réel vers les clients connectés.
// Chaque session est rattachée à un utilisateur : un utilisateur ne reçoit
// que ses propres événements.
type WSHandler struct {
	melody *melody.Melody
}

func NewWSHandler() *WSHandler {
	m := melody.New()
	m.Config.MaxMessageSize = 1024
	m.Config.PongWait = 60 * time.Second

	h := &WSHandler{melody: m}

	m.HandleConnect(func(s *melody.Session) {
		if userID, ok := s.Get(sessionUserKey); ok {
			utils.LogWebSocket("connect", userID.(string))
		}
	})

	m.HandleDisconnect(func(s *melody.Session) {
		if userID, ok := s.Get(sessionUserKey); ok {
			utils.LogWebSocket("disconnect", userID.(string))
		}
	})

	return h
}

// HandleWS upgrade la connexion. Le token JWT passe en query param car les
// navigateurs n'envoient pas de header Authorization sur un upgrade websocket.
func (h *WSHandler) HandleWS(c *gin.Context) {
	token := c.Query("token")
	userID, _, err := utils.ValidateAccessToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	h.melody.HandleRequestWithKeys(c.Writer, c.Request, map[string]interface{}{
		sessionUserKey: userID,
	})
}

// BroadcastUpdate notifie toutes les sessions de l'utilisateur qu'une donnée
// a changé. Best effort : une erreur d'envoi n'affecte pas la requête HTTP.
func (h *WSHandler) BroadcastUpdate(userID, updateType string) {
	if h == nil {
		return
	}

	message, err := json.Marshal(gin.H{
		"type":      updateType,
		"timestamp": time.Now().Format(time.RFC3339),
	})
	if err != nil {
		return
	}

	h.melody.BroadcastFilter(message, func(s *melody.Session) bool {
		id, ok := s.Get(sessionUserKey)
		return ok && id == userID
	})
}
