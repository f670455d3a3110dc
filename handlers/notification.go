package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gestion-bailleurs/bailleur-api/middleware"
	"github.com/gestion-bailleurs/bailleur-api/models"
	"github.com/gestion-bailleurs/bailleur-api/services"
	"github.com/gestion-bailleurs/bailleur-api/utils"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	DB         *sql.DB
	Service    *services.NotificationService
	Echeances  *services.EcheanceService
	Locataires *services.LocataireService
}

func NewNotificationHandler(db *sql.DB) *NotificationHandler {
	return &NotificationHandler{
		DB:         db,
		Service:    services.NewNotificationService(db),
		Echeances:  services.NewEcheanceService(db),
		Locataires: services.NewLocataireService(db),
	}
}

// GetNotifications retourne l'historique des notifications de l'utilisateur
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	userID := middleware.GetUserID(c)

	notifications, err := h.Service.GetAll(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// EnvoyerRappel envoie un rappel de loyer par email au locataire d'une
// échéance. Réservé au plan premium.
func (h *NotificationHandler) EnvoyerRappel(c *gin.Context) {
	userID := middleware.GetUserID(c)
	ctx := c.Request.Context()

	plan := getUserPlan(h.DB, userID)
	if !services.GetLimites(plan).NotificationsAutomatiques {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Les rappels automatiques sont réservés au plan premium",
		})
		return
	}

	echeance, err := h.Echeances.GetByID(ctx, c.Param("id"), userID)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Échéance introuvable"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if echeance.Type != models.EcheanceLoyer || echeance.LocataireID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Seules les échéances de loyer avec locataire ont un rappel"})
		return
	}
	if echeance.Statut == models.EcheancePayee || echeance.Statut == models.EcheanceAnnulee {
		c.JSON(http.StatusConflict, gin.H{"error": "Cette échéance n'attend plus de paiement"})
		return
	}

	locataire, err := h.Locataires.GetByID(ctx, echeance.LocataireID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch locataire"})
		return
	}

	notification, err := h.Service.EnvoyerRappelLoyer(ctx, *echeance, locataire.Email)
	if err != nil {
		utils.SafeError("📧 Échec d'envoi du rappel: echeance=%s", utils.MaskID(echeance.ID))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send reminder", "notification": notification})
		return
	}

	c.JSON(http.StatusOK, notification)
}
