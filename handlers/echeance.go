package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gestion-bailleurs/bailleur-api/middleware"
	"github.com/gestion-bailleurs/bailleur-api/models"
	"github.com/gestion-bailleurs/bailleur-api/services"
	"github.com/gestion-bailleurs/bailleur-api/utils"

	"github.com/gin-gonic/gin"
)

type EcheanceHandler struct {
	DB      *sql.DB
	Service *services.EcheanceService
	WS      *WSHandler
}

func NewEcheanceHandler(db *sql.DB, ws *WSHandler) *EcheanceHandler {
	return &EcheanceHandler{DB: db, Service: services.NewEcheanceService(db), WS: ws}
}

// CreateEcheance crée une échéance ponctuelle (maintenance, charges...)
func (h *EcheanceHandler) CreateEcheance(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req models.CreateEcheanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var bienExists bool
	err := h.DB.QueryRow(`SELECT EXISTS(SELECT 1 FROM biens WHERE id = $1 AND user_id = $2)`,
		req.BienID, userID).Scan(&bienExists)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if !bienExists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bien introuvable"})
		return
	}

	echeance, err := h.Service.Create(c.Request.Context(), userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create echeance"})
		return
	}

	utils.LogEcheanceAction("create", echeance.ID, userID)
	h.WS.BroadcastUpdate(userID, "echeance_created")
	c.JSON(http.StatusCreated, echeance)
}

// GetEcheances retourne les échéances, filtrables par statut, type, bien,
// locataire et période.
func (h *EcheanceHandler) GetEcheances(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var filtres models.FiltresEcheances
	if err := c.ShouldBindQuery(&filtres); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	echeances, err := h.Service.GetAll(c.Request.Context(), userID, filtres)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch echeances"})
		return
	}

	c.JSON(http.StatusOK, echeances)
}

// GetEcheance retourne une échéance par ID
func (h *EcheanceHandler) GetEcheance(c *gin.Context) {
	userID := middleware.GetUserID(c)

	echeance, err := h.Service.GetByID(c.Request.Context(), c.Param("id"), userID)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Échéance introuvable"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, echeance)
}

// UpdateEcheance modifie le montant, la date et la description
func (h *EcheanceHandler) UpdateEcheance(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req models.UpdateEcheanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.Service.Update(c.Request.Context(), c.Param("id"), userID, req)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Échéance introuvable"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update echeance"})
		return
	}

	h.WS.BroadcastUpdate(userID, "echeance_updated")
	c.JSON(http.StatusOK, gin.H{"message": "Échéance mise à jour"})
}

// DeleteEcheance supprime une échéance et son paiement lié
func (h *EcheanceHandler) DeleteEcheance(c *gin.Context) {
	userID := middleware.GetUserID(c)

	err := h.Service.Delete(c.Request.Context(), c.Param("id"), userID)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Échéance introuvable"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete echeance"})
		return
	}

	utils.LogEcheanceAction("delete", c.Param("id"), userID)
	h.WS.BroadcastUpdate(userID, "echeance_deleted")
	c.JSON(http.StatusOK, gin.H{"message": "Échéance supprimée"})
}

// AnnulerEcheance passe une échéance au statut annulée. Seules les échéances
// en attente ou en retard peuvent être annulées.
func (h *EcheanceHandler) AnnulerEcheance(c *gin.Context) {
	userID := middleware.GetUserID(c)

	err := h.Service.Annuler(c.Request.Context(), c.Param("id"), userID)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusConflict, gin.H{"error": "Échéance introuvable ou non annulable"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel echeance"})
		return
	}

	utils.LogEcheanceAction("annuler", c.Param("id"), userID)
	h.WS.BroadcastUpdate(userID, "echeance_cancelled")
	c.JSON(http.StatusOK, gin.H{"message": "Échéance annulée"})
}

// TogglePaiement bascule une échéance entre en_attente et payée. Le paiement
// lié est créé ou supprimé atomiquement avec le changement de statut.
func (h *EcheanceHandler) TogglePaiement(c *gin.Context) {
	userID := middleware.GetUserID(c)

	echeance, err := h.Service.TogglePaiement(c.Request.Context(), c.Param("id"), userID)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Échéance introuvable"})
		return
	}
	if errors.Is(err, services.ErrEcheanceAnnulee) {
		c.JSON(http.StatusConflict, gin.H{"error": "Une échéance annulée ne peut pas changer de statut"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle payment"})
		return
	}

	utils.LogEcheanceAction("toggle_paiement", echeance.ID, userID)
	h.WS.BroadcastUpdate(userID, "echeance_toggled")
	c.JSON(http.StatusOK, echeance)
}
