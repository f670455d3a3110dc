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

type PaiementHandler struct {
	DB      *sql.DB
	Service *services.PaiementService
	WS      *WSHandler
}

func NewPaiementHandler(db *sql.DB, ws *WSHandler) *PaiementHandler {
	return &PaiementHandler{DB: db, Service: services.NewPaiementService(db), WS: ws}
}

// CreatePaiement enregistre un paiement manuel pour une échéance. L'échéance
// passe à payée dans la même transaction.
func (h *PaiementHandler) CreatePaiement(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req models.CreatePaiementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	paiement, err := h.Service.Create(c.Request.Context(), userID, req)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Échéance introuvable"})
		return
	}
	if errors.Is(err, services.ErrPaiementExistant) {
		c.JSON(http.StatusConflict, gin.H{"error": "Un paiement existe déjà pour cette échéance"})
		return
	}
	if errors.Is(err, services.ErrEcheanceAnnulee) {
		c.JSON(http.StatusConflict, gin.H{"error": "Une échéance annulée ne peut pas être payée"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create paiement"})
		return
	}

	utils.LogPaiementAction("create", paiement.ID, userID)
	h.WS.BroadcastUpdate(userID, "paiement_created")
	c.JSON(http.StatusCreated, paiement)
}

// GetPaiements retourne les paiements, filtrables par statut, méthode, bien,
// locataire et période.
func (h *PaiementHandler) GetPaiements(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var filtres models.FiltresPaiements
	if err := c.ShouldBindQuery(&filtres); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	paiements, err := h.Service.GetAll(c.Request.Context(), userID, filtres)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch paiements"})
		return
	}

	c.JSON(http.StatusOK, paiements)
}

// DeletePaiement supprime un paiement et repasse son échéance à en_attente
func (h *PaiementHandler) DeletePaiement(c *gin.Context) {
	userID := middleware.GetUserID(c)

	err := h.Service.Delete(c.Request.Context(), c.Param("id"), userID)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Paiement introuvable"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete paiement"})
		return
	}

	utils.LogPaiementAction("delete", c.Param("id"), userID)
	h.WS.BroadcastUpdate(userID, "paiement_deleted")
	c.JSON(http.StatusOK, gin.H{"message": "Paiement supprimé"})
}
