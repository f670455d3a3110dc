package handlers

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/gestion-bailleurs/bailleur-api/middleware"
	"github.com/gestion-bailleurs/bailleur-api/models"
	"github.com/gestion-bailleurs/bailleur-api/services"

	"github.com/gin-gonic/gin"
)

type BienHandler struct {
	DB      *sql.DB
	Service *services.BienService
	WS      *WSHandler
}

func NewBienHandler(db *sql.DB, ws *WSHandler) *BienHandler {
	return &BienHandler{DB: db, Service: services.NewBienService(db), WS: ws}
}

// getUserPlan lit le plan de l'utilisateur (gratuit par défaut)
func getUserPlan(db *sql.DB, userID string) string {
	var plan string
	if err := db.QueryRow(`SELECT plan FROM users WHERE id = $1`, userID).Scan(&plan); err != nil {
		return models.PlanGratuit
	}
	return plan
}

// CreateBien crée un bien après vérification du quota du plan
func (h *BienHandler) CreateBien(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req models.CreateBienRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	count, err := h.Service.Count(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	plan := getUserPlan(h.DB, userID)
	if !services.CanAddBien(count, plan) {
		limites := services.GetLimites(plan)
		c.JSON(http.StatusForbidden, gin.H{
			"error": fmt.Sprintf(
				"Plan %s limité à %d bien(s). Passez au plan premium pour en ajouter davantage.",
				plan, limites.MaxBiens),
		})
		return
	}

	bien, err := h.Service.Create(c.Request.Context(), userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create bien"})
		return
	}

	h.WS.BroadcastUpdate(userID, "bien_created")
	c.JSON(http.StatusCreated, bien)
}

// GetBiens retourne tous les biens de l'utilisateur
func (h *BienHandler) GetBiens(c *gin.Context) {
	userID := middleware.GetUserID(c)

	biens, err := h.Service.GetAll(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch biens"})
		return
	}

	c.JSON(http.StatusOK, biens)
}

// GetBien retourne un bien par ID
func (h *BienHandler) GetBien(c *gin.Context) {
	userID := middleware.GetUserID(c)

	bien, err := h.Service.GetByID(c.Request.Context(), c.Param("id"), userID)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bien introuvable"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, bien)
}

// UpdateBien met à jour un bien
func (h *BienHandler) UpdateBien(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req models.UpdateBienRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.Service.Update(c.Request.Context(), c.Param("id"), userID, req)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bien introuvable"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update bien"})
		return
	}

	h.WS.BroadcastUpdate(userID, "bien_updated")
	c.JSON(http.StatusOK, gin.H{"message": "Bien mis à jour"})
}

// DeleteBien supprime un bien et ses données liées
func (h *BienHandler) DeleteBien(c *gin.Context) {
	userID := middleware.GetUserID(c)

	err := h.Service.Delete(c.Request.Context(), c.Param("id"), userID)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bien introuvable"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete bien"})
		return
	}

	h.WS.BroadcastUpdate(userID, "bien_deleted")
	c.JSON(http.StatusOK, gin.H{"message": "Bien supprimé"})
}
