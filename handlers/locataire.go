package handlers

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/gestion-bailleurs/bailleur-api/middleware"
	"github.com/gestion-bailleurs/bailleur-api/models"
	"github.com/gestion-bailleurs/bailleur-api/services"
	"github.com/gestion-bailleurs/bailleur-api/utils"

	"github.com/gin-gonic/gin"
)

type LocataireHandler struct {
	DB        *sql.DB
	Service   *services.LocataireService
	Echeances *services.EcheanceService
	WS        *WSHandler
}

func NewLocataireHandler(db *sql.DB, ws *WSHandler) *LocataireHandler {
	return &LocataireHandler{
		DB:        db,
		Service:   services.NewLocataireService(db),
		Echeances: services.NewEcheanceService(db),
		WS:        ws,
	}
}

// CreateLocataire crée un locataire après vérification du quota du plan.
// Sauf indication contraire, ses 12 premières échéances de loyer sont
// générées dans la foulée.
func (h *LocataireHandler) CreateLocataire(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req models.CreateLocataireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	count, err := h.Service.CountActifs(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	plan := getUserPlan(h.DB, userID)
	if !services.CanAddLocataire(count, plan) {
		limites := services.GetLimites(plan)
		c.JSON(http.StatusForbidden, gin.H{
			"error": fmt.Sprintf(
				"Plan %s limité à %d locataire(s) actif(s). Passez au plan premium pour en ajouter davantage.",
				plan, limites.MaxLocatairesActifs),
		})
		return
	}

	// Le bien doit appartenir à l'utilisateur
	var bienExists bool
	err = h.DB.QueryRow(`SELECT EXISTS(SELECT 1 FROM biens WHERE id = $1 AND user_id = $2)`,
		req.BienID, userID).Scan(&bienExists)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if !bienExists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bien introuvable"})
		return
	}

	locataire, err := h.Service.Create(c.Request.Context(), userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create locataire"})
		return
	}

	h.WS.BroadcastUpdate(userID, "locataire_created")
	c.JSON(http.StatusCreated, locataire)
}

// GetLocataires retourne les locataires, filtrables par statut, bien et recherche
func (h *LocataireHandler) GetLocataires(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var filtres models.FiltresLocataires
	if err := c.ShouldBindQuery(&filtres); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	locataires, err := h.Service.GetAll(c.Request.Context(), userID, filtres)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch locataires"})
		return
	}

	c.JSON(http.StatusOK, locataires)
}

// GetLocataire retourne un locataire par ID
func (h *LocataireHandler) GetLocataire(c *gin.Context) {
	userID := middleware.GetUserID(c)

	locataire, err := h.Service.GetByID(c.Request.Context(), c.Param("id"), userID)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Locataire introuvable"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, locataire)
}

// UpdateLocataire met à jour un locataire
func (h *LocataireHandler) UpdateLocataire(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req models.UpdateLocataireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.Service.Update(c.Request.Context(), c.Param("id"), userID, req)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Locataire introuvable"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update locataire"})
		return
	}

	h.WS.BroadcastUpdate(userID, "locataire_updated")
	c.JSON(http.StatusOK, gin.H{"message": "Locataire mis à jour"})
}

// ArchiverLocataire archive un locataire. Il ne compte plus dans le quota
// mais son historique d'échéances et de paiements est conservé.
func (h *LocataireHandler) ArchiverLocataire(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req models.ArchiverLocataireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.Service.Archiver(c.Request.Context(), c.Param("id"), userID, req.Raison)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Locataire introuvable"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to archive locataire"})
		return
	}

	h.WS.BroadcastUpdate(userID, "locataire_archived")
	c.JSON(http.StatusOK, gin.H{"message": "Locataire archivé"})
}

// DeleteLocataire supprime un locataire
func (h *LocataireHandler) DeleteLocataire(c *gin.Context) {
	userID := middleware.GetUserID(c)

	err := h.Service.Delete(c.Request.Context(), c.Param("id"), userID)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Locataire introuvable"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete locataire"})
		return
	}

	h.WS.BroadcastUpdate(userID, "locataire_deleted")
	c.JSON(http.StatusOK, gin.H{"message": "Locataire supprimé"})
}

// GenererEcheances génère nb_mois échéances de loyer supplémentaires pour un
// locataire existant (12 par défaut).
func (h *LocataireHandler) GenererEcheances(c *gin.Context) {
	userID := middleware.GetUserID(c)

	locataire, err := h.Service.GetByID(c.Request.Context(), c.Param("id"), userID)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Locataire introuvable"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	var req models.GenererEcheancesRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	nbMois := req.NbMois
	if nbMois == 0 {
		nbMois = 12
	}

	echeances, err := h.Echeances.GenererPourLocataire(c.Request.Context(), *locataire, nbMois)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate echeances"})
		return
	}

	utils.SafeInfo("📅 %d échéances générées pour locataire=%s", len(echeances), utils.MaskID(locataire.ID))
	h.WS.BroadcastUpdate(userID, "echeances_generated")
	c.JSON(http.StatusCreated, echeances)
}
