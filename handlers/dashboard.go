package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gestion-bailleurs/bailleur-api/middleware"
	"github.com/gestion-bailleurs/bailleur-api/models"
	"github.com/gestion-bailleurs/bailleur-api/services"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	DB         *sql.DB
	Biens      *services.BienService
	Locataires *services.LocataireService
	Echeances  *services.EcheanceService
	Paiements  *services.PaiementService
}

func NewDashboardHandler(db *sql.DB) *DashboardHandler {
	return &DashboardHandler{
		DB:         db,
		Biens:      services.NewBienService(db),
		Locataires: services.NewLocataireService(db),
		Echeances:  services.NewEcheanceService(db),
		Paiements:  services.NewPaiementService(db),
	}
}

// GetStatistiques agrège les données de l'utilisateur en statistiques
// dashboard : revenus, taux d'occupation et de recouvrement, répartition par
// bien et échéances urgentes.
func (h *DashboardHandler) GetStatistiques(c *gin.Context) {
	userID := middleware.GetUserID(c)
	ctx := c.Request.Context()

	biens, err := h.Biens.GetAll(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch biens"})
		return
	}

	locataires, err := h.Locataires.GetAll(ctx, userID, models.FiltresLocataires{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch locataires"})
		return
	}

	echeances, err := h.Echeances.GetAll(ctx, userID, models.FiltresEcheances{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch echeances"})
		return
	}

	paiements, err := h.Paiements.GetAll(ctx, userID, models.FiltresPaiements{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch paiements"})
		return
	}

	stats := services.CalculerStatistiques(biens, locataires, echeances, paiements, time.Now())
	c.JSON(http.StatusOK, stats)
}
