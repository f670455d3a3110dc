package services

import (
	"testing"
	"time"

	"github.com/gestion-bailleurs/bailleur-api/models"

	"github.com/stretchr/testify/assert"
)

func TestComposerRappelLoyer(t *testing.T) {
	echeance := models.Echeance{
		ID:           "ech-1",
		UserID:       "user-1",
		Type:         models.EcheanceLoyer,
		Montant:      850.50,
		DateEcheance: time.Date(2026, time.July, 5, 0, 0, 0, 0, time.UTC),
		LocataireNom: "Dupont Marie",
	}

	n := ComposerRappelLoyer(echeance, "marie@example.com")

	assert.Equal(t, models.NotificationRappelLoyer, n.Type)
	assert.Equal(t, "user-1", n.UserID)
	assert.Equal(t, "ech-1", n.EcheanceID)
	assert.Equal(t, "marie@example.com", n.Destinataire)
	assert.Equal(t, models.NotificationEnAttente, n.Statut)
	assert.Equal(t, "Rappel de loyer - Dupont Marie", n.Titre)
	assert.Contains(t, n.Message, "850.50 €")
	assert.Contains(t, n.Message, "05/07/2026")
}

func TestComposerRappelLoyerSansNom(t *testing.T) {
	echeance := models.Echeance{
		ID:           "ech-1",
		UserID:       "user-1",
		Montant:      500,
		DateEcheance: time.Date(2026, time.July, 5, 0, 0, 0, 0, time.UTC),
	}

	n := ComposerRappelLoyer(echeance, "x@example.com")
	assert.Equal(t, "Rappel de loyer - locataire", n.Titre)
}

func TestComposerRappelMaintenance(t *testing.T) {
	echeance := models.Echeance{
		ID:           "ech-2",
		UserID:       "user-1",
		Type:         models.EcheanceMaintenance,
		Description:  "Révision chaudière",
		DateEcheance: time.Date(2026, time.September, 12, 0, 0, 0, 0, time.UTC),
	}

	n := ComposerRappelMaintenance(echeance, "bailleur@example.com")

	assert.Equal(t, models.NotificationMaintenanceDue, n.Type)
	assert.Equal(t, "Rappel de maintenance - Révision chaudière", n.Titre)
	assert.Contains(t, n.Message, "Révision chaudière")
	assert.Contains(t, n.Message, "12/09/2026")
}
