package services

import (
	"testing"
	"time"

	"github.com/gestion-bailleurs/bailleur-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarquerPayee(t *testing.T) {
	now := time.Date(2026, time.June, 15, 14, 0, 0, 0, time.UTC)
	echeance := models.Echeance{
		ID:          "ech-1",
		UserID:      "user-1",
		LocataireID: "loc-1",
		BienID:      "bien-1",
		Montant:     500,
		Statut:      models.EcheanceEnAttente,
	}

	updated, paiement := MarquerPayee(echeance, now)

	assert.Equal(t, models.EcheancePayee, updated.Statut)
	require.NotNil(t, updated.DatePaiement)
	assert.Equal(t, now, *updated.DatePaiement)

	// Le paiement reprend le montant et les références de l'échéance
	assert.NotEmpty(t, paiement.ID)
	assert.Equal(t, "ech-1", paiement.EcheanceID)
	assert.Equal(t, "user-1", paiement.UserID)
	assert.Equal(t, "loc-1", paiement.LocataireID)
	assert.Equal(t, "bien-1", paiement.BienID)
	assert.Equal(t, 500.0, paiement.Montant)
	assert.Equal(t, now, paiement.DatePaiement)
	assert.Equal(t, models.PaiementVirement, paiement.MethodePaiement)
	assert.Equal(t, models.PaiementConfirme, paiement.Statut)
}

func TestMarquerPayeeDepuisEnRetard(t *testing.T) {
	now := time.Now()
	echeance := models.Echeance{ID: "ech-1", Montant: 750, Statut: models.EcheanceEnRetard}

	updated, paiement := MarquerPayee(echeance, now)

	assert.Equal(t, models.EcheancePayee, updated.Statut)
	assert.Equal(t, 750.0, paiement.Montant)
}

func TestMarquerEnAttente(t *testing.T) {
	now := time.Now()
	datePaiement := now.AddDate(0, 0, -3)
	echeance := models.Echeance{
		ID:           "ech-1",
		Statut:       models.EcheancePayee,
		DatePaiement: &datePaiement,
	}

	updated := MarquerEnAttente(echeance, now)

	assert.Equal(t, models.EcheanceEnAttente, updated.Statut)
	assert.Nil(t, updated.DatePaiement)
	assert.Equal(t, now, updated.UpdatedAt)
}

func TestMarquerPayeePuisEnAttente(t *testing.T) {
	now := time.Now()
	echeance := models.Echeance{ID: "ech-1", Montant: 500, Statut: models.EcheanceEnAttente}

	payee, _ := MarquerPayee(echeance, now)
	retour := MarquerEnAttente(payee, now.Add(time.Hour))

	assert.Equal(t, models.EcheanceEnAttente, retour.Statut)
	assert.Nil(t, retour.DatePaiement)
}
