package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/gestion-bailleurs/bailleur-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func locataireTest(dateEntree time.Time, loyer float64) models.Locataire {
	return models.Locataire{
		ID:           "loc-1",
		UserID:       "user-1",
		BienID:       "bien-1",
		Nom:          "Dupont",
		Prenom:       "Marie",
		DateEntree:   dateEntree,
		MontantLoyer: loyer,
		Statut:       models.LocataireActif,
	}
}

func TestGenererEcheancesLoyer(t *testing.T) {
	entree := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	echeances := GenererEcheancesLoyer(locataireTest(entree, 850), 12)

	require.Len(t, echeances, 12)

	for i, e := range echeances {
		assert.Equal(t, models.EcheanceLoyer, e.Type)
		assert.Equal(t, models.EcheanceEnAttente, e.Statut)
		assert.Equal(t, 850.0, e.Montant)
		assert.Equal(t, "loc-1", e.LocataireID)
		assert.Equal(t, "bien-1", e.BienID)
		assert.True(t, e.Recurrente)
		assert.Equal(t, 1, e.FrequenceRecurrence)

		attendue := entree.AddDate(0, i, 0)
		assert.Equal(t, attendue, e.DateEcheance, "échéance %d", i)
		assert.Equal(t, 5, e.DateEcheance.Day())
	}

	assert.Equal(t, "Loyer janvier 2026", echeances[0].Description)
	assert.Equal(t, "Loyer février 2026", echeances[1].Description)
	assert.Equal(t, "Loyer décembre 2026", echeances[11].Description)
}

func TestGenererEcheancesLoyerDatesCroissantes(t *testing.T) {
	entree := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	echeances := GenererEcheancesLoyer(locataireTest(entree, 1200), 24)

	require.Len(t, echeances, 24)
	for i := 1; i < len(echeances); i++ {
		assert.True(t, echeances[i-1].DateEcheance.Before(echeances[i].DateEcheance))
	}
}

func TestGenererEcheancesLoyerHorizonNul(t *testing.T) {
	entree := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	assert.Empty(t, GenererEcheancesLoyer(locataireTest(entree, 850), 0))
	assert.Empty(t, GenererEcheancesLoyer(locataireTest(entree, 850), -3))
}

func TestGenererEcheancesLoyerFinDeMois(t *testing.T) {
	// Entrée le 31 janvier : les mois courts reçoivent leur dernier jour
	entree := time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)
	echeances := GenererEcheancesLoyer(locataireTest(entree, 900), 4)

	require.Len(t, echeances, 4)
	assert.Equal(t, time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC), echeances[0].DateEcheance)
	assert.Equal(t, time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC), echeances[1].DateEcheance)
	assert.Equal(t, time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC), echeances[2].DateEcheance)
	assert.Equal(t, time.Date(2026, time.April, 30, 0, 0, 0, 0, time.UTC), echeances[3].DateEcheance)
}

func TestAjouterMois(t *testing.T) {
	tests := []struct {
		date    string
		mois    int
		attendu string
	}{
		{"2026-01-05", 1, "2026-02-05"},
		{"2026-01-31", 1, "2026-02-28"},
		{"2024-01-31", 1, "2024-02-29"}, // année bissextile
		{"2026-11-15", 2, "2027-01-15"},
		{"2026-12-31", 2, "2027-02-28"},
		{"2026-03-31", -1, "2026-02-28"},
		{"2026-06-10", 0, "2026-06-10"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s+%d", tt.date, tt.mois), func(t *testing.T) {
			date, err := time.Parse("2006-01-02", tt.date)
			require.NoError(t, err)
			attendu, err := time.Parse("2006-01-02", tt.attendu)
			require.NoError(t, err)

			assert.Equal(t, attendu, AjouterMois(date, tt.mois))
		})
	}
}

func TestLibelleMois(t *testing.T) {
	assert.Equal(t, "janvier 2026", LibelleMois(time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "août 2025", LibelleMois(time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "décembre 2027", LibelleMois(time.Date(2027, time.December, 31, 0, 0, 0, 0, time.UTC)))
}
