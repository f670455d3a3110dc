package services

import (
	"testing"

	"github.com/gestion-bailleurs/bailleur-api/models"

	"github.com/stretchr/testify/assert"
)

func TestGetLimites(t *testing.T) {
	gratuit := GetLimites(models.PlanGratuit)
	assert.Equal(t, 1, gratuit.MaxBiens)
	assert.Equal(t, 2, gratuit.MaxLocatairesActifs)
	assert.False(t, gratuit.NotificationsAutomatiques)

	premium := GetLimites(models.PlanPremium)
	assert.Equal(t, 10, premium.MaxBiens)
	assert.Equal(t, 50, premium.MaxLocatairesActifs)
	assert.True(t, premium.NotificationsAutomatiques)
	assert.True(t, premium.ExportRapports)
}

func TestGetLimitesPlanInconnu(t *testing.T) {
	// Un plan inconnu retombe sur les limites du plan gratuit
	assert.Equal(t, GetLimites(models.PlanGratuit), GetLimites("entreprise"))
	assert.Equal(t, GetLimites(models.PlanGratuit), GetLimites(""))
}

func TestCanAddBien(t *testing.T) {
	tests := []struct {
		nom     string
		count   int
		plan    string
		attendu bool
	}{
		{"gratuit sans bien", 0, models.PlanGratuit, true},
		{"gratuit au quota", 1, models.PlanGratuit, false},
		{"gratuit au dessus du quota", 3, models.PlanGratuit, false},
		{"premium sous le quota", 9, models.PlanPremium, true},
		{"premium au quota", 10, models.PlanPremium, false},
	}

	for _, tt := range tests {
		t.Run(tt.nom, func(t *testing.T) {
			assert.Equal(t, tt.attendu, CanAddBien(tt.count, tt.plan))
		})
	}
}

func TestCanAddLocataire(t *testing.T) {
	tests := []struct {
		nom     string
		actifs  int
		plan    string
		attendu bool
	}{
		{"gratuit sans locataire", 0, models.PlanGratuit, true},
		{"gratuit un actif", 1, models.PlanGratuit, true},
		{"gratuit au quota", 2, models.PlanGratuit, false},
		{"premium sous le quota", 49, models.PlanPremium, true},
		{"premium au quota", 50, models.PlanPremium, false},
	}

	for _, tt := range tests {
		t.Run(tt.nom, func(t *testing.T) {
			assert.Equal(t, tt.attendu, CanAddLocataire(tt.actifs, tt.plan))
		})
	}
}

func TestCanAddKindInconnu(t *testing.T) {
	assert.False(t, CanAdd("vehicule", 0, models.PlanPremium))
}
