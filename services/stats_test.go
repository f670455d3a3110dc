package services

import (
	"testing"
	"time"

	"github.com/gestion-bailleurs/bailleur-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var maintenant = time.Date(2026, time.June, 15, 10, 30, 0, 0, time.UTC)

func echeanceTest(id, statut string, date time.Time) models.Echeance {
	return models.Echeance{
		ID:           id,
		UserID:       "user-1",
		Type:         models.EcheanceLoyer,
		BienID:       "bien-1",
		Montant:      500,
		DateEcheance: date,
		Statut:       statut,
	}
}

func TestCalculerStatistiquesRevenus(t *testing.T) {
	biens := []models.Bien{
		{ID: "bien-1", Nom: "Appartement Lyon"},
		{ID: "bien-2", Nom: "Studio Paris"},
	}
	locataires := []models.Locataire{
		{ID: "loc-1", BienID: "bien-1", MontantLoyer: 1200, Statut: models.LocataireActif},
		{ID: "loc-2", BienID: "bien-2", MontantLoyer: 800, Statut: models.LocataireAncien},
	}

	stats := CalculerStatistiques(biens, locataires, nil, nil, maintenant)

	// Seuls les locataires actifs comptent dans le revenu
	assert.Equal(t, 1200.0, stats.RevenuMensuel)
	assert.Equal(t, 14400.0, stats.RevenuAnnuel)
	assert.Equal(t, 1, stats.NombreLocataires)
	assert.Equal(t, 2, stats.NombreBiens)

	// bien-2 n'a pas de locataire actif : 1 bien occupé sur 2
	assert.Equal(t, 50, stats.TauxOccupation)
}

func TestCalculerStatistiquesRetards(t *testing.T) {
	echeances := []models.Echeance{
		echeanceTest("e1", models.EcheanceEnRetard, maintenant.AddDate(0, -1, 0)),
		echeanceTest("e2", models.EcheanceEnAttente, maintenant.AddDate(0, 0, -3)), // retard dérivé
		echeanceTest("e3", models.EcheanceEnAttente, maintenant.AddDate(0, 1, 0)),
		echeanceTest("e4", models.EcheancePayee, maintenant.AddDate(0, -2, 0)),
	}

	stats := CalculerStatistiques(nil, nil, echeances, nil, maintenant)

	// Retard stocké et retard dérivé comptent chacun une fois dans en_retard ;
	// en_attente suit le statut stocké, e2 compte donc dans les deux
	assert.Equal(t, 2, stats.EcheancesEnRetard)
	assert.Equal(t, 2, stats.EcheancesEnAttente)
	assert.Equal(t, 1, stats.EcheancesPayees)
}

func TestCalculerStatistiquesEnAttenteDepassee(t *testing.T) {
	echeances := []models.Echeance{
		echeanceTest("e1", models.EcheanceEnAttente, maintenant.AddDate(0, 0, -3)),
	}

	stats := CalculerStatistiques(nil, nil, echeances, nil, maintenant)

	// Une échéance en attente dont la date est dépassée figure à la fois dans
	// le compteur en attente et dans le compteur en retard
	assert.Equal(t, 1, stats.EcheancesEnRetard)
	assert.Equal(t, 1, stats.EcheancesEnAttente)
}

func TestCalculerStatistiquesTauxRecouvrement(t *testing.T) {
	echeances := []models.Echeance{
		echeanceTest("e1", models.EcheancePayee, maintenant.AddDate(0, -2, 0)),
		echeanceTest("e2", models.EcheancePayee, maintenant.AddDate(0, -1, 0)),
		echeanceTest("e3", models.EcheanceEnAttente, maintenant.AddDate(0, 1, 0)),
	}

	stats := CalculerStatistiques(nil, nil, echeances, nil, maintenant)
	assert.Equal(t, 67, stats.TauxRecouvrement)
}

func TestCalculerStatistiquesVide(t *testing.T) {
	stats := CalculerStatistiques(nil, nil, nil, nil, maintenant)

	assert.Equal(t, 0.0, stats.RevenuMensuel)
	assert.Equal(t, 0, stats.TauxRecouvrement)
	assert.Equal(t, 0, stats.TauxOccupation)
	assert.Nil(t, stats.ProchainePaiement)
	assert.Empty(t, stats.EcheancesUrgentes)
	assert.Empty(t, stats.RepartitionParBien)
}

func TestCalculerStatistiquesProchainePaiement(t *testing.T) {
	dans5j := maintenant.AddDate(0, 0, 5)
	echeances := []models.Echeance{
		echeanceTest("e1", models.EcheanceEnAttente, maintenant.AddDate(0, 1, 0)),
		echeanceTest("e2", models.EcheanceEnAttente, dans5j),
		echeanceTest("e3", models.EcheanceEnAttente, maintenant.AddDate(0, 0, -10)), // passée, ignorée
		echeanceTest("e4", models.EcheancePayee, maintenant.AddDate(0, 0, 1)),       // payée, ignorée
	}

	stats := CalculerStatistiques(nil, nil, echeances, nil, maintenant)

	require.NotNil(t, stats.ProchainePaiement)
	assert.Equal(t, dans5j, *stats.ProchainePaiement)
}

func TestCalculerStatistiquesUrgentes(t *testing.T) {
	echeances := []models.Echeance{
		echeanceTest("e1", models.EcheanceEnAttente, maintenant.AddDate(0, 0, 6)),
		echeanceTest("e2", models.EcheanceEnAttente, maintenant.AddDate(0, 0, 2)),
		echeanceTest("e3", models.EcheanceEnAttente, maintenant),
		echeanceTest("e4", models.EcheanceEnAttente, maintenant.AddDate(0, 0, 8)), // hors fenêtre
		echeanceTest("e5", models.EcheancePayee, maintenant.AddDate(0, 0, 3)),     // payée
	}

	stats := CalculerStatistiques(nil, nil, echeances, nil, maintenant)

	require.Len(t, stats.EcheancesUrgentes, 3)
	// Tri par date croissante
	assert.Equal(t, "e3", stats.EcheancesUrgentes[0].ID)
	assert.Equal(t, "e2", stats.EcheancesUrgentes[1].ID)
	assert.Equal(t, "e1", stats.EcheancesUrgentes[2].ID)
}

func TestCalculerStatistiquesUrgentesPlafonnees(t *testing.T) {
	echeances := []models.Echeance{}
	for i := 0; i < 8; i++ {
		echeances = append(echeances,
			echeanceTest("e", models.EcheanceEnAttente, maintenant.AddDate(0, 0, i%7)))
	}

	stats := CalculerStatistiques(nil, nil, echeances, nil, maintenant)
	assert.Len(t, stats.EcheancesUrgentes, 5)
}

func TestCalculerStatistiquesPaiementsCeMois(t *testing.T) {
	paiements := []models.Paiement{
		{Montant: 500, Statut: models.PaiementConfirme, DatePaiement: maintenant.AddDate(0, 0, -2)},
		{Montant: 300, Statut: models.PaiementConfirme, DatePaiement: maintenant},
		{Montant: 900, Statut: models.PaiementConfirme, DatePaiement: maintenant.AddDate(0, -1, 0)}, // mois précédent
		{Montant: 200, Statut: models.PaiementEnAttente, DatePaiement: maintenant},                  // non confirmé
	}

	stats := CalculerStatistiques(nil, nil, nil, paiements, maintenant)
	assert.Equal(t, 800.0, stats.PaiementsCeMois)
}

func TestCalculerStatistiquesRepartitionParBien(t *testing.T) {
	biens := []models.Bien{
		{ID: "bien-1", Nom: "Appartement Lyon"},
		{ID: "bien-2", Nom: "Maison Bordeaux"},
		{ID: "bien-3", Nom: "Studio vacant"},
	}
	locataires := []models.Locataire{
		{ID: "loc-1", BienID: "bien-1", MontantLoyer: 750, Statut: models.LocataireActif},
		{ID: "loc-2", BienID: "bien-2", MontantLoyer: 250, Statut: models.LocataireActif},
	}

	stats := CalculerStatistiques(biens, locataires, nil, nil, maintenant)

	require.Len(t, stats.RepartitionParBien, 3)
	assert.Equal(t, 750.0, stats.RepartitionParBien[0].Revenu)
	assert.Equal(t, 75, stats.RepartitionParBien[0].Pourcentage)
	assert.Equal(t, 25, stats.RepartitionParBien[1].Pourcentage)
	assert.Equal(t, 0.0, stats.RepartitionParBien[2].Revenu)
	assert.Equal(t, 0, stats.RepartitionParBien[2].Pourcentage)

	// 2 biens occupés sur 3
	assert.Equal(t, 67, stats.TauxOccupation)
}

func TestEstEnRetard(t *testing.T) {
	assert.True(t, EstEnRetard(echeanceTest("e", models.EcheanceEnRetard, maintenant.AddDate(0, 1, 0)), maintenant))
	assert.True(t, EstEnRetard(echeanceTest("e", models.EcheanceEnAttente, maintenant.AddDate(0, 0, -1)), maintenant))
	assert.False(t, EstEnRetard(echeanceTest("e", models.EcheanceEnAttente, maintenant), maintenant))
	assert.False(t, EstEnRetard(echeanceTest("e", models.EcheancePayee, maintenant.AddDate(0, 0, -30)), maintenant))
	assert.False(t, EstEnRetard(echeanceTest("e", models.EcheanceAnnulee, maintenant.AddDate(0, 0, -30)), maintenant))
}

func TestEstUrgente(t *testing.T) {
	assert.True(t, EstUrgente(echeanceTest("e", models.EcheanceEnAttente, maintenant), maintenant))
	assert.True(t, EstUrgente(echeanceTest("e", models.EcheanceEnAttente, maintenant.AddDate(0, 0, 7)), maintenant))
	assert.False(t, EstUrgente(echeanceTest("e", models.EcheanceEnAttente, maintenant.AddDate(0, 0, 8)), maintenant))
	assert.False(t, EstUrgente(echeanceTest("e", models.EcheanceEnAttente, maintenant.AddDate(0, 0, -1)), maintenant))
	assert.False(t, EstUrgente(echeanceTest("e", models.EcheancePayee, maintenant), maintenant))
}
