package services

import (
	"math"
	"sort"
	"time"

	"github.com/gestion-bailleurs/bailleur-api/models"
)

// ============================================================================
// STATISTIQUES DASHBOARD
// ============================================================================
// Agrégation pure sur des snapshots en mémoire : aucun accès DB, aucune
// mutation des entrées, tout est recalculé à chaque appel.
// ============================================================================

// DebutJour ramène une date à minuit (heure locale de la date).
func DebutJour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EstEnRetard est LE prédicat de retard, utilisé partout (dashboard, listes,
// sweep) : une échéance est en retard si son statut stocké est en_retard, ou
// si elle est en attente avec une date d'échéance passée.
func EstEnRetard(e models.Echeance, maintenant time.Time) bool {
	if e.Statut == models.EcheanceEnRetard {
		return true
	}
	return e.Statut == models.EcheanceEnAttente && e.DateEcheance.Before(DebutJour(maintenant))
}

// EstUrgente : en attente et due dans les 7 jours (aujourd'hui inclus).
func EstUrgente(e models.Echeance, maintenant time.Time) bool {
	if e.Statut != models.EcheanceEnAttente {
		return false
	}
	debut := DebutJour(maintenant)
	fin := debut.AddDate(0, 0, 7)
	d := DebutJour(e.DateEcheance)
	return !d.Before(debut) && !d.After(fin)
}

func pourcentage(partie, total float64) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(partie / total * 100))
}

// CalculerStatistiques calcule toutes les statistiques du dashboard à partir
// des collections complètes de l'utilisateur.
func CalculerStatistiques(
	biens []models.Bien,
	locataires []models.Locataire,
	echeances []models.Echeance,
	paiements []models.Paiement,
	maintenant time.Time,
) models.StatistiquesDashboard {
	stats := models.StatistiquesDashboard{
		NombreBiens:        len(biens),
		RepartitionParBien: []models.RepartitionBien{},
		EcheancesUrgentes:  []models.Echeance{},
	}

	// Revenu : capacité locative des locataires actifs, indépendante de l'état
	// des paiements.
	revenuParBien := make(map[string]float64)
	for _, l := range locataires {
		if l.Statut != models.LocataireActif {
			continue
		}
		stats.NombreLocataires++
		stats.RevenuMensuel += l.MontantLoyer
		revenuParBien[l.BienID] += l.MontantLoyer
	}
	stats.RevenuAnnuel = stats.RevenuMensuel * 12

	// Échéances : en_retard est l'union du statut stocké et du retard dérivé ;
	// en_attente suit le statut stocké. Une échéance en attente dépassée compte
	// donc dans les deux.
	var prochaine *time.Time
	debut := DebutJour(maintenant)
	for _, e := range echeances {
		if EstEnRetard(e, maintenant) {
			stats.EcheancesEnRetard++
		}
		if e.Statut == models.EcheanceEnAttente {
			stats.EcheancesEnAttente++
		}
		if e.Statut == models.EcheancePayee {
			stats.EcheancesPayees++
		}

		if e.Statut == models.EcheanceEnAttente && !e.DateEcheance.Before(debut) {
			if prochaine == nil || e.DateEcheance.Before(*prochaine) {
				d := e.DateEcheance
				prochaine = &d
			}
		}

		if EstUrgente(e, maintenant) {
			stats.EcheancesUrgentes = append(stats.EcheancesUrgentes, e)
		}
	}
	stats.ProchainePaiement = prochaine

	if len(echeances) > 0 {
		stats.TauxRecouvrement = pourcentage(float64(stats.EcheancesPayees), float64(len(echeances)))
	}

	// Échéances urgentes : tri par date croissante, 5 max pour l'affichage.
	sort.Slice(stats.EcheancesUrgentes, func(i, j int) bool {
		return stats.EcheancesUrgentes[i].DateEcheance.Before(stats.EcheancesUrgentes[j].DateEcheance)
	})
	if len(stats.EcheancesUrgentes) > 5 {
		stats.EcheancesUrgentes = stats.EcheancesUrgentes[:5]
	}

	// Paiements confirmés du mois calendaire courant.
	for _, p := range paiements {
		if p.Statut != models.PaiementConfirme {
			continue
		}
		if p.DatePaiement.Month() == maintenant.Month() && p.DatePaiement.Year() == maintenant.Year() {
			stats.PaiementsCeMois += p.Montant
		}
	}

	// Répartition du revenu par bien + taux d'occupation.
	biensOccupes := 0
	for _, b := range biens {
		revenu := revenuParBien[b.ID]
		if revenu > 0 {
			biensOccupes++
		}
		stats.RepartitionParBien = append(stats.RepartitionParBien, models.RepartitionBien{
			BienID:      b.ID,
			BienNom:     b.Nom,
			Revenu:      revenu,
			Pourcentage: pourcentage(revenu, stats.RevenuMensuel),
		})
	}
	if len(biens) > 0 {
		stats.TauxOccupation = pourcentage(float64(biensOccupes), float64(len(biens)))
	}

	return stats
}
