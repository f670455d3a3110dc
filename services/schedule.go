package services

import (
	"fmt"
	"time"

	"github.com/gestion-bailleurs/bailleur-api/models"

	"github.com/google/uuid"
)

// Mois en français pour les libellés d'échéances (équivalent de
// toLocaleDateString('fr-FR', { month: 'long' }) côté front).
var moisFrancais = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// LibelleMois retourne "janvier 2026" pour une date donnée.
func LibelleMois(date time.Time) string {
	return fmt.Sprintf("%s %d", moisFrancais[date.Month()-1], date.Year())
}

// AjouterMois avance une date d'un nombre de mois calendaires, en ramenant le
// jour au dernier jour valide du mois cible (31 janvier + 1 mois = 28/29 février,
// pas le 2/3 mars comme le ferait AddDate).
func AjouterMois(date time.Time, mois int) time.Time {
	annee := date.Year()
	m := int(date.Month()) - 1 + mois
	annee += m / 12
	m = m % 12
	if m < 0 {
		m += 12
		annee--
	}
	cible := time.Month(m + 1)

	jour := date.Day()
	dernier := dernierJourDuMois(annee, cible)
	if jour > dernier {
		jour = dernier
	}

	return time.Date(annee, cible, jour,
		date.Hour(), date.Minute(), date.Second(), date.Nanosecond(), date.Location())
}

func dernierJourDuMois(annee int, mois time.Month) int {
	// Jour 0 du mois suivant = dernier jour du mois courant
	return time.Date(annee, mois+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// GenererEcheancesLoyer génère nbMois échéances de loyer mensuelles à partir de
// la date d'entrée du locataire. Aucune écriture : l'appelant est responsable
// d'insérer les échéances retournées.
func GenererEcheancesLoyer(locataire models.Locataire, nbMois int) []models.Echeance {
	if nbMois <= 0 {
		return []models.Echeance{}
	}

	echeances := make([]models.Echeance, 0, nbMois)
	maintenant := time.Now()

	for i := 0; i < nbMois; i++ {
		dateEcheance := AjouterMois(locataire.DateEntree, i)

		echeances = append(echeances, models.Echeance{
			ID:                  uuid.New().String(),
			UserID:              locataire.UserID,
			Type:                models.EcheanceLoyer,
			LocataireID:         locataire.ID,
			BienID:              locataire.BienID,
			Montant:             locataire.MontantLoyer,
			DateEcheance:        dateEcheance,
			Statut:              models.EcheanceEnAttente,
			Description:         fmt.Sprintf("Loyer %s", LibelleMois(dateEcheance)),
			Recurrente:          true,
			FrequenceRecurrence: 1,
			CreatedAt:           maintenant,
			UpdatedAt:           maintenant,
		})
	}

	return echeances
}
