package services

import "github.com/gestion-bailleurs/bailleur-api/models"

// ============================================================================
// QUOTAS PAR PLAN
// ============================================================================
// Table unique des limites : c'est la seule source de vérité, consommée par
// tous les handlers. Le quota de locataires porte sur les locataires ACTIFS,
// pas sur le total.
// ============================================================================

// Kinds pour CanAdd
const (
	QuotaBien      = "bien"
	QuotaLocataire = "locataire"
)

type LimitesPlan struct {
	MaxBiens                  int
	MaxLocatairesActifs       int
	NotificationsAutomatiques bool
	SupportPrioritaire        bool
	ExportRapports            bool
}

var limitesParPlan = map[string]LimitesPlan{
	models.PlanGratuit: {
		MaxBiens:                  1,
		MaxLocatairesActifs:       2,
		NotificationsAutomatiques: false,
		SupportPrioritaire:        false,
		ExportRapports:            false,
	},
	models.PlanPremium: {
		MaxBiens:                  10,
		MaxLocatairesActifs:       50,
		NotificationsAutomatiques: true,
		SupportPrioritaire:        true,
		ExportRapports:            true,
	},
}

// GetLimites retourne les limites du plan. Un plan inconnu est traité comme
// gratuit.
func GetLimites(plan string) LimitesPlan {
	if limites, ok := limitesParPlan[plan]; ok {
		return limites
	}
	return limitesParPlan[models.PlanGratuit]
}

// CanAdd indique si l'utilisateur peut ajouter une entité de ce type compte
// tenu du nombre actuel. Le refus est un simple booléen : le handler décide du
// message utilisateur.
func CanAdd(kind string, currentCount int, plan string) bool {
	limites := GetLimites(plan)
	switch kind {
	case QuotaBien:
		return currentCount < limites.MaxBiens
	case QuotaLocataire:
		return currentCount < limites.MaxLocatairesActifs
	}
	return false
}

func CanAddBien(currentCount int, plan string) bool {
	return CanAdd(QuotaBien, currentCount, plan)
}

func CanAddLocataire(currentActifs int, plan string) bool {
	return CanAdd(QuotaLocataire, currentActifs, plan)
}
