package services

import (
	"time"

	"github.com/gestion-bailleurs/bailleur-api/models"

	"github.com/google/uuid"
)

// ============================================================================
// BASCULE PAYÉE / EN ATTENTE
// ============================================================================
// Transitions pures : l'EcheanceService les applique dans une transaction pour
// que le couple échéance/paiement reste cohérent. Une échéance annulée ne se
// bascule pas (vérifié par l'appelant avant d'arriver ici).
// ============================================================================

// MarquerPayee passe l'échéance à payée et construit le paiement associé
// (virement, confirmé), à insérer par l'appelant.
func MarquerPayee(e models.Echeance, maintenant time.Time) (models.Echeance, models.Paiement) {
	e.Statut = models.EcheancePayee
	e.DatePaiement = &maintenant
	e.UpdatedAt = maintenant

	paiement := models.Paiement{
		ID:              uuid.New().String(),
		UserID:          e.UserID,
		EcheanceID:      e.ID,
		LocataireID:     e.LocataireID,
		BienID:          e.BienID,
		Montant:         e.Montant,
		DatePaiement:    maintenant,
		MethodePaiement: models.PaiementVirement,
		Statut:          models.PaiementConfirme,
		CreatedAt:       maintenant,
		UpdatedAt:       maintenant,
	}

	return e, paiement
}

// MarquerEnAttente repasse l'échéance à en attente et efface la date de
// paiement. L'appelant supprime le(s) paiement(s) liés dans la même
// transaction.
func MarquerEnAttente(e models.Echeance, maintenant time.Time) models.Echeance {
	e.Statut = models.EcheanceEnAttente
	e.DatePaiement = nil
	e.UpdatedAt = maintenant
	return e
}
