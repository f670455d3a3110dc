package models

import "time"

// Types de notification
const (
	NotificationRappelLoyer    = "rappel_loyer"
	NotificationMaintenanceDue = "maintenance_due"
	NotificationPaiementRecu   = "paiement_recu"
)

// Statuts d'envoi
const (
	NotificationEnAttente = "en_attente"
	NotificationEnvoyee   = "envoye"
	NotificationEchec     = "echec"
)

type Notification struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	Type         string     `json:"type"`
	Titre        string     `json:"titre"`
	Message      string     `json:"message"`
	Destinataire string     `json:"destinataire"` // email
	DateEnvoi    *time.Time `json:"date_envoi,omitempty"`
	Statut       string     `json:"statut"`
	EcheanceID   string     `json:"echeance_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
