package models

import "time"

// Types d'échéance
const (
	EcheanceLoyer       = "loyer"
	EcheanceMaintenance = "maintenance"
	EcheanceCharges     = "charges"
	EcheanceAutre       = "autre"
)

// Statuts d'une échéance
const (
	EcheanceEnAttente = "en_attente"
	EcheancePayee     = "payee"
	EcheanceEnRetard  = "en_retard"
	EcheanceAnnulee   = "annulee"
)

type Echeance struct {
	ID                   string     `json:"id"`
	UserID               string     `json:"user_id"`
	Type                 string     `json:"type"`
	LocataireID          string     `json:"locataire_id,omitempty"`
	BienID               string     `json:"bien_id"`
	Montant              float64    `json:"montant"`
	DateEcheance         time.Time  `json:"date_echeance"`
	DatePaiement         *time.Time `json:"date_paiement,omitempty"`
	Statut               string     `json:"statut"`
	Description          string     `json:"description"`
	Recurrente           bool       `json:"recurrente"`
	FrequenceRecurrence  int        `json:"frequence_recurrence,omitempty"` // en mois
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`

	BienNom      string `json:"bien_nom,omitempty"`      // From the JOIN on biens
	LocataireNom string `json:"locataire_nom,omitempty"` // From the JOIN on locataires
}

type CreateEcheanceRequest struct {
	Type                string  `json:"type" binding:"required,oneof=loyer maintenance charges autre"`
	BienID              string  `json:"bien_id" binding:"required,uuid"`
	LocataireID         string  `json:"locataire_id" binding:"omitempty,uuid"`
	Montant             float64 `json:"montant" binding:"required,gt=0"`
	DateEcheance        string  `json:"date_echeance" binding:"required"` // YYYY-MM-DD
	Description         string  `json:"description" binding:"required"`
	Recurrente          bool    `json:"recurrente"`
	FrequenceRecurrence int     `json:"frequence_recurrence" binding:"omitempty,gt=0"`
}

type UpdateEcheanceRequest struct {
	Montant      float64 `json:"montant" binding:"required,gt=0"`
	DateEcheance string  `json:"date_echeance" binding:"required"`
	Description  string  `json:"description" binding:"required"`
}

type GenererEcheancesRequest struct {
	NbMois int `json:"nb_mois" binding:"omitempty,gte=0,lte=60"`
}

type FiltresEcheances struct {
	Statut      string `form:"statut" binding:"omitempty,oneof=en_attente payee en_retard annulee"`
	Type        string `form:"type" binding:"omitempty,oneof=loyer maintenance charges autre"`
	BienID      string `form:"bien_id" binding:"omitempty,uuid"`
	LocataireID string `form:"locataire_id" binding:"omitempty,uuid"`
	DateDebut   string `form:"date_debut"`
	DateFin     string `form:"date_fin"`
}
