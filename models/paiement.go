package models

import "time"

// Méthodes de paiement
const (
	PaiementVirement    = "virement"
	PaiementCheque      = "cheque"
	PaiementEspeces     = "especes"
	PaiementPrelevement = "prelevement"
	PaiementAutre       = "autre"
)

// Statuts d'un paiement
const (
	PaiementEnAttente = "en_attente"
	PaiementConfirme  = "confirme"
	PaiementRejete    = "rejete"
	PaiementRembourse = "rembourse"
)

type Paiement struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"user_id"`
	EcheanceID         string    `json:"echeance_id"`
	LocataireID        string    `json:"locataire_id,omitempty"`
	BienID             string    `json:"bien_id"`
	Montant            float64   `json:"montant"`
	DatePaiement       time.Time `json:"date_paiement"`
	MethodePaiement    string    `json:"methode_paiement"`
	ReferencePaiement  string    `json:"reference_paiement,omitempty"`
	Statut             string    `json:"statut"`
	Notes              string    `json:"notes,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	BienNom      string `json:"bien_nom,omitempty"`      // From the JOIN on biens
	LocataireNom string `json:"locataire_nom,omitempty"` // From the JOIN on locataires
}

type CreatePaiementRequest struct {
	EcheanceID        string  `json:"echeance_id" binding:"required,uuid"`
	Montant           float64 `json:"montant" binding:"required,gt=0"`
	DatePaiement      string  `json:"date_paiement" binding:"required"` // YYYY-MM-DD
	MethodePaiement   string  `json:"methode_paiement" binding:"omitempty,oneof=virement cheque especes prelevement autre"`
	ReferencePaiement string  `json:"reference_paiement"`
	Notes             string  `json:"notes"`
}

type FiltresPaiements struct {
	Statut          string `form:"statut" binding:"omitempty,oneof=en_attente confirme rejete rembourse"`
	MethodePaiement string `form:"methode_paiement" binding:"omitempty,oneof=virement cheque especes prelevement autre"`
	BienID          string `form:"bien_id" binding:"omitempty,uuid"`
	LocataireID     string `form:"locataire_id" binding:"omitempty,uuid"`
	DateDebut       string `form:"date_debut"`
	DateFin         string `form:"date_fin"`
}
