package models

import "time"

// Statuts d'un locataire
const (
	LocataireActif   = "actif"
	LocataireAncien  = "ancien"
	LocataireArchive = "archive"
)

type Locataire struct {
	ID                   string     `json:"id"`
	UserID               string     `json:"user_id"`
	BienID               string     `json:"bien_id"`
	Nom                  string     `json:"nom"`
	Prenom               string     `json:"prenom,omitempty"`
	Email                string     `json:"email"`
	Telephone            string     `json:"telephone"`
	DateEntree           time.Time  `json:"date_entree"`
	DateSortie           *time.Time `json:"date_sortie,omitempty"`
	MontantLoyer         float64    `json:"montant_loyer"`
	MontantCharges       float64    `json:"montant_charges,omitempty"`
	MontantDepotGarantie float64    `json:"montant_depot_garantie,omitempty"`
	Statut               string     `json:"statut"`
	DateArchivage        *time.Time `json:"date_archivage,omitempty"`
	RaisonArchivage      string     `json:"raison_archivage,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`

	BienNom     string `json:"bien_nom,omitempty"`     // From the JOIN on biens
	BienAdresse string `json:"bien_adresse,omitempty"` // From the JOIN on biens
}

type CreateLocataireRequest struct {
	BienID               string  `json:"bien_id" binding:"required,uuid"`
	Nom                  string  `json:"nom" binding:"required"`
	Prenom               string  `json:"prenom"`
	Email                string  `json:"email" binding:"required,email"`
	Telephone            string  `json:"telephone" binding:"required"`
	DateEntree           string  `json:"date_entree" binding:"required"` // YYYY-MM-DD
	MontantLoyer         float64 `json:"montant_loyer" binding:"required,gt=0"`
	MontantCharges       float64 `json:"montant_charges" binding:"omitempty,gte=0"`
	MontantDepotGarantie float64 `json:"montant_depot_garantie" binding:"omitempty,gte=0"`
	// Génère automatiquement les 12 échéances de loyer à la création
	GenererEcheances *bool `json:"generer_echeances,omitempty"`
}

type UpdateLocataireRequest struct {
	Nom            string  `json:"nom" binding:"required"`
	Prenom         string  `json:"prenom"`
	Email          string  `json:"email" binding:"required,email"`
	Telephone      string  `json:"telephone" binding:"required"`
	MontantLoyer   float64 `json:"montant_loyer" binding:"required,gt=0"`
	MontantCharges float64 `json:"montant_charges" binding:"omitempty,gte=0"`
	DateSortie     *string `json:"date_sortie,omitempty"`
}

type ArchiverLocataireRequest struct {
	Raison string `json:"raison" binding:"required"`
}

type FiltresLocataires struct {
	Statut    string `form:"statut" binding:"omitempty,oneof=actif ancien archive"`
	BienID    string `form:"bien_id" binding:"omitempty,uuid"`
	Recherche string `form:"recherche"`
}
