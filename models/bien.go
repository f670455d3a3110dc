package models

import (
	"time"

	"github.com/lib/pq"
)

// Types de bien
const (
	BienAppartement = "appartement"
	BienMaison      = "maison"
	BienStudio      = "studio"
	BienAutre       = "autre"
)

type Bien struct {
	ID                 string         `json:"id"`
	UserID             string         `json:"user_id"`
	Nom                string         `json:"nom"`
	Adresse            string         `json:"adresse"`
	MontantLoyer       float64        `json:"montant_loyer"`
	FrequenceEntretien int            `json:"frequence_entretien"` // en mois
	Type               string         `json:"type,omitempty"`
	Surface            float64        `json:"surface,omitempty"`
	DateAchat          *time.Time     `json:"date_achat,omitempty"`
	Photos             pq.StringArray `json:"photos"` // URLs, upload géré côté front
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

type CreateBienRequest struct {
	Nom                string   `json:"nom" binding:"required"`
	Adresse            string   `json:"adresse" binding:"required"`
	MontantLoyer       float64  `json:"montant_loyer" binding:"required,gt=0"`
	FrequenceEntretien int      `json:"frequence_entretien" binding:"omitempty,gt=0"`
	Type               string   `json:"type" binding:"omitempty,oneof=appartement maison studio autre"`
	Surface            float64  `json:"surface" binding:"omitempty,gt=0"`
	DateAchat          *string  `json:"date_achat,omitempty"`
	Photos             []string `json:"photos,omitempty"`
}

type UpdateBienRequest struct {
	Nom                string   `json:"nom" binding:"required"`
	Adresse            string   `json:"adresse" binding:"required"`
	MontantLoyer       float64  `json:"montant_loyer" binding:"required,gt=0"`
	FrequenceEntretien int      `json:"frequence_entretien" binding:"omitempty,gt=0"`
	Type               string   `json:"type" binding:"omitempty,oneof=appartement maison studio autre"`
	Surface            float64  `json:"surface" binding:"omitempty,gt=0"`
	Photos             []string `json:"photos,omitempty"`
}
