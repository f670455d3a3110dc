package models

import "time"

// ============================================================================
// STATISTIQUES DASHBOARD
// ============================================================================

type StatistiquesDashboard struct {
	RevenuMensuel      float64            `json:"revenu_mensuel"`
	RevenuAnnuel       float64            `json:"revenu_annuel"`
	NombreBiens        int                `json:"nombre_biens"`
	NombreLocataires   int                `json:"nombre_locataires"` // locataires actifs
	EcheancesEnAttente int                `json:"echeances_en_attente"`
	EcheancesEnRetard  int                `json:"echeances_en_retard"`
	EcheancesPayees    int                `json:"echeances_payees"`
	PaiementsCeMois    float64            `json:"paiements_ce_mois"`
	TauxOccupation     int                `json:"taux_occupation"`   // en %
	TauxRecouvrement   int                `json:"taux_recouvrement"` // en %
	ProchainePaiement  *time.Time         `json:"prochaine_paiement,omitempty"`
	RepartitionParBien []RepartitionBien  `json:"repartition_par_bien"`
	EcheancesUrgentes  []Echeance         `json:"echeances_urgentes"`
}

// RepartitionBien donne la part de chaque bien dans le revenu mensuel.
type RepartitionBien struct {
	BienID      string  `json:"bien_id"`
	BienNom     string  `json:"bien_nom"`
	Revenu      float64 `json:"revenu"`
	Pourcentage int     `json:"pourcentage"`
}
