package model

import "time"

// Etudiant table etudiants
type Etudiant struct {
	ID              uint       `gorm:"primaryKey"                             json:"id"`
	Nom             string     `gorm:"type:varchar(100);not null"             json:"nom"`
	Prenom          string     `gorm:"type:varchar(100);not null"             json:"prenom"`
	Classe          string     `gorm:"type:varchar(50)"                       json:"classe,omitempty"`
	DateNaissance   *time.Time `gorm:"type:date"                              json:"date_naissance,omitempty"`
	Matricule       *string    `gorm:"type:varchar(50);uniqueIndex"           json:"matricule,omitempty"`
	DateInscription time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"     json:"date_inscription"`
}

// TableName nom de la table
func (Etudiant) TableName() string { return "etudiants" }
