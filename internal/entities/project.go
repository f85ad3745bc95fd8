// Package entities contains core business entities.
package entities

import "time"

// Project is an integrative project developed by a student team.
type Project struct {
	ID          string    `firestore:"-" bson:"_id" json:"id"`
	Titulo      string    `firestore:"titulo" bson:"titulo" json:"titulo"`
	Descripcion string    `firestore:"descripcion" bson:"descripcion" json:"descripcion"`
	MateriaID   string    `firestore:"materiaId" bson:"materiaId" json:"materiaId"`
	GrupoID     string    `firestore:"grupoId" bson:"grupoId" json:"grupoId"`
	LiderID     string    `firestore:"liderId" bson:"liderId" json:"liderId"`
	DocenteID   string    `firestore:"docenteId" bson:"docenteId" json:"docenteId"`
	Miembros    []string  `firestore:"miembros" bson:"miembros" json:"miembros"`
	Estado      string    `firestore:"estado" bson:"estado" json:"estado"`
	CreatedAt   time.Time `firestore:"createdAt" bson:"createdAt" json:"createdAt"`
}
