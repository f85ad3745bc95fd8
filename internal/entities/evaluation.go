// Package entities contains core business entities.
package entities

import "time"

// Evaluation is a graded assessment or comment left by a docente on a project.
type Evaluation struct {
	ID            string    `firestore:"-" bson:"_id" json:"id"`
	ProjectID     string    `firestore:"projectId" bson:"projectId" json:"projectId"`
	DocenteID     string    `firestore:"docenteId" bson:"docenteId" json:"docenteId"`
	DocenteNombre string    `firestore:"docenteNombre" bson:"docenteNombre" json:"docenteNombre"`
	Tipo          string    `firestore:"tipo" bson:"tipo" json:"tipo"`
	Contenido     string    `firestore:"contenido" bson:"contenido" json:"contenido"`
	Calificacion  *float64  `firestore:"calificacion" bson:"calificacion,omitempty" json:"calificacion,omitempty"`
	CreatedAt     time.Time `firestore:"createdAt" bson:"createdAt" json:"createdAt"`
	EsPublico     bool      `firestore:"esPublico" bson:"esPublico" json:"esPublico"`
}
