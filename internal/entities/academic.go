// Package entities contains core business entities.
package entities

// Group is a class group within a program.
type Group struct {
	ID           string `firestore:"-" bson:"_id" json:"id"`
	Nombre       string `firestore:"nombre" bson:"nombre" json:"nombre"`
	CarreraID    string `firestore:"carreraId" bson:"carreraId" json:"carreraId"`
	Cuatrimestre int    `firestore:"cuatrimestre" bson:"cuatrimestre" json:"cuatrimestre"`
}

// Materia is a subject taught within a program.
type Materia struct {
	ID           string `firestore:"-" bson:"_id" json:"id"`
	Nombre       string `firestore:"nombre" bson:"nombre" json:"nombre"`
	Clave        string `firestore:"clave" bson:"clave" json:"clave"`
	CarreraID    string `firestore:"carreraId" bson:"carreraId" json:"carreraId"`
	Cuatrimestre int    `firestore:"cuatrimestre" bson:"cuatrimestre" json:"cuatrimestre"`
}

// Carrera is an academic program.
type Carrera struct {
	ID     string `firestore:"-" bson:"_id" json:"id"`
	Nombre string `firestore:"nombre" bson:"nombre" json:"nombre"`
	Nivel  string `firestore:"nivel" bson:"nivel" json:"nivel"`
}
