// Package entities contains core business entities.
package entities

// User is a platform account: student, teacher, guest evaluator or admin.
type User struct {
	ID                  string              `firestore:"-" bson:"_id" json:"id"`
	Email               string              `firestore:"email" bson:"email" json:"email"`
	Nombre              string              `firestore:"nombre" bson:"nombre" json:"nombre"`
	ApellidoPaterno     *string             `firestore:"apellidoPaterno" bson:"apellidoPaterno,omitempty" json:"apellidoPaterno,omitempty"`
	ApellidoMaterno     *string             `firestore:"apellidoMaterno" bson:"apellidoMaterno,omitempty" json:"apellidoMaterno,omitempty"`
	Rol                 string              `firestore:"rol" bson:"rol" json:"rol"`
	FotoURL             *string             `firestore:"fotoUrl" bson:"fotoUrl,omitempty" json:"fotoUrl,omitempty"`
	GrupoID             *string             `firestore:"grupoId" bson:"grupoId,omitempty" json:"grupoId,omitempty"`
	CarreraID           *string             `firestore:"carreraId" bson:"carreraId,omitempty" json:"carreraId,omitempty"`
	Matricula           *string             `firestore:"matricula" bson:"matricula,omitempty" json:"matricula,omitempty"`
	EspecialidadDocente *string             `firestore:"especialidadDocente" bson:"especialidadDocente,omitempty" json:"especialidadDocente,omitempty"`
	Profesion           *string             `firestore:"profesion" bson:"profesion,omitempty" json:"profesion,omitempty"`
	Organizacion        *string             `firestore:"organizacion" bson:"organizacion,omitempty" json:"organizacion,omitempty"`
	Asignaciones        []AsignacionDocente `firestore:"asignaciones" bson:"asignaciones,omitempty" json:"asignaciones,omitempty"`
}

// AsignacionDocente links a teacher to a subject taught to some groups of a program.
type AsignacionDocente struct {
	CarreraID string   `firestore:"carreraId" bson:"carreraId" json:"carreraId"`
	MateriaID string   `firestore:"materiaId" bson:"materiaId" json:"materiaId"`
	GruposIDs []string `firestore:"gruposIds" bson:"gruposIds" json:"gruposIds"`
}

// User roles as stored in the rol field.
const (
	RolAlumno   = "Alumno"
	RolDocente  = "Docente"
	RolInvitado = "Invitado"
	RolAdmin    = "admin"
)
