// Package dto contains the read-only response shapes returned to clients.
// Keys are PascalCase to match the mobile and web clients' read models.
package dto

import (
	"time"

	"integrador-hub/internal/entities"
)

// UserProfile is the full profile of a user.
type UserProfile struct {
	UserID              string                       `json:"UserId"`
	Email               string                       `json:"Email"`
	Nombre              string                       `json:"Nombre"`
	ApellidoPaterno     *string                      `json:"ApellidoPaterno"`
	ApellidoMaterno     *string                      `json:"ApellidoMaterno"`
	Rol                 string                       `json:"Rol"`
	FotoURL             *string                      `json:"FotoUrl"`
	GrupoID             *string                      `json:"GrupoId"`
	CarreraID           *string                      `json:"CarreraId"`
	Matricula           *string                      `json:"Matricula"`
	Cedula              *string                      `json:"Cedula"`
	EspecialidadDocente *string                      `json:"EspecialidadDocente"`
	Profesion           *string                      `json:"Profesion"`
	Organizacion        *string                      `json:"Organizacion"`
	Asignaciones        []entities.AsignacionDocente `json:"Asignaciones"`
}

// Evaluation is an evaluation as listed to clients.
type Evaluation struct {
	ID            string    `json:"Id"`
	ProjectID     string    `json:"ProjectId"`
	DocenteID     string    `json:"DocenteId"`
	DocenteNombre string    `json:"DocenteNombre"`
	Tipo          string    `json:"Tipo"`
	Contenido     string    `json:"Contenido"`
	Calificacion  *float64  `json:"Calificacion"`
	CreatedAt     time.Time `json:"CreatedAt"`
	EsPublico     bool      `json:"EsPublico"`
}

// Project is the public view of a project.
type Project struct {
	ID          string    `json:"Id"`
	Titulo      string    `json:"Titulo"`
	Descripcion string    `json:"Descripcion"`
	MateriaID   string    `json:"MateriaId"`
	GrupoID     string    `json:"GrupoId"`
	LiderID     string    `json:"LiderId"`
	DocenteID   string    `json:"DocenteId"`
	Miembros    []string  `json:"Miembros"`
	Estado      string    `json:"Estado"`
	CreatedAt   time.Time `json:"CreatedAt"`
}

// Group is the public view of a class group.
type Group struct {
	ID           string `json:"Id"`
	Nombre       string `json:"Nombre"`
	CarreraID    string `json:"CarreraId"`
	Cuatrimestre int    `json:"Cuatrimestre"`
}

// Materia is the public view of a subject.
type Materia struct {
	ID           string `json:"Id"`
	Nombre       string `json:"Nombre"`
	Clave        string `json:"Clave"`
	CarreraID    string `json:"CarreraId"`
	Cuatrimestre int    `json:"Cuatrimestre"`
}

// Carrera is the public view of a program.
type Carrera struct {
	ID     string `json:"Id"`
	Nombre string `json:"Nombre"`
	Nivel  string `json:"Nivel"`
}
