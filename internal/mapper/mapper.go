// Package mapper converts domain entities into response DTOs.
package mapper

import (
	"integrador-hub/internal/dto"
	"integrador-hub/internal/entities"
)

// ToUserProfile maps entities.User to its profile DTO.
func ToUserProfile(u entities.User) dto.UserProfile {
	return dto.UserProfile{
		UserID:              u.ID,
		Email:               u.Email,
		Nombre:              u.Nombre,
		ApellidoPaterno:     u.ApellidoPaterno,
		ApellidoMaterno:     u.ApellidoMaterno,
		Rol:                 u.Rol,
		FotoURL:             u.FotoURL,
		GrupoID:             u.GrupoID,
		CarreraID:           u.CarreraID,
		Matricula:           u.Matricula,
		Cedula:              nil, // not stored on users yet
		EspecialidadDocente: u.EspecialidadDocente,
		Profesion:           u.Profesion,
		Organizacion:        u.Organizacion,
		Asignaciones:        u.Asignaciones,
	}
}

// ToEvaluation maps entities.Evaluation to transport model.
func ToEvaluation(e entities.Evaluation) dto.Evaluation {
	return dto.Evaluation{
		ID:            e.ID,
		ProjectID:     e.ProjectID,
		DocenteID:     e.DocenteID,
		DocenteNombre: e.DocenteNombre,
		Tipo:          e.Tipo,
		Contenido:     e.Contenido,
		Calificacion:  e.Calificacion,
		CreatedAt:     e.CreatedAt.UTC(),
		EsPublico:     e.EsPublico,
	}
}

// ToEvaluationList maps a slice of evaluations preserving order.
func ToEvaluationList(list []entities.Evaluation) []dto.Evaluation {
	res := make([]dto.Evaluation, 0, len(list))
	for _, e := range list {
		res = append(res, ToEvaluation(e))
	}
	return res
}

// ToProject maps entities.Project to transport model.
func ToProject(p entities.Project) dto.Project {
	miembros := make([]string, len(p.Miembros))
	copy(miembros, p.Miembros)

	return dto.Project{
		ID:          p.ID,
		Titulo:      p.Titulo,
		Descripcion: p.Descripcion,
		MateriaID:   p.MateriaID,
		GrupoID:     p.GrupoID,
		LiderID:     p.LiderID,
		DocenteID:   p.DocenteID,
		Miembros:    miembros,
		Estado:      p.Estado,
		CreatedAt:   p.CreatedAt.UTC(),
	}
}

// ToGroup maps entities.Group to transport model.
func ToGroup(g entities.Group) dto.Group {
	return dto.Group{ID: g.ID, Nombre: g.Nombre, CarreraID: g.CarreraID, Cuatrimestre: g.Cuatrimestre}
}

// ToMateria maps entities.Materia to transport model.
func ToMateria(m entities.Materia) dto.Materia {
	return dto.Materia{
		ID:           m.ID,
		Nombre:       m.Nombre,
		Clave:        m.Clave,
		CarreraID:    m.CarreraID,
		Cuatrimestre: m.Cuatrimestre,
	}
}

// ToCarrera maps entities.Carrera to transport model.
func ToCarrera(c entities.Carrera) dto.Carrera {
	return dto.Carrera{ID: c.ID, Nombre: c.Nombre, Nivel: c.Nivel}
}
