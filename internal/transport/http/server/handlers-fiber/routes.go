package handlers_fiber

import "github.com/gofiber/fiber/v2"

// Register mounts every API route under /api.
func (h *Handler) Register(r fiber.Router) {
	api := r.Group("/api")

	api.Get("/health", h.Health)

	api.Get("/users/:uid", h.GetUserProfile)
	api.Put("/users/:uid/photo", h.PutUserPhoto)

	api.Get("/evaluations/docente/:docenteId", h.GetEvaluationsByDocente)
	api.Get("/evaluations/project/:projectId", h.GetEvaluationsByProject)

	api.Get("/projects/:id", h.GetProject)
	api.Get("/groups/:id", h.GetGroup)
	api.Get("/materias/:id", h.GetMateria)
	api.Get("/carreras/:id", h.GetCarrera)
}
