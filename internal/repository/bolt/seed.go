package bolt

import (
	"encoding/json"
	"fmt"
	"os"

	"integrador-hub/internal/entities"
)

// Fixture is the layout of a seed file.
type Fixture struct {
	Users       []entities.User       `json:"users"`
	Projects    []entities.Project    `json:"projects"`
	Evaluations []entities.Evaluation `json:"evaluations"`
	Groups      []entities.Group      `json:"groups"`
	Materias    []entities.Materia    `json:"materias"`
	Carreras    []entities.Carrera    `json:"carreras"`
}

// Seed loads a JSON fixture file into the store.
func (s *Store) Seed(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed: %w", err)
	}

	var fx Fixture
	if err := json.Unmarshal(raw, &fx); err != nil {
		return fmt.Errorf("decode seed: %w", err)
	}

	for _, u := range fx.Users {
		if err := s.PutUser(u); err != nil {
			return err
		}
	}
	for _, p := range fx.Projects {
		if err := s.PutProject(p); err != nil {
			return err
		}
	}
	for _, e := range fx.Evaluations {
		if err := s.PutEvaluation(e); err != nil {
			return err
		}
	}
	for _, g := range fx.Groups {
		if err := s.PutGroup(g); err != nil {
			return err
		}
	}
	for _, m := range fx.Materias {
		if err := s.PutMateria(m); err != nil {
			return err
		}
	}
	for _, c := range fx.Carreras {
		if err := s.PutCarrera(c); err != nil {
			return err
		}
	}

	s.log.Infow("seeded bolt store", "path", path,
		"users", len(fx.Users),
		"projects", len(fx.Projects),
		"evaluations", len(fx.Evaluations),
	)
	return nil
}
