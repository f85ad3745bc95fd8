package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"integrador-hub/config"
	"integrador-hub/internal/entities"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	matricula := "A01"
	putDoc(t, repo, "users", "u1", entities.User{
		Email:     "ana@uni.mx",
		Nombre:    "Ana",
		Rol:       entities.RolAlumno,
		Matricula: &matricula,
	})

	user, err := repo.GetUserByID(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, "u1", user.ID)
	require.Equal(t, "ana@uni.mx", user.Email)
	require.Equal(t, "A01", *user.Matricula)
	require.Nil(t, user.FotoURL)

	require.NoError(t, repo.SetUserPhoto(ctx, "u1", "https://cdn/u1.png"))
	user, err = repo.GetUserByID(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, "https://cdn/u1.png", *user.FotoURL)

	_, err = repo.GetUserByID(ctx, "missing")
	require.ErrorIs(t, err, entities.ErrUserNotFound)
	require.ErrorIs(t, repo.SetUserPhoto(ctx, "missing", "x"), entities.ErrUserNotFound)

	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	putDoc(t, repo, "evaluations", "e1", entities.Evaluation{ProjectID: "p1", DocenteID: "d1", CreatedAt: base})
	putDoc(t, repo, "evaluations", "e2", entities.Evaluation{ProjectID: "p2", DocenteID: "d1", CreatedAt: base.Add(time.Hour)})
	putDoc(t, repo, "evaluations", "e3", entities.Evaluation{ProjectID: "p1", DocenteID: "d2", CreatedAt: base})

	byDocente, err := repo.GetEvaluationsByDocente(ctx, "d1")
	require.NoError(t, err)
	require.Len(t, byDocente, 2)
	require.ElementsMatch(t, []string{"e1", "e2"}, []string{byDocente[0].ID, byDocente[1].ID})

	byProject, err := repo.GetEvaluationsByProject(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, byProject, 2)

	none, err := repo.GetEvaluationsByDocente(ctx, "nobody")
	require.NoError(t, err)
	require.Empty(t, none)

	putDoc(t, repo, "carreras", "c1", entities.Carrera{Nombre: "TI", Nivel: "TSU"})
	carrera, err := repo.GetCarreraByID(ctx, "c1")
	require.NoError(t, err)
	require.Equal(t, "TI", carrera.Nombre)

	_, err = repo.GetProjectByID(ctx, "missing")
	require.ErrorIs(t, err, entities.ErrProjectNotFound)
	_, err = repo.GetGroupByID(ctx, "missing")
	require.ErrorIs(t, err, entities.ErrGroupNotFound)
	_, err = repo.GetMateriaByID(ctx, "missing")
	require.ErrorIs(t, err, entities.ErrMateriaNotFound)
}

func putDoc(t *testing.T, p *Postgres, table, id string, doc any) {
	t.Helper()

	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	_, err = p.db.Exec(context.Background(), "INSERT INTO "+table+"(id, doc) VALUES ($1, $2)", id, raw)
	require.NoError(t, err)
}

func setupPostgres(t *testing.T) (*config.Config, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=integradorhub",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	hostPort := resource.GetPort("5432/tcp")

	port, err := strconv.Atoi(hostPort)
	require.NoError(t, err)
	migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "..", "db", "migrations"))
	require.NoError(t, err)
	require.DirExists(t, migrationsDir)

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "0.0.0.0", Port: 5093, ShutdownTimeout: 5 * time.Second},
		HTTP:   config.HTTPConfig{RequestTimeout: 5 * time.Second},
		Postgres: config.PostgresConfig{
			Host:           "localhost",
			Port:           port,
			User:           "postgres",
			Password:       "postgres",
			DBName:         "integradorhub",
			SSLMode:        "disable",
			MigrationsDir:  migrationsDir,
			QueryTimeout:   10 * time.Second,
			MigrateTimeout: 20 * time.Second,
			MaxConns:       4,
			MinConns:       1,
		},
	}

	require.NoError(t, pool.Retry(func() error {
		db, err := sql.Open("postgres", cfg.Postgres.DSN())
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	}))

	cleanup := func() {
		_ = pool.Purge(resource)
	}

	return cfg, cleanup
}

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	l, _ := zap.NewDevelopment()
	t.Cleanup(func() { _ = l.Sync() })
	return l.Sugar()
}
