package db

import (
	"context"
	"fmt"

	"github.com/TFMV/cyclomatic/schema"
	"github.com/TFMV/cyclomatic/types"
	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

type Config struct {
	URL       string
	Namespace string
	Database  string
	Username  string
	Password  string
}

type SurrealDB struct {
	db     *surrealdb.DB
	config Config
}

func NewSurrealDB(config Config) (*SurrealDB, error) {
	db, err := surrealdb.New(config.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &SurrealDB{
		db:     db,
		config: config,
	}, nil
}

func (s *SurrealDB) Initialize(ctx context.Context) error {
	if err := s.db.Use(s.config.Namespace, s.config.Database); err != nil {
		return fmt.Errorf("failed to set namespace/database: %w", err)
	}

	authData := &surrealdb.Auth{
		Username: s.config.Username,
		Password: s.config.Password,
	}
	token, err := s.db.SignIn(authData)
	if err != nil {
		return fmt.Errorf("failed to sign in: %w", err)
	}

	if err := s.db.Authenticate(token); err != nil {
		return fmt.Errorf("failed to authenticate: %w", err)
	}

	if err := schema.InitializeSchema(s.db); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	return nil
}

func (s *SurrealDB) StoreReport(ctx context.Context, report types.DirectoryReport) error {
	for _, fr := range report.Files {
		record := types.NewFileRecord(fr)
		if _, err := surrealdb.Create[types.FileRecord](s.db, models.Table("files"), record); err != nil {
			return fmt.Errorf("error storing file %s: %w", fr.File, err)
		}

		for _, m := range types.NewMethodRecords(fr) {
			if _, err := surrealdb.Create[types.MethodRecord](s.db, models.Table("methods"), m); err != nil {
				return fmt.Errorf("error storing method %s: %w", m.Name, err)
			}
		}
	}

	return nil
}
