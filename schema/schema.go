package schema

import (
	"fmt"

	surrealdb "github.com/surrealdb/surrealdb.go"
)

// InitializeSchema sets up the database schema and indexes for stored
// complexity reports.
func InitializeSchema(db *surrealdb.DB) error {
	schemas := []string{
		// Define files table
		`DEFINE TABLE files SCHEMAFULL;
		 DEFINE FIELD file ON files TYPE string;
		 DEFINE FIELD language ON files TYPE string;
		 DEFINE FIELD total_methods ON files TYPE int;
		 DEFINE FIELD total_complexity ON files TYPE int;
		 DEFINE FIELD created_at ON files TYPE datetime DEFAULT time::now();
		 DEFINE INDEX file_path ON files FIELDS file;
		 DEFINE INDEX file_language ON files FIELDS language;`,

		// Define methods table
		`DEFINE TABLE methods SCHEMAFULL;
		 DEFINE FIELD name ON methods TYPE string;
		 DEFINE FIELD file ON methods TYPE string;
		 DEFINE FIELD language ON methods TYPE string;
		 DEFINE FIELD line ON methods TYPE int;
		 DEFINE FIELD complexity ON methods TYPE int;
		 DEFINE FIELD status ON methods TYPE string;
		 DEFINE FIELD nesting_depth ON methods TYPE int;
		 DEFINE FIELD created_at ON methods TYPE datetime DEFAULT time::now();
		 DEFINE INDEX method_name ON methods FIELDS name;
		 DEFINE INDEX method_file ON methods FIELDS file;
		 DEFINE INDEX method_status ON methods FIELDS status;`,
	}

	// Execute each schema definition
	for _, schema := range schemas {
		if _, err := surrealdb.Query[any](db, schema, map[string]interface{}{}); err != nil {
			return fmt.Errorf("schema initialization error: %w", err)
		}
	}

	return nil
}
