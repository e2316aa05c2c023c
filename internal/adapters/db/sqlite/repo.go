package sqlite

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"
)

// Repo is the shared base for the squirrel-backed repositories in this
// package: the db handle plus a statement builder using ? placeholders.
type Repo struct {
	DB *sql.DB
	SQ sq.StatementBuilderType
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db, SQ: sq.StatementBuilder}
}
