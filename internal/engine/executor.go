package engine

import (
	"database/sql"
	"fmt"
	"strings"
)

// SplitStatements breaks a generated script into executable statements.
// Statements are ';'-terminated; blank chunks and comment-only chunks are
// dropped. Good enough for the scripts this tool emits, which never carry
// a ';' inside a literal or comment.
func SplitStatements(script string) []string {
	var out []string
	for _, part := range strings.Split(script, ";") {
		stmt := strings.TrimSpace(part)
		if stmt == "" {
			continue
		}
		if strings.HasPrefix(stmt, "--") || strings.HasPrefix(stmt, "/*") {
			continue
		}
		out = append(out, stmt)
	}
	return out
}

// ExecScript runs every statement of the script in a single transaction
// and returns how many were executed. Note that on Oracle DDL commits
// implicitly, so a failing later statement cannot roll back an earlier
// CREATE there.
func ExecScript(db *sql.DB, script string) (int, error) {
	stmts := SplitStatements(script)
	if len(stmts) == 0 {
		return 0, fmt.Errorf("script contains no executable statements")
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if tx != nil {
			tx.Rollback()
		}
	}()

	for i, stmt := range stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return i, fmt.Errorf("statement %d failed: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return len(stmts), fmt.Errorf("failed to commit: %w", err)
	}
	tx = nil
	return len(stmts), nil
}

// VerifyTable probes that the deployed table exists and answers queries.
func VerifyTable(db *sql.DB, table string) error {
	var n int
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE 1 = 0", table)
	if err := db.QueryRow(query).Scan(&n); err != nil {
		return fmt.Errorf("table %s did not verify: %w", table, err)
	}
	return nil
}
