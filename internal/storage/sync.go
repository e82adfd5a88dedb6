package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
)

var columnName = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// ExportToTOML dumps every application table into a single TOML file, one
// array of row tables per table.
func (s *Storage) ExportToTOML(ctx context.Context, outputPath string) error {
	dbDump := make(map[string][]map[string]interface{})

	for _, tableName := range syncTables {
		tableData, err := s.dumpTable(ctx, tableName)
		if err != nil {
			return err
		}
		dbDump[tableName] = tableData
	}

	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(dbDump); err != nil {
		return fmt.Errorf("encoding TOML: %w", err)
	}

	// Make the output path absolute relative to the current directory.
	outputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, []byte(sb.String()), 0600); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}

	log.WithField("path", outputPath).Info("database exported")
	return nil
}

func (s *Storage) dumpTable(ctx context.Context, tableName string) ([]map[string]interface{}, error) {
	tableRows, err := s.DB.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s;", tableName))
	if err != nil {
		return nil, fmt.Errorf("querying table %s: %w", tableName, err)
	}
	defer tableRows.Close()

	cols, err := tableRows.Columns()
	if err != nil {
		return nil, fmt.Errorf("getting columns for table %s: %w", tableName, err)
	}

	tableData := []map[string]interface{}{}
	for tableRows.Next() {
		values := make([]interface{}, len(cols))
		valuePtrs := make([]interface{}, len(cols))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := tableRows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("scanning row in table %s: %w", tableName, err)
		}

		rowMap := make(map[string]interface{})
		for i, col := range cols {
			val := values[i]
			if b, ok := val.([]byte); ok {
				rowMap[col] = string(b)
			} else {
				rowMap[col] = val
			}
		}
		tableData = append(tableData, rowMap)
	}
	if err := tableRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating table %s: %w", tableName, err)
	}
	return tableData, nil
}

// GetDBExportPath returns the default location of the TOML dump.
func GetDBExportPath(configDir string) (string, error) {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(configDir, "db_dump.toml"), nil
}

// ImportFromTOML rebuilds the application tables from a dump written by
// ExportToTOML. Everything happens in one transaction. A dump naming an
// unknown table or column, or missing one of the application tables, is
// rejected before anything is touched.
func (s *Storage) ImportFromTOML(ctx context.Context, filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("Reading file %s: %w", filePath, err)
	}

	var dbDump map[string][]map[string]interface{}
	if _, err := toml.Decode(string(data), &dbDump); err != nil {
		return fmt.Errorf("Decoding TOML: %w", err)
	}

	for table, rows := range dbDump {
		if !isSyncTable(table) {
			return fmt.Errorf("unknown table %q in dump", table)
		}
		for _, row := range rows {
			for col := range row {
				if !columnName.MatchString(col) {
					return fmt.Errorf("invalid column %q in table %s", col, table)
				}
			}
		}
	}
	for _, table := range syncTables {
		if _, ok := dbDump[table]; !ok {
			return fmt.Errorf("dump is missing table %s", table)
		}
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Children first, so foreign keys hold while clearing.
	for i := len(syncTables) - 1; i >= 0; i-- {
		table := syncTables[i]
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s;", table)); err != nil {
			return fmt.Errorf("Clearing table %s: %w", table, err)
		}
	}

	inserted := 0
	for _, table := range syncTables {
		for _, row := range dbDump[table] {
			var columns []string
			var placeholders []string
			var values []interface{}
			for col, val := range row {
				columns = append(columns, col)
				placeholders = append(placeholders, "?")
				values = append(values, val)
			}
			query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);", table, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
			if _, err := tx.ExecContext(ctx, query, values...); err != nil {
				return fmt.Errorf("Inserting into table %s: %w", table, err)
			}
			inserted++
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Committing transaction: %w", err)
	}

	log.WithField("rows", inserted).Info("database rebuilt from dump")
	return nil
}
