// internal/repositories/mysql/util.go
// Helper SQL bersama: IN (...) pada prod_monthly & VALUES multi-row untuk upsert wells/prod_monthly
package mysql

import "strings"

// placeholders menghasilkan "?,?,..." sebanyak n (untuk IN (...) dan satu baris VALUES).
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("?,", n-1) + "?"
}

// valueRows: "(?,..),(?,..)" sebanyak rows, masing-masing cols kolom.
func valueRows(cols, rows int) string {
	if rows <= 0 {
		return ""
	}
	row := "(" + placeholders(cols) + ")"
	return strings.Repeat(row+",", rows-1) + row
}
