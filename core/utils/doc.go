// Package utils provides small formatting helpers shared by the CLI output
// paths (byte counts, metadata mappings).
package utils
