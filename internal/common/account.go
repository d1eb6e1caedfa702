package common

import (
	"path/filepath"
	"regexp"
	"strings"

	"fjacquet/camt-report/internal/models"
)

// Account identifier sources
const (
	AccountSourceContent  = "content"
	AccountSourceFilename = "filename"
	AccountSourceDefault  = "default"
)

// AccountIdentifier represents an account identifier with its source
type AccountIdentifier struct {
	ID     string // The account identifier (e.g., "54293249")
	Source string // Source of identification: "content", "filename", "default"
}

// CAMT filename pattern: CAMT.053_{account}_{start_date}_{end_date}_{sequence}.{ext}
// Example: CAMT.053_54293249_2025-04-01_2025-04-30_1.xml
var camtFilenamePattern = regexp.MustCompile(`^CAMT\.053_([0-9]+)_\d{4}-\d{2}-\d{2}_\d{4}-\d{2}-\d{2}_\d+\.(xml|csv)$`)

// ExtractAccountFromCAMTFilename extracts the account number from CAMT filename patterns.
// Falls back to the sanitized base filename.
func ExtractAccountFromCAMTFilename(filename string) AccountIdentifier {
	baseName := filepath.Base(filename)

	matches := camtFilenamePattern.FindStringSubmatch(baseName)
	if len(matches) >= 2 {
		return AccountIdentifier{
			ID:     matches[1],
			Source: AccountSourceFilename,
		}
	}

	baseWithoutExt := strings.TrimSuffix(baseName, filepath.Ext(baseName))
	return AccountIdentifier{
		ID:     SanitizeAccountID(baseWithoutExt),
		Source: AccountSourceDefault,
	}
}

// StatementAccount identifies the account a statement belongs to. The Acct element of
// the statement wins; otherwise the CAMT filename convention is tried.
func StatementAccount(stmt *models.Statement, filename string) AccountIdentifier {
	if stmt != nil && stmt.Account != nil {
		id := stmt.Account.ID.Value
		// IBANs are often written in groups of four
		if iban, ok := stmt.Account.ID.IBAN(); ok {
			id = strings.ReplaceAll(iban, " ", "")
		}
		if id != "" {
			return AccountIdentifier{
				ID:     SanitizeAccountID(id),
				Source: AccountSourceContent,
			}
		}
	}
	return ExtractAccountFromCAMTFilename(filename)
}

// SanitizeAccountID sanitizes an account identifier to be filesystem-safe.
// Path traversal sequences like ".." are removed.
func SanitizeAccountID(accountID string) string {
	sanitized := strings.TrimSpace(accountID)
	sanitized = strings.ReplaceAll(sanitized, " ", "_")

	// Keep alphanumeric, underscores, hyphens, and dots
	var result strings.Builder
	for _, r := range sanitized {
		if (r >= 'a' && r <= 'z') ||
			(r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') ||
			r == '_' || r == '-' || r == '.' {
			result.WriteRune(r)
		} else {
			result.WriteRune('_')
		}
	}

	sanitized = result.String()

	for strings.Contains(sanitized, "..") {
		sanitized = strings.ReplaceAll(sanitized, "..", "_")
	}
	for strings.Contains(sanitized, "__") {
		sanitized = strings.ReplaceAll(sanitized, "__", "_")
	}

	sanitized = strings.Trim(sanitized, "_.")

	if sanitized == "" {
		sanitized = "UNKNOWN"
	}

	return sanitized
}
