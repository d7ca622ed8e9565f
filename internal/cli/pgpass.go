package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/censustat/popestat/pkg/popestat"
)

// pgpassPath returns the platform-appropriate .pgpass file path.
func pgpassPath() string {
	if custom := os.Getenv("PGPASSFILE"); custom != "" {
		return custom
	}
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("APPDATA"), "postgresql", "pgpass.conf")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pgpass")
}

// lookupPgpass searches the .pgpass file for a password matching the
// connection. Returns "" when the file is absent or no entry matches;
// .pgpass problems are never fatal, the caller just moves on to the next
// password source.
func lookupPgpass(cfg *popestat.ConnConfig) string {
	path := pgpassPath()
	if path == "" {
		return ""
	}
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	port := fmt.Sprintf("%d", cfg.Port)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := splitPgpassLine(line)
		if len(fields) != 5 {
			continue
		}
		if pgpassFieldMatches(fields[0], cfg.Host) &&
			pgpassFieldMatches(fields[1], port) &&
			pgpassFieldMatches(fields[2], cfg.Database) &&
			pgpassFieldMatches(fields[3], cfg.Username) {
			return fields[4]
		}
	}
	return ""
}

// splitPgpassLine splits a .pgpass line on unescaped colons and removes
// the \: and \\ escapes from each field.
func splitPgpassLine(line string) []string {
	var fields []string
	var field strings.Builder
	escaped := false
	for _, r := range line {
		switch {
		case escaped:
			field.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == ':':
			fields = append(fields, field.String())
			field.Reset()
		default:
			field.WriteRune(r)
		}
	}
	fields = append(fields, field.String())
	return fields
}

// pgpassFieldMatches implements the .pgpass "*" wildcard.
func pgpassFieldMatches(field, value string) bool {
	return field == "*" || field == value
}
