package cli

import (
	"github.com/censustat/popestat/internal/tui"
	"github.com/censustat/popestat/pkg/popestat"
)

// resolvePassword fills in cfg.Password when the environment did not.
//
// For security the password is never a CLI flag and never a compiled-in
// constant. Sources, in order:
//  1. $PGPASSWORD (already applied by the resolver)
//  2. a matching .pgpass entry (PostgreSQL standard, $PGPASSFILE honored)
//  3. an interactive non-echoing prompt, terminals only
//
// In non-interactive runs with no password available the connection is
// attempted with an empty password, which still works against trust or
// peer authentication.
func resolvePassword(cfg *popestat.ConnConfig, logger popestat.Logger) error {
	if cfg.Password != "" {
		return nil
	}

	if pw := lookupPgpass(cfg); pw != "" {
		logger.Verbose("password taken from %s", pgpassPath())
		cfg.Password = pw
		return nil
	}

	if !tui.IsInteractive() {
		logger.Verbose("no password available and not a terminal; connecting without one")
		return nil
	}

	pw, err := tui.ReadPassword("Password for user " + cfg.Username + ": ")
	if err != nil {
		return err
	}
	cfg.Password = pw
	return nil
}
