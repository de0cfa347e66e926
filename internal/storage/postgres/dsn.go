package postgres

import (
	"fmt"

	"github.com/GoSim-25-26J-441/scaffold-forge-backend/config"
)

// DSN returns DB_DSN when set, otherwise a keyword DSN built from the DB_*
// parts.
func DSN(cfg *config.DatabaseConfig) string {
	if cfg.DSN != "" {
		return cfg.DSN
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name,
	)
}
