package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/GoSim-25-26J-441/scaffold-forge-backend/config"
	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/logging"
)

const usage = "usage: worker migrate | cleanup-status [days] | stats | templates"

func main() {
	if len(os.Args) < 2 {
		logrus.Fatal(usage)
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}
	logging.Setup(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	switch os.Args[1] {
	case "migrate":
		err = RunMigrate(cfg)
	case "cleanup-status":
		err = RunCleanupStatus(cfg, os.Args[2:])
	case "stats":
		err = RunStats(cfg, os.Stdout)
	case "templates":
		err = RunTemplates(os.Stdout)
	default:
		logrus.Fatalf("unknown command: %s\n%s", os.Args[1], usage)
	}
	if err != nil {
		logrus.WithError(err).Fatalf("%s failed", os.Args[1])
	}
}
