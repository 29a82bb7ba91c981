package main

import (
	"context"
	"os"

	"sales-analytics/internal/analytics"
	"sales-analytics/internal/config"
	"sales-analytics/internal/rowsource"

	"github.com/joho/godotenv"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("log")

// InitLogger receives the log level to be set in go-logging as a
// string, parses it and installs a formatted stdout backend. An
// invalid level string returns an error.
func InitLogger(logLevel string) error {
	baseBackend := logging.NewLogBackend(os.Stdout, "", 0)
	format := logging.MustStringFormatter(
		`%{time:2006-01-02 15:04:05} %{level:.5s}     %{message}`,
	)
	backendFormatter := logging.NewBackendFormatter(baseBackend, format)

	backendLeveled := logging.AddModuleLevel(backendFormatter)
	logLevelCode, err := logging.LogLevel(logLevel)
	if err != nil {
		return err
	}
	backendLeveled.SetLevel(logLevelCode, "")

	logging.SetBackend(backendLeveled)
	return nil
}

func thresholds(s config.SegmentConfig) analytics.Thresholds {
	return analytics.Thresholds{
		VIPMinSpend:       s.VIPMinSpend,
		RegularMaxSpend:   s.RegularMaxSpend,
		MinLifespanMonths: s.MinLifespanMonths,
		CostLow:           s.CostLow,
		CostMid:           s.CostMid,
		CostHigh:          s.CostHigh,
	}
}

func main() {
	godotenv.Load()

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %s", err)
	}
	if err := InitLogger(cfg.LogLevel); err != nil {
		log.Fatalf("%s", err)
	}

	now, err := cfg.ReferenceTime()
	if err != nil {
		log.Fatalf("%s", err)
	}

	src, err := rowsource.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open row source: %s", err)
	}
	defer src.Close()

	result, err := analytics.Run(context.Background(), src, analytics.Options{
		Now:        now,
		Thresholds: thresholds(cfg.Segments),
	})
	if err != nil {
		log.Fatalf("Analytics run failed: %s", err)
	}

	runDir, exports := analytics.NewExporter(cfg.OutputDir).Export(result)
	for _, e := range exports {
		if e.Success {
			log.Infof("Exported %d records to %s (%s)", e.RecordCount, e.Path, e.Type)
		} else {
			log.Errorf("Export to %s failed: %s", e.Path, e.Error)
		}
	}
	log.Infof("Report written to %s", runDir)
}
