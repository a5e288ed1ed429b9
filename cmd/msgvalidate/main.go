// msgvalidate decodes every XML message under a directory and reports
// constraint violations with their field paths. Exit code 1 when any
// file fails to decode or validate.
package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Open-Payments/messages-sub014/pkg/config"
	"github.com/Open-Payments/messages-sub014/pkg/iso20022"
	"github.com/Open-Payments/messages-sub014/pkg/observability"
)

type appConfig struct {
	Log config.Logging
}

func main() {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s DIR\n", filepath.Base(os.Args[0]))
		os.Exit(2)
	}

	failed, err := validateDir(os.Args[1], logger)
	if err != nil {
		logger.Error("validation run failed", "error", err)
		os.Exit(2)
	}
	if failed > 0 {
		logger.Warn("validation finished with failures", "failed", failed)
		os.Exit(1)
	}
	logger.Info("all messages valid")
}

// validateDir checks every .xml file under dir and returns how many were
// invalid or undecodable.
func validateDir(dir string, logger *slog.Logger) (int, error) {
	failed := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".xml") {
			return nil
		}
		if !validateFile(path, logger) {
			failed++
		}
		return nil
	})
	return failed, err
}

func validateFile(path string, logger *slog.Logger) bool {
	f, err := os.Open(path)
	if err != nil {
		logger.Error("open failed", "file", path, "error", err)
		return false
	}
	defer f.Close()

	doc, err := iso20022.DecodeDocument(f)
	if err != nil {
		logger.Error("decode failed", "file", path, "error", err)
		return false
	}
	tp, _ := doc.Type()
	if err := doc.Validate(); err != nil {
		observability.LogViolations(logger, path, err)
		return false
	}
	logger.Info("message valid", "file", path, "type", string(tp))
	return true
}
