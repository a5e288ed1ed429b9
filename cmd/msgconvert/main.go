// msgconvert converts XML messages under a directory to JSON, writing a
// sibling .json file next to each source and logging per-file timing.
package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

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

	failed, err := convertDir(os.Args[1], logger)
	if err != nil {
		logger.Error("conversion run failed", "error", err)
		os.Exit(2)
	}
	if failed > 0 {
		logger.Warn("conversion finished with failures", "failed", failed)
		os.Exit(1)
	}
}

func convertDir(dir string, logger *slog.Logger) (int, error) {
	failed := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".xml") {
			return nil
		}
		if err := convertFile(path); err != nil {
			logger.Error("convert failed", "file", path, "error", err)
			failed++
		}
		return nil
	})
	return failed, err
}

func convertFile(path string) error {
	start := time.Now()

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := iso20022.DecodeDocument(f)
	if err != nil {
		return err
	}
	out, err := iso20022.MarshalDocumentJSON(doc)
	if err != nil {
		return err
	}

	target := strings.TrimSuffix(path, filepath.Ext(path)) + ".json"
	if err := os.WriteFile(target, out, 0o644); err != nil {
		return err
	}

	tp, _ := doc.Type()
	slog.Info("converted",
		"file", path,
		"type", string(tp),
		"elapsed", time.Since(start).String(),
	)
	return nil
}
