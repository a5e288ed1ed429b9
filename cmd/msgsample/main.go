// msgsample generates a sample payment message and writes it as XML or
// JSON. Field values come from a YAML config when given, random data
// otherwise.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Open-Payments/messages-sub014/pkg/config"
	"github.com/Open-Payments/messages-sub014/pkg/iso20022"
	"github.com/Open-Payments/messages-sub014/pkg/observability"
	"github.com/Open-Payments/messages-sub014/pkg/samplegen"
)

type appConfig struct {
	Log config.Logging
}

func main() {
	msgType := flag.String("type", string(iso20022.Pacs008), "message type to generate")
	cfgPath := flag.String("config", "", "YAML generation config with pinned fields")
	out := flag.String("out", "", "output file (stdout when empty)")
	format := flag.String("format", "xml", "output format, xml or json")
	flag.Parse()

	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	genCfg := samplegen.Config{}
	if *cfgPath != "" {
		var err error
		genCfg, err = samplegen.LoadConfig(*cfgPath)
		if err != nil {
			logger.Error("load generation config failed", "error", err)
			os.Exit(2)
		}
	}

	tp, ok := iso20022.ParseMessageType(*msgType)
	if !ok {
		logger.Error("unknown message type", "type", *msgType)
		os.Exit(2)
	}
	doc, err := samplegen.New(genCfg).Document(tp)
	if err != nil {
		logger.Error("generate failed", "type", *msgType, "error", err)
		os.Exit(2)
	}

	var data []byte
	switch strings.ToLower(*format) {
	case "xml":
		data, err = iso20022.MarshalDocumentXML(&doc)
	case "json":
		data, err = iso20022.MarshalDocumentJSON(&doc)
	default:
		logger.Error("unknown format", "format", *format)
		os.Exit(2)
	}
	if err != nil {
		logger.Error("encode failed", "error", err)
		os.Exit(2)
	}

	if *out == "" {
		fmt.Println(string(data))
		return
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		logger.Error("write failed", "file", *out, "error", err)
		os.Exit(2)
	}
	logger.Info("sample written", "file", *out, "type", *msgType)
}
