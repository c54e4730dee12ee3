package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Mailframe/mailframe/config"
	"github.com/Mailframe/mailframe/pkg/emailbuilder"
	"github.com/Mailframe/mailframe/pkg/logger"
)

// osExit is a variable to allow mocking os.Exit in tests
var osExit = os.Exit

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		osExit(1)
		return
	}

	docPath := flag.String("doc", cfg.Preview.DocumentPath, "path to the document JSON file")
	htmlOut := flag.String("out", cfg.Preview.HTMLOutputPath, "path for the compiled HTML, - for stdout")
	mjmlOut := flag.String("mjml", cfg.Preview.MJMLOutputPath, "optional path for the intermediate MJML markup")
	dataPath := flag.String("data", cfg.Preview.TemplateDataPath, "optional path to personalization data JSON")
	flag.Parse()

	log := logger.NewConsoleLogger(cfg.LogLevel)

	if err := run(log, *docPath, *htmlOut, *mjmlOut, *dataPath); err != nil {
		log.WithField("error", err.Error()).Error("Preview failed")
		osExit(1)
	}
}

// run contains the preview logic, extracted for testability.
func run(log logger.Logger, docPath, htmlOut, mjmlOut, dataPath string) error {
	if docPath == "" {
		return fmt.Errorf("no document given: pass -doc or set PREVIEW_DOCUMENT")
	}

	raw, err := os.ReadFile(docPath)
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}

	doc, err := emailbuilder.UnmarshalDocument(raw)
	if err != nil {
		return err
	}
	if err := doc.Validate(); err != nil {
		return err
	}

	var data emailbuilder.MapOfAny
	if dataPath != "" {
		rawData, err := os.ReadFile(dataPath)
		if err != nil {
			return fmt.Errorf("failed to read personalization data: %w", err)
		}
		if err := json.Unmarshal(rawData, &data); err != nil {
			return fmt.Errorf("failed to parse personalization data: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	started := time.Now()
	result, err := emailbuilder.CompileDocument(ctx, doc, emailbuilder.CompileOptions{Data: data})
	if err != nil {
		return err
	}
	log.WithFields(map[string]interface{}{
		"document_id": doc.ID,
		"blocks":      len(doc.Blocks),
		"duration":    time.Since(started).String(),
	}).Info("Document compiled")

	if mjmlOut != "" {
		if err := writeOutput(mjmlOut, result.MJML); err != nil {
			return fmt.Errorf("failed to write MJML: %w", err)
		}
	}
	if err := writeOutput(htmlOut, result.HTML); err != nil {
		return fmt.Errorf("failed to write HTML: %w", err)
	}
	return nil
}

func writeOutput(path, content string) error {
	if path == "-" {
		_, err := fmt.Fprintln(os.Stdout, content)
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
