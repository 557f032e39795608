// Command erpload performs a one-shot, replace-everything batch load of the
// five ERP extracts into a relational store. It loads the batch config,
// validates it, and executes the ETL run; progress and error detail go to
// the console log and the exit code signals overall success or failure.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"erpload/internal/config"
	"erpload/internal/etl"

	// Register all storage backends with the factory.
	_ "erpload/internal/storage/all"
)

func main() {
	var (
		cfgPath  string
		dbName   string
		validate bool
	)

	flag.StringVar(&cfgPath, "config", "", "batch config path (JSON or YAML); omit to use the ERP's standard export names")
	flag.StringVar(&dbName, "db", "", "output store name; overrides storage.dsn from the config")
	flag.BoolVar(&validate, "validate", false, "validate the configuration and exit")
	verbose := flag.Bool("v", false, "enable verbose logs")
	flag.Parse()

	cfg := config.Default()
	if cfgPath != "" {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			fatalf("load config: %v", err)
		}
	}
	if dbName != "" {
		cfg.Storage.DSN = dbName
		if cfg.Storage.Kind == "" {
			cfg.Storage.Kind = "sqlite"
		}
	}

	issues := config.Validate(cfg)
	hasError := false
	for _, iss := range issues {
		fmt.Fprintf(os.Stderr, "%s: %s: %s\n", iss.Severity, iss.Path, iss.Message)
		if iss.Severity == config.SeverityError {
			hasError = true
		}
	}
	if hasError {
		log.Printf("configuration is invalid")
		os.Exit(1)
	}
	if validate {
		log.Printf("configuration is valid")
		os.Exit(0)
	}

	if *verbose {
		log.Printf("sources: representatives=%s clients=%s products=%s orders=%s items=%s",
			cfg.Sources.Representatives.Path, cfg.Sources.Clients.Path,
			cfg.Sources.Products.Path, cfg.Sources.Orders.Path,
			cfg.Sources.OrderItems.Path)
		log.Printf("storage: kind=%s dsn=%s", cfg.Storage.Kind, cfg.Storage.DSN)
	}

	start := time.Now()
	if err := etl.Run(context.Background(), cfg); err != nil {
		log.Fatalf("%v", err)
	}
	if *verbose {
		log.Printf("completed in %s", time.Since(start).Truncate(time.Millisecond))
	}
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
