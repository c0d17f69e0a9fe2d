// Package main runs the Wahoo SYSTM MCP server over stdio. Credentials come
// from SYSTM_USERNAME and SYSTM_PASSWORD; authentication happens once at
// startup and the session is reused for the life of the process.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/2beens/systm-mcp/internal/config"
	"github.com/2beens/systm-mcp/internal/logging"
	"github.com/2beens/systm-mcp/internal/systm"
	systmmcp "github.com/2beens/systm-mcp/internal/systm/mcp"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	var logFileName string
	if cfg.LogsPath != "" {
		logFileName = filepath.Join(cfg.LogsPath, "systm-mcp.log")
	}
	logging.Setup(logging.SetupParams{
		LogFileName:   logFileName,
		LogToStdout:   cfg.LogToStdout,
		LogLevel:      cfg.LogLevel,
		Environment:   *env,
		SentryEnabled: cfg.SentryEnabled,
		SentryDSN:     cfg.SentryDSN,
	})

	username := os.Getenv("SYSTM_USERNAME")
	password := os.Getenv("SYSTM_PASSWORD")
	if username == "" || password == "" {
		log.Fatalln("SYSTM_USERNAME and SYSTM_PASSWORD must be set")
	}

	client := systm.NewClient(systm.NewClientParams{
		APIURL:     cfg.APIURL,
		AppVersion: cfg.AppVersion,
		InstallID:  cfg.InstallID,
		Locale:     cfg.Locale,
		HTTPClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	})

	ctx := context.Background()
	if err := client.Authenticate(ctx, username, password); err != nil {
		log.Fatalf("authenticate: %v", err)
	}
	log.Infof("authenticated as %s", username)

	server := systmmcp.NewServer(client)
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
