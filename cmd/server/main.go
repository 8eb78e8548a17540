package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"

	"github.com/kasagi/gomical/pkg/api"
	"github.com/kasagi/gomical/pkg/catalog"
	"github.com/kasagi/gomical/pkg/chassis"
	"github.com/kasagi/gomical/pkg/notify"
	"github.com/kasagi/gomical/pkg/schedule"
	"github.com/kasagi/gomical/pkg/store"
)

const version = "0.1.0"

type config struct {
	Addr       string `yaml:"addr"`
	DataDir    string `yaml:"data_dir"`
	SettingsDB string `yaml:"settings_db"`
	Timezone   string `yaml:"timezone"`

	// TLS cert/key for the chassis. Empty means a self-signed dev cert.
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		cmdServe(os.Args[2:])
	case "mcp":
		cmdMCP(os.Args[2:])
	case "call":
		cmdCall(os.Args[2:])
	case "import":
		cmdImport(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: gomical <command>

Commands:
  serve    Start the API server (HTTPS + HTTP/3, MCP over QUIC)
  mcp      Serve the MCP tools over stdio
  call     Invoke an MCP tool on a running server over QUIC
  import   Download and convert municipal open data
`)
}

func cmdServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	fs.Parse(args)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg := loadConfig(*cfgPath, logger)
	svc := buildService(cfg, logger)

	mcpSrv := server.NewMCPServer("gomical", version)
	api.RegisterMCPTools(mcpSrv, svc)

	srv, err := chassis.New(chassis.Config{
		Addr:      cfg.Addr,
		CertFile:  cfg.CertFile,
		KeyFile:   cfg.KeyFile,
		Handler:   api.NewRouter(svc),
		MCPServer: mcpSrv,
		Logger:    logger,
	})
	if err != nil {
		logger.Error("chassis init", "error", err)
		os.Exit(1)
	}

	// SIGHUP: hot reload data files.
	// SIGINT/SIGTERM: graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sighup := make(chan os.Signal, 1)
	signal.Notify(sighup, syscall.SIGHUP)
	go func() {
		for range sighup {
			logger.Info("SIGHUP received, reloading data")
			if err := reloadData(cfg, svc); err != nil {
				logger.Error("reload failed", "error", err)
			} else {
				d := svc.Data()
				logger.Info("data reloaded", "items", d.Catalog.Len(), "areas", len(d.Areas.All()))
			}
		}
	}()

	if err := srv.Start(ctx); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}

	logger.Info("shutting down")
	stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	srv.Stop(stopCtx)
}

func buildService(cfg config, logger *slog.Logger) *api.Service {
	tz, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Error("load timezone", "tz", cfg.Timezone, "error", err)
		os.Exit(1)
	}

	ds, err := loadDataset(cfg.DataDir)
	if err != nil {
		logger.Error("load data", "error", err)
		os.Exit(1)
	}
	logger.Info("data loaded",
		"items", ds.Catalog.Len(),
		"areas", len(ds.Areas.All()),
		"exceptions", ds.Calendar.Len(),
	)

	kv, err := store.OpenSQLite(cfg.SettingsDB)
	if err != nil {
		logger.Error("open settings db", "error", err)
		os.Exit(1)
	}

	svc := &api.Service{
		Scheduler: notify.NewScheduler(notify.NewMemory(), logger, tz),
		KV:        kv,
		Logger:    logger,
		TZ:        tz,
		Now:       time.Now,
	}
	svc.SetData(ds)
	return svc
}

// loadDataset reads the three data files; all must parse before anything
// is swapped in.
func loadDataset(dir string) (*api.Dataset, error) {
	cat, err := catalog.Load(filepath.Join(dir, "catalog.yaml"))
	if err != nil {
		return nil, err
	}
	areas, err := schedule.LoadAreas(filepath.Join(dir, "areas.yaml"))
	if err != nil {
		return nil, err
	}
	cal, err := schedule.LoadCalendar(filepath.Join(dir, "calendar.yaml"))
	if err != nil {
		return nil, err
	}
	return &api.Dataset{Catalog: cat, Areas: areas, Calendar: cal}, nil
}

func reloadData(cfg config, svc *api.Service) error {
	ds, err := loadDataset(cfg.DataDir)
	if err != nil {
		return err
	}
	svc.SetData(ds)
	return nil
}

func loadConfig(path string, logger *slog.Logger) config {
	cfg := config{
		Addr:       ":8430",
		DataDir:    "data",
		SettingsDB: "settings.db",
		Timezone:   "Asia/Tokyo",
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("no config file, using defaults", "path", path)
			return cfg
		}
		logger.Error("read config", "error", err)
		os.Exit(1)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logger.Error("parse config", "error", err)
		os.Exit(1)
	}
	return cfg
}
