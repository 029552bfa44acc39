package serverrun

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	cfgpkg "github.com/rzbill/stamp/internal/config"
	"github.com/rzbill/stamp/internal/runtime"
	httpserver "github.com/rzbill/stamp/internal/server/http"
	pebblestore "github.com/rzbill/stamp/internal/storage/pebble"
	logpkg "github.com/rzbill/stamp/pkg/log"
)

// Options configures a server run.
type Options struct {
	DataDir  string
	HTTPAddr string
	Fsync    pebblestore.FsyncMode
	Config   cfgpkg.Config
}

// resolveDataDir picks the data directory: explicit flag value first, then
// the config/env value, then the OS default.
func resolveDataDir(flagDir string, cfg cfgpkg.Config) string {
	if flagDir != "" {
		return flagDir
	}
	if cfg.DataDir != "" {
		return cfg.DataDir
	}
	return cfgpkg.DefaultDataDir()
}

// Run starts the runtime and HTTP server and blocks until ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	// Layer a local signal context over the provided one so direct callers
	// without signal awareness still shut down cleanly.
	sctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts.DataDir = resolveDataDir(opts.DataDir, opts.Config)
	if opts.HTTPAddr == "" {
		opts.HTTPAddr = opts.Config.HTTPAddr
	}

	logger, err := logpkg.ApplyConfig(&opts.Config.Log)
	if err != nil {
		return err
	}
	logpkg.RedirectStdLog(logger)

	storeDir := filepath.Join(opts.DataDir, "store")
	rt, err := runtime.Open(runtime.Options{
		DataDir: storeDir,
		Fsync:   opts.Fsync,
		Config:  opts.Config,
		Logger:  logger,
	})
	if err != nil {
		return err
	}
	defer rt.Close()

	logger.Info("starting stamp server",
		logpkg.Int64("machine_id", opts.Config.MachineID),
		logpkg.Str("http", opts.HTTPAddr),
		logpkg.Str("data_dir", opts.DataDir),
	)

	srv := httpserver.New(rt, logger)
	defer srv.Close()
	return srv.ListenAndServe(sctx, opts.HTTPAddr)
}
