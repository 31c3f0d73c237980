package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/jimezsa/kazi/internal/api"
	"github.com/jimezsa/kazi/internal/cmd"
	"github.com/jimezsa/kazi/internal/config"
	"github.com/jimezsa/kazi/internal/network"
	"github.com/jimezsa/kazi/internal/session"
	"github.com/jimezsa/kazi/internal/storage"
	"github.com/jimezsa/kazi/internal/ui"
	"github.com/rs/zerolog"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	os.Exit(run())
}

func run() int {
	cli := cmd.NewCLI()
	applyEnvDefaults(cli)
	versionString := buildVersion()

	parser, err := kong.New(cli,
		kong.Name("kazi"),
		kong.Description("Kazi Mashinani: find and post rural jobs from the terminal."),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"version": versionString},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	kctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		fallbackUI := ui.New(os.Stdout, os.Stderr, ui.NormalizeColorMode(os.Getenv("KAZI_COLOR")), false)
		fallbackUI.Errorf("%v", err)
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	cfg = cfg.Normalize()

	configDir, err := config.ConfigDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	colorMode := ui.NormalizeColorMode(cli.Color)
	disableColor := cli.JSON || cli.Plain
	userInterface := ui.New(os.Stdout, os.Stderr, colorMode, disableColor)

	level := zerolog.InfoLevel
	if cli.Verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	backendKind := cfg.StorageBackend
	if cli.Ephemeral {
		backendKind = storage.BackendMemory
	}
	storagePath := cfg.ResolveStoragePath(configDir)
	if backendKind != storage.BackendMemory {
		if err := os.MkdirAll(configDir, 0o755); err != nil {
			userInterface.Errorf("%v", err)
			return 1
		}
	}
	backend, err := storage.OpenBackend(backendKind, storagePath)
	if err != nil {
		userInterface.Errorf("open storage: %v", err)
		return 1
	}
	store := storage.New(backend, logger)
	defer store.Close()

	sess := session.Open(store, cfg.DefaultLanguage, logger)
	userInterface.SetDarkMode(sess.State().DarkMode)

	transport, err := network.NewClient(network.Options{
		Timeout: cfg.Timeout(),
		Proxy:   cfg.Proxy,
	}, logger)
	if err != nil {
		userInterface.Errorf("%v", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runCtx := &cmd.Context{
		Ctx:        ctx,
		Out:        os.Stdout,
		Err:        os.Stderr,
		UI:         userInterface,
		Config:     cfg,
		ConfigDir:  configDir,
		Logger:     logger,
		Verbose:    cli.Verbose,
		JSONOutput: cli.JSON,
		PlainText:  cli.Plain,
		Version:    versionString,
		ColorMode:  colorMode,
		Storage:    store,
		Session:    sess,
		API:        api.New(transport, cfg.APIBaseURL, logger),
	}

	if err := kctx.Run(runCtx); err != nil {
		userInterface.Errorf("%s", cmd.Describe(runCtx.Language(), err))
		logger.Debug().Err(err).Msg("command failed")
		return 1
	}
	return 0
}

func buildVersion() string {
	if commit == "" && date == "" {
		return version
	}
	if commit == "" {
		return fmt.Sprintf("%s (%s)", version, date)
	}
	if date == "" {
		return fmt.Sprintf("%s (%s)", version, commit)
	}
	return fmt.Sprintf("%s (%s, %s)", version, commit, date)
}

func applyEnvDefaults(cli *cmd.CLI) {
	if envBool("KAZI_JSON") {
		cli.JSON = true
	}
	if envBool("KAZI_VERBOSE") {
		cli.Verbose = true
	}
	if envBool("KAZI_EPHEMERAL") {
		cli.Ephemeral = true
	}
	if value := os.Getenv("KAZI_COLOR"); value != "" {
		cli.Color = value
	}
}

func envBool(key string) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return false
	}
	switch strings.ToLower(value) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
