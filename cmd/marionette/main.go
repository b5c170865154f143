// Command marionette opens the puppet editor.
//
// Settings come from a YAML file (see marionette.Config); a missing file
// falls back to the built-in defaults. An optional input script replays
// clicks, drags and typing for headless checks.
package main

import (
	"errors"
	"flag"
	"io/fs"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/phanxgames/marionette"
)

func main() {
	var (
		configPath = flag.String("config", "marionette.yaml", "path to config file")
		scriptPath = flag.String("script", "", "input script to replay (YAML or JSON)")
		exitAfter  = flag.Bool("exit", false, "quit once the script has finished")
		logLevel   = flag.String("log-level", "", "override the configured log level")
	)
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	cfg, err := marionette.LoadConfig(*configPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Info().Str("path", *configPath).Msg("config not found, using defaults")
		cfg = marionette.DefaultConfig()
	case err != nil:
		log.Fatal().Err(err).Msg("load config")
	}

	level := cfg.LogLevel
	if *logLevel != "" {
		level = *logLevel
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		log.Fatal().Err(err).Str("level", level).Msg("parse log level")
	}
	zerolog.SetGlobalLevel(lvl)
	marionette.SetLogger(log.With().Str("pkg", "marionette").Logger())

	editor := marionette.NewEditor(cfg)

	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			log.Fatal().Err(err).Msg("read script")
		}
		script, err := marionette.LoadScript(data)
		if err != nil {
			log.Fatal().Err(err).Msg("load script")
		}
		editor.SetScript(script)
	}

	if err := marionette.Run(editor, marionette.RunOptions{ExitWhenScriptDone: *exitAfter}); err != nil {
		log.Fatal().Err(err).Msg("run")
	}
}
