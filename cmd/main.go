package main

import (
	"errors"
	"os"
	"time"

	"github.com/saeidalz13/battleship-hotseat/console"
	"github.com/saeidalz13/battleship-hotseat/internal/config"
	cerr "github.com/saeidalz13/battleship-hotseat/internal/error"
	"github.com/saeidalz13/battleship-hotseat/internal/logging"
	mb "github.com/saeidalz13/battleship-hotseat/models/battleship"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		panic(err)
	}

	// stdout belongs to the players, logs go to a file
	logFile, err := logging.OpenLogFile(cfg.LogsDir, time.Now())
	if err != nil {
		panic(err)
	}
	defer logFile.Close()

	logger := logging.New(logFile, cfg.LogLevel)
	logger.Info().Str("stage", cfg.Stage).Msg("starting battleship")

	processor := console.NewProcessor(
		mb.NewBattleshipGameManager(),
		os.Stdin,
		os.Stdout,
		console.WithLogger(logger),
		console.WithPlayerNames(cfg.PlayerOneName, cfg.PlayerTwoName),
	)

	if err := processor.Run(); err != nil {
		if errors.Is(err, cerr.ErrInputClosed) {
			logger.Warn().Msg("input closed before the game ended")
			return
		}
		logger.Error().Err(err).Msg("game aborted")
		logFile.Close()
		os.Exit(1)
	}
	logger.Info().Msg("players left")
}
