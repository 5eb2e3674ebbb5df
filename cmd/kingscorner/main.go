package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"kingscorner/internal/app"
	"kingscorner/internal/config"
	"kingscorner/internal/domain"
	"kingscorner/internal/ports"
	"kingscorner/internal/ports/console"
	"kingscorner/internal/ports/jsonl"
	"kingscorner/internal/strategy"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "kingscorner: %v\n", err)
		return 2
	}

	logger, err := newLogger(cfg.Log, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "kingscorner: %v\n", err)
		return 2
	}
	defer func() { _ = logger.Sync() }()

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	svc := app.NewService(rand.New(rand.NewSource(seed)), app.WithLogger(logger))

	game, events, err := svc.StartGame(cfg.Game.Players, domain.DefaultDeck())
	if err != nil {
		logger.Error("failed to start game", zap.Error(err))
		return 1
	}
	gameLogger := logger.With(zap.String("game_id", game.ID))

	if cfg.Automatic() {
		// Nobody reads stdin, so leave it alone.
		stdin = nil
		gameLogger.Info("all seats play automatically", zap.Int("players", cfg.Game.Players))
	}
	sink, display, input := adapters(cfg.Output.Format, stdin, stdout)
	strategies, err := strategy.ForSeats(cfg.Game.Players, cfg.Game.HumanSeat, strategy.Deps{
		Input:   input,
		Display: display,
		Logger:  gameLogger,
	})
	if err != nil {
		gameLogger.Error("failed to seat players", zap.Error(err))
		return 1
	}

	eng, err := app.NewEngine(svc, game, strategies, sink)
	if err != nil {
		gameLogger.Error("failed to create engine", zap.Error(err))
		return 1
	}
	if err := eng.Announce(events); err != nil {
		gameLogger.Error("failed to announce game", zap.Error(err))
		return 1
	}

	res, err := eng.Run(ctx)
	if err != nil {
		gameLogger.Error("game aborted", zap.Error(err))
		return 1
	}
	gameLogger.Info("game finished",
		zap.Int("winner", res.Winner),
		zap.Bool("stalemate", res.Stalemate),
		zap.Int("turns", res.Turns),
		zap.Int64("seed", seed))
	return 0
}

// adapters wires the output format to stdout. A nil stdin yields no input port.
func adapters(format string, stdin io.Reader, stdout io.Writer) (app.EventSink, ports.DisplayPort, ports.InputPort) {
	if format == config.OutputJSON {
		w := jsonl.New(stdout)
		if stdin == nil {
			return w, w, nil
		}
		return w, w, w.Prompted(console.New(stdin, io.Discard))
	}
	c := console.New(stdin, stdout)
	if stdin == nil {
		return c, c, nil
	}
	return c, c, c
}

func newLogger(cfg config.LogConfig, w io.Writer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var enc zapcore.Encoder
	if cfg.Format == config.LogFormatJSON {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), level)), nil
}
