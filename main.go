package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/database"
	"github.com/ratel-online/uno/network"
	"github.com/ratel-online/uno/session"
	"github.com/ratel-online/uno/state"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/player"
	"github.com/ratel-online/uno/uno/ui"
	"github.com/sirupsen/logrus"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	flag.StringVar(&cfg.Mode, "mode", cfg.Mode, "local, tcp or ws")
	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "tcp listen address")
	flag.StringVar(&cfg.WsAddr, "ws-addr", cfg.WsAddr, "websocket listen address")
	flag.StringVar(&cfg.Store, "store", cfg.Store, "memory, sqlite or redis")
	flag.StringVar(&cfg.SqlitePath, "sqlite", cfg.SqlitePath, "sqlite database file")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, 0 for a time based seed")
	flag.BoolVar(&cfg.ZeroSwap, "zero-swap", cfg.ZeroSwap, "zeros pass every hand on")
	flag.BoolVar(&cfg.ReshuffleDiscard, "reshuffle", cfg.ReshuffleDiscard, "shuffle the pile into an empty deck")
	flag.BoolVar(&cfg.HideComputerHands, "hide-hands", cfg.HideComputerHands, "hide computer hands")
	flag.DurationVar(&cfg.ComputerDelay, "delay", cfg.ComputerDelay, "pause before each computer decision")
	flag.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable colors")
	level := flag.String("log-level", cfg.LogLevel.String(), "log level")
	simulate := flag.Int("simulate", 0, "play this many computer matches headless and print the standings")
	seats := flag.Int("players", consts.MaxPlayers, "seats in simulated matches")
	flag.Parse()
	if cfg.LogLevel, err = logrus.ParseLevel(*level); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := logrus.New()
	logger.SetLevel(cfg.LogLevel)
	color.SetEnabled(!cfg.NoColor)

	ctx := context.Background()
	settings := session.Settings{
		Rules: game.HouseRules{
			ZeroSwap:         cfg.ZeroSwap,
			ReshuffleDiscard: cfg.ReshuffleDiscard,
		},
		HideComputerHands: cfg.HideComputerHands,
		ComputerDelay:     cfg.ComputerDelay,
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	if *simulate > 0 {
		rng := rand.New(rand.NewSource(seed))
		standings, err := session.Simulate(ctx, *simulate, player.CreateSimulationPlayers(*seats, rng), session.Options{
			Logger:   logger,
			Rand:     rng,
			Settings: settings,
		})
		if err != nil {
			logger.WithError(err).Fatal("simulate")
		}
		for _, standing := range standings {
			fmt.Printf("%-12s %6d wins %8d points\n", standing.Name, standing.Wins, standing.Points)
		}
		return
	}

	store, err := database.Open(ctx, cfg)
	if err != nil {
		logger.WithError(err).Fatal("open store")
	}
	defer store.Close()

	switch cfg.Mode {
	case config.ModeLocal:
		s := session.New(ui.NewTerminal(os.Stdin, os.Stdout), store, session.Options{
			Logger:   logger,
			Rand:     rand.New(rand.NewSource(seed)),
			Settings: settings,
		})
		if err := state.Run(ctx, s); err != nil {
			logger.WithError(err).Error("session ended")
		}
	case config.ModeTcp:
		handler := network.NewHandler(store, logger, settings, cfg.Seed)
		logger.Error(network.NewTcpServer(cfg.Addr, handler).Serve())
	case config.ModeWs:
		handler := network.NewHandler(store, logger, settings, cfg.Seed)
		logger.Error(network.NewWebsocketServer(cfg.WsAddr, handler).Serve())
	}
}
