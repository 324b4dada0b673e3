package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"gridsnake/ai"
	"gridsnake/config"
	"gridsnake/game"
	"gridsnake/ui"
	"gridsnake/ui/terminal"

	"github.com/gdamore/tcell/v2"
	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/exp/rand"
)

func main() {
	configFile := flag.String("config", "", "path to a YAML config file")
	rows := flag.Int("rows", config.DefaultRows, "grid rows")
	cols := flag.Int("cols", config.DefaultCols, "grid columns")
	moveInterval := flag.Duration("move-interval", config.DefaultMoveInterval, "time between snake moves")
	foodInterval := flag.Duration("food-interval", config.DefaultFoodInterval, "time between food spawn attempts")
	seed := flag.Uint64("seed", 0, "food placement seed (0 = random)")
	foodStrategy := flag.String("food-strategy", "rejection", "food placement: rejection or free-cells")
	frontend := flag.String("frontend", "window", "frontend to use: window or terminal")
	autopilot := flag.Bool("autopilot", false, "let a Q-learning agent steer the snake")
	logFile := flag.String("log", "", "write logs to this file instead of stderr")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatal(err)
	}

	// Flags given on the command line win over the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rows":
			cfg.Grid.Rows = *rows
		case "cols":
			cfg.Grid.Cols = *cols
		case "move-interval":
			cfg.MoveInterval = *moveInterval
		case "food-interval":
			cfg.FoodInterval = *foodInterval
		case "seed":
			cfg.Seed = *seed
		case "food-strategy":
			cfg.FoodStrategy = *foodStrategy
		}
	})

	logger := log.Default()
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		logger = log.New(f, "", log.LstdFlags)
	} else if *frontend == "terminal" {
		// the terminal frontend owns the tty
		logger = log.New(io.Discard, "", 0)
	}

	session, err := game.NewSession(cfg, logger)
	if err != nil {
		log.Fatal(err)
	}

	var pilot *ai.Pilot
	if *autopilot {
		pilot = ai.NewPilot(ai.NewQLearning(rand.New(rand.NewSource(uint64(time.Now().UnixNano())))))
	}

	switch *frontend {
	case "window":
		rl.InitWindow(800, 700, "gridsnake")
		rl.SetWindowState(rl.FlagWindowResizable)
		defer rl.CloseWindow()
		rl.SetTargetFPS(60)

		ui.NewRenderer(session, pilot).Run()
	case "terminal":
		screen, err := tcell.NewScreen()
		if err != nil {
			log.Fatal(err)
		}
		if err := screen.Init(); err != nil {
			log.Fatalf("screen.Init error: %s", err.Error())
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := terminal.New(screen, session, pilot).Run(ctx, terminal.DefaultFrameRate); err != nil && ctx.Err() == nil {
			log.Printf("terminal: %s", err.Error())
		}
	default:
		log.Fatalf("unknown frontend %q", *frontend)
	}

	scores := session.Scoreboard()
	session.Log.Printf("bye: %d games, best length %d, average %.1f",
		scores.GamesPlayed(), scores.HighScore(), scores.AverageLength())
}
