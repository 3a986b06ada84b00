// Command grotto generates a random room-and-corridor dungeon and prints it
// to the terminal.
//
// With no positional arguments it generates a 50×50 grid; with exactly two
// it takes them as width and height. Any other argument count falls back to
// the default size. Defaults can also come from the environment (optionally
// via a .env file): GROTTO_WIDTH, GROTTO_HEIGHT, GROTTO_SEED,
// GROTTO_ATTEMPTS.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/borkshop/grotto/internal/dungeon"
	"github.com/borkshop/grotto/internal/grid"
	"github.com/borkshop/grotto/internal/render"
	"github.com/borkshop/grotto/internal/view"
)

const defaultSize = 50

func main() {
	// A .env file is optional; the process environment alone works too.
	_ = godotenv.Load()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	var (
		seed     = flag.Int64("seed", envInt64("GROTTO_SEED", 0), "random seed; 0 draws one from the clock")
		attempts = flag.Int("attempts", envInt("GROTTO_ATTEMPTS", dungeon.DefaultAttempts), "room placement attempts")
		noColor  = flag.Bool("no-color", false, "render without ANSI colors")
		final    = flag.Bool("final", false, "render only the pruned grid")
		watch    = flag.Bool("watch", false, "interactive mode: regenerate on keypress")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	w, h := envInt("GROTTO_WIDTH", defaultSize), envInt("GROTTO_HEIGHT", defaultSize)
	if args := flag.Args(); len(args) == 2 {
		var err error
		if w, err = strconv.Atoi(args[0]); err != nil {
			log.Fatal().Err(err).Str("arg", args[0]).Msg("width must be an integer")
		}
		if h, err = strconv.Atoi(args[1]); err != nil {
			log.Fatal().Err(err).Str("arg", args[1]).Msg("height must be an integer")
		}
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	gen := dungeon.NewSeeded(*seed)
	gen.Attempts = *attempts
	log.Debug().Int64("seed", *seed).Int("width", w).Int("height", h).Msg("generating")

	if *watch {
		err := view.Run(func() (*grid.Grid, *grid.Grid) {
			carved, pruned, _ := generate(log, gen, w, h)
			return carved, pruned
		})
		if err != nil {
			log.Fatal().Err(err).Msg("interactive view failed")
		}
		return
	}

	carved, pruned, rooms := generate(log, gen, w, h)
	if !*final {
		if err := render.Write(os.Stdout, carved, !*noColor); err != nil {
			log.Fatal().Err(err).Msg("render failed")
		}
		fmt.Println()
	}
	if err := render.Write(os.Stdout, pruned, !*noColor); err != nil {
		log.Fatal().Err(err).Msg("render failed")
	}
	log.Debug().Int("rooms", len(rooms)).Msg("done")
}

// generate runs the four stages, snapshotting the grid between connection
// and pruning so both render points survive.
func generate(log zerolog.Logger, gen *dungeon.Generator, w, h int) (carved, pruned *grid.Grid, rooms []dungeon.Room) {
	g := grid.New(w, h)

	start := time.Now()
	rooms = gen.PlaceRooms(g)
	gen.Carve(g)
	gen.Connect(g, rooms)
	carved = g.Clone()
	dungeon.Prune(g)

	log.Debug().
		Dur("elapsed", time.Since(start)).
		Int("rooms", len(rooms)).
		Msg("generated")
	return carved, g, rooms
}

func envInt(name string, def int) int {
	if s := os.Getenv(name); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
	}
	return def
}

func envInt64(name string, def int64) int64 {
	if s := os.Getenv(name); s != "" {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n
		}
	}
	return def
}
