package main

import (
	"flag"
	"log"
	"time"

	"github.com/TriM-Organization/bedrock-shape/define"
	"github.com/TriM-Organization/bedrock-shape/library"
	"github.com/TriM-Organization/bedrock-shape/plan"
	"github.com/TriM-Organization/bedrock-world-operator/world"
	"github.com/pterm/pterm"
)

var (
	planPath      *string
	worldPath     *string
	libraryPath   *string
	maxConcurrent *int
	noGrowSync    *bool
	noSync        *bool
	verbose       *bool
)

func init() {
	planPath = flag.String("plan", "", "The path of your build plan (YAML).")
	worldPath = flag.String("world", "", "The path of the Minecraft world to put these shapes in.")
	libraryPath = flag.String("library", "", "The path of the shape library to record these shapes in.")

	maxConcurrent = flag.Int("max-concurrent", 16, "How many chunks could be written at the same time (0 means no limit).")

	noGrowSync = flag.Bool("no-grow-sync", false, "Database settings: No grow sync.")
	noSync = flag.Bool("no-sync", false, "Database settings: No Sync.")
	verbose = flag.Bool("verbose", false, "Print the palette of each shape.")
}

func main() {
	startTime := time.Now()

	flag.Parse()
	if len(*planPath) == 0 {
		log.Fatalln("Please provide the path of your build plan.\n\te.g. -plan \"plan.yaml\"")
	}
	if len(*worldPath) == 0 && len(*libraryPath) == 0 {
		log.Fatalln("Please provide the world or the library to output your shapes.\n\te.g. -world \"mcworld\" or -library \"shapes.db\"")
	}

	p, err := plan.Load(*planPath)
	if err != nil {
		log.Fatalln(err)
	}

	if *verbose {
		pterm.EnableDebugMessages()
		define.SetLogger(pterm.DefaultLogger.WithLevel(pterm.LogLevelDebug))
	}

	model := define.NewModel(p.DimensionID())
	shapes, err := BuildShapes(p, model)
	if err != nil {
		log.Fatalln(err)
	}

	if len(*libraryPath) > 0 {
		db, err := library.Open(*libraryPath, library.Options{
			NoGrowSync: *noGrowSync,
			NoSync:     *noSync,
			MaxLimit:   p.MaxLimit,
		})
		if err != nil {
			log.Fatalln(err)
		}
		defer db.CloseLibraryDB()

		RecordShapes(db, shapes, startTime.Unix())
	}

	if len(*worldPath) > 0 {
		w, err := world.Open(*worldPath)
		if err != nil {
			log.Fatalln(err)
		}
		defer w.CloseWorld()

		written, err := WriteModel(w, model, *maxConcurrent)
		if err != nil {
			log.Fatalln(err)
		}
		if written != int64(model.BlockCount()) {
			pterm.Warning.Printf("Only %d of %d blocks were written\n", written, model.BlockCount())
		}
	}

	pterm.Success.Printf("ALL DOWN :) Time used: %v\n", time.Since(startTime))
}
