package main

import (
	"github.com/TriM-Organization/bedrock-shape/library"
	"github.com/pterm/pterm"
)

// RecordShapes appends each shape as the latest revision in db.
// A shape that could not be recorded is only warned.
func RecordShapes(db library.LibraryDatabase, shapes []NamedShape, unixTime int64) {
	for _, value := range shapes {
		if err := db.Store(value.Name, value.Shape, unixTime); err != nil {
			pterm.Warning.Printf("RecordShapes: %v\n", err)
			continue
		}
		pterm.Info.Printf("Shape %s is recorded\n", value.Name)
	}

	count, err := db.ShapeCount()
	if err != nil {
		pterm.Warning.Printf("RecordShapes: %v\n", err)
		return
	}
	pterm.Info.Printf("Library holds %d shapes\n", count)
}
