package main

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/TriM-Organization/bedrock-shape/define"
	"github.com/TriM-Organization/bedrock-world-operator/block"
	"github.com/TriM-Organization/bedrock-world-operator/chunk"
	operator_define "github.com/TriM-Organization/bedrock-world-operator/define"
	"github.com/TriM-Organization/bedrock-world-operator/world"
	"github.com/pterm/pterm"
	"golang.org/x/sync/errgroup"
)

// WriteModel writes all chunks that model touches into w, and
// returns the count of blocks that were written.
// Blocks of chunks that already exist are kept unless model overwrites them.
func WriteModel(w world.World, model *define.Model, maxConcurrent int) (written int64, err error) {
	var counter atomic.Int64

	startTime := time.Now()
	chunks := model.Chunks()
	defer func() {
		fmt.Println("Time used:", time.Since(startTime))
		fmt.Println("Written chunks:", len(chunks), "Written blocks:", counter.Load())
	}()

	group := new(errgroup.Group)
	if maxConcurrent > 0 {
		group.SetLimit(maxConcurrent)
	}

	for _, pos := range chunks {
		group.Go(func() error {
			n, err := SingleChunkRunner(w, model, pos)
			if err != nil {
				return err
			}
			counter.Add(int64(n))
			return nil
		})
	}

	if err = group.Wait(); err != nil {
		return 0, fmt.Errorf("WriteModel: %v", err)
	}
	return counter.Load(), nil
}

// SingleChunkRunner writes the chunk at pos of model into w.
func SingleChunkRunner(w world.World, model *define.Model, pos operator_define.ChunkPos) (written int, err error) {
	dm := model.Dimension()

	c, exists, err := w.LoadChunk(dm, pos)
	if err != nil {
		pterm.Warning.Printf("SingleChunkRunner: Chunk (%d, %d) in dim %d is broken, and a new one is used (%v)\n", pos[0], pos[1], dm, err)
		exists = false
	}

	if !exists {
		c = chunk.NewChunk(block.AirRuntimeID, dm.Range())
	}
	written = model.Overlay(pos, c)
	if chunkMatrix, ok := model.ChunkMatrix(pos); ok {
		pterm.Debug.Printf(
			"Chunk (%d, %d): %d blocks touched, %d written\n",
			pos[0], pos[1], define.ChunkMatrixCount(chunkMatrix), written,
		)
	}

	if err = w.SaveChunk(dm, pos, c); err != nil {
		return 0, fmt.Errorf("SingleChunkRunner: %v", err)
	}
	return written, nil
}
