package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/memmaker/voxlight/config"
	"github.com/memmaker/voxlight/engine/export"
	"github.com/memmaker/voxlight/engine/light"
	"github.com/memmaker/voxlight/engine/mesh"
	"github.com/memmaker/voxlight/engine/util"
	"github.com/memmaker/voxlight/engine/voxel"
	"github.com/pkg/errors"
)

func main() {
	configPath := flag.String("config", "", "YAML config file, defaults to $"+config.EnvConfigPath)
	verify := flag.Bool("verify", false, "compare the colour channels against a reference flood fill")
	gltfPath := flag.String("gltf", "", "write the chunk meshes to a .gltf or .glb file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		util.LogSystemError(err.Error())
		os.Exit(1)
	}
	if *gltfPath != "" {
		cfg.Export.GLTF = *gltfPath
	}
	cfg.ApplyLogging()

	result, err := run(cfg, *verify)
	if err != nil {
		util.LogSystemError(err.Error())
		os.Exit(1)
	}
	util.LogSystemInfo(result.timer.String())
	if result.mismatches > 0 {
		os.Exit(2)
	}
}

type benchResult struct {
	timer      *util.Timer
	meshes     []mesh.ChunkMesh
	faces      int
	mismatches int
}

func run(cfg *config.Config, verify bool) (*benchResult, error) {
	timer := util.NewTimer()
	blocks := voxel.NewDefaultBlockRegistry()
	world := voxel.NewMap(cfg.World.ChunksX, cfg.World.ChunksY, cfg.World.ChunksZ)
	generator := voxel.NewGenerator(cfg.World.Seed, cfg.World.BaseHeight, cfg.World.Amplitude)
	timer.Measure("generate", func() { generator.Fill(world) })

	if cfg.Construction != nil {
		construction, err := voxel.LoadConstructionFile(cfg.Construction.File)
		if err != nil {
			return nil, errors.Wrap(err, "could not load construction")
		}
		offset := voxel.Int3{X: cfg.Construction.OffsetX, Y: cfg.Construction.OffsetY, Z: cfg.Construction.OffsetZ}
		world.Paste(construction, offset, blocks)
	}

	lighting := light.NewLighting(blocks)
	for _, l := range cfg.Lights {
		lighting.AddSource(world, l.X, l.Y, l.Z, [3]uint8{l.R, l.G, l.B})
	}
	timer.Measure("light", func() { lighting.OnWorldLoaded(world) })

	// dig out the surface voxel in the middle of the world and put a lamp in its place
	x := cfg.World.ChunksX * voxel.CHUNK_SIZE / 2
	z := cfg.World.ChunksZ * voxel.CHUNK_SIZE / 2
	surface, found := world.SurfaceAt(x, z)
	timer.Measure("edit", func() {
		if !found {
			util.LogVoxelWarning(fmt.Sprintf("[Bench] no surface at %d,%d", x, z))
			return
		}
		lighting.SetBlock(world, surface.X, surface.Y, surface.Z, voxel.EMPTY)
		lighting.SetBlock(world, surface.X, surface.Y, surface.Z, voxel.RedLampID)
	})

	renderer := mesh.NewVoxelRenderer(cfg.Mesh.Capacity)
	renderer.UseBlockTextures(blocks)
	var meshes []mesh.ChunkMesh
	timer.Measure("render", func() { meshes = renderer.RenderModified(world) })

	result := &benchResult{timer: timer, meshes: meshes}
	for _, cm := range meshes {
		result.faces += cm.Mesh.TriangleCount() / 2
	}
	util.LogSystemInfo(fmt.Sprintf("[Bench] %d chunks, %d meshes, %d faces", world.ChunkCount(), len(meshes), result.faces))

	if verify {
		result.mismatches = verifyColors(world, blocks, cfg.Lights)
	}

	if cfg.Export.GLTF != "" {
		if err := export.WriteGLTF(cfg.Export.GLTF, meshes); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func verifyColors(world *voxel.Map, blocks *voxel.BlockRegistry, lights []config.LightConfig) int {
	min, max, ok := world.Bounds()
	if !ok {
		return 0
	}
	total := 0
	for channel := voxel.ChannelR; channel < voxel.ChannelS; channel++ {
		sources := light.EmitterSources(world, blocks, channel)
		for _, l := range lights {
			level := [3]uint8{l.R, l.G, l.B}[channel]
			sources = append(sources, light.Source{Pos: voxel.Int3{X: l.X, Y: l.Y, Z: l.Z}, Level: level})
		}
		mismatches := light.Verify(world, channel, sources, min, max)
		for i, m := range mismatches {
			if i == 5 {
				util.LogLightError(fmt.Sprintf("[Verify] ... %d more", len(mismatches)-i))
				break
			}
			util.LogLightError(fmt.Sprintf("[Verify] channel %d: %s", channel, m))
		}
		total += len(mismatches)
	}
	if total == 0 {
		util.LogLightInfo("[Verify] colour channels match the reference flood fill")
	}
	return total
}
