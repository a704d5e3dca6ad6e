package config

import (
	"os"

	"github.com/memmaker/voxlight/engine/util"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the config file when no path is given on the command line.
const EnvConfigPath = "VOXLIGHT_CONFIG"

type Config struct {
	World        WorldConfig         `yaml:"world"`
	Lights       []LightConfig       `yaml:"lights"`
	Mesh         MeshConfig          `yaml:"mesh"`
	Log          LogConfig           `yaml:"log"`
	Export       ExportConfig        `yaml:"export"`
	Construction *ConstructionConfig `yaml:"construction"`
}

// WorldConfig sizes the world in chunks and shapes the generated terrain.
type WorldConfig struct {
	ChunksX    int32   `yaml:"chunks_x"`
	ChunksY    int32   `yaml:"chunks_y"`
	ChunksZ    int32   `yaml:"chunks_z"`
	Seed       int64   `yaml:"seed"`
	BaseHeight int32   `yaml:"base_height"`
	Amplitude  float64 `yaml:"amplitude"`
}

// LightConfig is a free standing point light in world coordinates.
type LightConfig struct {
	X int32 `yaml:"x"`
	Y int32 `yaml:"y"`
	Z int32 `yaml:"z"`
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

type MeshConfig struct {
	Capacity int `yaml:"capacity"`
}

type LogConfig struct {
	Level      string   `yaml:"level"`
	Categories []string `yaml:"categories"`
}

type ExportConfig struct {
	GLTF string `yaml:"gltf"`
}

type ConstructionConfig struct {
	File    string `yaml:"file"`
	OffsetX int32  `yaml:"offset_x"`
	OffsetY int32  `yaml:"offset_y"`
	OffsetZ int32  `yaml:"offset_z"`
}

func Default() *Config {
	return &Config{
		World: WorldConfig{
			ChunksX:    4,
			ChunksY:    2,
			ChunksZ:    4,
			Seed:       32,
			BaseHeight: 10,
			Amplitude:  4,
		},
		Lights: []LightConfig{
			{X: 32, Y: 20, Z: 32, R: 15, G: 12, B: 8},
		},
		Mesh: MeshConfig{Capacity: 4096},
		Log: LogConfig{
			Level:      "info",
			Categories: []string{"voxel", "light", "mesh", "io", "system"},
		},
	}
}

// Load reads a YAML file on top of the defaults. An empty path falls back to
// $VOXLIGHT_CONFIG; without either the defaults are returned.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not read config")
	}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "could not parse config %s", path)
	}
	if err = cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.World.ChunksX <= 0 || c.World.ChunksY <= 0 || c.World.ChunksZ <= 0 {
		return errors.Errorf("world needs at least one chunk per axis, got %dx%dx%d", c.World.ChunksX, c.World.ChunksY, c.World.ChunksZ)
	}
	if c.World.Amplitude < 0 {
		return errors.Errorf("negative terrain amplitude %v", c.World.Amplitude)
	}
	for i, light := range c.Lights {
		if light.R > 15 || light.G > 15 || light.B > 15 {
			return errors.Errorf("light %d: channel levels must be within 0..15", i)
		}
	}
	if c.Mesh.Capacity < 0 {
		return errors.Errorf("negative mesh capacity %d", c.Mesh.Capacity)
	}
	if _, ok := util.ParseLogLevel(c.Log.Level); !ok {
		return errors.Errorf("unknown log level '%s'", c.Log.Level)
	}
	if _, err := util.ParseLogCategories(c.Log.Categories); err != nil {
		return err
	}
	if c.Construction != nil && c.Construction.File == "" {
		return errors.New("construction needs a file")
	}
	return nil
}

// ApplyLogging configures the global logger from the log section.
func (c *Config) ApplyLogging() {
	if level, ok := util.ParseLogLevel(c.Log.Level); ok {
		util.SetLogLevel(level)
	}
	if categories, err := util.ParseLogCategories(c.Log.Categories); err == nil {
		util.SetLogCategories(categories)
	}
}
