package soupconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/soup/configs"
	"github.com/reusee/soup/logs"
	"github.com/reusee/soup/modes"
)

//go:embed schema.cue
var schema string

func (Module) ConfigsLoader(
	logger logs.Logger,
	mode modes.Mode,
) configs.Loader {

	var paths []string
	defer func() {
		if len(paths) > 0 {
			logger.Info("config file",
				"paths", paths,
			)
		}
	}()

	// tests must not pick up files from the host
	if mode == modes.ModeDevelopment {
		return configs.NewLoader(nil, schema)
	}

	filenames := []string{
		"soup.cue",
		".soup.cue",
	}

	var dirs []string
	// working directory
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	// user config dir
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	// system wide dir
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	return configs.NewLoader(paths, schema)
}
