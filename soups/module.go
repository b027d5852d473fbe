package soups

import (
	"time"

	"github.com/reusee/dscope"
	"github.com/reusee/soup/logs"
	"github.com/reusee/soup/randoms"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

type NewSoup func(observer Observer) (*Soup, error)

func (Module) NewSoup(
	config Config,
	logger logs.Logger,
) NewSoup {
	return func(observer Observer) (*Soup, error) {
		config := config
		if config.Seed == 0 {
			config.Seed = uint64(time.Now().UnixNano())
			logger.Info("time derived seed", "seed", config.Seed)
		}
		return NewFromStream(config, randoms.NewStream(config.Seed), observer, logger)
	}
}
