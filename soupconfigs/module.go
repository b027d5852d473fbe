package soupconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/soup/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
