package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/soup/reports"
	"github.com/reusee/soup/soupconfigs"
	"github.com/reusee/soup/soups"
)

type Module struct {
	dscope.Module
	Soups   soups.Module
	Configs soupconfigs.Module
	Reports reports.Module
}
