package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"q.log/tabsimplex/cli"
)

func main() {
	log := logrus.New()
	if err := cli.NewCommand(log).Execute(); err != nil {
		log.WithError(err).Error("tabsimplex failed")
		os.Exit(1)
	}
}
