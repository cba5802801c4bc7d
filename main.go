package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/llr/internal/llr/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := llr(); err != nil {
		logrus.Fatal(err)
	}
}

func llr() error {
	root := cmd.Root()
	root.SetArgs(cmd.ExpandShorthands(os.Args[1:]))
	return root.Execute()
}
