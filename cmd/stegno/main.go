package main

import (
	"os"
	"os/signal"
	"stegno/internal/cli"
	"syscall"
)

func main() {
	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM) // subscribe to system signals
	go func() {
		<-c
		cli.StopProfilers()
		os.Exit(1)
	}()

	err := cli.RootCommand().Execute()
	cli.StopProfilers()
	if err != nil {
		os.Exit(1)
	}
}
