package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"csc/state"
)

func main() {
	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	err := newApp().Run(ctx, os.Args)
	stop()

	if err == nil {
		return
	}
	// log may be absent when command line could not be parsed, or already
	// closed by destroyAppContext
	if !errWasLogged {
		fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
	}
	os.Exit(1)
}
