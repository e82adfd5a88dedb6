package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/misterclayt0n/stride/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Println(err)
		stop()
		os.Exit(1)
	}
}
