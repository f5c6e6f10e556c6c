package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/cbodonnell/hangman/pkg/client"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s <host> <port>\n", os.Args[0])
		os.Exit(2)
	}
	host := os.Args[1]
	port, err := strconv.Atoi(os.Args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid port %q: %v\n", os.Args[2], err)
		os.Exit(2)
	}

	// Gracefully handle Ctrl+C to stop the program
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	c := client.NewTCPClient(client.NewTCPClientOptions{
		ServerAddr: net.JoinHostPort(host, strconv.Itoa(port)),
		In:         os.Stdin,
		Out:        os.Stdout,
	})
	if err := c.Start(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
