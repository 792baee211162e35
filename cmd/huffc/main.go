// Command huffc compresses a file with a static Huffman code and reports
// the size reduction, or serves the same operation over HTTP.
//
// The written artifact holds only the packed bits; it carries no code table
// and cannot be decompressed.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/egonelbre/exp-huffman-compression/config"
	"github.com/egonelbre/exp-huffman-compression/rest"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("huffc: ")

	cfg, err := config.Parse(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatal(err)
	}

	if cfg.Server.Addr != "" {
		if err := serve(cfg); err != nil {
			log.Fatal(err)
		}
		return
	}

	if len(cfg.Args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: huffc [flags] <file>")
		os.Exit(2)
	}

	if err := compressFile(cfg, cfg.Args[0], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func serve(cfg config.Configuration) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           rest.NewHandler(log.Default(), cfg.Server.MaxBodyBytes),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", cfg.Server.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Print("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
