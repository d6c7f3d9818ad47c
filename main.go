package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	c "github.com/aarrwnh/arraylist/console"
)

var (
	configFile string
	cfg        = c.DefaultConfig()
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "arraylist",
		Short:        "edit and sort a list of strings",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         run,
	}

	flags := rootCmd.Flags()
	flags.StringVar(&configFile, "config", "", "config file path (yaml)")
	flags.StringVarP(&cfg.Path, "path", "p", c.DefaultPath, "directory with list-*.json/yaml files")
	flags.StringVarP(&cfg.SavePath, "out", "o", "", "file written by :save")
	flags.BoolVar(&cfg.Websocket, "ws", false, "use websockets")
	flags.StringVarP(&cfg.Address, "address", "a", c.DefaultAddress, "address to use")
	flags.StringVar(&cfg.CertPath, "cert", "", "path to SSL/TLS certificate file")
	flags.StringVar(&cfg.KeyPath, "key", "", "path to SSL/TLS private key file")
	flags.BoolVar(&cfg.TUI, "tui", false, "full-screen terminal UI")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if configFile != "" {
		fileCfg, err := c.LoadConfig(configFile)
		if err != nil {
			return err
		}
		// flags given on the command line win over the file
		cmd.Flags().Visit(func(f *pflag.Flag) {
			override(fileCfg, f.Name)
		})
		cfg = fileCfg
	}

	values, count, err := c.LoadFiles(cfg.Path)
	if err != nil {
		return err
	}
	log.Printf("\033[30mloaded %d items from %d files\033[0m", len(values), count)

	ctx, cancelCause := context.WithCancelCause(context.Background())
	cancel := func() { cancelCause(nil) }
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(interrupt)

	app := c.NewApp(values, cfg.SavePath, cancel)

	if cfg.Websocket {
		go func() {
			if err := c.StartWebsocket(ctx, app, cfg); err != nil {
				cancelCause(fmt.Errorf("websocket: %w", err))
			}
		}()
	}

	if cfg.TUI {
		return c.RunTUI(ctx, app)
	}

	go app.Start(ctx, os.Stdin, os.Stdout)

	select {
	case <-ctx.Done():
		if err := context.Cause(ctx); !errors.Is(err, context.Canceled) {
			return err
		}
		log.Println("Exiting program")
	case sig := <-interrupt:
		log.Printf("Caught signal: %v\n", sig)
	}

	time.Sleep(time.Millisecond * 100)
	return nil
}

func override(dst *c.Config, name string) {
	switch name {
	case "path":
		dst.Path = cfg.Path
	case "out":
		dst.SavePath = cfg.SavePath
	case "ws":
		dst.Websocket = cfg.Websocket
	case "address":
		dst.Address = cfg.Address
	case "cert":
		dst.CertPath = cfg.CertPath
	case "key":
		dst.KeyPath = cfg.KeyPath
	case "tui":
		dst.TUI = cfg.TUI
	}
}
