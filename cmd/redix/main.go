// Command redix runs one-off Redis operations through the redix facade.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gookit/goutil/dump"
	"github.com/spf13/cobra"

	"github.com/arklib/redix"
	"github.com/arklib/redix/config"
	"github.com/arklib/redix/logger"
)

var (
	configFile string
	addr       string
	prefix     string
	timeout    time.Duration

	dumper = dump.NewDumper(os.Stdout, 3)
)

var rootCmd = &cobra.Command{
	Use:           "redix",
	Short:         "Redis facade command line",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "config file (json, toml or yaml)")
	flags.StringVar(&addr, "addr", "", "redis address, overrides the config file")
	flags.StringVar(&prefix, "prefix", "", "key prefix, overrides the config file")
	flags.DurationVar(&timeout, "timeout", 5*time.Second, "command timeout")

	rootCmd.AddCommand(pingCmd, getCmd, setCmd, delCmd, publishCmd, subscribeCmd, lockCmd, queueCmd, jobCmd)
}

// connect builds the client from --config, then applies --addr and --prefix.
func connect(ctx context.Context) (*redix.Client, error) {
	opts := &redix.Options{Addrs: []string{redix.DefaultAddr}}
	lc := &logger.Config{}

	if configFile != "" {
		c, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		if opts, err = c.Redis(""); err != nil {
			return nil, err
		}
		if lc, err = c.Logger(""); err != nil {
			return nil, err
		}
	}
	if addr != "" {
		opts.Addrs = []string{addr}
	}
	if prefix != "" {
		opts.KeyPrefix = prefix
	}

	log := logger.New(lc)
	opts.Logger = log
	logger.Install(log)

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return redix.Connect(ctx, opts)
}

// run connects, calls fn and closes the client.
func run(cmd *cobra.Command, fn func(ctx context.Context, client *redix.Client) error) error {
	ctx := cmd.Context()
	client, err := connect(ctx)
	if err != nil {
		return err
	}
	defer client.Close()
	return fn(ctx, client)
}
