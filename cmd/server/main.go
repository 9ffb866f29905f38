package main

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lemon-mint/lispy"
	"github.com/lemon-mint/lispy/fhash"
	"github.com/lemon-mint/lispy/slowtable"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		listen          string
		bits            uint8
		maxConns        int32
		timeout         time.Duration
		statsInterval   time.Duration
		fingerprintOnly bool
		debug           bool
	)

	flagSet := pflag.NewFlagSet("lispy-server", pflag.ContinueOnError)
	flagSet.StringVarP(&listen, "listen", "l", ":5555", "address to listen on")
	flagSet.Uint8VarP(&bits, "bits", "b", 16, "table holds 2^bits buckets")
	flagSet.Int32Var(&maxConns, "max-conns", lispy.DefaultMaxConns, "maximum concurrent connections")
	flagSet.DurationVar(&timeout, "timeout", lispy.DefaultConnTimeout, "idle connection timeout")
	flagSet.DurationVar(&statsInterval, "stats", lispy.DefaultStatsInterval, "stats report interval (0 disables)")
	flagSet.BoolVar(&fingerprintOnly, "fingerprint-only", false, "match lookups on the fingerprint alone")
	flagSet.BoolVar(&debug, "debug", false, "enable debug logging")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	var logger *zap.Logger
	var err error
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer logger.Sync()

	var opts []slowtable.Option
	if fingerprintOnly {
		opts = append(opts, slowtable.WithFingerprintLookup())
	}
	table, err := slowtable.NewTable(fhash.New(nil), bits, opts...)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", listen)
	if err != nil {
		return err
	}

	server := lispy.NewServer(table, maxConns)
	server.Ln = ln
	server.Logger = logger
	server.ConnTimeout = timeout
	server.StatsInterval = statsInterval

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-sig
		logger.Info("shutting down", zap.Stringer("signal", s))
		if err := server.Close(); err != nil {
			logger.Warn("close", zap.Error(err))
		}
	}()

	return server.Serve()
}
