package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/lemon-mint/lispy/client"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		addr      string
		timeout   time.Duration
		copyValue bool
	)

	flagSet := pflag.NewFlagSet("lispy-client", pflag.ContinueOnError)
	flagSet.StringVarP(&addr, "addr", "a", "127.0.0.1:5555", "server address")
	flagSet.DurationVar(&timeout, "timeout", 5*time.Second, "dial and request timeout")
	flagSet.BoolVarP(&copyValue, "copy", "c", false, "ask the server to keep a private copy of the value")
	flagSet.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: lispy-client [flags] ping | size | get KEY | put KEY VALUE | del KEY\n\n")
		flagSet.PrintDefaults()
	}
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	args := flagSet.Args()
	if len(args) == 0 {
		flagSet.Usage()
		return errors.New("missing command")
	}

	c, err := client.Dial(addr, timeout)
	if err != nil {
		return err
	}
	defer c.Close()

	switch cmd, args := args[0], args[1:]; {
	case cmd == "ping" && len(args) == 0:
		if err := c.Ping(); err != nil {
			return err
		}
		fmt.Println("pong")
	case cmd == "size" && len(args) == 0:
		size, err := c.Size()
		if err != nil {
			return err
		}
		fmt.Println(size)
	case cmd == "get" && len(args) == 1:
		v, err := c.Get([]byte(args[0]))
		if err != nil {
			return err
		}
		fmt.Println(string(v))
	case cmd == "put" && len(args) == 2:
		return c.Put([]byte(args[0]), []byte(args[1]), copyValue)
	case cmd == "del" && len(args) == 1:
		return c.Delete([]byte(args[0]))
	default:
		flagSet.Usage()
		return fmt.Errorf("bad command %q", cmd)
	}
	return nil
}
