package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/micro8/micro8/internal/micro8"
	"github.com/micro8/micro8/internal/monitor"
	"github.com/micro8/micro8/internal/ports"
	"github.com/micro8/micro8/pkg/debug/web"
	"github.com/micro8/micro8/pkg/log"
	"github.com/micro8/micro8/pkg/utils"
)

var logger = log.New()

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "run":
		err = runCmd(args)
	case "debug":
		err = debugCmd(args)
	case "serve":
		err = serveCmd(args)
	case "help", "-h", "--help":
		usage()
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

// config carries the flags shared by every subcommand. Addresses are
// hex strings so leading zeros don't get read as octal.
type config struct {
	boot, sp, guard, sym, pprof string
	debug                       bool
	image                       string
}

func commonFlags(fs *flag.FlagSet) *config {
	c := &config{}
	fs.StringVar(&c.boot, "boot", "", "boot address in hex (default 0200)")
	fs.StringVar(&c.sp, "sp", "", "initial stack pointer in hex (default 01FE)")
	fs.StringVar(&c.guard, "guard", "", "stack guard range in hex as low:high")
	fs.StringVar(&c.sym, "sym", "", "symbol file to load")
	fs.StringVar(&c.pprof, "pprof", "", "pprof listen address, e.g. localhost:6060")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging")
	return c
}

func runCmd(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	c := commonFlags(fs)
	maxCycles := fs.Uint64("max-cycles", 0, "stop after this many cycles, 0 for no limit")
	fs.Parse(args)
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: micro8 run [flags] <image>")
	}
	c.image = fs.Arg(0)
	startPprof(c.pprof)

	m, err := buildMachine(c)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cycles, err := m.Run(ctx, *maxCycles)
	if err != nil {
		return err
	}

	s := m.Snapshot()
	if s.Halted {
		logger.Infof("halted after %d instructions, %d cycles", s.Instructions, cycles)
	} else {
		logger.Infof("stopped after %d instructions, %d cycles", s.Instructions, cycles)
	}
	return nil
}

func debugCmd(args []string) error {
	fs := flag.NewFlagSet("debug", flag.ExitOnError)
	c := commonFlags(fs)
	fs.Parse(args)
	if fs.NArg() > 1 {
		return fmt.Errorf("usage: micro8 debug [flags] [image]")
	}
	if fs.NArg() == 1 {
		c.image = fs.Arg(0)
	}
	startPprof(c.pprof)

	m, err := buildMachine(c)
	if err != nil {
		return err
	}
	return monitor.New(m, os.Stdin, os.Stdout).Run()
}

func serveCmd(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	c := commonFlags(fs)
	addr := fs.String("addr", "localhost:8090", "debug server listen address")
	fs.Parse(args)
	if fs.NArg() > 1 {
		return fmt.Errorf("usage: micro8 serve [flags] [image]")
	}
	if fs.NArg() == 1 {
		c.image = fs.Arg(0)
	}
	startPprof(c.pprof)

	m, err := buildMachine(c)
	if err != nil {
		return err
	}
	return web.Serve(m, *addr, logger)
}

func buildMachine(c *config) (*micro8.Machine, error) {
	// Programs get a latch bank so OUT values can be read back with IN,
	// matching the reference machine.
	opts := []micro8.Opt{micro8.WithPorts(ports.NewLatch())}
	if c.debug {
		opts = append(opts, micro8.Debug())
	}
	if c.boot != "" {
		address, err := parseAddress(c.boot)
		if err != nil {
			return nil, fmt.Errorf("boot: %w", err)
		}
		opts = append(opts, micro8.WithBootAddress(address))
	}
	if c.sp != "" {
		address, err := parseAddress(c.sp)
		if err != nil {
			return nil, fmt.Errorf("sp: %w", err)
		}
		opts = append(opts, micro8.WithStackPointer(address))
	}
	if c.guard != "" {
		low, high, err := parseGuard(c.guard)
		if err != nil {
			return nil, err
		}
		opts = append(opts, micro8.WithStackGuard(low, high))
	}
	if c.sym != "" {
		symbols, err := utils.LoadSymbols(c.sym)
		if err != nil {
			return nil, err
		}
		opts = append(opts, micro8.WithSymbols(symbols))
	}

	m := micro8.New(opts...)

	if c.image != "" {
		data, err := utils.LoadFile(c.image)
		if err != nil {
			return nil, err
		}
		if err := m.LoadImage(data); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func parseAddress(s string) (uint16, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 16)
	if err != nil {
		return 0, fmt.Errorf("bad address %q", s)
	}
	return uint16(v), nil
}

func parseGuard(s string) (uint16, uint16, error) {
	lowPart, highPart, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("bad guard range %q, want low:high", s)
	}
	low, err := parseAddress(lowPart)
	if err != nil {
		return 0, 0, err
	}
	high, err := parseAddress(highPart)
	if err != nil {
		return 0, 0, err
	}
	if low > high {
		return 0, 0, fmt.Errorf("bad guard range %q, low above high", s)
	}
	return low, high, nil
}

func startPprof(addr string) {
	if addr == "" {
		return
	}
	go func() {
		if err := http.ListenAndServe(addr, nil); err != nil {
			logger.Errorf("pprof: %v", err)
		}
	}()
}

func usage() {
	fmt.Fprint(os.Stderr, `usage: micro8 <command> [flags] [image]

commands:
  run      load an image and run it to completion
  debug    interactive monitor on the terminal
  serve    websocket debug server

common flags:
  -boot <hex>       address images load at and execution starts from (default 0200)
  -sp <hex>         initial stack pointer (default 01FE)
  -guard low:high   fault stack operations outside this hex range
  -sym <file>       load a symbol file
  -debug            enable debug logging
  -pprof <addr>     serve pprof on addr

run flags:
  -max-cycles <n>   stop after n cycles, 0 for no limit

serve flags:
  -addr <addr>      listen address (default localhost:8090)

images may be raw binaries or gz, xz, zip or 7z archives.
`)
}
