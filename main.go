package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/rhartert/dpll/internal/dimacs"
	"github.com/rhartert/dpll/internal/sat"
)

type config struct {
	instanceFile string
	gzipped      bool
	staticOrder  bool
	verbose      bool
	memProfile   bool
	cpuProfile   bool
	timeLimit    time.Duration
}

func parseConfig(c *cli.Context) (*config, error) {
	if c.NArg() == 0 || c.Args().First() == "" {
		return nil, fmt.Errorf("missing instance file")
	}
	file := c.Args().First()
	return &config{
		instanceFile: file,
		gzipped:      strings.HasSuffix(file, ".gz"),
		staticOrder:  c.Bool("static-order"),
		verbose:      c.BoolT("verbosity"),
		memProfile:   c.Bool("memprof"),
		cpuProfile:   c.Bool("cpuprof"),
		timeLimit:    time.Duration(c.Int("cpu-time-limit")) * time.Second,
	}, nil
}

func solverOptions(cfg *config) sat.Options {
	options := sat.DefaultOptions
	options.StaticOrder = cfg.staticOrder
	return options
}

// setTimeLimit prints an indeterminate verdict and exits once the limit
// expires. The search has no suspension points, so the limit is enforced
// from the outside.
func setTimeLimit(log *logrus.Logger, limit time.Duration) {
	if limit <= 0 {
		return
	}
	go func() {
		<-time.After(limit)
		log.Debugf("time limit of %s exceeded", limit)
		fmt.Println("c time limit exceeded")
		fmt.Println("INDETERMINATE")
		os.Exit(0)
	}()
}

// setInterrupt makes SIGINT and SIGTERM print an indeterminate verdict
// instead of killing the process mid-line.
func setInterrupt() {
	ch := make(chan os.Signal, 2)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ch
		fmt.Println("c interrupted")
		fmt.Println("INDETERMINATE")
		os.Exit(0)
	}()
}

func run(cfg *config, log *logrus.Logger) error {
	instance, err := dimacs.ParseDIMACS(cfg.instanceFile, cfg.gzipped)
	if err != nil {
		return fmt.Errorf("could not parse instance: %s", err)
	}
	log.WithFields(logrus.Fields{
		"file":      cfg.instanceFile,
		"variables": instance.Variables,
		"clauses":   len(instance.Clauses),
	}).Debug("parsed instance")

	s, err := dimacs.Instantiate(instance, solverOptions(cfg))
	if err != nil {
		return fmt.Errorf("could not build solver: %s", err)
	}

	if cfg.verbose {
		fmt.Printf("c variables:  %d\n", instance.Variables)
		fmt.Printf("c clauses:    %d\n", len(instance.Clauses))
	}

	setTimeLimit(log, cfg.timeLimit)
	setInterrupt()

	t := time.Now()
	satisfiable := s.Solve()
	elapsed := time.Since(t)

	if cfg.verbose {
		fmt.Printf("c time (sec):   %f\n", elapsed.Seconds())
		fmt.Printf("c decisions:    %d\n", s.TotalDecisions)
		fmt.Printf("c propagations: %d (%.2f /sec)\n", s.TotalPropagations, float64(s.TotalPropagations)/elapsed.Seconds())
		fmt.Printf("c conflicts:    %d\n", s.TotalConflicts)
	}

	return dimacs.WriteSolution(os.Stdout, satisfiable, s)
}

func newApp(log *logrus.Logger) *cli.App {
	app := cli.NewApp()
	app.Name = "dpll"
	app.Usage = "decide the satisfiability of a DIMACS CNF instance"
	app.ArgsUsage = "instance.cnf[.gz]"
	app.Flags = []cli.Flag{
		cli.BoolTFlag{
			Name:  "verbosity, verb",
			Usage: "print instance and search statistics as \"c\" comment lines",
		},
		cli.BoolFlag{
			Name:  "debug, d",
			Usage: "log debug information to stderr",
		},
		cli.BoolFlag{
			Name:  "static-order",
			Usage: "branch on static occurrence counts instead of rescoring unresolved clauses",
		},
		cli.IntFlag{
			Name:  "cpu-time-limit",
			Usage: "give up after this many seconds (0 = no limit)",
		},
		cli.BoolFlag{
			Name:  "cpuprof",
			Usage: "save pprof CPU profile in cpuprof",
		},
		cli.BoolFlag{
			Name:  "memprof",
			Usage: "save pprof memory profile in memprof",
		},
	}
	app.Action = func(c *cli.Context) error {
		if c.Bool("debug") {
			log.SetLevel(logrus.DebugLevel)
		}

		cfg, err := parseConfig(c)
		if err != nil {
			cli.ShowAppHelp(c)
			return err
		}

		if cfg.cpuProfile {
			f, err := os.Create("cpuprof")
			if err != nil {
				return err
			}
			pprof.StartCPUProfile(f)
			defer pprof.StopCPUProfile()
		}

		if err := run(cfg, log); err != nil {
			return err
		}

		if cfg.memProfile {
			f, err := os.Create("memprof")
			if err != nil {
				return err
			}
			pprof.WriteHeapProfile(f)
			f.Close()
		}
		return nil
	}
	return app
}

func main() {
	log := logrus.New()

	if err := newApp(log).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
