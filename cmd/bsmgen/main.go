// bsmgen prints synthetic baggage source messages to stdout.
//
//	bsmgen --count 5 --airport MCO --profiles profiles.yaml
package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/spf13/pflag"

	"bsm-service/internal/usecase"
	"bsm-service/pkg/bsm"
	"bsm-service/pkg/logger"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	var (
		count    int
		airport  string
		profiles string
		seed     uint64
	)

	flagSet := pflag.NewFlagSet("bsmgen", pflag.ContinueOnError)
	flagSet.SetOutput(stdout)
	flagSet.IntVarP(&count, "count", "n", 1, "number of messages to generate")
	flagSet.StringVar(&airport, "airport", "", "airport code for the .V element (default MCO)")
	flagSet.StringVar(&profiles, "profiles", "", "YAML file with airlines, destinations and airport")
	flagSet.Uint64Var(&seed, "seed", 0, "seed for destinations and classes of travel (0 picks a random seed)")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	if count < 0 {
		return fmt.Errorf("--count must not be negative, got %d", count)
	}

	loader := usecase.NewProfileLoader(nil, nil, profiles, airport, logger.NewNopLogger())
	settings, err := loader.Load(context.Background())
	if err != nil {
		return err
	}

	opts := settings.Options()
	if seed != 0 {
		opts = append(opts, bsm.WithRand(rand.New(rand.NewPCG(seed, seed))))
	}
	generator := bsm.NewGenerator(opts...)

	for range count {
		if _, err := io.WriteString(stdout, generator.Generate().Encode()); err != nil {
			return err
		}
	}
	return nil
}
