// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// farresource dispatches a single operation to a far resource and prints the result.
//
//	farresource [flags] <url> [verb] [name] [payload]
//
// The verb defaults to GET.  An empty name addresses the resource itself.  With the json or
// msgpack codecs, the payload is parsed as JSON before being serialized.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"
	"github.com/xmidt-org/farresource/client"
	"github.com/xmidt-org/farresource/config"
	"github.com/xmidt-org/farresource/resource"
	"go.uber.org/zap"
)

const (
	exitSuccess = 0
	exitFailure = 1
	exitGone    = 2
)

func newFlagSet(output io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet(config.ApplicationName, pflag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringP(config.FileFlag, "f", "", "the configuration file to use instead of searching for one")
	fs.String("codec", "", "the payload codec: text, json, or msgpack")
	fs.String("mode", "", "the credential mode: uniform, anonymous, or credentialed")
	fs.Duration("timeout", 0, "the HTTP client timeout")
	fs.String("log-level", "", "the log level")
	fs.Duration("wait", 0, "how long to wait for the dispatch to complete")
	fs.Usage = func() {
		fmt.Fprintf(output, "Usage: %s [flags] <url> [verb] [name] [payload]\n", config.ApplicationName)
		fs.PrintDefaults()
	}

	return fs
}

// operation is the dispatch described by the positional arguments.
type operation struct {
	url     string
	verb    string
	name    interface{}
	payload interface{}
}

func parseOperation(args []string, codec string) (operation, error) {
	if len(args) < 1 || len(args) > 4 {
		return operation{}, errors.New("expected <url> [verb] [name] [payload]")
	}

	op := operation{
		url:  args[0],
		verb: http.MethodGet,
	}

	if len(args) > 1 && len(args[1]) > 0 {
		op.verb = strings.ToUpper(args[1])
	}

	if len(args) > 2 && len(args[2]) > 0 {
		op.name = args[2]
	}

	if len(args) > 3 {
		op.payload = args[3]
		if !strings.EqualFold(codec, resource.TextCodecName) && len(codec) > 0 {
			v, err := resource.JSONCodec().Unserialize([]byte(args[3]))
			if err != nil {
				return operation{}, fmt.Errorf("Unable to parse payload as JSON: %w", err)
			}

			op.payload = v
		}
	}

	return op, nil
}

// format renders a dispatch result for output.  Text results are printed as is.
func format(value interface{}) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	}

	b, err := resource.JSONCodec().Serialize(value)
	return string(b), err
}

func farresource(arguments []string, stdout, stderr io.Writer) int {
	fs := newFlagSet(stderr)
	if err := fs.Parse(arguments); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitSuccess
		}

		return exitFailure
	}

	v, err := config.New(config.StdOptions(config.ApplicationName, fs))
	if err == nil {
		err = config.ReadInConfig(v)
	}

	if err != nil {
		fmt.Fprintf(stderr, "Unable to read configuration: %s\n", err)
		return exitFailure
	}

	c, err := config.Load(v)
	if err != nil {
		fmt.Fprintf(stderr, "Unable to load configuration: %s\n", err)
		return exitFailure
	}

	logger, err := c.Log.NewLogger()
	if err != nil {
		fmt.Fprintf(stderr, "Unable to create logger: %s\n", err)
		return exitFailure
	}

	defer logger.Sync()

	op, err := parseOperation(fs.Args(), c.Resource.Codec)
	if err != nil {
		fmt.Fprintln(stderr, err)
		fs.Usage()
		return exitFailure
	}

	registry := prometheus.NewRegistry()
	om, err := client.NewOutboundMeasures(registry)
	if err != nil {
		logger.Error("unable to create outbound measures", zap.Error(err))
		return exitFailure
	}

	measures, err := resource.NewMeasures(registry)
	if err != nil {
		logger.Error("unable to create resource measures", zap.Error(err))
		return exitFailure
	}

	maker, err := c.Resource.NewMaker(om, resource.WithLogger(logger), resource.WithMeasures(measures))
	if err != nil {
		logger.Error("unable to create resource maker", zap.Error(err))
		return exitFailure
	}

	ctx, cancel := context.WithCancel(context.Background())
	if c.Wait > 0 {
		ctx, cancel = context.WithTimeout(context.Background(), c.Wait)
	}

	defer cancel()

	ref := maker.Make(op.url)
	value, err := ref.Dispatch(ctx, op.verb, op.name, op.payload).Await(ctx)
	switch {
	case errors.Is(err, resource.ErrGone):
		fmt.Fprintln(stderr, err)
		return exitGone

	case err != nil:
		fmt.Fprintln(stderr, err)
		return exitFailure
	}

	output, err := format(value)
	if err != nil {
		fmt.Fprintf(stderr, "Unable to format result: %s\n", err)
		return exitFailure
	}

	fmt.Fprintln(stdout, output)
	return exitSuccess
}

func main() {
	os.Exit(farresource(os.Args[1:], os.Stdout, os.Stderr))
}
