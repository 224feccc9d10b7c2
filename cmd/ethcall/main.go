package main

/*
* CLI to encode, decode and invoke read-only contract calls
 */

import (
	"context"
	"encoding/hex"
	"fmt"
	"math/big"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/op/go-logging"
	"github.com/urfave/cli"

	abi "github.com/heybit/go-abi"
	"github.com/heybit/go-abi/contracts"
	"github.com/heybit/go-abi/rpc"
)

var log = logging.MustGetLogger("ethcall")

func main() {
	app := cli.NewApp()
	app.Name = "ethcall"
	app.Usage = "encode, decode and invoke contract calls over JSON-RPC"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "Log RPC traffic to stderr",
		},
	}
	app.Before = func(c *cli.Context) error {
		setupLogging(c.GlobalBool("verbose"))
		return nil
	}
	app.Commands = []cli.Command{
		cli.Command{
			Name:  "encode",
			Usage: "Print the calldata for a function call",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Usage: "Function name",
				},
				cli.StringSliceFlag{
					Name:  "arg, a",
					Usage: "Argument type, repeated in order",
				},
			},
			Action: encodeCommand,
		},
		cli.Command{
			Name:  "decode",
			Usage: "Decode return data against a list of return types",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "ret, r",
					Usage: "Return type, repeated in order",
				},
			},
			Action: decodeCommand,
		},
		cli.Command{
			Name:  "call",
			Usage: "Invoke a read-only function and print its return values",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "rpc",
					Usage: "JSON-RPC endpoint, repeated for round-robin",
				},
				cli.StringFlag{
					Name:  "to",
					Usage: "Contract address",
				},
				cli.StringFlag{
					Name:  "name, n",
					Usage: "Function name",
				},
				cli.StringSliceFlag{
					Name:  "arg, a",
					Usage: "Argument type, repeated in order",
				},
				cli.StringSliceFlag{
					Name:  "ret, r",
					Usage: "Return type, repeated in order",
				},
				cli.DurationFlag{
					Name:  "timeout",
					Usage: "Overall call timeout",
					Value: 30 * time.Second,
				},
			},
			Action: callCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}
}

func setupLogging(verbose bool) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.MustStringFormatter(`%{time:15:04:05.000} %{module} %{level} %{message}`)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, formatter))
	if verbose {
		leveled.SetLevel(logging.DEBUG, "")
	} else {
		leveled.SetLevel(logging.WARNING, "")
	}
	logging.SetBackend(leveled)
}

func encodeCommand(c *cli.Context) error {
	fn, err := abi.NewFunction(c.String("name"), c.StringSlice("arg"), nil)
	if err != nil {
		return err
	}

	args, err := parseArgs(fn.Args(), c.Args())
	if err != nil {
		return err
	}

	calldata, err := fn.Encode(args)
	if err != nil {
		return err
	}

	fmt.Println("0x" + hex.EncodeToString(calldata))
	return nil
}

func decodeCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one hex data argument")
	}

	codec, err := abi.Parse(c.StringSlice("ret"))
	if err != nil {
		return err
	}

	data, err := hex.DecodeString(strings.TrimPrefix(c.Args().First(), "0x"))
	if err != nil {
		return err
	}

	value, err := abi.Decode(codec, data)
	if err != nil {
		return err
	}

	values, err := value.AsTuple()
	if err != nil {
		return err
	}
	printValues(values)
	return nil
}

func callCommand(c *cli.Context) error {
	endpoints := c.StringSlice("rpc")
	if len(endpoints) == 0 {
		return fmt.Errorf("at least one --rpc endpoint is required")
	}

	channels := make([]rpc.OneshotChannel, len(endpoints))
	for i, endpoint := range endpoints {
		channels[i] = rpc.NewHTTPChannel(endpoint)
	}
	network := rpc.NewNetwork(rpc.NewRoundRobin(channels...))

	contract, err := contracts.NewFromHex(network, c.String("to"))
	if err != nil {
		return err
	}

	fn, err := abi.NewFunction(c.String("name"), c.StringSlice("arg"), c.StringSlice("ret"))
	if err != nil {
		return err
	}

	args, err := parseArgs(fn.Args(), c.Args())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.Duration("timeout"))
	defer cancel()

	log.Infof("calling %s on %s", fn.Signature(), contract.Address().Hex())
	results, err := contract.Invoke(ctx, fn, args...)
	if err != nil {
		return err
	}

	printValues(results)
	return nil
}

func parseArgs(codec *abi.TupleCodec, raw []string) ([]abi.Value, error) {
	if len(raw) != codec.Len() {
		return nil, fmt.Errorf("%s takes %d arguments, got %d", codec.Name(), codec.Len(), len(raw))
	}

	values := make([]abi.Value, len(raw))
	for i, child := range codec.Codecs() {
		value, err := parseArg(child, raw[i])
		if err != nil {
			return nil, fmt.Errorf("argument %d (%s): %w", i+1, child.Name(), err)
		}
		values[i] = value
	}
	return values, nil
}

func parseArg(codec abi.Codec, raw string) (abi.Value, error) {
	switch codec.(type) {
	case *abi.UintCodec:
		n, ok := new(big.Int).SetString(raw, 0)
		if !ok {
			return abi.Value{}, fmt.Errorf("not a number: %q", raw)
		}
		return abi.NewUint(n), nil
	case *abi.IntCodec:
		n, ok := new(big.Int).SetString(raw, 0)
		if !ok {
			return abi.Value{}, fmt.Errorf("not a number: %q", raw)
		}
		return abi.NewInt(n), nil
	case abi.BooleanCodec:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return abi.Value{}, err
		}
		return abi.NewBool(b), nil
	case abi.AddressCodec:
		return abi.NewAddress(raw)
	case *abi.FixedBytesCodec, abi.DynamicBytesCodec:
		bz, err := hex.DecodeString(strings.TrimPrefix(raw, "0x"))
		if err != nil {
			return abi.Value{}, err
		}
		return abi.NewBytes(bz), nil
	case abi.StringCodec:
		return abi.NewString(raw), nil
	default:
		return abi.Value{}, fmt.Errorf("composite arguments are not supported from the command line")
	}
}

var (
	indexColor  = color.New(color.Faint)
	numberColor = color.New(color.FgCyan)
	textColor   = color.New(color.FgGreen)
)

func printValues(values []abi.Value) {
	for i, value := range values {
		indexColor.Printf("[%d] ", i)
		switch value.Kind() {
		case abi.KindInt, abi.KindUint:
			numberColor.Println(value.String())
		case abi.KindString, abi.KindAddress:
			textColor.Println(value.String())
		default:
			fmt.Println(value.String())
		}
	}
}
