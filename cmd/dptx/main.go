// dptx translates KNX 8 bit set datapoint values between text, numeric and
// raw byte forms.
//
//	dptx --type 21.001 "1 1 0 1" 0x08 OutOfService
//	dptx --type 21.001 --data 040801
//	dptx --catalog site.yaml --type 21.900 "Running Manual"
//	dptx --list
package main

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/hupe1980/dptx"
	"github.com/hupe1980/dptx/catalog"
	"github.com/hupe1980/dptx/codec"
	"github.com/spf13/pflag"
)

type record struct {
	Input string   `json:"input" yaml:"input" toml:"input"`
	Value int      `json:"value" yaml:"value" toml:"value"`
	Hex   string   `json:"hex" yaml:"hex" toml:"hex"`
	Flags []string `json:"flags" yaml:"flags" toml:"flags"`
	Text  string   `json:"text" yaml:"text" toml:"text"`
}

type output struct {
	DPT         string   `json:"dpt" yaml:"dpt" toml:"dpt"`
	Description string   `json:"description" yaml:"description" toml:"description"`
	Values      []record `json:"values" yaml:"values" toml:"values"`
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var (
		typeID   string
		catalogs []string
		format   string
		data     string
		list     bool
		debug    bool
	)

	flagSet := pflag.NewFlagSet("dptx", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&typeID, "type", "t", dptx.DptGeneralStatus.ID(), "datapoint type id")
	flagSet.StringArrayVarP(&catalogs, "catalog", "c", nil, "subtype definition file (json, yaml, toml); repeatable")
	flagSet.StringVarP(&format, "format", "f", "json", "output format: "+strings.Join(codec.Names(), ", "))
	flagSet.StringVar(&data, "data", "", "hex encoded raw datapoint bytes, one byte per item")
	flagSet.BoolVarP(&list, "list", "l", false, "list registered subtypes")
	flagSet.BoolVar(&debug, "debug", false, "log translator diagnostics to stderr")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	logger := dptx.NoopLogger()
	if debug {
		logger = dptx.NewLogger(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	if len(catalogs) > 0 {
		if _, err := catalog.LoadAll(ctx, logger, catalogs...); err != nil {
			return err
		}
	}

	if list {
		for _, id := range dptx.IDs() {
			st, _ := dptx.Lookup(id)
			fmt.Fprintf(stdout, "%s [%s]\n", st, strings.Join(st.Flags(), " "))
		}
		return nil
	}

	c, ok := codec.ByName(format)
	if !ok {
		return fmt.Errorf("unknown format %q", format)
	}

	t, err := dptx.NewByID(typeID, dptx.WithLogger(logger))
	if err != nil {
		return err
	}

	inputs := flagSet.Args()
	switch {
	case data != "":
		raw, err := hex.DecodeString(data)
		if err != nil {
			return fmt.Errorf("invalid --data: %w", err)
		}
		if err := t.SetData(raw, 0); err != nil {
			return err
		}
		inputs = make([]string, len(raw))
		for i, b := range raw {
			inputs[i] = fmt.Sprintf("%02x", b)
		}
	case len(inputs) > 0:
		if err := t.SetTexts(inputs...); err != nil {
			return err
		}
	default:
		return errors.New("no values given")
	}

	out, err := render(t, inputs)
	if err != nil {
		return err
	}
	b, err := c.Marshal(out)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, strings.TrimRight(string(b), "\n"))
	return err
}

func render(t *dptx.Translator, inputs []string) (output, error) {
	st := t.Subtype()
	out := output{DPT: st.ID(), Description: st.Description()}

	texts, err := t.AllValues()
	if err != nil {
		return output{}, err
	}
	raw := t.Data()
	for i, s := range texts {
		v, err := t.NumericAt(i)
		if err != nil {
			return output{}, err
		}
		flags, err := t.FlagsAt(i)
		if err != nil {
			return output{}, err
		}
		out.Values = append(out.Values, record{
			Input: inputs[i],
			Value: v,
			Hex:   fmt.Sprintf("0x%02x", raw[i]),
			Flags: flags,
			Text:  s,
		})
	}
	return out, nil
}
