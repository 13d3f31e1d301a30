package commands

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"abook/internal/app"
	"abook/internal/config"
	"abook/internal/services/convert"
	"abook/internal/ui"
)

var (
	flags app.Flags
	uids  bool
	only  []string
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "abook2vcf [infile [outfile]]",
		Short:         "Convert an Abook addressbook to vCard 3.0",
		Args:          cobra.MaximumNArgs(2),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          run,
	}
	flags.Bind(root.Flags())
	root.Flags().BoolVar(&uids, "uids", false, "print \"UID ETAG\" for every entry instead of converting")
	root.Flags().StringArrayVar(&only, "uid", nil, "convert only the entry with this UID (repeatable)")
	return root
}

func run(cmd *cobra.Command, args []string) error {
	ui.Setup(flags.NoColor)
	flags.Progress = ui.IsTerminal(os.Stderr)

	w, err := app.NewWire(flags.Config)
	if err != nil {
		return err
	}
	w.Stdin, w.Stdout = cmd.InOrStdin(), cmd.OutOrStdout()
	if flags.PrintConfig {
		_, err := fmt.Fprint(w.Stdout, config.String(w.Fields))
		return err
	}

	infile, outfile := w.Settings.Addressbook, app.Stdio
	if len(args) > 0 {
		infile = args[0]
	}
	if len(args) > 1 {
		outfile = args[1]
	}

	data, name, err := w.ReadInput(infile)
	if err != nil {
		return err
	}

	if uids {
		return w.Output(outfile, func(out io.Writer) error {
			return w.Convert.WriteUIDs(bytes.NewReader(data), name, out)
		})
	}

	var res convert.Result
	if err := w.Output(outfile, func(out io.Writer) error {
		res, err = w.Convert.AbookToVCard(bytes.NewReader(data), name, out, only...)
		return err
	}); err != nil {
		return err
	}

	if !flags.Quiet && !app.IsStdio(outfile) {
		ui.Success("wrote %s contacts to %s", humanize.Comma(int64(res.Contacts)), outfile)
		if res.Photos > 0 {
			ui.Dim("%d photos embedded", res.Photos)
		}
	}
	if n := w.Warnings.Count(); n > 0 && !flags.Quiet {
		ui.Warning("%d fields not converted", n)
	}
	return nil
}
