package commands

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"abook/internal/abook"
	"abook/internal/app"
	"abook/internal/config"
	"abook/internal/services/convert"
	"abook/internal/ui"
)

var (
	flags      app.Flags
	appendMode bool
	replaceUID string
	removeUID  string
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "vcf2abook [infile [addressbook]]",
		Short:         "Convert vCard files to an Abook addressbook",
		Args:          cobra.MaximumNArgs(2),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          run,
	}
	flags.Bind(root.Flags())
	root.Flags().BoolVarP(&appendMode, "append", "a", false, "append to the addressbook instead of replacing it")
	root.Flags().StringVar(&replaceUID, "replace", "", "replace the entry with this UID by the single vCard read")
	root.Flags().StringVar(&removeUID, "remove", "", "remove the entry with this UID; no vCard is read")
	root.MarkFlagsMutuallyExclusive("append", "replace", "remove")
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

	infile, target := app.Stdio, w.Settings.Addressbook
	if len(args) > 0 {
		infile = args[0]
	}
	if len(args) > 1 {
		target = args[1]
	}
	editing := replaceUID != "" || removeUID != ""
	if (appendMode || editing) && app.IsStdio(target) {
		return errors.New("--append, --replace and --remove need an addressbook file")
	}

	imp := &convert.Import{}
	if removeUID == "" {
		data, name, err := w.ReadInput(infile)
		if err != nil {
			return err
		}
		if imp, err = w.Convert.VCardToAbook(bytes.NewReader(data), name); err != nil {
			return err
		}
	}

	// The existing book is loaded before anything is written so that a
	// malformed addressbook aborts the run.
	book := abook.NewBook(nil)
	if appendMode || editing {
		if book, err = w.Books.Load(target); err != nil {
			return err
		}
	}
	switch {
	case removeUID != "":
		err = w.Convert.Remove(book, removeUID)
	case replaceUID != "":
		err = w.Convert.Replace(book, replaceUID, imp)
	default:
		w.Convert.Append(book, imp)
	}
	if err != nil {
		return err
	}

	if app.IsStdio(target) {
		err = w.Output(target, func(out io.Writer) error { return abook.Encode(out, book, w.Fields) })
	} else {
		err = w.Books.Save(target, book)
	}
	if err != nil {
		return err
	}
	photos := w.Convert.SavePhotos(imp)

	if !flags.Quiet && !app.IsStdio(target) {
		switch {
		case removeUID != "":
			ui.Success("removed %s from %s", removeUID, target)
		case replaceUID != "":
			ui.Success("replaced %s in %s", replaceUID, target)
		default:
			verb := "wrote"
			if appendMode {
				verb = "appended"
			}
			ui.Success("%s %s contacts to %s", verb, humanize.Comma(int64(len(imp.Records))), target)
		}
		if photos > 0 {
			ui.Dim("%d photos saved in %s", photos, w.Photos.Dir())
		}
	}
	if n := w.Warnings.Count(); n > 0 && !flags.Quiet {
		ui.Warning("%d fields not converted", n)
	}
	return nil
}
