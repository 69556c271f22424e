package main

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/hailam/altiumlib/internal/pcblib"
	"github.com/hailam/altiumlib/internal/schlib"
)

var verbose bool
var quiet bool

func main() {
	var rootCmd = &cobra.Command{
		Use:   "altiumcli",
		Short: "Inspects and round-trips Altium PcbLib/SchLib files.",
		Long: `altiumcli opens an Altium Designer PcbLib or SchLib compound document,
reports its component names and counts, and can round-trip it through the
full read-decode-encode-write path to a new file.`,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print per-component detail")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress the progress spinner")

	rootCmd.AddCommand(inspectCmd(), roundtripCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <path>",
		Short: "Print component names and counts for a library",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			path := args[0]
			s := startSpinner(fmt.Sprintf("Opening %s... ", path))
			f, err := os.Open(path)
			if err != nil {
				s.Stop()
				fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", path, err)
				os.Exit(1)
			}
			defer f.Close()

			pcbLib, pcbErr := pcblib.Open(f)
			if pcbErr == nil {
				s.Stop()
				reportPcb(path, pcbLib)
				return
			}

			if _, err := f.Seek(0, 0); err != nil {
				s.Stop()
				fmt.Fprintf(os.Stderr, "Error rewinding %s: %v\n", path, err)
				os.Exit(1)
			}
			schLib, schErr := schlib.Open(f)
			s.Stop()
			if schErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %s is neither a PcbLib (%v) nor a SchLib (%v)\n", path, pcbErr, schErr)
				os.Exit(1)
			}
			reportSch(path, schLib)
		},
	}
}

func roundtripCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roundtrip <in> <out>",
		Short: "Read a library then rewrite it to a new file",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			in, out := args[0], args[1]
			s := startSpinner(fmt.Sprintf("Round-tripping %s -> %s... ", in, out))
			defer s.Stop()

			f, err := os.Open(in)
			if err != nil {
				s.Stop()
				fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", in, err)
				os.Exit(1)
			}
			defer f.Close()

			dst, err := os.Create(out)
			if err != nil {
				s.Stop()
				fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", out, err)
				os.Exit(1)
			}
			defer dst.Close()

			if pcbLib, err := pcblib.Open(f); err == nil {
				s.Stop()
				if err := pcbLib.Write(dst); err != nil {
					fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", out, err)
					os.Exit(1)
				}
				fmt.Printf("Wrote %d footprint(s) to %s\n", len(pcbLib.Footprints), out)
				return
			}

			if _, err := f.Seek(0, 0); err != nil {
				s.Stop()
				fmt.Fprintf(os.Stderr, "Error rewinding %s: %v\n", in, err)
				os.Exit(1)
			}
			schLib, err := schlib.Open(f)
			s.Stop()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: could not read %s as either library kind: %v\n", in, err)
				os.Exit(1)
			}
			if err := schLib.Write(dst); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", out, err)
				os.Exit(1)
			}
			fmt.Printf("Wrote %d symbol(s) to %s\n", len(schLib.Symbols), out)
		},
	}
}

func reportPcb(path string, lib *pcblib.Library) {
	fmt.Printf("%s: PcbLib, %d footprint(s)\n", path, len(lib.Footprints))
	if !verbose {
		return
	}
	for _, fp := range lib.Footprints {
		fmt.Printf("  %s (%d pads, %d tracks, %d arcs)\n", fp.Name, len(fp.Pads), len(fp.Tracks), len(fp.Arcs))
	}
}

func reportSch(path string, lib *schlib.Library) {
	fmt.Printf("%s: SchLib, %d symbol(s)\n", path, len(lib.Symbols))
	if !verbose {
		return
	}
	for _, sym := range lib.Symbols {
		fmt.Printf("  %s (%d pins, part count %d)\n", sym.Name, len(sym.Pins), sym.PartCount)
	}
}

func startSpinner(prefix string) *spinner.Spinner {
	if quiet {
		return spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Prefix = prefix
	s.Start()
	return s
}
