package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ja7ad/divider/pkg/catalog"
	"github.com/ja7ad/divider/pkg/config"
	"github.com/ja7ad/divider/pkg/divider"
	"github.com/ja7ad/divider/pkg/types"
)

type opts struct {
	// design
	vin    float64
	v2Hi   float64
	v2Lo   float64
	adcRef float64
	limit  int
	rating string

	// display
	all     bool
	pretty  bool
	verbose bool

	// outputs
	envPath  string
	csvPath  string
	jsonPath string
	htmlPath string
}

func main() {
	root := newRootCmd(os.Stdout)
	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	var o opts

	root := &cobra.Command{
		Use:   "divider --vin VOLTS [CATALOG.csv]",
		Short: "Voltage divider resistor pair selector",
		Long: `The divider tool picks two resistors from a parts catalog to scale an input
voltage (Vin) down into the sampling band of a 10-bit, 5 V analog-to-digital
converter, keeping each resistor under its wattage rating.

Vin -- R1 --+-- R2 -- GND
            |
            V2 (sampled)

The catalog is a CSV file with a header row and the resistance in ohms in the
first column. Its wattage class is taken from --rating, or from the file name
("quarter" = 250 mW, "half" = 500 mW).

Examples:
  divider --vin 25.2 data/resistors_quarter.csv
  divider --vin 12 --rating half --all --json out.json parts.csv`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, out, o, args)
		},
	}

	d := divider.DefaultConfig()
	f := root.Flags()
	f.Float64Var(&o.vin, "vin", 0, "input voltage to be measured (V)")
	f.Float64Var(&o.v2Hi, "v2-hi", d.V2Hi, "upper bound of the sampled voltage band (V)")
	f.Float64Var(&o.v2Lo, "v2-lo", d.V2Lo, "lower bound of the sampled voltage band (V)")
	f.Float64Var(&o.adcRef, "adc-ref", d.ADCRef, "converter reference voltage (V)")
	f.IntVarP(&o.limit, "limit", "n", d.Limit, "number of choices to show")
	f.StringVarP(&o.rating, "rating", "r", "auto", "resistor wattage class: auto, quarter or half")

	f.BoolVar(&o.all, "all", false, "show every qualifying pair instead of the best --limit")
	f.BoolVar(&o.pretty, "pretty", true, "format output as a table instead of CSV-like lines")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "debug logging")

	f.StringVar(&o.envPath, "env", "", "read DIVIDER_* settings from this file (default .env if present)")
	f.StringVar(&o.csvPath, "csv", "", "write choices to CSV file")
	f.StringVar(&o.jsonPath, "json", "", "write choices to JSON file")
	f.StringVar(&o.htmlPath, "html", "", "write choices and summary to HTML file")

	_ = root.MarkFlagRequired("vin")

	return root
}

func run(cmd *cobra.Command, out io.Writer, o opts, args []string) error {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	settings, err := config.Load(o.envPath)
	if err != nil {
		return err
	}
	cfg := applyFlags(cmd, settings.Divider, o)
	if cmd.Flags().Changed("rating") {
		if cfg.Rating, err = catalog.ParseRating(o.rating); err != nil {
			return err
		}
	}

	source := settings.Catalog
	if len(args) == 1 {
		source = args[0]
	}
	if source == "" {
		return fmt.Errorf("no catalog given (argument or DIVIDER_CATALOG)")
	}
	if o.vin <= 0 {
		return fmt.Errorf("vin must be > 0")
	}

	solverOpts := []divider.Option{divider.WithLogger(logger)}
	if settings.CacheSize > 0 {
		solverOpts = append(solverOpts, divider.WithCache(catalog.NewCache(settings.CacheSize, 0, logger)))
	}

	start := time.Now()
	report, err := divider.NewSolver(&cfg, solverOpts...).Compute(o.vin, source)
	if err != nil {
		return err
	}
	logger.Debug("computed", "elapsed", time.Since(start), "pairs", report.Pairs, "qualified", len(report.All))

	rows := report.Choices
	if o.all {
		rows = report.All
	}

	fmt.Fprintf(out, _console, report.Source, report.Catalog, report.Rating, report.Rating.MilliWatts().Humanized(),
		report.Goals.Vin(), report.Goals.V2Lo(), report.Goals.V2Hi(), time.Now().Format("2006-01-02 15:04:05"))

	switch report.Status {
	case divider.StatusUnclassified:
		color.New(color.FgYellow).Fprintf(out, "# rating of %q is unknown: use --rating quarter|half\n", report.Source)
		logger.Warn("no choices: catalog wattage class not recognised", "source", report.Source)
	case divider.StatusNoSolution:
		color.New(color.FgRed).Fprintf(out, "# no pair of %d values meets the goals (%d pairs checked)\n", report.Catalog, report.Pairs)
	default:
		if o.pretty {
			writeTable(out, rows)
		} else {
			writeCsvLike(out, rows)
		}
		printSummary(out, report)
	}

	if err := writeFiles(o, report, rows); err != nil {
		return err
	}
	return nil
}

// applyFlags overlays flags the user actually set on the env/default config.
func applyFlags(cmd *cobra.Command, cfg divider.Config, o opts) divider.Config {
	f := cmd.Flags()
	if f.Changed("v2-hi") {
		cfg.V2Hi = o.v2Hi
	}
	if f.Changed("v2-lo") {
		cfg.V2Lo = o.v2Lo
		cfg.ZeroFloor = o.v2Lo == 0
	}
	if f.Changed("adc-ref") {
		cfg.ADCRef = o.adcRef
	}
	if f.Changed("limit") {
		cfg.Limit = o.limit
	}
	return cfg
}

func printSummary(w io.Writer, r *divider.Report) {
	best, ok := r.Best()
	if !ok {
		return
	}
	g := r.Goals

	fmt.Fprintln(w)
	color.New(color.FgGreen, color.Bold).Fprintf(w, "Best design: R1=%s R2=%s\n", best.R1.Humanized(), best.R2.Humanized())
	fmt.Fprintf(w, "- from specs:    Vin=%.2f V  V2 in [%.2f, %.2f] V  max=%s  R1>%.0f Ω  R2>%.0f Ω\n",
		g.Vin(), g.V2Lo(), g.V2Hi(), g.MaxMW().Humanized(), g.MinR1(), g.MinR2())
	fmt.Fprintf(w, "- actual design: V1=%s  V2=%s  fraction=%.5f  deviance=%.4f V\n",
		types.Volts(best.Display.V1), types.Volts(best.Display.V2), best.Fraction, best.Display.Deviance)
	fmt.Fprintf(w, "- dissipation:   P1=%d mW  P2=%d mW  a2d=%d (%d-bit, %s reference)\n",
		best.Pow1MW, best.Pow2MW, best.A2D, g.ADCBits(), types.Volts(g.ADCRef()))
	fmt.Fprintf(w, "- %d of %d pairs qualified\n", len(r.All), r.Pairs)
	fmt.Fprintln(w)
}

const _console = `Divider - Voltage Divider Resistor Selector

       Catalog: %s (%d values)
       Rating: %s (%s per resistor)
       Vin: %.2f V
       Band: %.2f .. %.2f V

Choices as of %s:

`
