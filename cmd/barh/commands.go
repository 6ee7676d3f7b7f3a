package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/spektr-org/barh/config"
	"github.com/spektr-org/barh/engine"
	"github.com/spektr-org/barh/helpers"
	"github.com/spektr-org/barh/render"
	"github.com/spektr-org/barh/widget"
)

// rootFlags are shared by every subcommand. A flag only overrides the
// config file and environment when it was set explicitly.
type rootFlags struct {
	configPath  string
	data        string
	sheet       string
	title       string
	cutoff      int
	percentual  bool
	logScale    bool
	minLogScale float64
	stacked     bool
	expanded    bool
	exclude     []string
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}

	root := &cobra.Command{
		Use:     "barh",
		Short:   "Shape and draw horizontal bar charts",
		Long:    `barh folds the tail of a dataset into an "Otros" bar, colors each series and renders the chart as JSON, HTML, CSV or terminal bars.`,
		Version: version,

		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "YAML config file")
	pf.StringVarP(&f.data, "data", "d", "", "Dataset file (.csv, .json, .xlsx)")
	pf.StringVar(&f.sheet, "sheet", "", "Worksheet name for .xlsx input (default: active sheet)")
	pf.StringVar(&f.title, "title", "", "Chart title")
	pf.IntVar(&f.cutoff, "cutoff", 0, "Rows shown while collapsed; 0 disables collapsing")
	pf.BoolVar(&f.percentual, "percentual", false, "Format values as percentages")
	pf.BoolVar(&f.logScale, "log-scale", false, "Use a logarithmic value axis")
	pf.Float64Var(&f.minLogScale, "min-log-scale", engine.DefaultMinLogScale, "Lower bound of the log axis")
	pf.BoolVar(&f.stacked, "stacked", false, "Stack series into a single bar per row")
	pf.BoolVar(&f.expanded, "expanded", false, "Start expanded instead of collapsed")
	pf.StringSliceVar(&f.exclude, "exclude", nil, "Row names to drop before shaping (comma-separated)")

	root.AddCommand(
		newShapeCmd(f),
		newPreviewCmd(f),
		newHTMLCmd(f),
		newTableCmd(f),
		newServeCmd(f),
	)
	return root
}

// settings merges defaults, config file, environment and explicit flags.
func (f *rootFlags) settings(cmd *cobra.Command) (config.Settings, error) {
	s, err := config.Load(f.configPath)
	if err != nil {
		return s, err
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		s.Data = f.data
	}
	if flags.Changed("sheet") {
		s.Sheet = f.sheet
	}
	if flags.Changed("title") {
		s.Chart.Title = f.title
	}
	if flags.Changed("cutoff") {
		s.Chart.Cutoff = f.cutoff
	}
	if flags.Changed("percentual") {
		s.Chart.Percentual = f.percentual
	}
	if flags.Changed("log-scale") {
		s.Chart.LogScale = f.logScale
	}
	if flags.Changed("min-log-scale") {
		s.Chart.MinLogScale = f.minLogScale
	}
	if flags.Changed("stacked") {
		s.Chart.Stacked = f.stacked
	}

	if s.Data == "" {
		return s, fmt.Errorf("%w: no dataset (use --data or BARH_DATA)", config.ErrInvalidSetting)
	}
	return s, s.Validate()
}

func (f *rootFlags) viewState() engine.ViewState {
	state := engine.InitialViewState()
	if f.expanded {
		state = state.Toggle(nil)
	}
	return state
}

// dataset loads the configured file and drops excluded rows.
func (f *rootFlags) dataset(s config.Settings) (engine.Dataset, error) {
	dataset, err := helpers.LoadFile(s.Data, s.Sheet)
	if err != nil {
		return nil, err
	}
	return engine.ExcludeRows(dataset, f.exclude), nil
}

// chart loads the dataset and shapes it for the requested view state.
func (f *rootFlags) chart(cmd *cobra.Command) (engine.Dataset, *engine.ChartData, error) {
	s, err := f.settings(cmd)
	if err != nil {
		return nil, nil, err
	}
	dataset, err := f.dataset(s)
	if err != nil {
		return nil, nil, err
	}
	return dataset, engine.Execute(dataset, f.viewState(), s.Options()...), nil
}

// ============================================================================
// SUBCOMMANDS
// ============================================================================

func newShapeCmd(f *rootFlags) *cobra.Command {
	var pretty bool
	cmd := &cobra.Command{
		Use:   "shape",
		Short: "Print the shaped chart data as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, chart, err := f.chart(cmd)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), chart, pretty)
		},
	}
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func newPreviewCmd(f *rootFlags) *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Draw the chart in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dataset, chart, err := f.chart(cmd)
			if err != nil {
				return err
			}
			if err := render.Terminal(cmd.OutOrStdout(), chart, width); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "\n  %s\n", engine.BuildSummary(dataset, chart).Text)
			return err
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", render.DefaultBarWidth, "Cells spanned by the longest bar")
	return cmd
}

func newHTMLCmd(f *rootFlags) *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "html",
		Short: "Write the chart as a standalone ECharts HTML page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, chart, err := f.chart(cmd)
			if err != nil {
				return err
			}
			return withOutput(cmd, outPath, func(w io.Writer) error {
				return render.ECharts(w, chart)
			})
		},
	}
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Output file path (default: stdout)")
	return cmd
}

func newTableCmd(f *rootFlags) *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Export the shaped rows as formatted CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, chart, err := f.chart(cmd)
			if err != nil {
				return err
			}
			return withOutput(cmd, outPath, func(w io.Writer) error {
				return writeTableCSV(w, engine.BuildTable(chart))
			})
		},
	}
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Output file path (default: stdout)")
	return cmd
}

func newServeCmd(f *rootFlags) *cobra.Command {
	var listen string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the chart with a working ver más / ver menos link",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := f.settings(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("listen") {
				s.Listen = listen
			}

			dataset, err := f.dataset(s)
			if err != nil {
				return err
			}

			chart := widget.New(s.Options()...)
			chart.SetData(dataset)
			if f.expanded {
				chart.Toggle(nil)
			}

			srv := &http.Server{
				Addr:              s.Listen,
				Handler:           chart.Handler(),
				ReadHeaderTimeout: 5 * time.Second,
			}
			infof("Serving %s on http://localhost%s", s.Data, s.Listen)
			log.Printf("🚀 Listening on %s", s.Listen)
			return srv.ListenAndServe()
		},
	}
	cmd.Flags().StringVar(&listen, "listen", config.DefaultListen, "HTTP listen address")
	return cmd
}

// ============================================================================
// OUTPUT
// ============================================================================

func withOutput(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(cmd.OutOrStdout())
	}
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := write(fh); err != nil {
		fh.Close()
		return err
	}
	if err := fh.Close(); err != nil {
		return err
	}
	statusf("Written to %s", path)
	return nil
}

func writeJSON(w io.Writer, v interface{}, pretty bool) error {
	var (
		out []byte
		err error
	)
	if pretty {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func writeTableCSV(w io.Writer, table *engine.TableData) error {
	cw := csv.NewWriter(w)
	headers := make([]string, len(table.Columns))
	for i, c := range table.Columns {
		headers[i] = c.Label
	}
	if err := cw.Write(headers); err != nil {
		return err
	}
	if err := cw.WriteAll(table.Rows); err != nil {
		return err
	}
	return cw.Error()
}
