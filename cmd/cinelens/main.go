package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cinelens-org/cinelens/dataset"
	"github.com/cinelens-org/cinelens/query"
)

// ============================================================================
// CINELENS CLI — Query a movie dataset from the command line
// ============================================================================
// The CLI is a thin consumer of the library: load, query, print. It never
// renders charts — output is JSON or plain text for whatever sits on top.
// ============================================================================

const version = "0.1.0"

var (
	flagFile     string
	flagTable    string
	flagFilters  []string
	flagSort     string
	flagLimit    int
	flagDistinct string
	flagBuckets  string
	flagStats    string
	flagFormat   string
	flagOut      string
)

var rootCmd = &cobra.Command{
	Use:     "cinelens",
	Short:   "Query a movie dataset",
	Version: version,
	Long: `cinelens loads a tabular movie dataset (CSV, gzipped CSV, or a
SQLite table) and answers filter/sort/top-N queries with summary
aggregates.

Examples:
  cinelens --file movies.csv --filter "rating:ge:80" --sort rating:desc --limit 10
  cinelens --file movies.csv --filter "year:gt:2000" --buckets oscars
  cinelens --file movies.db --table movies --distinct rating --format json
  cinelens --file movies.csv --stats rating --format text

The data source may also come from the CINELENS_FILE environment
variable or a config file read by viper.`,
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&flagFile, "file", "", "path to the data source (.csv, .csv.gz, .db)")
	f.StringVar(&flagTable, "table", dataset.DefaultTable, "table name for SQLite sources")
	f.StringArrayVar(&flagFilters, "filter", nil, `filter predicate "field:op:value" (repeatable, AND-combined)`)
	f.StringVar(&flagSort, "sort", "", `sort key "field" or "field:desc"`)
	f.IntVar(&flagLimit, "limit", query.NoLimit, "maximum rows to return (-1 = all)")
	f.StringVar(&flagDistinct, "distinct", "", "print sorted distinct values of a field")
	f.StringVar(&flagBuckets, "buckets", "", "print per-value row counts of a field")
	f.StringVar(&flagStats, "stats", "", "print count/sum/avg/min/max of a numeric field")
	f.StringVar(&flagFormat, "format", "json", "output format: json, pretty, text")
	f.StringVar(&flagOut, "out", "", "write output to file instead of stdout")

	viper.SetEnvPrefix("CINELENS")
	viper.AutomaticEnv()
	viper.SetConfigName("cinelens")
	viper.AddConfigPath(".")
	_ = viper.BindPFlag("file", f.Lookup("file"))
	_ = viper.BindPFlag("table", f.Lookup("table"))
	_ = viper.BindPFlag("format", f.Lookup("format"))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// output is the CLI's single JSON envelope. Exactly one of Movies,
// Distinct, Buckets, or Stats is populated.
type output struct {
	Source   string          `json:"source"`
	Count    int             `json:"count"`
	Movies   []dataset.Movie `json:"movies,omitempty"`
	Distinct []string        `json:"distinct,omitempty"`
	Buckets  []query.Bucket  `json:"buckets,omitempty"`
	Stats    *query.Stats    `json:"stats,omitempty"`
}

func run(cmd *cobra.Command, args []string) error {
	// Config file is optional; env and flags win.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("read config: %w", err)
		}
	}

	file := viper.GetString("file")
	if file == "" {
		return fmt.Errorf("--file is required (or set CINELENS_FILE)")
	}

	// ── Load ──────────────────────────────────────────────────────────────
	var (
		ds  *dataset.Dataset
		err error
	)
	table := viper.GetString("table")
	if isSQLite(file) && table != dataset.DefaultTable {
		ds, err = dataset.LoadSQLite(file, table)
	} else {
		ds, err = dataset.Load(file)
	}
	if err != nil {
		return err
	}

	// ── Build query ───────────────────────────────────────────────────────
	q := query.NewQuery()
	q.Limit = flagLimit
	for _, raw := range flagFilters {
		flt, err := parseFilter(raw)
		if err != nil {
			return err
		}
		q.Filters = append(q.Filters, flt)
	}
	if flagSort != "" {
		srt, err := parseSort(flagSort)
		if err != nil {
			return err
		}
		q.Sort = &srt
	}

	rs, err := query.Run(ds, q)
	if err != nil {
		return err
	}

	// ── Assemble output ───────────────────────────────────────────────────
	out := output{Source: ds.Source(), Count: rs.Count()}
	switch {
	case flagDistinct != "":
		out.Distinct, err = rs.Distinct(flagDistinct)
	case flagBuckets != "":
		out.Buckets, err = rs.Buckets(flagBuckets)
	case flagStats != "":
		var s query.Stats
		s, err = rs.Stats(flagStats)
		out.Stats = &s
	default:
		out.Movies = rs.Movies()
	}
	if err != nil {
		return err
	}

	// ── Emit ──────────────────────────────────────────────────────────────
	w := io.Writer(os.Stdout)
	if flagOut != "" {
		f, err := os.Create(flagOut)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		w = f
	}
	return emit(w, out, viper.GetString("format"))
}

func emit(w io.Writer, out output, format string) error {
	switch format {
	case "json":
		return json.NewEncoder(w).Encode(out)
	case "pretty":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "text":
		return emitText(w, out)
	}
	return fmt.Errorf("unknown format %q", format)
}

func emitText(w io.Writer, out output) error {
	fmt.Fprintf(w, "%d movies match (%s)\n", out.Count, out.Source)
	switch {
	case out.Stats != nil:
		s := out.Stats
		fmt.Fprintf(w, "count=%d sum=%.2f avg=%.2f min=%.2f max=%.2f\n",
			s.Count, s.Sum, s.Avg, s.Min, s.Max)
	case out.Distinct != nil:
		for _, v := range out.Distinct {
			fmt.Fprintln(w, v)
		}
	case out.Buckets != nil:
		for _, b := range out.Buckets {
			fmt.Fprintf(w, "%s\t%d\n", b.Key, b.Count)
		}
	default:
		for _, m := range out.Movies {
			fmt.Fprintf(w, "%s (%d) — rating %.1f, %d oscars\n",
				m.Title, m.Year, m.Rating, m.Oscars)
		}
	}
	return nil
}

// parseFilter parses "field:op:value" (e.g. "rating:ge:80").
func parseFilter(raw string) (query.Filter, error) {
	parts := strings.SplitN(raw, ":", 3)
	if len(parts) != 3 {
		return query.Filter{}, fmt.Errorf("invalid filter %q, want field:op:value", raw)
	}
	op, err := query.ParseOp(parts[1])
	if err != nil {
		return query.Filter{}, err
	}
	return query.Filter{Field: parts[0], Op: op, Value: parts[2]}, nil
}

// parseSort parses "field" or "field:desc" / "field:asc".
func parseSort(raw string) (query.Sort, error) {
	parts := strings.SplitN(raw, ":", 2)
	srt := query.Sort{Field: parts[0]}
	if len(parts) == 2 {
		switch strings.ToLower(parts[1]) {
		case "desc":
			srt.Desc = true
		case "asc":
		default:
			return query.Sort{}, fmt.Errorf("invalid sort direction %q", parts[1])
		}
	}
	return srt, nil
}

func isSQLite(path string) bool {
	for _, ext := range []string{".db", ".sqlite", ".sqlite3"} {
		if strings.HasSuffix(strings.ToLower(path), ext) {
			return true
		}
	}
	return false
}
