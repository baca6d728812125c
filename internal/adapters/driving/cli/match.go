package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ivergara/skym/internal/core/domain"
)

// maxLineSize bounds a single candidate line.
const maxLineSize = 1024 * 1024

var errNoInput = errors.New("no input: pipe candidates on stdin or use --file")

var (
	inputFile   string
	interactive bool
	matchLimit  int
	engineName  string
	workers     int
	jsonOutput  bool
	showScores  bool
)

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&inputFile, "file", "f", "", "read candidates from a file instead of stdin (- for stdin)")
	flags.BoolVarP(&interactive, "interactive", "i", false, "pick results in an interactive picker")
	flags.IntVarP(&matchLimit, "limit", "n", 0, "maximum number of results (0 = no limit)")
	flags.StringVar(&engineName, "engine", "", "fuzzy engine: builtin, sahilm or fzf")
	flags.IntVar(&workers, "workers", 0, "goroutines used to rank large inputs")
	flags.BoolVar(&jsonOutput, "json", false, "output results as JSON")
	flags.BoolVar(&showScores, "scores", false, "prefix each result with its class and score")
}

func runMatch(cmd *cobra.Command, args []string) error {
	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	settings, err := effectiveSettings(cmd)
	if err != nil {
		return err
	}

	items, err := readCandidates(cmd)
	if err != nil {
		return err
	}

	matcher, err := deps.Matcher(settings)
	if err != nil {
		return fmt.Errorf("failed to create matcher: %w", err)
	}

	ctx := cmd.Context()
	if interactive {
		opts := domain.MatchOptions{Interactive: true, Limit: settings.Match.Limit}
		selected, err := matcher.FuzzyMatch(ctx, query, items, opts)
		if err != nil {
			return fmt.Errorf("match failed: %w", err)
		}
		return outputSelection(cmd, selected)
	}

	ranked, err := matcher.Rank(ctx, query, domain.NewCandidates(items))
	if err != nil {
		return fmt.Errorf("match failed: %w", err)
	}
	if limit := settings.Match.Limit; limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	switch {
	case jsonOutput:
		return outputRankedJSON(cmd, ranked)
	case showScores:
		return outputRankedScores(cmd, ranked)
	default:
		return outputSelection(cmd, ranked.Strings())
	}
}

// effectiveSettings layers explicitly set flags over the stored settings.
func effectiveSettings(cmd *cobra.Command) (domain.AppSettings, error) {
	svc, err := openSettings()
	if err != nil {
		return domain.AppSettings{}, err
	}
	stored, err := svc.Get()
	if err != nil {
		return domain.AppSettings{}, fmt.Errorf("failed to get settings: %w", err)
	}
	settings := *stored

	flags := cmd.Flags()
	if flags.Changed("engine") {
		engine := domain.Engine(engineName)
		if !engine.IsValid() {
			return domain.AppSettings{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedEngine, engineName)
		}
		settings.Match.Engine = engine
	}
	if flags.Changed("limit") {
		if matchLimit < 0 {
			return domain.AppSettings{}, fmt.Errorf("%w: limit must not be negative", domain.ErrInvalidInput)
		}
		settings.Match.Limit = matchLimit
	}
	if flags.Changed("workers") {
		if workers < 1 {
			return domain.AppSettings{}, fmt.Errorf("%w: workers must be at least 1", domain.ErrInvalidInput)
		}
		settings.Match.Workers = workers
	}
	return settings, nil
}

// readCandidates reads one candidate per line from --file or stdin.
func readCandidates(cmd *cobra.Command) ([]string, error) {
	if inputFile != "" && inputFile != "-" {
		f, err := os.Open(inputFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		return readLines(f)
	}

	in := cmd.InOrStdin()
	if isTerminal(in) {
		return nil, errNoInput
	}
	return readLines(in)
}

func readLines(r io.Reader) ([]string, error) {
	lines := make([]string, 0)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return lines, nil
}

// isTerminal reports whether r is an interactive terminal with nothing piped.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func outputSelection(cmd *cobra.Command, selected []string) error {
	if jsonOutput {
		data, err := json.Marshal(selected)
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	out := cmd.OutOrStdout()
	for _, s := range selected {
		fmt.Fprintln(out, s)
	}
	return nil
}

type rankedJSON struct {
	Text    string `json:"text"`
	Index   int    `json:"index"`
	Class   string `json:"class"`
	Score   int64  `json:"score"`
	Offsets []int  `json:"offsets"`
}

func outputRankedJSON(cmd *cobra.Command, ranked domain.RankedList) error {
	rows := make([]rankedJSON, len(ranked))
	for i, r := range ranked {
		offsets := r.Result.Offsets
		if offsets == nil {
			offsets = []int{}
		}
		rows[i] = rankedJSON{
			Text:    r.Candidate.Text,
			Index:   r.Candidate.Index,
			Class:   r.Result.Class.String(),
			Score:   r.Result.Score,
			Offsets: offsets,
		}
	}

	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func outputRankedScores(cmd *cobra.Command, ranked domain.RankedList) error {
	out := cmd.OutOrStdout()
	for _, r := range ranked {
		fmt.Fprintf(out, "%-9s %20d  %s\n", r.Result.Class, r.Result.Score, r.Candidate.Text)
	}
	return nil
}
