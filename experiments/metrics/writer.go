package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"othello/game"
	"othello/notation"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// AgentConfig describes one contestant of an experiment.
type AgentConfig struct {
	ID        int
	Kind      string // minimax, alphabeta or random
	Depth     int
	TimeLimit time.Duration
	Seed      uint64
}

type GameRecord struct {
	ID    int
	Black int // AgentConfig.ID
	White int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	dir string
}

// NewWriter creates <baseDir>/<name>/<timestamp> for the experiment's output.
func NewWriter(baseDir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	dir := filepath.Join(baseDir, name, timestamp)
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{dir: dir}, nil
}

func (w *Writer) Dir() string {
	return w.dir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "kind", "depth", "time_limit", "seed"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Kind,
			strconv.Itoa(config.Depth),
			config.TimeLimit.String(),
			strconv.FormatUint(config.Seed, 10),
		})
	}
	return w.writeCSV("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "black", "white", "starting_player", "winner", "black_tiles", "white_tiles",
		"moves", "passes", "start_time", "end_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Black),
			strconv.Itoa(record.White),
			record.StartingPlayer.String(),
			record.Winner.String(),
			strconv.Itoa(record.GameMetric.Black),
			strconv.Itoa(record.GameMetric.White),
			strconv.Itoa(record.TotalMoves),
			strconv.Itoa(record.Passes),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return w.writeCSV("games.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "move", "flips", "algorithm", "duration", "expanded",
		"terminal_cutoffs", "depth_cutoffs", "time_cutoffs", "value"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player.String(),
			notation.Format(record.Move),
			strconv.Itoa(record.Flips),
			record.Algorithm,
			record.Duration.String(),
			strconv.Itoa(record.Expanded),
			strconv.Itoa(record.TerminalCutoffs),
			strconv.Itoa(record.DepthCutoffs),
			strconv.Itoa(record.TimeCutoffs),
			strconv.FormatFloat(record.Value, 'f', -1, 64),
		})
	}
	return w.writeCSV("moves.csv", header, rows)
}

// WriteExpansionChart renders the mean number of expanded nodes per move for
// every agent as an HTML bar chart.
func (w *Writer) WriteExpansionChart(configs []AgentConfig, games []GameRecord, moves []MoveRecord) error {
	means := MeanExpansions(games, moves)

	names := make([]string, 0, len(configs))
	items := make([]opts.BarData, 0, len(configs))
	for _, config := range configs {
		names = append(names, fmt.Sprintf("%d:%s", config.ID, config.Kind))
		items = append(items, opts.BarData{Value: means[config.ID]})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Node expansions",
			Subtitle: "mean per move",
		}),
	)
	bar.SetXAxis(names).AddSeries("expanded", items)

	page := components.NewPage()
	page.AddCharts(bar)

	f, err := os.Create(filepath.Join(w.dir, "expansions.html"))
	if err != nil {
		return fmt.Errorf("failed to create expansion chart file: %w", err)
	}
	defer f.Close()

	err = page.Render(f)
	if err != nil {
		return fmt.Errorf("failed to render expansion chart: %w", err)
	}
	return nil
}

// MeanExpansions averages the expanded nodes of each agent's moves, keyed by
// AgentConfig.ID.
func MeanExpansions(games []GameRecord, moves []MoveRecord) map[int]float64 {
	seats := make(map[int]GameRecord, len(games))
	for _, g := range games {
		seats[g.ID] = g
	}

	totals := map[int]int{}
	counts := map[int]int{}
	for _, m := range moves {
		g, ok := seats[m.Game]
		if !ok {
			continue
		}
		id := g.White
		if m.Player == game.Black {
			id = g.Black
		}
		totals[id] += m.Expanded
		counts[id]++
	}

	means := make(map[int]float64, len(counts))
	for id, n := range counts {
		means[id] = float64(totals[id]) / float64(n)
	}
	return means
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
