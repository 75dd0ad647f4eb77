// Package report is the offline pass over the global chat log.
// It reads the log file only, never the live Chat.
package report

import (
	errs "chat-sim/errors"
	"chat-sim/projection"
	"chat-sim/storage"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/spf13/afero"
)

const (
	DefaultFrequencyChart = "message_frequency.png"
	DefaultTimelineChart  = "activity_timeline.png"

	displayLayout = "2006-01-02 15:04:05"
)

type Config struct {
	FrequencyChart string
	TimelineChart  string
}

func DefaultConfig() Config {
	return Config{
		FrequencyChart: DefaultFrequencyChart,
		TimelineChart:  DefaultTimelineChart,
	}
}

// Summary describes what a report run produced.
type Summary struct {
	Records        int
	Skipped        int
	Frequency      []projection.SenderFrequency
	FrequencyChart string
	TimelineChart  string
}

type Reporter struct {
	fs  afero.Fs
	cfg Config
	log *slog.Logger
}

func NewReporter(fs afero.Fs, cfg Config, log *slog.Logger) *Reporter {
	if cfg.FrequencyChart == "" {
		cfg.FrequencyChart = DefaultFrequencyChart
	}
	if cfg.TimelineChart == "" {
		cfg.TimelineChart = DefaultTimelineChart
	}
	return &Reporter{fs: fs, cfg: cfg, log: log}
}

// Run loads the global log, prints the history and per-sender frequency
// tables to w, then renders both charts.
func (r *Reporter) Run(w io.Writer, globalLogPath string) (Summary, error) {
	exists, err := afero.Exists(r.fs, globalLogPath)
	if err != nil {
		return Summary{}, fmt.Errorf("stat %s: %w", globalLogPath, err)
	}
	if !exists {
		fmt.Fprintln(w, "\nNo log file found yet. Send some messages first.")
		return Summary{}, errs.ErrNoLogFile
	}

	lines, err := r.readLines(globalLogPath)
	if err != nil {
		return Summary{}, err
	}
	records, failures := projection.ParseLines(lines)
	for _, failure := range failures {
		r.log.Warn("Skipping log line", "file", globalLogPath, "error", failure)
	}

	fmt.Fprintln(w, "\n=== CHAT HISTORY ===")
	renderHistory(w, records)

	frequency := projection.Frequency(records)
	fmt.Fprintln(w, "\n=== MESSAGE FREQUENCY PER USER ===")
	renderFrequency(w, frequency)

	if err = r.writeChart(r.cfg.FrequencyChart, func(out io.Writer) error {
		return renderFrequencyChart(out, frequency)
	}); err != nil {
		return Summary{}, err
	}
	fmt.Fprintf(w, "\nMessage frequency chart saved as: %s\n", r.cfg.FrequencyChart)

	timeline := projection.NewTimeline(records)
	if err = r.writeChart(r.cfg.TimelineChart, func(out io.Writer) error {
		return renderTimelineChart(out, timeline)
	}); err != nil {
		return Summary{}, err
	}
	fmt.Fprintf(w, "Activity timeline chart saved as: %s\n", r.cfg.TimelineChart)

	r.log.Debug("Report generated", "records", len(records), "skipped", len(failures))
	return Summary{
		Records:        len(records),
		Skipped:        len(failures),
		Frequency:      frequency,
		FrequencyChart: r.cfg.FrequencyChart,
		TimelineChart:  r.cfg.TimelineChart,
	}, nil
}

func (r *Reporter) readLines(path string) ([]string, error) {
	f, err := r.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open read %s: %w", path, err)
	}
	defer func(f afero.File) {
		_ = f.Close()
	}(f)
	return storage.ReadLines(f)
}

func (r *Reporter) writeChart(path string, render func(io.Writer) error) error {
	f, err := r.fs.Create(path)
	if err != nil {
		return fmt.Errorf("create chart %s: %w", path, err)
	}
	if err = render(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("render chart %s: %w", path, err)
	}
	return f.Close()
}

func renderHistory(w io.Writer, records []projection.Record) {
	table := newTable(w, []string{"#", "Timestamp", "Conversation", "Sender", "Text"})
	table.AppendBulk(lo.Map(records, func(rec projection.Record, i int) []string {
		return []string{
			strconv.Itoa(i),
			rec.Timestamp.Format(displayLayout),
			rec.Conversation,
			rec.Sender,
			rec.Text,
		}
	}))
	table.Render()
}

func renderFrequency(w io.Writer, frequency []projection.SenderFrequency) {
	table := newTable(w, []string{"Sender", "Messages"})
	table.AppendBulk(lo.Map(frequency, func(f projection.SenderFrequency, _ int) []string {
		return []string{f.Sender, strconv.Itoa(f.Count)}
	}))
	table.Render()
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	return table
}
