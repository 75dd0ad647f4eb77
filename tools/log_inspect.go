package main

import (
	"chat-sim/projection"
	"chat-sim/storage"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/afero"
)

func main() {
	basePath := flag.String("log", storage.DefaultBaseLogPath, "Path to the global chat log")
	logsDir := flag.String("dir", storage.DefaultLogsDirectory, "Directory holding per-conversation logs")
	conversation := flag.String("conversation", "", "Conversation to inspect, global log when empty")
	flag.Parse()

	path := *basePath
	if *conversation != "" {
		path = storage.ConversationFilename(*logsDir, *conversation)
	}

	// Nothing is created or written, the tool only reads.
	lines, err := readLines(afero.NewReadOnlyFs(afero.NewOsFs()), path)
	if err != nil {
		log.Fatal("Error while reading log: ", err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Line", "Time", "Conversation", "Sender", "Text", "Fields"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for i, line := range lines {
		// more than 4 fields means the text carried a separator
		fields := len(strings.Split(strings.TrimRight(line, "\n"), storage.Separator))
		record, err := projection.ParseLine(line)
		if err != nil {
			table.Append([]string{fmt.Sprint(i + 1), "-", "-", "-", strings.TrimSpace(line), fmt.Sprint(fields)})
			continue
		}
		table.Append([]string{
			fmt.Sprint(i + 1),
			record.Timestamp.Format("15:04:05"),
			record.Conversation,
			record.Sender,
			record.Text,
			fmt.Sprint(fields),
		})
	}
	table.Render()
}

// readLines returns no lines for a log that was never written.
func readLines(afs afero.Fs, path string) ([]string, error) {
	f, err := afs.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return storage.ReadLines(f)
}
