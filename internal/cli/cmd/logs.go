package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/browse/internal/logging"
)

const defaultLogsLines = 50

var logsLines int

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show the end of the log file",
	Long: `Show the end of the log file.

File logging is enabled with logging.enable_file_log; older files are
rotated next to it and compressed.`,
	Args: cobra.NoArgs,
	RunE: runLogs,
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", defaultLogsLines, "number of lines to show")
}

func runLogs(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	path := logging.LogFilePath(app.Config.Logging.LogDir)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Subtle.Render("No log file at "+path))
		return nil
	}
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = f.Close() }()

	lines, err := tailLines(f, logsLines)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, line := range lines {
		_, _ = fmt.Fprintln(out, line)
	}
	return nil
}

// tailLines returns the last n lines of r.
func tailLines(r io.Reader, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	ring := make([]string, 0, n)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if len(ring) == n {
			ring = ring[1:]
		}
		ring = append(ring, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log file: %w", err)
	}
	return ring, nil
}
