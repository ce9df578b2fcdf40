// streampager pages a file or standard input in the terminal.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/kk-code-lab/streampager"
)

var (
	promptText  string
	lineNumbers bool
	noOverflow  bool
	staticMode  bool
	follow      bool
)

var rootCmd = &cobra.Command{
	Use:   "streampager [file]",
	Short: "Page a file or standard input",
	Long: `streampager displays a file, or whatever arrives on standard input,
one screenful at a time.

With --follow the file is watched for appended data, which streams into
the view as it is written (like tail -f, but scrollable). When output is
not a terminal the content is written through unchanged.

Keys:
  Up/Down, j/k       scroll one line
  PgUp/PgDn, Space   scroll one page
  Ctrl-U / Ctrl-D    scroll half a page
  g / G              jump to top / bottom
  Ctrl-L             toggle line numbers
  / and ?            search forward / backward, then n / p
  q, Ctrl-C          quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPager,

	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVarP(&promptText, "prompt", "p", "", "prompt text shown on the status line (default: file name)")
	rootCmd.Flags().BoolVarP(&lineNumbers, "line-numbers", "n", false, "show line numbers")
	rootCmd.Flags().BoolVar(&noOverflow, "no-overflow", false, "print directly and exit if the content fits the screen")
	rootCmd.Flags().BoolVar(&staticMode, "static", false, "read all input before paging")
	rootCmd.Flags().BoolVarP(&follow, "follow", "f", false, "watch the file and stream appended data")
}

func runPager(cmd *cobra.Command, args []string) error {
	// UTF-8 fallback so locale-less environments still render correctly.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	var ( // content source
		src  io.Reader
		path string
	)
	if len(args) == 1 {
		path = args[0]
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		src = f
	} else {
		if follow {
			return errors.New("--follow requires a file argument")
		}
		src = os.Stdin
	}

	opts := []streampager.Option{}
	switch {
	case promptText != "":
		opts = append(opts, streampager.WithPrompt(promptText))
	case path != "":
		opts = append(opts, streampager.WithPrompt(path))
	}
	if lineNumbers {
		opts = append(opts, streampager.WithLineNumberMode(streampager.LineNumbersYes))
	}
	if noOverflow {
		opts = append(opts, streampager.WithRunNoOverflow())
	}
	if staticMode && !follow {
		opts = append(opts, streampager.WithStaticOutput())
	}

	p := streampager.New(opts...)

	if staticMode && !follow {
		data, err := io.ReadAll(src)
		if err != nil {
			return err
		}
		if err := p.AppendText(string(data)); err != nil {
			return err
		}
		return p.Run()
	}

	go feed(p, src, path)
	return p.Run()
}

// feed streams src into the pager line by line. With --follow it then
// watches path for appended data until the pager exits.
func feed(p *streampager.Pager, src io.Reader, path string) {
	reader := bufio.NewReader(src)
	var carry string
	if !copyLines(p, reader, &carry, !follow) {
		return
	}
	if !follow {
		return
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		p.SendMessage(fmt.Sprintf("watch failed: %v", err))
		return
	}
	defer watcher.Close()
	if err := watcher.Add(path); err != nil {
		p.SendMessage(fmt.Sprintf("watch failed: %v", err))
		return
	}

	debounce := time.NewTimer(0)
	if !debounce.Stop() {
		<-debounce.C
	}
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Write) {
				// Debounce rapid writes
				debounce.Reset(50 * time.Millisecond)
			}
			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				p.SendMessage("file removed, no longer following")
				return
			}
		case <-debounce.C:
			if !copyLines(p, reader, &carry, false) {
				return
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			p.SendMessage(fmt.Sprintf("watch error: %v", err))
		}
	}
}

// copyLines drains all complete lines currently available from reader.
// A partial final line is held in carry until its newline arrives, or
// appended anyway when flush is set. It reports false when the pager
// has exited.
func copyLines(p *streampager.Pager, reader *bufio.Reader, carry *string, flush bool) bool {
	for {
		chunk, err := reader.ReadString('\n')
		if err == nil {
			line := *carry + strings.TrimSuffix(chunk, "\n")
			*carry = ""
			if p.AppendText(line) != nil {
				return false
			}
			continue
		}
		*carry += chunk
		if flush && *carry != "" {
			if p.AppendText(*carry) != nil {
				return false
			}
			*carry = ""
		}
		return true
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
