// Package streampager is an embeddable terminal pager for live text.
//
// A host application streams text into a [Pager] while the user scrolls,
// searches and pages through it in a terminal viewport. Streaming never
// blocks on the display: appends are queued, the visible region catches
// up on the next repaint, and no appended line is ever lost.
//
// # Quick Start
//
//	p := streampager.New(
//		streampager.WithPrompt("server log"),
//		streampager.WithLineNumberMode(streampager.LineNumbersYes),
//	)
//
//	go func() {
//		for line := range producedLines {
//			if err := p.AppendText(line + "\n"); err != nil {
//				return // user quit the pager
//			}
//		}
//	}()
//
//	if err := p.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// Run blocks until the user quits (q or Ctrl-C), the host calls
// [Pager.Quit], or a fatal terminal error occurs. The terminal is
// restored to its original mode on every return path.
//
// # Modes
//
// The default dynamic mode is a long-lived interactive session that keeps
// reacting to streamed events. [WithStaticOutput] selects a one-shot
// render instead: content present at Run time is shown and navigable, but
// later events are ignored. In static mode the pager also short-circuits
// entirely — printing the content once and returning — when the output is
// not an interactive terminal, or when the content fits on a single
// screen and [WithRunNoOverflow] was requested.
//
// # Keys
//
// Arrow keys, j/k and the mouse wheel scroll; Space, PgUp/PgDn page;
// Ctrl-U/Ctrl-D move half a page; g/G jump to the ends. A typed number
// prefixes the next match motion as a repeat count. / and ? open a
// forward or reverse search, n/p step through matches relative to the
// search direction, and Ctrl-L toggles line numbers unless the host
// pinned them.
package streampager
