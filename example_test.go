package streampager_test

import (
	"fmt"

	"github.com/kk-code-lab/streampager"
)

// When output is not a terminal the pager degrades to a plain dump,
// so examples and shell pipelines behave like cat.
func Example() {
	p := streampager.New(
		streampager.WithStaticOutput(),
		streampager.WithLineNumberMode(streampager.LineNumbersEnabled),
	)
	if err := p.AppendText("alpha\nbeta\ngamma"); err != nil {
		fmt.Println("append:", err)
		return
	}
	if err := p.Run(); err != nil {
		fmt.Println("run:", err)
		return
	}
	// Output:
	// 1. alpha
	// 2. beta
	// 3. gamma
}
