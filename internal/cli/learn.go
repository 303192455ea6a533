package cli

import (
	"fmt"

	"github.com/datarium/datarium/internal/content"
)

// learn lists the educational topics, or renders one when its id is given.
func (a *App) learn(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Topics (use 'learn <topic>'):")
		for _, topic := range content.Topics() {
			fmt.Fprintf(a.out, "  %-14s %s\n", topic.ID, topic.Title)
		}
		return
	}

	rendered, err := content.RenderTopic(args[0], 80)
	if err != nil {
		fmt.Fprintln(a.out, "Unknown topic. Use 'learn' to list the available ones.")
		return
	}
	fmt.Fprint(a.out, rendered)
}
