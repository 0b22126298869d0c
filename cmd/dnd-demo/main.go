package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// Color-sort demo for the dnd package: drag a row's handle to reorder the
// list, watch the other rows slide aside, release to commit or press esc to
// cancel mid-drag.

func main() {
	cfgPath := flag.String("config", "", "path to a config.toml (defaults to the user config dir)")
	flag.Parse()

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		fmt.Println("config error:", err)
		os.Exit(1)
	}

	if os.Getenv("DND_DEBUG") != "" {
		f, err := tea.LogToFile("dnd-demo.log", "dnd")
		if err != nil {
			fmt.Println("could not open log file:", err)
			os.Exit(1)
		}
		defer f.Close()
	}

	// Global zone manager for handle hit testing, so the model doesn't have
	// to pass a manager around.
	zone.NewGlobal()

	p := tea.NewProgram(newModel(cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error running program:", err)
		os.Exit(1)
	}
}
