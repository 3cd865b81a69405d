package commands

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/agiangrant/trellis"
	"github.com/agiangrant/trellis/theme"
)

const defaultWindowJSON = `{
	"Title": "Trellis",
	"Width": 640,
	"Height": 480,
	"MenuBar": {"Items": [
		{"Text": "File", "Items": [{"Text": "Quit", "ID": "quit"}]}
	]},
	"Body": {"Controls": [
		{"Type": "VerticalContainer", "ID": "main", "Expand": "Both", "Controls": [
			{"Type": "Text", "ID": "greeting", "Text": "Hello from trellis"},
			{"Type": "TextButton", "ID": "ok", "Text": "OK"}
		]}
	]}
}
`

// Init implements the 'trellis init' command
func Init(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	dir := fs.String("dir", ".", "Project directory")
	force := fs.Bool("force", false, "Overwrite existing files")
	fs.Parse(args)

	configPath := filepath.Join(*dir, defaultConfigPath)
	if _, err := os.Stat(configPath); err == nil && !*force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", configPath)
	}
	if err := os.MkdirAll(*dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", *dir, err)
	}

	config := trellis.DefaultAppConfig()
	config.Window = "main.json"
	config.Theme = "theme.toml"
	if err := trellis.SaveConfig(configPath, config); err != nil {
		return err
	}
	fmt.Printf("  ✓ Created %s\n", configPath)

	windowPath := filepath.Join(*dir, config.Window)
	if _, err := os.Stat(windowPath); os.IsNotExist(err) || *force {
		if err := os.WriteFile(windowPath, []byte(defaultWindowJSON), 0644); err != nil {
			return fmt.Errorf("failed to create %s: %w", config.Window, err)
		}
		fmt.Printf("  ✓ Created %s\n", windowPath)
	}

	themePath := filepath.Join(*dir, config.Theme)
	if _, err := os.Stat(themePath); os.IsNotExist(err) || *force {
		if err := theme.New().Save(themePath); err != nil {
			return err
		}
		fmt.Printf("  ✓ Created %s\n", themePath)
	}

	fmt.Println("\nRun 'trellis view' to open the window.")
	return nil
}
