package main

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/skyclimb/internal/config"
)

var (
	flagConfigDefaults bool
	flagConfigSave     string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective course config",
	Long: `Print the course configuration after loading files and applying the
difficulty preset. Use --defaults for the built-in file, or --save to write
the effective config somewhere you can edit it.

Examples:
  skyclimb config --difficulty hard
  skyclimb config --defaults > skyclimb.yaml
  skyclimb config --save ~/.skyclimb/configs/skyclimb.yaml`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in default config")
	configCmd.Flags().StringVar(&flagConfigSave, "save", "", "Write the effective config to this path")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagConfigDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := loadClimbConfig()
	exitOnErr("loading config", err)

	if flagConfigSave != "" {
		exitOnErr("saving config", config.Save(flagConfigSave, cfg))
		return
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	exitOnErr("encoding config", enc.Encode(cfg))
	exitOnErr("encoding config", enc.Close())
}
