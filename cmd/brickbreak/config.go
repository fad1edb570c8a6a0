package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/brickbreak/internal/config"
)

var flagDumpDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and validate configuration",
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration that play would use, after the search order
and --difficulty are applied. With no config files around this is the
embedded default. With --default the embedded document is printed
verbatim, comments included.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		if flagDumpDefault {
			_, err := os.Stdout.Write(config.DefaultYAML())
			return err
		}
		cfg, _, err := config.LoadWithPreset(flagConfig, flagDifficulty)
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("cannot encode config: %w", err)
		}
		_, err = os.Stdout.Write(out)
		return err
	},
}

var configCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a configuration file",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		cfg, err := config.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s: OK (arena %dx%d, %d bricks, tick %v)\n",
			args[0], cfg.Arena.Width, cfg.Arena.Height,
			cfg.Bricks.Rows*cfg.Bricks.Columns, cfg.Timing.TickInterval())
		return nil
	},
}

func init() {
	configDumpCmd.Flags().BoolVar(&flagDumpDefault, "default", false, "Print the embedded default file")
	configCmd.AddCommand(configDumpCmd)
	configCmd.AddCommand(configCheckCmd)
}
