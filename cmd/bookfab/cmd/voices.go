package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/msto63/bookfab/internal/app"
	"github.com/msto63/bookfab/internal/voice"
	"github.com/msto63/bookfab/pkg/core/config"
	"github.com/msto63/bookfab/pkg/core/logging"
	"github.com/spf13/cobra"
)

// voicesOptions are the flags of the voices command
type voicesOptions struct {
	Query     string
	Language  string
	Gender    string
	Age       string
	Tags      []string
	NoAugment bool
	Output    string
}

var voicesOpts voicesOptions

var voicesCmd = &cobra.Command{
	Use:   "voices",
	Short: "List and filter the voice catalog",
	Long: `Prints the voice catalog filtered like the voice dialog does.

Examples:
  bookfab voices
  bookfab voices --query amelia
  bookfab voices --language Japanese --gender female
  bookfab voices --tag Calm --tag Narration --output yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			printError("loading config", err)
			return err
		}
		logger := logging.NewLogger(loggerConfig(cfg))
		return runVoices(cmd.OutOrStdout(), cfg.Catalog, voicesOpts, logger)
	},
}

func init() {
	rootCmd.AddCommand(voicesCmd)

	voicesCmd.Flags().StringVarP(&voicesOpts.Query, "query", "q", "", "search name, language or tag")
	voicesCmd.Flags().StringVar(&voicesOpts.Language, "language", "", "exact language")
	voicesCmd.Flags().StringVar(&voicesOpts.Gender, "gender", "", "male or female")
	voicesCmd.Flags().StringVar(&voicesOpts.Age, "age", "", "exact age category")
	voicesCmd.Flags().StringSliceVar(&voicesOpts.Tags, "tag", nil, "required tag (repeatable)")
	voicesCmd.Flags().BoolVar(&voicesOpts.NoAugment, "no-augment", false, "skip the Japanese supplement")
	voicesCmd.Flags().StringVarP(&voicesOpts.Output, "output", "o", "table", "output format: table or yaml")
}

func runVoices(out io.Writer, catalogCfg config.CatalogConfig, opts voicesOptions, logger *logging.Logger) error {
	gender, err := voice.ParseGender(opts.Gender)
	if err != nil {
		return err
	}
	if opts.Output != "table" && opts.Output != "yaml" {
		return fmt.Errorf("unknown output format %q (want table or yaml)", opts.Output)
	}

	if opts.NoAugment {
		off := false
		catalogCfg.Augment = &off
	}
	catalog, source, err := app.LoadCatalog(catalogCfg)
	if err != nil {
		return err
	}

	criteria := voice.Criteria{
		Query:    opts.Query,
		Language: opts.Language,
		Gender:   gender,
		Age:      opts.Age,
	}
	for _, t := range opts.Tags {
		if !criteria.HasTag(t) {
			criteria = criteria.ToggleTag(t)
		}
	}

	voices := voice.Filter(catalog, criteria)
	logger.Debug("catalog filtered", "catalog", source, "total", len(catalog), "matches", len(voices))

	if len(voices) == 0 {
		_, err := fmt.Fprintln(out, "No voices found.")
		return err
	}

	if opts.Output == "yaml" {
		data, err := voice.MarshalCatalog(voices)
		if err != nil {
			return fmt.Errorf("encode voices: %w", err)
		}
		_, err = out.Write(data)
		return err
	}

	_, err = fmt.Fprintln(out, renderVoiceTable(voices))
	return err
}

func renderVoiceTable(voices []voice.Voice) string {
	rows := make([][]string, 0, len(voices))
	for _, v := range voices {
		rows = append(rows, []string{
			v.ID, v.Name, string(v.Gender), v.Age, v.Language, strings.Join(v.Tags, ", "),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "GENDER", "AGE", "LANGUAGE", "TAGS").
		Rows(rows...).
		Render()
}
