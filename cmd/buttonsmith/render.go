package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thatcatcamp/buttonsmith/internal/codec"
	"github.com/thatcatcamp/buttonsmith/internal/config"
	"github.com/thatcatcamp/buttonsmith/internal/exporters"
	"github.com/thatcatcamp/buttonsmith/internal/markup"
	"github.com/thatcatcamp/buttonsmith/internal/style"
	"github.com/thatcatcamp/buttonsmith/internal/suggest"
	"github.com/thatcatcamp/buttonsmith/internal/themes"
)

// styleFlags are the ways a command can pick the style it works on. They
// layer in order: token, then preset, then prompt.
type styleFlags struct {
	token  string
	preset string
	prompt string
}

func (f *styleFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.token, "token", "", "start from a share token")
	cmd.Flags().StringVar(&f.preset, "preset", "", "apply a named preset")
	cmd.Flags().StringVar(&f.prompt, "prompt", "", "apply keyword suggestions from a description")
}

func (f *styleFlags) model(catalog *style.Catalog) (style.Model, error) {
	m := style.Default()
	if f.token != "" {
		decoded, err := codec.Decode(f.token)
		if err != nil {
			return m, err
		}
		m = decoded
	}
	if f.preset != "" {
		applied, err := catalog.Apply(m, f.preset)
		if err != nil {
			return m, err
		}
		m = applied
	}
	if f.prompt != "" {
		suggested, _, err := suggest.Apply(m, f.prompt)
		if err != nil {
			return m, err
		}
		m = suggested
	}
	return m, nil
}

var (
	renderStyle    styleFlags
	renderFormat   string
	renderSelector string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a button style",
	Long: `Render a button as css, html, document, token or one of the framework
formats (tailwind, bootstrap, react, vue).`,
	Example: `  buttonsmith render --preset neon --format css
  buttonsmith render --prompt "red delete button" --format tailwind`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}
		m, err := renderStyle.model(catalog)
		if err != nil {
			return err
		}
		selector := renderSelector
		if selector == "" {
			selector = config.GetString("render.selector")
		}
		out, err := renderAs(m, renderFormat, selector)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

// renderAs produces one output format for m
func renderAs(m style.Model, format, selector string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "css":
		css := themes.GenerateCSS(m, selector)
		if kf := themes.Keyframes(m.Resolve().Animation); kf != "" {
			css += "\n" + kf
		}
		return css, nil
	case "html":
		return markup.GenerateHTML(m, strings.TrimPrefix(selector, ".")), nil
	case "document":
		return markup.GenerateDocument(m, ""), nil
	case "token":
		if err := codec.Verify(m); err != nil {
			return "", err
		}
		return codec.Encode(m)
	default:
		return exporters.Export(format, m)
	}
}

// loadCatalog is the built-in presets plus presets.file when configured
func loadCatalog() (*style.Catalog, error) {
	path := config.GetString("presets.file")
	if path == "" {
		return style.NewCatalog(), nil
	}
	presets, err := style.LoadPresetFile(path)
	if err != nil {
		return nil, err
	}
	return style.NewCatalog(presets...), nil
}

var suggestCmd = &cobra.Command{
	Use:   "suggest <prompt>",
	Short: "Suggest a style from a description",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, s, err := suggest.Apply(style.Default(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if !s.Matched() {
			fmt.Fprintln(os.Stderr, "No keywords matched; style unchanged")
		} else {
			fmt.Fprintf(out, "Matched: %s\n", strings.Join(s.Rules, ", "))
			fmt.Fprintf(out, "Fields:  %s\n", strings.Join(s.Patch.Fields(), ", "))
		}
		token, err := codec.Encode(m)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Token:   %s\n", token)
		return nil
	},
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List available presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}
		for _, p := range catalog.List() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", p.Name, strings.Join(p.Patch.Fields(), " "))
		}
		return nil
	},
}

var iconsCmd = &cobra.Command{
	Use:   "icons",
	Short: "List library icons",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, key := range style.Icons() {
			fmt.Fprintln(cmd.OutOrStdout(), key)
		}
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode <token>",
	Short: "Print the style inside a share token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := codec.Decode(args[0])
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(m)
	},
}

func init() {
	renderStyle.register(renderCmd)
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "css", "css|html|document|token|"+strings.Join(exporters.Formats(), "|"))
	renderCmd.Flags().StringVar(&renderSelector, "selector", "", "CSS selector (default render.selector)")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(iconsCmd)
	rootCmd.AddCommand(decodeCmd)
}
