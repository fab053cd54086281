package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xkilldash9x/styletree/internal/config"
	"github.com/xkilldash9x/styletree/internal/dom"
	"github.com/xkilldash9x/styletree/internal/dump"
	"github.com/xkilldash9x/styletree/internal/observability"
	"github.com/xkilldash9x/styletree/pkg/styletree"
)

var (
	markupFile  string
	cssFile     string
	lenientFlag bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Parse a markup file and a stylesheet file and print the styled tree.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		logger := observability.GetLogger().With(
			zap.String("run_id", uuid.NewString()),
			zap.String("markup", markupFile),
			zap.String("css", cssFile),
		)

		markupText, err := readInput(markupFile, cfg.Render.MaxInputBytes)
		if err != nil {
			return err
		}
		cssText, err := readInput(cssFile, cfg.Render.MaxInputBytes)
		if err != nil {
			return err
		}

		lenient := lenientFlag || cfg.Render.Lenient
		root, err := parseMarkupInput(markupText, lenient)
		if err != nil {
			logger.Error("Markup rejected", zap.Error(err))
			return err
		}

		sheet, err := styletree.ParseStylesheet(cssText)
		if err != nil {
			logger.Error("Stylesheet rejected", zap.Error(err))
			return err
		}

		styled := styletree.ResolveStyles(root, sheet)
		logger.Debug("Styles resolved",
			zap.Int("rules", len(sheet.Rules)),
			zap.Bool("lenient", lenient),
		)

		fmt.Fprint(cmd.OutOrStdout(), dump.Styled(styled))
		return nil
	},
}

func parseMarkupInput(text string, lenient bool) (*styletree.Node, error) {
	if lenient {
		return dom.FromHTML(strings.NewReader(text))
	}
	return styletree.ParseMarkup(text)
}

func readInput(path string, maxBytes int64) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxBytes))
	if err != nil {
		return "", fmt.Errorf("read input %s: %w", path, err)
	}
	return string(data), nil
}

func init() {
	renderCmd.Flags().StringVar(&markupFile, "markup", "", "path to the markup input")
	renderCmd.Flags().StringVar(&cssFile, "css", "", "path to the stylesheet input")
	renderCmd.Flags().BoolVar(&lenientFlag, "lenient", false, "use the error-tolerant HTML importer for the markup input")
	_ = renderCmd.MarkFlagRequired("markup")
	_ = renderCmd.MarkFlagRequired("css")
}
