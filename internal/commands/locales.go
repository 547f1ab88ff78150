package commands

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/spf13/cobra"
	"github.com/straydragon/sddcheck/internal/templates"
)

var localesCmd = &cobra.Command{
	Use:   "locales",
	Short: "List template roots, locales and baselines",
	Long:  "Show the locales discovered under each template root, the baseline each root is compared against, and how many templates every locale holds.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		chk := cfg.Checker()
		p := printer(cmd)

		for _, root := range []string{cfg.PrimaryRoot, cfg.LegacyRoot} {
			if root == "" {
				continue
			}
			p.Header(root)
			if !chk.RootExists(root) {
				p.Warning("not found")
				continue
			}
			locales, err := chk.DiscoverLocales(root)
			if err != nil {
				return fmt.Errorf("read template root %s: %w", root, err)
			}
			if len(locales) == 0 {
				p.Warning("no locale directories")
				continue
			}
			p.Detail("baseline", templates.ChooseBaseline(locales, cfg.BaselineLocale))
			p.Detail("locales", strings.Join(locales, ", "))
			for _, locale := range locales {
				files, err := templates.ListTemplates(os.DirFS(chk.Resolve(path.Join(root, locale))))
				if err != nil {
					return fmt.Errorf("list templates in %s: %w", path.Join(root, locale), err)
				}
				p.Detail(locale, fmt.Sprintf("%d templates", len(files)))
			}
		}
		return nil
	},
}
