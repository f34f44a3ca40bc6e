package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/brochure-dev/brochure/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Set up a new brochure project interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, scaffold, err := config.RunWizard()
		if err != nil {
			return err
		}

		if scaffold {
			written, err := scaffoldContent(cfg.DataDir)
			if err != nil {
				return fmt.Errorf("scaffolding content: %w", err)
			}
			for _, name := range written {
				fmt.Printf("Created %s\n", filepath.Join(cfg.DataDir, name))
			}
		}

		fmt.Println("\nNext steps:")
		fmt.Printf("  edit the documents in %s/\n", cfg.DataDir)
		fmt.Println("  brochure serve --watch")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

// starterDocs are the example content documents written by `brochure
// init`. One document per section; existing files are never overwritten.
var starterDocs = map[string]string{
	"site.json": `{
  "name": "Bella Vista",
  "tagline": "Honest food, warm welcome",
  "subtitle": "Family-run since 1987",
  "copyright": "© Bella Vista. All rights reserved."
}
`,
	"about.json": `{
  "title": "Our Story",
  "paragraphs": [
    "Bella Vista started as a single wood-fired oven and four tables.",
    "Three decades later we still cook from the same recipes, with produce from the market across the street."
  ],
  "features": [
    {"icon": "🌿", "text": "Seasonal ingredients"},
    {"icon": "🔥", "text": "Wood-fired oven"},
    {"icon": "👨‍👩‍👧", "text": "Family run"}
  ]
}
`,
	"menu.json": `{
  "title": "Our Menu",
  "categories": [
    {
      "name": "Starters",
      "items": [
        {"name": "Bruschetta", "description": "Grilled bread, tomato, basil"},
        {"name": "Soup of the day", "description": "Ask your server"}
      ]
    },
    {
      "name": "Mains",
      "items": [
        {"name": "Margherita", "description": "Tomato, mozzarella, basil"},
        {"name": "Risotto ai funghi", "description": "Porcini, parmesan"}
      ]
    }
  ],
  "note": "Please tell us about any allergies — most dishes can be adapted."
}
`,
	"services.json": `{
  "title": "Services",
  "items": [
    {"icon": "🎉", "name": "Private events", "description": "The back room seats up to 40 guests."},
    {"icon": "🚚", "name": "Catering", "description": "Weddings, offices, and everything in between."},
    {"icon": "🎁", "name": "Gift cards", "description": "Available at the counter in any amount."}
  ]
}
`,
	"contact.json": `{
  "title": "Contact Us",
  "details": {
    "phone": {"icon": "📞", "label": "Phone", "value": "+1 555 0134", "link": "tel:+15550134"},
    "email": {"icon": "✉️", "label": "Email", "value": "hello@bellavista.example", "link": "mailto:hello@bellavista.example"},
    "address": {"icon": "📍", "label": "Address", "value": "12 Harbour Street"},
    "hours": {"icon": "🕐", "label": "Hours", "value": "Tue–Sun, 12:00–22:00"}
  },
  "cta_text": "Tables go fast on weekends — call ahead.",
  "cta_button": "Book a table"
}
`,
}

// scaffoldContent writes the starter documents into dir, skipping any that
// already exist. It returns the names of the files it created.
func scaffoldContent(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	var written []string
	for _, name := range []string{"site.json", "about.json", "menu.json", "services.json", "contact.json"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := os.WriteFile(path, []byte(starterDocs[name]), 0o644); err != nil {
			return nil, err
		}
		written = append(written, name)
	}
	return written, nil
}
