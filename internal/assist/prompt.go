package assist

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/aymerick/raymond"

	"github.com/AadarshMishraa/ADmyBrand/internal/faq"
)

//go:embed templates/prompt.hbs
var promptSource string

var promptTemplate = raymond.MustParse(promptSource)

// BuildContext flattens every entry of every category, in catalog order,
// into "Q: ...\nA: ..." blocks separated by a blank line.
func BuildContext(catalog *faq.Catalog) string {
	entries := catalog.All()
	blocks := make([]string, 0, len(entries))
	for _, e := range entries {
		blocks = append(blocks, "Q: "+e.Question+"\nA: "+e.Answer)
	}
	return strings.Join(blocks, "\n\n")
}

// BuildPrompt renders the full prompt sent to the provider.
func BuildPrompt(catalog *faq.Catalog, question string) (string, error) {
	out, err := promptTemplate.Exec(map[string]string{
		"context":  BuildContext(catalog),
		"question": question,
	})
	if err != nil {
		return "", fmt.Errorf("render assist prompt: %w", err)
	}
	return strings.TrimRight(out, "\n"), nil
}
