// Package assets provides embedded prompt templates.
package assets

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed prompts/*.md
var promptsFS embed.FS

// LoadPrompt returns the content of a prompt template by name.
// Override lookup order: project .docuflux/prompts/ > user ~/.docuflux/prompts/ > embedded.
func LoadPrompt(name string) (string, error) {
	filename := name + ".md"

	// 1. project-level override
	projectPath := filepath.Join(".docuflux", "prompts", filename)
	if data, err := os.ReadFile(projectPath); err == nil {
		return string(data), nil
	}

	// 2. user-level override
	if home, err := os.UserHomeDir(); err == nil {
		userPath := filepath.Join(home, ".docuflux", "prompts", filename)
		if data, err := os.ReadFile(userPath); err == nil {
			return string(data), nil
		}
	}

	// 3. embedded default
	data, err := promptsFS.ReadFile("prompts/" + filename)
	if err != nil {
		return "", fmt.Errorf("prompt %q not found", name)
	}
	return string(data), nil
}

// BuildPrompt loads a template and substitutes the title and collected inputs.
func BuildPrompt(name, title, inputs string) (string, error) {
	tmpl, err := LoadPrompt(name)
	if err != nil {
		return "", err
	}
	out := strings.ReplaceAll(tmpl, "{{TITLE}}", title)
	out = strings.ReplaceAll(out, "{{INPUTS}}", inputs)
	return out, nil
}
