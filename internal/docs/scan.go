package docs

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/anditko/docnav/internal/nav"
)

// Scan walks dir for markdown lessons and derives a two-level navigation
// tree: top-level directories become sections, their files become children.
// Files directly under dir become standalone links.
func Scan(dir string) ([]nav.Item, error) {
	groups := make(map[string][]nav.Item)
	var order []string
	var loose []nav.Item

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if name := d.Name(); name != "." && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".md") {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		item := nav.Item{
			ID:     rel,
			Label:  Title(path),
			Target: path,
		}
		parts := strings.Split(filepath.ToSlash(rel), "/")
		if len(parts) == 1 {
			loose = append(loose, item)
			return nil
		}
		section := parts[0]
		if _, ok := groups[section]; !ok {
			order = append(order, section)
		}
		groups[section] = append(groups[section], item)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}

	sort.Strings(order)
	sections := make([]nav.Item, 0, len(order)+len(loose))
	for _, name := range order {
		children := groups[name]
		sort.Slice(children, func(i, j int) bool { return children[i].ID < children[j].ID })
		sections = append(sections, nav.Item{
			ID:       name,
			Label:    labelFromName(name),
			Children: children,
		})
	}
	sort.Slice(loose, func(i, j int) bool { return loose[i].ID < loose[j].ID })
	sections = append(sections, loose...)
	return sections, nil
}

// Title extracts a display title from a markdown file: the first ATX heading
// when present, else the cleaned-up file name.
func Title(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return labelFromName(baseName(path))
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for i := 0; scanner.Scan() && i < 20; i++ {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			return strings.TrimSpace(strings.TrimLeft(line, "#"))
		}
	}
	return labelFromName(baseName(path))
}

func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

var labelCleaner = strings.NewReplacer("_", " ", "-", " ")

func labelFromName(name string) string {
	cleaned := strings.TrimSpace(labelCleaner.Replace(name))
	if cleaned == "" {
		return name
	}
	return cleaned
}
