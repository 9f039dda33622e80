package web

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"blackeagles/internal/model"

	"gopkg.in/yaml.v3"
)

// Dictionary holds flattened translation keys ("nav.home") per language.
type Dictionary struct {
	entries map[string]map[string]string
}

func LoadDictionary(fsys fs.FS, dir string) (*Dictionary, error) {
	files, err := fs.Glob(fsys, path.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}

	d := &Dictionary{entries: make(map[string]map[string]string)}
	for _, file := range files {
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, err
		}
		var tree map[string]interface{}
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		lang := strings.TrimSuffix(path.Base(file), ".yaml")
		flat := make(map[string]string)
		flatten("", tree, flat)
		d.entries[lang] = flat
	}
	if _, ok := d.entries[model.LangKO]; !ok {
		return nil, fmt.Errorf("missing %s dictionary", model.LangKO)
	}
	return d, nil
}

func flatten(prefix string, node map[string]interface{}, out map[string]string) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]interface{}:
			flatten(key, val, out)
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}

// T falls back to Korean, then to the key itself.
func (d *Dictionary) T(lang, key string) string {
	if v, ok := d.entries[model.NormalizeLang(lang)][key]; ok {
		return v
	}
	if v, ok := d.entries[model.LangKO][key]; ok {
		return v
	}
	return key
}
