package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"abook/internal/domain"
)

var fieldTypes = map[string]bool{"string": true, "emails": true, "list": true, "date": true}

// LoadFieldConfig reads an abookrc file. A missing file yields
// domain.DefaultFieldConfig.
func LoadFieldConfig(path string) (domain.FieldConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultFieldConfig(), nil
		}
		return domain.FieldConfig{}, &domain.IOError{Op: "read", Path: path, Err: err}
	}
	defer f.Close()

	cfg, err := ParseFieldConfig(f)
	return cfg, domain.WithFile(err, path)
}

// ParseFieldConfig reads `field` and `view` lines. Other abookrc commands
// (set, ...) are ignored. Without any view line the default views apply.
func ParseFieldConfig(r io.Reader) (domain.FieldConfig, error) {
	var (
		cfg    domain.FieldConfig
		lineNo int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		cmd, rest := line, ""
		if i := strings.IndexAny(line, " \t"); i >= 0 {
			cmd, rest = line[:i], line[i+1:]
		}
		switch strings.ToLower(cmd) {
		case "field":
			cf, err := parseFieldLine(rest, lineNo)
			if err != nil {
				return domain.FieldConfig{}, err
			}
			if cf.Name.IsStandard() {
				return domain.FieldConfig{}, domain.Errorf(lineNo, "field %q is a standard field", cf.Name)
			}
			if _, dup := cfg.CustomField(cf.Name); dup {
				return domain.FieldConfig{}, domain.Errorf(lineNo, "field %q declared twice", cf.Name)
			}
			cfg.Custom = append(cfg.Custom, cf)
		case "view":
			v, err := parseViewLine(rest, lineNo)
			if err != nil {
				return domain.FieldConfig{}, err
			}
			cfg.Views = mergeView(cfg.Views, v)
		}
	}
	if err := sc.Err(); err != nil {
		return domain.FieldConfig{}, &domain.IOError{Op: "read", Err: err}
	}
	if len(cfg.Views) == 0 {
		cfg.Views = domain.DefaultFieldConfig().Views
	}
	return cfg, nil
}

// parseFieldLine parses `<name> = <Label>[, <type>]`.
func parseFieldLine(s string, line int) (domain.CustomField, error) {
	name, def, ok := strings.Cut(s, "=")
	if !ok {
		return domain.CustomField{}, domain.Errorf(line, "field: expected <name> = <Label>")
	}
	f := domain.ParseField(name)
	if !f.Valid() {
		return domain.CustomField{}, domain.Errorf(line, "field: invalid name %q", strings.TrimSpace(name))
	}
	label, typ, _ := strings.Cut(def, ",")
	cf := domain.CustomField{
		Name:  f,
		Label: strings.TrimSpace(label),
		Type:  strings.ToLower(strings.TrimSpace(typ)),
	}
	if cf.Label == "" {
		return domain.CustomField{}, domain.Errorf(line, "field %q: empty label", f)
	}
	if cf.Type == "" {
		cf.Type = "string"
	}
	if !fieldTypes[cf.Type] {
		return domain.CustomField{}, domain.Errorf(line, "field %q: unknown type %q", f, cf.Type)
	}
	return cf, nil
}

// parseViewLine parses `<NAME> = f1, f2, ...`.
func parseViewLine(s string, line int) (domain.View, error) {
	name, list, ok := strings.Cut(s, "=")
	if !ok {
		return domain.View{}, domain.Errorf(line, "view: expected <NAME> = <field>, ...")
	}
	v := domain.View{Name: strings.ToUpper(strings.TrimSpace(name))}
	if v.Name == "" {
		return domain.View{}, domain.Errorf(line, "view: empty name")
	}
	for _, part := range strings.Split(list, ",") {
		f := domain.ParseField(part)
		if f == "" {
			continue
		}
		if !f.Valid() {
			return domain.View{}, domain.Errorf(line, "view %s: invalid field %q", v.Name, strings.TrimSpace(part))
		}
		v.Fields = append(v.Fields, f)
	}
	return v, nil
}

// mergeView appends v, or extends an earlier view of the same name.
func mergeView(views []domain.View, v domain.View) []domain.View {
	for i := range views {
		if views[i].Name == v.Name {
			views[i].Fields = append(views[i].Fields, v.Fields...)
			return views
		}
	}
	return append(views, v)
}

// String renders cfg back in abookrc syntax.
func String(cfg domain.FieldConfig) string {
	var sb strings.Builder
	for _, cf := range cfg.Custom {
		if cf.Type != "" && cf.Type != "string" {
			fmt.Fprintf(&sb, "field %s = %s, %s\n", cf.Name, cf.Label, cf.Type)
		} else {
			fmt.Fprintf(&sb, "field %s = %s\n", cf.Name, cf.Label)
		}
	}
	for _, v := range cfg.Views {
		names := make([]string, len(v.Fields))
		for i, f := range v.Fields {
			names[i] = string(f)
		}
		fmt.Fprintf(&sb, "view %s = %s\n", v.Name, strings.Join(names, ", "))
	}
	return sb.String()
}
