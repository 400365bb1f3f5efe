package assets

import (
	"errors"
	"html/template"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		styleName string
		wantErr   error
	}{
		{name: "default style", styleName: DefaultStyleName},
		{name: "plain style", styleName: "plain"},
		{name: "nonexistent style", styleName: "nonexistent", wantErr: ErrStyleNotFound},
		{name: "valid name with hyphen", styleName: "my-style", wantErr: ErrStyleNotFound},
		{name: "empty name", styleName: "", wantErr: ErrInvalidAssetName},
		{name: "path traversal", styleName: "../secret", wantErr: ErrInvalidAssetName},
		{name: "absolute path", styleName: "/etc/passwd", wantErr: ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			content, err := LoadStyle(tt.styleName)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadStyle(%q) error = %v, want %v", tt.styleName, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadStyle(%q) unexpected error: %v", tt.styleName, err)
			}
			if content == "" {
				t.Errorf("LoadStyle(%q) returned empty content", tt.styleName)
			}
		})
	}
}

func TestLoadStyle_DefaultCoversTokenClasses(t *testing.T) {
	t.Parallel()

	css, err := LoadStyle(DefaultStyleName)
	if err != nil {
		t.Fatalf("LoadStyle() error = %v", err)
	}

	for _, want := range []string{
		"prefers-color-scheme: dark",
		".tok-comment", ".tok-string", ".tok-keyword", ".tok-literal", ".tok-number",
		".searchable-text",
		"pre code",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("default style should contain %q", want)
		}
	}
	if strings.Contains(css, "</") {
		t.Error("default style must not contain closing-tag sequences")
	}
}

func TestLoadTemplate_Document(t *testing.T) {
	t.Parallel()

	content, err := LoadTemplate(DocumentTemplateName)
	if err != nil {
		t.Fatalf("LoadTemplate(%q) error = %v", DocumentTemplateName, err)
	}

	for _, want := range []string{
		"<!doctype html>",
		`<meta charset="utf-8">`,
		`name="viewport"`,
		"<title>{{.Title}}</title>",
		`content="{{.Description}}"`,
		`content="{{.Keywords}}"`,
		"<style>{{.CSS}}</style>",
		"{{.Body}}",
		`class="searchable-text"`,
		"{{.SearchableText}}",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("document template should contain %q", want)
		}
	}

	if _, err := template.New("document").Parse(content); err != nil {
		t.Errorf("document template does not parse: %v", err)
	}
}

func TestLoadTemplate_Errors(t *testing.T) {
	t.Parallel()

	if _, err := LoadTemplate("nonexistent"); !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("LoadTemplate(nonexistent) error = %v, want ErrTemplateNotFound", err)
	}
	if _, err := LoadTemplate("../document"); !errors.Is(err, ErrInvalidAssetName) {
		t.Errorf("LoadTemplate(../document) error = %v, want ErrInvalidAssetName", err)
	}
}

func TestStyleNames(t *testing.T) {
	t.Parallel()

	want := []string{"default", "plain"}
	if diff := cmp.Diff(want, StyleNames()); diff != "" {
		t.Errorf("StyleNames() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuiltinStyles_ColorSchemes(t *testing.T) {
	t.Parallel()

	for _, name := range StyleNames() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			css, err := LoadStyle(name)
			if err != nil {
				t.Fatalf("LoadStyle(%q) error = %v", name, err)
			}
			for _, want := range []string{"@media (prefers-color-scheme: dark)", ".tok-keyword", ".searchable-text"} {
				if !strings.Contains(css, want) {
					t.Errorf("style %q missing %q", name, want)
				}
			}
		})
	}
}
