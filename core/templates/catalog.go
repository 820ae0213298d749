// ABOUTME: Deck template catalog loaded from YAML and instantiated into slides
// ABOUTME: Ships embedded defaults; each instantiation gets fresh slide IDs

package templates

import (
	_ "embed"
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"magicmuse-api/core/domain"
	coreerrors "magicmuse-api/core/errors"
)

//go:embed templates.yaml
var defaultCatalogYAML []byte

// TemplateSlide is one slide declaration inside a template.
type TemplateSlide struct {
	Title         string `yaml:"title"`
	Type          string `yaml:"type"`
	Description   string `yaml:"description"`
	IncludeVisual bool   `yaml:"includeVisual"`
	VisualType    string `yaml:"visualType"`
	Required      bool   `yaml:"required"`
}

// Template is a named deck structure.
type Template struct {
	ID          string          `yaml:"id"`
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	Slides      []TemplateSlide `yaml:"slides"`
}

// Catalog holds the available deck templates in declaration order.
type Catalog struct {
	templates []Template
	byID      map[string]int
}

// LoadCatalog parses a YAML template catalog.
func LoadCatalog(data []byte) (*Catalog, error) {
	var doc struct {
		Templates []Template `yaml:"templates"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid template catalog: %w", err)
	}
	if len(doc.Templates) == 0 {
		return nil, fmt.Errorf("template catalog declares no templates")
	}

	catalog := &Catalog{byID: make(map[string]int, len(doc.Templates))}
	for i, tpl := range doc.Templates {
		if tpl.ID == "" {
			return nil, fmt.Errorf("template %d has no id", i)
		}
		if _, dup := catalog.byID[tpl.ID]; dup {
			return nil, fmt.Errorf("duplicate template id %q", tpl.ID)
		}
		if len(tpl.Slides) == 0 {
			return nil, fmt.Errorf("template %q declares no slides", tpl.ID)
		}
		for _, slide := range tpl.Slides {
			if slide.IncludeVisual && !domain.VisualType(slide.VisualType).Valid() {
				return nil, fmt.Errorf("template %q slide %q has invalid visual type %q", tpl.ID, slide.Title, slide.VisualType)
			}
		}
		catalog.byID[tpl.ID] = i
		catalog.templates = append(catalog.templates, tpl)
	}
	return catalog, nil
}

// DefaultCatalog loads the embedded built-in templates.
func DefaultCatalog() (*Catalog, error) {
	return LoadCatalog(defaultCatalogYAML)
}

// List returns all templates in declaration order.
func (c *Catalog) List() []Template {
	return append([]Template(nil), c.templates...)
}

// Get returns one template by ID.
func (c *Catalog) Get(id string) (Template, error) {
	idx, ok := c.byID[id]
	if !ok {
		return Template{}, &coreerrors.NotFoundError{Resource: "template", ID: id}
	}
	return c.templates[idx], nil
}

// Instantiate builds the slide structure for a template, assigning a fresh
// unique ID to every slide.
func (c *Catalog) Instantiate(id string) ([]domain.Slide, error) {
	tpl, err := c.Get(id)
	if err != nil {
		return nil, err
	}
	slides := make([]domain.Slide, 0, len(tpl.Slides))
	for _, ts := range tpl.Slides {
		slides = append(slides, domain.Slide{
			ID:            uuid.New().String(),
			Title:         ts.Title,
			Type:          ts.Type,
			Description:   ts.Description,
			IncludeVisual: ts.IncludeVisual,
			VisualType:    domain.VisualType(ts.VisualType),
			IsRequired:    ts.Required,
		})
	}
	return slides, nil
}
