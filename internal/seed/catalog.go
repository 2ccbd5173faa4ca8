// Package seed loads the demo catalogue into empty stores.
package seed

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jacwu/toy-store/internal/domain"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Catalog is the demo data set. Toys reference toy types and comments
// reference toys by 1-based position in their list.
type Catalog struct {
	ToyTypes []ToyTypeEntry `yaml:"toy_types"`
	Toys     []ToyEntry     `yaml:"toys"`
	Comments []CommentEntry `yaml:"comments"`
	Users    []UserEntry    `yaml:"users"`
}

type ToyTypeEntry struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Icon        *string `yaml:"icon"`
}

type ToyEntry struct {
	Name              string  `yaml:"name"`
	Description       string  `yaml:"description"`
	DetailDescription string  `yaml:"detail_description"`
	Price             float64 `yaml:"price"`
	ToyType           int     `yaml:"toy_type"`
}

type CommentEntry struct {
	Toy       int       `yaml:"toy"`
	Author    string    `yaml:"author"`
	Content   string    `yaml:"content"`
	Rating    int       `yaml:"rating"`
	CreatedAt time.Time `yaml:"created_at"`
}

type UserEntry struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// Default returns the embedded demo catalogue.
func Default() (*Catalog, error) {
	return Parse(catalogYAML)
}

// Parse decodes a catalogue and checks its cross references.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("seed: parse catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	for i, t := range c.Toys {
		if t.ToyType < 1 || t.ToyType > len(c.ToyTypes) {
			return fmt.Errorf("toy %d (%s): toy_type %d out of range", i+1, t.Name, t.ToyType)
		}
		if t.Price <= 0 {
			return fmt.Errorf("toy %d (%s): price must be positive", i+1, t.Name)
		}
	}
	for i, cm := range c.Comments {
		if cm.Toy < 1 || cm.Toy > len(c.Toys) {
			return fmt.Errorf("comment %d: toy %d out of range", i+1, cm.Toy)
		}
		if !domain.ValidRating(cm.Rating) {
			return fmt.Errorf("comment %d: rating %d out of range", i+1, cm.Rating)
		}
	}
	for i, u := range c.Users {
		if u.Username == "" || u.Password == "" {
			return fmt.Errorf("user %d: username and password are required", i+1)
		}
	}
	return nil
}
