package models

// CategoryConfig represents a category entry in the taxonomy YAML file
type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
	Verbs    []string `yaml:"verbs,omitempty"`
}

// CategoriesConfig represents the structure of the taxonomy YAML file.
// Order matters: earlier categories win score ties.
type CategoriesConfig struct {
	Categories []CategoryConfig `yaml:"categories"`
}
