package song

import (
	"os"
	"strconv"
	"strings"

	"github.com/ADAning/animal-well-flute-sub000/model"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type simplifiedFile struct {
	Name        string   `yaml:"name"`
	BPM         int      `yaml:"bpm"`
	Jianpu      []string `yaml:"jianpu"`
	Relative    float64  `yaml:"relative"`
	Description string   `yaml:"description"`
}

// SaveSimplified writes a song as YAML with every bar rendered back to
// its token-string form.
func SaveSimplified(s model.Song, path string) error {
	jianpu := make([]string, 0, len(s.Jianpu))
	for _, bar := range s.Jianpu {
		jianpu = append(jianpu, BarToString(bar))
	}

	data, err := yaml.Marshal(simplifiedFile{
		Name:        s.Name,
		BPM:         s.BPM,
		Jianpu:      jianpu,
		Relative:    s.Offset,
		Description: s.Description,
	})
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	logrus.Infof("saved song %q in simplified format to %v", s.Name, path)
	return nil
}

// BarToString renders one bar. Top-level members are space separated;
// nested groups keep parentheses with comma separators.
func BarToString(bar model.Element) string {
	if bar.Kind != model.KindGroup {
		return ElementToString(bar)
	}
	parts := make([]string, 0, len(bar.Items))
	for _, item := range bar.Items {
		parts = append(parts, ElementToString(item))
	}
	return strings.Join(parts, " ")
}

func ElementToString(el model.Element) string {
	switch el.Kind {
	case model.KindScalar:
		return strconv.FormatFloat(el.Number, 'f', -1, 64)
	case model.KindLabel:
		return el.Text
	case model.KindGroup:
		parts := make([]string, 0, len(el.Items))
		for _, item := range el.Items {
			parts = append(parts, ElementToString(item))
		}
		return "(" + strings.Join(parts, ",") + ")"
	default:
		return ""
	}
}
