package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"docwright/common"
	"docwright/label"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	// ReferencesConfig holds reference text templates per label kind,
	// templates are executed with label.Values.
	ReferencesConfig struct {
		Placeholder string `yaml:"placeholder" validate:"required"`
		Section     string `yaml:"section_template" validate:"required"`
		Table       string `yaml:"table_template" validate:"required"`
		Figure      string `yaml:"figure_template" validate:"required"`
		Subfigure   string `yaml:"subfigure_template" validate:"required"`
		Equation    string `yaml:"equation_template" validate:"required"`
		Code        string `yaml:"code_template" validate:"required"`
	}

	XHTMLConfig struct {
		HeadingOffset int `yaml:"heading_offset" validate:"min=1,max=6"`
	}

	LaTeXConfig struct {
		Class string `yaml:"class" validate:"required"`
	}

	TextConfig struct {
		Width           int  `yaml:"width" validate:"gte=-1"`
		SentencePerLine bool `yaml:"sentence_per_line"`
	}

	DocumentConfig struct {
		Format                common.OutputFmt `yaml:"format"`
		StylesheetPath        string           `yaml:"stylesheet_path" sanitize:"assure_file_access"`
		OutputNameTemplate    string           `yaml:"output_name_template"`
		FileNameTransliterate bool             `yaml:"file_name_transliterate"`
		StrictReferences      bool             `yaml:"strict_references"`
		References            ReferencesConfig `yaml:"references"`
		XHTML                 XHTMLConfig      `yaml:"xhtml"`
		LaTeX                 LaTeXConfig      `yaml:"latex"`
		Text                  TextConfig       `yaml:"text"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Document  DocumentConfig `yaml:"document"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field names above. Values of these fields are
	// templates executed later with their own data.
	OutputNameTemplateFieldName TemplateFieldName = "output_name_template"
	SectionTemplateFieldName    TemplateFieldName = "section_template"
	TableTemplateFieldName      TemplateFieldName = "table_template"
	FigureTemplateFieldName     TemplateFieldName = "figure_template"
	SubfigureTemplateFieldName  TemplateFieldName = "subfigure_template"
	EquationTemplateFieldName   TemplateFieldName = "equation_template"
	CodeTemplateFieldName       TemplateFieldName = "code_template"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(OutputNameTemplateFieldName)),
	gencfg.WithDoNotExpandField(string(SectionTemplateFieldName)),
	gencfg.WithDoNotExpandField(string(TableTemplateFieldName)),
	gencfg.WithDoNotExpandField(string(FigureTemplateFieldName)),
	gencfg.WithDoNotExpandField(string(SubfigureTemplateFieldName)),
	gencfg.WithDoNotExpandField(string(EquationTemplateFieldName)),
	gencfg.WithDoNotExpandField(string(CodeTemplateFieldName)),
)

// Labels converts reference configuration to label manager configuration.
func (conf *ReferencesConfig) Labels() label.Config {
	return label.Config{
		Placeholder: conf.Placeholder,
		Templates: map[label.Kind]string{
			label.KindSection:   conf.Section,
			label.KindTable:     conf.Table,
			label.KindFigure:    conf.Figure,
			label.KindSubfigure: conf.Subfigure,
			label.KindEquation:  conf.Equation,
			label.KindCode:      conf.Code,
		},
	}
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads configuration file at the given path on top of
// expanded embedded template and validates the result. Empty path means
// defaults only.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare returns expanded embedded configuration template.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}
