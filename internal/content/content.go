// Package content holds the static copy of the site: navigation, hero,
// services and contact channels. It is embedded in the binary as YAML.
package content

import (
	_ "embed"
	"errors"
	"fmt"

	"go.uber.org/fx"
	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var siteYAML []byte

var Module = fx.Module("content",
	fx.Provide(Load),
)

type Site struct {
	Brand           string `yaml:"brand"`
	Tagline         string `yaml:"tagline"`
	CopyrightHolder string `yaml:"copyright_holder"`

	Meta     Meta      `yaml:"meta"`
	Nav      []NavLink `yaml:"nav"`
	CTALabel string    `yaml:"cta_label"`
	Hero     Hero      `yaml:"hero"`

	ServicesSection Section   `yaml:"services_section"`
	Services        []Service `yaml:"services"`

	ContactSection ContactSection `yaml:"contact_section"`
	Contact        ContactInfo    `yaml:"contact"`
}

type Meta struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// NavLink points at an in-page section. An empty Target means the top of the page.
type NavLink struct {
	Label  string `yaml:"label"`
	Target string `yaml:"target"`
}

// Href is the no-JS fallback for the link.
func (l NavLink) Href() string {
	if l.Target == "" {
		return "#top"
	}
	return "#" + l.Target
}

type Hero struct {
	Title           string `yaml:"title"`
	Subtitle        string `yaml:"subtitle"`
	PrimaryLabel    string `yaml:"primary_label"`
	PrimaryTarget   string `yaml:"primary_target"`
	SecondaryLabel  string `yaml:"secondary_label"`
	SecondaryTarget string `yaml:"secondary_target"`
}

type Section struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
}

type Service struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type ContactSection struct {
	Title           string `yaml:"title"`
	Subtitle        string `yaml:"subtitle"`
	FormTitle       string `yaml:"form_title"`
	FormDescription string `yaml:"form_description"`
}

// ContactInfo is the single source for the company's contact details;
// both the contact section and the footer read from it.
type ContactInfo struct {
	Email   string `yaml:"email"`
	Phone   string `yaml:"phone"`
	City    string `yaml:"city"`
	Country string `yaml:"country"`
}

// Location renders "City - Country" as shown in the footer.
func (c ContactInfo) Location() string {
	return fmt.Sprintf("%s - %s", c.City, c.Country)
}

// Load parses the embedded site content.
func Load() (*Site, error) {
	return Parse(siteYAML)
}

// Parse decodes and checks site content.
func Parse(data []byte) (*Site, error) {
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("parse site content: %w", err)
	}
	if err := site.validate(); err != nil {
		return nil, fmt.Errorf("invalid site content: %w", err)
	}
	return &site, nil
}

func (s *Site) validate() error {
	var errs []error
	if s.Brand == "" {
		errs = append(errs, errors.New("brand is required"))
	}
	if len(s.Nav) == 0 {
		errs = append(errs, errors.New("nav must not be empty"))
	}
	if len(s.Services) == 0 {
		errs = append(errs, errors.New("services must not be empty"))
	}
	for i, svc := range s.Services {
		if svc.Title == "" {
			errs = append(errs, fmt.Errorf("services[%d]: title is required", i))
		}
	}
	if s.Contact.Email == "" || s.Contact.Phone == "" {
		errs = append(errs, errors.New("contact email and phone are required"))
	}
	return errors.Join(errs...)
}
