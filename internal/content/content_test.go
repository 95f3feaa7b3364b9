package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmbeddedSite(t *testing.T) {
	site, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "4Data", site.Brand)
	assert.Len(t, site.Services, 6)
	assert.Equal(t, "Business Intelligence", site.Services[0].Title)
	assert.Equal(t, "+55 (11) 98129-4949", site.Contact.Phone)
	assert.Equal(t, "São Paulo, SP - Brasil", site.Contact.Location())

	targets := make([]string, 0, len(site.Nav))
	for _, l := range site.Nav {
		targets = append(targets, l.Target)
	}
	assert.Equal(t, []string{"", "services", "contact"}, targets)
}

func TestNavLink_Href(t *testing.T) {
	assert.Equal(t, "#top", NavLink{Label: "Início"}.Href())
	assert.Equal(t, "#services", NavLink{Label: "Serviços", Target: "services"}.Href())
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"malformed", "brand: [", "parse site content"},
		{"missing brand", "nav: [{label: a}]\nservices: [{title: x}]\ncontact: {email: a, phone: b}", "brand is required"},
		{"no services", "brand: x\nnav: [{label: a}]\ncontact: {email: a, phone: b}", "services must not be empty"},
		{"untitled service", "brand: x\nnav: [{label: a}]\nservices: [{icon: y}]\ncontact: {email: a, phone: b}", "services[0]: title is required"},
		{"no phone", "brand: x\nnav: [{label: a}]\nservices: [{title: x}]\ncontact: {email: a}", "contact email and phone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
