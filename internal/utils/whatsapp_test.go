package utils

import (
	"net/url"
	"strings"
	"testing"

	"github.com/arogyamitram/am_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWhatsAppLink(t *testing.T) {
	medicine := domain.Medicine{
		Name:         "Paracetamol 500mg",
		DonorName:    "Rahul Sharma",
		DonorContact: "919876543210",
	}
	requester := domain.User{
		Name:  "Medical Staff",
		Phone: "919876543213",
		Org:   "College Health Center",
	}

	link := BuildWhatsAppLink(medicine, requester)

	require.True(t, strings.HasPrefix(link, "https://wa.me/919876543210?text="), link)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	text := parsed.Query().Get("text")
	assert.Contains(t, text, "Hello Rahul Sharma, I need Paracetamol 500mg from ArogyaMitram.")
	assert.Contains(t, text, "Name: Medical Staff")
	assert.Contains(t, text, "Organization: College Health Center")
	assert.Contains(t, text, "Phone: 919876543213")
	assert.Contains(t, text, "Quantity needed: [Please specify]")
}

func TestBuildWhatsAppLinkEscapesMessage(t *testing.T) {
	medicine := domain.Medicine{Name: "A & B", DonorName: "X", DonorContact: "911234567890"}
	requester := domain.User{Name: "Y"}

	link := BuildWhatsAppLink(medicine, requester)

	// Everything after text= must be a single escaped query value.
	_, after, found := strings.Cut(link, "?text=")
	require.True(t, found)
	assert.NotContains(t, after, " ")
	assert.NotContains(t, after, "\n")
	assert.NotContains(t, after, "&")
}
