package utils

import (
	"fmt"
	"net/url"

	"github.com/arogyamitram/am_backend/internal/core/domain"
)

// BuildWhatsAppLink constructs the pre-filled WhatsApp deep link a recipient
// uses to contact a listing's donor. The message template names the requester,
// their organization and phone, and the medicine; the quantity is left for the
// requester to fill in.
func BuildWhatsAppLink(medicine domain.Medicine, requester domain.User) string {
	text := fmt.Sprintf(
		"Hello %s, I need %s from ArogyaMitram.\nMy details:\nName: %s\nOrganization: %s\nPhone: %s\nQuantity needed: [Please specify]",
		medicine.DonorName, medicine.Name, requester.Name, requester.Org, requester.Phone,
	)
	return "https://wa.me/" + medicine.DonorContact + "?text=" + url.QueryEscape(text)
}
