package domain

// CustomerForm holds checkout input for the duration of one checkout session.
// It is never persisted.
type CustomerForm struct {
	FullName     string `json:"full_name" schema:"full_name"`
	Phone        string `json:"phone" schema:"phone"`
	WhatsappSame bool   `json:"whatsapp_same" schema:"whatsapp_same"`
	Email        string `json:"email" schema:"email"`
	AltPhone     string `json:"alt_phone,omitempty" schema:"alt_phone"`
	Address1     string `json:"address1" schema:"address1"`
	Address2     string `json:"address2,omitempty" schema:"address2"`
	City         string `json:"city" schema:"city"`
	State        string `json:"state" schema:"state"`
	Pincode      string `json:"pincode" schema:"pincode"`
	Landmark     string `json:"landmark,omitempty" schema:"landmark"`
	Notes        string `json:"notes,omitempty" schema:"notes"`
}
