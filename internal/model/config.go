package model

// AppConfig is one row of the backend key/value config table.
type AppConfig struct {
	ID        int64  `json:"id"`
	KeyName   string `json:"keyName"`
	Value     string `json:"value"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// BusinessConfig is the sparse set of business facts served by
// /config/business. Every field is optional; consumers substitute defaults.
type BusinessConfig struct {
	BusinessName  string `json:"business_name,omitempty"`
	PhoneNumber   string `json:"phone_number,omitempty"`
	WhatsApp      string `json:"whatsapp_number,omitempty"`
	Email         string `json:"business_email,omitempty"`
	Address       string `json:"address,omitempty"`
	BusinessHours string `json:"business_hours,omitempty"`
	MapLatitude   string `json:"map_latitude,omitempty"`
	MapLongitude  string `json:"map_longitude,omitempty"`
	MapZoomLevel  string `json:"map_zoom_level,omitempty"`
}

// WithDefaults returns a copy with missing fields replaced by the given
// fallback values.
func (c BusinessConfig) WithDefaults(d BusinessConfig) BusinessConfig {
	out := c
	if out.BusinessName == "" {
		out.BusinessName = d.BusinessName
	}
	if out.PhoneNumber == "" {
		out.PhoneNumber = d.PhoneNumber
	}
	if out.WhatsApp == "" {
		out.WhatsApp = d.WhatsApp
	}
	if out.Email == "" {
		out.Email = d.Email
	}
	if out.Address == "" {
		out.Address = d.Address
	}
	if out.BusinessHours == "" {
		out.BusinessHours = d.BusinessHours
	}
	return out
}
