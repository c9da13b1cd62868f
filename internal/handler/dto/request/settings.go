package request

import "groomer-crm/internal/domain/settings"

type SettingsRequest struct {
	BusinessName           string `json:"business_name" binding:"max=100"`
	BusinessEmail          string `json:"business_email" binding:"omitempty,email"`
	BusinessPhone          string `json:"business_phone" binding:"max=30"`
	DefaultDurationMinutes int    `json:"default_duration_minutes" binding:"omitempty,min=15,max=480"`
}

func (r *SettingsRequest) ToDomain() settings.Values {
	return settings.Values{
		BusinessName:           r.BusinessName,
		BusinessEmail:          r.BusinessEmail,
		BusinessPhone:          r.BusinessPhone,
		DefaultDurationMinutes: r.DefaultDurationMinutes,
	}
}
