package update_avatar

import "github.com/m04kA/HLD-BookingGateway/internal/service/profiles/models"

// AvatarRequestDTO тело запроса обновления аватара
type AvatarRequestDTO struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

// ToServiceRequest конвертирует DTO в запрос сервиса
func (d *AvatarRequestDTO) ToServiceRequest() *models.UpdateAvatarRequest {
	return &models.UpdateAvatarRequest{
		URL: d.URL,
		Alt: d.Alt,
	}
}

// AvatarResponseDTO обновленный аватар профиля
type AvatarResponseDTO struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
	AvatarAlt string `json:"avatarAlt,omitempty"`
}
