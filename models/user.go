package models

// Profile is the serialized user snapshot kept in durable storage so cart and
// checkout views can show the signed-in user without re-fetching.
type Profile struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url,omitempty"`
}
