package model

// Batik 批蜡布作品
type Batik struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Motif       string `json:"motif"`
	Origin      string `json:"origin,omitempty"`
	History     string `json:"history"`
	ImageURL    string `json:"imageUrl"`
	ArtisanID   string `json:"artisanId"`
	ArtisanName string `json:"artisanName"`
}

// OwnedBy 是否属于指定工匠
func (b *Batik) OwnedBy(userID string) bool {
	return b.ArtisanID != "" && b.ArtisanID == userID
}
