package entities

type Cinema struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	LocationID   string `json:"location_id"`
	LocationName string `json:"location_name"`
	Address      string `json:"address"`
}

type MovieStatus string

const (
	StatusPlaying  MovieStatus = "playing"
	StatusUpcoming MovieStatus = "upcoming"
)

type Movie struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Title    string      `json:"title,omitempty"`
	ImageURL string      `json:"image_url,omitempty"`
	Poster   string      `json:"poster,omitempty"`
	Status   MovieStatus `json:"status,omitempty"`
}

// DisplayTitle resolves the name/title alias pair the way the upstream does:
// name wins, title is the fallback.
func (m *Movie) DisplayTitle() string {
	if m.Name != "" {
		return m.Name
	}
	return m.Title
}
