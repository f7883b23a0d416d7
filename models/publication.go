package models

// PublicationType tells the public page which player or link to render.
type PublicationType string

const (
	PublicationDocument PublicationType = "document"
	PublicationVideo    PublicationType = "video"
	PublicationPodcast  PublicationType = "podcast"
	PublicationArticle  PublicationType = "article"
)

// Publication is one entry of the publications library.
type Publication struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description,omitempty"`
	Type          PublicationType `json:"type,omitempty"`
	Category      string          `json:"category,omitempty"`
	SubCategory   string          `json:"subCategory,omitempty"`
	FileURL       string          `json:"fileUrl,omitempty"`
	ImageURL      string          `json:"imageUrl,omitempty"`
	VideoURL      string          `json:"videoUrl,omitempty"`
	PodcastURL    string          `json:"podcastUrl,omitempty"`
	Author        string          `json:"author,omitempty"`
	Date          string          `json:"date"`
	DownloadCount int             `json:"downloadCount"`
}

// PublicationsDocument is the on-disk shape of publications.json.
type PublicationsDocument struct {
	Publications []Publication `json:"publications"`
}

// Find returns the index of the publication with the given id, or -1.
func (d PublicationsDocument) Find(id string) int {
	for i := range d.Publications {
		if d.Publications[i].ID == id {
			return i
		}
	}
	return -1
}

// PublicationResponse is returned by create and update calls.
type PublicationResponse struct {
	Success     bool        `json:"success"`
	Publication Publication `json:"publication"`
}

// DownloadCountResponse is returned after a tracked download.
type DownloadCountResponse struct {
	Success       bool `json:"success"`
	DownloadCount int  `json:"downloadCount"`
}
