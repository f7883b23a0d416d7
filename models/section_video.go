package models

import "time"

// SectionVideo is the video slot of one page section (for example
// "home-hero" or "about-intro"). A video is either hosted elsewhere
// (VideoURL) or uploaded to the public directory (VideoPath).
type SectionVideo struct {
	Section   string    `json:"section"`
	Title     string    `json:"title,omitempty"`
	Active    bool      `json:"active"`
	VideoURL  string    `json:"videoUrl,omitempty"`
	VideoPath string    `json:"videoPath,omitempty"`
	Thumbnail string    `json:"thumbnail,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SectionVideosDocument is the on-disk shape of section-videos.json.
type SectionVideosDocument struct {
	Videos []SectionVideo `json:"videos"`
}

// Find returns the index of the video bound to section, or -1.
func (d SectionVideosDocument) Find(section string) int {
	for i := range d.Videos {
		if d.Videos[i].Section == section {
			return i
		}
	}
	return -1
}

// SectionVideoResponse wraps a single upserted or toggled video.
type SectionVideoResponse struct {
	Success bool         `json:"success"`
	Video   SectionVideo `json:"video"`
}
