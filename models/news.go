package models

import (
	"encoding/json"
	"time"
)

// NewsKind discriminates the two record families stored in news.json.
type NewsKind string

const (
	KindNews        NewsKind = "news"
	KindRealisation NewsKind = "realisation"
)

// NewsItem is a dated announcement shown on the news page.
type NewsItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary,omitempty"`
	Content   string    `json:"content,omitempty"`
	Category  string    `json:"category,omitempty"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	VideoURL  string    `json:"videoUrl,omitempty"`
	Author    string    `json:"author,omitempty"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}

// Realisation is a client case study ("réalisation") of the firm.
type Realisation struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Client      string    `json:"client,omitempty"`
	Sector      string    `json:"sector,omitempty"`
	Category    string    `json:"category,omitempty"`
	SubCategory string    `json:"subCategory,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	VideoURL    string    `json:"videoUrl,omitempty"`
	Results     []string  `json:"results,omitempty"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewsDocument is the on-disk shape of news.json.
type NewsDocument struct {
	News         []NewsItem    `json:"news"`
	Realisations []Realisation `json:"realisations"`
}

// FindNews returns the index of the news item with the given id, or -1.
func (d NewsDocument) FindNews(id string) int {
	for i := range d.News {
		if d.News[i].ID == id {
			return i
		}
	}
	return -1
}

// FindRealisation returns the index of the realisation with the given id, or -1.
func (d NewsDocument) FindRealisation(id string) int {
	for i := range d.Realisations {
		if d.Realisations[i].ID == id {
			return i
		}
	}
	return -1
}

// NewsRequest is the body accepted by POST and PUT /api/admin/news. Type
// selects which record the remaining fields describe; Body keeps them raw
// until the kind is known.
type NewsRequest struct {
	Type NewsKind        `json:"type"`
	ID   string          `json:"id"`
	Body json.RawMessage `json:"-"`
}

func (r *NewsRequest) UnmarshalJSON(data []byte) error {
	var head struct {
		Type NewsKind `json:"type"`
		ID   string   `json:"id"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}
	r.Type = head.Type
	r.ID = head.ID
	r.Body = append(r.Body[:0], data...)
	return nil
}

// NewsItemResponse wraps a created or updated record of either kind.
type NewsItemResponse struct {
	Success bool     `json:"success"`
	Type    NewsKind `json:"type"`
	Item    any      `json:"item"`
}
