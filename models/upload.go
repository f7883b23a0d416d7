package models

// UploadKind selects the public subfolder and the extension allow-list of an
// uploaded file.
type UploadKind string

const (
	UploadDocument UploadKind = "document"
	UploadImage    UploadKind = "image"
	UploadVideo    UploadKind = "video"
	UploadPodcast  UploadKind = "podcast"
	UploadLogo     UploadKind = "logo"
)

// Folder returns the public subfolder files of kind k are stored in.
func (k UploadKind) Folder() string {
	switch k {
	case UploadImage:
		return "images"
	case UploadVideo:
		return "videos"
	case UploadPodcast:
		return "podcasts"
	case UploadLogo:
		return "logos"
	default:
		return "documents"
	}
}

// UploadFolders lists every public subfolder served statically.
var UploadFolders = []string{"documents", "images", "videos", "podcasts", "logos"}

// UploadedFile describes a file stored under the public directory.
type UploadedFile struct {
	Success  bool       `json:"success"`
	URL      string     `json:"url"`
	FileName string     `json:"fileName"`
	Size     int64      `json:"size"`
	Type     UploadKind `json:"type"`
}
