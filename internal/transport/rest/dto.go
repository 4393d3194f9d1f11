package rest

import (
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/exhibit-backend/internal/domain"
)

// imageURLs builds the public URLs of an item's files. Files are published
// under base as <library><GUID>[T].<ext>, T marking the thumbnail.
type imageURLs struct {
	base string
}

func newImageURLs(base string) imageURLs {
	return imageURLs{base: base}
}

func (u imageURLs) thumb(item domain.Item) string {
	return u.build(item, "T", item.ThumbPath)
}

func (u imageURLs) full(item domain.Item) string {
	return u.build(item, "", item.FullPath)
}

func (u imageURLs) build(item domain.Item, suffix, file string) string {
	var b strings.Builder
	b.WriteString(u.base)
	b.WriteString(strconv.FormatInt(int64(item.LibraryID), 10))
	b.WriteString(item.GUID)
	b.WriteString(suffix)
	if ext := path.Ext(file); ext != "" {
		b.WriteString(ext)
	}
	return b.String()
}

type itemResponse struct {
	Library    int64     `json:"library"`
	ID         int64     `json:"id"`
	Roll       int64     `json:"roll"`
	RollName   string    `json:"roll_name"`
	GUID       string    `json:"guid"`
	Caption    string    `json:"caption"`
	Comment    string    `json:"comment"`
	Rating     int       `json:"rating"`
	MediaType  string    `json:"media_type"`
	IsImage    bool      `json:"is_image"`
	CapturedAt time.Time `json:"captured_at"`
	ThumbURL   string    `json:"thumb_url"`
	FullURL    string    `json:"full_url"`
	Keywords   []string  `json:"keywords"`
	// MatchedKeywords lists the searched keywords the item was selected by.
	MatchedKeywords []string `json:"matched_keywords,omitempty"`
}

func (u imageURLs) item(item domain.Item, keywords []string) itemResponse {
	if keywords == nil {
		keywords = []string{}
	}
	return itemResponse{
		Library:    int64(item.LibraryID),
		ID:         int64(item.ID),
		Roll:       int64(item.RollID),
		RollName:   item.RollName,
		GUID:       item.GUID,
		Caption:    item.Caption,
		Comment:    item.Comment,
		Rating:     item.Rating,
		MediaType:  item.MediaKind.String(),
		IsImage:    item.MediaKind.IsImage(),
		CapturedAt: item.CapturedAt,
		ThumbURL:   u.thumb(item),
		FullURL:    u.full(item),
		Keywords:   keywords,
	}
}

type searchResponse struct {
	Keywords    []string       `json:"keywords"`
	Restriction string         `json:"restriction"`
	Count       int            `json:"count"`
	Items       []itemResponse `json:"items"`
}

type keyPhotoResponse struct {
	ID       int64  `json:"id"`
	ThumbURL string `json:"thumb_url"`
}

type rollResponse struct {
	Library    int64             `json:"library"`
	ID         int64             `json:"id"`
	Name       string            `json:"name"`
	Date       time.Time         `json:"date"`
	PhotoCount int               `json:"photo_count"`
	KeyPhoto   *keyPhotoResponse `json:"key_photo,omitempty"`
}

func (u imageURLs) roll(r domain.Roll) rollResponse {
	resp := rollResponse{
		Library:    int64(r.LibraryID),
		ID:         int64(r.ID),
		Name:       r.Name,
		Date:       r.Date,
		PhotoCount: r.PhotoCount,
	}
	if r.KeyPhoto != nil {
		resp.KeyPhoto = &keyPhotoResponse{
			ID:       int64(r.KeyPhoto.ID),
			ThumbURL: u.thumb(*r.KeyPhoto),
		}
	}
	return resp
}

type rollContentsResponse struct {
	Roll      rollResponse   `json:"roll"`
	Items     []itemResponse `json:"items"`
	Truncated bool           `json:"truncated"`
}

type keywordsResponse struct {
	Keywords []string `json:"keywords"`
}
