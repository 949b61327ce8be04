package models

import (
	"github.com/iaparraguez/Pagina-Fotos/utils"
)

type Album struct {
	ID            string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	NS            string `gorm:"type:varchar(100);index:ns_album_created,priority:1" json:"-"`
	Seq           int64  `gorm:"index" json:"-"` // creation-order tiebreak for equal timestamps
	CreatedAt     int64  `gorm:"index:ns_album_created,priority:2" json:"created_at"`
	CreatedBy     string `gorm:"type:varchar(100)" json:"created_by"`
	Name          string `gorm:"type:varchar(300)" json:"name"`
	CoverImageURL string `gorm:"type:varchar(2048)" json:"cover_image_url"`
	ThumbnailURL  string `gorm:"type:varchar(2048)" json:"thumbnail_url"`
	Description   string `gorm:"type:varchar(2048)" json:"description"`
}

func (a *Album) DocumentID() string      { return a.ID }
func (a *Album) SetDocumentID(id string) { a.ID = id }
func (a *Album) Namespace() string       { return a.NS }
func (a *Album) SetNamespace(ns string)  { a.NS = ns }
func (a *Album) CreatedUnix() int64      { return a.CreatedAt }
func (a *Album) SetCreatedUnix(ts int64) { a.CreatedAt = ts }
func (a *Album) Sequence() int64         { return a.Seq }
func (a *Album) SetSequence(seq int64)   { a.Seq = seq }

// Cover returns the display image URL, falling back to the thumbnail and
// finally to a generated placeholder.
func (a *Album) Cover() string {
	if a.CoverImageURL != "" {
		return a.CoverImageURL
	}
	if a.ThumbnailURL != "" {
		return a.ThumbnailURL
	}
	return utils.PlaceholderImageURL(a.Name)
}

// Thumb prefers the thumbnail over the full cover.
func (a *Album) Thumb() string {
	if a.ThumbnailURL != "" {
		return a.ThumbnailURL
	}
	if a.CoverImageURL != "" {
		return a.CoverImageURL
	}
	return utils.PlaceholderImageURL(a.Name)
}
