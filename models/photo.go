package models

type Photo struct {
	ID         string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	NS         string `gorm:"type:varchar(100);index:ns_photo_album,priority:1" json:"-"`
	Seq        int64  `gorm:"index" json:"-"`
	CreatedAt  int64  `gorm:"index" json:"uploaded_at"` // upload time, server-assigned
	UploadedBy string `gorm:"type:varchar(100)" json:"uploaded_by"`
	AlbumID    string `gorm:"type:varchar(36);index:ns_photo_album,priority:2" json:"album_id"`
	ImageURL   string `gorm:"type:varchar(2048)" json:"image_url"`
	Title      string `gorm:"type:varchar(300)" json:"title"`
	Caption    string `gorm:"type:varchar(2048)" json:"caption"`
}

func (p *Photo) DocumentID() string      { return p.ID }
func (p *Photo) SetDocumentID(id string) { p.ID = id }
func (p *Photo) Namespace() string       { return p.NS }
func (p *Photo) SetNamespace(ns string)  { p.NS = ns }
func (p *Photo) CreatedUnix() int64      { return p.CreatedAt }
func (p *Photo) SetCreatedUnix(ts int64) { p.CreatedAt = ts }
func (p *Photo) Sequence() int64         { return p.Seq }
func (p *Photo) SetSequence(seq int64)   { p.Seq = seq }
