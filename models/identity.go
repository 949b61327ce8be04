package models

// Identity is one signed-in user of the gallery. Anonymous and token sign-ins
// are persisted; degraded local identities never reach this table.
type Identity struct {
	ID        string `gorm:"primaryKey;type:varchar(100)"`
	Provider  string `gorm:"type:varchar(20)"` // "anonymous" or "token"
	CreatedAt int64
}
