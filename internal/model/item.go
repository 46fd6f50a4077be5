package model

import "time"

// Коды каналов продаж (tags). Храним двухбуквенный код, наружу отдаём его же.
const (
	TagEtsy     = "ET"
	TagInShop   = "CT"
	TagSettings = "ST"
	TagOnline   = "OL"
	TagShopify  = "SP"
	TagSquare   = "SQ"
	TagXero     = "XE"
)

// TagChoices — закрытый набор допустимых кодов tags и их названия.
var TagChoices = map[string]string{
	TagEtsy:     "Etsy",
	TagInShop:   "In Shop",
	TagSettings: "Settings",
	TagOnline:   "Online",
	TagShopify:  "Shopify",
	TagSquare:   "Square",
	TagXero:     "Xero",
}

// ValidTag сообщает, входит ли код в набор TagChoices.
func ValidTag(code string) bool {
	_, ok := TagChoices[code]
	return ok
}

// Item — складская позиция пользователя.
type Item struct {
	ID     int64 `gorm:"primaryKey"`
	UserID int64 `gorm:"not null;index"` // ссылка на users.id

	// Связи
	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	SKU      string `gorm:"column:sku;not null"`
	Name     string `gorm:"not null;uniqueIndex"` // уникальность глобальная, не per-user
	Category string
	Tags     string `gorm:"size:2"`

	Cost float64 `gorm:"type:decimal(5,2);not null"`

	InStock        int `gorm:"not null"`
	AvailableStock int `gorm:"not null"`
	MinimumStock   int `gorm:"not null"`
	DesiredStock   int `gorm:"not null"`

	IsAssembly     bool `gorm:"not null;default:false"`
	IsComponent    bool `gorm:"not null;default:false"`
	IsPurchaseable bool `gorm:"not null;default:false"`
	IsSellable     bool `gorm:"not null;default:false"`
	IsBundle       bool `gorm:"not null;default:false"`

	Created time.Time `gorm:"column:created;autoCreateTime"`
	Updated time.Time `gorm:"column:updated;autoUpdateTime"`
}
