package model

import "time"

// DownloadLimit is the maximum number of deliveries per purchase.
const DownloadLimit = 10

type StoneModel struct {
	ID           string `gorm:"primaryKey;size:64;not null"` // slug
	Name         string `gorm:"size:100;not null"`
	Era          string `gorm:"size:50;index;not null"`
	Provenance   string `gorm:"size:500;not null"`
	Dimensions   string `gorm:"size:64"`
	Vertices     int32  `gorm:"not null"`
	FileSize     int64  `gorm:"not null"` // bytes
	FileURL      string `gorm:"size:128;not null"`
	ThumbnailURL string `gorm:"size:128"`
	Price        int32  `gorm:"not null"` // cents, [100, 100000]
	Published    bool   `gorm:"index;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Purchase is the durable ledger row behind a paid transaction. It is the
// server-side source of truth for fulfillment dedup and the download count;
// the count embedded in the bearer token only reflects issuance time.
type Purchase struct {
	PurchaseID    string `gorm:"primaryKey;size:64;not null"` // stripe payment intent id
	ModelID       string `gorm:"size:64;index;not null"`
	CustomerEmail string `gorm:"size:128;not null"`
	Amount        int32  `gorm:"not null"`
	Currency      string `gorm:"size:8;not null"`
	DownloadCount int32  `gorm:"not null"`
	TokenIssuedAt time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type WebhookEvent struct {
	EventID     string `gorm:"primaryKey;size:128;not null"` // stripe event id
	EventType   string `gorm:"size:64;index"`
	ProcessedAt time.Time
	CreatedAt   time.Time
}

type FulfillmentPartner struct {
	ID              string   `gorm:"primaryKey;size:64;not null"`
	Name            string   `gorm:"size:100;not null"`
	Location        string   `gorm:"size:100"`
	Materials       []string `gorm:"serializer:json"`
	LeadTime        string   `gorm:"size:32"`
	PriceMultiplier float64  `gorm:"not null"`
	Equipment       string   `gorm:"size:128"`
	CreatedAt       time.Time
}
