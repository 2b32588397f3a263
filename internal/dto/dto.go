package dto

import (
	"time"

	"antique-models-store/internal/model"
)

type CreatePaymentIntentRequest struct {
	ModelID       string `json:"modelId" validate:"required,slug"`
	CustomerEmail string `json:"customerEmail" validate:"required,email"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
	Amount       int64  `json:"amount"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type WebhookAck struct {
	Received bool `json:"received"`
}

type ModelResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Era          string `json:"era"`
	Provenance   string `json:"provenance"`
	Dimensions   string `json:"dimensions"`
	Vertices     int32  `json:"vertices"`
	FileSize     int64  `json:"fileSize"`
	Price        int32  `json:"price"`
	Published    bool   `json:"published"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

func NewModelResponse(m *model.StoneModel) *ModelResponse {
	return &ModelResponse{
		ID:           m.ID,
		Name:         m.Name,
		Era:          m.Era,
		Provenance:   m.Provenance,
		Dimensions:   m.Dimensions,
		Vertices:     m.Vertices,
		FileSize:     m.FileSize,
		Price:        m.Price,
		Published:    m.Published,
		ThumbnailURL: m.ThumbnailURL,
		CreatedAt:    m.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    m.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// UpsertModelRequest carries an admin create/edit. The path id is copied in
// by the handler before validation.
type UpsertModelRequest struct {
	ID           string `json:"-" validate:"required,slug"`
	Name         string `json:"name" validate:"required,max=100"`
	Era          string `json:"era" validate:"required,max=50"`
	Provenance   string `json:"provenance" validate:"required,max=500"`
	Dimensions   string `json:"dimensions" validate:"max=64"`
	Vertices     int32  `json:"vertices" validate:"gte=1000,lte=500000"`
	FileSize     int64  `json:"fileSize" validate:"gte=1,lte=52428800"`
	FileURL      string `json:"fileUrl" validate:"required,assetpath"`
	ThumbnailURL string `json:"thumbnailUrl" validate:"omitempty,max=128"`
	Price        int32  `json:"price" validate:"gte=100,lte=100000"`
	Published    bool   `json:"published"`
}

func (r *UpsertModelRequest) ToModel() *model.StoneModel {
	return &model.StoneModel{
		ID:           r.ID,
		Name:         r.Name,
		Era:          r.Era,
		Provenance:   r.Provenance,
		Dimensions:   r.Dimensions,
		Vertices:     r.Vertices,
		FileSize:     r.FileSize,
		FileURL:      r.FileURL,
		ThumbnailURL: r.ThumbnailURL,
		Price:        r.Price,
		Published:    r.Published,
	}
}

type PartnerResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Location        string   `json:"location"`
	Materials       []string `json:"materials"`
	LeadTime        string   `json:"leadTime"`
	PriceMultiplier float64  `json:"priceMultiplier"`
	Equipment       string   `json:"equipment"`
}

func NewPartnerResponse(p *model.FulfillmentPartner) *PartnerResponse {
	return &PartnerResponse{
		ID:              p.ID,
		Name:            p.Name,
		Location:        p.Location,
		Materials:       p.Materials,
		LeadTime:        p.LeadTime,
		PriceMultiplier: p.PriceMultiplier,
		Equipment:       p.Equipment,
	}
}

type QuoteResponse struct {
	ModelID          string   `json:"modelId"`
	PartnerID        string   `json:"partnerId"`
	PartnerName      string   `json:"partnerName"`
	Currency         string   `json:"currency"`
	DigitalPrice     int32    `json:"digitalPrice"`
	FabricationPrice int32    `json:"fabricationPrice"`
	LeadTime         string   `json:"leadTime"`
	Materials        []string `json:"materials"`
}

// DownloadResult is the verified, ready-to-stream delivery payload.
type DownloadResult struct {
	Data          []byte
	FileName      string
	ContentType   string
	DownloadCount int32
	DownloadLimit int32
}
