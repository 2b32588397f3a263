package model

// PaymentIntentMetadata is the application context threaded through the
// payment processor. Stripe metadata only carries flat string maps, so every
// value is serialized as a string on the way out and re-parsed on the way
// back.
type PaymentIntentMetadata struct {
	ModelID               string
	DeliveryType          string // digital | physical
	FulfillmentType       string // digital_download | cnc_fabrication
	Format                string // glb
	Dimensions            string
	CustomerEmail         string
	ManufacturingRequired string // "false" or "true"
}

func (m PaymentIntentMetadata) ToMap() map[string]string {
	return map[string]string{
		"modelId":               m.ModelID,
		"deliveryType":          m.DeliveryType,
		"fulfillmentType":       m.FulfillmentType,
		"format":                m.Format,
		"dimensions":            m.Dimensions,
		"customerEmail":         m.CustomerEmail,
		"manufacturingRequired": m.ManufacturingRequired,
	}
}

func MetadataFromMap(raw map[string]string) PaymentIntentMetadata {
	return PaymentIntentMetadata{
		ModelID:               raw["modelId"],
		DeliveryType:          raw["deliveryType"],
		FulfillmentType:       raw["fulfillmentType"],
		Format:                raw["format"],
		Dimensions:            raw["dimensions"],
		CustomerEmail:         raw["customerEmail"],
		ManufacturingRequired: raw["manufacturingRequired"],
	}
}
