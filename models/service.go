package models

import "time"

// GeoPoint is a GeoJSON point; Coordinates are [longitude, latitude].
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// NewGeoPoint builds a GeoJSON point from a longitude/latitude pair.
func NewGeoPoint(lng, lat float64) GeoPoint {
	return GeoPoint{Type: "Point", Coordinates: []float64{lng, lat}}
}

// Valid reports whether the point holds an in-range [lng, lat] pair.
func (g GeoPoint) Valid() bool {
	if len(g.Coordinates) != 2 {
		return false
	}
	lng, lat := g.Coordinates[0], g.Coordinates[1]
	return lng >= -180 && lng <= 180 && lat >= -90 && lat <= 90
}

// Service is a bookable offering listed by a provider. Services reference
// their owner and category by id and are never hard deleted.
type Service struct {
	ID          string    `bson:"id" json:"id"`
	OwnerID     string    `bson:"ownerId" json:"ownerId"`
	CategoryID  string    `bson:"categoryId" json:"categoryId"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Price       float64   `bson:"price" json:"price"`
	Images      []string  `bson:"images" json:"images"`
	Location    *GeoPoint `bson:"location,omitempty" json:"location,omitempty"`
	IsAvailable bool      `bson:"isAvailable" json:"isAvailable"`
	Rating      float64   `bson:"rating" json:"rating"`
	ReviewCount int       `bson:"reviewCount" json:"reviewCount"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// OwnerSummary carries the public fields of a service owner.
type OwnerSummary struct {
	ID    string `bson:"id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
}

// ServiceListing is a service joined with its owner and category name.
type ServiceListing struct {
	Service      `bson:",inline"`
	Owner        *OwnerSummary `bson:"owner,omitempty" json:"owner,omitempty"`
	CategoryName string        `bson:"categoryName,omitempty" json:"categoryName,omitempty"`
}

// CreateServiceRequest is the body of POST /services.
type CreateServiceRequest struct {
	CategoryID  string    `json:"categoryId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       *float64  `json:"price"`
	Images      []string  `json:"images"`
	Location    *GeoPoint `json:"location"`
	IsAvailable *bool     `json:"isAvailable"`
}

// UpdateServiceRequest is the body of PUT /services/:id; nil fields are left unchanged.
type UpdateServiceRequest struct {
	CategoryID  *string   `json:"categoryId"`
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	Images      []string  `json:"images"`
	Location    *GeoPoint `json:"location"`
	IsAvailable *bool     `json:"isAvailable"`
}
