package models

// ServiceType is an independent taxonomy of offerings; services do not reference it.
type ServiceType struct {
	ID          string `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Icon        string `bson:"icon" json:"icon"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}
